// mcctl calls the Upwork Message Center API and prints raw JSON responses.
// Usage: mcctl --config configs/mcctl.yaml rooms <company>
//
// Credentials are usually supplied through the config file via environment
// expansion:
//
//	UPWORK_CONSUMER_KEY, UPWORK_CONSUMER_SECRET,
//	UPWORK_ACCESS_TOKEN, UPWORK_ACCESS_TOKEN_SECRET
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/pflag"

	"github.com/rickgao/upwork-mc/internal/api"
	"github.com/rickgao/upwork-mc/internal/auth"
	"github.com/rickgao/upwork-mc/internal/config"
	"github.com/rickgao/upwork-mc/internal/messages"
	"github.com/rickgao/upwork-mc/internal/version"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		var apiErr *api.APIError
		if errors.As(err, &apiErr) && len(apiErr.Body) > 0 {
			fmt.Fprintf(os.Stderr, "%s\n", apiErr.Body)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	var configPath, logLevel string
	var showVersion bool

	flagSet := pflag.NewFlagSet("mcctl", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.SetInterspersed(false)
	flagSet.StringVar(&configPath, "config", "configs/mcctl.yaml", "path to config file")
	flagSet.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error); overrides log.level")
	flagSet.BoolVar(&showVersion, "version", false, "print version and exit")
	flagSet.Usage = func() { printUsage(stderr, flagSet) }

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	if showVersion {
		fmt.Fprintf(stdout, "mcctl %s\n", version.String())
		return nil
	}

	rest := flagSet.Args()
	if len(rest) == 0 {
		printUsage(stderr, flagSet)
		return errors.New("missing command")
	}
	cmd, ok := lookupCommand(rest[0])
	if !ok {
		return fmt.Errorf("unknown command %q", rest[0])
	}

	cfg, err := config.LoadAndValidate(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	level, err := config.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}

	logger := slog.New(tint.NewHandler(stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
	}))
	slog.SetDefault(logger)

	logger.Debug("starting mcctl",
		"version", version.Version,
		"commit", version.Commit,
		"config", configPath,
		"command", cmd.name,
	)

	router, err := newRouter(cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return cmd.exec(ctx, router, rest[1:], stdout)
}

// newRouter wires the signed API client and logging decorator into a Router.
func newRouter(cfg *config.Config, logger *slog.Logger) (*messages.Router, error) {
	creds, err := auth.NewCredentials(
		cfg.OAuth.ConsumerKey,
		cfg.OAuth.ConsumerSecret,
		cfg.OAuth.AccessToken,
		cfg.OAuth.AccessTokenSecret,
	)
	if err != nil {
		return nil, fmt.Errorf("load credentials: %w", err)
	}

	client := api.NewClient(
		cfg.API.BaseURL,
		api.WithSigner(creds),
		api.WithFormat(cfg.API.Format),
		api.WithLogger(logger),
		api.WithTimeout(cfg.API.Timeout),
		api.WithRetries(cfg.API.MaxRetries, cfg.API.RetryBackoff),
		api.WithUserAgent(version.UserAgent("mcctl")),
	)

	return messages.NewRouter(messages.WithLogging(client, logger), cfg.API.EntryPoint), nil
}

func printUsage(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, "Usage: mcctl [flags] <command> [args]\n\nCommands:\n")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-22s %s\n", c.name, c.usage)
	}
	fmt.Fprintf(w, "\nFlags:\n%s", flagSet.FlagUsages())
}
