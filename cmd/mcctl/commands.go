package main

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/spf13/pflag"

	"github.com/rickgao/upwork-mc/internal/api"
	"github.com/rickgao/upwork-mc/internal/messages"
)

type command struct {
	name  string
	usage string
	// args is the exact positional count, or the minimum when variadic is set.
	args     int
	variadic bool
	flags    func(fs *pflag.FlagSet)
	call     func(ctx context.Context, r *messages.Router, fs *pflag.FlagSet, args []string) (*api.Response, error)
}

var commands = []command{
	{
		name:  "rooms",
		usage: "<company>  list rooms",
		args:  1,
		call: func(ctx context.Context, r *messages.Router, _ *pflag.FlagSet, a []string) (*api.Response, error) {
			return r.ListRooms(ctx, a[0])
		},
	},
	{
		name:  "room",
		usage: "<company> <room-id>  show room with stories",
		args:  2,
		call: func(ctx context.Context, r *messages.Router, _ *pflag.FlagSet, a []string) (*api.Response, error) {
			return r.GetRoomDetails(ctx, a[0], a[1])
		},
	},
	{
		name:  "room-by-application",
		usage: "<username> <application-id>  room for an application, with stories",
		args:  2,
		call: func(ctx context.Context, r *messages.Router, _ *pflag.FlagSet, a []string) (*api.Response, error) {
			return r.GetRoomByApplicationID(ctx, a[0], a[1])
		},
	},
	{
		name:  "application-room",
		usage: "<username> <application-id>  room for an application, no stories",
		args:  2,
		call: func(ctx context.Context, r *messages.Router, _ *pflag.FlagSet, a []string) (*api.Response, error) {
			return r.GetApplicationRoom(ctx, a[0], a[1])
		},
	},
	{
		name:  "create-room",
		usage: "[--org-id id] <username> <room-name> <user-id>  create one-on-one room",
		args:  3,
		flags: func(fs *pflag.FlagSet) {
			fs.String("org-id", "", "organization of the invited user")
		},
		call: func(ctx context.Context, r *messages.Router, fs *pflag.FlagSet, a []string) (*api.Response, error) {
			orgID, _ := fs.GetString("org-id")
			return r.CreateRoom(ctx, a[0], a[1], messages.User{UserID: a[2], OrgID: orgID})
		},
	},
	{
		name:  "send",
		usage: "<username> <room-id> <message>  post a story to a room",
		args:  3,
		call: func(ctx context.Context, r *messages.Router, _ *pflag.FlagSet, a []string) (*api.Response, error) {
			return r.SendMessageToRoom(ctx, a[0], a[1], messages.Story{Message: a[2]})
		},
	},
	{
		name:  "thread-context",
		usage: "[--context name] <username> <job-key> <application-id>  last posts of a thread",
		args:  3,
		flags: func(fs *pflag.FlagSet) {
			fs.String("context", messages.DefaultContext, "thread context")
		},
		call: func(ctx context.Context, r *messages.Router, fs *pflag.FlagSet, a []string) (*api.Response, error) {
			threadContext, _ := fs.GetString("context")
			return r.GetThreadByContext(ctx, a[0], a[1], a[2], threadContext)
		},
	},
	{
		name:     "mark-thread",
		usage:    "<username> <thread-id> key=value...  update thread flags",
		args:     2,
		variadic: true,
		call: func(ctx context.Context, r *messages.Router, _ *pflag.FlagSet, a []string) (*api.Response, error) {
			params, err := parseParams(a[2:])
			if err != nil {
				return nil, err
			}
			return r.MarkThread(ctx, a[0], a[1], params)
		},
	},
	{
		name:     "start-thread",
		usage:    "<username> key=value...  send a new message",
		args:     1,
		variadic: true,
		call: func(ctx context.Context, r *messages.Router, _ *pflag.FlagSet, a []string) (*api.Response, error) {
			params, err := parseParams(a[1:])
			if err != nil {
				return nil, err
			}
			return r.StartNewThread(ctx, a[0], params)
		},
	},
	{
		name:     "reply",
		usage:    "<username> <thread-id> key=value...  reply to a thread",
		args:     2,
		variadic: true,
		call: func(ctx context.Context, r *messages.Router, _ *pflag.FlagSet, a []string) (*api.Response, error) {
			params, err := parseParams(a[2:])
			if err != nil {
				return nil, err
			}
			return r.ReplyToThread(ctx, a[0], a[1], params)
		},
	},
}

func lookupCommand(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

// exec parses the command's own flags and arguments, performs the call and
// writes the raw response body to out.
func (c command) exec(ctx context.Context, r *messages.Router, args []string, out io.Writer) error {
	fs := pflag.NewFlagSet(c.name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	if c.flags != nil {
		c.flags(fs)
	}
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%s: %w", c.name, err)
	}

	positional := fs.Args()
	if len(positional) < c.args || (!c.variadic && len(positional) != c.args) {
		return fmt.Errorf("usage: mcctl %s %s", c.name, c.usage)
	}

	resp, err := c.call(ctx, r, fs, positional)
	if err != nil {
		return err
	}

	if _, err := out.Write(resp.Body); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	if len(resp.Body) > 0 && resp.Body[len(resp.Body)-1] != '\n' {
		fmt.Fprintln(out)
	}
	return nil
}

// parseParams turns key=value arguments into request parameters.
// Repeated keys accumulate.
func parseParams(args []string) (url.Values, error) {
	params := url.Values{}
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid parameter %q, want key=value", arg)
		}
		params.Add(key, value)
	}
	return params, nil
}
