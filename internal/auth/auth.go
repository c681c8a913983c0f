// Package auth provides Upwork API authentication using OAuth 1.0a
// HMAC-SHA1 signatures.
package auth

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SignatureMethod is the only OAuth signature method Upwork accepts.
const SignatureMethod = "HMAC-SHA1"

// Credentials holds the consumer and access token pairs for signing requests.
type Credentials struct {
	ConsumerKey    string
	ConsumerSecret string
	Token          string // access token, empty for request-token calls
	TokenSecret    string

	now   func() time.Time
	nonce func() string
}

// NewCredentials validates and returns OAuth credentials.
func NewCredentials(consumerKey, consumerSecret, token, tokenSecret string) (*Credentials, error) {
	if consumerKey == "" {
		return nil, fmt.Errorf("consumer key is required")
	}
	if consumerSecret == "" {
		return nil, fmt.Errorf("consumer secret is required")
	}
	if token != "" && tokenSecret == "" {
		return nil, fmt.Errorf("access token secret is required when access token is set")
	}

	return &Credentials{
		ConsumerKey:    consumerKey,
		ConsumerSecret: consumerSecret,
		Token:          token,
		TokenSecret:    tokenSecret,
	}, nil
}

// Sign returns the Authorization header value for a request.
// rawURL must not contain a query; params holds the query or form parameters.
func (c *Credentials) Sign(method, rawURL string, params map[string][]string) (string, error) {
	oauthParams := c.oauthParams()

	base, err := signatureBase(method, rawURL, params, oauthParams)
	if err != nil {
		return "", err
	}
	oauthParams["oauth_signature"] = c.signature(base)

	keys := make([]string, 0, len(oauthParams))
	for k := range oauthParams {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf(`%s="%s"`, percentEncode(k), percentEncode(oauthParams[k])))
	}

	return "OAuth " + strings.Join(parts, ", "), nil
}

func (c *Credentials) oauthParams() map[string]string {
	now := time.Now
	if c.now != nil {
		now = c.now
	}
	nonce := func() string { return strings.ReplaceAll(uuid.NewString(), "-", "") }
	if c.nonce != nil {
		nonce = c.nonce
	}

	p := map[string]string{
		"oauth_consumer_key":     c.ConsumerKey,
		"oauth_nonce":            nonce(),
		"oauth_signature_method": SignatureMethod,
		"oauth_timestamp":        strconv.FormatInt(now().Unix(), 10),
		"oauth_version":          "1.0",
	}
	if c.Token != "" {
		p["oauth_token"] = c.Token
	}
	return p
}

// signature computes the base64 HMAC-SHA1 of the signature base string.
func (c *Credentials) signature(base string) string {
	key := percentEncode(c.ConsumerSecret) + "&" + percentEncode(c.TokenSecret)
	mac := hmac.New(sha1.New, []byte(key))
	mac.Write([]byte(base))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// signatureBase builds the RFC 5849 section 3.4.1 signature base string.
func signatureBase(method, rawURL string, params map[string][]string, oauthParams map[string]string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse url: %w", err)
	}

	scheme := strings.ToLower(u.Scheme)
	host := strings.ToLower(u.Host)
	if port := u.Port(); (scheme == "http" && port == "80") || (scheme == "https" && port == "443") {
		host = strings.ToLower(u.Hostname())
	}
	baseURI := scheme + "://" + host + u.EscapedPath()

	type pair struct{ k, v string }
	var pairs []pair
	for k, vs := range params {
		for _, v := range vs {
			pairs = append(pairs, pair{percentEncode(k), percentEncode(v)})
		}
	}
	for k, vs := range u.Query() {
		for _, v := range vs {
			pairs = append(pairs, pair{percentEncode(k), percentEncode(v)})
		}
	}
	for k, v := range oauthParams {
		pairs = append(pairs, pair{percentEncode(k), percentEncode(v)})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].k != pairs[j].k {
			return pairs[i].k < pairs[j].k
		}
		return pairs[i].v < pairs[j].v
	})

	normalized := make([]string, len(pairs))
	for i, p := range pairs {
		normalized[i] = p.k + "=" + p.v
	}

	return strings.ToUpper(method) + "&" +
		percentEncode(baseURI) + "&" +
		percentEncode(strings.Join(normalized, "&")), nil
}

// percentEncode encodes s per RFC 5849 section 3.6: only unreserved
// characters are left as is.
func percentEncode(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') ||
			c == '-' || c == '.' || c == '_' || c == '~' {
			b.WriteByte(c)
			continue
		}
		fmt.Fprintf(&b, "%%%02X", c)
	}
	return b.String()
}
