package auth

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedCredentials() *Credentials {
	return &Credentials{
		ConsumerKey:    "ck",
		ConsumerSecret: "cs",
		Token:          "tk",
		TokenSecret:    "ts",
		now:            func() time.Time { return time.Unix(1700000000, 0) },
		nonce:          func() string { return "abc" },
	}
}

func TestNewCredentials(t *testing.T) {
	tests := []struct {
		name    string
		args    [4]string
		wantErr string
	}{
		{"missing consumer key", [4]string{"", "cs", "", ""}, "consumer key is required"},
		{"missing consumer secret", [4]string{"ck", "", "", ""}, "consumer secret is required"},
		{"token without secret", [4]string{"ck", "cs", "tk", ""}, "access token secret is required when access token is set"},
		{"consumer only", [4]string{"ck", "cs", "", ""}, ""},
		{"full", [4]string{"ck", "cs", "tk", "ts"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creds, err := NewCredentials(tt.args[0], tt.args[1], tt.args[2], tt.args[3])
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.args[0], creds.ConsumerKey)
			assert.Equal(t, tt.args[2], creds.Token)
		})
	}
}

func TestPercentEncode(t *testing.T) {
	assert.Equal(t, "Hello%20Ladies%20%2B%20Gentlemen%2C%20a%20signed%20OAuth%20request%21",
		percentEncode("Hello Ladies + Gentlemen, a signed OAuth request!"))
	assert.Equal(t, "abc-._~XYZ019", percentEncode("abc-._~XYZ019"))
	assert.Equal(t, "Interviews%3Ajob%3A42", percentEncode("Interviews:job:42"))
	assert.Equal(t, "%E2%82%AC", percentEncode("€"))
}

func TestSignatureBase(t *testing.T) {
	creds := fixedCredentials()

	base, err := signatureBase("get", "https://WWW.upwork.com:443/api/messages/v3/acme/rooms.json",
		map[string][]string{"returnUsers": {"true"}}, creds.oauthParams())
	require.NoError(t, err)

	want := "GET&https%3A%2F%2Fwww.upwork.com%2Fapi%2Fmessages%2Fv3%2Facme%2Frooms.json&" +
		"oauth_consumer_key%3Dck%26oauth_nonce%3Dabc%26oauth_signature_method%3DHMAC-SHA1%26" +
		"oauth_timestamp%3D1700000000%26oauth_token%3Dtk%26oauth_version%3D1.0%26returnUsers%3Dtrue"
	assert.Equal(t, want, base)
}

func TestSignatureBase_SortsDuplicateKeysByValue(t *testing.T) {
	base, err := signatureBase("POST", "http://example.com/r?a=2",
		map[string][]string{"a": {"3", "1"}, "b": {"x y"}}, map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, "POST&http%3A%2F%2Fexample.com%2Fr&a%3D1%26a%3D2%26a%3D3%26b%3Dx%2520y", base)
}

func TestSign(t *testing.T) {
	creds := fixedCredentials()
	params := map[string][]string{"returnUsers": {"true"}}
	rawURL := "https://www.upwork.com/api/messages/v3/acme/rooms.json"

	header, err := creds.Sign("GET", rawURL, params)
	require.NoError(t, err)

	base, err := signatureBase("GET", rawURL, params, creds.oauthParams())
	require.NoError(t, err)
	mac := hmac.New(sha1.New, []byte("cs&ts"))
	mac.Write([]byte(base))
	wantSig := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	assert.True(t, strings.HasPrefix(header, "OAuth "), "header = %q", header)
	assert.Contains(t, header, `oauth_consumer_key="ck"`)
	assert.Contains(t, header, `oauth_nonce="abc"`)
	assert.Contains(t, header, `oauth_signature_method="HMAC-SHA1"`)
	assert.Contains(t, header, `oauth_timestamp="1700000000"`)
	assert.Contains(t, header, `oauth_token="tk"`)
	assert.Contains(t, header, `oauth_version="1.0"`)
	assert.Contains(t, header, `oauth_signature="`+percentEncode(wantSig)+`"`)
	assert.NotContains(t, header, "returnUsers", "request params must not leak into the header")
}

func TestSign_WithoutToken(t *testing.T) {
	creds := fixedCredentials()
	creds.Token = ""
	creds.TokenSecret = ""

	header, err := creds.Sign("POST", "https://www.upwork.com/api/auth/v1/oauth/token/request", nil)
	require.NoError(t, err)
	assert.NotContains(t, header, "oauth_token=")
}

func TestSign_DefaultNonceIsUnique(t *testing.T) {
	creds, err := NewCredentials("ck", "cs", "tk", "ts")
	require.NoError(t, err)

	a := creds.oauthParams()["oauth_nonce"]
	b := creds.oauthParams()["oauth_nonce"]
	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
}

func TestSign_InvalidURL(t *testing.T) {
	_, err := fixedCredentials().Sign("GET", "://bad", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse url")
}
