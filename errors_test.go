package atoll

import (
	"context"
	"crypto/tls"
	"errors"
	"net"
	"net/url"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type timeoutErr struct{}

func (timeoutErr) Error() string { return "operation timed out" }
func (timeoutErr) Timeout() bool { return true }

func TestClassifyTransportKinds(t *testing.T) {
	cases := []struct {
		name string
		err  error
		kind HTTPErrorKind
	}{
		{"url timeout", &url.Error{Op: "Post", URL: "http://node", Err: timeoutErr{}}, HTTPTimeout},
		{"context deadline", context.DeadlineExceeded, HTTPTimeout},
		{"dns", &net.DNSError{Err: "no such host", Name: "bogus.invalid", IsNotFound: true}, HTTPAddressNotFound},
		{"tls record", tls.RecordHeaderError{Msg: "first record does not look like a TLS handshake"}, HTTPCreateConnection},
		{"connection refused", &net.OpError{Op: "dial", Net: "tcp", Err: os.NewSyscallError("connect", syscall.ECONNREFUSED)}, HTTPCreateConnection},
		{"connection reset", &net.OpError{Op: "read", Net: "tcp", Err: os.NewSyscallError("read", syscall.ECONNRESET)}, HTTPCreateConnection},
		{"chunk length", errors.New("net/http: malformed chunked encoding"), HTTPMalformedChunkLength},
		{"chunk end", errors.New("http: unexpected EOF reading trailer"), HTTPMalformedChunkEnd},
		{"content length", errors.New(`bad Content-Length "nope"`), HTTPMalformedContentLength},
		{"headers overflow", errors.New("net/http: server response headers exceeded 1048576 bytes"), HTTPHeadersOverflow},
		{"status line", errors.New(`malformed HTTP response "garbage"`), HTTPStatusLineOverflow},
		{"status code", errors.New(`malformed HTTP status code "..."`), HTTPStatusLineOverflow},
		{"response header text", errors.New("malformed MIME header line: \xf0"), HTTPInvalidUTF8Response},
		{"redirect location", errors.New("303 response missing Location header"), HTTPRedirectLocationMissing},
		{"redirect loop", errors.New("redirect loop detected for /rpc"), HTTPInfiniteRedirectionLoop},
		{"too many redirects", errors.New("stopped after 10 redirects"), HTTPTooManyRedirections},
		{"proxy auth rejected", errors.New("407 Proxy Authentication Required"), HTTPBadProxyCreds},
		{"proxy creds malformed", errors.New("invalid proxy credentials"), HTTPInvalidProxyCreds},
		{"proxy address", errors.New(`invalid proxy address "::"`), HTTPBadProxy},
		{"proxy connect", errors.New("proxyconnect tcp: dial tcp 10.0.0.1:3128: i/o failure"), HTTPProxyConnect},
		{"domain encoding", errors.New(`parse "http://exa mple.com": invalid character " " in host name`), HTTPInvalidDomainName},
		{"unclassified", errors.New("mystery failure"), HTTPOther},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := classifyTransport(tc.err)
			require.NotNil(t, got)
			assert.Equal(t, tc.kind, got.Kind, "kind %s", got.Kind)
			// The original message survives the unification.
			assert.Equal(t, tc.err.Error(), got.Detail)
		})
	}
}

func TestClassifyTransportWrappedTimeout(t *testing.T) {
	err := &url.Error{Op: "Post", URL: "http://node", Err: context.DeadlineExceeded}
	got := classifyTransport(err)
	assert.Equal(t, HTTPTimeout, got.Kind)
}

func TestHTTPErrorKindStringsUnique(t *testing.T) {
	seen := make(map[string]HTTPErrorKind)
	for k := HTTPInvalidUTF8Body; k <= HTTPOther; k++ {
		s := k.String()
		prev, dup := seen[s]
		require.Falsef(t, dup, "kinds %d and %d share the string %q", prev, k, s)
		seen[s] = k
	}
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "http: timeout: deadline exceeded", (&HTTPError{Kind: HTTPTimeout, Detail: "deadline exceeded"}).Error())
	assert.Equal(t, "http: other", (&HTTPError{Kind: HTTPOther}).Error())
	assert.Equal(t, "decode: result.value: cannot decode string into uint64",
		(&DecodeError{Path: "result.value", Msg: "cannot decode string into uint64"}).Error())
	assert.Equal(t, "decode: boom", (&DecodeError{Msg: "boom"}).Error())
}
