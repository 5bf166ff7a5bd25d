package atoll

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"syscall"
)

// ErrUnsupportedMethod reports a Method value outside the supported set.
// It is a contract violation by the caller, not a runtime environment
// failure; file a bug report if the method should exist.
var ErrUnsupportedMethod = errors.New("unsupported solana rpc method")

// HTTPErrorKind enumerates the transport failure classes. Every failure
// that prevents a well-formed HTTP response from being obtained maps to
// exactly one kind.
type HTTPErrorKind int

const (
	// HTTPInvalidUTF8Body — the response body is not valid UTF-8.
	HTTPInvalidUTF8Body HTTPErrorKind = iota
	// HTTPCreateConnection — the TCP or TLS connection could not be
	// created.
	HTTPCreateConnection
	// HTTPMalformedChunkLength — a chunk length in a chunked response
	// could not be parsed.
	HTTPMalformedChunkLength
	// HTTPMalformedChunkEnd — a chunk did not end where its length said
	// it would.
	HTTPMalformedChunkEnd
	// HTTPMalformedContentLength — the Content-Length header value could
	// not be parsed.
	HTTPMalformedContentLength
	// HTTPHeadersOverflow — the response headers surpassed the size limit.
	HTTPHeadersOverflow
	// HTTPStatusLineOverflow — the status line could not be read.
	HTTPStatusLineOverflow
	// HTTPAddressNotFound — the host did not resolve to an address.
	HTTPAddressNotFound
	// HTTPRedirectLocationMissing — a redirect response carried no
	// Location header.
	HTTPRedirectLocationMissing
	// HTTPInfiniteRedirectionLoop — redirections formed a loop.
	HTTPInfiniteRedirectionLoop
	// HTTPTooManyRedirections — the redirect limit was exhausted.
	HTTPTooManyRedirections
	// HTTPInvalidUTF8Response — headers or status line contain invalid
	// text where valid text is required.
	HTTPInvalidUTF8Response
	// HTTPInvalidDomainName — the URL host could not be encoded as a
	// domain name.
	HTTPInvalidDomainName
	// HTTPBadProxy — the proxy address was not properly formatted.
	HTTPBadProxy
	// HTTPBadProxyCreds — the proxy rejected the credentials.
	HTTPBadProxyCreds
	// HTTPProxyConnect — the connection to the proxy failed.
	HTTPProxyConnect
	// HTTPInvalidProxyCreds — the proxy credentials were malformed.
	HTTPInvalidProxyCreds
	// HTTPTimeout — the exchange did not complete within the configured
	// timeout.
	HTTPTimeout
	// HTTPOther should never be seen. The detail string locates the
	// unclassified failure; please open an issue carrying it.
	HTTPOther
)

func (k HTTPErrorKind) String() string {
	switch k {
	case HTTPInvalidUTF8Body:
		return "invalid utf-8 in body"
	case HTTPCreateConnection:
		return "connection creation"
	case HTTPMalformedChunkLength:
		return "malformed chunk length"
	case HTTPMalformedChunkEnd:
		return "malformed chunk end"
	case HTTPMalformedContentLength:
		return "malformed content-length"
	case HTTPHeadersOverflow:
		return "headers overflow"
	case HTTPStatusLineOverflow:
		return "status line overflow"
	case HTTPAddressNotFound:
		return "address not found"
	case HTTPRedirectLocationMissing:
		return "redirect location missing"
	case HTTPInfiniteRedirectionLoop:
		return "infinite redirection loop"
	case HTTPTooManyRedirections:
		return "too many redirections"
	case HTTPInvalidUTF8Response:
		return "invalid utf-8 in response"
	case HTTPInvalidDomainName:
		return "invalid domain name"
	case HTTPBadProxy:
		return "bad proxy"
	case HTTPBadProxyCreds:
		return "bad proxy credentials"
	case HTTPProxyConnect:
		return "proxy connect"
	case HTTPInvalidProxyCreds:
		return "invalid proxy credentials"
	case HTTPTimeout:
		return "timeout"
	default:
		return "other"
	}
}

// HTTPError is a transport-layer failure: anything that prevented a
// well-formed HTTP response body from being obtained. Detail keeps the
// original message so the failure can be diagnosed without re-running
// the request.
type HTTPError struct {
	Kind   HTTPErrorKind
	Detail string
}

func (e *HTTPError) Error() string {
	if e.Detail == "" {
		return "http: " + e.Kind.String()
	}
	return "http: " + e.Kind.String() + ": " + e.Detail
}

// DecodeError is a decode-layer failure: the response arrived but its body
// matched neither the success nor the protocol error shape. Path is the
// dotted path to the first structural mismatch on the success shape, empty
// when the failure has no location.
type DecodeError struct {
	Path string
	Msg  string
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return "decode: " + e.Msg
	}
	return "decode: " + e.Path + ": " + e.Msg
}

// newDecodeError renders a json decoding failure, extracting the dotted
// field path when the standard library reports one. prefix locates the
// envelope field the failure happened under.
func newDecodeError(prefix string, err error) *DecodeError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		path := typeErr.Field
		switch {
		case prefix != "" && path != "":
			path = prefix + "." + path
		case prefix != "":
			path = prefix
		}
		return &DecodeError{
			Path: path,
			Msg:  fmt.Sprintf("cannot decode %s into %s", typeErr.Value, typeErr.Type),
		}
	}
	var synErr *json.SyntaxError
	if errors.As(err, &synErr) {
		return &DecodeError{
			Path: prefix,
			Msg:  fmt.Sprintf("invalid json at offset %d: %s", synErr.Offset, synErr),
		}
	}
	return &DecodeError{Path: prefix, Msg: err.Error()}
}

// transportMarkers maps failure conditions net/http reports only through
// error strings onto their kinds. Checked in order, first match wins.
var transportMarkers = []struct {
	marker string
	kind   HTTPErrorKind
}{
	{"malformed chunked encoding", HTTPMalformedChunkLength},
	{"reading trailer", HTTPMalformedChunkEnd},
	{"bad Content-Length", HTTPMalformedContentLength},
	{"response headers exceeded", HTTPHeadersOverflow},
	{"malformed HTTP response", HTTPStatusLineOverflow},
	{"malformed HTTP status code", HTTPStatusLineOverflow},
	{"malformed MIME header", HTTPInvalidUTF8Response},
	{"missing Location header", HTTPRedirectLocationMissing},
	{"redirect loop", HTTPInfiniteRedirectionLoop},
	{"stopped after", HTTPTooManyRedirections},
	{"Proxy Authentication Required", HTTPBadProxyCreds},
	{"invalid proxy credentials", HTTPInvalidProxyCreds},
	{"invalid proxy address", HTTPBadProxy},
	{"proxyconnect", HTTPProxyConnect},
	{"invalid URL", HTTPInvalidDomainName},
	{"invalid character", HTTPInvalidDomainName},
}

// classifyTransport folds the heterogeneous error surface of the transport
// into the closed HTTPError taxonomy, one kind per failure class. The
// original message is always retained in Detail.
func classifyTransport(err error) *HTTPError {
	detail := err.Error()

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return &HTTPError{Kind: HTTPTimeout, Detail: detail}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &HTTPError{Kind: HTTPTimeout, Detail: detail}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &HTTPError{Kind: HTTPAddressNotFound, Detail: detail}
	}

	var recordErr tls.RecordHeaderError
	var certErr *tls.CertificateVerificationError
	var unknownAuthority x509.UnknownAuthorityError
	switch {
	case errors.As(err, &recordErr),
		errors.As(err, &certErr),
		errors.As(err, &unknownAuthority),
		errors.Is(err, syscall.ECONNREFUSED),
		errors.Is(err, syscall.ECONNRESET),
		errors.Is(err, syscall.EPIPE):
		return &HTTPError{Kind: HTTPCreateConnection, Detail: detail}
	}

	for _, m := range transportMarkers {
		if strings.Contains(detail, m.marker) {
			return &HTTPError{Kind: m.kind, Detail: detail}
		}
	}

	return &HTTPError{Kind: HTTPOther, Detail: detail}
}
