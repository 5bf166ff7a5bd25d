package atoll

import (
	"context"
	"fmt"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/sebamiro/atoll/internal/rpc"
)

// DefaultTimeout bounds one HTTP exchange when Client.Timeout is unset.
const DefaultTimeout = 60 * time.Second

// HTTP is the transport the client performs exchanges through.
// *http.Client satisfies it.
type HTTP interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client dispatches sealed requests. The zero value is usable: default
// transport, default timeout, default cluster URLs, no logging. A Client
// holds no per-call state, so one instance may serve concurrent calls.
type Client struct {
	// HTTP is the transport; nil means http.DefaultClient.
	HTTP HTTP
	// Timeout bounds one exchange; zero means DefaultTimeout.
	Timeout time.Duration
	// Endpoints overrides the base URL per cluster.
	Endpoints map[Cluster]string
	// Logger, when set, receives debug logs per dispatch.
	Logger *zerolog.Logger
}

func (c *Client) http() HTTP {
	if c.HTTP == nil {
		return http.DefaultClient
	}
	return c.HTTP
}

func (c *Client) timeout() time.Duration {
	if c.Timeout <= 0 {
		return DefaultTimeout
	}
	return c.Timeout
}

// endpoint resolves the base URL for the cluster, preferring configured
// overrides over the built-in cluster URLs.
func (c *Client) endpoint(cluster Cluster) string {
	if url, ok := c.Endpoints[cluster]; ok {
		return url
	}
	return cluster.URL()
}

var nopLogger = zerolog.Nop()

func (c *Client) logger() *zerolog.Logger {
	if c.Logger == nil {
		return &nopLogger
	}
	return c.Logger
}

// Dispatch seals req, performs exactly one HTTP POST against the cluster
// endpoint and discriminates the response body into an HTTPResponse.
// Transport failures come back as *HTTPError, bodies matching neither
// response shape as *DecodeError. There are no retries and no partial
// results: every failure is terminal for the call.
func Dispatch[T any](ctx context.Context, c *Client, req Request) (*HTTPResponse[T], error) {
	if !req.method.supported() {
		return nil, ErrUnsupportedMethod
	}
	body, err := req.marshalBody()
	if err != nil {
		return nil, fmt.Errorf("seal request: %w", err)
	}

	url := c.endpoint(req.cluster)
	c.logger().Debug().
		Stringer("method", req.method).
		Stringer("cluster", req.cluster).
		Str("url", url).
		Msg("dispatch")

	raw, err := rpc.Post(ctx, c.http(), url, body, c.timeout())
	if err != nil {
		return nil, classifyTransport(err)
	}
	if len(raw.Body) == 0 {
		return nil, &HTTPError{Kind: HTTPOther, Detail: "empty response body"}
	}
	if !utf8.Valid(raw.Body) {
		return nil, &HTTPError{Kind: HTTPInvalidUTF8Body, Detail: "response body is not valid utf-8"}
	}

	outcome, err := decodeOutcome[T](raw.Body)
	if err != nil {
		return nil, err
	}
	c.logger().Debug().
		Int("status", raw.StatusCode).
		Bool("ok", outcome.Ok()).
		Msg("response")

	return &HTTPResponse[T]{
		StatusCode:   raw.StatusCode,
		Headers:      raw.Headers,
		ReasonPhrase: raw.ReasonPhrase,
		Body:         outcome,
	}, nil
}
