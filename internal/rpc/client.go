package rpc

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Post performs a single JSON POST exchange against url and returns the raw
// response. Every error return is a transport failure; no interpretation of
// the body happens here.
func Post(ctx context.Context, client HTTP, url string, body []byte, timeout time.Duration) (*RawResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Join(errors.New("rpc, request creation:"), err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	headers := make(map[string]string, len(resp.Header))
	for k, vs := range resp.Header {
		// Headers with multiple values keep the first one; keys stay
		// unique in the response mapping.
		headers[k] = vs[0]
	}

	return &RawResponse{
		StatusCode:   resp.StatusCode,
		Headers:      headers,
		ReasonPhrase: reasonPhrase(resp),
		Body:         raw,
	}, nil
}

// reasonPhrase strips the numeric code from the status line, e.g.
// "200 OK" -> "OK".
func reasonPhrase(resp *http.Response) string {
	return strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
}
