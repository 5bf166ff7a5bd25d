package rpc

import (
	"net/http"
)

// HTTP is the transport contract consumed by the client.
// *http.Client satisfies it.
type HTTP interface {
	Do(req *http.Request) (*http.Response, error)
}

// RawResponse is one completed HTTP exchange before any JSON
// interpretation: the status line pieces, the headers and the raw body
// bytes exactly as received.
type RawResponse struct {
	StatusCode   int
	Headers      map[string]string
	ReasonPhrase string
	Body         []byte
}
