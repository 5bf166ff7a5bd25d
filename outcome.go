package atoll

import (
	"encoding/json"
)

// RPCResponse is the success envelope of one call.
type RPCResponse[T any] struct {
	Jsonrpc string `json:"jsonrpc"`
	ID      uint8  `json:"id"`
	Result  T      `json:"result"`
}

// ErrorDetail is the error object carried by a protocol error envelope.
type ErrorDetail struct {
	Code    int64   `json:"code"`
	Message string  `json:"message"`
	Data    *string `json:"data,omitempty"`
}

// RPCJSONError is the protocol error envelope: the server answered, but
// rejected the call.
type RPCJSONError struct {
	Jsonrpc string      `json:"jsonrpc"`
	ID      uint8       `json:"id"`
	Err     ErrorDetail `json:"error"`
}

// RequestOutcome discriminates the two well-formed response shapes.
// Exactly one of Success and InvalidJSON is set for every outcome a call
// produces; a body matching neither shape is a *DecodeError and never
// reaches this type.
type RequestOutcome[T any] struct {
	Success     *RPCResponse[T]
	InvalidJSON *RPCJSONError
}

// Ok reports whether the call produced the success envelope.
func (o RequestOutcome[T]) Ok() bool { return o.Success != nil }

// HTTPResponse is the fully decoded result of one call.
type HTTPResponse[T any] struct {
	StatusCode   int
	Headers      map[string]string
	ReasonPhrase string
	Body         RequestOutcome[T]
}

// decodeOutcome decides which outcome a response body carries. The wire
// format has no discriminant field, so both shapes are attempted and the
// first structural match wins: the success shape is the expected common
// case and is tried first, the protocol error envelope is the fallback.
// When both phases fail, the returned error carries the success-phase
// diagnostics, since that mismatch locates what the server sent that we
// did not anticipate.
func decodeOutcome[T any](body []byte) (RequestOutcome[T], error) {
	success, sErr := decodeSuccess[T](body)
	if sErr == nil {
		return RequestOutcome[T]{Success: success}, nil
	}
	if protoErr, pErr := decodeProtocolError(body); pErr == nil {
		return RequestOutcome[T]{InvalidJSON: protoErr}, nil
	}
	return RequestOutcome[T]{}, sErr
}

// decodeSuccess attempts the {jsonrpc, id, result} shape. Unknown extra
// top-level fields are tolerated; missing required fields are not.
func decodeSuccess[T any](body []byte) (*RPCResponse[T], *DecodeError) {
	var probe struct {
		Jsonrpc *string         `json:"jsonrpc"`
		ID      *uint8          `json:"id"`
		Result  json.RawMessage `json:"result"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return nil, newDecodeError("", err)
	}
	switch {
	case probe.Jsonrpc == nil:
		return nil, &DecodeError{Path: "jsonrpc", Msg: "missing field"}
	case probe.ID == nil:
		return nil, &DecodeError{Path: "id", Msg: "missing field"}
	case probe.Result == nil:
		return nil, &DecodeError{Path: "result", Msg: "missing field"}
	}
	var result T
	if err := json.Unmarshal(probe.Result, &result); err != nil {
		return nil, newDecodeError("result", err)
	}
	return &RPCResponse[T]{Jsonrpc: *probe.Jsonrpc, ID: *probe.ID, Result: result}, nil
}

// decodeProtocolError attempts the {jsonrpc, id, error: {code, message,
// data?}} shape. code and message are required, data is optional.
func decodeProtocolError(body []byte) (*RPCJSONError, *DecodeError) {
	var probe struct {
		Jsonrpc *string         `json:"jsonrpc"`
		ID      *uint8          `json:"id"`
		Err     json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return nil, newDecodeError("", err)
	}
	switch {
	case probe.Jsonrpc == nil:
		return nil, &DecodeError{Path: "jsonrpc", Msg: "missing field"}
	case probe.ID == nil:
		return nil, &DecodeError{Path: "id", Msg: "missing field"}
	case probe.Err == nil:
		return nil, &DecodeError{Path: "error", Msg: "missing field"}
	}
	var detail struct {
		Code    *int64  `json:"code"`
		Message *string `json:"message"`
		Data    *string `json:"data"`
	}
	if err := json.Unmarshal(probe.Err, &detail); err != nil {
		return nil, newDecodeError("error", err)
	}
	if detail.Code == nil || detail.Message == nil {
		return nil, &DecodeError{Path: "error", Msg: "missing code or message"}
	}
	return &RPCJSONError{
		Jsonrpc: *probe.Jsonrpc,
		ID:      *probe.ID,
		Err:     ErrorDetail{Code: *detail.Code, Message: *detail.Message, Data: detail.Data},
	}, nil
}
