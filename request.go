package atoll

import (
	"bytes"
	"encoding/json"
)

type extra struct {
	key   string
	value any
}

// Request accumulates the parameters of one RPC call. Every mutator copies
// the request value, so a partially-built request is never shared between
// two call sites; Dispatch consumes the finished value, serializes it once
// and discards it. A Request performs no I/O itself.
type Request struct {
	jsonrpc string
	id      uint8
	method  Method
	value   any
	cluster Cluster
	extras  []extra
}

// NewRequest returns a request with the defaults: protocol version "2.0",
// id 1, GetAccountInfo on DevNet, no primary value and no extras.
func NewRequest() Request {
	return Request{
		jsonrpc: "2.0",
		id:      1,
		method:  GetAccountInfo,
		cluster: DevNet,
	}
}

// WithJSONRPC overrides the protocol version string.
func (r Request) WithJSONRPC(version string) Request {
	r.jsonrpc = version
	return r
}

// WithID overrides the caller-chosen request identifier.
func (r Request) WithID(id uint8) Request {
	r.id = id
	return r
}

// WithMethod selects the RPC method of the call.
func (r Request) WithMethod(method Method) Request {
	r.method = method
	return r
}

// WithValue sets the primary positional parameter. A request without a
// value serializes it as null.
func (r Request) WithValue(value any) Request {
	r.value = value
	return r
}

// WithCluster selects the target cluster.
func (r Request) WithCluster(cluster Cluster) Request {
	r.cluster = cluster
	return r
}

// WithExtra appends a named parameter. Repeated keys are all retained in
// insertion order; the serialized object keeps the last value for a key.
func (r Request) WithExtra(key string, value any) Request {
	// Full-slice append: earlier copies of the request keep their own
	// extras list.
	r.extras = append(r.extras[:len(r.extras):len(r.extras)], extra{key: key, value: value})
	return r
}

// marshalBody seals the request into its JSON-RPC envelope. params holds
// the primary value alone, or the primary value followed by one object
// folded from the extras list. The output is deterministic for identical
// field values.
func (r Request) marshalBody() ([]byte, error) {
	value, err := json.Marshal(r.value)
	if err != nil {
		return nil, err
	}
	params := []json.RawMessage{value}
	if len(r.extras) > 0 {
		object, err := marshalExtras(r.extras)
		if err != nil {
			return nil, err
		}
		params = append(params, object)
	}
	return json.Marshal(struct {
		Jsonrpc string            `json:"jsonrpc"`
		ID      uint8             `json:"id"`
		Method  string            `json:"method"`
		Params  []json.RawMessage `json:"params"`
	}{r.jsonrpc, r.id, r.method.String(), params})
}

// marshalExtras folds the ordered extras list into one JSON object. Keys
// keep their first-insertion position; a repeated key keeps its last
// value.
func marshalExtras(extras []extra) (json.RawMessage, error) {
	keys := make([]string, 0, len(extras))
	values := make(map[string]json.RawMessage, len(extras))
	for _, e := range extras {
		v, err := json.Marshal(e.value)
		if err != nil {
			return nil, err
		}
		if _, seen := values[e.key]; !seen {
			keys = append(keys, e.key)
		}
		values[e.key] = v
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(values[k])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
