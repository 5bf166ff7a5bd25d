package atoll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeOutcomeSuccess(t *testing.T) {
	body := []byte(`{"jsonrpc":"2.0","id":1,"result":{"context":{"apiVersion":"1.18.0","slot":337},"value":260000}}`)

	out, err := decodeOutcome[RPCResult[uint64]](body)
	require.NoError(t, err)
	require.NotNil(t, out.Success)
	assert.Nil(t, out.InvalidJSON)
	assert.True(t, out.Ok())

	assert.Equal(t, "2.0", out.Success.Jsonrpc)
	assert.Equal(t, uint8(1), out.Success.ID)
	assert.Equal(t, uint64(337), out.Success.Result.Context.Slot)
	require.NotNil(t, out.Success.Result.Value)
	assert.Equal(t, uint64(260000), *out.Success.Result.Value)
}

func TestDecodeOutcomeToleratesExtraTopLevelFields(t *testing.T) {
	body := []byte(`{"jsonrpc":"2.0","id":1,"result":9,"nodeVersion":"1.18.0"}`)

	out, err := decodeOutcome[uint64](body)
	require.NoError(t, err)
	require.True(t, out.Ok())
	assert.Equal(t, uint64(9), out.Success.Result)
}

func TestDecodeOutcomeProtocolError(t *testing.T) {
	body := []byte(`{"jsonrpc":"2.0","id":1,"error":{"code":-32602,"message":"Invalid params"}}`)

	out, err := decodeOutcome[RPCResult[uint64]](body)
	require.NoError(t, err)
	require.NotNil(t, out.InvalidJSON)
	assert.Nil(t, out.Success)
	assert.False(t, out.Ok())

	assert.Equal(t, "2.0", out.InvalidJSON.Jsonrpc)
	assert.Equal(t, uint8(1), out.InvalidJSON.ID)
	assert.Equal(t, int64(-32602), out.InvalidJSON.Err.Code)
	assert.Equal(t, "Invalid params", out.InvalidJSON.Err.Message)
	assert.Nil(t, out.InvalidJSON.Err.Data)
}

func TestDecodeOutcomeProtocolErrorData(t *testing.T) {
	body := []byte(`{"jsonrpc":"2.0","id":1,"error":{"code":-32005,"message":"Node is behind","data":"150 slots"}}`)

	out, err := decodeOutcome[uint64](body)
	require.NoError(t, err)
	require.NotNil(t, out.InvalidJSON)
	require.NotNil(t, out.InvalidJSON.Err.Data)
	assert.Equal(t, "150 slots", *out.InvalidJSON.Err.Data)
}

func TestDecodeOutcomeSuccessShapeWinsTies(t *testing.T) {
	// No discriminant field exists on the wire; a body satisfying both
	// shapes decodes as the success envelope.
	body := []byte(`{"jsonrpc":"2.0","id":1,"result":9,"error":{"code":1,"message":"x"}}`)

	out, err := decodeOutcome[uint64](body)
	require.NoError(t, err)
	require.True(t, out.Ok())
	assert.Nil(t, out.InvalidJSON)
	assert.Equal(t, uint64(9), out.Success.Result)
}

func TestDecodeOutcomeNeitherShape(t *testing.T) {
	out, err := decodeOutcome[uint64]([]byte(`{"not":"recognized"}`))
	require.Error(t, err)
	assert.Nil(t, out.Success)
	assert.Nil(t, out.InvalidJSON)

	// The diagnostics point at the success shape's first mismatch, the
	// expected common case.
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "jsonrpc", decodeErr.Path)
	assert.Equal(t, "missing field", decodeErr.Msg)
}

func TestDecodeOutcomeMissingResult(t *testing.T) {
	_, err := decodeOutcome[uint64]([]byte(`{"jsonrpc":"2.0","id":1}`))

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "result", decodeErr.Path)
}

func TestDecodeOutcomeResultTypeMismatchPath(t *testing.T) {
	body := []byte(`{"jsonrpc":"2.0","id":1,"result":{"context":{"apiVersion":"1.18.0","slot":"oops"},"value":1}}`)

	_, err := decodeOutcome[RPCResult[uint64]](body)
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "result.context.slot", decodeErr.Path)
	assert.Contains(t, decodeErr.Msg, "string")
}

func TestDecodeOutcomeErrorEnvelopeMissingMessage(t *testing.T) {
	// The error-phase failure is not surfaced; the success-phase one is.
	_, err := decodeOutcome[uint64]([]byte(`{"jsonrpc":"2.0","id":1,"error":{"code":5}}`))

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "result", decodeErr.Path)
}

func TestDecodeOutcomeInvalidSyntax(t *testing.T) {
	_, err := decodeOutcome[uint64]([]byte(`hello`))

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Contains(t, decodeErr.Msg, "invalid json")
}
