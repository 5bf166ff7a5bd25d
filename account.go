package atoll

import (
	"context"
)

// LamportsPerSol is the number of lamports in one SOL.
const LamportsPerSol uint64 = 1_000_000_000

// Context pins the slot a response value was produced at.
type Context struct {
	APIVersion string `json:"apiVersion"`
	Slot       uint64 `json:"slot"`
}

// RPCResult is the context-wrapped value account-level methods return.
// Value is nil when the node holds no value for the query, e.g. an
// unknown account.
type RPCResult[U any] struct {
	Context Context `json:"context"`
	Value   *U      `json:"value"`
}

// AccountInfo as returned by getAccountInfo.
// Result matches the result in the docs https://solana.com/docs/rpc/http/getaccountinfo
type AccountInfo struct {
	// Data holds the account data and the encoding it is in.
	Data       [2]string `json:"data"`
	Executable bool      `json:"executable"`
	Lamports   uint64    `json:"lamports"`
	Owner      string    `json:"owner"`
	RentEpoch  uint64    `json:"rentEpoch"`
}

// GetAccountInfo returns all information associated with the account of
// the provided public key. Returns an error if the http call or the
// decode fail, NOT if the node reports a protocol error: check the
// response body outcome for that.
func (c *Client) GetAccountInfo(ctx context.Context, cluster Cluster, publicKey string, commitment Commitment, encoding Encoding) (*HTTPResponse[RPCResult[AccountInfo]], error) {
	req := NewRequest().
		WithMethod(GetAccountInfo).
		WithCluster(cluster).
		WithValue(publicKey).
		WithExtra("commitment", commitment).
		WithExtra("encoding", encoding)
	return Dispatch[RPCResult[AccountInfo]](ctx, c, req)
}

// GetBalance returns the lamport balance of the account of the provided
// public key.
// Result matches the result in the docs https://solana.com/docs/rpc/http/getbalance
func (c *Client) GetBalance(ctx context.Context, cluster Cluster, publicKey string, commitment Commitment) (*HTTPResponse[RPCResult[uint64]], error) {
	req := NewRequest().
		WithMethod(GetBalance).
		WithCluster(cluster).
		WithValue(publicKey).
		WithExtra("commitment", commitment)
	return Dispatch[RPCResult[uint64]](ctx, c, req)
}
