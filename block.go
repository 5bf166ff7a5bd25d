package atoll

import (
	"context"
	"encoding/json"
)

// Block is a confirmed block in the ledger.
// Result matches the result in the docs https://solana.com/docs/rpc/http/getblock
type Block struct {
	BlockHeight       uint64       `json:"blockHeight"`
	BlockTime         uint64       `json:"blockTime"`
	Blockhash         string       `json:"blockhash"`
	ParentSlot        uint64       `json:"parentSlot"`
	PreviousBlockhash string       `json:"previousBlockhash"`
	Rewards           []Reward     `json:"rewards"`
	Transactions      []TxWithMeta `json:"transactions"`
}

// Reward credited or debited to an account while producing the block.
type Reward struct {
	PublicKey   string     `json:"pubkey"`
	Lamports    int64      `json:"lamports"`
	PostBalance uint64     `json:"postBalance"`
	RewardType  RewardType `json:"rewardType"`
	Commission  *uint8     `json:"commission"`
}

// RewardType is the source of a reward.
type RewardType string

const (
	RewardFee     RewardType = "Fee"
	RewardRent    RewardType = "Rent"
	RewardStaking RewardType = "Staking"
	RewardVoting  RewardType = "Voting"
)

// TxWithMeta pairs an encoded transaction with its processing metadata.
type TxWithMeta struct {
	Meta TxMeta `json:"meta"`
	// Transaction holds the transaction payload and the encoding it is in.
	Transaction [2]string `json:"transaction"`
}

// TxMeta is the processing metadata of one transaction in a block. Err and
// Status are kept opaque: their shape depends on the failing program.
type TxMeta struct {
	Err                  json.RawMessage        `json:"err"`
	Status               json.RawMessage        `json:"status"`
	Fee                  uint64                 `json:"fee"`
	PreBalances          []uint64               `json:"preBalances"`
	PostBalances         []uint64               `json:"postBalances"`
	InnerInstructions    []InnerInstructions    `json:"innerInstructions"`
	LogMessages          []string               `json:"logMessages"`
	PreTokenBalances     []TokenBalance         `json:"preTokenBalances"`
	PostTokenBalances    []TokenBalance         `json:"postTokenBalances"`
	Rewards              []Reward               `json:"rewards"`
	LoadedAddresses      *LoadedAddresses       `json:"loadedAddresses"`
	ReturnData           *TransactionReturnData `json:"returnData"`
	ComputeUnitsConsumed *uint64                `json:"computeUnitsConsumed"`
}

// TokenBalance is a token account balance before or after a transaction.
type TokenBalance struct {
	AccountIndex  uint8       `json:"accountIndex"`
	Mint          string      `json:"mint"`
	Owner         string      `json:"owner"`
	UITokenAmount TokenAmount `json:"uiTokenAmount"`
}

// TokenAmount is a token amount in raw and display form.
type TokenAmount struct {
	Amount         string  `json:"amount"`
	Decimals       uint8   `json:"decimals"`
	UIAmount       float64 `json:"uiAmount"`
	UIAmountString string  `json:"uiAmountString"`
}

// InnerInstructions lists the cross-program instructions invoked by the
// transaction instruction at Index.
type InnerInstructions struct {
	Index        uint8         `json:"index"`
	Instructions []Instruction `json:"instructions"`
}

// Instruction is one compiled program instruction.
type Instruction struct {
	ProgramIDIndex uint8   `json:"programIdIndex"`
	Accounts       []uint8 `json:"accounts"`
	Data           string  `json:"data"`
}

// AccountMeta describes how an instruction uses an account.
type AccountMeta struct {
	PublicKey  string `json:"pubkey"`
	IsSigner   bool   `json:"isSigner"`
	IsWritable bool   `json:"isWritable"`
}

// LoadedAddresses are the addresses a transaction loaded from lookup
// tables.
type LoadedAddresses struct {
	Writable []string `json:"writable"`
	Readonly []string `json:"readonly"`
}

// TransactionReturnData is the return value a program emitted.
type TransactionReturnData struct {
	ProgramID string `json:"programId"`
	Data      []byte `json:"data"`
}

// GetBlock returns identity and transaction information about a confirmed
// block at the given slot. Returns an error if the http call or the decode
// fail, NOT if the node reports a protocol error: check the response body
// outcome for that.
// Result matches the result in the docs https://solana.com/docs/rpc/http/getblock
func (c *Client) GetBlock(ctx context.Context, cluster Cluster, slot uint64, commitment Commitment) (*HTTPResponse[Block], error) {
	req := NewRequest().
		WithMethod(GetBlock).
		WithCluster(cluster).
		WithValue(slot).
		WithExtra("commitment", commitment)
	return Dispatch[Block](ctx, c, req)
}

// GetBlockHeight returns the current block height of the node.
// Result matches the result in the docs https://solana.com/docs/rpc/http/getblockheight
func (c *Client) GetBlockHeight(ctx context.Context, cluster Cluster, commitment Commitment) (*HTTPResponse[uint64], error) {
	req := NewRequest().
		WithMethod(GetBlockHeight).
		WithCluster(cluster).
		WithExtra("commitment", commitment)
	return Dispatch[uint64](ctx, c, req)
}
