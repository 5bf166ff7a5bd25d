package atoll

import (
	"fmt"
	"strings"
)

// Cluster selects the Solana RPC deployment to connect to.
type Cluster int

const (
	// LocalNet is a locally run test validator.
	LocalNet Cluster = iota
	// DevNet is the developer cluster.
	DevNet
	// TestNet is the staging cluster.
	TestNet
	// MainNetBeta is the production cluster.
	MainNetBeta
)

// URL returns the default base URL of the cluster. Per-client overrides
// are applied by Client.endpoint.
func (c Cluster) URL() string {
	switch c {
	case LocalNet:
		return "https://127.0.0.1:8899"
	case TestNet:
		return "https://api.testnet.solana.com"
	case MainNetBeta:
		return "https://api.mainnet-beta.solana.com"
	default:
		return "https://api.devnet.solana.com"
	}
}

func (c Cluster) String() string {
	switch c {
	case LocalNet:
		return "localnet"
	case TestNet:
		return "testnet"
	case MainNetBeta:
		return "mainnet-beta"
	default:
		return "devnet"
	}
}

// ParseCluster maps a cluster name to its Cluster. Unlike Commitment and
// Encoding, an unknown name is a hard error: a request can only target one
// of the known deployments.
func ParseCluster(s string) (Cluster, error) {
	switch strings.ToLower(s) {
	case "localnet":
		return LocalNet, nil
	case "devnet":
		return DevNet, nil
	case "testnet":
		return TestNet, nil
	case "mainnet-beta":
		return MainNetBeta, nil
	default:
		return DevNet, fmt.Errorf("unknown cluster %q", s)
	}
}

// Commitment gives a measure of the network confirmation and stake levels
// on a particular block.
type Commitment string

const (
	// Processed means a block was processed by RPC servers.
	Processed Commitment = "processed"
	// Confirmed means a block has been confirmed.
	Confirmed Commitment = "confirmed"
	// Finalized means a block has been finalized.
	Finalized Commitment = "finalized"
	// InvalidCommitment is the sentinel an unrecognized input maps to.
	// Callers must check for it themselves before dispatching.
	InvalidCommitment Commitment = "invalid_commitment"
)

// ParseCommitment maps a string to its Commitment. Unrecognized input maps
// to InvalidCommitment rather than failing.
func ParseCommitment(s string) Commitment {
	switch strings.ToLower(s) {
	case "processed":
		return Processed
	case "confirmed":
		return Confirmed
	case "finalized":
		return Finalized
	default:
		return InvalidCommitment
	}
}

// Encoding is the data format requested for account data.
type Encoding string

const (
	Base58 Encoding = "base58"
	Base64 Encoding = "base64"
	// UnsupportedEncoding is the sentinel an unrecognized input maps to.
	UnsupportedEncoding Encoding = "unsupported_encoding"
)

// ParseEncoding maps a string to its Encoding. Unrecognized input maps to
// UnsupportedEncoding rather than failing.
func ParseEncoding(s string) Encoding {
	switch strings.ToLower(s) {
	case "base58":
		return Base58
	case "base64":
		return Base64
	default:
		return UnsupportedEncoding
	}
}
