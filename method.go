package atoll

// Method is the closed set of RPC calls this client supports. Each variant
// maps to exactly one wire-format method name; dynamic method names are not
// accepted. Adding a method means adding a variant here and its wire name
// in String.
type Method int

const (
	GetAccountInfo Method = iota
	GetBalance
	GetBlock
	GetBlockHeight
)

// String returns the wire-format name of the method.
func (m Method) String() string {
	switch m {
	case GetAccountInfo:
		return "getAccountInfo"
	case GetBalance:
		return "getBalance"
	case GetBlock:
		return "getBlock"
	case GetBlockHeight:
		return "getBlockHeight"
	default:
		return "unsupported"
	}
}

// supported reports whether the value names a method wired into dispatch.
// Values outside the set are a contract violation reported as
// ErrUnsupportedMethod.
func (m Method) supported() bool {
	return m >= GetAccountInfo && m <= GetBlockHeight
}
