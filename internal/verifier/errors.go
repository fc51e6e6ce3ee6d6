package verifier

import "errors"

var (
	// ErrUnknownChain means the data source could not provide a hash or block
	// for the requested height.
	ErrUnknownChain = errors.New("unknown chain")
	// ErrUnknownTx means the decoded transaction or output does not exist in the block.
	ErrUnknownTx = errors.New("unknown transaction")

	ErrAlreadyResolved     = errors.New("pending lookup already resolved")
	ErrLookupPending       = errors.New("lookup not resolved yet")
	ErrEventPumpAlreadySet = errors.New("peer event pump already set")
)

func lookupStatus(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrUnknownChain):
		return "unknown_chain"
	case errors.Is(err, ErrUnknownTx):
		return "unknown_tx"
	default:
		return "error"
	}
}
