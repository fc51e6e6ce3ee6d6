// Package chain defines the data exchanged with blockchain data sources.
package chain

import (
	"errors"

	"github.com/btcsuite/btcd/wire"
)

// ErrEmptyResponse is returned by a data source when the node answered with an
// empty body, which usually means the requested endpoint is disabled.
var ErrEmptyResponse = errors.New("empty response from data source")

// BlockData is the answer to a block-by-hash request. Sources either return a
// full block or, for header-only backends, just the header.
type BlockData struct {
	Block  *wire.MsgBlock
	Header *wire.BlockHeader
}

// FullBlock wraps a complete block.
func FullBlock(block *wire.MsgBlock) BlockData {
	return BlockData{Block: block, Header: &block.Header}
}

// HeaderOnly wraps a bare header.
func HeaderOnly(header *wire.BlockHeader) BlockData {
	return BlockData{Header: header}
}

// IsFullBlock reports whether the data carries transactions.
func (d BlockData) IsFullBlock() bool {
	return d.Block != nil
}
