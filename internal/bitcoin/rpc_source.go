package bitcoin

import (
	"context"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/chanverifier/internal/chain"
)

// RPCSource serves blocks through the node's JSON-RPC interface.
type RPCSource struct {
	rpc RPCClient
}

// NewRPCSource creates an RPCSource.
func NewRPCSource(rpc RPCClient) *RPCSource {
	return &RPCSource{rpc: rpc}
}

// BlockHashByHeight returns the raw hash bytes of the block at height.
func (s *RPCSource) BlockHashByHeight(ctx context.Context, height uint32) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	hash, err := s.rpc.GetBlockHash(int64(height))
	if err != nil {
		return nil, fmt.Errorf("get block hash at height %d: %w", height, err)
	}
	if hash == nil {
		return nil, fmt.Errorf("get block hash at height %d: %w", height, chain.ErrEmptyResponse)
	}
	return hash.CloneBytes(), nil
}

// BlockByHash fetches the full block with the given hash.
func (s *RPCSource) BlockByHash(ctx context.Context, hash *chainhash.Hash) (chain.BlockData, error) {
	if err := ctx.Err(); err != nil {
		return chain.BlockData{}, err
	}
	block, err := s.rpc.GetBlock(hash)
	if err != nil {
		return chain.BlockData{}, fmt.Errorf("get block %s: %w", hash, err)
	}
	if block == nil {
		return chain.BlockData{}, fmt.Errorf("get block %s: %w", hash, chain.ErrEmptyResponse)
	}
	return chain.FullBlock(block), nil
}
