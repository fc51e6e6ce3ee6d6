package verifier

import (
	"context"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/chanverifier/internal/chain"
	"github.com/goodnatureofminers/chanverifier/internal/model"
	"go.uber.org/zap"
)

const heightLookupHint = "make sure the node serves block hashes by height (bitcoind: -rest=1)"

// fetchBlock resolves the hash at height, then downloads that block.
func (v *ChainVerifier) fetchBlock(ctx context.Context, height uint32) (*wire.MsgBlock, error) {
	rawHash, err := v.source.BlockHashByHeight(ctx, height)
	if err != nil {
		if errors.Is(err, chain.ErrEmptyResponse) {
			v.logger.Error("could not find block hash: invalid response, "+heightLookupHint,
				zap.Uint32("height", height), zap.Error(err))
		} else {
			v.logger.Error("could not find block hash",
				zap.Uint32("height", height), zap.Error(err))
		}
		return nil, fmt.Errorf("%w: block hash at height %d: %w", ErrUnknownChain, height, err)
	}

	hash, err := chainhash.NewHash(rawHash)
	if err != nil {
		v.logger.Error("could not find block hash: malformed response, "+heightLookupHint,
			zap.Uint32("height", height), zap.Int("length", len(rawHash)), zap.Error(err))
		return nil, fmt.Errorf("%w: block hash at height %d: %w", ErrUnknownChain, height, err)
	}

	data, err := v.source.BlockByHash(ctx, hash)
	if err != nil {
		v.logger.Error("could not retrieve block",
			zap.Uint32("height", height), zap.Stringer("hash", hash), zap.Error(err))
		return nil, fmt.Errorf("%w: block %s at height %d: %w", ErrUnknownChain, hash, height, err)
	}
	if !data.IsFullBlock() {
		v.logger.Error("data source returned a block header where a full block was expected",
			zap.Uint32("height", height), zap.Stringer("hash", hash))
		return nil, fmt.Errorf("%w: block %s at height %d: header only", ErrUnknownChain, hash, height)
	}

	return data.Block, nil
}

// extractOutput picks the funding output out of block. Only the selected
// output is kept; the block can be dropped by the caller.
func (v *ChainVerifier) extractOutput(block *wire.MsgBlock, height, txIndex uint32, outputIndex uint16) (*model.FundingOutput, error) {
	if uint64(txIndex) >= uint64(len(block.Transactions)) {
		v.logger.Error("could not find transaction in block",
			zap.Uint32("tx_index", txIndex), zap.Uint32("height", height),
			zap.Int("block_txs", len(block.Transactions)))
		return nil, fmt.Errorf("%w: transaction %d not in block at height %d", ErrUnknownTx, txIndex, height)
	}

	tx := block.Transactions[txIndex]
	if int(outputIndex) >= len(tx.TxOut) {
		txid := tx.TxHash()
		v.logger.Error("could not find output in transaction",
			zap.Uint16("output_index", outputIndex), zap.Stringer("txid", &txid),
			zap.Int("tx_outputs", len(tx.TxOut)))
		return nil, fmt.Errorf("%w: output %d not in transaction %s", ErrUnknownTx, outputIndex, txid)
	}

	return model.NewFundingOutput(tx, outputIndex), nil
}
