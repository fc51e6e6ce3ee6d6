// Package verifier checks that gossiped channels are backed by real on-chain
// funding outputs.
package verifier

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/chanverifier/internal/model"
	"github.com/goodnatureofminers/chanverifier/pkg/safe"
	"github.com/goodnatureofminers/chanverifier/pkg/scid"
	"go.uber.org/zap"
)

const (
	pathAsync  = "async"
	pathDirect = "direct"
)

// ChainVerifier resolves short channel ids into funding outputs. It owns the
// funding cache and hands lookup results to the network graph.
type ChainVerifier struct {
	source   BlockSource
	graph    Graph
	gossiper Gossiper
	metrics  Metrics
	logger   *zap.Logger

	cache *FundingCache

	// pump is bound after construction because its owner is built after the
	// verifier.
	pumpMu sync.Mutex
	pump   EventPump

	inFlight sync.WaitGroup
}

// NewChainVerifier builds a ChainVerifier. gossiper may be nil.
func NewChainVerifier(
	source BlockSource,
	graph Graph,
	gossiper Gossiper,
	metrics Metrics,
	logger *zap.Logger,
) (*ChainVerifier, error) {
	if source == nil {
		return nil, errors.New("block source is required")
	}
	if graph == nil {
		return nil, errors.New("network graph is required")
	}
	if metrics == nil {
		return nil, errors.New("chain verifier metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &ChainVerifier{
		source:   source,
		graph:    graph,
		gossiper: gossiper,
		metrics:  metrics,
		logger:   logger.Named("chainVerifier"),
		cache:    NewFundingCache(),
	}, nil
}

// SetPeerEventPump binds the pump woken after every resolved lookup. It may be
// called once; lookups started before it is set do not wake anything.
func (v *ChainVerifier) SetPeerEventPump(pump EventPump) error {
	if pump == nil {
		return errors.New("peer event pump is nil")
	}

	v.pumpMu.Lock()
	defer v.pumpMu.Unlock()

	if v.pump != nil {
		return ErrEventPumpAlreadySet
	}
	v.pump = pump
	return nil
}

func (v *ChainVerifier) peerEventPump() EventPump {
	v.pumpMu.Lock()
	defer v.pumpMu.Unlock()

	return v.pump
}

// GetCachedFundingValue returns the funding amount of a channel looked up earlier.
func (v *ChainVerifier) GetCachedFundingValue(shortChanID uint64) (uint64, bool) {
	return v.cache.Get(shortChanID)
}

// RetrieveFundingValue fetches the funding output from the data source and
// returns its amount in satoshis. The amount is cached, but the cache is never
// consulted here; use GetCachedFundingValue for the fast path.
func (v *ChainVerifier) RetrieveFundingValue(ctx context.Context, shortChanID uint64) (uint64, error) {
	started := time.Now()
	output, err := v.retrieve(ctx, shortChanID, v.cache)
	v.metrics.ObserveLookup(pathDirect, lookupStatus(err), started)
	if err != nil {
		return 0, err
	}
	return uint64(output.Value), nil
}

// RetrieveOutput fetches the funding output without touching the cache.
func (v *ChainVerifier) RetrieveOutput(ctx context.Context, shortChanID uint64) (*model.FundingOutput, error) {
	started := time.Now()
	output, err := v.retrieve(ctx, shortChanID, nil)
	v.metrics.ObserveLookup(pathDirect, lookupStatus(err), started)
	return output, err
}

// GetUTXO starts an asynchronous lookup and returns without blocking. chainHash
// is passed through to the graph untouched. When the lookup finishes the result
// is handed to the graph, then the peer event pump (if it was set when GetUTXO
// was called) is woken once.
func (v *ChainVerifier) GetUTXO(chainHash chainhash.Hash, shortChanID uint64) *PendingLookup {
	lookup := newPendingLookup(chainHash, shortChanID, v.graph, v.gossiper)
	pump := v.peerEventPump()

	v.inFlight.Add(1)
	go func() {
		defer v.inFlight.Done()

		started := time.Now()
		// No deadline: timeouts are left to the data source.
		output, err := v.retrieve(context.Background(), shortChanID, v.cache)
		v.metrics.ObserveLookup(pathAsync, lookupStatus(err), started)

		if resolveErr := lookup.resolve(output, err); resolveErr != nil {
			v.logger.Error("pending lookup resolved twice",
				zap.Stringer("scid", scid.FromUint64(shortChanID)), zap.Error(resolveErr))
		}

		if pump != nil {
			pump.ProcessEvents()
			v.metrics.ObserveWake()
		}
	}()

	return lookup
}

// Stop waits for in-flight lookups to resolve. Callers must stop issuing
// GetUTXO calls first.
func (v *ChainVerifier) Stop() {
	v.inFlight.Wait()
}


// retrieve decodes shortChanID, fetches its block and extracts the output. It
// always goes to the data source; a non-nil cache is only written to.
func (v *ChainVerifier) retrieve(ctx context.Context, shortChanID uint64, cache *FundingCache) (*model.FundingOutput, error) {
	height, txIndex, outputIndex := scid.Decode(shortChanID)

	block, err := v.fetchBlock(ctx, height)
	if err != nil {
		return nil, err
	}
	output, err := v.extractOutput(block, height, txIndex, outputIndex)
	if err != nil {
		return nil, err
	}

	amount, err := safe.Uint64(int64(output.Value))
	if err != nil {
		v.logger.Error("funding output carries a negative value",
			zap.Stringer("txid", output.TxID), zap.Uint16("output_index", outputIndex),
			zap.Int64("value", int64(output.Value)))
		return nil, fmt.Errorf("%w: output %d of transaction %s: %w", ErrUnknownTx, outputIndex, output.TxID, err)
	}

	if cache != nil {
		cache.Put(shortChanID, amount)
		v.metrics.ObserveCacheSize(cache.Len())
	}

	v.logger.Debug("funding output found",
		zap.Stringer("scid", scid.FromUint64(shortChanID)),
		zap.Stringer("txid", output.TxID),
		zap.Int64("satoshis", int64(output.Value)))
	return output, nil
}
