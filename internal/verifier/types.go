package verifier

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/chanverifier/internal/chain"
	"github.com/goodnatureofminers/chanverifier/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// BlockSource serves block hashes by height and blocks by hash.
	BlockSource interface {
		BlockHashByHeight(ctx context.Context, height uint32) ([]byte, error)
		BlockByHash(ctx context.Context, hash *chainhash.Hash) (chain.BlockData, error)
	}
	// Graph accepts or rejects a pending channel once its funding lookup resolves.
	// It reports whether the channel was accepted.
	Graph interface {
		ApplyFundingLookup(chainHash chainhash.Hash, shortChanID uint64, output *model.FundingOutput, err error) bool
	}
	// Gossiper relays channels the graph accepted.
	Gossiper interface {
		RelayChannel(shortChanID uint64)
	}
	// EventPump drains protocol work queued while lookups were pending.
	EventPump interface {
		ProcessEvents()
	}
	// Metrics records lookup outcomes, cache growth and pump wakes.
	Metrics interface {
		ObserveLookup(path, status string, started time.Time)
		ObserveCacheSize(entries int)
		ObserveWake()
	}
)
