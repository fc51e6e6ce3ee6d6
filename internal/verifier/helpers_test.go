package verifier

import (
	"context"
	"math"
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/golang/mock/gomock"
	"github.com/goodnatureofminers/chanverifier/internal/chain"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

// newTestBlock builds a block whose i-th transaction pays the given output values.
func newTestBlock(txOutputs ...[]int64) *wire.MsgBlock {
	block := wire.NewMsgBlock(wire.NewBlockHeader(1, &chainhash.Hash{}, &chainhash.Hash{}, 0x207fffff, 0))
	for i, values := range txOutputs {
		tx := wire.NewMsgTx(wire.TxVersion)
		tx.AddTxIn(wire.NewTxIn(wire.NewOutPoint(&chainhash.Hash{byte(i)}, math.MaxUint32), nil, nil))
		for j, value := range values {
			tx.AddTxOut(wire.NewTxOut(value, []byte{0x00, 0x20, byte(i), byte(j)}))
		}
		_ = block.AddTransaction(tx)
	}
	return block
}

// fundingTestBlock has four transactions; tx 3 has two outputs, output 1 pays 250_000 sats.
func fundingTestBlock() *wire.MsgBlock {
	return newTestBlock(
		[]int64{5_000_000_000},
		[]int64{1_000},
		[]int64{2_000, 3_000},
		[]int64{100_000, 250_000},
	)
}

type testDeps struct {
	source   *MockBlockSource
	graph    *MockGraph
	gossiper *MockGossiper
	metrics  *MockMetrics
}

func newTestDeps(t *testing.T) testDeps {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	return testDeps{
		source:   NewMockBlockSource(ctrl),
		graph:    NewMockGraph(ctrl),
		gossiper: NewMockGossiper(ctrl),
		metrics:  NewMockMetrics(ctrl),
	}
}

func (d testDeps) allowMetrics() {
	d.metrics.EXPECT().ObserveLookup(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	d.metrics.EXPECT().ObserveCacheSize(gomock.Any()).AnyTimes()
}

func (d testDeps) expectBlock(height uint32, block *wire.MsgBlock) {
	hash := block.BlockHash()
	d.source.EXPECT().BlockHashByHeight(gomock.Any(), height).Return(hash[:], nil)
	d.source.EXPECT().BlockByHash(gomock.Any(), &hash).Return(chain.FullBlock(block), nil)
}

func newTestVerifier(t *testing.T, source BlockSource, d testDeps, logger *zap.Logger) *ChainVerifier {
	t.Helper()

	if logger == nil {
		logger = zaptest.NewLogger(t)
	}
	v, err := NewChainVerifier(source, d.graph, d.gossiper, d.metrics, logger)
	if err != nil {
		t.Fatalf("NewChainVerifier() error = %v", err)
	}
	t.Cleanup(v.Stop)
	return v
}

// gatedSource serves a single block but holds every hash request until release is closed.
type gatedSource struct {
	release chan struct{}
	block   *wire.MsgBlock
}

func (s *gatedSource) BlockHashByHeight(ctx context.Context, _ uint32) ([]byte, error) {
	select {
	case <-s.release:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	hash := s.block.BlockHash()
	return hash[:], nil
}

func (s *gatedSource) BlockByHash(_ context.Context, _ *chainhash.Hash) (chain.BlockData, error) {
	return chain.FullBlock(s.block), nil
}
