package verifier

import (
	"sync"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/chanverifier/internal/model"
)

// PendingLookup is the single-assignment result of GetUTXO. It is handed to the
// caller empty and resolved exactly once by the lookup goroutine.
type PendingLookup struct {
	chainHash   chainhash.Hash
	shortChanID uint64
	graph       Graph
	gossiper    Gossiper

	mu       sync.Mutex
	resolved bool
	output   *model.FundingOutput
	err      error
	done     chan struct{}
}

func newPendingLookup(chainHash chainhash.Hash, shortChanID uint64, graph Graph, gossiper Gossiper) *PendingLookup {
	return &PendingLookup{
		chainHash:   chainHash,
		shortChanID: shortChanID,
		graph:       graph,
		gossiper:    gossiper,
		done:        make(chan struct{}),
	}
}

// ShortChannelID returns the channel the lookup was created for.
func (p *PendingLookup) ShortChannelID() uint64 {
	return p.shortChanID
}

// Done is closed once the graph has been handed the result.
func (p *PendingLookup) Done() <-chan struct{} {
	return p.done
}

// Result returns the resolved output or error. It returns ErrLookupPending
// until the lookup goroutine has resolved.
func (p *PendingLookup) Result() (*model.FundingOutput, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.resolved {
		return nil, ErrLookupPending
	}
	return p.output, p.err
}

// resolve stores the outcome and feeds it to the graph, then relays the channel
// if the graph accepted it. A second call returns ErrAlreadyResolved and keeps
// the first outcome.
func (p *PendingLookup) resolve(output *model.FundingOutput, err error) error {
	p.mu.Lock()
	if p.resolved {
		p.mu.Unlock()
		return ErrAlreadyResolved
	}
	p.resolved = true
	p.output = output
	p.err = err
	p.mu.Unlock()

	accepted := p.graph.ApplyFundingLookup(p.chainHash, p.shortChanID, output, err)
	if accepted && p.gossiper != nil {
		p.gossiper.RelayChannel(p.shortChanID)
	}
	close(p.done)
	return nil
}
