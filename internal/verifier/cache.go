package verifier

import "sync"

// FundingCache maps short channel ids to funding amounts in satoshis.
// Entries are never evicted; chain data is immutable so concurrent writers
// for the same id always agree.
type FundingCache struct {
	mu      sync.Mutex
	amounts map[uint64]uint64
}

// NewFundingCache returns an empty cache.
func NewFundingCache() *FundingCache {
	return &FundingCache{amounts: make(map[uint64]uint64)}
}

// Get returns the cached amount for shortChanID.
func (c *FundingCache) Get(shortChanID uint64) (uint64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	amount, ok := c.amounts[shortChanID]
	return amount, ok
}

// Put stores amount for shortChanID, overwriting any previous value.
func (c *FundingCache) Put(shortChanID, amount uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.amounts[shortChanID] = amount
}

// Len returns the number of cached entries.
func (c *FundingCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.amounts)
}
