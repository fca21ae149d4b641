// Package corpus implements the eight bounded-cardinality pools that the
// postprocessor feeds interesting values into for later mutation: bignums,
// curve private keys, curve keypairs, curve ECDSA signatures, BLS G1/G2
// points, BLS signatures, and DH keys.
package corpus

import (
	lru "github.com/hashicorp/golang-lru"
)

// KMaxBignumSize bounds the decimal-string length of bignum inputs/outputs
// considered by guards and pools.
const KMaxBignumSize = 2048

// defaultCapacity bounds pool cardinality; eviction is LRU, matching the
// spec's "implementation-defined" eviction policy with a concrete,
// thread-safe choice instead of a hand-rolled ring buffer.
const defaultCapacity = 4096

// Pool is a keyed set of bounded cardinality with LRU eviction. Set is
// idempotent and safe for concurrent use (golang-lru is internally
// mutex-guarded).
type Pool struct {
	cache *lru.Cache
}

// NewPool constructs a Pool with the default capacity.
func NewPool() *Pool {
	c, err := lru.New(defaultCapacity)
	if err != nil {
		// Only returns an error for a non-positive size, which
		// defaultCapacity never is.
		panic(err)
	}
	return &Pool{cache: c}
}

// Set inserts key if not already present, evicting the oldest entry under
// capacity pressure.
func (p *Pool) Set(key interface{}) {
	p.cache.Add(key, struct{}{})
}

// Has reports whether key is currently in the pool.
func (p *Pool) Has(key interface{}) bool {
	return p.cache.Contains(key)
}

// Len returns the current pool size.
func (p *Pool) Len() int { return p.cache.Len() }

// Pools bundles the eight process-wide corpus pools shared across
// executors.
type Pools struct {
	Bignums          *Pool
	CurvePrivateKeys *Pool
	CurveKeypairs    *Pool
	CurveECDSASigs   *Pool
	BLSG1Points      *Pool
	BLSG2Points      *Pool
	BLSSignatures    *Pool
	DHKeys           *Pool
}

// NewPools constructs a fresh, empty set of the eight pools.
func NewPools() *Pools {
	return &Pools{
		Bignums:          NewPool(),
		CurvePrivateKeys: NewPool(),
		CurveKeypairs:    NewPool(),
		CurveECDSASigs:   NewPool(),
		BLSG1Points:      NewPool(),
		BLSG2Points:      NewPool(),
		BLSSignatures:    NewPool(),
		DHKeys:           NewPool(),
	}
}

// SetBignum inserts decimal into the bignum pool, but only when its decimal
// length is within KMaxBignumSize, per spec invariant 5 (corpus-pool
// insertions never leak oversized values into bignum pools).
func (p *Pools) SetBignum(decimal string) {
	if len(decimal) <= KMaxBignumSize {
		p.Bignums.Set(decimal)
	}
}

// CurveKey is the composite key (curve ID + bytes) used by the curve pools.
type CurveKey struct {
	Curve string
	Value string
}
