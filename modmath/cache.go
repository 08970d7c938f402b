package modmath

import (
	"math/big"

	lru "github.com/hashicorp/golang-lru/v2"
)

// PowCache memoizes PowMod results. Selection and contest verification
// repeatedly raise the same generator g and public key K to many different
// exponents across the selections of a ballot; these results are logically
// immutable, write-once-read-many values (spec §5), so sharing them across
// goroutines needs no locking beyond what the underlying LRU already does.
type PowCache struct {
	cache *lru.Cache[string, *big.Int]
}

// NewPowCache creates a cache holding up to size recent (base, exp, mod)
// results. A non-positive size disables caching (PowMod is always used
// directly, never making the cache incorrect, only unhelpful).
func NewPowCache(size int) *PowCache {
	if size <= 0 {
		return &PowCache{}
	}
	c, err := lru.New[string, *big.Int](size)
	if err != nil {
		// Only returned by lru.New for a non-positive size, already excluded above.
		return &PowCache{}
	}
	return &PowCache{cache: c}
}

// PowMod returns base^exp mod m, consulting and populating the cache.
func (c *PowCache) PowMod(base, exp, m *big.Int) *big.Int {
	if c == nil || c.cache == nil {
		return PowMod(base, exp, m)
	}
	key := base.String() + "|" + exp.String() + "|" + m.String()
	if v, ok := c.cache.Get(key); ok {
		return v
	}
	v := PowMod(base, exp, m)
	c.cache.Add(key, v)
	return v
}
