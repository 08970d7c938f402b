package modmath

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	p = big.NewInt(47)
	q = big.NewInt(23)
)

func TestInZrp(t *testing.T) {
	require.True(t, InZrp(big.NewInt(4), p, q)) // generator, order 23
	require.False(t, InZrp(big.NewInt(5), p, q)) // order 46, not in subgroup
	require.False(t, InZrp(big.NewInt(0), p, q))
	require.False(t, InZrp(big.NewInt(47), p, q)) // not < p
}

func TestInZq(t *testing.T) {
	require.True(t, InZq(big.NewInt(0), q))
	require.True(t, InZq(big.NewInt(22), q))
	require.False(t, InZq(big.NewInt(23), q))
	require.False(t, InZq(big.NewInt(-1), q))
}

func TestInRangeExclusive(t *testing.T) {
	require.True(t, InRangeExclusive(big.NewInt(5), big.NewInt(1), big.NewInt(10)))
	require.False(t, InRangeExclusive(big.NewInt(1), big.NewInt(1), big.NewInt(10)))
	require.False(t, InRangeExclusive(big.NewInt(10), big.NewInt(1), big.NewInt(10)))
}

func TestEqualsHandlesNil(t *testing.T) {
	require.True(t, Equals(nil, nil))
	require.False(t, Equals(big.NewInt(1), nil))
	require.False(t, Equals(nil, big.NewInt(1)))
	require.True(t, Equals(big.NewInt(5), big.NewInt(5)))
}

func TestIsDivisor(t *testing.T) {
	require.True(t, IsDivisor(big.NewInt(2), big.NewInt(46)))
	require.False(t, IsDivisor(big.NewInt(23), big.NewInt(2)))
	require.False(t, IsDivisor(big.NewInt(0), big.NewInt(2)))
}

func TestPowCacheMatchesDirect(t *testing.T) {
	c := NewPowCache(16)
	base, exp := big.NewInt(4), big.NewInt(9)
	direct := PowMod(base, exp, p)
	cached := c.PowMod(base, exp, p)
	require.Equal(t, 0, direct.Cmp(cached))
	// second call should hit the cache and still agree.
	cached2 := c.PowMod(base, exp, p)
	require.Equal(t, 0, direct.Cmp(cached2))
}

func TestPowCacheDisabled(t *testing.T) {
	c := NewPowCache(0)
	base, exp := big.NewInt(4), big.NewInt(9)
	require.Equal(t, 0, PowMod(base, exp, p).Cmp(c.PowMod(base, exp, p)))
}

func TestIsPrime(t *testing.T) {
	require.True(t, IsPrime(big.NewInt(47), 50))
	require.True(t, IsPrime(big.NewInt(23), 50))
	require.False(t, IsPrime(big.NewInt(46), 50))
	require.False(t, IsPrime(big.NewInt(1), 50))
}
