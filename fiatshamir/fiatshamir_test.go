package fiatshamir

import (
	"crypto/sha256"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

// q is a small prime used only to exercise the mod-(q-1) reduction; the
// transcript hashing rules themselves do not depend on q's size.
var q = big.NewInt(1000000007)

func TestGolden_ScalarArgs(t *testing.T) {
	// H(1, "hello", Seq{2,3}, nil, "") must be deterministic and reproduce
	// the reference canonicalization rules bit-for-bit.
	got := H(q, big.NewInt(1), "hello", Seq{big.NewInt(2), big.NewInt(3)}, nil, "")

	inner := H(q, big.NewInt(2), big.NewInt(3))

	h := sha256.New()
	h.Write([]byte("|"))
	h.Write([]byte("1|"))
	h.Write([]byte("hello|"))
	h.Write([]byte(inner.String() + "|"))
	h.Write([]byte("null|"))
	h.Write([]byte("null|"))
	digest := h.Sum(nil)
	want := new(big.Int).Mod(new(big.Int).SetBytes(digest), new(big.Int).Sub(q, big.NewInt(1)))

	require.Equal(t, 0, got.Cmp(want))
}

func TestDeterministic(t *testing.T) {
	a := H(q, big.NewInt(42), "x")
	b := H(q, big.NewInt(42), "x")
	require.Equal(t, 0, a.Cmp(b))
}

func TestByteFlipChangesHash(t *testing.T) {
	a := H(q, "transcript-a")
	b := H(q, "transcript-b")
	require.NotEqual(t, 0, a.Cmp(b))
}

func TestEmptySequenceIsNull(t *testing.T) {
	withEmptySeq := H(q, Seq{})
	withNull := H(q, nil)
	require.Equal(t, 0, withEmptySeq.Cmp(withNull))
}

func TestZeroIntTreatedAsNull(t *testing.T) {
	withZero := H(q, big.NewInt(0))
	withNull := H(q, nil)
	require.Equal(t, 0, withZero.Cmp(withNull))
}

func TestResultIsBelowQMinusOne(t *testing.T) {
	got := H(q, big.NewInt(123456789), "some-transcript-value")
	require.True(t, got.Sign() >= 0)
	require.True(t, got.Cmp(new(big.Int).Sub(q, big.NewInt(1))) < 0)
}

func TestArgumentOrderMatters(t *testing.T) {
	a := H(q, big.NewInt(1), big.NewInt(2))
	b := H(q, big.NewInt(2), big.NewInt(1))
	require.NotEqual(t, 0, a.Cmp(b))
}
