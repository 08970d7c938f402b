package params

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidate_TestSpecPasses(t *testing.T) {
	s := TestSpec
	res := Validate(s, s.P, s.Q, s.R, s.G)
	require.True(t, res.OK(), "failures: %+v", res.Failures)
}

func TestValidate_WrongLargePrime(t *testing.T) {
	s := TestSpec
	bumped := new(big.Int).Add(s.P, big.NewInt(2))
	res := Validate(s, bumped, s.Q, s.R, s.G)
	require.False(t, res.OK())
}

func TestValidate_PMinusOneNotQR(t *testing.T) {
	s := TestSpec
	// r=3 breaks p-1 = q*r (23*3=69 != 46) without touching p or q.
	res := Validate(s, s.P, s.Q, big.NewInt(3), s.G)
	require.False(t, res.OK())
}

func TestValidate_GeneratorOutOfRange(t *testing.T) {
	s := TestSpec
	res := Validate(s, s.P, s.Q, s.R, big.NewInt(0))
	require.False(t, res.OK())
}

func TestValidate_GeneratorWrongOrder(t *testing.T) {
	s := TestSpec
	// 5 is not of order dividing 23 in Z_47* (5 generates the whole group).
	res := Validate(s, s.P, s.Q, s.R, big.NewInt(5))
	require.False(t, res.OK())
}

func TestValidate_QDividesR(t *testing.T) {
	s := TestSpec
	// Pick r' = q so q | r' trivially, and p' = q*r'+1 so that p'-1 = q*r'
	// still holds. p' = 530 is not prime and g^q mod p' != 1, so those
	// checks fail alongside the "q divides r" check.
	rPrime := new(big.Int).Set(s.Q)
	pPrime := new(big.Int).Add(new(big.Int).Mul(s.Q, rPrime), big.NewInt(1))
	res := Validate(RecordSpec{Name: "isolated", P: pPrime, Q: s.Q, R: rPrime, G: s.G}, pPrime, s.Q, rPrime, s.G)
	require.False(t, res.OK())
}
