package params

import (
	"fmt"
	"math/big"

	"github.com/takakv/eg-verifier/modmath"
)

// MillerRabinRounds is the number of Miller-Rabin rounds used to test the
// primality of p and q, per spec.md §4.3.
const MillerRabinRounds = 50

// Failure describes one baseline-parameter check that did not hold.
type Failure struct {
	Detail string
}

// Result is the outcome of validating a record's group parameters against
// a RecordSpec.
type Result struct {
	Failures []Failure
}

// OK reports whether every baseline check passed.
func (r Result) OK() bool { return len(r.Failures) == 0 }

// Validate checks p, q, r, g against spec and the algebraic relations
// required of an ElectionGuard-style prime-order-subgroup parameter set
// (spec.md §4.3). Every check runs regardless of earlier failures so the
// caller sees every problem, not just the first.
func Validate(spec RecordSpec, p, q, r, g *big.Int) Result {
	var res Result
	fail := func(format string, args ...any) {
		res.Failures = append(res.Failures, Failure{Detail: fmt.Sprintf(format, args...)})
	}

	if !modmath.Equals(p, spec.P) {
		fail("large_prime does not equal the expected %s baseline value", spec.Name)
	}
	if !modmath.Equals(q, spec.Q) {
		fail("small_prime does not equal the expected %s baseline value", spec.Name)
	}

	if p == nil || q == nil || r == nil || g == nil {
		fail("one or more of p, q, r, g is missing")
		return res
	}

	if !modmath.IsPrime(p, MillerRabinRounds) {
		fail("p is not prime")
	}
	if !modmath.IsPrime(q, MillerRabinRounds) {
		fail("q is not prime")
	}

	qr := new(big.Int).Mul(q, r)
	if !modmath.Equals(new(big.Int).Sub(p, big.NewInt(1)), qr) {
		fail("p - 1 does not equal q * r")
	}

	if modmath.IsDivisor(q, r) {
		fail("q divides r")
	}

	if !modmath.InRangeExclusive(g, big.NewInt(1), p) {
		fail("g is not within the range 1 < g < p")
	}

	if !modmath.Equals(modmath.PowMod(g, q, p), big.NewInt(1)) {
		fail("g^q mod p does not equal 1")
	}

	return res
}
