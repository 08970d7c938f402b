// Package modmath implements the field/group arithmetic primitives that the
// rest of the verifier builds on: reduction into Z_p and Z_q, modular
// exponentiation, and the set-membership tests that every proof-verification
// equation relies on. The membership and equality predicates are total:
// out-of-range or nil inputs report false rather than panicking. The
// arithmetic helpers (ModP, ModQ, PowMod, MulMod, AddMod) take non-nil
// operands.
package modmath

import "math/big"

// ModP reduces x into the canonical non-negative residue mod p.
func ModP(x, p *big.Int) *big.Int {
	return new(big.Int).Mod(x, p)
}

// ModQ reduces x into the canonical non-negative residue mod q.
func ModQ(x, q *big.Int) *big.Int {
	return new(big.Int).Mod(x, q)
}

// PowMod computes base^exp mod m via Go's square-and-multiply big.Int.Exp.
// The verifier only ever operates on public values, so no constant-time
// guarantee is required or provided.
func PowMod(base, exp, m *big.Int) *big.Int {
	return new(big.Int).Exp(base, exp, m)
}

// MulMod computes (a*b) mod m.
func MulMod(a, b, m *big.Int) *big.Int {
	t := new(big.Int).Mul(a, b)
	return t.Mod(t, m)
}

// AddMod computes (a+b) mod m.
func AddMod(a, b, m *big.Int) *big.Int {
	t := new(big.Int).Add(a, b)
	return t.Mod(t, m)
}

// InRangeExclusive reports whether lo < x < hi. A nil x is never in range.
func InRangeExclusive(x, lo, hi *big.Int) bool {
	if x == nil || lo == nil || hi == nil {
		return false
	}
	return lo.Cmp(x) < 0 && x.Cmp(hi) < 0
}

// InZq reports whether 0 <= x < q.
func InZq(x, q *big.Int) bool {
	if x == nil || q == nil {
		return false
	}
	return x.Sign() >= 0 && x.Cmp(q) < 0
}

// InZrp reports whether x is a member of the order-q subgroup of Z_p*, i.e.
// 0 < x < p and x^q mod p == 1.
func InZrp(x, p, q *big.Int) bool {
	if x == nil || p == nil || q == nil {
		return false
	}
	if !InRangeExclusive(x, big.NewInt(0), p) {
		return false
	}
	return Equals(PowMod(x, q, p), big.NewInt(1))
}

// Equals reports whether a and b denote the same integer. Either argument
// may be nil, in which case the two are equal only if both are nil.
func Equals(a, b *big.Int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Cmp(b) == 0
}

// IsDivisor reports whether a divides b, i.e. b mod a == 0.
func IsDivisor(a, b *big.Int) bool {
	if a == nil || b == nil || a.Sign() == 0 {
		return false
	}
	return new(big.Int).Mod(b, a).Sign() == 0
}
