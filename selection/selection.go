// Package selection verifies a single ballot selection's disjunctive
// Chaum-Pedersen proof: the proof that a selection's ciphertext encrypts 0
// or 1 (spec.md §4.4).
package selection

import (
	"math/big"

	"github.com/takakv/eg-verifier/diag"
	"github.com/takakv/eg-verifier/fiatshamir"
	"github.com/takakv/eg-verifier/modmath"
	"github.com/takakv/eg-verifier/record"
)

// Context carries the group and election parameters every proof in the
// record is checked against (spec.md §9's VerificationCtx: {p, q, g, K, Q̄}).
type Context struct {
	P, Q, G, K       *big.Int
	ExtendedBaseHash *big.Int
	Pow              *modmath.PowCache // may be nil: disables caching
}

func (c Context) powMod(base, exp *big.Int) *big.Int {
	if c.Pow != nil {
		return c.Pow.PowMod(base, exp, c.P)
	}
	return modmath.PowMod(base, exp, c.P)
}

// Verify checks one selection's disjunctive proof against ctx, appending any
// failures to report under a location built from contestID/s.ObjectID.
// It returns true iff no failure was appended.
func Verify(ctx Context, contestID string, s record.Selection, report *diag.Report) bool {
	loc := location(contestID, s.ObjectID)
	ok := true

	p, q := ctx.P, ctx.Q
	alpha, beta := s.Ciphertext.Pad, s.Ciphertext.Data
	pf := s.Proof

	// 1. Group membership.
	members := []struct {
		name string
		v    *big.Int
	}{
		{"alpha", alpha}, {"beta", beta},
		{"a0", pf.ZeroPad}, {"b0", pf.ZeroData},
		{"a1", pf.OnePad}, {"b1", pf.OneData},
	}
	for _, m := range members {
		if !modmath.InZrp(m.v, p, q) {
			report.Fail(diag.KindMembershipError, loc, "%s is not in the order-q subgroup of Z_p*", m.name)
			ok = false
		}
	}
	scalars := []struct {
		name string
		v    *big.Int
	}{
		{"c0", pf.ZeroChallenge}, {"c1", pf.OneChallenge},
		{"v0", pf.ZeroResponse}, {"v1", pf.OneResponse},
	}
	for _, sc := range scalars {
		if !modmath.InZq(sc.v, q) {
			report.Fail(diag.KindMembershipError, loc, "%s is not in Z_q", sc.name)
			ok = false
		}
	}
	if !ok {
		// Out-of-range values make the algebraic checks below meaningless
		// (PowMod on a nil or unbounded value is undefined); stop here.
		return false
	}

	// 2. Fiat-Shamir challenge.
	c := fiatshamir.H(q, ctx.ExtendedBaseHash, alpha, beta, pf.ZeroPad, pf.ZeroData, pf.OnePad, pf.OneData)

	// 3. Challenge split: c = (c0 + c1) mod q.
	sum := modmath.ModQ(new(big.Int).Add(pf.ZeroChallenge, pf.OneChallenge), q)
	if !modmath.Equals(c, sum) {
		report.Fail(diag.KindChallengeMismatch, loc, "recomputed challenge does not equal c0+c1 mod q")
		ok = false
	}

	// 4. Four equations mod p.
	// E1: g^v0 == a0 * alpha^c0
	if !ctx.checkEq(ctx.G, pf.ZeroResponse, pf.ZeroPad, alpha, pf.ZeroChallenge) {
		report.Fail(diag.KindEquationFailure, loc, "equation=E1")
		ok = false
	}
	// E2: K^v0 == b0 * beta^c0
	if !ctx.checkEq(ctx.K, pf.ZeroResponse, pf.ZeroData, beta, pf.ZeroChallenge) {
		report.Fail(diag.KindEquationFailure, loc, "equation=E2")
		ok = false
	}
	// E3: g^v1 == a1 * alpha^c1
	if !ctx.checkEq(ctx.G, pf.OneResponse, pf.OnePad, alpha, pf.OneChallenge) {
		report.Fail(diag.KindEquationFailure, loc, "equation=E3")
		ok = false
	}
	// E4: g^c1 * K^v1 == b1 * beta^c1
	left := modmath.MulMod(ctx.powMod(ctx.G, pf.OneChallenge), ctx.powMod(ctx.K, pf.OneResponse), p)
	right := modmath.MulMod(pf.OneData, ctx.powMod(beta, pf.OneChallenge), p)
	if !modmath.Equals(left, right) {
		report.Fail(diag.KindEquationFailure, loc, "equation=E4")
		ok = false
	}

	return ok
}

// checkEq verifies base^exp == factor * multiplicand^power (mod p), the
// common shape of E1/E2/E3.
func (c Context) checkEq(base, exp, factor, multiplicand, power *big.Int) bool {
	left := c.powMod(base, exp)
	right := modmath.MulMod(factor, c.powMod(multiplicand, power), c.P)
	return modmath.Equals(left, right)
}

func location(contestID, selectionID string) string {
	return "contest=" + contestID + ", selection=" + selectionID
}
