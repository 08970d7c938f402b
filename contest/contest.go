// Package contest verifies a contest's constant (range) Chaum-Pedersen
// proof: that the aggregated ciphertext across a contest's selections
// encrypts a value in [0, L_max] (spec.md §4.5).
package contest

import (
	"math/big"

	"github.com/takakv/eg-verifier/diag"
	"github.com/takakv/eg-verifier/fiatshamir"
	"github.com/takakv/eg-verifier/modmath"
	"github.com/takakv/eg-verifier/record"
	"github.com/takakv/eg-verifier/selection"
)

// Result separates encryption errors (selection-level proof failures) from
// limit errors (placeholder count, challenge mismatch, E1/E2), so the ballot
// verifier can aggregate the two booleans spec.md §4.6 asks for.
type Result struct {
	EncryptionOK bool
	LimitOK      bool
}

// Verify checks one contest's selections and its range proof against ctx,
// appending failures to report under locations rooted at the contest's
// object_id.
func Verify(ctx selection.Context, c record.Contest, report *diag.Report) Result {
	res := Result{EncryptionOK: true, LimitOK: true}

	p, q := ctx.P, ctx.Q
	alphaProd := big.NewInt(1)
	betaProd := big.NewInt(1)
	placeholderCount := 0

	for _, s := range c.Selections {
		if !selection.Verify(ctx, c.ObjectID, s, report) {
			res.EncryptionOK = false
		}
		alphaProd = modmath.MulMod(alphaProd, s.Ciphertext.Pad, p)
		betaProd = modmath.MulMod(betaProd, s.Ciphertext.Data, p)
		if s.IsPlaceholder {
			placeholderCount++
		}
	}

	loc := "contest=" + c.ObjectID

	// 3. Placeholder count must equal the contest's vote limit.
	if placeholderCount != c.VoteLimit {
		report.Fail(diag.KindPlaceholderCount, loc, "placeholder_count=%d, votes_allowed=%d", placeholderCount, c.VoteLimit)
		res.LimitOK = false
	}

	pf := c.Proof

	// Known source ambiguity #1 (spec.md §9): the proof's own claimed
	// constant must equal the vote limit from the election description; the
	// verification equations below use the vote limit, not proof.Constant.
	lMax := big.NewInt(int64(c.VoteLimit))
	if !modmath.Equals(pf.Constant, lMax) {
		report.Fail(diag.KindEquationFailure, loc, "proof.constant does not equal the contest's vote limit")
		res.LimitOK = false
	}

	if !modmath.InZrp(pf.Pad, p, q) {
		report.Fail(diag.KindMembershipError, loc, "proof pad (A) is not in the order-q subgroup of Z_p*")
		res.LimitOK = false
	}
	if !modmath.InZrp(pf.Data, p, q) {
		report.Fail(diag.KindMembershipError, loc, "proof data (B) is not in the order-q subgroup of Z_p*")
		res.LimitOK = false
	}
	if !modmath.InZq(pf.Challenge, q) || !modmath.InZq(pf.Response, q) {
		report.Fail(diag.KindMembershipError, loc, "proof challenge or response is not in Z_q")
		res.LimitOK = false
	}
	if !res.LimitOK {
		return res
	}

	// 4. Contest challenge: c' = H(Q̄, α_prod, β_prod, A, B); transcript
	// order is always (Q̄, α_prod, β_prod, A, B), per spec.md §9 ambiguity #3.
	cPrime := fiatshamir.H(q, ctx.ExtendedBaseHash, alphaProd, betaProd, pf.Pad, pf.Data)
	if !modmath.Equals(cPrime, pf.Challenge) {
		report.Fail(diag.KindChallengeMismatch, loc, "recomputed contest challenge does not match proof.challenge")
		res.LimitOK = false
	}

	// 5. Contest equations mod p, with L_max * c reduced mod q before
	// exponentiation.
	// E1: g^v == A * alpha_prod^c
	left1 := ctx.Pow.PowMod(ctx.G, pf.Response, p)
	right1 := modmath.MulMod(pf.Pad, modmath.PowMod(alphaProd, pf.Challenge, p), p)
	if !modmath.Equals(left1, right1) {
		report.Fail(diag.KindEquationFailure, loc, "equation=E1")
		res.LimitOK = false
	}

	// E2: g^(L_max*c mod q) * K^v == B * beta_prod^c
	lc := modmath.ModQ(new(big.Int).Mul(lMax, pf.Challenge), q)
	left2 := modmath.MulMod(modmath.PowMod(ctx.G, lc, p), modmath.PowMod(ctx.K, pf.Response, p), p)
	right2 := modmath.MulMod(pf.Data, modmath.PowMod(betaProd, pf.Challenge, p), p)
	if !modmath.Equals(left2, right2) {
		report.Fail(diag.KindEquationFailure, loc, "equation=E2")
		res.LimitOK = false
	}

	return res
}
