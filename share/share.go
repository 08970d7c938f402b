// Package share verifies a guardian's decryption share: the Chaum-Pedersen
// proof binding a partial decryption M_i to the guardian's public commitment
// K_i (spec.md §4.7).
package share

import (
	"math/big"

	"github.com/takakv/eg-verifier/diag"
	"github.com/takakv/eg-verifier/fiatshamir"
	"github.com/takakv/eg-verifier/modmath"
	"github.com/takakv/eg-verifier/record"
	"github.com/takakv/eg-verifier/selection"
)

// Verify checks one guardian's decryption share against the accumulated
// ciphertext (a, b) = (A, B) it purports to help decrypt. loc names the
// selection this share belongs to (e.g. "tally.c0.s0" or a spoiled-ballot
// equivalent); the guardian ID is appended to it for the finding location.
func Verify(ctx selection.Context, loc string, a, b *big.Int, d record.DecryptionShare, report *diag.Report) bool {
	location := loc + ", guardian=" + d.GuardianID
	p, q := ctx.P, ctx.Q
	pf := d.Proof
	ok := true

	// 1. Group membership.
	if !modmath.InZrp(pf.Pad, p, q) {
		report.Fail(diag.KindMembershipError, location, "a_i is not in the order-q subgroup of Z_p*")
		ok = false
	}
	if !modmath.InZrp(pf.Data, p, q) {
		report.Fail(diag.KindMembershipError, location, "b_i is not in the order-q subgroup of Z_p*")
		ok = false
	}
	if !modmath.InZq(pf.Challenge, q) {
		report.Fail(diag.KindMembershipError, location, "c_i is not in Z_q")
		ok = false
	}
	if !modmath.InZq(pf.Response, q) {
		report.Fail(diag.KindMembershipError, location, "v_i is not in Z_q")
		ok = false
	}
	if !modmath.InZrp(d.PartialDecryption, p, q) {
		report.Fail(diag.KindMembershipError, location, "M_i is not in the order-q subgroup of Z_p*")
		ok = false
	}
	if !modmath.InZrp(d.GuardianPublicKey, p, q) {
		report.Fail(diag.KindMembershipError, location, "K_i is not in the order-q subgroup of Z_p*")
		ok = false
	}
	if !ok {
		return false
	}

	// 2. Recompute c'_i = H(Q̄, A, B, a_i, b_i, M_i).
	cPrime := fiatshamir.H(q, ctx.ExtendedBaseHash, a, b, pf.Pad, pf.Data, d.PartialDecryption)
	if !modmath.Equals(cPrime, pf.Challenge) {
		report.Fail(diag.KindChallengeMismatch, location, "recomputed share challenge does not match proof.challenge")
		ok = false
	}

	// 3. Equations mod p.
	// g^v_i == a_i * K_i^c_i
	left1 := ctx.Pow.PowMod(ctx.G, pf.Response, p)
	right1 := modmath.MulMod(pf.Pad, ctx.Pow.PowMod(d.GuardianPublicKey, pf.Challenge, p), p)
	if !modmath.Equals(left1, right1) {
		report.Fail(diag.KindEquationFailure, location, "equation=E1")
		ok = false
	}

	// A^v_i == b_i * M_i^c_i
	left2 := ctx.Pow.PowMod(a, pf.Response, p)
	right2 := modmath.MulMod(pf.Data, ctx.Pow.PowMod(d.PartialDecryption, pf.Challenge, p), p)
	if !modmath.Equals(left2, right2) {
		report.Fail(diag.KindEquationFailure, location, "equation=E2")
		ok = false
	}

	return ok
}

// VerifyQuorum runs Verify over every share present for a selection and
// additionally enforces the quorum invariant of spec.md §4.7: fewer than
// quorum present shares is fatal and reported as MissingShare, a distinct
// error kind from an individual share's proof failing.
func VerifyQuorum(ctx selection.Context, loc string, a, b *big.Int, shares []record.DecryptionShare, quorum int, report *diag.Report) bool {
	ok := true
	for _, d := range shares {
		if !Verify(ctx, loc, a, b, d, report) {
			ok = false
		}
	}
	if len(shares) < quorum {
		report.Fail(diag.KindMissingShare, loc, "present=%d, quorum=%d", len(shares), quorum)
		ok = false
	}
	return ok
}
