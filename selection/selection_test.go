package selection_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/takakv/eg-verifier/diag"
	"github.com/takakv/eg-verifier/modmath"
	"github.com/takakv/eg-verifier/recordtest"
	"github.com/takakv/eg-verifier/selection"
)

func vctx(f *recordtest.Fixture) selection.Context {
	return selection.Context{
		P: f.Group.P, Q: f.Group.Q, G: f.Group.G,
		K:                f.Record.Context.JointPublicKey,
		ExtendedBaseHash: f.ExtendedBaseHash,
	}
}

func TestVerify_ValidSelectionPasses(t *testing.T) {
	f := recordtest.NewS1Fixture()
	ctx := vctx(f)
	contestID := f.Record.Ballots[0].Contests[0].ObjectID
	for _, s := range f.Record.Ballots[0].Contests[0].Selections {
		report := &diag.Report{}
		ok := selection.Verify(ctx, contestID, s, report)
		assert.True(t, ok, "selection %s should verify", s.ObjectID)
		assert.True(t, report.OK())
	}
}

func TestVerify_TamperedCiphertextFailsEquation(t *testing.T) {
	f := recordtest.NewS1Fixture()
	ctx := vctx(f)
	contestID := f.Record.Ballots[0].Contests[0].ObjectID
	s := f.Record.Ballots[0].Contests[0].Selections[0]

	// Multiply alpha by g, as spec.md S2 prescribes, breaking E1.
	s.Ciphertext.Pad = modmath.MulMod(s.Ciphertext.Pad, f.Group.G, f.Group.P)

	report := &diag.Report{}
	ok := selection.Verify(ctx, contestID, s, report)
	assert.False(t, ok)
	assert.False(t, report.OK())
	found := false
	for _, finding := range report.Findings {
		if finding.Kind == diag.KindEquationFailure {
			found = true
		}
	}
	assert.True(t, found, "expected an EquationFailure finding, got %+v", report.Findings)
}

func TestVerify_OutOfGroupValueIsMembershipError(t *testing.T) {
	f := recordtest.NewS1Fixture()
	ctx := vctx(f)
	contestID := f.Record.Ballots[0].Contests[0].ObjectID
	s := f.Record.Ballots[0].Contests[0].Selections[0]

	// 5 is not a q-th residue mod p=47 for q=23 (5^23 mod 47 = 46).
	s.Ciphertext.Pad = big.NewInt(5)

	report := &diag.Report{}
	ok := selection.Verify(ctx, contestID, s, report)
	assert.False(t, ok)
	assert.Equal(t, diag.KindMembershipError, report.Findings[0].Kind)
}

func TestVerify_ChallengeSplitMutationFails(t *testing.T) {
	f := recordtest.NewS1Fixture()
	ctx := vctx(f)
	contestID := f.Record.Ballots[0].Contests[0].ObjectID
	s := f.Record.Ballots[0].Contests[0].Selections[0]

	// Mutate c0 while leaving c1 fixed: breaks the c0+c1=c split (and,
	// generically, every equation that depends on c0).
	s.Proof.ZeroChallenge = modmath.AddMod(s.Proof.ZeroChallenge, big.NewInt(1), f.Group.Q)

	report := &diag.Report{}
	ok := selection.Verify(ctx, contestID, s, report)
	assert.False(t, ok)
	assert.False(t, report.OK())
}
