package ballot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/takakv/eg-verifier/ballot"
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

func TestVerify_ValidBallotPasses(t *testing.T) {
	f := recordtest.NewS1Fixture()
	report := &diag.Report{}
	res := ballot.Verify(vctx(f), f.Record.Ballots[0], report)
	assert.True(t, res.Valid())
	assert.True(t, report.OK())
}

func TestVerify_OneBadContestFailsTheWholeBallot(t *testing.T) {
	f := recordtest.NewS1Fixture()
	b := f.Record.Ballots[0]
	b.Contests[0].Selections[0].Ciphertext.Pad = modmath.MulMod(
		b.Contests[0].Selections[0].Ciphertext.Pad, f.Group.G, f.Group.P)

	report := &diag.Report{}
	res := ballot.Verify(vctx(f), b, report)
	assert.False(t, res.Valid())
	assert.False(t, res.EncryptionOK)
	assert.False(t, report.OK())
}
