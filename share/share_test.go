package share_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/takakv/eg-verifier/diag"
	"github.com/takakv/eg-verifier/modmath"
	"github.com/takakv/eg-verifier/recordtest"
	"github.com/takakv/eg-verifier/selection"
	"github.com/takakv/eg-verifier/share"
)

func vctx(f *recordtest.Fixture) selection.Context {
	return selection.Context{
		P: f.Group.P, Q: f.Group.Q, G: f.Group.G,
		K:                f.Record.Context.JointPublicKey,
		ExtendedBaseHash: f.ExtendedBaseHash,
	}
}

func TestVerify_ValidSharePasses(t *testing.T) {
	f := recordtest.NewS1Fixture()
	ts := f.Record.Tally.Contests[0].Selections[0]
	report := &diag.Report{}
	ok := share.Verify(vctx(f), "tally.c0.s0", ts.Ciphertext.Pad, ts.Ciphertext.Data, ts.Shares[0], report)
	assert.True(t, ok)
	assert.True(t, report.OK())
}

func TestVerify_TamperedResponseFailsEquation(t *testing.T) {
	f := recordtest.NewS1Fixture()
	ts := f.Record.Tally.Contests[0].Selections[0]
	d := ts.Shares[0]
	// S6: increment v_i by 1.
	d.Proof.Response = modmath.AddMod(d.Proof.Response, big.NewInt(1), f.Group.Q)

	report := &diag.Report{}
	ok := share.Verify(vctx(f), "tally.c0.s0", ts.Ciphertext.Pad, ts.Ciphertext.Data, d, report)
	assert.False(t, ok)

	hasEquationErr := false
	for _, finding := range report.Findings {
		if finding.Kind == diag.KindEquationFailure {
			hasEquationErr = true
		}
	}
	assert.True(t, hasEquationErr, "expected EquationFailure, got %+v", report.Findings)
}

func TestVerifyQuorum_BelowQuorumIsMissingShare(t *testing.T) {
	f := recordtest.NewS1Fixture()
	ts := f.Record.Tally.Contests[0].Selections[0]

	report := &diag.Report{}
	ok := share.VerifyQuorum(vctx(f), "tally.c0.s0", ts.Ciphertext.Pad, ts.Ciphertext.Data, nil, 1, report)
	assert.False(t, ok)
	assert.Equal(t, diag.KindMissingShare, report.Findings[0].Kind)
}
