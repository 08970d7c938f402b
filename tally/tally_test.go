package tally_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/takakv/eg-verifier/diag"
	"github.com/takakv/eg-verifier/modmath"
	"github.com/takakv/eg-verifier/recordtest"
	"github.com/takakv/eg-verifier/selection"
	"github.com/takakv/eg-verifier/tally"
)

func vctx(f *recordtest.Fixture) selection.Context {
	return selection.Context{
		P: f.Group.P, Q: f.Group.Q, G: f.Group.G,
		K:                f.Record.Context.JointPublicKey,
		ExtendedBaseHash: f.ExtendedBaseHash,
	}
}

func TestVerify_HomomorphismHoldsForGenuineFixture(t *testing.T) {
	f := recordtest.NewS1Fixture()
	report := &diag.Report{}
	ok := tally.Verify(vctx(f), f.Record, report)
	assert.True(t, ok)
	assert.True(t, report.OK())
}

func TestVerify_TamperedTallyCiphertextIsAggregationMismatch(t *testing.T) {
	f := recordtest.NewS1Fixture()
	// S5: multiply the recorded aggregate's pad by g.
	f.Record.Tally.Contests[0].Selections[0].Ciphertext.Pad = modmath.MulMod(
		f.Record.Tally.Contests[0].Selections[0].Ciphertext.Pad, f.Group.G, f.Group.P)

	report := &diag.Report{}
	ok := tally.Verify(vctx(f), f.Record, report)
	assert.False(t, ok)

	hasAggErr := false
	for _, finding := range report.Findings {
		if finding.Kind == diag.KindAggregationMismatch {
			hasAggErr = true
		}
	}
	assert.True(t, hasAggErr, "expected AggregationMismatch, got %+v", report.Findings)
}
