package contest_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/takakv/eg-verifier/contest"
	"github.com/takakv/eg-verifier/diag"
	"github.com/takakv/eg-verifier/record"
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

func TestVerify_ValidContestPasses(t *testing.T) {
	f := recordtest.NewS1Fixture()
	report := &diag.Report{}
	res := contest.Verify(vctx(f), f.Record.Ballots[0].Contests[0], report)
	assert.True(t, res.EncryptionOK)
	assert.True(t, res.LimitOK)
	assert.True(t, report.OK())
}

func TestVerify_RemovingPlaceholderFailsLimit(t *testing.T) {
	f := recordtest.NewS1Fixture()
	c := f.Record.Ballots[0].Contests[0]
	// S3: drop the placeholder selection.
	var kept []record.Selection
	for _, s := range c.Selections {
		if !s.IsPlaceholder {
			kept = append(kept, s)
		}
	}
	c.Selections = kept

	report := &diag.Report{}
	res := contest.Verify(vctx(f), c, report)
	assert.False(t, res.LimitOK)

	hasPlaceholderErr := false
	for _, finding := range report.Findings {
		if finding.Kind == diag.KindPlaceholderCount {
			hasPlaceholderErr = true
		}
	}
	assert.True(t, hasPlaceholderErr, "expected PlaceholderCountError, got %+v", report.Findings)
}

func TestVerify_ConstantMismatchWithVoteLimit(t *testing.T) {
	f := recordtest.NewS1Fixture()
	c := f.Record.Ballots[0].Contests[0]
	// Known source ambiguity #1: proof.constant must equal the vote limit.
	c.Proof.Constant = big.NewInt(99)

	report := &diag.Report{}
	res := contest.Verify(vctx(f), c, report)
	assert.False(t, res.LimitOK)
}

func TestVerify_ChallengeMismatchOnTamperedAggregate(t *testing.T) {
	f := recordtest.NewS1Fixture()
	c := f.Record.Ballots[0].Contests[0]
	c.Proof.Pad = big.NewInt(1)

	report := &diag.Report{}
	res := contest.Verify(vctx(f), c, report)
	assert.False(t, res.LimitOK)
}

