package verify_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/takakv/eg-verifier/diag"
	"github.com/takakv/eg-verifier/modmath"
	"github.com/takakv/eg-verifier/params"
	"github.com/takakv/eg-verifier/recordtest"
	"github.com/takakv/eg-verifier/verify"
)

func runOpts() verify.Options {
	return verify.Options{Spec: params.TestSpec, Workers: 2, MaxFailures: 50}
}

// S1 — all-zero ballot passes.
func TestRun_S1_AllZeroBallotPasses(t *testing.T) {
	f := recordtest.NewS1Fixture()
	report, err := verify.Run(context.Background(), f.Record, runOpts())
	assert.NoError(t, err)
	assert.True(t, report.OK())
	assert.Equal(t, 0, report.ExitCode())
}

// S2 — tampered selection ciphertext.
func TestRun_S2_TamperedSelectionCiphertext(t *testing.T) {
	f := recordtest.NewS1Fixture()
	f.Record.Ballots[0].Contests[0].Selections[0].Ciphertext.Pad = modmath.MulMod(
		f.Record.Ballots[0].Contests[0].Selections[0].Ciphertext.Pad, f.Group.G, f.Group.P)

	report, err := verify.Run(context.Background(), f.Record, runOpts())
	assert.NoError(t, err)
	assert.False(t, report.OK())
	assert.Equal(t, 1, report.ExitCode())
	assertHasKind(t, report, diag.KindEquationFailure)
}

// S3 — wrong placeholder count.
func TestRun_S3_WrongPlaceholderCount(t *testing.T) {
	f := recordtest.NewS1Fixture()
	c := &f.Record.Ballots[0].Contests[0]
	kept := c.Selections[:0:0]
	for _, s := range c.Selections {
		if !s.IsPlaceholder {
			kept = append(kept, s)
		}
	}
	c.Selections = kept

	report, err := verify.Run(context.Background(), f.Record, runOpts())
	assert.NoError(t, err)
	assert.False(t, report.OK())
	assertHasKind(t, report, diag.KindPlaceholderCount)
}

// S4 — mismatched baseline parameter.
func TestRun_S4_MismatchedBaselineParameter(t *testing.T) {
	f := recordtest.NewS1Fixture()
	f.Record.Context.P = new(big.Int).Add(f.Record.Context.P, big.NewInt(2))

	report, err := verify.Run(context.Background(), f.Record, runOpts())
	assert.NoError(t, err)
	assert.False(t, report.OK())
	assertHasKind(t, report, diag.KindParameterError)
}

// S5 — broken tally aggregation.
func TestRun_S5_BrokenTallyAggregation(t *testing.T) {
	f := recordtest.NewS1Fixture()
	f.Record.Tally.Contests[0].Selections[0].Ciphertext.Pad = modmath.MulMod(
		f.Record.Tally.Contests[0].Selections[0].Ciphertext.Pad, f.Group.G, f.Group.P)

	report, err := verify.Run(context.Background(), f.Record, runOpts())
	assert.NoError(t, err)
	assert.False(t, report.OK())
	assertHasKind(t, report, diag.KindAggregationMismatch)
}

// S6 — guardian share forged.
func TestRun_S6_GuardianShareForged(t *testing.T) {
	f := recordtest.NewS1Fixture()
	d := &f.Record.Tally.Contests[0].Selections[0].Shares[0]
	d.Proof.Response = modmath.AddMod(d.Proof.Response, big.NewInt(1), f.Group.Q)

	report, err := verify.Run(context.Background(), f.Record, runOpts())
	assert.NoError(t, err)
	assert.False(t, report.OK())
	assertHasKind(t, report, diag.KindEquationFailure)
}

// Invariant 8/9: idempotence and determinism regardless of worker count.
func TestRun_DeterministicAcrossWorkerCounts(t *testing.T) {
	f := recordtest.NewS1Fixture()

	opts1 := runOpts()
	opts1.Workers = 1
	r1, err := verify.Run(context.Background(), f.Record, opts1)
	assert.NoError(t, err)

	opts4 := runOpts()
	opts4.Workers = 4
	r4, err := verify.Run(context.Background(), f.Record, opts4)
	assert.NoError(t, err)

	assert.Equal(t, r1.OK(), r4.OK())
	assert.Equal(t, len(r1.Findings), len(r4.Findings))
}

func assertHasKind(t *testing.T, report *verify.Report, kind diag.Kind) {
	t.Helper()
	for _, f := range report.Findings {
		if f.Kind == kind {
			return
		}
	}
	t.Fatalf("expected a finding of kind %s, got %+v", kind, report.Findings)
}
