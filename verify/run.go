package verify

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/takakv/eg-verifier/ballot"
	"github.com/takakv/eg-verifier/diag"
	"github.com/takakv/eg-verifier/log"
	"github.com/takakv/eg-verifier/modmath"
	"github.com/takakv/eg-verifier/params"
	"github.com/takakv/eg-verifier/record"
	"github.com/takakv/eg-verifier/selection"
	"github.com/takakv/eg-verifier/tally"
)

// Options configures a Run beyond what the record itself specifies.
type Options struct {
	Spec        params.RecordSpec
	Workers     int // 0 means runtime.GOMAXPROCS(0)
	FailFast    bool
	MaxFailures int
	PowCacheLen int // 0 disables the modular-power cache
}

// Run executes the full verification pipeline over rec: baseline parameter
// check, then ballot verification (fanned out across Options.Workers
// goroutines), then tally/spoiled-ballot verification. It returns a Report
// whose Findings are in document order (ballot file order, then contest,
// then selection) regardless of completion order, per spec.md §5.
//
// Run never returns an error for a verification failure — failures are
// Findings in the returned Report. An error return is reserved for ctx
// cancellation.
func Run(ctx context.Context, rec *record.Record, opts Options) (*Report, error) {
	report := &Report{MaxFailures: opts.MaxFailures}

	paramResult := params.Validate(opts.Spec, rec.Context.P, rec.Context.Q, rec.Context.R, rec.Context.G)
	for _, f := range paramResult.Failures {
		report.Findings = append(report.Findings, diag.Finding{
			Kind:     diag.KindParameterError,
			Location: "params",
			Detail:   f.Detail,
		})
	}
	log.Infof("baseline parameter check: ok=%v", paramResult.OK())
	if !paramResult.OK() && opts.FailFast {
		return report, nil
	}

	vctx := selection.Context{
		P:                rec.Context.P,
		Q:                rec.Context.Q,
		G:                rec.Context.G,
		K:                rec.Context.JointPublicKey,
		ExtendedBaseHash: rec.Context.ExtendedBaseHash,
		Pow:              modmath.NewPowCache(opts.PowCacheLen),
	}

	ballotFindings, err := verifyBallots(ctx, vctx, rec, opts)
	if err != nil {
		return nil, err
	}
	report.Findings = append(report.Findings, ballotFindings...)
	if opts.FailFast && len(ballotFindings) > 0 {
		return report, nil
	}

	tallyReport := &diag.Report{}
	tally.Verify(vctx, rec, tallyReport)
	report.Findings = append(report.Findings, tallyReport.Findings...)

	log.Infof("verification complete: ok=%v findings=%d", report.OK(), len(report.Findings))
	return report, nil
}

// verifyBallots fans ballot verification out across a bounded worker pool.
// Each worker writes into its own slot of a pre-sized slice indexed by the
// ballot's position in rec.Ballots, so the merged result is in document
// order no matter which worker finishes first.
func verifyBallots(ctx context.Context, vctx selection.Context, rec *record.Record, opts Options) ([]diag.Finding, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	perBallot := make([]*diag.Report, len(rec.Ballots))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range rec.Ballots {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r := &diag.Report{}
			res := ballot.Verify(vctx, rec.Ballots[i], r)
			perBallot[i] = r
			log.Debugf("ballot %s: encryption_ok=%v limit_ok=%v", res.ObjectID, res.EncryptionOK, res.LimitOK)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var findings []diag.Finding
	for _, r := range perBallot {
		findings = append(findings, r.Findings...)
	}
	return findings, nil
}
