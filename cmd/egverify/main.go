// Command egverify checks an ElectionGuard-style election record against
// the baseline group parameters, every ballot's zero-knowledge proofs, and
// the homomorphic tally, emitting a pass/fail verdict and the offending
// locations on failure (spec.md §6).
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/takakv/eg-verifier/log"
	"github.com/takakv/eg-verifier/params"
	"github.com/takakv/eg-verifier/record"
	"github.com/takakv/eg-verifier/tally"
	"github.com/takakv/eg-verifier/verify"
)

// Exit codes per spec.md §6: 0 pass, 1 at least one verification failure,
// 2 ingestion or usage error.
const (
	exitPass          = 0
	exitVerifyFailure = 1
	exitUsageError    = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := loadConfig(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitUsageError
	}

	log.Init(cfg.LogLevel, cfg.LogFormat)

	paths, err := resolvePaths(cfg)
	if err != nil {
		log.Errorf("%v", err)
		return exitUsageError
	}

	rec, err := record.Load(paths)
	if err != nil {
		log.Errorf("ingestion failed: %v", err)
		return exitUsageError
	}
	log.Infof("loaded record: %d ballots, %d guardians", len(rec.Ballots), rec.Context.NumberOfGuardians)

	opts := verify.Options{
		Spec:        params.StandardV1,
		Workers:     cfg.Workers,
		FailFast:    cfg.FailFast,
		MaxFailures: cfg.MaxFailures,
		PowCacheLen: 4096,
	}
	report, err := verify.Run(context.Background(), rec, opts)
	if err != nil {
		log.Errorf("verification aborted: %v", err)
		return exitUsageError
	}

	var reconstructed []tally.ReconstructedSelection
	if cfg.ReconstructTally && report.OK() {
		reconstructed, err = tally.Reconstruct(reconstructParams(rec), rec)
		if err != nil {
			log.Warnf("tally reconstruction skipped: %v", err)
		}
	}

	if cfg.JSONOutput {
		writeJSONSummary(os.Stdout, report, reconstructed)
	} else {
		report.WriteText(os.Stdout)
		for _, rs := range reconstructed {
			fmt.Printf("  %s.%s = %d\n", rs.ContestID, rs.SelectionID, rs.Plaintext)
		}
	}

	if !report.OK() {
		return exitVerifyFailure
	}
	return exitPass
}

// resolvePaths builds record.Paths from cfg, preferring --record as a base
// directory and letting the discrete path flags override individual inputs.
func resolvePaths(cfg *Config) (record.Paths, error) {
	var paths record.Paths
	if cfg.Record != "" {
		paths = record.FromRecordDir(cfg.Record)
	}

	overrides := map[*string]string{
		&paths.Constants:    cfg.Constants,
		&paths.Context:      cfg.Context,
		&paths.Description:  cfg.Description,
		&paths.Ballots:      cfg.Ballots,
		&paths.SpoiledDir:   cfg.Spoiled,
		&paths.Tally:        cfg.Tally,
		&paths.Coefficients: cfg.Coefficients,
		&paths.Devices:      cfg.Devices,
	}
	for dst, v := range overrides {
		if v != "" {
			*dst = v
		}
	}

	if paths.Constants == "" || paths.Context == "" || paths.Description == "" ||
		paths.Ballots == "" || paths.SpoiledDir == "" || paths.Tally == "" || paths.Coefficients == "" {
		return record.Paths{}, fmt.Errorf("no record inputs given: pass --record <dir> or the individual --constants/--context/--description/--ballots/--spoiled/--tally/--coefficients flags")
	}
	return paths, nil
}

// reconstructParams assigns each guardian a 1-indexed Lagrange coordinate by
// first appearance across the tally's decryption shares, matching how
// guardians are numbered when their keys are generated.
func reconstructParams(rec *record.Record) tally.ReconstructParams {
	ids := make(map[string]int64)
	var next int64 = 1
	for _, tc := range rec.Tally.Contests {
		for _, ts := range tc.Selections {
			for _, sh := range ts.Shares {
				if _, ok := ids[sh.GuardianID]; !ok {
					ids[sh.GuardianID] = next
					next++
				}
			}
		}
	}
	return tally.ReconstructParams{
		P:           rec.Context.P,
		Q:           rec.Context.Q,
		G:           rec.Context.G,
		GuardianIDs: ids,
	}
}

type jsonSummary struct {
	OK            bool                           `json:"ok"`
	FailureCount  int                            `json:"failure_count"`
	Failures      []jsonFinding                  `json:"failures"`
	Reconstructed []tally.ReconstructedSelection `json:"reconstructed_tally,omitempty"`
}

type jsonFinding struct {
	Kind     string `json:"kind"`
	Location string `json:"location"`
	Detail   string `json:"detail"`
}

func writeJSONSummary(w *os.File, report *verify.Report, reconstructed []tally.ReconstructedSelection) {
	summary := jsonSummary{
		OK:           report.OK(),
		FailureCount: len(report.Findings),
	}
	for _, f := range report.Truncated() {
		summary.Failures = append(summary.Failures, jsonFinding{
			Kind:     string(f.Kind),
			Location: f.Location,
			Detail:   f.Detail,
		})
	}
	summary.Reconstructed = reconstructed

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(summary); err != nil {
		log.Errorf("writing JSON summary: %v", err)
	}
}
