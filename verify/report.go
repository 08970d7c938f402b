// Package verify hosts the top-level verification pipeline: load a record,
// validate its baseline parameters, verify every ballot and the tally, and
// fold the results into a single Report (spec.md §2, §7; SPEC_FULL §4.0,
// §4.10).
package verify

import (
	"fmt"
	"io"
	"sort"

	"github.com/takakv/eg-verifier/diag"
)

// FailureKind and Finding are this package's names for the shared
// diagnostic vocabulary in diag; aliased here so callers only ever import
// verify, not its internal diag dependency.
type (
	FailureKind = diag.Kind
	Finding     = diag.Finding
)

const (
	KindParameterError      = diag.KindParameterError
	KindMembershipError     = diag.KindMembershipError
	KindChallengeMismatch   = diag.KindChallengeMismatch
	KindEquationFailure     = diag.KindEquationFailure
	KindPlaceholderCount    = diag.KindPlaceholderCount
	KindAggregationMismatch = diag.KindAggregationMismatch
	KindMissingShare        = diag.KindMissingShare
)

// Report is the verification run's final outcome: every Finding collected
// across params/ballot/tally checks, in document order (ballot file order,
// then contest sequence, then selection index), regardless of how many
// workers ran concurrently.
type Report struct {
	Findings    []Finding
	MaxFailures int // 0 means unlimited
}

// OK reports whether the run passed (no Findings at all).
func (r *Report) OK() bool {
	return r == nil || len(r.Findings) == 0
}

// CountByKind tallies Findings per FailureKind.
func (r *Report) CountByKind() map[FailureKind]int {
	counts := make(map[FailureKind]int)
	for _, f := range r.Findings {
		counts[f.Kind]++
	}
	return counts
}

// Truncated returns up to MaxFailures Findings (all of them if MaxFailures
// is 0), per spec.md §7's "first N offending locations".
func (r *Report) Truncated() []Finding {
	if r.MaxFailures <= 0 || len(r.Findings) <= r.MaxFailures {
		return r.Findings
	}
	return r.Findings[:r.MaxFailures]
}

// WriteText renders a human-readable summary to w: overall verdict, a count
// of failures by kind, then the (possibly truncated) list of findings. This
// is deliberately a separate concern from collecting Findings, per
// REDESIGN FLAGS ("print as the only diagnostic channel" -> structured
// events plus a dedicated renderer).
func (r *Report) WriteText(w io.Writer) {
	if r.OK() {
		fmt.Fprintln(w, "PASS")
		return
	}
	fmt.Fprintf(w, "FAIL (%d failures)\n", len(r.Findings))
	counts := r.CountByKind()
	kinds := make([]string, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, string(k))
	}
	sort.Strings(kinds)
	for _, k := range kinds {
		fmt.Fprintf(w, "  %s: %d\n", k, counts[diag.Kind(k)])
	}
	for _, f := range r.Truncated() {
		fmt.Fprintf(w, "  %s\n", f.String())
	}
	if r.MaxFailures > 0 && len(r.Findings) > r.MaxFailures {
		fmt.Fprintf(w, "  ... %d more\n", len(r.Findings)-r.MaxFailures)
	}
}

// ExitCode maps a run outcome to the CLI contract of SPEC_FULL §6: 0 pass,
// 1 at least one verification failure. Ingestion/usage errors are handled
// by the caller before a Report even exists (exit code 2).
func (r *Report) ExitCode() int {
	if r.OK() {
		return 0
	}
	return 1
}
