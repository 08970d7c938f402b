// Package ballot aggregates per-contest verification results into a
// per-ballot pass/fail (spec.md §4.6). An invalid ballot does not halt the
// run; verification proceeds to completion so every failure is surfaced.
package ballot

import (
	"github.com/takakv/eg-verifier/contest"
	"github.com/takakv/eg-verifier/diag"
	"github.com/takakv/eg-verifier/record"
	"github.com/takakv/eg-verifier/selection"
)

// Result is the per-ballot outcome: both booleans must be true for the
// ballot to be considered valid.
type Result struct {
	ObjectID     string
	EncryptionOK bool
	LimitOK      bool
}

// Valid reports whether both encryption and limit checks passed.
func (r Result) Valid() bool {
	return r.EncryptionOK && r.LimitOK
}

// Verify checks every contest of b independently and aggregates the two
// booleans spec.md §4.6 defines, appending any failures to report.
func Verify(ctx selection.Context, b record.Ballot, report *diag.Report) Result {
	res := Result{ObjectID: b.ObjectID, EncryptionOK: true, LimitOK: true}
	for _, c := range b.Contests {
		cr := contest.Verify(ctx, c, report)
		if !cr.EncryptionOK {
			res.EncryptionOK = false
		}
		if !cr.LimitOK {
			res.LimitOK = false
		}
	}
	return res
}
