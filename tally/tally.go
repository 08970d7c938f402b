// Package tally verifies the homomorphic tally: that the recorded
// accumulated ciphertext per (contest, selection) equals the product of
// every CAST ballot's ciphertext for that selection, and that every
// guardian's decryption share for it verifies (spec.md §4.8). The same
// machinery verifies spoiled-ballot decryptions, against the individual
// ballot's own ciphertext rather than an aggregate.
package tally

import (
	"math/big"

	"github.com/takakv/eg-verifier/diag"
	"github.com/takakv/eg-verifier/modmath"
	"github.com/takakv/eg-verifier/record"
	"github.com/takakv/eg-verifier/selection"
	"github.com/takakv/eg-verifier/share"
)

// Verify checks rec.Tally against rec.Ballots: homomorphic aggregation per
// non-placeholder selection, then each aggregate's guardian shares. Findings
// are appended to report; the return value is the conjunction of every
// check performed.
func Verify(ctx selection.Context, rec *record.Record, report *diag.Report) bool {
	ok := true
	p := ctx.P

	for _, tc := range rec.Tally.Contests {
		for _, ts := range tc.Selections {
			loc := "tally." + tc.ObjectID + "." + ts.ObjectID

			alphaStar, betaStar := big.NewInt(1), big.NewInt(1)
			for _, b := range rec.Ballots {
				if b.State != record.BallotStateCast {
					continue
				}
				sel := findSelection(b, tc.ObjectID, ts.ObjectID)
				if sel == nil || sel.IsPlaceholder {
					continue
				}
				alphaStar = modmath.MulMod(alphaStar, sel.Ciphertext.Pad, p)
				betaStar = modmath.MulMod(betaStar, sel.Ciphertext.Data, p)
			}

			if !modmath.Equals(alphaStar, ts.Ciphertext.Pad) || !modmath.Equals(betaStar, ts.Ciphertext.Data) {
				report.Fail(diag.KindAggregationMismatch, loc, "product of cast ballots does not equal recorded aggregate ciphertext")
				ok = false
			}

			if !share.VerifyQuorum(ctx, loc, ts.Ciphertext.Pad, ts.Ciphertext.Data, ts.Shares, rec.Context.Quorum, report) {
				ok = false
			}
		}
	}

	if !verifySpoiled(ctx, rec, report) {
		ok = false
	}

	return ok
}

func verifySpoiled(ctx selection.Context, rec *record.Record, report *diag.Report) bool {
	ok := true
	for _, sb := range rec.SpoiledBallots {
		for _, sc := range sb.Contests {
			for _, ss := range sc.Selections {
				loc := "spoiled." + sb.ObjectID + "." + sc.ObjectID + "." + ss.ObjectID
				if !share.VerifyQuorum(ctx, loc, ss.Ciphertext.Pad, ss.Ciphertext.Data, ss.Shares, rec.Context.Quorum, report) {
					ok = false
				}
			}
		}
	}
	return ok
}

// findSelection locates a ballot's selection by (contest, selection) ID.
func findSelection(b record.Ballot, contestID, selectionID string) *record.Selection {
	for ci := range b.Contests {
		c := &b.Contests[ci]
		if c.ObjectID != contestID {
			continue
		}
		for si := range c.Selections {
			if c.Selections[si].ObjectID == selectionID {
				return &c.Selections[si]
			}
		}
	}
	return nil
}
