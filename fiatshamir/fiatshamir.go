// Package fiatshamir implements the canonical transcript hash used to turn
// every interactive Chaum-Pedersen protocol in this verifier into a
// non-interactive one. The canonicalization rules are bit-exact and must
// match the reference ElectionGuard implementation precisely — see spec.md
// §4.2 and §9 (REDESIGN FLAGS) for the normative rules this code encodes.
package fiatshamir

import (
	"crypto/sha256"
	"fmt"
	"math/big"
)

// Seq marks an ordered sequence of sub-elements that is itself hashed
// recursively and fed into the parent transcript as the decimal
// representation of that sub-hash (spec.md §4.2 rule 2, third bullet).
type Seq []any

// H computes the Fiat-Shamir transcript hash of args and reduces it mod
// (q-1), exactly as the reference implementation does. The caller supplies
// q because the same domain separator (the extended base hash) is computed
// by this same function with q fixed by the record's group parameters.
//
// Each argument must be one of: nil, a string, a Seq, or a *big.Int. Any
// other type is a programmer error and panics.
func H(q *big.Int, args ...any) *big.Int {
	h := sha256.New()
	h.Write([]byte("|"))
	for _, a := range args {
		h.Write([]byte(canonical(q, a)))
		h.Write([]byte("|"))
	}
	digest := h.Sum(nil)
	n := new(big.Int).SetBytes(digest)
	qMinus1 := new(big.Int).Sub(q, big.NewInt(1))
	return n.Mod(n, qMinus1)
}

// canonical renders a single transcript argument to the string that gets
// fed into the running hash, following spec.md §4.2's rules verbatim —
// including the reference implementation's Python-falsiness quirk that a
// zero-valued *big.Int is treated the same as an absent value ("null"),
// since a correctly-formed record never contains a literal zero in a
// ciphertext, proof commitment, or challenge/response position.
func canonical(q *big.Int, a any) string {
	switch v := a.(type) {
	case nil:
		return "null"
	case string:
		if v == "" {
			return "null"
		}
		return v
	case *big.Int:
		if v == nil || v.Sign() == 0 {
			return "null"
		}
		return v.String()
	case Seq:
		if len(v) == 0 {
			return "null"
		}
		return H(q, v...).String()
	default:
		panic(fmt.Sprintf("fiatshamir: unsupported transcript argument type %T", a))
	}
}
