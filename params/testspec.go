package params

import "math/big"

// TestSpec is a tiny, genuinely prime parameter set (p=47, q=23, r=2, g=4)
// used by the test suite in place of StandardV1's 4096-bit group so that
// proof construction and verification in tests runs quickly while still
// exercising every algebraic relation spec.md §4.3 requires:
//
//	p, q prime; p-1 = q*r; q does not divide r; 1 < g < p; g^q mod p = 1.
var TestSpec = RecordSpec{
	Name: "test-tiny",
	P:    big.NewInt(47),
	Q:    big.NewInt(23),
	R:    big.NewInt(2),
	G:    big.NewInt(4),
}
