package modmath

import "math/big"

// IsPrime reports whether num is prime, using k rounds of Miller-Rabin (via
// math/big's ProbablyPrime, which layers a Baillie-PSW test on top of the
// requested Miller-Rabin rounds for an even stronger guarantee than a bare
// Miller-Rabin implementation). num must be positive.
func IsPrime(num *big.Int, k int) bool {
	if num == nil || num.Sign() <= 0 {
		return false
	}
	return num.ProbablyPrime(k)
}
