// Package primality implements a Miller-Rabin probabilistic primality test
// over arbitrary-precision integers, used by pkg/ntt-poly/modulus when
// searching for a working prime.
package primality

import "math/big"

// witnesses is the fixed Miller-Rabin witness set: four distinct bases, not
// a single base repeated, since a repeated base only ever retests the same
// congruence.
var witnesses = []int64{2, 3, 4, 5}

var (
	big1 = big.NewInt(1)
	big4 = big.NewInt(4)
)

// IsPrime reports whether n is probably prime, using Miller-Rabin over the
// fixed witness set {2,3,4,5}. Small cases are handled directly: n <= 1 is
// composite, n in {2,3} is prime, n == 4 is composite.
func IsPrime(n *big.Int) bool {
	if n.Cmp(big1) <= 0 {
		return false
	}
	if n.Cmp(big4) < 0 {
		// n is 2 or 3 at this point (1 and below already excluded).
		return true
	}
	if n.Bit(0) == 0 {
		// even and > 3: composite.
		return false
	}

	// Write n-1 = 2^s * d with d odd.
	d := new(big.Int).Sub(n, big1)
	s := 0
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		s++
	}

	for _, a := range witnesses {
		witness := big.NewInt(a)
		if witness.Cmp(n) >= 0 {
			// n is not larger than this witness; skip it (only relevant for
			// tiny n, which the small-case checks above mostly absorb).
			continue
		}
		if isComposite(n, witness, d, s) {
			return false
		}
	}
	return true
}

// isComposite runs the Miller-Rabin witness loop for a single witness a
// against candidate n, where n-1 = 2^s * d and d is odd.
func isComposite(n, a, d *big.Int, s int) bool {
	x := new(big.Int).Exp(a, d, n)
	nMinus1 := new(big.Int).Sub(n, big1)

	if x.Cmp(big1) == 0 || x.Cmp(nMinus1) == 0 {
		return false
	}

	for r := 1; r < s; r++ {
		x.Mul(x, x)
		x.Mod(x, n)
		if x.Cmp(nMinus1) == 0 {
			return false
		}
	}
	return true
}

// IsPrimeUint64 is a convenience wrapper for callers working with native
// integers rather than big.Int.
func IsPrimeUint64(n uint64) bool {
	return IsPrime(new(big.Int).SetUint64(n))
}
