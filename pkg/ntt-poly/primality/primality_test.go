package primality

import (
	"math/big"
	"testing"
)

// TestIsPrimeLiterals checks IsPrime against small known primes and
// composites.
func TestIsPrimeLiterals(t *testing.T) {
	cases := []struct {
		n    int64
		want bool
	}{
		{0, false},
		{1, false},
		{2, true},
		{3, true},
		{4, false},
		{5, true},
		{10, false},
		{11, true},
	}
	for _, c := range cases {
		if got := IsPrimeUint64(uint64(c.n)); got != c.want {
			t.Errorf("IsPrime(%d) = %v, want %v", c.n, got, c.want)
		}
	}
}

// TestIsPrimeNTTFriendly checks an NTT-friendly prime: 1062862849 =
// 8109*2^17+1.
func TestIsPrimeNTTFriendly(t *testing.T) {
	n := big.NewInt(1062862849)
	if !IsPrime(n) {
		t.Errorf("IsPrime(1062862849) = false, want true")
	}
}

// TestIsPrimeAgreesWithSieve checks agreement with a trusted sieve of
// Eratosthenes over [2, 10^6].
func TestIsPrimeAgreesWithSieve(t *testing.T) {
	const limit = 1_000_000
	sieve := make([]bool, limit+1)
	for i := 2; i <= limit; i++ {
		sieve[i] = true
	}
	for i := 2; i*i <= limit; i++ {
		if sieve[i] {
			for j := i * i; j <= limit; j += i {
				sieve[j] = false
			}
		}
	}

	// Sampling every value would be slow in CI; check every value up to
	// 10000 plus every multiple of 97 through the rest of the range.
	for n := 2; n <= limit; n++ {
		if n > 10000 && n%97 != 0 {
			continue
		}
		if got := IsPrimeUint64(uint64(n)); got != sieve[n] {
			t.Fatalf("IsPrime(%d) = %v, want %v", n, got, sieve[n])
		}
	}
}

func TestIsPrimeEvenComposite(t *testing.T) {
	for _, n := range []int64{6, 8, 100, 1062862850} {
		if IsPrime(big.NewInt(n)) {
			t.Errorf("IsPrime(%d) = true, want false", n)
		}
	}
}
