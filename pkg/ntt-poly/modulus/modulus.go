// Package modulus discovers a working prime field and primitive root of
// unity for a given NTT transform length: p for the prime, n for the
// transform length, to avoid confusing the two.
package modulus

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/vybium/ntt-poly/pkg/ntt-poly/primality"
)

// ErrNoPrimitiveRoot is returned (and also the message baked into the panic
// WorkingModulus raises) when a generator candidate search exhausts without
// finding a generator, which indicates a bug in the search rather than a
// legitimate input condition: every prime greater than 2 has a primitive
// root.
var ErrNoPrimitiveRoot = errors.New("modulus: no primitive root found")

// maxCandidateK bounds the search for k in p = k*n+1, guarding against
// pathological (n, M) pairs spinning forever.
const maxCandidateK = 1 << 24

// Plan is an immutable record of a working modulus: a prime p congruent to
// 1 mod n, together with a primitive n-th root of unity omega mod p. Once
// constructed a Plan is never mutated; every NTT call takes it as a
// read-only parameter.
type Plan struct {
	N     uint64
	P     *big.Int
	Omega *big.Int
}

// WorkingModulus finds the smallest k such that p = k*n+1 is prime and
// p >= M, then a primitive n-th root of unity omega mod p. n must be a
// power of two and M must be positive; WorkingModulus panics on either
// contract violation, and when no primitive root is found.
func WorkingModulus(n uint64, m *big.Int) (*Plan, error) {
	if n == 0 || n&(n-1) != 0 {
		panic(fmt.Sprintf("modulus: transform length %d is not a power of two", n))
	}
	if m == nil || m.Sign() <= 0 {
		panic("modulus: bound M must be positive")
	}

	nBig := new(big.Int).SetUint64(n)
	p := new(big.Int)
	one := big.NewInt(1)

	// k*n+1 must be at least M so every product of at most n degree-bounded
	// coefficient pairs reduces uniquely; start k at the largest value with
	// k*n+1 <= M and walk upward until a candidate is >= M and prime.
	k := new(big.Int).Sub(m, one)
	k.Div(k, nBig)
	if k.Sign() < 0 {
		k.SetInt64(0)
	}

	for i := int64(0); i < maxCandidateK; i++ {
		p.Mul(k, nBig)
		p.Add(p, one)
		if p.Cmp(m) >= 0 && primality.IsPrime(p) {
			break
		}
		k.Add(k, one)
		if i == maxCandidateK-1 {
			return nil, fmt.Errorf("modulus: no prime of the form k*%d+1 >= %s found within search bound", n, m)
		}
	}

	phi := new(big.Int).Sub(p, one)
	factors := primeFactors(phi)

	g, err := findGenerator(p, phi, factors)
	if err != nil {
		panic(err)
	}

	exp := new(big.Int).Div(phi, nBig)
	omega := new(big.Int).Exp(g, exp, p)

	return &Plan{N: n, P: new(big.Int).Set(p), Omega: omega}, nil
}

// primeFactors returns the distinct prime factors of n via trial division.
// This is adequate for the NTT-sized phi values this package deals with; it
// is not intended as a general-purpose factorization routine.
func primeFactors(n *big.Int) []*big.Int {
	var factors []*big.Int
	remaining := new(big.Int).Set(n)

	two := big.NewInt(2)
	if new(big.Int).Mod(remaining, two).Sign() == 0 {
		factors = append(factors, new(big.Int).Set(two))
		for new(big.Int).Mod(remaining, two).Sign() == 0 {
			remaining.Div(remaining, two)
		}
	}

	d := big.NewInt(3)
	dSquared := new(big.Int)
	for dSquared.Mul(d, d); dSquared.Cmp(remaining) <= 0; dSquared.Mul(d, d) {
		if new(big.Int).Mod(remaining, d).Sign() == 0 {
			factors = append(factors, new(big.Int).Set(d))
			for new(big.Int).Mod(remaining, d).Sign() == 0 {
				remaining.Div(remaining, d)
			}
		}
		d.Add(d, two)
	}
	if remaining.Cmp(bigOne) > 0 {
		factors = append(factors, new(big.Int).Set(remaining))
	}
	return factors
}

var bigOne = big.NewInt(1)

// findGenerator searches small candidates for a generator of the
// multiplicative group mod p, verifying each candidate g by confirming
// g^(phi/q) != 1 mod p for every prime factor q of phi.
func findGenerator(p, phi *big.Int, factors []*big.Int) (*big.Int, error) {
	for candidate := int64(2); candidate < 1<<20; candidate++ {
		g := big.NewInt(candidate)
		if g.Cmp(p) >= 0 {
			break
		}
		if isGenerator(g, p, phi, factors) {
			return g, nil
		}
	}
	return nil, ErrNoPrimitiveRoot
}

func isGenerator(g, p, phi *big.Int, factors []*big.Int) bool {
	exp := new(big.Int)
	for _, q := range factors {
		exp.Div(phi, q)
		if new(big.Int).Exp(g, exp, p).Cmp(bigOne) == 0 {
			return false
		}
	}
	return true
}
