// Package ntt implements the forward and inverse Number Theoretic
// Transform, the finite-field analog of the FFT that pkg/ntt-poly/polynomial
// uses for sub-quadratic multiplication: cached bit-reversal permutation,
// two-pass (seed-then-fill) twiddle precomputation, and iterative
// decimation-in-time butterflies, generalized to an arbitrary
// pkg/ntt-poly/modulus.Plan rather than a single fixed prime.
package ntt

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/vybium/ntt-poly/pkg/ntt-poly/field"
	"github.com/vybium/ntt-poly/pkg/ntt-poly/internal/parallel"
	"github.com/vybium/ntt-poly/pkg/ntt-poly/modulus"
)

// ChunkSize is the block size used when precomputing twiddle factors: every
// ChunkSize-th entry is seeded directly via ModExp, and the entries between
// seeds are filled by one multiplication each. Chunks are independent and
// may run concurrently; within a chunk the fill is strictly sequential.
// 128 keeps each chunk's sequential fill short while still amortizing
// goroutine dispatch overhead.
const ChunkSize = 128

// Parallel controls whether Forward and Inverse parallelize their twiddle
// precomputation and butterfly stages across goroutines. It is the Go
// rendition of the compile-time parallel feature switch the original
// implementation exposed; flip it off for deterministic single-goroutine
// execution (small inputs, or while debugging).
var Parallel = true

var (
	swapIndexCache = make(map[int][]int)
	swapIndexMu    sync.RWMutex
)

// Forward computes the length-N NTT of x under plan, using plan.Omega as the
// root of unity. x is not mutated; the transformed vector is returned as a
// new slice of the same length. Every element of x must already be bound to
// plan.P (the engine does not rebase on the caller's behalf beyond what
// field.Element's own arithmetic does implicitly).
func Forward(x []field.Element, plan *modulus.Plan) []field.Element {
	return transform(x, plan, plan.Omega)
}

// Inverse computes the length-N inverse NTT of x under plan: the same
// butterfly pipeline run with omega^-1, followed by a scalar multiply by
// N^-1 mod p. Forward then Inverse (or vice versa) is the identity.
func Inverse(x []field.Element, plan *modulus.Plan) []field.Element {
	omegaInv := field.NewInModulus(plan.Omega, plan.P).Invert().Value()
	out := transform(x, plan, omegaInv)

	nInv := field.NewInModulus(big.NewInt(int64(len(x))), plan.P).Invert()
	parallel.For(len(out), func(i int) {
		out[i] = out[i].Mul(nInv)
	})
	return out
}

// transform runs the shared bit-reversal + twiddle + butterfly pipeline
// against root w (plan.Omega for Forward, its inverse for Inverse).
func transform(x []field.Element, plan *modulus.Plan, w *big.Int) []field.Element {
	n := len(x)
	validateLength(n)
	validatePlan(plan, n)

	parallel.Enabled = Parallel

	out := make([]field.Element, n)
	copy(out, x)

	bitReversePermute(out)

	tw := twiddleFactors(n, w, plan.P)

	for gap := 1; gap < n; gap *= 2 {
		windowSize := 2 * gap
		numWindows := n / windowSize
		stride := n / windowSize
		g := gap
		parallel.For(numWindows, func(wIdx int) {
			base := wIdx * windowSize
			for j := 0; j < g; j++ {
				lo := base + j
				hi := base + j + g
				t := out[hi].Mul(tw[stride*j])
				sum := out[lo].Add(t)
				diff := out[lo].Sub(t)
				out[lo] = sum
				out[hi] = diff
			}
		})
	}
	return out
}

// twiddleFactors builds tw[0..N/2) with tw[i] = w^i mod p, seeding every
// ChunkSize-th entry directly via ModExp and filling the rest of each chunk
// by repeated multiplication. Chunks run in parallel via parallel.For; the
// fill within a chunk is inherently sequential.
func twiddleFactors(n int, w, p *big.Int) []field.Element {
	half := n / 2
	tw := make([]field.Element, half)
	if half == 0 {
		return tw
	}

	wElem := field.NewInModulus(w, p)
	numChunks := (half + ChunkSize - 1) / ChunkSize

	parallel.For(numChunks, func(c int) {
		start := c * ChunkSize
		end := start + ChunkSize
		if end > half {
			end = half
		}
		tw[start] = wElem.ModExp(big.NewInt(int64(start)), p)
		for j := start + 1; j < end; j++ {
			tw[j] = tw[j-1].Mul(wElem)
		}
	})
	return tw
}

// bitReversePermute swaps x[i] with x[revI] wherever the bit-reversed index
// revI of i exceeds i, using the standard incremental bit-reversal counter
// so no position requires a per-element bit count.
func bitReversePermute(x []field.Element) {
	indices := swapIndices(len(x))
	for i, revI := range indices {
		if revI > i {
			x[i], x[revI] = x[revI], x[i]
		}
	}
}

// swapIndices returns, for every i in [0, n), the bit-reversed index of i
// with respect to log2(n) bits. The mapping depends only on n, not on any
// plan's modulus, so it is cached across calls.
func swapIndices(n int) []int {
	swapIndexMu.RLock()
	if idx, ok := swapIndexCache[n]; ok {
		swapIndexMu.RUnlock()
		return idx
	}
	swapIndexMu.RUnlock()

	swapIndexMu.Lock()
	defer swapIndexMu.Unlock()
	if idx, ok := swapIndexCache[n]; ok {
		return idx
	}

	indices := make([]int, n)
	rev := 0
	for i := 0; i < n; i++ {
		indices[i] = rev
		bit := n >> 1
		for rev&bit != 0 {
			rev &^= bit
			bit >>= 1
		}
		rev |= bit
	}
	swapIndexCache[n] = indices
	return indices
}

func validateLength(n int) {
	if n < 2 || n&(n-1) != 0 {
		panic(fmt.Sprintf("ntt: transform length must be a power of two >= 2, got %d", n))
	}
}

func validatePlan(plan *modulus.Plan, n int) {
	if plan == nil {
		panic("ntt: plan must not be nil")
	}
	if plan.P.Bit(0) == 0 {
		panic("ntt: plan modulus must be odd")
	}
	if plan.N != uint64(n) {
		panic(fmt.Sprintf("ntt: plan built for N=%d, called with length %d", plan.N, n))
	}
	remainder := new(big.Int).Mod(new(big.Int).Sub(plan.P, big.NewInt(1)), big.NewInt(int64(n)))
	if remainder.Sign() != 0 {
		panic(fmt.Sprintf("ntt: plan prime %s is not congruent to 1 mod %d", plan.P, n))
	}
}
