package polynomial

import (
	"math/big"

	"github.com/vybium/ntt-poly/pkg/ntt-poly/field"
	"github.com/vybium/ntt-poly/pkg/ntt-poly/internal/parallel"
	"github.com/vybium/ntt-poly/pkg/ntt-poly/modulus"
	"github.com/vybium/ntt-poly/pkg/ntt-poly/ntt"
)

// FastMul multiplies a and b via plan's NTT: zero-pad both to plan.N,
// forward-transform each, multiply pointwise, inverse-transform, and trim
// the padding back off. The caller is responsible for having built plan
// with N >= deg(a)+deg(b)+1 (rounded to a power of two) and a modulus large
// enough that no true coefficient of the product exceeds it; FastMul does
// not detect an undersized plan.
func FastMul(a, b *Polynomial, plan *modulus.Plan) *Polynomial {
	n := int(plan.N)

	paddedA := rebaseAll(leftPadTo(a, n), plan.P)
	paddedB := rebaseAll(leftPadTo(b, n), plan.P)

	forwardA := ntt.Forward(paddedA, plan)
	forwardB := ntt.Forward(paddedB, plan)

	pointwise := make([]field.Element, n)
	parallel.For(n, func(i int) {
		pointwise[i] = forwardA[i].Mul(forwardB[i])
	})

	raw := ntt.Inverse(pointwise, plan)

	dA, dB := a.Degree(), b.Degree()
	length := dA + dB + 1
	start := n - length - 1

	// The window is read cyclically: when N == dA+dB+1, start is -1 and the
	// highest-degree coefficient sits in raw's last slot.
	result := make([]field.Element, length)
	for i := range result {
		result[i] = raw[(start+i+n)%n]
	}
	return &Polynomial{coefficients: result}
}

// MulBrute computes a*b with schoolbook O(n*m) multiplication, entirely
// within the operands' own shared modulus (no plan required). It exists for
// correctness testing against FastMul and as a fallback for inputs too
// small to benefit from the NTT.
func MulBrute(a, b *Polynomial) *Polynomial {
	dA, dB := a.Degree(), b.Degree()
	length := dA + dB + 1
	mod := modulusOf(a.coefficients)

	zero := field.Zero(mod)
	result := make([]field.Element, length)
	for i := range result {
		result[i] = zero
	}

	na, nb := len(a.coefficients), len(b.coefficients)
	for da := 0; da <= dA; da++ {
		ca := a.coefficients[na-1-da]
		if ca.IsZero() {
			continue
		}
		for db := 0; db <= dB; db++ {
			cb := b.coefficients[nb-1-db]
			deg := da + db
			idx := length - 1 - deg
			result[idx] = result[idx].Add(ca.Mul(cb))
		}
	}
	return &Polynomial{coefficients: result}
}

// leftPadTo returns p's big-endian coefficients zero-padded on the
// most-significant side to exactly n entries. n must be >= p.Len().
func leftPadTo(p *Polynomial, n int) []field.Element {
	cur := p.coefficients
	if len(cur) == n {
		out := make([]field.Element, n)
		copy(out, cur)
		return out
	}
	if len(cur) > n {
		panic("polynomial: cannot pad to a length shorter than the polynomial")
	}

	out := make([]field.Element, n)
	zero := field.Zero(modulusOf(cur))
	offset := n - len(cur)
	for i := 0; i < offset; i++ {
		out[i] = zero
	}
	copy(out[offset:], cur)
	return out
}

// rebaseAll reinterprets every element's residue under modulus p. Safe
// whenever the caller has sized the plan so coefficient magnitudes stay
// below p, per FastMul's documented obligation.
func rebaseAll(elems []field.Element, p *big.Int) []field.Element {
	out := make([]field.Element, len(elems))
	for i, e := range elems {
		rebased, err := e.SetModulus(p)
		if err != nil {
			panic("polynomial: plan modulus must be odd: " + err.Error())
		}
		out[i] = rebased
	}
	return out
}
