// Package polynomial provides a big-endian coefficient container (index 0
// is the highest-degree term) and the schoolbook algebra on top of it.
// Sub-quadratic multiplication lives in polynomial_ntt.go.
package polynomial

import (
	"math/big"

	"github.com/vybium/ntt-poly/pkg/ntt-poly/field"
)

// Polynomial is a coefficient vector, stored most-significant first: index 0
// holds the coefficient of the highest-degree term. New left-pads with zeros
// to a power-of-two length; Diff, FastMul and MulBrute return trimmed
// vectors whose length need not be a power of two.
type Polynomial struct {
	coefficients []field.Element
}

// New constructs a polynomial from big-endian coefficients, left-padding
// with zeros to the next power of two if coef's length isn't one already.
func New(coef []field.Element) *Polynomial {
	n := nextPowerOfTwo(len(coef))
	out := make([]field.Element, n)
	zero := field.Zero(modulusOf(coef))
	offset := n - len(coef)
	for i := 0; i < offset; i++ {
		out[i] = zero
	}
	copy(out[offset:], coef)
	return &Polynomial{coefficients: out}
}

func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

func modulusOf(coef []field.Element) *big.Int {
	if len(coef) > 0 {
		return coef[0].Modulus()
	}
	return field.DefaultModulus()
}

// Len returns the coefficient vector's length.
func (p *Polynomial) Len() int {
	return len(p.coefficients)
}

// Degree returns the index, counted from the tail (the constant-term end),
// of the highest non-zero coefficient. An all-zero vector reports degree 0,
// matching the representation's minimum length-1 invariant after Diff.
func (p *Polynomial) Degree() int {
	n := len(p.coefficients)
	for i := 0; i < n; i++ {
		if !p.coefficients[i].IsZero() {
			return n - 1 - i
		}
	}
	return 0
}

// Max returns the lexicographically largest coefficient, ordered by residue
// value.
func (p *Polynomial) Max() field.Element {
	m := p.coefficients[0]
	for _, c := range p.coefficients[1:] {
		if c.Greater(m) {
			m = c
		}
	}
	return m
}

// ToVec returns a copy of the big-endian coefficient vector.
func (p *Polynomial) ToVec() []field.Element {
	out := make([]field.Element, len(p.coefficients))
	copy(out, p.coefficients)
	return out
}

// At returns the coefficient at big-endian index i.
func (p *Polynomial) At(i int) field.Element {
	return p.coefficients[i]
}

// SetCoef overwrites the coefficient at big-endian index i.
func (p *Polynomial) SetCoef(i int, v field.Element) {
	p.coefficients[i] = v
}

// IsZero reports whether every coefficient is zero.
func (p *Polynomial) IsZero() bool {
	for _, c := range p.coefficients {
		if !c.IsZero() {
			return false
		}
	}
	return true
}

// Equal compares two polynomials coefficient-by-coefficient from the tail,
// so differing lengths with the same trailing values and zero padding on
// the longer one are still equal.
func (p *Polynomial) Equal(other *Polynomial) bool {
	n, m := len(p.coefficients), len(other.coefficients)
	max := n
	if m > max {
		max = m
	}
	for i := 1; i <= max; i++ {
		var a, b field.Element
		if i <= n {
			a = p.coefficients[n-i]
		} else {
			a = field.Zero(modulusOf(p.coefficients))
		}
		if i <= m {
			b = other.coefficients[m-i]
		} else {
			b = field.Zero(modulusOf(other.coefficients))
		}
		if !a.Equal(b) {
			return false
		}
	}
	return true
}

// Add, Sub, and Neg are element-wise from the tail (low-degree) end; the
// longer operand's extra high-degree coefficients are preserved unchanged.
func (p *Polynomial) Add(other *Polynomial) *Polynomial {
	return combine(p, other, field.Element.Add)
}

func (p *Polynomial) Sub(other *Polynomial) *Polynomial {
	return combine(p, other, field.Element.Sub)
}

func combine(p, q *Polynomial, op func(field.Element, field.Element) field.Element) *Polynomial {
	ra := reversed(p.coefficients)
	rb := reversed(q.coefficients)
	max := len(ra)
	if len(rb) > max {
		max = len(rb)
	}

	zero := field.Zero(modulusOf(p.coefficients))
	out := make([]field.Element, max)
	for i := 0; i < max; i++ {
		a, b := zero, zero
		if i < len(ra) {
			a = ra[i]
		}
		if i < len(rb) {
			b = rb[i]
		}
		out[i] = op(a, b)
	}
	return &Polynomial{coefficients: reversed(out)}
}

func reversed(c []field.Element) []field.Element {
	n := len(c)
	out := make([]field.Element, n)
	for i, v := range c {
		out[n-1-i] = v
	}
	return out
}

// Neg negates every coefficient.
func (p *Polynomial) Neg() *Polynomial {
	out := make([]field.Element, len(p.coefficients))
	for i, c := range p.coefficients {
		out[i] = c.Neg()
	}
	return &Polynomial{coefficients: out}
}

// Diff computes the formal derivative. For N coefficients stored
// big-endian, new_coef[n] = old_coef[n-1] * (N-n) for n = N-1, ..., 1, and
// new_coef[0] = 0; leading zeros are then trimmed, down to a minimum length
// of 1.
func (p *Polynomial) Diff() *Polynomial {
	n := len(p.coefficients)
	zero := field.Zero(modulusOf(p.coefficients))

	newCoef := make([]field.Element, n)
	newCoef[0] = zero
	for idx := n - 1; idx >= 1; idx-- {
		scalar := field.NewInModulus(big.NewInt(int64(n-idx)), modulusOf(p.coefficients))
		newCoef[idx] = p.coefficients[idx-1].Mul(scalar)
	}

	i := 0
	for i < len(newCoef)-1 && newCoef[i].IsZero() {
		i++
	}
	return &Polynomial{coefficients: newCoef[i:]}
}
