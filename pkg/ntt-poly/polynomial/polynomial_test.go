package polynomial

import (
	"math/big"
	"testing"

	"github.com/vybium/ntt-poly/pkg/ntt-poly/field"
)

func elems(values ...int64) []field.Element {
	out := make([]field.Element, len(values))
	for i, v := range values {
		out[i] = field.NewFromInt64(v)
	}
	return out
}

func vals(p *Polynomial) []int64 {
	out := make([]int64, p.Len())
	for i, c := range p.ToVec() {
		out[i] = c.Value().Int64()
	}
	return out
}

func equalInt64(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNewPadsToPowerOfTwo(t *testing.T) {
	p := New(elems(3, 2, 1))
	if p.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", p.Len())
	}
	if !equalInt64(vals(p), []int64{0, 3, 2, 1}) {
		t.Fatalf("coefficients = %v, want [0 3 2 1]", vals(p))
	}
}

func TestDegree(t *testing.T) {
	p := New(elems(0, 3, 2, 1))
	if got := p.Degree(); got != 2 {
		t.Errorf("Degree() = %d, want 2", got)
	}
}

// TestDiffLiteral checks diff([3,2,1]) -> [6,2], the derivative of
// 3x^2+2x+1.
func TestDiffLiteral(t *testing.T) {
	p := New(elems(3, 2, 1))
	d := p.Diff()
	if !equalInt64(vals(d), []int64{6, 2}) {
		t.Fatalf("Diff() = %v, want [6 2]", vals(d))
	}
}

func TestDiffDegreeDropsByOne(t *testing.T) {
	// a*x^k for several k: diff should have degree k-1.
	for k := 1; k <= 5; k++ {
		coef := make([]field.Element, k+1)
		for i := range coef {
			coef[i] = field.NewFromInt64(0)
		}
		coef[0] = field.NewFromInt64(7) // degree k term
		p := New(coef)
		d := p.Diff()
		if got := d.Degree(); got != k-1 {
			t.Errorf("k=%d: diff degree = %d, want %d", k, got, k-1)
		}
	}
}

func TestAddSubIdentity(t *testing.T) {
	a := New(elems(1, 2, 3))
	b := New(elems(5, 6))
	sum := a.Add(b)
	back := sum.Sub(b)
	if !back.Equal(a) {
		t.Errorf("(a+b)-b = %v, want a = %v", vals(back), vals(a))
	}
}

func TestNegInvolution(t *testing.T) {
	a := New(elems(1, 2, 3, 4))
	if !a.Neg().Neg().Equal(a) {
		t.Error("-(-a) != a")
	}
}

func TestAddPreservesLongerOperandHighDegreeTerms(t *testing.T) {
	a := New(elems(9, 1, 2)) // padded to length 4: [0 9 1 2]
	b := New(elems(1, 1))    // length 2
	sum := a.Add(b)
	if !equalInt64(vals(sum), []int64{0, 9, 2, 3}) {
		t.Fatalf("sum = %v, want [0 9 2 3]", vals(sum))
	}
}

func TestMaxReturnsLargestResidue(t *testing.T) {
	p := New(elems(1, 9, 3))
	got := p.Max().Value()
	if got.Cmp(big.NewInt(9)) != 0 {
		t.Errorf("Max() = %s, want 9", got)
	}
}

func TestSetCoef(t *testing.T) {
	p := New(elems(1, 1))
	p.SetCoef(0, field.NewFromInt64(42))
	if p.At(0).Value().Int64() != 42 {
		t.Errorf("At(0) = %s, want 42", p.At(0))
	}
}
