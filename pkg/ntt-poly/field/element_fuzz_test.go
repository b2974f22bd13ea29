package field

import (
	"math/big"
	"testing"
)

func FuzzElementOperations(f *testing.F) {
	f.Add(uint64(0))
	f.Add(uint64(1))
	f.Add(uint64(42))
	f.Add(uint64(100))
	f.Add(uint64(1000))
	f.Add(uint64(10000))

	f.Fuzz(func(t *testing.T, value uint64) {
		elem := From(value)

		// Basic operations must never panic.
		_ = elem.Add(elem)
		_ = elem.Sub(elem)
		_ = elem.Mul(elem)
		_ = elem.Neg()

		if !elem.IsZero() {
			inv := elem.Invert()
			if prod := elem.Mul(inv); !prod.IsOne() {
				t.Errorf("%v * inverse(%v) = %v, want 1", elem, elem, prod)
			}
		}

		// Residue must always land in [0, modulus).
		if elem.Value().Sign() < 0 || elem.Value().Cmp(elem.Modulus()) >= 0 {
			t.Errorf("residue %v out of range for modulus %v", elem.Value(), elem.Modulus())
		}
	})
}

func FuzzModExp(f *testing.F) {
	f.Add(uint64(2), uint64(10))
	f.Add(uint64(3), uint64(0))

	p := big.NewInt(1000003)
	f.Fuzz(func(t *testing.T, base, exp uint64) {
		e := NewInModulus(new(big.Int).SetUint64(base), p)
		result := e.ModExp(new(big.Int).SetUint64(exp), p)
		if result.Value().Sign() < 0 || result.Value().Cmp(p) >= 0 {
			t.Errorf("ModExp result %v out of range", result.Value())
		}
	})
}
