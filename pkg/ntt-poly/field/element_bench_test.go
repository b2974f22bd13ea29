package field

import (
	"math/big"
	"testing"
)

func BenchmarkAdd(b *testing.B) {
	m := DefaultModulus()
	x := From(123456789)
	y := From(987654321)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x = x.Add(y)
	}
	_ = m
}

func BenchmarkMul(b *testing.B) {
	x := From(123456789)
	y := From(987654321)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x = x.Mul(y)
	}
}

func BenchmarkModExp(b *testing.B) {
	p := DefaultModulus()
	base := From(7)
	exp := new(big.Int).Sub(p, big.NewInt(2))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = base.ModExp(exp, p)
	}
}

func BenchmarkInvert(b *testing.B) {
	x := From(123456789)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = x.Invert()
	}
}
