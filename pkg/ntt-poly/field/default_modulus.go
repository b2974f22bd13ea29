package field

import "math/big"

// defaultModulusHex is the secp256k1 base field prime 2^256 - 2^32 - 977, a
// concrete, well-known 256-bit prime. It has no special relationship to any
// NTT transform length; it exists purely to give a freshly constructed
// Element somewhere to live before a plan (pkg/ntt-poly/modulus) rebinds it.
const defaultModulusHex = "fffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f"

// defaultModulus is process-wide immutable state: initialized once at
// package load and never mutated afterward. Every Element constructed by
// From, NewFromInt64, or NewFromBigInt is reduced modulo this value unless
// the caller later calls SetModulus.
var defaultModulus = mustParseHex(defaultModulusHex)

func mustParseHex(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("field: invalid default modulus literal")
	}
	return v
}

// DefaultModulus returns the process-wide default modulus. The returned
// value must not be mutated by callers.
func DefaultModulus() *big.Int {
	return defaultModulus
}
