// Package field provides arbitrary-precision modular arithmetic over a
// residue class ring ℤ/pℤ whose modulus p is chosen at runtime (by
// pkg/ntt-poly/modulus) rather than baked into the type. Every Element
// carries its own modulus; a binary operation on elements with different
// moduli rebases the right operand onto the left's modulus, silently unless
// DebugRebaseWarnings is set.
//
// Values are represented with math/big.Int, which is the idiomatic Go
// stand-in for a fixed-width-but-dynamically-sized integer of at least 256
// bits: see DESIGN.md for why no third-party big-integer library fits here
// better than the standard one.
package field

import (
	"errors"
	"fmt"
	"log"
	"math/big"
)

// ErrEvenModulus is returned by SetModulus when given an even modulus. The
// inversion and primality machinery built on top of Element assume an odd
// prime modulus.
var ErrEvenModulus = errors.New("field: modulus must be odd")

// ErrOverflow is returned when converting an Element to a narrower
// destination type would lose information.
var ErrOverflow = errors.New("field: residue exceeds destination range")

// DebugRebaseWarnings, when true, logs a line every time a binary operation
// silently rebases its right-hand operand to the left operand's modulus.
// Off by default; flip it on while chasing a bug where two operands were
// meant to share a plan's modulus but didn't.
var DebugRebaseWarnings = false

// Element is a residue class in ℤ/pℤ for some odd modulus p. It is a value
// type: every arithmetic method returns a new Element and never mutates the
// big.Int reachable from the receiver or its argument, so Elements may be
// freely copied and shared across goroutines.
type Element struct {
	value   *big.Int
	modulus *big.Int
}

// From constructs an Element from a uint64, reduced modulo the process-wide
// default modulus. Use SetModulus afterward to rebind it to a plan's prime.
func From(x uint64) Element {
	return NewInModulus(new(big.Int).SetUint64(x), defaultModulus)
}

// NewFromInt64 constructs an Element from a signed literal, reduced modulo
// the default modulus. Negative values map to p - |x|.
func NewFromInt64(x int64) Element {
	return NewInModulus(big.NewInt(x), defaultModulus)
}

// NewFromBigInt constructs an Element from an arbitrary big.Int, reduced
// modulo the default modulus.
func NewFromBigInt(x *big.Int) Element {
	return NewInModulus(x, defaultModulus)
}

// NewInModulus constructs an Element equal to x mod modulus. modulus is not
// validated here (that's SetModulus's job) so that plan construction, which
// knows its chosen prime is odd by inspection, can skip the check.
func NewInModulus(x, modulus *big.Int) Element {
	return Element{value: canonical(x, modulus), modulus: modulus}
}

// Zero returns the additive identity in the given modulus.
func Zero(modulus *big.Int) Element {
	return Element{value: big.NewInt(0), modulus: modulus}
}

// One returns the multiplicative identity in the given modulus.
func One(modulus *big.Int) Element {
	return Element{value: big.NewInt(1), modulus: modulus}
}

// canonical reduces x into [0, m).
func canonical(x, m *big.Int) *big.Int {
	v := new(big.Int).Mod(x, m)
	return v
}

// Modulus returns the modulus this element is bound to. The returned value
// must not be mutated.
func (e Element) Modulus() *big.Int {
	return e.modulus
}

// Value returns the canonical residue in [0, p).
func (e Element) Value() *big.Int {
	return new(big.Int).Set(e.value)
}

// ToBigInt is an alias of Value kept for call sites that read more naturally
// converting "to a big.Int" than "reading the value".
func (e Element) ToBigInt() *big.Int {
	return e.Value()
}

// ToUint64 converts the residue to a uint64, failing with ErrOverflow if it
// does not fit.
func (e Element) ToUint64() (uint64, error) {
	if !e.value.IsUint64() {
		return 0, fmt.Errorf("%w: %s", ErrOverflow, e.value.String())
	}
	return e.value.Uint64(), nil
}

func (e Element) String() string {
	return e.value.String()
}

// IsZero reports whether the residue is zero.
func (e Element) IsZero() bool {
	return e.value.Sign() == 0
}

// IsOne reports whether the residue is one.
func (e Element) IsOne() bool {
	return e.value.Cmp(bigOne) == 0
}

// IsEven is a bit-level predicate on the residue's lowest bit.
func (e Element) IsEven() bool {
	return e.value.Bit(0) == 0
}

var bigOne = big.NewInt(1)

// SetModulus rebases this element to modulus p: the returned Element has the
// same logical residue, recomputed mod p. Fails with ErrEvenModulus if p is
// even, since the fast paths built on top of Element (and the NTT engine
// that consumes them) assume an odd working prime.
func (e Element) SetModulus(p *big.Int) (Element, error) {
	if p.Bit(0) == 0 {
		return Element{}, ErrEvenModulus
	}
	return NewInModulus(e.value, p), nil
}

// Rem returns a new element whose residue is e's raw value reduced by p,
// keeping e's own modulus for any further arithmetic. This mirrors the
// original Rust BigInt::rem: a plain remainder operation independent of
// which modulus the element is "bound" to, for when x mod p is wanted for a
// p that is not (yet) the element's modulus.
func (e Element) Rem(p *big.Int) Element {
	return Element{value: canonical(e.value, p), modulus: e.modulus}
}

// rebase returns other's residue reinterpreted under e's modulus. If the two
// already share a modulus (by pointer identity or value), other is returned
// unchanged.
func (e Element) rebase(other Element) Element {
	if e.modulus == other.modulus || e.modulus.Cmp(other.modulus) == 0 {
		return other
	}
	if DebugRebaseWarnings {
		log.Printf("field: rebasing operand from modulus %s to %s", other.modulus, e.modulus)
	}
	return NewInModulus(other.value, e.modulus)
}

// Add performs field addition: (a + b) mod p, where p is the receiver's
// modulus. If other carries a different modulus it is rebased first.
func (e Element) Add(other Element) Element {
	other = e.rebase(other)
	sum := new(big.Int).Add(e.value, other.value)
	return Element{value: canonical(sum, e.modulus), modulus: e.modulus}
}

// Sub performs field subtraction: (a - b) mod p, adding p back on underflow.
func (e Element) Sub(other Element) Element {
	other = e.rebase(other)
	diff := new(big.Int).Sub(e.value, other.value)
	return Element{value: canonical(diff, e.modulus), modulus: e.modulus}
}

// Neg returns the additive inverse: (p - value) mod p.
func (e Element) Neg() Element {
	if e.IsZero() {
		return e
	}
	return Element{value: new(big.Int).Sub(e.modulus, e.value), modulus: e.modulus}
}

// Mul performs field multiplication: (a * b) mod p.
func (e Element) Mul(other Element) Element {
	other = e.rebase(other)
	prod := new(big.Int).Mul(e.value, other.value)
	return Element{value: canonical(prod, e.modulus), modulus: e.modulus}
}

// Div is the integer quotient value/other, NOT field division: truncated
// integer division of the residues rather than multiplication by a modular
// inverse.
func (e Element) Div(other Element) Element {
	other = e.rebase(other)
	q := new(big.Int).Div(e.value, other.value)
	return Element{value: canonical(q, e.modulus), modulus: e.modulus}
}

// Square computes e*e mod p.
func (e Element) Square() Element {
	return e.Mul(e)
}

// Pow computes self^n mod p using the receiver's modulus, for a native
// exponent n. For a big.Int exponent against an arbitrary modulus use
// ModExp.
func (e Element) Pow(n uint64) Element {
	return e.ModExp(new(big.Int).SetUint64(n), e.modulus)
}

// ModExp computes self^exp mod p in O(log exp) multiplications via
// right-to-left square-and-multiply, reducing after every squaring and
// every multiply. The result is bound to p regardless of the receiver's own
// modulus. Delegated to big.Int.Exp, which implements exactly this
// algorithm; see DESIGN.md for why this is a deliberate stdlib reuse rather
// than a hand-rolled loop.
func (e Element) ModExp(exp, p *big.Int) Element {
	base := canonical(e.value, p)
	result := new(big.Int).Exp(base, exp, p)
	return Element{value: result, modulus: p}
}

// Invert computes the multiplicative inverse of e in its own modulus via the
// extended Euclidean algorithm (big.Int.ModInverse). The caller is
// responsible for e being coprime to the modulus (true whenever the modulus
// is prime and e is nonzero); on non-coprime input the result is the zero
// element rather than a panic, per this package's no-trap contract.
func (e Element) Invert() Element {
	inv := new(big.Int).ModInverse(e.value, e.modulus)
	if inv == nil {
		return Zero(e.modulus)
	}
	return Element{value: inv, modulus: e.modulus}
}

// Lsh returns e's residue left-shifted by k bits, reduced back into [0, p).
func (e Element) Lsh(k uint) Element {
	shifted := new(big.Int).Lsh(e.value, k)
	return Element{value: canonical(shifted, e.modulus), modulus: e.modulus}
}

// Rsh is a logical (unsigned) right shift; there is no sign bit to respect.
func (e Element) Rsh(k uint) Element {
	shifted := new(big.Int).Rsh(e.value, k)
	return Element{value: shifted, modulus: e.modulus}
}

// And is a bitwise AND of the two residues.
func (e Element) And(other Element) Element {
	other = e.rebase(other)
	return Element{value: new(big.Int).And(e.value, other.value), modulus: e.modulus}
}

// Or is a bitwise OR of the two residues.
func (e Element) Or(other Element) Element {
	other = e.rebase(other)
	return Element{value: new(big.Int).Or(e.value, other.value), modulus: e.modulus}
}

// Equal compares residues only; differing moduli do not make two elements
// with the same residue unequal.
func (e Element) Equal(other Element) bool {
	return e.value.Cmp(other.value) == 0
}

// Less, LessEq, GreaterEq, Greater form a total order on the canonical
// residue value. The inverse NTT butterfly relies on Less to decide whether
// to add p before subtracting, so these must operate on canonical
// (non-negative, already-reduced) residues — which Element always is.
func (e Element) Less(other Element) bool {
	other = e.rebase(other)
	return e.value.Cmp(other.value) < 0
}

func (e Element) LessEq(other Element) bool {
	other = e.rebase(other)
	return e.value.Cmp(other.value) <= 0
}

func (e Element) GreaterEq(other Element) bool {
	other = e.rebase(other)
	return e.value.Cmp(other.value) >= 0
}

func (e Element) Greater(other Element) bool {
	other = e.rebase(other)
	return e.value.Cmp(other.value) > 0
}
