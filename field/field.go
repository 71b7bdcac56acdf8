// Package field adapts the Mersenne31 prime field using the Expander
// compiler's native engine
package field

import (
	"github.com/PolyhedraZK/ExpanderCompilerCollection/ecgo/field/m31"
	"github.com/consensys/gnark/constraint"
)

// Mersenne31 prime: 2^31 - 1
const Modulus uint32 = 1<<31 - 1

// Element represents a Mersenne31 field element in canonical form.
// The canonical value lives in limb 0 of the underlying constraint element.
type Element = constraint.Element

var engine = m31.Field{}

// NewElement creates a new field element, reducing v mod 2^31 - 1
func NewElement(v uint64) Element {
	return engine.FromInterface(v)
}

// FromUint32Unchecked creates a field element from a raw value the caller
// guarantees is already in [0, Modulus). No reduction is performed; an
// out-of-range value silently yields a non-canonical element.
func FromUint32Unchecked(v uint32) Element {
	return constraint.Element{uint64(v)}
}

// Zero returns the zero element
func Zero() Element {
	return constraint.Element{}
}

// One returns the one element
func One() Element {
	return constraint.Element{1}
}

// Add returns (a + b) mod 2^31 - 1
func Add(a, b Element) Element {
	return engine.Add(a, b)
}

// Sub returns (a - b) mod 2^31 - 1
func Sub(a, b Element) Element {
	return engine.Sub(a, b)
}

// Mul returns (a * b) mod 2^31 - 1
func Mul(a, b Element) Element {
	return engine.Mul(a, b)
}

// Uint32 returns the canonical value of e
func Uint32(e Element) uint32 {
	return uint32(e[0])
}

// Equal reports whether a and b represent the same field element
func Equal(a, b Element) bool {
	return a[0] == b[0]
}
