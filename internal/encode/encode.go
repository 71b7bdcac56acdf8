// Package encode maps byte strings into Mersenne31 field elements.
package encode

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"

	"github.com/anhelinakruk/poseidon2-m31/field"
)

// Domain separator for byte-to-field expansion
var expandDomainSep = []byte{
	0x70, 0x32, 0x6d, 0x33, 0x31, 0xae, 0x01, 0x00,
	0xff, 0x12, 0xfa, 0x21, 0x11, 0x00, 0xff, 0x01,
}

// Expand derives n field elements from data using SHAKE128. Eight squeezed
// bytes are reduced per element, so the modular bias is negligible.
func Expand(data []byte, n int) []field.Element {
	shake := sha3.NewShake128()
	shake.Write(expandDomainSep)
	shake.Write(data)

	buf := make([]byte, 8*n)
	shake.Read(buf)

	out := make([]field.Element, n)
	for i := 0; i < n; i++ {
		v := binary.BigEndian.Uint64(buf[8*i : 8*i+8])
		out[i] = field.FromUint32Unchecked(uint32(v % uint64(field.Modulus)))
	}
	return out
}
