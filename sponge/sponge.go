// Package sponge hashes sequences of Mersenne31 field elements with the
// Poseidon2 permutation in a rate-8 sponge construction.
package sponge

import (
	"github.com/anhelinakruk/poseidon2-m31/field"
	"github.com/anhelinakruk/poseidon2-m31/internal/encode"
	"github.com/anhelinakruk/poseidon2-m31/poseidon"
)

const (
	// Rate is the number of elements absorbed per permutation call
	Rate = poseidon.Rate
	// Width is the full sponge state size
	Width = poseidon.Width
)

// Sponge absorbs field elements in blocks of Rate; each full block costs one
// permutation and the resulting state seeds the next block, so an input of
// length n costs ceil(max(n,1)/8) permutations.
//
// A Sponge is single-owner mutable state: calls on one instance must be
// sequenced, while independent instances are fully independent. Finalizing
// consumes the instance; absorbing afterwards is a programming error and
// panics.
type Sponge struct {
	state     [Width]field.Element
	cursor    int
	permuted  bool
	finalized bool
}

// New returns a sponge with an all-zero state.
func New() *Sponge {
	return &Sponge{}
}

// Absorb adds element into the next free rate slot. Under chaining the slot
// holds the previous block's output, so absorption is additive rather than
// an overwrite.
func (s *Sponge) Absorb(element field.Element) {
	if s.finalized {
		panic("sponge: absorb after finalize")
	}
	s.state[s.cursor] = field.Add(s.state[s.cursor], element)
	s.cursor++
	if s.cursor == Rate {
		poseidon.Permute(&s.state)
		s.cursor = 0
		s.permuted = true
	}
}

// AbsorbMany absorbs elements one by one in sequence order.
func (s *Sponge) AbsorbMany(elements []field.Element) {
	for _, e := range elements {
		s.Absorb(e)
	}
}

// finalize runs the final permutation over the zero-padded pending block.
// The untouched rate slots already hold their padded value because zero is
// the additive identity. An empty input counts as one block of eight zeros.
func (s *Sponge) finalize() {
	if s.finalized {
		panic("sponge: already finalized")
	}
	if s.cursor > 0 || !s.permuted {
		poseidon.Permute(&s.state)
		s.cursor = 0
		s.permuted = true
	}
	s.finalized = true
}

// Finalize consumes the sponge and returns the hash, the first state
// element.
func (s *Sponge) Finalize() field.Element {
	s.finalize()
	return s.state[0]
}

// FinalizeRate consumes the sponge and returns the rate segment of the
// final state.
func (s *Sponge) FinalizeRate() [Rate]field.Element {
	s.finalize()
	var out [Rate]field.Element
	copy(out[:], s.state[:Rate])
	return out
}

// FinalizeFullState consumes the sponge and returns the full 16-element
// final state.
func (s *Sponge) FinalizeFullState() [Width]field.Element {
	s.finalize()
	return s.state
}

// Hash absorbs elements into a fresh sponge and finalizes it.
func Hash(elements []field.Element) field.Element {
	s := New()
	s.AbsorbMany(elements)
	return s.Finalize()
}

// HashBytes expands data into one rate block of field elements with
// SHAKE128 and hashes it.
func HashBytes(data []byte) field.Element {
	return Hash(encode.Expand(data, Rate))
}
