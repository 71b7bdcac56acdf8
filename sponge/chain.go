package sponge

import (
	"github.com/anhelinakruk/poseidon2-m31/field"
	"github.com/anhelinakruk/poseidon2-m31/poseidon"
)

// HashMessages hashes a sequence of rate-sized messages with vertical
// chaining and returns one full 16-element output state per message.
//
// Message i's block starts from message i-1's output state (message 0 from
// the all-zero state): the message is added into the rate segment and the
// capacity segment carries over untouched, so every output depends on the
// whole message prefix. This matches running one sponge continuously across
// the concatenated messages and reading the full state after each block.
func HashMessages(messages [][Rate]field.Element) [][Width]field.Element {
	outputs := make([][Width]field.Element, 0, len(messages))

	var state [Width]field.Element
	for _, message := range messages {
		for i := 0; i < Rate; i++ {
			state[i] = field.Add(state[i], message[i])
		}
		poseidon.Permute(&state)
		outputs = append(outputs, state)
	}

	return outputs
}
