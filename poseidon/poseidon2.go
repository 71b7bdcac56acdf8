// Package poseidon implements the Poseidon2 permutation over the Mersenne31
// field with a 16-element state.
//
// The instantiation follows <https://eprint.iacr.org/2023/323.pdf> with
// 8 full rounds, 14 partial rounds and the x^5 S-box, and is bit-compatible
// with the reference circuit: within a round, constants are added first,
// then the linear layer is applied, then the S-box.
package poseidon

import "github.com/anhelinakruk/poseidon2-m31/field"

const (
	// Width is the permutation state size
	Width = 16
	// Rate is the number of state positions exposed for absorption
	Rate = 8
	// Capacity is the number of hidden state positions
	Capacity = Width - Rate

	// NumHalfFullRounds is the number of full rounds on each side of the
	// partial rounds
	NumHalfFullRounds = 4
	// NumFullRounds is the total number of full rounds
	NumFullRounds = 2 * NumHalfFullRounds
	// NumPartialRounds is the number of partial rounds
	NumPartialRounds = 14
)

// pow5 applies the x^5 S-box
func pow5(x field.Element) field.Element {
	x2 := field.Mul(x, x)
	x4 := field.Mul(x2, x2)
	return field.Mul(x4, x)
}

// applyM4 multiplies a 4-element block by the M4 matrix (section 5.1),
// with the multiplications unrolled into additions.
func applyM4(x []field.Element) {
	t0 := field.Add(x[0], x[1])
	t02 := field.Add(t0, t0)
	t1 := field.Add(x[2], x[3])
	t12 := field.Add(t1, t1)
	t2 := field.Add(field.Add(x[1], x[1]), t1)
	t3 := field.Add(field.Add(x[3], x[3]), t0)
	t4 := field.Add(field.Add(t12, t12), t3)
	t5 := field.Add(field.Add(t02, t02), t2)
	t6 := field.Add(t3, t5)
	t7 := field.Add(t2, t4)
	x[0], x[1], x[2], x[3] = t6, t5, t7, t4
}

// applyExternalMatrix applies circ(2*M4, M4, M4, M4) to the state: M4 on
// each block of four, then the sum over each congruence class mod 4 added
// back to every member of the class.
func applyExternalMatrix(state *[Width]field.Element) {
	for i := 0; i < Width; i += 4 {
		applyM4(state[i : i+4])
	}

	var sums [4]field.Element
	for j := 0; j < 4; j++ {
		sums[j] = field.Add(
			field.Add(state[j], state[j+4]),
			field.Add(state[j+8], state[j+12]),
		)
	}
	for i := 0; i < Width; i++ {
		state[i] = field.Add(state[i], sums[i%4])
	}
}

// applyInternalMatrix applies the partial-round diffusion layer: position i
// is scaled by 2^(i+1) and the pre-update state sum is added to every
// position.
func applyInternalMatrix(state *[Width]field.Element) {
	sum := state[0]
	for i := 1; i < Width; i++ {
		sum = field.Add(sum, state[i])
	}
	for i := 0; i < Width; i++ {
		state[i] = field.Add(field.Mul(state[i], internalMatrixDiag[i]), sum)
	}
}

func fullRound(state *[Width]field.Element, rc *[Width]field.Element) {
	for i := 0; i < Width; i++ {
		state[i] = field.Add(state[i], rc[i])
	}
	applyExternalMatrix(state)
	for i := 0; i < Width; i++ {
		state[i] = pow5(state[i])
	}
}

func partialRound(state *[Width]field.Element, rc field.Element) {
	state[0] = field.Add(state[0], rc)
	applyInternalMatrix(state)
	state[0] = pow5(state[0])
}

// Permute applies the Poseidon2 permutation to state in place. It is pure
// and deterministic; independent states may be permuted concurrently.
func Permute(state *[Width]field.Element) {
	for r := 0; r < NumHalfFullRounds; r++ {
		fullRound(state, &externalRoundConstants[r])
	}
	for r := 0; r < NumPartialRounds; r++ {
		partialRound(state, internalRoundConstants[r])
	}
	for r := 0; r < NumHalfFullRounds; r++ {
		fullRound(state, &externalRoundConstants[NumHalfFullRounds+r])
	}
}

// PermuteNew applies the Poseidon2 permutation to a copy of state and
// returns it, leaving the input unchanged.
func PermuteNew(state [Width]field.Element) [Width]field.Element {
	Permute(&state)
	return state
}
