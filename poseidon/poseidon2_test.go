package poseidon

import (
	"testing"

	"github.com/anhelinakruk/poseidon2-m31/field"
)

func stateFromUint32(vals [Width]uint32) [Width]field.Element {
	var state [Width]field.Element
	for i, v := range vals {
		state[i] = field.FromUint32Unchecked(v)
	}
	return state
}

func assertStateEqual(t *testing.T, got [Width]field.Element, want [Width]uint32) {
	t.Helper()
	for i := 0; i < Width; i++ {
		if field.Uint32(got[i]) != want[i] {
			t.Errorf("state[%d] = %d, want %d", i, field.Uint32(got[i]), want[i])
		}
	}
}

func TestPow5(t *testing.T) {
	cases := []struct {
		name string
		in   uint32
		want uint32
	}{
		{"small", 3, 243}, // 3^5 = 243
		// (2^30)^5 = 2^150 = 2^26 mod 2^31-1
		{"wrapping", 1 << 30, 1 << 26},
		{"zero", 0, 0},
		{"one", 1, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := pow5(field.FromUint32Unchecked(tc.in))
			if field.Uint32(got) != tc.want {
				t.Errorf("pow5(%d) = %d, want %d", tc.in, field.Uint32(got), tc.want)
			}
		})
	}
}

func TestApplyM4(t *testing.T) {
	x := []field.Element{
		field.FromUint32Unchecked(1),
		field.FromUint32Unchecked(2),
		field.FromUint32Unchecked(3),
		field.FromUint32Unchecked(4),
	}
	applyM4(x)

	want := []uint32{34, 23, 50, 39}
	for i := range want {
		if field.Uint32(x[i]) != want[i] {
			t.Errorf("x[%d] = %d, want %d", i, field.Uint32(x[i]), want[i])
		}
	}
}

// Reference output for the identity-ramp state 0..15.
func TestPermuteVector(t *testing.T) {
	var input [Width]uint32
	for i := range input {
		input[i] = uint32(i)
	}
	state := stateFromUint32(input)
	Permute(&state)

	assertStateEqual(t, state, [Width]uint32{
		462565134, 1755139106, 2142661998, 714337030,
		1788058480, 1572399575, 1629872005, 2003635509,
		1874965300, 1242605496, 1137299229, 1392452900,
		1114157883, 1502525848, 2018921451, 1004506017,
	})
}

// Reference output for the all-zero state, which is also the hash state of
// the empty input.
func TestPermuteZeroState(t *testing.T) {
	var state [Width]field.Element
	Permute(&state)

	assertStateEqual(t, state, [Width]uint32{
		2113849685, 1711307676, 589989179, 1232617315,
		1070351549, 771245723, 893398066, 1388329653,
		509718111, 266933152, 1997796573, 346531147,
		105181628, 704470932, 1836665970, 38086468,
	})
}

func TestPermuteDeterministic(t *testing.T) {
	var input [Width]uint32
	for i := range input {
		input[i] = uint32(i * 7919)
	}

	a := stateFromUint32(input)
	b := stateFromUint32(input)
	Permute(&a)
	Permute(&b)

	for i := 0; i < Width; i++ {
		if !field.Equal(a[i], b[i]) {
			t.Fatalf("position %d differs between identical permutations", i)
		}
	}
}

func TestPermuteNewLeavesInput(t *testing.T) {
	var input [Width]uint32
	for i := range input {
		input[i] = uint32(i)
	}
	state := stateFromUint32(input)

	out := PermuteNew(state)

	for i := 0; i < Width; i++ {
		if field.Uint32(state[i]) != input[i] {
			t.Errorf("input state[%d] mutated to %d", i, field.Uint32(state[i]))
		}
	}
	if field.Uint32(out[0]) != 462565134 {
		t.Errorf("out[0] = %d, want 462565134", field.Uint32(out[0]))
	}
}

func TestRoundConstantAccessors(t *testing.T) {
	if got := field.Uint32(ExternalRoundConstant(0, 0)); got != 1234 {
		t.Errorf("ExternalRoundConstant(0, 0) = %d, want 1234", got)
	}
	if got := field.Uint32(ExternalRoundConstant(NumFullRounds-1, Width-1)); got != 1234 {
		t.Errorf("ExternalRoundConstant(7, 15) = %d, want 1234", got)
	}
	if got := field.Uint32(InternalRoundConstant(NumPartialRounds - 1)); got != 1234 {
		t.Errorf("InternalRoundConstant(13) = %d, want 1234", got)
	}
}
