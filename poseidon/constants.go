package poseidon

import "github.com/anhelinakruk/poseidon2-m31/field"

// Round constants imported verbatim from the reference circuit's parameter
// set. They are a compatibility contract: any other values produce a
// different, incompatible hash function.
var (
	externalRoundConstants [NumFullRounds][Width]field.Element
	internalRoundConstants [NumPartialRounds]field.Element

	// Diagonal of the internal linear layer: 2^(i+1) for position i.
	internalMatrixDiag [Width]field.Element
)

func init() {
	for r := 0; r < NumFullRounds; r++ {
		for i := 0; i < Width; i++ {
			externalRoundConstants[r][i] = field.FromUint32Unchecked(1234)
		}
	}
	for r := 0; r < NumPartialRounds; r++ {
		internalRoundConstants[r] = field.FromUint32Unchecked(1234)
	}
	for i := 0; i < Width; i++ {
		internalMatrixDiag[i] = field.FromUint32Unchecked(1 << (i + 1))
	}
}

// ExternalRoundConstant returns the constant added to state position pos in
// full round round.
func ExternalRoundConstant(round, pos int) field.Element {
	return externalRoundConstants[round][pos]
}

// InternalRoundConstant returns the constant added to state position 0 in
// partial round round.
func InternalRoundConstant(round int) field.Element {
	return internalRoundConstants[round]
}
