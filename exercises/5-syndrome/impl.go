package syndrome

import (
	"github.com/jalphad/qrscan/exercises/3-gfpn"
)

// CalculateSyndromes computes the syndrome values for a received codeword
// This is the first step in Reed-Solomon decoding
//
// Parameters:
//   - field: The finite field GF(p^n) over which the code is defined
//   - received: The received codeword as a slice of bytes (each byte represents a field element index)
//   - numECSymbols: The number of error correction symbols (t in a t-error correcting code means 2t EC symbols)
//   - generatorRoot: The root used to generate the Reed-Solomon code (typically α, the primitive element)
//
// Returns:
//   - A slice of syndrome values [S_0, S_1, ..., S_{2t-1}]
//   - If all syndromes are zero, the codeword has no detectable errors
//
// Mathematical background:
//
//	For a received polynomial r(x) = c(x) + e(x) where c(x) is the codeword and e(x) is the error,
//	the syndrome S_i = r(α^i) for i = 0, 1, ..., 2t-1
//	If there are no errors, e(x) = 0, and all syndromes will be zero.
func CalculateSyndromes(
	field gfpn.Field,
	received []byte,
	numECSymbols int,
	generatorRoot gfpn.Element,
) []gfpn.Element {
	syndromes := make([]gfpn.Element, numECSymbols)
	for i := 0; i < numECSymbols; i++ {
		root := field.One()
		for k := 0; k < i; k++ {
			root = field.Mul(root, generatorRoot)
		}
		// Horner's method: r(root) over the received symbols, highest degree first.
		acc := field.Zero()
		for _, b := range received {
			acc = field.Add(field.Mul(acc, root), field.Element(int(b)))
		}
		syndromes[i] = acc
	}
	return syndromes
}

// HasErrors checks if any syndromes are non-zero
// Returns true if errors are detected, false otherwise
func HasErrors(syndromes []gfpn.Element) bool {
	for _, s := range syndromes {
		if !s.IsZero() {
			return true
		}
	}
	return false
}
