package correction

import (
	"fmt"

	"github.com/jalphad/qrscan/internal/galois"
)

// ApplyCorrections corrects errors in the received codeword
//
// Given the error positions and magnitudes computed by previous steps,
// this function applies corrections to produce the original codeword.
//
// For each error at position j_i with magnitude Y_i:
//
//	corrected[j_i] = received[j_i] - Y_i
//
// In fields of characteristic 2 (like GF(2^n)), subtraction equals addition,
// so this becomes: corrected[j_i] = received[j_i] + Y_i
//
// Parameters:
//   - field: The finite field GF(2^n) the codeword lives in (QR uses GF(256))
//   - received: The received codeword (possibly containing errors)
//   - errorPositions: Positions where errors occurred
//   - errorMagnitudes: Error values at each position
//
// Returns:
//   - The corrected codeword
func ApplyCorrections(
	field *galois.Field,
	received []byte,
	errorPositions []int,
	errorMagnitudes []byte,
) []byte {
	if len(errorPositions) != len(errorMagnitudes) {
		panic(fmt.Sprintf("position count (%d) must match magnitude count (%d)",
			len(errorPositions), len(errorMagnitudes)))
	}

	corrected := make([]byte, len(received))
	copy(corrected, received)

	for i, pos := range errorPositions {
		if pos < 0 || pos >= len(received) {
			panic(fmt.Sprintf("error position %d out of bounds [0, %d)", pos, len(received)))
		}

		// Subtract the error magnitude; in characteristic 2, subtraction is XOR.
		corrected[pos] = galois.Add(corrected[pos], errorMagnitudes[i])
	}

	return corrected
}

// VerifyCorrection verifies that a codeword is valid by computing its syndromes
//
// A valid codeword has all syndromes equal to zero. This function computes
// the syndromes and checks if they're all zero.
//
// Parameters:
//   - field: The finite field GF(2^n)
//   - codeword: The codeword to verify, highest-degree-first
//   - numSyndromes: Number of syndromes to compute (typically 2t for t-error correction)
//
// Returns:
//   - syndromes: The computed syndrome values
//   - isValid: true if all syndromes are zero (valid codeword)
func VerifyCorrection(
	field *galois.Field,
	codeword []byte,
	numSyndromes int,
) ([]byte, bool) {
	syndromes := make([]byte, numSyndromes)
	bs := len(codeword)
	isValid := true

	for i := 0; i < numSyndromes; i++ {
		var syndrome byte
		for j := 0; j < bs; j++ {
			c := codeword[bs-j-1]
			if c == 0 {
				continue
			}
			syndrome ^= field.Exp[(int(field.Log[c])+i*j)%field.P]
		}
		syndromes[i] = syndrome
		if syndrome != 0 {
			isValid = false
		}
	}

	return syndromes, isValid
}

// ExtractMessage extracts the message portion from a corrected codeword
//
// Reed-Solomon codes use systematic encoding where the message appears
// in a contiguous portion of the codeword. This function extracts it.
//
// For systematic encoding with parity at the beginning:
//
//	codeword = [parity_0, ..., parity_{2s-1}, msg_0, ..., msg_{k-1}]
//
// For systematic encoding with parity at the end (QR's convention):
//
//	codeword = [msg_0, ..., msg_{k-1}, parity_0, ..., parity_{2s-1}]
//
// Parameters:
//   - codeword: The corrected codeword
//   - messageLength: Length of the message (k)
//   - parityAtBeginning: true if parity symbols are at the start
//
// Returns:
//   - The extracted message
func ExtractMessage(
	codeword []byte,
	messageLength int,
	parityAtBeginning bool,
) []byte {
	if messageLength <= 0 || messageLength > len(codeword) {
		panic(fmt.Sprintf("invalid message length %d for codeword length %d",
			messageLength, len(codeword)))
	}

	message := make([]byte, messageLength)

	if parityAtBeginning {
		parityLength := len(codeword) - messageLength
		copy(message, codeword[parityLength:])
	} else {
		copy(message, codeword[:messageLength])
	}

	return message
}

// DecodeResult contains the result of Reed-Solomon decoding
type DecodeResult struct {
	Success           bool   // Whether decoding succeeded
	Message           []byte // The decoded message (if successful)
	NumErrors         int    // Number of errors corrected
	ErrorPositions    []int  // Positions of errors
	ErrorMagnitudes   []byte // Magnitudes of errors
	CorrectedCodeword []byte // The corrected codeword
	Syndromes         []byte // Final syndromes (should be all zero)
}
