package correction

import (
	"testing"

	"github.com/jalphad/qrscan/internal/galois"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyCorrectionsFlipsFlaggedPositions(t *testing.T) {
	received := []byte{0x01, 0x02, 0x03, 0x04}
	positions := []int{1, 3}
	magnitudes := []byte{0x02, 0x04}

	corrected := ApplyCorrections(galois.GF256, received, positions, magnitudes)
	assert.Equal(t, []byte{0x01, 0x00, 0x03, 0x00}, corrected)
	// The input slice itself must be untouched.
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, received)
}

func TestApplyCorrectionsPanicsOnMismatchedLengths(t *testing.T) {
	assert.Panics(t, func() {
		ApplyCorrections(galois.GF256, []byte{0x01}, []int{0, 1}, []byte{0x01})
	})
}

func TestApplyCorrectionsPanicsOnOutOfBoundsPosition(t *testing.T) {
	assert.Panics(t, func() {
		ApplyCorrections(galois.GF256, []byte{0x01}, []int{5}, []byte{0x01})
	})
}

func TestVerifyCorrectionAllZeroIsValid(t *testing.T) {
	syndromes, ok := VerifyCorrection(galois.GF256, make([]byte, 8), 4)
	require.True(t, ok)
	for _, s := range syndromes {
		assert.Equal(t, byte(0), s)
	}
}

func TestVerifyCorrectionNonZeroIsInvalid(t *testing.T) {
	codeword := make([]byte, 8)
	codeword[2] = 0x5A

	_, ok := VerifyCorrection(galois.GF256, codeword, 4)
	assert.False(t, ok)
}

func TestExtractMessageParityAtEnd(t *testing.T) {
	codeword := []byte{1, 2, 3, 4, 5, 6, 7}
	msg := ExtractMessage(codeword, 3, false)
	assert.Equal(t, []byte{1, 2, 3}, msg)
}

func TestExtractMessageParityAtBeginning(t *testing.T) {
	codeword := []byte{1, 2, 3, 4, 5, 6, 7}
	msg := ExtractMessage(codeword, 3, true)
	assert.Equal(t, []byte{5, 6, 7}, msg)
}

func TestExtractMessagePanicsOnInvalidLength(t *testing.T) {
	assert.Panics(t, func() {
		ExtractMessage([]byte{1, 2, 3}, 4, false)
	})
}
