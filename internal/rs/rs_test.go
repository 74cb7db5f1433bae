package rs

import (
	"testing"

	"github.com/jalphad/qrscan/internal/galois"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBerlekampMasseyZeroSyndromesIsTrivial(t *testing.T) {
	s := make([]byte, 6)
	sigma := BerlekampMassey(galois.GF256, s)
	require.NotEmpty(t, sigma)
	assert.Equal(t, byte(1), sigma[0])
	for _, c := range sigma[1:] {
		assert.Equal(t, byte(0), c)
	}
}

// The all-zero block is a valid codeword for any Reed-Solomon code (RS is
// linear), so introducing one non-zero byte into it is exactly a
// single-symbol error that a code with enough parity must correct back to
// all-zero.
func TestCorrectBlockFixesSingleError(t *testing.T) {
	bs, dw := 8, 4 // npar = 4, corrects up to 2 errors
	data := make([]byte, bs)
	data[2] = 0x5A

	ok := CorrectBlock(galois.GF256, data, dw)
	require.True(t, ok)
	for i, b := range data {
		assert.Equal(t, byte(0), b, "byte %d not corrected", i)
	}
}

func TestCorrectBlockNoOpOnCleanBlock(t *testing.T) {
	bs, dw := 8, 4
	data := make([]byte, bs)

	ok := CorrectBlock(galois.GF256, data, dw)
	require.True(t, ok)
	for _, b := range data {
		assert.Equal(t, byte(0), b)
	}
}

func TestCorrectBlockFailsOnTooManyErrors(t *testing.T) {
	bs, dw := 8, 6 // npar = 2, corrects only 1 error
	data := make([]byte, bs)
	data[0] = 0x11
	data[1] = 0x22
	data[2] = 0x33

	ok := CorrectBlock(galois.GF256, data, dw)
	assert.False(t, ok)
}
