package bch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatSyndromesZeroIsClean(t *testing.T) {
	_, nonzero := FormatSyndromes(0)
	assert.False(t, nonzero)
}

func TestCorrectFixesUpToThreeBitErrors(t *testing.T) {
	u := uint16(0) ^ (1 << 2) ^ (1 << 9) ^ (1 << 13)
	got, err := Correct(u)
	require.NoError(t, err)
	assert.Equal(t, uint16(0), got)
}

func TestCorrectFailsOnTooManyBitErrors(t *testing.T) {
	u := uint16(0)
	for i := 0; i < 7; i++ {
		u ^= 1 << uint(i)
	}
	_, err := Correct(u)
	assert.Error(t, err)
}

func TestApplyMaskIsInvolution(t *testing.T) {
	var raw uint16 = 0x1234 & 0x7FFF
	assert.Equal(t, raw, ApplyMask(ApplyMask(raw)))
}
