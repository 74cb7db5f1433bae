package qrcode

import (
	"errors"
	"testing"

	"github.com/jalphad/qrscan/internal/qrerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentifier_RequiresResize(t *testing.T) {
	id := NewIdentifier()

	_, err := id.Identify(make([]byte, 16))
	require.Error(t, err)
	assert.True(t, errors.Is(err, qrerr.ErrInvalidGridSize))
}

func TestIdentifier_RejectsMismatchedBuffer(t *testing.T) {
	id := NewIdentifier()
	id.Resize(10, 10)

	_, err := id.Identify(make([]byte, 50))
	require.Error(t, err)
}

func TestIdentifier_NoSymbolFound(t *testing.T) {
	id := NewIdentifier()
	id.Resize(40, 40)

	gray := make([]byte, 40*40)
	for i := range gray {
		gray[i] = 220
	}

	codes, err := id.Identify(gray)
	require.NoError(t, err)
	assert.Empty(t, codes)
}

func TestIdentifier_EmptyFrameYieldsZeroCodes(t *testing.T) {
	id := NewIdentifier()
	id.Resize(1, 1)

	codes, err := id.Identify([]byte{0})
	require.NoError(t, err)
	assert.Empty(t, codes)
}
