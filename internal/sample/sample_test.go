package sample

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeBitRoundTrip(t *testing.T) {
	c := &Code{Size: 3, CellBitmap: make([]byte, 2)}
	c.setBit(0)
	c.setBit(4)
	assert.True(t, c.Bit(0, 0))
	assert.True(t, c.Bit(1, 1))
	assert.False(t, c.Bit(2, 2))
}

func TestIdentifyOnBlankImageFindsNothing(t *testing.T) {
	w, h := 40, 40
	gray := make([]byte, w*h)
	for i := range gray {
		gray[i] = 200
	}
	p := Identify(w, h, gray)
	require.NotNil(t, p)
	assert.Empty(t, p.Assembler.Grids)
}
