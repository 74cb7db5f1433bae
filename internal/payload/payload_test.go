package payload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskBitPattern0(t *testing.T) {
	assert.True(t, MaskBit(0, 0, 0))
	assert.True(t, MaskBit(0, 1, 1))
	assert.False(t, MaskBit(0, 0, 1))
}

func TestReservedCellTopLeftFinder(t *testing.T) {
	assert.True(t, ReservedCell(1, 0, 0))
	assert.True(t, ReservedCell(1, 8, 8))
}

func TestReservedCellDataArea(t *testing.T) {
	assert.False(t, ReservedCell(1, 12, 12))
}

func TestPackBitsRoundTrip(t *testing.T) {
	bits := []bool{true, false, true, true, false, false, false, false, true}
	packed := packBits(bits)
	require.Len(t, packed, 2)
	unpacked := unpackBits(packed)[:len(bits)]
	assert.Equal(t, bits, unpacked)
}

// Bitstream for a single byte-mode segment of length 3 encoding "ABC" in a
// version-1 symbol, followed by a terminator nibble.
func TestDecodePayloadByteMode(t *testing.T) {
	data := []byte{0x40, 0x34, 0x14, 0x24, 0x30}
	d := &Data{Version: 1}

	err := DecodePayload(d, data)
	require.NoError(t, err)
	assert.Equal(t, []byte("ABC"), d.Payload)
	assert.Equal(t, modeByte, d.DataType)
}
