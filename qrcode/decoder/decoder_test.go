package decoder

import (
	"testing"

	"github.com/jalphad/qrscan/internal/versiondb"
	"github.com/jalphad/qrscan/qrcode/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cleanQRData builds a version-1, level-L QRCodeData whose raw codewords
// are all zero. The all-zero block is a valid Reed-Solomon codeword for any
// linear code, so it decodes with zero corrected errors; its data portion
// is all-zero bits, which DecodePayload reads as mode 0 (no segments) and
// an empty message.
func cleanQRData() *types.QRCodeData {
	return &types.QRCodeData{
		Version:      1,
		ECLevel:      versiondb.ECCLevelL,
		DataMask:     0,
		RawCodewords: make([]byte, 26),
	}
}

func TestDecoder_NoErrors(t *testing.T) {
	dec, err := NewDecoder()
	require.NoError(t, err)

	result, err := dec.Decode(cleanQRData())
	require.NoError(t, err)
	assert.True(t, result.CorrectionSuccessful)
	assert.Equal(t, 0, result.NumErrorsCorrected)
	assert.Empty(t, result.ErrorPositions)
	assert.Equal(t, "", result.Message)
}

func TestDecoder_SingleError(t *testing.T) {
	dec, err := NewDecoder()
	require.NoError(t, err)

	qrData := cleanQRData()
	qrData.RawCodewords[5] = 0x5A

	result, err := dec.Decode(qrData)
	require.NoError(t, err)
	assert.True(t, result.CorrectionSuccessful)
	assert.Equal(t, 1, result.NumErrorsCorrected)
	assert.Equal(t, "", result.Message)
}

func TestDecoder_TooManyErrors(t *testing.T) {
	dec, err := NewDecoder()
	require.NoError(t, err)

	qrData := cleanQRData()
	// Level L on version 1 carries 7 parity bytes, correcting at most 3
	// symbol errors; planting 5 exceeds that capacity.
	qrData.RawCodewords[0] = 0x11
	qrData.RawCodewords[1] = 0x22
	qrData.RawCodewords[2] = 0x33
	qrData.RawCodewords[3] = 0x44
	qrData.RawCodewords[4] = 0x55

	_, err = dec.Decode(qrData)
	assert.Error(t, err)
}

func TestDecoder_Verbose(t *testing.T) {
	dec, err := NewDecoder()
	require.NoError(t, err)
	dec.SetVerbose(true)

	result, err := dec.Decode(cleanQRData())
	require.NoError(t, err)
	assert.Equal(t, "", result.Message)
}

func TestDataDecoder_ByteMode(t *testing.T) {
	dd := NewDataDecoder()

	// mode=0100, count=00000011, 'A','B','C', terminator=0000
	data := []byte{0x40, 0x34, 0x14, 0x24, 0x30}
	message, err := dd.Decode(data, 1)
	require.NoError(t, err)
	assert.Equal(t, "ABC", message)
}

func TestDataDecoder_EmptyMessage(t *testing.T) {
	dd := NewDataDecoder()

	data := []byte{0x00, 0x00}
	message, err := dd.Decode(data, 1)
	require.NoError(t, err)
	assert.Equal(t, "", message)
}

func TestErrorCorrector_GF256Field(t *testing.T) {
	ec, err := NewErrorCorrector()
	require.NoError(t, err)
	require.NotNil(t, ec)
	assert.Equal(t, 255, ec.field.P)
}
