package types

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRExtractor(t *testing.T) {
	extractor := NewQRExtractor()
	require.NotNil(t, extractor)
}

func TestQRExtractor_ExtractFromImage_NonExistentFile(t *testing.T) {
	extractor := NewQRExtractor()

	_, err := extractor.ExtractFromImage("nonexistent.png")
	assert.Error(t, err)
}

func TestQRExtractor_ExtractFromImage_InvalidImage(t *testing.T) {
	invalidFile := filepath.Join(t.TempDir(), "invalid.txt")
	err := os.WriteFile(invalidFile, []byte("this is not an image"), 0644)
	require.NoError(t, err)

	extractor := NewQRExtractor()
	_, err = extractor.ExtractFromImage(invalidFile)
	require.Error(t, err)
}

func TestQRExtractor_ExtractFromGray_NoSymbolFound(t *testing.T) {
	extractor := NewQRExtractor()

	w, h := 40, 40
	gray := make([]byte, w*h)
	for i := range gray {
		gray[i] = 220
	}

	qrData, err := extractor.ExtractFromGray(w, h, gray)
	require.NoError(t, err)
	assert.Nil(t, qrData)
}

func TestQRExtractor_ExtractFromGray_EmptyFrameYieldsNoError(t *testing.T) {
	extractor := NewQRExtractor()

	qrData, err := extractor.ExtractFromGray(1, 1, []byte{0})
	require.NoError(t, err)
	assert.Nil(t, qrData)
}
