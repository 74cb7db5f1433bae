package region

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidImage(w, h int, fg bool) []byte {
	img := make([]byte, w*h)
	v := byte(200)
	if fg {
		v = byte(20)
	}
	for i := range img {
		img[i] = v
	}
	return img
}

func TestRegionCodeLabelsConnectedBlock(t *testing.T) {
	w, h := 10, 10
	gray := solidImage(w, h, false)
	// Punch a dark square in the middle.
	for y := 3; y < 7; y++ {
		for x := 3; x < 7; x++ {
			gray[y*w+x] = 10
		}
	}
	s := NewScanner(w, h, gray)

	code := s.RegionCode(4, 4)
	require.GreaterOrEqual(t, code, 2)
	assert.Equal(t, 16, s.Regions[code].Count)

	// Revisiting any pixel in the same block returns the same code.
	assert.Equal(t, code, s.RegionCode(5, 5))
}

func TestRegionCodeOutOfBounds(t *testing.T) {
	s := NewScanner(4, 4, solidImage(4, 4, false))
	assert.Equal(t, -1, s.RegionCode(-1, 0))
	assert.Equal(t, -1, s.RegionCode(0, 100))
}

func TestRegionCodeBackgroundPixel(t *testing.T) {
	s := NewScanner(4, 4, solidImage(4, 4, false))
	assert.Equal(t, -1, s.RegionCode(0, 0))
}
