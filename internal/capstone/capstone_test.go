package capstone

import (
	"testing"

	"github.com/jalphad/qrscan/internal/region"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drawFinderPattern paints a classic 7-module finder pattern (black ring,
// white ring, black stone) at (ox,oy) using m pixels per module.
func drawFinderPattern(img []byte, w int, ox, oy, m int) {
	set := func(modX, modY int, dark bool) {
		v := byte(240)
		if dark {
			v = byte(10)
		}
		for dy := 0; dy < m; dy++ {
			for dx := 0; dx < m; dx++ {
				x := ox + modX*m + dx
				y := oy + modY*m + dy
				img[y*w+x] = v
			}
		}
	}
	for my := 0; my < 7; my++ {
		for mx := 0; mx < 7; mx++ {
			dark := mx == 0 || mx == 6 || my == 0 || my == 6 ||
				(mx >= 2 && mx <= 4 && my >= 2 && my <= 4)
			set(mx, my, dark)
		}
	}
}

func TestFinderScanRecordsCapstone(t *testing.T) {
	m := 4
	size := 7 * m
	w, h := size+20, size+20
	img := make([]byte, w*h)
	for i := range img {
		img[i] = 240
	}
	drawFinderPattern(img, w, 10, 10, m)

	s := region.NewScanner(w, h, img)
	d := NewDetector(s)
	for y := 0; y < h; y++ {
		d.FinderScan(y)
	}

	require.Len(t, d.Capstones, 1)
	cs := d.Capstones[0]
	assert.InDelta(t, 10+size/2, cs.Center.X, 3)
	assert.InDelta(t, 10+size/2, cs.Center.Y, 3)
}
