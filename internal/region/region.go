// Package region implements the image-level groundwork of the QR
// identification pipeline: Otsu thresholding and the span-based flood fill
// used to label and measure connected components ("regions") of an image.
package region

import (
	"github.com/jalphad/qrscan/internal/geom"
	"github.com/jalphad/qrscan/internal/qrerr"
)

// maxRegions bounds how many regions a single scan can allocate, matching
// the fixed-capacity region table of the pipeline this was grounded on.
const maxRegions = 65534

// floodFillMaxDepth caps the flood fill's recursion so a pathological image
// cannot blow the stack.
const floodFillMaxDepth = 4096

// Point is a pixel coordinate, the same type as geom.Point.
type Point = geom.Point

// Region is a connected component of same-valued pixels.
type Region struct {
	Seed     Point
	Count    int
	Capstone int // index into a capstone list, or -1
}

// Scanner holds a thresholded image and the regions discovered in it.
// Region codes 0 and 1 are reserved (background/foreground before
// labelling), so real regions start at index 2.
type Scanner struct {
	W, H    int
	Pixels  []uint16
	Regions []Region
}

// NewScanner builds a Scanner from an 8-bit grayscale image, applying an
// Otsu threshold so pixel values become 0 (background) or 1 (foreground).
func NewScanner(w, h int, gray []byte) *Scanner {
	threshold := otsu(w, h, gray)
	pixels := make([]uint16, w*h)
	for i, v := range gray {
		if int(v) < threshold {
			pixels[i] = 1
		}
	}
	s := &Scanner{W: w, H: h, Pixels: pixels}
	// Region codes 0 and 1 are reserved for background/foreground.
	s.Regions = append(s.Regions, Region{}, Region{})
	return s
}

// otsu computes the threshold that maximises inter-class variance of the
// image histogram.
func otsu(w, h int, gray []byte) int {
	numPixels := w * h
	var histogram [256]int

	for _, v := range gray {
		histogram[v]++
	}

	var sum int
	for i := 0; i < 256; i++ {
		sum += i * histogram[i]
	}

	var sumB, q1 int
	var max float64
	var threshold int
	for i := 0; i < 256; i++ {
		q1 += histogram[i]
		if q1 == 0 {
			continue
		}
		q2 := numPixels - q1
		if q2 == 0 {
			break
		}
		sumB += i * histogram[i]
		m1 := float64(sumB) / float64(q1)
		m2 := float64(sum-sumB) / float64(q2)
		diff := m1 - m2
		variance := diff * diff * float64(q1) * float64(q2)
		if variance >= max {
			threshold = i
			max = variance
		}
	}
	return threshold
}

// spanFunc is invoked once per filled horizontal span with the row and the
// inclusive [left,right] column range.
type spanFunc func(y, left, right int)

// floodFillSeed fills the connected region of value `from` reachable from
// (x,y) with value `to`, invoking fn for every span filled.
func (s *Scanner) floodFillSeed(x, y, from, to int, fn spanFunc, depth int) error {
	if depth >= floodFillMaxDepth {
		return qrerr.ErrFloodFillTooDeep
	}

	row := s.Pixels[y*s.W : y*s.W+s.W]
	left, right := x, x
	for left > 0 && int(row[left-1]) == from {
		left--
	}
	for right < s.W-1 && int(row[right+1]) == from {
		right++
	}
	for i := left; i <= right; i++ {
		row[i] = uint16(to)
	}
	if fn != nil {
		fn(y, left, right)
	}

	if y > 0 {
		above := s.Pixels[(y-1)*s.W : (y-1)*s.W+s.W]
		for i := left; i <= right; i++ {
			if int(above[i]) == from {
				if err := s.floodFillSeed(i, y-1, from, to, fn, depth+1); err != nil {
					return err
				}
			}
		}
	}
	if y < s.H-1 {
		below := s.Pixels[(y+1)*s.W : (y+1)*s.W+s.W]
		for i := left; i <= right; i++ {
			if int(below[i]) == from {
				if err := s.floodFillSeed(i, y+1, from, to, fn, depth+1); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// RegionCode returns the region code at (x,y), allocating and flood-filling
// a new region the first time a foreground pixel is visited. Returns -1 for
// out-of-bounds coordinates, background pixels, or once maxRegions is hit.
func (s *Scanner) RegionCode(x, y int) int {
	if x < 0 || y < 0 || x >= s.W || y >= s.H {
		return -1
	}
	pixel := int(s.Pixels[y*s.W+x])
	if pixel >= 2 {
		return pixel
	}
	if pixel == 0 {
		return -1
	}

	code := len(s.Regions)
	if code >= maxRegions {
		return -1
	}

	s.Regions = append(s.Regions, Region{Seed: Point{X: x, Y: y}, Capstone: -1})
	region := code
	_ = s.floodFillSeed(x, y, pixel, region, func(_, left, right int) {
		s.Regions[region].Count += right - left + 1
	}, 0)

	return region
}

// FloodFillSeed exposes floodFillSeed for callers outside this package that
// need to trace arbitrary regions (e.g. alignment pattern search).
func (s *Scanner) FloodFillSeed(x, y, from, to int, fn func(y, left, right int)) error {
	return s.floodFillSeed(x, y, from, to, fn, 0)
}
