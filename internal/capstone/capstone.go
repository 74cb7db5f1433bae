// Package capstone detects QR finder patterns ("capstones": a 1:1:3:1:1
// module ratio run length in a scanline, confirmed as a ring-around-stone
// region pair) in a thresholded image.
package capstone

import (
	"github.com/jalphad/qrscan/internal/geom"
	"github.com/jalphad/qrscan/internal/region"
)

// maxCapstones bounds how many capstones a single scan can record.
const maxCapstones = 32

// Capstone is a detected finder pattern: the four corners of its outer
// ring (canonically rotated once grouped into a grid), its centre, and the
// perspective transform mapping a 7x7 cell grid onto those corners.
type Capstone struct {
	Ring, Stone int
	Corners     [4]geom.Point
	Center      geom.Point
	C           geom.Perspective
	QRGrid      int
}

// Detector finds and records capstones within a region.Scanner.
type Detector struct {
	Scanner   *region.Scanner
	Capstones []Capstone
}

// NewDetector wraps a thresholded scanner for capstone detection.
func NewDetector(s *region.Scanner) *Detector {
	return &Detector{Scanner: s}
}

// polygonScoreData accumulates the extreme corner found while scanning
// spans of a region's flood fill, relative to a reference point/direction.
type polygonScoreData struct {
	ref     geom.Point
	scores  [4]int
	corners *[4]geom.Point
}

// findOneCorner keeps the corner farthest from ref.
func findOneCorner(psd *polygonScoreData, y, left, right int) {
	dy := y - psd.ref.Y
	for _, x := range [2]int{left, right} {
		dx := x - psd.ref.X
		d := dx*dx + dy*dy
		if d > psd.scores[0] {
			psd.scores[0] = d
			psd.corners[0] = geom.Point{X: x, Y: y}
		}
	}
}

// findOtherCorners keeps the four extremal corners along and across the
// ref direction.
func findOtherCorners(psd *polygonScoreData, y, left, right int) {
	for _, x := range [2]int{left, right} {
		up := x*psd.ref.X + y*psd.ref.Y
		rt := x*-psd.ref.Y + y*psd.ref.X
		scores := [4]int{up, rt, -up, -rt}
		for j := 0; j < 4; j++ {
			if scores[j] > psd.scores[j] {
				psd.scores[j] = scores[j]
				psd.corners[j] = geom.Point{X: x, Y: y}
			}
		}
	}
}

// FindRegionCorners locates the four corners of the region rcode, using
// point as an interior reference.
func (d *Detector) FindRegionCorners(rcode int, point geom.Point) [4]geom.Point {
	reg := d.Scanner.Regions[rcode]
	var corners [4]geom.Point

	psd := &polygonScoreData{ref: point, scores: [4]int{-1, 0, 0, 0}, corners: &corners}
	_ = d.Scanner.FloodFillSeed(reg.Seed.X, reg.Seed.Y, rcode, 1, func(y, left, right int) {
		findOneCorner(psd, y, left, right)
	})

	psd.ref = geom.Point{X: corners[0].X - point.X, Y: corners[0].Y - point.Y}
	for i := range corners {
		corners[i] = reg.Seed
	}
	i0 := reg.Seed.X*psd.ref.X + reg.Seed.Y*psd.ref.Y
	psd.scores[0], psd.scores[2] = i0, -i0
	i1 := reg.Seed.X*-psd.ref.Y + reg.Seed.Y*psd.ref.X
	psd.scores[1], psd.scores[3] = i1, -i1

	_ = d.Scanner.FloodFillSeed(reg.Seed.X, reg.Seed.Y, 1, rcode, func(y, left, right int) {
		findOtherCorners(psd, y, left, right)
	})

	return corners
}

// RecordCapstone registers a ring/stone region pair as a capstone,
// computing its corners, perspective transform, and centre.
func (d *Detector) RecordCapstone(ring, stone int) {
	if len(d.Capstones) >= maxCapstones {
		return
	}
	idx := len(d.Capstones)
	cap := Capstone{Ring: ring, Stone: stone, QRGrid: -1}
	d.Capstones = append(d.Capstones, cap)

	d.Scanner.Regions[stone].Capstone = idx
	d.Scanner.Regions[ring].Capstone = idx

	corners := d.FindRegionCorners(ring, d.Scanner.Regions[stone].Seed)
	d.Capstones[idx].Corners = corners
	d.Capstones[idx].C = geom.PerspectiveSetup(corners, 7.0, 7.0)
	d.Capstones[idx].Center = d.Capstones[idx].C.Map(3.5, 3.5)
}

// TestCapstone checks whether the five run-lengths pb (trailing window of
// the last five colour runs ending at x) describe a ring around a stone,
// recording a capstone if so.
func (d *Detector) TestCapstone(x, y int, pb [5]int) {
	ringRight := d.Scanner.RegionCode(x-pb[4], y)
	stone := d.Scanner.RegionCode(x-pb[4]-pb[3]-pb[2], y)
	ringLeft := d.Scanner.RegionCode(x-pb[4]-pb[3]-pb[2]-pb[1]-pb[0], y)
	if ringLeft < 0 || ringRight < 0 || stone < 0 {
		return
	}
	if ringLeft != ringRight {
		return
	}
	if ringLeft == stone {
		return
	}

	stoneReg := d.Scanner.Regions[stone]
	ringReg := d.Scanner.Regions[ringLeft]
	if stoneReg.Capstone >= 0 || ringReg.Capstone >= 0 {
		return
	}

	ratio := stoneReg.Count * 100 / ringReg.Count
	if ratio < 10 || ratio > 70 {
		return
	}

	d.RecordCapstone(ringLeft, stone)
}

// checkRatio is the expected 1:1:3:1:1 finder-pattern run-length ratio.
var checkRatio = [5]int{1, 1, 3, 1, 1}

// FinderScan scans row y of the image for 1:1:3:1:1 run-length sequences
// and tests each as a possible capstone.
func (d *Detector) FinderScan(y int) {
	row := d.Scanner.Pixels[y*d.Scanner.W : y*d.Scanner.W+d.Scanner.W]

	lastColor := 0
	runLength := 0
	runCount := 0
	var pb [5]int

	for x := 0; x < d.Scanner.W; x++ {
		color := 0
		if row[x] != 0 {
			color = 1
		}
		if x != 0 && color != lastColor {
			copy(pb[0:4], pb[1:5])
			pb[4] = runLength
			runLength = 0
			runCount++

			if color == 0 && runCount >= 5 {
				avg := (pb[0] + pb[1] + pb[3] + pb[4]) / 4
				errMargin := avg * 3 / 4
				ok := true
				for i := 0; i < 5; i++ {
					if pb[i] < checkRatio[i]*avg-errMargin || pb[i] > checkRatio[i]*avg+errMargin {
						ok = false
					}
				}
				if ok {
					d.TestCapstone(x, y, pb)
				}
			}
		}
		runLength++
		lastColor = color
	}
}
