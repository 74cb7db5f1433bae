// Package grid assembles three grouped capstones into a QR symbol grid:
// finding the alignment pattern, measuring the timing pattern to pick a
// version, and fitting (then jiggling) the perspective transform used to
// sample cells.
package grid

import (
	"math"

	"github.com/jalphad/qrscan/internal/capstone"
	"github.com/jalphad/qrscan/internal/geom"
	"github.com/jalphad/qrscan/internal/region"
	"github.com/jalphad/qrscan/internal/versiondb"
)

// maxGrids bounds how many QR grids a single scan can assemble.
const maxGrids = 8

// Grid is an assembled QR symbol: three grouped capstones, an alignment
// point, and the perspective transform used to read its cells.
type Grid struct {
	Caps        [3]int // indices into the capstone.Detector's Capstones, in A,B,C order
	Align       geom.Point
	AlignRegion int
	GridSize    int
	C           geom.Perspective
	TPEP        [3]geom.Point
	HScan, VScan int
}

// Assembler groups capstones discovered by a capstone.Detector into grids.
type Assembler struct {
	Scanner  *region.Scanner
	Detector *capstone.Detector
	Grids    []Grid
}

// NewAssembler wraps a capstone detector for grid assembly.
func NewAssembler(s *region.Scanner, d *capstone.Detector) *Assembler {
	return &Assembler{Scanner: s, Detector: d}
}

type neighbour struct {
	index    int
	distance float64
}

// TestGrouping looks for two other capstones that sit roughly on the
// horizontal and vertical axes of capstone i (within 0.2 of the unmapped
// distance along the off-axis), and tries the best-scoring pair as a grid.
func (a *Assembler) TestGrouping(i int) {
	c1 := &a.Detector.Capstones[i]
	if c1.QRGrid >= 0 {
		return
	}

	var hlist, vlist []neighbour
	for j := range a.Detector.Capstones {
		if i == j || a.Detector.Capstones[j].QRGrid >= 0 {
			continue
		}
		c2 := a.Detector.Capstones[j]
		u, v := c1.C.Unmap(c2.Center)
		u = math.Abs(u - 3.5)
		v = math.Abs(v - 3.5)

		if u < 0.2*v {
			hlist = append(hlist, neighbour{index: j, distance: v})
		}
		if v < 0.2*u {
			vlist = append(vlist, neighbour{index: j, distance: u})
		}
	}

	if len(hlist) == 0 || len(vlist) == 0 {
		return
	}
	a.testNeighbours(i, hlist, vlist)
}

func (a *Assembler) testNeighbours(i int, hlist, vlist []neighbour) {
	bestScore := 0.0
	bestH, bestV := -1, -1

	for _, hn := range hlist {
		for _, vn := range vlist {
			score := math.Abs(1.0 - hn.distance/vn.distance)
			if score > 2.5 {
				continue
			}
			if bestH < 0 || score < bestScore {
				bestH, bestV, bestScore = hn.index, vn.index, score
			}
		}
	}

	if bestH < 0 || bestV < 0 {
		return
	}
	a.RecordQRGrid(bestH, i, bestV)
}

// rotateCapstone rotates cap's corners so corner 0 is leftmost relative to
// the reference line h0->h0+hd, and rebuilds its perspective transform.
func rotateCapstone(cap *capstone.Capstone, h0, hd geom.Point) {
	best := 0
	bestScore := 0
	for j := 0; j < 4; j++ {
		p := cap.Corners[j]
		score := (p.X-h0.X)*-hd.Y + (p.Y-h0.Y)*hd.X
		if j == 0 || score < bestScore {
			best, bestScore = j, score
		}
	}

	var rotated [4]geom.Point
	for j := 0; j < 4; j++ {
		rotated[j] = cap.Corners[(j+best)%4]
	}
	cap.Corners = rotated
	cap.C = geom.PerspectiveSetup(cap.Corners, 7.0, 7.0)
}

// RecordQRGrid groups capstones a (bottom-left), b (the corner capstone,
// top-left) and c (top-right) into a new grid, swapping a and c if needed so
// that A-B-C reads clockwise, then attempts to complete its setup.
func (a *Assembler) RecordQRGrid(capA, capB, capC int) {
	if len(a.Grids) >= maxGrids {
		return
	}

	caps := a.Detector.Capstones
	h0 := caps[capA].Center
	hd := geom.Point{X: caps[capC].Center.X - h0.X, Y: caps[capC].Center.Y - h0.Y}

	if (caps[capB].Center.X-h0.X)*-hd.Y+(caps[capB].Center.Y-h0.Y)*hd.X > 0 {
		capA, capC = capC, capA
		hd.X, hd.Y = -hd.X, -hd.Y
	}

	idx := len(a.Grids)
	g := Grid{Caps: [3]int{capA, capB, capC}, AlignRegion: -1}
	a.Grids = append(a.Grids, g)
	grid := &a.Grids[idx]

	for _, ci := range grid.Caps {
		rotateCapstone(&a.Detector.Capstones[ci], h0, hd)
		a.Detector.Capstones[ci].QRGrid = idx
	}

	if a.measureTimingPattern(idx) >= 0 {
		if align, ok := geom.LineIntersect(
			a.Detector.Capstones[capA].Corners[0], a.Detector.Capstones[capA].Corners[1],
			a.Detector.Capstones[capC].Corners[0], a.Detector.Capstones[capC].Corners[3],
		); ok {
			grid.Align = align

			if grid.GridSize > 21 {
				a.findAlignmentPattern(idx)
				if grid.AlignRegion >= 0 {
					grid.Align = a.refineAlignmentPoint(idx, hd)
				}
			}

			a.setupQRPerspective(idx)
			return
		}
	}

	// Couldn't complete setup; undo what we recorded.
	for _, ci := range grid.Caps {
		a.Detector.Capstones[ci].QRGrid = -1
	}
	a.Grids = a.Grids[:len(a.Grids)-1]
}

// timingScan does a Bresenham walk from p0 to p1, counting black/white
// transitions (runs of at least 2 background pixels count as a gap).
func (a *Assembler) timingScan(p0, p1 geom.Point) int {
	if p0.X < 0 || p0.Y < 0 || p0.X >= a.Scanner.W || p0.Y >= a.Scanner.H {
		return -1
	}
	if p1.X < 0 || p1.Y < 0 || p1.X >= a.Scanner.W || p1.Y >= a.Scanner.H {
		return -1
	}

	n := p1.X - p0.X
	d := p1.Y - p0.Y
	x, y := p0.X, p0.Y

	var domPtr, nondomPtr *int
	if abs(n) > abs(d) {
		n, d = d, n
		domPtr, nondomPtr = &x, &y
	} else {
		domPtr, nondomPtr = &y, &x
	}

	nondomStep := 1
	if n < 0 {
		n, nondomStep = -n, -1
	}
	domStep := 1
	if d < 0 {
		d, domStep = -d, -1
	}

	x, y = p0.X, p0.Y
	a0, runLength, count := 0, 0, 0
	for i := 0; i <= d; i++ {
		if y < 0 || y >= a.Scanner.H || x < 0 || x >= a.Scanner.W {
			break
		}
		pixel := a.Scanner.Pixels[y*a.Scanner.W+x]
		if pixel != 0 {
			if runLength >= 2 {
				count++
			}
			runLength = 0
		} else {
			runLength++
		}
		a0 += n
		*domPtr += domStep
		if a0 >= d {
			*nondomPtr += nondomStep
			a0 -= d
		}
	}
	return count
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

var timingUs = [3]float64{6.5, 6.5, 0.5}
var timingVs = [3]float64{0.5, 6.5, 6.5}

// measureTimingPattern scans the horizontal and vertical timing bands
// between capstones to estimate the symbol's version (and so grid size),
// without needing the global perspective set up yet.
func (a *Assembler) measureTimingPattern(idx int) int {
	grid := &a.Grids[idx]
	for i := 0; i < 3; i++ {
		cap := a.Detector.Capstones[grid.Caps[i]]
		grid.TPEP[i] = cap.C.Map(timingUs[i], timingVs[i])
	}

	grid.HScan = a.timingScan(grid.TPEP[1], grid.TPEP[2])
	grid.VScan = a.timingScan(grid.TPEP[1], grid.TPEP[0])

	scan := grid.HScan
	if grid.VScan > scan {
		scan = grid.VScan
	}
	if scan < 0 {
		return -1
	}

	size := scan*2 + 13
	ver := (size - 15) / 4
	grid.GridSize = ver*4 + 17
	return 0
}

var alignDX = [4]int{1, 0, -1, 0}
var alignDY = [4]int{0, -1, 0, 1}

// findAlignmentPattern spirals outward from an estimated location (based on
// extending the two outer capstones) looking for a region of roughly the
// expected alignment-pattern size.
func (a *Assembler) findAlignmentPattern(idx int) {
	grid := &a.Grids[idx]
	c0 := a.Detector.Capstones[grid.Caps[0]]
	c2 := a.Detector.Capstones[grid.Caps[2]]

	b := grid.Align
	u, v := c0.C.Unmap(b)
	pointA := c0.C.Map(u, v+1.0)
	u, v = c2.C.Unmap(b)
	pointC := c2.C.Map(u+1.0, v)

	sizeEstimate := abs((pointA.X-b.X)*-(pointC.Y-b.Y) + (pointA.Y-b.Y)*(pointC.X-b.X))

	stepSize := 1
	dir := 0
	for stepSize*stepSize < sizeEstimate*100 {
		for i := 0; i < stepSize; i++ {
			code := a.Scanner.RegionCode(b.X, b.Y)
			if code >= 0 {
				reg := a.Scanner.Regions[code]
				if reg.Count >= sizeEstimate/2 && reg.Count <= sizeEstimate*2 {
					grid.AlignRegion = code
					return
				}
			}
			b.X += alignDX[dir]
			b.Y += alignDY[dir]
		}
		dir = (dir + 1) % 4
		if dir&1 == 0 {
			stepSize++
		}
	}
}

// refineAlignmentPoint finds the point of the alignment-pattern region
// closest to the grid's top-left, given the hypotenuse direction hd.
func (a *Assembler) refineAlignmentPoint(idx int, hd geom.Point) geom.Point {
	grid := &a.Grids[idx]
	reg := a.Scanner.Regions[grid.AlignRegion]
	seed := reg.Seed

	best := seed
	bestScore := -hd.Y*seed.X + hd.X*seed.Y

	// Mark the region as traversed (value 1) so the leftmost-to-line scan
	// below doesn't wander outside it, then scan it as foreground again.
	_ = a.Scanner.FloodFillSeed(seed.X, seed.Y, grid.AlignRegion, 1, nil)
	_ = a.Scanner.FloodFillSeed(seed.X, seed.Y, 1, grid.AlignRegion, func(y, left, right int) {
		for _, x := range [2]int{left, right} {
			d := -hd.Y*x + hd.X*y
			if d < bestScore {
				bestScore = d
				best = geom.Point{X: x, Y: y}
			}
		}
	})

	return best
}

var fitnessOffsets = [3]float64{0.3, 0.5, 0.7}

func (g *Grid) fitnessCell(w, h int, pixels []uint16, x, y int) int {
	score := 0
	for v := 0; v < 3; v++ {
		for u := 0; u < 3; u++ {
			p := g.C.Map(float64(x)+fitnessOffsets[u], float64(y)+fitnessOffsets[v])
			if p.Y < 0 || p.Y >= h || p.X < 0 || p.X >= w {
				continue
			}
			if pixels[p.Y*w+p.X] != 0 {
				score++
			} else {
				score--
			}
		}
	}
	return score
}

func (g *Grid) fitnessRing(w, h int, pixels []uint16, cx, cy, radius int) int {
	score := 0
	for i := 0; i < radius*2; i++ {
		score += g.fitnessCell(w, h, pixels, cx-radius+i, cy-radius)
		score += g.fitnessCell(w, h, pixels, cx-radius, cy+radius-i)
		score += g.fitnessCell(w, h, pixels, cx+radius, cy-radius+i)
		score += g.fitnessCell(w, h, pixels, cx+radius-i, cy+radius)
	}
	return score
}

func (g *Grid) fitnessApat(w, h int, pixels []uint16, cx, cy int) int {
	return g.fitnessCell(w, h, pixels, cx, cy) -
		g.fitnessRing(w, h, pixels, cx, cy, 1) +
		g.fitnessRing(w, h, pixels, cx, cy, 2)
}

func (g *Grid) fitnessCapstone(w, h int, pixels []uint16, x, y int) int {
	x += 3
	y += 3
	return g.fitnessCell(w, h, pixels, x, y) +
		g.fitnessRing(w, h, pixels, x, y, 1) -
		g.fitnessRing(w, h, pixels, x, y, 2) +
		g.fitnessRing(w, h, pixels, x, y, 3)
}

// fitnessAll scores how well the grid's current perspective transform
// lines up with the timing pattern, capstones, and (for V2+) alignment
// patterns expected from the version its grid size implies.
func (a *Assembler) fitnessAll(idx int) int {
	g := &a.Grids[idx]
	w, h, pixels := a.Scanner.W, a.Scanner.H, a.Scanner.Pixels
	version := (g.GridSize - 17) / 4
	score := 0

	for i := 0; i < g.GridSize-14; i++ {
		expect := -1
		if i&1 != 0 {
			expect = 1
		}
		score += g.fitnessCell(w, h, pixels, i+7, 6) * expect
		score += g.fitnessCell(w, h, pixels, 6, i+7) * expect
	}

	score += g.fitnessCapstone(w, h, pixels, 0, 0)
	score += g.fitnessCapstone(w, h, pixels, g.GridSize-7, 0)
	score += g.fitnessCapstone(w, h, pixels, 0, g.GridSize-7)

	if version < versiondb.MinVersion || version > versiondb.MaxVersion {
		return score
	}

	info := versiondb.Table[version]
	apCount := 0
	for apCount < 7 && info.Apat[apCount] != 0 {
		apCount++
	}
	for i := 1; i < apCount-1; i++ {
		score += g.fitnessApat(w, h, pixels, 6, info.Apat[i])
		score += g.fitnessApat(w, h, pixels, info.Apat[i], 6)
	}
	for i := 1; i < apCount; i++ {
		for j := 1; j < apCount; j++ {
			score += g.fitnessApat(w, h, pixels, info.Apat[i], info.Apat[j])
		}
	}
	return score
}

// jigglePerspective hill-climbs the grid's perspective coefficients to
// maximise fitnessAll, in five shrinking passes.
func (a *Assembler) jigglePerspective(idx int) {
	g := &a.Grids[idx]
	best := a.fitnessAll(idx)

	var adjustments [8]float64
	for i := 0; i < 8; i++ {
		adjustments[i] = g.C.C[i] * 0.02
	}

	for pass := 0; pass < 5; pass++ {
		for i := 0; i < 16; i++ {
			j := i >> 1
			old := g.C.C[j]
			step := adjustments[j]
			if i&1 != 0 {
				g.C.C[j] = old + step
			} else {
				g.C.C[j] = old - step
			}
			if test := a.fitnessAll(idx); test > best {
				best = test
			} else {
				g.C.C[j] = old
			}
		}
		for i := 0; i < 8; i++ {
			adjustments[i] *= 0.5
		}
	}
}

// setupQRPerspective fits the grid's reading perspective from its three
// capstones' top-left corners and the alignment point, then jiggles it.
func (a *Assembler) setupQRPerspective(idx int) {
	g := &a.Grids[idx]
	caps := a.Detector.Capstones
	rect := [4]geom.Point{
		caps[g.Caps[1]].Corners[0],
		caps[g.Caps[2]].Corners[0],
		g.Align,
		caps[g.Caps[0]].Corners[0],
	}
	g.C = geom.PerspectiveSetup(rect, float64(g.GridSize-7), float64(g.GridSize-7))
	a.jigglePerspective(idx)
}
