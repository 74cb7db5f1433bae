// Package sample runs the end-to-end identification pipeline (thresholding,
// capstone detection, grid grouping) over an image and samples each
// assembled grid's cells into a packed bitmap.
package sample

import (
	"github.com/jalphad/qrscan/internal/capstone"
	"github.com/jalphad/qrscan/internal/geom"
	"github.com/jalphad/qrscan/internal/grid"
	"github.com/jalphad/qrscan/internal/region"
)

// Code is a sampled QR symbol: its four image-space corners, its module
// grid size, and a packed, row-major bit-per-cell bitmap (bit set = dark).
type Code struct {
	Corners    [4]geom.Point
	Size       int
	CellBitmap []byte
}

// Bit reports whether the cell at (x,y) is dark.
func (c *Code) Bit(x, y int) bool {
	p := y*c.Size + x
	return c.CellBitmap[p>>3]&(1<<uint(p&7)) != 0
}

func (c *Code) setBit(i int) {
	c.CellBitmap[i>>3] |= 1 << uint(i&7)
}

// Pipeline runs thresholding, finder scanning, and grid grouping over an
// image, exposing every grid found for extraction.
type Pipeline struct {
	Scanner   *region.Scanner
	Detector  *capstone.Detector
	Assembler *grid.Assembler
}

// Identify thresholds an 8-bit grayscale image and locates every QR grid
// within it.
func Identify(w, h int, gray []byte) *Pipeline {
	s := region.NewScanner(w, h, gray)
	d := capstone.NewDetector(s)
	a := grid.NewAssembler(s, d)

	for y := 0; y < h; y++ {
		d.FinderScan(y)
	}
	for i := range d.Capstones {
		a.TestGrouping(i)
	}

	return &Pipeline{Scanner: s, Detector: d, Assembler: a}
}

// readCell maps grid cell (x,y) through the perspective transform and
// reports +1/-1 for dark/light, or 0 if the mapped point falls outside the
// image.
func readCell(p *Pipeline, gridIndex, x, y int) int {
	g := p.Assembler.Grids[gridIndex]
	pt := g.C.Map(float64(x)+0.5, float64(y)+0.5)
	if pt.Y < 0 || pt.Y >= p.Scanner.H || pt.X < 0 || pt.X >= p.Scanner.W {
		return 0
	}
	if p.Scanner.Pixels[pt.Y*p.Scanner.W+pt.X] != 0 {
		return 1
	}
	return -1
}

// Extract samples the gridIndex'th assembled grid into a Code.
func (p *Pipeline) Extract(gridIndex int) *Code {
	g := p.Assembler.Grids[gridIndex]

	code := &Code{Size: g.GridSize}
	code.Corners[0] = g.C.Map(0, 0)
	code.Corners[1] = g.C.Map(float64(g.GridSize), 0)
	code.Corners[2] = g.C.Map(float64(g.GridSize), float64(g.GridSize))
	code.Corners[3] = g.C.Map(0, float64(g.GridSize))

	numCells := g.GridSize * g.GridSize
	code.CellBitmap = make([]byte, (numCells+7)/8)

	i := 0
	for y := 0; y < g.GridSize; y++ {
		for x := 0; x < g.GridSize; x++ {
			if readCell(p, gridIndex, x, y) > 0 {
				code.setBit(i)
			}
			i++
		}
	}
	return code
}
