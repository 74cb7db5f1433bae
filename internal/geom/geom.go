// Package geom implements the linear-algebra primitives the identification
// pipeline uses to fit and sample a perspective grid over a QR symbol:
// line intersection and the forward/inverse projective transform.
package geom

// Point is an integer pixel coordinate.
type Point struct {
	X, Y int
}

// PointF is a floating-point coordinate, used for sub-pixel grid math.
type PointF struct {
	X, Y float64
}

// LineIntersect finds the intersection r of line p0-p1 and line q0-q1,
// reporting false if the lines are parallel.
func LineIntersect(p0, p1, q0, q1 Point) (r Point, ok bool) {
	a := -(float64(p1.Y) - float64(p0.Y))
	b := float64(p1.X) - float64(p0.X)

	c := -(float64(q1.Y) - float64(q0.Y))
	d := float64(q1.X) - float64(q0.X)

	e := a*float64(p1.X) + b*float64(p1.Y)
	f := c*float64(q1.X) + d*float64(q1.Y)

	det := a*d - b*c
	if det == 0 {
		return Point{}, false
	}

	rx := (d*e - b*f) / det
	ry := (-c*e + a*f) / det
	return Point{X: int(rx), Y: int(ry)}, true
}

// Perspective holds the 8 coefficients of a projective transform mapping a
// w-by-h grid of cell coordinates onto a quadrilateral in image space.
type Perspective struct {
	C [8]float64
}

// PerspectiveSetup derives the transform mapping grid corners (0,0),
// (w,0), (w,h), (0,h) onto rect[0..3] respectively.
func PerspectiveSetup(rect [4]Point, w, h float64) Perspective {
	x0, y0 := float64(rect[0].X), float64(rect[0].Y)
	x1, y1 := float64(rect[1].X), float64(rect[1].Y)
	x2, y2 := float64(rect[2].X), float64(rect[2].Y)
	x3, y3 := float64(rect[3].X), float64(rect[3].Y)

	wden := w * (x2*y3 - x3*y2 + (x3-x2)*y1 + x1*(y2-y3))
	hden := h * (x2*y3 + x1*(y2-y3) - x3*y2 + (x3-x2)*y1)

	var p Perspective
	p.C[0] = (x1*(x2*y3-x3*y2) + x0*(-x2*y3+x3*y2+(x2-x3)*y1) + x1*(x3-x2)*y0) / wden
	p.C[1] = -(x0*(x2*y3+x1*(y2-y3)-x2*y1) - x1*x3*y2 + x2*x3*y1 + (x1*x3-x2*x3)*y0) / hden
	p.C[2] = x0
	p.C[3] = (y0*(x1*(y3-y2)-x2*y3+x3*y2) + y1*(x2*y3-x3*y2) + x0*y1*(y2-y3)) / wden
	p.C[4] = (x0*(y1*y3-y2*y3) + x1*y2*y3 - x2*y1*y3 + y0*(x3*y2-x1*y2+(x2-x3)*y1)) / hden
	p.C[5] = y0
	p.C[6] = (x1*(y3-y2) + x0*(y2-y3) + (x2-x3)*y1 + (x3-x2)*y0) / wden
	p.C[7] = (-x2*y3 + x1*y3 + x3*y2 + x0*(y1-y2) - x3*y1 + (x2-x1)*y0) / hden
	return p
}

// Map applies the transform to grid coordinates (u,v), returning the
// nearest image pixel.
func (p Perspective) Map(u, v float64) Point {
	den := p.C[6]*u + p.C[7]*v + 1.0
	x := (p.C[0]*u + p.C[1]*v + p.C[2]) / den
	y := (p.C[3]*u + p.C[4]*v + p.C[5]) / den
	return Point{X: int(round(x)), Y: int(round(y))}
}

// Unmap applies the inverse transform, recovering grid coordinates (u,v)
// for an image pixel.
func (p Perspective) Unmap(pt Point) (u, v float64) {
	x, y := float64(pt.X), float64(pt.Y)
	c := p.C

	den := -c[0]*c[7]*y + c[1]*c[6]*y + (c[3]*c[7]-c[4]*c[6])*x + c[0]*c[4] - c[1]*c[3]
	u = -(c[1]*(y-c[5]) - c[2]*c[7]*y + (c[5]*c[7]-c[4])*x + c[2]*c[4]) / den
	v = (c[0]*(y-c[5]) - c[2]*c[6]*y + (c[5]*c[6]-c[3])*x + c[2]*c[3]) / den
	return u, v
}

func round(x float64) float64 {
	if x < 0 {
		return -round(-x)
	}
	return float64(int(x + 0.5))
}
