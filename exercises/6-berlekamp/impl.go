package berlekamp

import (
	"github.com/jalphad/qrscan/exercises/3-gfpn"
	"github.com/jalphad/qrscan/exercises/4-gfpoly"
)

// BerlekampMassey computes the error locator polynomial from a syndrome sequence
//
// This is the core algorithm in Reed-Solomon decoding. Given a sequence of syndromes,
// it finds the minimal polynomial Lambda(x) that satisfies the key RS equation (see README.md)
//
// Parameters:
//   - field: The finite field GF(p^n) over which the code is defined
//   - syndromes: The syndrome sequence [S_0, S_1, ..., S_{2t-1}]
//
// Returns:
//   - The error locator polynomial of minimal degree
//
// Algorithm: Berlekamp-Massey iterative algorithm
func BerlekampMassey(field gfpn.Field, syndromes []gfpn.Element) gfpoly.Polynomial {
	n := len(syndromes)

	c := gfpoly.NewPolynomial(field, []gfpn.Element{field.One()})
	b := gfpoly.NewPolynomial(field, []gfpn.Element{field.One()})
	l := 0
	m := 1
	bCoeff := field.One()

	for i := 0; i < n; i++ {
		// delta = S[i] + sum_{j=1}^{L} C_j * S[i-j]
		delta := syndromes[i]
		cCoeffs := c.Coefficients()
		for j := 1; j <= l && j < len(cCoeffs); j++ {
			delta = field.Add(delta, field.Mul(cCoeffs[j], syndromes[i-j]))
		}

		if delta.IsZero() {
			m++
			continue
		}

		scale := field.Div(delta, bCoeff)
		shifted := shiftPoly(field, b, m)
		scaled := gfpoly.ScalarMultiply(scale, shifted)
		t := c
		c = gfpoly.Subtract(c, scaled)

		if 2*l <= i {
			l = i + 1 - l
			b = t
			bCoeff = delta
			m = 1
		} else {
			m++
		}
	}

	return c
}

// shiftPoly multiplies a polynomial by x^m (prepends m zero coefficients).
func shiftPoly(field gfpn.Field, p gfpoly.Polynomial, m int) gfpoly.Polynomial {
	coeffs := p.Coefficients()
	shifted := make([]gfpn.Element, len(coeffs)+m)
	for i := range shifted {
		shifted[i] = field.Zero()
	}
	copy(shifted[m:], coeffs)
	return gfpoly.NewPolynomial(field, shifted)
}
