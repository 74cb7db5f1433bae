package arithpoly

import (
	"github.com/jalphad/qrscan/exercises/1-gf"
)

// Polynomial represents a polynomial with coefficients in GF(p)
// Coefficients are stored from lowest to highest degree
// e.g., [c0, c1, c2] represents c0 + c1*x + c2*x^2
type Polynomial []gf.Element

// PolyMul multiplies two polynomials over GF(p)
func PolyMul(field gf.Field, p1, p2 Polynomial) Polynomial {
	if isZeroPoly(p1) || isZeroPoly(p2) {
		return Polynomial{}
	}
	out := make(Polynomial, len(p1)+len(p2)-1)
	for i := range out {
		out[i] = field.Element(0)
	}
	for i, c1 := range p1 {
		if c1.Value() == 0 {
			continue
		}
		for j, c2 := range p2 {
			out[i+j] = field.Add(out[i+j], field.Mul(c1, c2))
		}
	}
	return trimPoly(out)
}

// PolyDiv performs polynomial long division
// Returns quotient and remainder such that dividend = divisor * quotient + remainder
// Panics if divisor is zero polynomial
// field parameter is the GF(p) field that the coefficients belong to
func PolyDiv(field gf.Field, dividend, divisor Polynomial) (quotient, remainder Polynomial) {
	if isZeroPoly(divisor) {
		panic("division by zero polynomial")
	}

	remainder = append(Polynomial{}, trimPoly(dividend)...)
	divisorDeg := degree(divisor)
	leadInv := field.Div(field.Element(1), divisor[divisorDeg])

	quotDeg := degree(remainder) - divisorDeg
	if quotDeg < 0 {
		return Polynomial{}, remainder
	}
	quotient = make(Polynomial, quotDeg+1)
	for i := range quotient {
		quotient[i] = field.Element(0)
	}

	for degree(remainder) >= divisorDeg {
		remDeg := degree(remainder)
		shift := remDeg - divisorDeg
		coeff := field.Mul(remainder[remDeg], leadInv)
		quotient[shift] = coeff
		for j := 0; j <= divisorDeg; j++ {
			remainder[shift+j] = field.Sub(remainder[shift+j], field.Mul(coeff, divisor[j]))
		}
		remainder = trimPoly(remainder)
		if len(remainder) == 0 {
			break
		}
	}
	remainder = trimPoly(remainder)
	if len(remainder) == 0 {
		remainder = Polynomial{}
	}
	return quotient, remainder
}

// degree returns the degree of the polynomial (-1 for zero polynomial)
func degree(p Polynomial) int {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i].Value() != 0 {
			return i
		}
	}
	return -1
}

// trimPoly removes leading zero coefficients
func trimPoly(p Polynomial) Polynomial {
	deg := degree(p)
	if deg < 0 {
		return Polynomial{}
	}
	return p[:deg+1]
}

// isZeroPoly checks if polynomial is zero
func isZeroPoly(p Polynomial) bool {
	for _, coeff := range p {
		if coeff.Value() != 0 {
			return false
		}
	}
	return true
}
