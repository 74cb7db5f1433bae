package chien

import (
	"github.com/jalphad/qrscan/exercises/3-gfpn"
	"github.com/jalphad/qrscan/exercises/4-gfpoly"
)

// ChienSearch finds the roots of the error locator polynomial L(x)
//
// The Chien search algorithm systematically evaluates L(x) at all possible
// error positions to find where L(α^{-j}) = 0. These positions indicate
// where errors occurred in the received codeword.
//
// Mathematical background:
//
//	If an error occurred at position j, then X_j = α^j is an error locator.
//	The error locator polynomial L(x) has roots at X_j^{-1} = α^{-j}.
//	Chien search finds all j where L(α^{-j}) = 0.
//
// Algorithm (direct evaluation):
//
//	For j = 0 to codewordLength-1:
//	    Compute α^{-j} = α^{(n-j) mod n}, where n = field order - 1
//	    If L(α^{-j}) = 0, then j is an error position
//
// Parameters:
//   - field: The finite field GF(p^n) over which the code is defined
//   - lambda: The error locator polynomial L(x)
//   - codewordLength: Length of the codeword (typically n = q-1)
//
// Returns:
//   - A slice of error positions [j_1, j_2, ..., j_ν]
func ChienSearch(field gfpn.Field, lambda gfpoly.Polynomial, codewordLength int) []int {
	var positions []int
	alpha := field.Primitive()
	n := field.Order() - 1

	for j := 0; j < codewordLength; j++ {
		// alphaInv = alpha^{-j} = alpha^{(n-j) mod n}
		exp := ((-j % n) + n) % n
		alphaInv := field.One()
		for k := 0; k < exp; k++ {
			alphaInv = field.Mul(alphaInv, alpha)
		}
		if lambda.Evaluate(alphaInv).IsZero() {
			positions = append(positions, j)
		}
	}
	return positions
}
