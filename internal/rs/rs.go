// Package rs implements the Reed-Solomon core used to correct QR codeword
// blocks: syndrome computation, Berlekamp-Massey error-locator derivation,
// the error evaluator, and the exp/log error-magnitude formula, all over
// internal/galois's tabulated GF(256).
package rs

import "github.com/jalphad/qrscan/internal/galois"

// BlockSyndromes evaluates a received block (highest-degree-first, i.e.
// data[0] is the first byte transmitted) at alpha^0..alpha^(npar-1) and
// reports whether any syndrome is non-zero.
func BlockSyndromes(field *galois.Field, data []byte, npar int) (s []byte, nonzero bool) {
	s = make([]byte, npar)
	bs := len(data)
	for i := 0; i < npar; i++ {
		var acc byte
		for j := 0; j < bs; j++ {
			c := data[bs-j-1]
			if c == 0 {
				continue
			}
			acc ^= field.Exp[(int(field.Log[c])+i*j)%field.P]
		}
		s[i] = acc
		if acc != 0 {
			nonzero = true
		}
	}
	return s, nonzero
}

// BerlekampMassey derives the error-locator polynomial sigma (ascending
// power order) from a syndrome sequence, over the given field.
func BerlekampMassey(field *galois.Field, s []byte) []byte {
	n := len(s)
	size := n + 1
	if size < 2 {
		size = 2
	}

	c := make([]byte, size)
	b := make([]byte, size)
	c[0] = 1
	b[0] = 1

	l := 0
	m := 1
	var bCoeff byte = 1

	for i := 0; i < n; i++ {
		d := s[i]
		for j := 1; j <= l; j++ {
			if c[j] != 0 && s[i-j] != 0 {
				d ^= field.Exp[(int(field.Log[c[j]])+int(field.Log[s[i-j]]))%field.P]
			}
		}

		mult := field.Exp[((field.P-int(field.Log[bCoeff]))+int(field.Log[d]))%field.P]

		switch {
		case d == 0:
			m++
		case 2*l <= i:
			t := make([]byte, size)
			copy(t, c)
			field.PolyAdd(c, b, mult, m)
			copy(b, t)
			l = i + 1 - l
			bCoeff = d
			m = 1
		default:
			field.PolyAdd(c, b, mult, m)
			m++
		}
	}

	return c
}

// ElocPoly computes the error evaluator polynomial omega from the syndromes
// and the error locator sigma, truncated to npar terms.
func ElocPoly(field *galois.Field, s, sigma []byte, npar int) []byte {
	omega := make([]byte, npar+1)
	for i := 0; i < npar && i < len(sigma); i++ {
		a := sigma[i]
		if a == 0 {
			continue
		}
		logA := int(field.Log[a])
		for j := 0; j+1 < len(s); j++ {
			if i+j >= npar {
				break
			}
			b := s[j+1]
			if b == 0 {
				continue
			}
			omega[i+j] ^= field.Exp[(logA+int(field.Log[b]))%field.P]
		}
	}
	return omega
}

// CorrectBlock repairs up to npar/2 symbol errors in data (highest-degree
// first, data[0] transmitted first) in place, where npar = bs - dw is the
// number of Reed-Solomon parity symbols in the block. Returns false if the
// block could not be corrected.
func CorrectBlock(field *galois.Field, data []byte, dw int) bool {
	bs := len(data)
	npar := bs - dw

	s, nonzero := BlockSyndromes(field, data, npar)
	if !nonzero {
		return true
	}

	sigma := BerlekampMassey(field, s)

	sigmaDeriv := make([]byte, len(sigma))
	for i := 0; i+1 < len(sigma); i += 2 {
		sigmaDeriv[i] = sigma[i+1]
	}

	omega := ElocPoly(field, s, sigma, npar-1)

	for i := 0; i < bs; i++ {
		xinv := field.Exp[(field.P-i)%field.P]
		if field.PolyEval(sigma, xinv) != 0 {
			continue
		}
		sdX := field.PolyEval(sigmaDeriv, xinv)
		omegaX := field.PolyEval(omega, xinv)
		errMag := field.Exp[((field.P-int(field.Log[sdX]))+int(field.Log[omegaX]))%field.P]
		data[bs-i-1] ^= errMag
	}

	_, nonzero = BlockSyndromes(field, data, npar)
	return !nonzero
}
