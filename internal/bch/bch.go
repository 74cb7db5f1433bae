// Package bch implements BCH(15,5) error correction for the QR format
// information word, over internal/galois's GF(16).
package bch

import (
	"github.com/jalphad/qrscan/internal/galois"
	"github.com/jalphad/qrscan/internal/qrerr"
	"github.com/jalphad/qrscan/internal/rs"
)

// formatMask is XORed into the raw 15-bit format word before and after
// transmission, chosen so the all-zero format pattern never has every
// module lit.
const formatMask = 0x5412

// nsyn is the number of BCH syndromes (twice the 3-symbol error-correcting
// capacity) checked for the 15-bit format word.
const nsyn = 6

// FormatSyndromes evaluates the received 15-bit word u at alpha^1..alpha^6
// over GF(16), returning the syndromes and whether any is non-zero.
func FormatSyndromes(u uint16) (s []byte, nonzero bool) {
	s = make([]byte, nsyn)
	for i := 0; i < nsyn; i++ {
		var acc byte
		for j := 0; j < 15; j++ {
			if u&(1<<uint(j)) != 0 {
				acc ^= galois.GF16.Exp[(i+1)*j%15]
			}
		}
		s[i] = acc
		if acc != 0 {
			nonzero = true
		}
	}
	return s, nonzero
}

// ApplyMask XORs the raw format bits with the fixed QR format mask.
func ApplyMask(raw uint16) uint16 {
	return raw ^ formatMask
}

// Correct repairs up to 3 bit errors in a masked 15-bit format word,
// returning qrerr.ErrFormatECC if it cannot be repaired.
func Correct(u uint16) (uint16, error) {
	s, nonzero := FormatSyndromes(u)
	if !nonzero {
		return u, nil
	}

	sigma := rs.BerlekampMassey(galois.GF16, s)

	for i := 0; i < 15; i++ {
		root := galois.GF16.Exp[(15-i)%15]
		if galois.GF16.PolyEval(sigma, root) == 0 {
			u ^= 1 << uint(i)
		}
	}

	if _, nonzero := FormatSyndromes(u); nonzero {
		return 0, qrerr.ErrFormatECC
	}
	return u, nil
}
