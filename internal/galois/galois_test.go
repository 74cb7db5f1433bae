package galois

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGF256Inverses(t *testing.T) {
	for a := 1; a < 256; a++ {
		inv := GF256.Div(1, byte(a))
		assert.Equal(t, byte(1), GF256.Mul(byte(a), inv), "element %d has no correct inverse", a)
	}
}

func TestGF256MulByZero(t *testing.T) {
	assert.Equal(t, byte(0), GF256.Mul(0, 200))
	assert.Equal(t, byte(0), GF256.Mul(200, 0))
}

func TestGF16Order(t *testing.T) {
	assert.Equal(t, 15, GF16.P)
	for a := 1; a <= 15; a++ {
		inv := GF16.Div(1, byte(a))
		assert.Equal(t, byte(1), GF16.Mul(byte(a), inv))
	}
}

func TestPolyEvalZeroPoint(t *testing.T) {
	s := []byte{7, 3, 9}
	assert.Equal(t, byte(7), GF256.PolyEval(s, 0))
}

func TestPolyAddShift(t *testing.T) {
	dst := make([]byte, 4)
	src := []byte{1, 1}
	GF256.PolyAdd(dst, src, 1, 1)
	assert.Equal(t, []byte{0, 1, 1, 0}, dst)
}
