package arithpoly

import (
	"testing"

	gf "github.com/jalphad/qrscan/exercises/1-gf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolyMul(t *testing.T) {
	field := gf.NewField(5)

	// (1 + x) * (1 + x) = 1 + 2x + x^2
	p1 := Polynomial{field.Element(1), field.Element(1)}
	p2 := Polynomial{field.Element(1), field.Element(1)}

	result := PolyMul(field, p1, p2)
	require.Len(t, result, 3)
	assert.Equal(t, int16(1), result[0].Value())
	assert.Equal(t, int16(2), result[1].Value())
	assert.Equal(t, int16(1), result[2].Value())
}

func TestPolyDiv(t *testing.T) {
	field := gf.NewField(5)

	// (1 + 2x + x^2) / (1 + x) = (1 + x) remainder 0
	dividend := Polynomial{field.Element(1), field.Element(2), field.Element(1)}
	divisor := Polynomial{field.Element(1), field.Element(1)}

	quotient, remainder := PolyDiv(field, dividend, divisor)
	assert.True(t, isZeroPoly(remainder))
	require.Len(t, quotient, 2)
	assert.Equal(t, int16(1), quotient[0].Value())
	assert.Equal(t, int16(1), quotient[1].Value())
}

func TestPolyDivPanicsOnZeroDivisor(t *testing.T) {
	field := gf.NewField(5)
	assert.Panics(t, func() {
		PolyDiv(field, Polynomial{field.Element(1)}, Polynomial{})
	})
}
