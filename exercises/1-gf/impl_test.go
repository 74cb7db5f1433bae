package gf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldArithmetic(t *testing.T) {
	field := NewField(7)

	a := field.Element(5)
	b := field.Element(4)

	assert.Equal(t, int16(2), field.Add(a, b).Value())
	assert.Equal(t, int16(1), field.Sub(a, b).Value())
	assert.Equal(t, int16(6), field.Mul(a, b).Value())

	for _, e := range field.Elements() {
		if e.Value() == 0 {
			continue
		}
		inv := field.Div(field.Element(1), e)
		assert.Equal(t, int16(1), field.Mul(e, inv).Value(), "element %d has no correct inverse", e.Value())
	}
}

func TestFieldElementWraps(t *testing.T) {
	field := NewField(5)
	assert.Equal(t, int16(3), field.Element(-2).Value())
	assert.Equal(t, int16(0), field.Element(10).Value())
}
