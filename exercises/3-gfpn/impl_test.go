package gfpn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGF256Arithmetic(t *testing.T) {
	// x^8 + x^4 + x^3 + x^2 + 1, the QR code field.
	field, err := NewField(2, 8, []int{1, 0, 1, 1, 1, 0, 0, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, 256, field.Order())

	zero := field.Zero()
	one := field.One()
	assert.True(t, zero.IsZero())
	assert.False(t, one.IsZero())

	// Characteristic 2: a + a = 0.
	sum := field.Add(one, one)
	assert.True(t, sum.IsZero())

	a := field.Element(5)
	inv := field.Div(field.One(), a)
	product := field.Mul(a, inv)
	assert.False(t, product.IsZero())
	assert.Equal(t, field.One().(*element).power, product.(*element).power)
}

func TestGF16Arithmetic(t *testing.T) {
	// x^4 + x + 1, the BCH field used for QR format information.
	field, err := NewField(2, 4, []int{1, 1, 0, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, 16, field.Order())

	a := field.Element(3)
	b := field.Element(7)
	sum := field.Add(a, b)
	diff := field.Sub(sum, b)
	assert.Equal(t, a.(*element).coeffs[0].Value(), diff.(*element).coeffs[0].Value())
}
