package gfpoly

import (
	"testing"

	gfpn "github.com/jalphad/qrscan/exercises/3-gfpn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gf256Field(t *testing.T) gfpn.Field {
	t.Helper()
	field, err := gfpn.NewField(2, 8, []int{1, 0, 1, 1, 1, 0, 0, 0, 1})
	require.NoError(t, err)
	return field
}

func TestAddSubtractRoundTrip(t *testing.T) {
	field := gf256Field(t)

	p1 := NewPolynomial(field, []gfpn.Element{field.Element(3), field.Element(5)})
	p2 := NewPolynomial(field, []gfpn.Element{field.Element(1), field.Element(2), field.Element(9)})

	sum := Add(p1, p2)
	back := Subtract(sum, p2)

	assert.Equal(t, p1.Coefficients()[0].String(), back.Coefficients()[0].String())
}

func TestMultiplyDivideRoundTrip(t *testing.T) {
	field := gf256Field(t)

	p1 := NewPolynomial(field, []gfpn.Element{field.One(), field.Element(3)})
	p2 := NewPolynomial(field, []gfpn.Element{field.Element(2), field.One()})

	product := Multiply(p1, p2)
	quotient, remainder := Divide(product, p2)

	assert.True(t, remainder.IsZero())
	assert.Equal(t, p1.Degree(), quotient.Degree())
}

func TestFormalDerivativeOfConstantIsZero(t *testing.T) {
	field := gf256Field(t)
	p := NewPolynomial(field, []gfpn.Element{field.Element(4)})
	d := FormalDerivative(p)
	assert.True(t, d.IsZero())
}
