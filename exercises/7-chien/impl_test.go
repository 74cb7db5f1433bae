package chien

import (
	"testing"

	gfpn "github.com/jalphad/qrscan/exercises/3-gfpn"
	gfpoly "github.com/jalphad/qrscan/exercises/4-gfpoly"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChienSearchFindsKnownErrorPosition(t *testing.T) {
	field, err := gfpn.NewField(2, 8, []int{1, 0, 1, 1, 1, 0, 0, 0, 1})
	require.NoError(t, err)

	alpha := field.Primitive()
	xj := field.One()
	for k := 0; k < 3; k++ {
		xj = field.Mul(xj, alpha)
	}

	// Lambda(x) = 1 + X_j*x, root at x = X_j^-1 = alpha^-3, i.e. error at j=3.
	lambda := gfpoly.NewPolynomial(field, []gfpn.Element{field.One(), xj})

	positions := ChienSearch(field, lambda, 255)
	assert.Contains(t, positions, 3)
}
