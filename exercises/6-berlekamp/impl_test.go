package berlekamp

import (
	"testing"

	gfpn "github.com/jalphad/qrscan/exercises/3-gfpn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBerlekampMasseyZeroSyndromesGivesDegreeZero(t *testing.T) {
	field, err := gfpn.NewField(2, 8, []int{1, 0, 1, 1, 1, 0, 0, 0, 1})
	require.NoError(t, err)

	syndromes := []gfpn.Element{field.Zero(), field.Zero(), field.Zero(), field.Zero()}
	sigma := BerlekampMassey(field, syndromes)

	assert.Equal(t, 0, sigma.Degree())
	assert.False(t, sigma.Coefficients()[0].IsZero())
}
