package syndrome

import (
	"testing"

	gfpn "github.com/jalphad/qrscan/exercises/3-gfpn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateSyndromesNoErrors(t *testing.T) {
	field, err := gfpn.NewField(2, 8, []int{1, 0, 1, 1, 1, 0, 0, 0, 1})
	require.NoError(t, err)

	// A codeword is error-free iff every syndrome it produces is zero; an
	// all-zero codeword trivially satisfies that for any generator root.
	received := make([]byte, 16)
	s := CalculateSyndromes(field, received, 4, field.Primitive())

	assert.False(t, HasErrors(s))
}

func TestCalculateSyndromesDetectsNoise(t *testing.T) {
	field, err := gfpn.NewField(2, 8, []int{1, 0, 1, 1, 1, 0, 0, 0, 1})
	require.NoError(t, err)

	received := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	s := CalculateSyndromes(field, received, 4, field.Primitive())

	assert.True(t, HasErrors(s))
}
