package util

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHexHandle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0x"+strings.Repeat("0", 63)+"1", ToHexHandle(big.NewInt(1)))
	assert.Equal(t, "0x"+strings.Repeat("0", 64), ToHexHandle(big.NewInt(0)))

	// A value at the top of the 256-bit range still fits without growing the
	// handle.
	top := new(big.Int).Lsh(big.NewInt(1), 255)
	assert.Equal(t, "0x8"+strings.Repeat("0", 63), ToHexHandle(top))
	assert.Len(t, ToHexHandle(top), 66)
}

func TestConvertToBigInt(t *testing.T) {
	t.Parallel()

	n, err := ConvertToBigInt("12345")
	require.NoError(t, err)
	assert.Zero(t, n.Cmp(big.NewInt(12345)))

	n, err = ConvertToBigInt("-7")
	require.NoError(t, err)
	assert.Zero(t, n.Cmp(big.NewInt(-7)))

	_, err = ConvertToBigInt("0x10")
	require.Error(t, err)

	_, err = ConvertToBigInt("not a number")
	require.Error(t, err)
}
