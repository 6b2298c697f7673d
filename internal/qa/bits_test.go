package qa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeClearPixel(t *testing.T) {
	bits, err := Decode(2)

	require.NoError(t, err)
	assert.False(t, bits.NoData)
	assert.True(t, bits.Bits[1])
	for i := 0; i < 16; i++ {
		if i == 1 {
			continue
		}
		assert.False(t, bits.Bits[i], "bit %d should be unset", i)
	}
}

func TestDecodeBounds(t *testing.T) {
	tests := []struct {
		name string
		code int
	}{
		{"zero", 0},
		{"max", MaxCode},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			bits, err := Decode(test.code)

			require.NoError(t, err)
			assert.False(t, bits.NoData)
			assert.Equal(t, test.code, Encode(bits))
		})
	}
}

func TestDecodeNoData(t *testing.T) {
	bits, err := Decode(NoDataCode)

	require.NoError(t, err)
	assert.True(t, bits.NoData)
	for i := 0; i < 16; i++ {
		assert.False(t, bits.Bits[i])
	}
}

func TestDecodeOutsideDomain(t *testing.T) {
	tests := []struct {
		name string
		code int
	}{
		{"above max", MaxCode + 1},
		{"far above max", 1 << 20},
		{"below no data", -2},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Decode(test.code)

			require.ErrorIs(t, err, ErrDomain)
		})
	}
}

func TestEncodeNoData(t *testing.T) {
	assert.Equal(t, NoDataCode, Encode(BitVector{NoData: true}))
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for code := 0; code <= MaxCode; code++ {
		bits, err := Decode(code)
		require.NoError(t, err)
		require.Equal(t, code, Encode(bits), "code %d did not round trip", code)
	}
}

func TestDecodeBitPositions(t *testing.T) {
	for i := 0; i < 16; i++ {
		bits, err := Decode(1 << i)

		require.NoError(t, err)
		for j := 0; j < 16; j++ {
			assert.Equal(t, i == j, bits.Bits[j], "code 1<<%d, bit %d", i, j)
		}
	}
}
