package n64_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"sm64-collision-inspector/pkg/n64"
)

func TestInt32_Wrapping(t *testing.T) {
	tests := []struct {
		name string
		in   int64
		want int32
	}{
		{"zero", 0, 0},
		{"in range positive", 123456, 123456},
		{"in range negative", -123456, -123456},
		{"max int32", math.MaxInt32, math.MaxInt32},
		{"min int32", math.MinInt32, math.MinInt32},
		{"max int32 plus one wraps negative", math.MaxInt32 + 1, math.MinInt32},
		{"min int32 minus one wraps positive", math.MinInt32 - 1, math.MaxInt32},
		{"large positive wraps", 0x1_0000_0005, 5},
		{"large negative wraps", -0x1_0000_0005, -5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, n64.Int32(tc.in))
		})
	}
}

func TestInt16_Wrapping(t *testing.T) {
	require.Equal(t, int16(-32768), n64.Int16(32768))
	require.Equal(t, int16(32767), n64.Int16(-32769))
	require.Equal(t, int16(-1), n64.Int16(0xFFFF))
	require.Equal(t, int16(700), n64.Int16(700))
}

func TestFloat32_RoundsToNearestEven(t *testing.T) {
	// 16777217 = 2^24 + 1 is the first integer not representable in binary32;
	// it must round down to 2^24 (ties-to-even).
	require.Equal(t, float32(16777216), n64.Float32(16777217))
	// 16777219 is exactly between 16777218 and 16777220; even mantissa wins.
	require.Equal(t, float32(16777220), n64.Float32(16777219))
	require.Equal(t, float32(0.1), n64.Float32(0.1))
}

func TestSqrtf(t *testing.T) {
	require.Equal(t, float32(2), n64.Sqrtf(4))
	require.Equal(t, float32(math.Sqrt(2)), n64.Sqrtf(2))
	require.Equal(t, float32(0), n64.Sqrtf(0))
}
