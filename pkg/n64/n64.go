// Package n64 replicates the 32-bit numeric behavior of the N64 target.
//
// Collision coordinates live in memory as signed 16/32-bit integers and the
// surface normal pipeline runs on the FPU in single precision. Reproducing
// that pipeline bit-for-bit requires wrapping integer casts (not saturation)
// and a round to IEEE binary32 after every individual operation. Go's float32
// arithmetic already rounds per operation, so downstream code only needs to
// keep its intermediates typed float32; the helpers here cover the explicit
// conversions at the boundaries.
package n64

import "math"

// Int32 reduces v to its low 32 bits, interpreted as a signed two's-complement
// integer. Overflow wraps; there is no clamping on the target.
func Int32(v int64) int32 {
	return int32(uint32(uint64(v)))
}

// Int16 reduces v to its low 16 bits, interpreted as signed. Vertex
// coordinates are stored as s16 in collision data.
func Int16(v int64) int16 {
	return int16(uint16(uint64(v)))
}

// Float32 rounds a double-precision value to the nearest representable
// single-precision value (round-to-nearest, ties-to-even).
func Float32(v float64) float32 {
	return float32(v)
}

// Sqrtf is the single-precision square root: the double-precision result
// rounded once to binary32, matching the target's sqrtf.
func Sqrtf(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}
