package math

import "math"

// DegToRad converts degrees to radians.
func DegToRad(deg float32) float32 {
	return deg * float32(math.Pi) / 180
}

// PlacementTransform builds the object-local to world matrix for a placement
// with rotation angles in degrees and an integer world position. Rotation is
// intrinsic Euler, X then Y then Z, followed by translation; with column
// vectors that composition is T * Rx * Ry * Rz. The order is load-bearing:
// swapping it moves every placed object visibly off its spot.
func PlacementTransform(pos [3]int32, angleDeg [3]int32) Mat4 {
	rx := RotateX(DegToRad(float32(angleDeg[0])))
	ry := RotateY(DegToRad(float32(angleDeg[1])))
	rz := RotateZ(DegToRad(float32(angleDeg[2])))
	t := Translate(float32(pos[0]), float32(pos[1]), float32(pos[2]))

	return t.Mul(rx).Mul(ry).Mul(rz)
}
