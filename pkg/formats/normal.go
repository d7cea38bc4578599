package formats

import (
	"fmt"
	"math"

	"sm64-collision-inspector/pkg/n64"
)

// Normal is a unit face normal in single precision.
type Normal struct {
	X, Y, Z float32
}

// Class is a triangle's orientation category, derived from the vertical
// component of its bit-exact normal.
type Class int

// Orientation classes.
const (
	ClassFloor Class = iota
	ClassWall
	ClassCeiling
)

// String returns a human-readable class name.
func (c Class) String() string {
	switch c {
	case ClassFloor:
		return "floor"
	case ClassWall:
		return "wall"
	case ClassCeiling:
		return "ceiling"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// classifyThreshold is the dead zone around zero within which a normal's
// vertical component counts as a wall.
const classifyThreshold = 0.01

// degenerateEpsilon is the magnitude below which a cross product is treated
// as a zero-area triangle.
const degenerateEpsilon = 0.0001

// ComputeNormal recomputes a triangle's face normal exactly the way the
// target's surface loader does. Edge vectors are the int32 differences
// (v2−v1) and (v3−v2) — the second edge is anchored at v2, not v1, and that
// asymmetry is part of the contract. Every multiply, subtract and add is kept
// in float32 so each intermediate result is rounded to binary32 before the
// next operation; folding the chain into double precision yields a different
// normal and, near the classification threshold, a different class.
//
// A cross product with magnitude below 0.0001 (zero-area triangle) falls back
// to the canonical up vector {0, 1, 0}.
func ComputeNormal(v1, v2, v3 Vertex) Normal {
	y2my1 := n64.Float32(float64(v2.Y - v1.Y))
	z2mz1 := n64.Float32(float64(v2.Z - v1.Z))
	x2mx1 := n64.Float32(float64(v2.X - v1.X))
	z3mz2 := n64.Float32(float64(v3.Z - v2.Z))
	y3my2 := n64.Float32(float64(v3.Y - v2.Y))
	x3mx2 := n64.Float32(float64(v3.X - v2.X))

	// Component formulas replicate the loader verbatim, including the sign of
	// the y term; rewriting them as a textbook cross product changes results.
	nx := y2my1*z3mz2 - z2mz1*y3my2
	ny := x2mx1*z3mz2 - z2mz1*x3mx2
	nz := x2mx1*y3my2 - y2my1*x3mx2

	mag := n64.Sqrtf(nx*nx + ny*ny + nz*nz)
	if mag < degenerateEpsilon {
		return Normal{X: 0, Y: 1, Z: 0}
	}

	inv := float32(1.0) / mag
	return Normal{X: nx * inv, Y: ny * inv, Z: nz * inv}
}

// ReferenceNormal computes the conventional full-precision normal of the
// triangle: (v2−v1) × (v3−v1) in float64, normalized, rounded to float32 only
// at the end. It exists for display and comparison against ComputeNormal and
// must never drive classification.
func ReferenceNormal(v1, v2, v3 Vertex) Normal {
	e1x := float64(v2.X - v1.X)
	e1y := float64(v2.Y - v1.Y)
	e1z := float64(v2.Z - v1.Z)
	e2x := float64(v3.X - v1.X)
	e2y := float64(v3.Y - v1.Y)
	e2z := float64(v3.Z - v1.Z)

	nx := e1y*e2z - e1z*e2y
	ny := e1z*e2x - e1x*e2z
	nz := e1x*e2y - e1y*e2x

	mag := math.Sqrt(nx*nx + ny*ny + nz*nz)
	if mag == 0 {
		return Normal{X: 0, Y: 1, Z: 0}
	}
	return Normal{
		X: float32(nx / mag),
		Y: float32(ny / mag),
		Z: float32(nz / mag),
	}
}

// Classify maps a bit-exact normal to its orientation class. Values at
// exactly ±0.01 fall to wall.
func Classify(n Normal) Class {
	switch {
	case n.Y > classifyThreshold:
		return ClassFloor
	case n.Y < -classifyThreshold:
		return ClassCeiling
	default:
		return ClassWall
	}
}

// NormalOf resolves a triangle's vertices against the mesh and computes its
// bit-exact normal. Indices are trusted here: ParseCollision never emits a
// triangle with out-of-range references.
func (m *Mesh) NormalOf(t Triangle) Normal {
	return ComputeNormal(m.Vertices[t.V1], m.Vertices[t.V2], m.Vertices[t.V3])
}

// ReferenceNormalOf resolves a triangle's vertices and computes its
// full-precision display normal.
func (m *Mesh) ReferenceNormalOf(t Triangle) Normal {
	return ReferenceNormal(m.Vertices[t.V1], m.Vertices[t.V2], m.Vertices[t.V3])
}
