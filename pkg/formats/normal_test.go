package formats

import (
	"math"
	"testing"
)

func TestComputeNormal_FlatFloor(t *testing.T) {
	v1 := Vertex{X: 0, Y: 0, Z: 0, Index: 0}
	v2 := Vertex{X: 100, Y: 0, Z: 0, Index: 1}
	v3 := Vertex{X: 0, Y: 0, Z: 100, Index: 2}

	n := ComputeNormal(v1, v2, v3)
	if n.X != 0 || n.Y != 1 || n.Z != 0 {
		t.Errorf("expected {0, 1, 0}, got %+v", n)
	}
	if Classify(n) != ClassFloor {
		t.Errorf("expected floor, got %s", Classify(n))
	}
}

func TestComputeNormal_Wall(t *testing.T) {
	v1 := Vertex{X: 0, Y: 0, Z: 0}
	v2 := Vertex{X: 0, Y: 100, Z: 0}
	v3 := Vertex{X: 0, Y: 0, Z: 100}

	n := ComputeNormal(v1, v2, v3)
	if n.Y != 0 {
		t.Errorf("vertical plane should have y=0, got %v", n.Y)
	}
	if Classify(n) != ClassWall {
		t.Errorf("expected wall, got %s", Classify(n))
	}
}

func TestComputeNormal_Degenerate(t *testing.T) {
	zero := Vertex{}

	n := ComputeNormal(zero, zero, zero)
	if n.X != 0 || n.Y != 1 || n.Z != 0 {
		t.Errorf("degenerate triangle must fall back to {0, 1, 0}, got %+v", n)
	}
	if Classify(n) != ClassFloor {
		t.Errorf("degenerate triangle must classify as floor, got %s", Classify(n))
	}
}

func TestComputeNormal_UnitLength(t *testing.T) {
	v1 := Vertex{X: -217, Y: 93, Z: 411}
	v2 := Vertex{X: 640, Y: -55, Z: 12}
	v3 := Vertex{X: 131, Y: 207, Z: -388}

	n := ComputeNormal(v1, v2, v3)
	length := math.Sqrt(float64(n.X)*float64(n.X) + float64(n.Y)*float64(n.Y) + float64(n.Z)*float64(n.Z))
	if math.Abs(length-1.0) > 1e-5 {
		t.Errorf("expected unit length, got %v", length)
	}
}

func TestReferenceNormal_FlatFloor(t *testing.T) {
	v1 := Vertex{X: 0, Y: 0, Z: 0}
	v2 := Vertex{X: 100, Y: 0, Z: 0}
	v3 := Vertex{X: 0, Y: 0, Z: 100}

	// The display normal is the textbook right-handed cross, which points the
	// other way for this winding. It never drives classification.
	n := ReferenceNormal(v1, v2, v3)
	if n.X != 0 || n.Y != -1 || n.Z != 0 {
		t.Errorf("expected {0, -1, 0}, got %+v", n)
	}
}

func TestReferenceNormal_Degenerate(t *testing.T) {
	zero := Vertex{}
	n := ReferenceNormal(zero, zero, zero)
	if n.X != 0 || n.Y != 1 || n.Z != 0 {
		t.Errorf("expected {0, 1, 0} fallback, got %+v", n)
	}
}

func TestClassify_Thresholds(t *testing.T) {
	tests := []struct {
		name string
		y    float32
		want Class
	}{
		{"well above threshold", 0.5, ClassFloor},
		{"just above threshold", 0.0100001, ClassFloor},
		{"exactly at threshold", 0.01, ClassWall},
		{"zero", 0, ClassWall},
		{"exactly at negative threshold", -0.01, ClassWall},
		{"just below negative threshold", -0.0100001, ClassCeiling},
		{"well below threshold", -0.5, ClassCeiling},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(Normal{Y: tc.y})
			if got != tc.want {
				t.Errorf("Classify(y=%v) = %s, expected %s", tc.y, got, tc.want)
			}
		})
	}
}

func TestClass_String(t *testing.T) {
	tests := []struct {
		class    Class
		expected string
	}{
		{ClassFloor, "floor"},
		{ClassWall, "wall"},
		{ClassCeiling, "ceiling"},
		{Class(9), "Unknown(9)"},
	}

	for _, tc := range tests {
		if tc.class.String() != tc.expected {
			t.Errorf("%d.String() = %q, expected %q", tc.class, tc.class.String(), tc.expected)
		}
	}
}
