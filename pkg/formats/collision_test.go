package formats

import (
	"errors"
	"strings"
	"testing"
)

const sampleCollision = `COL_INIT(),
COL_VERTEX_INIT(3),
COL_VERTEX(0, 0, 0),
COL_VERTEX(100, 0, 0),
COL_VERTEX(0, 0, 100),
COL_TRI_INIT(SURFACE_DEFAULT, 1),
COL_TRI(0, 1, 2),
COL_TRI_STOP(),
COL_END(),
`

func TestParseCollision_Sample(t *testing.T) {
	mesh, err := ParseCollision(sampleCollision)
	if err != nil {
		t.Fatalf("ParseCollision failed: %v", err)
	}

	if len(mesh.Vertices) != 3 {
		t.Fatalf("expected 3 vertices, got %d", len(mesh.Vertices))
	}
	if len(mesh.Triangles) != 1 {
		t.Fatalf("expected 1 triangle, got %d", len(mesh.Triangles))
	}

	tri := mesh.Triangles[0]
	if tri.Surface != SurfaceDefault {
		t.Errorf("expected SURFACE_DEFAULT, got %s", tri.Surface)
	}

	n := mesh.NormalOf(tri)
	if n.Y <= 0 {
		t.Errorf("expected upward-facing normal, got y=%v", n.Y)
	}
	if Classify(n) != ClassFloor {
		t.Errorf("expected floor, got %s", Classify(n))
	}
}

func TestParseCollision_VertexOrder(t *testing.T) {
	input := "COL_VERTEX(1, 2, 3),\nCOL_VERTEX(-4, -5, -6),\nCOL_VERTEX(7, 8, 9),\nCOL_TRI(0, 1, 2),\n"

	mesh, err := ParseCollision(input)
	if err != nil {
		t.Fatalf("ParseCollision failed: %v", err)
	}

	want := []Vertex{
		{X: 1, Y: 2, Z: 3, Index: 0},
		{X: -4, Y: -5, Z: -6, Index: 1},
		{X: 7, Y: 8, Z: 9, Index: 2},
	}
	for i, w := range want {
		if mesh.Vertices[i] != w {
			t.Errorf("vertex %d: got %+v, expected %+v", i, mesh.Vertices[i], w)
		}
	}
}

func TestParseCollision_SurfaceTracking(t *testing.T) {
	input := strings.Join([]string{
		"COL_VERTEX(0, 0, 0),",
		"COL_VERTEX(1, 0, 0),",
		"COL_VERTEX(0, 0, 1),",
		"COL_TRI(0, 1, 2),", // before any marker
		"COL_TRI_INIT(SURFACE_BURNING, 2),",
		"COL_TRI(0, 1, 2),",
		"COL_TRI(2, 1, 0),",
		"COL_TRI_INIT(SURFACE_VERY_SLIPPERY, 1),",
		"COL_TRI(1, 2, 0),",
	}, "\n")

	mesh, err := ParseCollision(input)
	if err != nil {
		t.Fatalf("ParseCollision failed: %v", err)
	}

	want := []SurfaceType{SurfaceDefault, SurfaceBurning, SurfaceBurning, SurfaceVerySlippery}
	if len(mesh.Triangles) != len(want) {
		t.Fatalf("expected %d triangles, got %d", len(want), len(mesh.Triangles))
	}
	for i, w := range want {
		if mesh.Triangles[i].Surface != w {
			t.Errorf("triangle %d: surface %s, expected %s", i, mesh.Triangles[i].Surface, w)
		}
	}
}

func TestParseCollision_DropsOutOfRangeIndices(t *testing.T) {
	input := strings.Join([]string{
		"COL_VERTEX(0, 0, 0),",
		"COL_VERTEX(1, 0, 0),",
		"COL_VERTEX(0, 0, 1),",
		"COL_TRI(0, 1, 2),",
		"COL_TRI(0, 1, 3),", // 3 out of range: dropped
		"COL_TRI(99, 1, 2),",
	}, "\n")

	mesh, err := ParseCollision(input)
	if err != nil {
		t.Fatalf("ParseCollision failed: %v", err)
	}
	if len(mesh.Triangles) != 1 {
		t.Errorf("expected 1 accepted triangle, got %d", len(mesh.Triangles))
	}

	// Accepted count never exceeds the number of COL_TRI statements.
	if len(mesh.Triangles) > strings.Count(input, "COL_TRI(") {
		t.Error("accepted more triangles than statements")
	}
}

func TestParseCollision_EmptyResult(t *testing.T) {
	_, err := ParseCollision("COL_VERTEX(0, 0, 0),\n")
	if !errors.Is(err, ErrNoTriangles) {
		t.Errorf("expected ErrNoTriangles, got %v", err)
	}

	_, err = ParseCollision("nothing here")
	if !errors.Is(err, ErrNoTriangles) {
		t.Errorf("expected ErrNoTriangles for empty input, got %v", err)
	}
}

func TestParseCollision_WhitespaceInsensitive(t *testing.T) {
	input := "COL_VERTEX(  -10 ,20,   -30 ),\nCOL_VERTEX(0,0,0),\nCOL_VERTEX(1,1,1),\nCOL_TRI( 0 ,1, 2 ),\n"

	mesh, err := ParseCollision(input)
	if err != nil {
		t.Fatalf("ParseCollision failed: %v", err)
	}
	if v := mesh.Vertices[0]; v.X != -10 || v.Y != 20 || v.Z != -30 {
		t.Errorf("got vertex %+v", v)
	}
	if len(mesh.Triangles) != 1 {
		t.Errorf("expected 1 triangle, got %d", len(mesh.Triangles))
	}
}

func TestParseCollisionVariant(t *testing.T) {
	input := strings.Join([]string{
		"#ifdef VERSION_JP",
		"COL_VERTEX(1, 1, 1),",
		"#else",
		"COL_VERTEX(2, 2, 2),",
		"#endif",
		"COL_VERTEX(3, 3, 3),",
		"COL_VERTEX(4, 4, 4),",
		"COL_TRI(0, 1, 2),",
	}, "\n")

	jp, err := ParseCollisionVariant(input, VariantJP)
	if err != nil {
		t.Fatalf("JP parse failed: %v", err)
	}
	if jp.Vertices[0].X != 1 {
		t.Errorf("JP variant: expected first vertex x=1, got %d", jp.Vertices[0].X)
	}
	if len(jp.Vertices) != 3 {
		t.Errorf("JP variant: expected 3 vertices, got %d", len(jp.Vertices))
	}

	us, err := ParseCollisionVariant(input, VariantUS)
	if err != nil {
		t.Fatalf("US parse failed: %v", err)
	}
	if us.Vertices[0].X != 2 {
		t.Errorf("US variant: expected first vertex x=2, got %d", us.Vertices[0].X)
	}
}
