package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sm64-collision-inspector/pkg/formats"
)

func sampleMesh(t *testing.T) *formats.Mesh {
	t.Helper()
	mesh, err := formats.ParseCollision(
		"COL_VERTEX(0, 0, 0),\nCOL_VERTEX(100, 0, 0),\nCOL_VERTEX(0, 0, 100),\nCOL_TRI(0, 1, 2),\n")
	if err != nil {
		t.Fatalf("ParseCollision failed: %v", err)
	}
	return mesh
}

func TestWriteOBJ(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOBJ(&buf, sampleMesh(t)); err != nil {
		t.Fatalf("WriteOBJ failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"# 3 vertices, 1 triangles",
		"v 0 0 0",
		"v 100 0 0",
		"v 0 0 100",
		"f 1 2 3", // OBJ faces are 1-based
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	// Vertex lines must keep parse order.
	if strings.Index(out, "v 0 0 0") > strings.Index(out, "v 100 0 0") {
		t.Error("vertex order not preserved")
	}
}

func TestWriteOBJFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mesh.obj")
	if err := WriteOBJFile(path, sampleMesh(t)); err != nil {
		t.Fatalf("WriteOBJFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.Contains(string(data), "f 1 2 3") {
		t.Errorf("unexpected file content:\n%s", data)
	}
}
