// Package export writes parsed collision meshes to interchange formats.
package export

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"sm64-collision-inspector/pkg/formats"
)

// WriteOBJ writes a mesh as a Wavefront OBJ. Vertices keep their parse
// order; face indices are 1-based per the OBJ format.
func WriteOBJ(w io.Writer, mesh *formats.Mesh) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "# SM64 collision mesh")
	fmt.Fprintf(bw, "# %d vertices, %d triangles\n\n", len(mesh.Vertices), len(mesh.Triangles))

	for _, v := range mesh.Vertices {
		fmt.Fprintf(bw, "v %d %d %d\n", v.X, v.Y, v.Z)
	}
	fmt.Fprintln(bw)

	for _, t := range mesh.Triangles {
		fmt.Fprintf(bw, "f %d %d %d\n", t.V1+1, t.V2+1, t.V3+1)
	}

	return bw.Flush()
}

// WriteOBJFile writes a mesh to an OBJ file on disk.
func WriteOBJFile(path string, mesh *formats.Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteOBJ(f, mesh); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
