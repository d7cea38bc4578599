package formats

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"sm64-collision-inspector/pkg/n64"
)

// Collision parser errors.
var (
	ErrNoTriangles = errors.New("no triangles found in collision source")
)

// Vertex is one collision vertex. Index is the vertex's position in the
// source's COL_VERTEX order; triangles reference vertices only through it.
type Vertex struct {
	X, Y, Z int32
	Index   int
}

// Triangle references three vertices by index and carries the surface type
// that was active when the triangle statement was scanned.
type Triangle struct {
	V1, V2, V3 int
	Surface    SurfaceType
}

// Mesh is the parsed collision set of one source unit: a level area's static
// geometry or one object's local geometry. Vertex and triangle order is
// source order; a triangle's position in Triangles is its stable identifier.
type Mesh struct {
	Vertices  []Vertex
	Triangles []Triangle
}

var (
	vertexRe  = regexp.MustCompile(`COL_VERTEX\(\s*(-?\d+)\s*,\s*(-?\d+)\s*,\s*(-?\d+)\s*\)`)
	triInitRe = regexp.MustCompile(`COL_TRI_INIT\(\s*([^,\s]+)\s*,\s*\d+\s*\)`)
	triRe     = regexp.MustCompile(`COL_TRI\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*\)`)
)

// ParseCollision scans preprocessed collision source text for COL_VERTEX,
// COL_TRI_INIT and COL_TRI statements.
//
// Vertices are collected in order of appearance across the whole text.
// Triangles are scanned line by line: a COL_TRI_INIT marker sets the surface
// type for all following COL_TRI statements until the next marker, defaulting
// to SURFACE_DEFAULT before the first one. A triangle referencing a vertex
// index beyond the vertex table is dropped without error: such statements
// belong to the other build variant's vertex layout in some interleaved
// sources, and the surrounding structure is trusted. A scan that accepts zero
// triangles fails with ErrNoTriangles, since that almost always means a
// grammar or variant mismatch rather than a genuinely empty mesh.
func ParseCollision(text string) (*Mesh, error) {
	mesh := &Mesh{}

	for _, m := range vertexRe.FindAllStringSubmatch(text, -1) {
		x, okX := parseCoord(m[1])
		y, okY := parseCoord(m[2])
		z, okZ := parseCoord(m[3])
		if !okX || !okY || !okZ {
			continue
		}
		mesh.Vertices = append(mesh.Vertices, Vertex{
			X: x, Y: y, Z: z,
			Index: len(mesh.Vertices),
		})
	}

	surface := SurfaceDefault
	for _, line := range strings.Split(text, "\n") {
		if m := triInitRe.FindStringSubmatch(line); m != nil {
			surface = SurfaceType(m[1])
			continue
		}

		m := triRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		a, okA := parseIndex(m[1])
		b, okB := parseIndex(m[2])
		c, okC := parseIndex(m[3])
		if !okA || !okB || !okC {
			continue
		}
		if a >= len(mesh.Vertices) || b >= len(mesh.Vertices) || c >= len(mesh.Vertices) {
			continue
		}
		mesh.Triangles = append(mesh.Triangles, Triangle{V1: a, V2: b, V3: c, Surface: surface})
	}

	if len(mesh.Triangles) == 0 {
		return nil, ErrNoTriangles
	}
	return mesh, nil
}

// ParseCollisionVariant preprocesses the text for the given build variant and
// parses the surviving lines.
func ParseCollisionVariant(text string, variant Variant) (*Mesh, error) {
	resolved, err := Preprocess(text, variant)
	if err != nil {
		return nil, err
	}
	return ParseCollision(resolved)
}

// ParseCollisionFile reads and parses a collision source file from disk.
func ParseCollisionFile(path string, variant Variant) (*Mesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading collision file: %w", err)
	}
	return ParseCollisionVariant(string(data), variant)
}

// parseCoord parses a matched signed coordinate field. The capture pattern
// guarantees digits, so the only failure mode is int64 overflow; the caller
// drops the enclosing statement and keeps scanning.
func parseCoord(s string) (int32, bool) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	// Out-of-range literals wrap the same way a native 32-bit read would.
	return n64.Int32(v), true
}

// parseIndex parses a matched vertex index field.
func parseIndex(s string) (int, bool) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v < 0 || v > int64(^uint32(0)>>1) {
		return 0, false
	}
	return int(v), true
}
