package formats

import "math"

// TriangleVertices resolves a triangle's three vertices.
func (m *Mesh) TriangleVertices(t Triangle) [3]Vertex {
	return [3]Vertex{m.Vertices[t.V1], m.Vertices[t.V2], m.Vertices[t.V3]}
}

// Center returns the centroid of a triangle.
func (m *Mesh) Center(t Triangle) (x, y, z float64) {
	vs := m.TriangleVertices(t)
	x = float64(vs[0].X+vs[1].X+vs[2].X) / 3
	y = float64(vs[0].Y+vs[1].Y+vs[2].Y) / 3
	z = float64(vs[0].Z+vs[1].Z+vs[2].Z) / 3
	return x, y, z
}

// CountBySurface returns the number of triangles per surface type.
func (m *Mesh) CountBySurface() map[SurfaceType]int {
	counts := make(map[SurfaceType]int)
	for _, t := range m.Triangles {
		counts[t.Surface]++
	}
	return counts
}

// TrianglesBySurface returns the ordinal positions of all triangles carrying
// the given surface type, in source order.
func (m *Mesh) TrianglesBySurface(s SurfaceType) []int {
	var out []int
	for i, t := range m.Triangles {
		if t.Surface == s {
			out = append(out, i)
		}
	}
	return out
}

// FindByVertex returns the ordinal positions of triangles that use a vertex
// at (x, y, z). With tolerance 0 the match is exact; otherwise any vertex
// within tolerance units counts.
func (m *Mesh) FindByVertex(x, y, z int32, tolerance float64) []int {
	var out []int
	for i, t := range m.Triangles {
		for _, v := range m.TriangleVertices(t) {
			if vertexMatches(v, x, y, z, tolerance) {
				out = append(out, i)
				break
			}
		}
	}
	return out
}

// FindNearPoint returns the ordinal positions of triangles whose centroid
// lies within radius of (x, y, z).
func (m *Mesh) FindNearPoint(x, y, z, radius float64) []int {
	var out []int
	for i, t := range m.Triangles {
		cx, cy, cz := m.Center(t)
		if dist3(cx-x, cy-y, cz-z) <= radius {
			out = append(out, i)
		}
	}
	return out
}

// SurfacesAt returns the set of surface types attached to triangles using a
// vertex at (x, y, z).
func (m *Mesh) SurfacesAt(x, y, z int32, tolerance float64) map[SurfaceType]bool {
	set := make(map[SurfaceType]bool)
	for _, i := range m.FindByVertex(x, y, z, tolerance) {
		set[m.Triangles[i].Surface] = true
	}
	return set
}

func vertexMatches(v Vertex, x, y, z int32, tolerance float64) bool {
	if tolerance == 0 {
		return v.X == x && v.Y == y && v.Z == z
	}
	return dist3(float64(v.X-x), float64(v.Y-y), float64(v.Z-z)) <= tolerance
}

func dist3(dx, dy, dz float64) float64 {
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
