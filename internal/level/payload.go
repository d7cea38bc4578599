package level

import "sm64-collision-inspector/pkg/formats"

// JSON payload types for the viewer boundary. The renderer receives finished
// vertices, classified triangles and resolved placements; it never sees the
// source grammar.

// NormalPayload is a normal vector in JSON form.
type NormalPayload struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

// TrianglePayload is one classified triangle.
type TrianglePayload struct {
	Indices [3]int        `json:"indices"`
	Surface string        `json:"surface"`
	Normal  NormalPayload `json:"normal"`
	Ref     NormalPayload `json:"refNormal"`
	Class   string        `json:"class"`
}

// GeometryPayload is one source unit's classified mesh.
type GeometryPayload struct {
	Vertices  [][3]int32        `json:"vertices"`
	Triangles []TrianglePayload `json:"triangles"`
}

// PlacementPayload is one resolved object placement.
type PlacementPayload struct {
	Model string   `json:"model"`
	Pos   [3]int32 `json:"pos"`
	Angle [3]int32 `json:"angle"`
}

// ObjectPayload is one object instance with its local geometry.
type ObjectPayload struct {
	ID         string             `json:"id"`
	Geometry   GeometryPayload    `json:"geometry"`
	Placements []PlacementPayload `json:"placements"`
}

// Payload is the complete viewer-facing form of a level.
type Payload struct {
	Name    string            `json:"name"`
	Variant string            `json:"variant"`
	Areas   []GeometryPayload `json:"areas"`
	Objects []ObjectPayload   `json:"objects"`
}

// ToPayload converts an assembled level into its JSON form.
func (l *Level) ToPayload() Payload {
	p := Payload{
		Name:    l.Name,
		Variant: l.Variant.String(),
		Areas:   make([]GeometryPayload, len(l.Areas)),
	}
	for i, g := range l.Areas {
		p.Areas[i] = geometryPayload(g)
	}
	for _, o := range l.Objects {
		op := ObjectPayload{
			ID:         o.Descriptor.ID,
			Geometry:   geometryPayload(o.Geometry),
			Placements: make([]PlacementPayload, len(o.Placements)),
		}
		for i, pl := range o.Placements {
			op.Placements[i] = PlacementPayload{Model: pl.Model, Pos: pl.Pos, Angle: pl.Angle}
		}
		p.Objects = append(p.Objects, op)
	}
	return p
}

func geometryPayload(g Geometry) GeometryPayload {
	gp := GeometryPayload{
		Vertices:  make([][3]int32, len(g.Mesh.Vertices)),
		Triangles: make([]TrianglePayload, len(g.Triangles)),
	}
	for i, v := range g.Mesh.Vertices {
		gp.Vertices[i] = [3]int32{v.X, v.Y, v.Z}
	}
	for i, t := range g.Triangles {
		gp.Triangles[i] = TrianglePayload{
			Indices: [3]int{t.Triangle.V1, t.Triangle.V2, t.Triangle.V3},
			Surface: string(t.Triangle.Surface),
			Normal:  normalPayload(t.Normal),
			Ref:     normalPayload(t.Ref),
			Class:   t.Class.String(),
		}
	}
	return gp
}

func normalPayload(n formats.Normal) NormalPayload {
	return NormalPayload{X: n.X, Y: n.Y, Z: n.Z}
}
