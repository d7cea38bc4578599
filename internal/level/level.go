// Package level assembles parsed collision sources into classified,
// positioned level geometry for the viewer and CLI tooling.
package level

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"sm64-collision-inspector/internal/source"
	"sm64-collision-inspector/pkg/formats"
	gmath "sm64-collision-inspector/pkg/math"
)

// ClassifiedTriangle pairs a parsed triangle with both of its normals and
// its orientation class. Normal is the bit-exact variant and is the only one
// classification ever reads; Ref is the full-precision display normal.
type ClassifiedTriangle struct {
	Triangle formats.Triangle
	Normal   formats.Normal
	Ref      formats.Normal
	Class    formats.Class
}

// Geometry is one source unit's mesh with every triangle classified.
type Geometry struct {
	Mesh      *formats.Mesh
	Triangles []ClassifiedTriangle
}

// BuildGeometry classifies every triangle of a mesh. All call sites share
// this one routine; display and classification can never disagree.
func BuildGeometry(mesh *formats.Mesh) Geometry {
	g := Geometry{
		Mesh:      mesh,
		Triangles: make([]ClassifiedTriangle, len(mesh.Triangles)),
	}
	for i, t := range mesh.Triangles {
		n := mesh.NormalOf(t)
		g.Triangles[i] = ClassifiedTriangle{
			Triangle: t,
			Normal:   n,
			Ref:      mesh.ReferenceNormalOf(t),
			Class:    formats.Classify(n),
		}
	}
	return g
}

// CountByClass returns the number of triangles per orientation class.
func (g Geometry) CountByClass() map[formats.Class]int {
	counts := make(map[formats.Class]int)
	for _, t := range g.Triangles {
		counts[t.Class]++
	}
	return counts
}

// ObjectInstance is a catalog object with its local geometry and every
// placement the level script gives it. An empty Placements list means the
// object is not instantiated in this configuration.
type ObjectInstance struct {
	Descriptor formats.ObjectDescriptor
	Geometry   Geometry
	Placements []formats.Placement
}

// WorldVertices transforms the instance's local vertices into world space
// for one placement: rotate by the Euler angles, then translate.
func (o ObjectInstance) WorldVertices(p formats.Placement) []gmath.Vec3 {
	m := gmath.PlacementTransform(p.Pos, p.Angle)

	out := make([]gmath.Vec3, len(o.Geometry.Mesh.Vertices))
	for i, v := range o.Geometry.Mesh.Vertices {
		out[i] = m.TransformVec3(gmath.Vec3{
			X: float32(v.X),
			Y: float32(v.Y),
			Z: float32(v.Z),
		})
	}
	return out
}

// Level is the complete assembled output for one level: per-area static
// geometry plus positioned object instances.
type Level struct {
	Name    string
	Variant formats.Variant
	Areas   []Geometry
	Objects []ObjectInstance
}

// Builder assembles levels from a source set and an object catalog.
type Builder struct {
	src     *source.Set
	catalog Catalog
	variant formats.Variant
	log     *zap.Logger
}

// NewBuilder creates a level builder.
func NewBuilder(src *source.Set, catalog Catalog, variant formats.Variant, log *zap.Logger) *Builder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Builder{src: src, catalog: catalog, variant: variant, log: log}
}

// Build assembles one level: parse each area's collision for the configured
// variant, scan the level script for placements, and resolve each catalog
// object against them.
func (b *Builder) Build(name string) (*Level, error) {
	paths, err := b.src.AreaCollisionPaths(name)
	if err != nil {
		return nil, err
	}

	lvl := &Level{Name: name, Variant: b.variant}
	for _, path := range paths {
		data, err := b.src.Load(path)
		if err != nil {
			return nil, err
		}
		mesh, err := formats.ParseCollisionVariant(string(data), b.variant)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		lvl.Areas = append(lvl.Areas, BuildGeometry(mesh))
	}

	placements, err := b.loadPlacements(name)
	if err != nil {
		return nil, err
	}

	for _, entry := range b.catalog.Objects(name) {
		inst, err := b.buildObject(name, entry, placements)
		if err != nil {
			return nil, err
		}
		if inst != nil {
			lvl.Objects = append(lvl.Objects, *inst)
		}
	}

	return lvl, nil
}

// BuildAll assembles several levels concurrently, one worker per level.
// Results keep the order of names; the first error wins.
func (b *Builder) BuildAll(names []string) ([]*Level, error) {
	levels := make([]*Level, len(names))
	errs := make([]error, len(names))

	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			levels[i], errs[i] = b.Build(name)
		}(i, name)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return levels, nil
}

// loadPlacements scans the level script. A missing script is not fatal:
// the level simply has no placed objects.
func (b *Builder) loadPlacements(name string) (formats.PlacementTable, error) {
	data, err := b.src.Load(b.src.ScriptPath(name))
	if err != nil {
		b.log.Info("level has no script, skipping placements", zap.String("level", name))
		return formats.PlacementTable{}, nil
	}
	return formats.ParsePlacements(string(data)), nil
}

// buildObject parses one catalog object's local collision and resolves its
// placements. An object with no collision file is skipped; an object with no
// placements is kept with an empty list so the caller can tell "defined but
// not instantiated" apart from "unknown".
func (b *Builder) buildObject(levelName string, entry CatalogObject, table formats.PlacementTable) (*ObjectInstance, error) {
	path := b.src.ObjectCollisionPath(levelName, entry.Collision)
	data, err := b.src.Load(path)
	if err != nil {
		b.log.Warn("object collision file missing",
			zap.String("level", levelName),
			zap.String("object", entry.ID))
		return nil, nil
	}

	mesh, err := formats.ParseCollisionVariant(string(data), b.variant)
	if err != nil {
		return nil, fmt.Errorf("parsing object %s: %w", entry.ID, err)
	}

	desc := formats.ObjectDescriptor{ID: entry.ID, Models: entry.Models}
	placements := table.Resolve(levelName, desc)
	if len(placements) == 0 {
		b.log.Info("object not instantiated in this configuration",
			zap.String("level", levelName),
			zap.String("object", entry.ID))
	}

	return &ObjectInstance{
		Descriptor: desc,
		Geometry:   BuildGeometry(mesh),
		Placements: placements,
	}, nil
}
