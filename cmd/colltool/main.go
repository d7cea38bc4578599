// colltool is a CLI utility for inspecting SM64 collision source files.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"sm64-collision-inspector/internal/export"
	"sm64-collision-inspector/internal/level"
	"sm64-collision-inspector/pkg/formats"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "normals":
		cmdNormals(args)
	case "find":
		cmdFind(args)
	case "objects":
		cmdObjects(args)
	case "export":
		cmdExport(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`colltool - SM64 collision source inspector

Usage:
  colltool <command> [options]

Commands:
  info <collision.inc.c>               Show mesh statistics
  normals <collision.inc.c>            Print per-triangle normals and classes
  find <collision.inc.c> <x> <y> <z>   Find triangles touching a vertex
  objects <script.c>                   List OBJECT placements in a level script
  export <collision.inc.c>             Export mesh (-o out.obj or out.json)

Options common to collision commands:
  -variant jp|us  ROM variant for conditional blocks (default jp)

Examples:
  colltool info levels/bitfs/areas/1/collision.inc.c
  colltool normals -variant us collision.inc.c
  colltool find collision.inc.c 307 -1687 205
  colltool export -o mesh.obj collision.inc.c`)
}

func parseVariantFlag(fs *flag.FlagSet) *string {
	return fs.String("variant", "jp", "ROM variant (jp or us)")
}

func loadMesh(path, variant string) *formats.Mesh {
	v, err := formats.ParseVariant(variant)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	mesh, err := formats.ParseCollisionFile(path, v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return mesh
}

func cmdInfo(args []string) {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	variant := parseVariantFlag(fs)
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: colltool info <collision.inc.c>")
		os.Exit(1)
	}

	mesh := loadMesh(fs.Arg(0), *variant)
	geo := level.BuildGeometry(mesh)

	fmt.Printf("File:      %s\n", fs.Arg(0))
	fmt.Printf("Vertices:  %d\n", len(mesh.Vertices))
	fmt.Printf("Triangles: %d\n", len(mesh.Triangles))
	fmt.Println()

	classes := geo.CountByClass()
	fmt.Println("By class:")
	for _, c := range []formats.Class{formats.ClassFloor, formats.ClassWall, formats.ClassCeiling} {
		fmt.Printf("  %-8s %d\n", c, classes[c])
	}
	fmt.Println()

	surfaces := mesh.CountBySurface()
	names := make([]string, 0, len(surfaces))
	for s := range surfaces {
		names = append(names, string(s))
	}
	sort.Strings(names)

	fmt.Println("By surface:")
	for _, name := range names {
		fmt.Printf("  %-24s %d\n", name, surfaces[formats.SurfaceType(name)])
	}
}

func cmdNormals(args []string) {
	fs := flag.NewFlagSet("normals", flag.ExitOnError)
	variant := parseVariantFlag(fs)
	class := fs.String("class", "", "Only print triangles of this class (floor, wall, ceiling)")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: colltool normals <collision.inc.c>")
		os.Exit(1)
	}

	geo := level.BuildGeometry(loadMesh(fs.Arg(0), *variant))
	for i, t := range geo.Triangles {
		if *class != "" && t.Class.String() != *class {
			continue
		}
		fmt.Printf("%5d  (%d %d %d)  n=(%+.6f %+.6f %+.6f)  ref=(%+.6f %+.6f %+.6f)  %-7s  %s\n",
			i, t.Triangle.V1, t.Triangle.V2, t.Triangle.V3,
			t.Normal.X, t.Normal.Y, t.Normal.Z,
			t.Ref.X, t.Ref.Y, t.Ref.Z,
			t.Class, t.Triangle.Surface)
	}
}

func cmdFind(args []string) {
	fs := flag.NewFlagSet("find", flag.ExitOnError)
	variant := parseVariantFlag(fs)
	tol := fs.Float64("tol", 0, "Match tolerance in units (0 = exact)")
	fs.Parse(args)

	if fs.NArg() < 4 {
		fmt.Fprintln(os.Stderr, "Usage: colltool find <collision.inc.c> <x> <y> <z>")
		os.Exit(1)
	}

	coords := make([]int32, 3)
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseInt(fs.Arg(i+1), 10, 32)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Bad coordinate %q: %v\n", fs.Arg(i+1), err)
			os.Exit(1)
		}
		coords[i] = int32(v)
	}

	mesh := loadMesh(fs.Arg(0), *variant)
	geo := level.BuildGeometry(mesh)

	hits := mesh.FindByVertex(coords[0], coords[1], coords[2], *tol)
	if len(hits) == 0 {
		fmt.Fprintln(os.Stderr, "No triangles found")
		return
	}

	for _, i := range hits {
		t := geo.Triangles[i]
		fmt.Printf("%5d  (%d %d %d)  %-7s  %s\n",
			i, t.Triangle.V1, t.Triangle.V2, t.Triangle.V3,
			t.Class, t.Triangle.Surface)
	}
	fmt.Fprintf(os.Stderr, "\n(%d triangles matched)\n", len(hits))
}

func cmdObjects(args []string) {
	fs := flag.NewFlagSet("objects", flag.ExitOnError)
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: colltool objects <script.c>")
		os.Exit(1)
	}

	table, err := formats.ParsePlacementsFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	models := make([]string, 0, len(table))
	for m := range table {
		models = append(models, m)
	}
	sort.Strings(models)

	count := 0
	for _, m := range models {
		for _, p := range table[m] {
			fmt.Printf("%-32s pos=(%d, %d, %d) angle=(%d, %d, %d)\n",
				m, p.Pos[0], p.Pos[1], p.Pos[2], p.Angle[0], p.Angle[1], p.Angle[2])
			count++
		}
	}
	fmt.Fprintf(os.Stderr, "\n(%d placements, %d models)\n", count, len(models))
}

func cmdExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	variant := parseVariantFlag(fs)
	out := fs.String("o", "", "Output path (default: input with .obj extension)")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: colltool export [-o out.obj] <collision.inc.c>")
		os.Exit(1)
	}

	v, err := formats.ParseVariant(*variant)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	mesh := loadMesh(fs.Arg(0), *variant)

	outPath := *out
	if outPath == "" {
		outPath = strings.TrimSuffix(fs.Arg(0), ".inc.c") + ".obj"
	}

	if strings.HasSuffix(outPath, ".json") {
		lvl := level.Level{
			Name:    strings.TrimSuffix(filepath.Base(fs.Arg(0)), ".inc.c"),
			Variant: v,
			Areas:   []level.Geometry{level.BuildGeometry(mesh)},
		}
		data, err := json.MarshalIndent(lvl.ToPayload(), "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(outPath, append(data, '\n'), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	} else if err := export.WriteOBJFile(outPath, mesh); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Exported: %s (%d vertices, %d triangles)\n",
		outPath, len(mesh.Vertices), len(mesh.Triangles))
}
