package formats

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"sm64-collision-inspector/pkg/n64"
)

// Placement is one object instance recovered from a level script: a model
// symbol, a world position, and three rotation angles in degrees. Angles are
// kept exactly as written — they may exceed ±360 and are not normalized.
type Placement struct {
	Model string
	Pos   [3]int32
	Angle [3]int32
}

// PlacementTable maps a model symbol to its placements in script order.
type PlacementTable map[string][]Placement

// ObjectDescriptor names an object whose placements a caller wants resolved.
// Models lists candidate model symbols in priority order; ID is the object's
// own identifier, used to derive structural fallback names from the level
// identifier when no explicit candidate matches.
type ObjectDescriptor struct {
	ID     string
	Models []string
}

// OBJECT(/*model*/ MODEL_X, /*pos*/ x, y, z, /*angle*/ rx, ry, rz, ...) with
// the block comments optional and any trailing fields ignored. Statements are
// assumed not to span lines.
var objectRe = regexp.MustCompile(
	`OBJECT(?:_WITH_ACTS)?\(\s*` +
		`(?:/\*\s*model\s*\*/)?\s*(MODEL_\w+)\s*,\s*` +
		`(?:/\*\s*pos\s*\*/)?\s*(-?\d+)\s*,\s*(-?\d+)\s*,\s*(-?\d+)\s*,\s*` +
		`(?:/\*\s*angle\s*\*/)?\s*(-?\d+)\s*,\s*(-?\d+)\s*,\s*(-?\d+)`)

// ParsePlacements scans level script text for OBJECT and OBJECT_WITH_ACTS
// statements and accumulates placements per model symbol. Statements whose
// numeric fields overflow are dropped and the scan continues.
func ParsePlacements(text string) PlacementTable {
	table := make(PlacementTable)

	for _, line := range strings.Split(text, "\n") {
		m := objectRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		var fields [6]int32
		ok := true
		for i := 0; i < 6; i++ {
			v, err := strconv.ParseInt(m[i+2], 10, 64)
			if err != nil {
				ok = false
				break
			}
			fields[i] = n64.Int32(v)
		}
		if !ok {
			continue
		}

		model := m[1]
		table[model] = append(table[model], Placement{
			Model: model,
			Pos:   [3]int32{fields[0], fields[1], fields[2]},
			Angle: [3]int32{fields[3], fields[4], fields[5]},
		})
	}

	return table
}

// ParsePlacementsFile reads and scans a level script file from disk.
func ParsePlacementsFile(path string) (PlacementTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading script file: %w", err)
	}
	return ParsePlacements(string(data)), nil
}

// Resolve returns the placements for an object descriptor within a level.
// Explicit candidates are tried in priority order, then structural fallbacks
// built from the level and object identifiers; the first name with a
// non-empty placement list wins. No match yields an empty list — the object
// simply is not instantiated in this configuration, which is not an error.
func (t PlacementTable) Resolve(level string, desc ObjectDescriptor) []Placement {
	for _, name := range desc.Candidates(level) {
		if placements := t[name]; len(placements) > 0 {
			return placements
		}
	}
	return nil
}

// Candidates returns the full candidate name list for a descriptor: the
// explicit models first, then conventional level-derived forms.
func (d ObjectDescriptor) Candidates(level string) []string {
	names := make([]string, 0, len(d.Models)+3)
	names = append(names, d.Models...)

	lvl := strings.ToUpper(level)
	id := strings.ToUpper(d.ID)
	names = append(names,
		fmt.Sprintf("MODEL_%s_%s", lvl, id),
		fmt.Sprintf("MODEL_%s", id),
		fmt.Sprintf("MODEL_%s_%s_1", lvl, id),
	)
	return names
}
