package level

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CatalogObject describes one object whose geometry and placements a level
// build should include.
type CatalogObject struct {
	ID        string   `yaml:"id"`
	Models    []string `yaml:"models"`    // Candidate model symbols, priority order
	Collision string   `yaml:"collision"` // Directory under levels/<level>/
}

// Catalog maps level names to the objects worth inspecting in them.
type Catalog struct {
	Levels map[string][]CatalogObject `yaml:"levels"`
}

// Objects returns the catalog entries for a level, or nil.
func (c Catalog) Objects(level string) []CatalogObject {
	return c.Levels[level]
}

// LoadCatalog reads an object catalog from a YAML file.
func LoadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("reading catalog: %w", err)
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("parsing catalog: %w", err)
	}
	return c, nil
}

// DefaultCatalog returns the built-in catalog covering the levels the
// inspector ships viewer support for.
func DefaultCatalog() Catalog {
	return Catalog{
		Levels: map[string][]CatalogObject{
			"bitfs": {
				{
					ID:        "tumbling_platform",
					Models:    []string{"MODEL_BITFS_TUMBLING_PLATFORM", "MODEL_BITFS_TUMBLING_PLATFORM_PART"},
					Collision: "tumbling_platform",
				},
				{
					ID:        "elevator",
					Models:    []string{"MODEL_BITFS_ELEVATOR"},
					Collision: "elevator",
				},
				{
					ID:        "sinking_platforms",
					Models:    []string{"MODEL_BITFS_SINKING_PLATFORMS"},
					Collision: "sinking_platforms",
				},
			},
			"wf": {
				{
					ID:        "breakable_wall",
					Models:    []string{"MODEL_WF_BREAKABLE_WALL_LEFT", "MODEL_WF_BREAKABLE_WALL_RIGHT"},
					Collision: "breakable_wall",
				},
			},
		},
	}
}
