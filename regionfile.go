package honoka

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// regionFile is the YAML document shape for user-supplied regions, used by
// tooling to add private-server key tables without recompiling.
//
//	regions:
//	  - name: MYSERVER
//	    prefix: SomePrefix
//	    keyTable: [1210253353, 1736710334, ...]  # 64 entries
type regionFile struct {
	Regions []regionDefinition `yaml:"regions"`
}

type regionDefinition struct {
	Name     string   `yaml:"name"`
	Prefix   string   `yaml:"prefix"`
	KeyTable []uint32 `yaml:"keyTable"`
}

// LoadRegions parses region definitions from YAML. The key table is
// optional (regions without one cannot decrypt version 3 files) but when
// present it must hold exactly 64 entries.
func LoadRegions(r io.Reader) ([]Region, error) {
	var doc regionFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse region file: %w", err)
	}

	if len(doc.Regions) == 0 {
		return nil, &ValidationError{
			Field:   "regions",
			Message: "region file defines no regions",
		}
	}

	out := make([]Region, 0, len(doc.Regions))
	for i, def := range doc.Regions {
		if def.Name == "" {
			return nil, &ValidationError{
				Field:   fmt.Sprintf("regions[%d].name", i),
				Message: "region name cannot be empty",
			}
		}
		if def.Prefix == "" {
			return nil, &ValidationError{
				Field:   fmt.Sprintf("regions[%d].prefix", i),
				Message: "region prefix cannot be empty",
			}
		}
		if def.KeyTable != nil && len(def.KeyTable) != 64 {
			return nil, &ValidationError{
				Field:   fmt.Sprintf("regions[%d].keyTable", i),
				Value:   len(def.KeyTable),
				Message: "key table must hold exactly 64 entries",
			}
		}
		out = append(out, Region{
			Name:     def.Name,
			Prefix:   []byte(def.Prefix),
			KeyTable: def.KeyTable,
		})
	}
	return out, nil
}
