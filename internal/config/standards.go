package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aquametrics/aquaindex/internal/standards"
)

// standardsFile is the YAML shape of a custom standards override file:
//
//	parameters:
//	  - symbol: As
//	    name: Arsenic
//	    kind: metal
//	    si: 40
//	    ii: 10
//	    mac: 40
//	  - symbol: pH
//	    kind: wqi
//	    sn: 8.5
//	    vo: 7.0
//	    unit: pH
type standardsFile struct {
	Parameters []standardsEntry `yaml:"parameters"`
}

type standardsEntry struct {
	Symbol string  `yaml:"symbol"`
	Name   string  `yaml:"name"`
	Kind   string  `yaml:"kind"`
	Si     float64 `yaml:"si"`
	Ii     float64 `yaml:"ii"`
	MAC    float64 `yaml:"mac"`
	Sn     float64 `yaml:"sn"`
	Vo     float64 `yaml:"vo"`
	Unit   string  `yaml:"unit"`
}

// LoadStandardsOverrides reads a YAML override file into a symbol ->
// ParameterStandard map suitable for engine.Options.Standards. Each entry
// fully replaces the default for its symbol; there is no field-level merge.
func LoadStandardsOverrides(path string) (map[string]standards.ParameterStandard, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading standards file: %w", err)
	}

	var file standardsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing standards file %s: %w", path, err)
	}
	if len(file.Parameters) == 0 {
		return nil, fmt.Errorf("standards file %s defines no parameters", path)
	}

	overrides := make(map[string]standards.ParameterStandard, len(file.Parameters))
	for i, e := range file.Parameters {
		if e.Symbol == "" {
			return nil, fmt.Errorf("standards file %s: parameter %d has no symbol", path, i+1)
		}
		kind, err := parseKind(e.Kind)
		if err != nil {
			return nil, fmt.Errorf("standards file %s: parameter %s: %w", path, e.Symbol, err)
		}
		overrides[e.Symbol] = standards.ParameterStandard{
			Symbol: e.Symbol,
			Name:   e.Name,
			Kind:   kind,
			Si:     e.Si,
			Ii:     e.Ii,
			MAC:    e.MAC,
			Sn:     e.Sn,
			Vo:     e.Vo,
			Unit:   e.Unit,
		}
	}
	return overrides, nil
}

func parseKind(kind string) (standards.Kind, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", "metal":
		return standards.KindMetal, nil
	case "wqi":
		return standards.KindWQI, nil
	default:
		return 0, fmt.Errorf("unknown parameter kind %q", kind)
	}
}
