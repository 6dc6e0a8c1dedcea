// Package config loads phys2d.EngineConfig from YAML, the way the
// reference simulation repos in this codebase's lineage load their own
// tunables: a defaults struct overridden field-by-field by whatever the
// document supplies.
package config

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jrdnrs/physics-2d"
)

// Load parses a YAML document into a phys2d.EngineConfig. Any field
// absent from the document (or present as its zero value) falls back to
// phys2d.DefaultConfig's value for it.
func Load(r io.Reader) (phys2d.EngineConfig, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return phys2d.EngineConfig{}, fmt.Errorf("config: reading document: %w", err)
	}

	cfg := phys2d.EngineConfig{}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return phys2d.EngineConfig{}, fmt.Errorf("config: parsing document: %w", err)
	}

	return phys2d.ApplyDefaults(cfg), nil
}
