package profile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"sheet2tree/internal/header"
	"sheet2tree/internal/render"
	"sheet2tree/internal/tree"
)

// LoadFile loads and parses a YAML profile from the given path.
func LoadFile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile %s: %w", path, err)
	}

	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

// Parse parses YAML data into a Profile and applies defaults.
func Parse(data []byte) (*Profile, error) {
	var p Profile

	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse profile YAML: %w", err)
	}

	applyDefaults(&p)

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}

	return &p, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(p *Profile) {
	if p.Version == "" {
		p.Version = "1"
	}

	if p.Empty == "" {
		p.Empty = tree.DefaultPolicy
	}

	if p.LegacyMarker == nil {
		marker := header.DefaultLegacyMarker
		p.LegacyMarker = &marker
	}

	if p.Normalize == nil {
		normalize := true
		p.Normalize = &normalize
	}

	if p.Output.Format == "" {
		p.Output.Format = string(render.FormatJSON)
	}

	if p.Output.Indent == 0 {
		p.Output.Indent = render.DefaultIndent
	}
}

// Marshal serializes a Profile to YAML.
func Marshal(p *Profile) ([]byte, error) {
	return yaml.Marshal(p)
}

// WriteFile writes a Profile to the given path.
func WriteFile(p *Profile, path string) error {
	data, err := Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write profile %s: %w", path, err)
	}

	return nil
}
