package profile

import (
	"fmt"
	"strconv"

	"sheet2tree/internal/tree"
)

// EnvPrefix starts the name of every environment override.
const EnvPrefix = "SHEET2TREE_"

// LookupFunc reports the value of an environment variable; os.LookupEnv fits.
type LookupFunc func(key string) (string, bool)

// ApplyEnv overrides fields from environment variables:
//
//	SHEET2TREE_EMPTY          empty
//	SHEET2TREE_LEGACY_MARKER  legacy_marker
//	SHEET2TREE_KEY_SEPARATOR  key_separator
//	SHEET2TREE_NORMALIZE      normalize
//	SHEET2TREE_INPUT          input.format
//	SHEET2TREE_SHEET          input.sheet
//	SHEET2TREE_COMMA          input.comma
//	SHEET2TREE_FORMAT         output.format
//	SHEET2TREE_INDENT         output.indent
//
// A variable that is set but empty still overrides, except for the policy
// and the formats, where empty means unset.
func (p *Profile) ApplyEnv(lookup LookupFunc) error {
	if v, ok := lookup(EnvPrefix + "EMPTY"); ok && v != "" {
		policy, err := tree.ParseEmptyPolicy(v)
		if err != nil {
			return fmt.Errorf("%sEMPTY: %w", EnvPrefix, err)
		}

		p.Empty = policy
	}

	if v, ok := lookup(EnvPrefix + "LEGACY_MARKER"); ok {
		p.LegacyMarker = &v
	}

	if v, ok := lookup(EnvPrefix + "KEY_SEPARATOR"); ok {
		p.KeySeparator = v
	}

	if v, ok := lookup(EnvPrefix + "NORMALIZE"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sNORMALIZE: %w", EnvPrefix, err)
		}

		p.Normalize = &b
	}

	if v, ok := lookup(EnvPrefix + "INPUT"); ok && v != "" {
		p.Input.Format = v
	}

	if v, ok := lookup(EnvPrefix + "SHEET"); ok {
		p.Input.Sheet = v
	}

	if v, ok := lookup(EnvPrefix + "COMMA"); ok {
		p.Input.Comma = v
	}

	if v, ok := lookup(EnvPrefix + "FORMAT"); ok && v != "" {
		p.Output.Format = v
	}

	if v, ok := lookup(EnvPrefix + "INDENT"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sINDENT: %w", EnvPrefix, err)
		}

		p.Output.Indent = n
	}

	return p.Validate()
}
