package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"sheet2tree/internal/tree"
)

// ErrUnsupportedFormat is returned for an output format that has no encoder.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Format names an output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// DefaultIndent is the indent width used when Options.Indent is zero.
const DefaultIndent = 2

// ParseFormat converts a format name; empty selects JSON.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// Options controls record encoding.
type Options struct {
	Format Format
	// Indent is the number of spaces per level. Negative writes compact JSON;
	// YAML is always indented.
	Indent int
}

func (o Options) indent() int {
	if o.Indent == 0 {
		return DefaultIndent
	}

	return o.Indent
}

// Records writes the conversion result. ok == false writes null.
func Records(w io.Writer, records []*tree.Record, ok bool, opts Options) error {
	var v any
	if ok {
		v = records
	}

	switch opts.Format {
	case FormatJSON, "":
		return writeJSON(w, v, opts.indent())
	case FormatYAML:
		return writeYAML(w, v, opts.indent())
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, opts.Format)
	}
}

func writeJSON(w io.Writer, v any, indent int) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	if indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", indent))
	}

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

func writeYAML(w io.Writer, v any, indent int) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(max(indent, 1))

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return nil
}
