package profile

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"sheet2tree/internal/convert"
	"sheet2tree/internal/header"
	"sheet2tree/internal/render"
	"sheet2tree/internal/table"
	"sheet2tree/internal/tree"
)

// ErrInvalidComma is returned when the CSV delimiter is not a single character.
var ErrInvalidComma = errors.New("comma must be a single character")

// Profile holds conversion settings.
type Profile struct {
	// Version of the profile schema.
	Version string `yaml:"version,omitempty"`

	// Empty is the empty-value policy: null, empty or omit.
	Empty tree.EmptyPolicy `yaml:"empty,omitempty"`

	// LegacyMarker is the header prefix read as a list marker ("XX.name").
	// Nil means the default marker; an empty string disables the alias.
	LegacyMarker *string `yaml:"legacy_marker,omitempty"`

	// KeySeparator is placed between identity values in the row key.
	KeySeparator string `yaml:"key_separator,omitempty"`

	// Normalize converts every cell to Unicode NFC before conversion.
	// Nil means true.
	Normalize *bool `yaml:"normalize,omitempty"`

	Input  Input  `yaml:"input,omitempty"`
	Output Output `yaml:"output,omitempty"`
}

// Input describes how the table is read.
type Input struct {
	// Format is tsv, csv or xlsx. Empty detects it from the file extension.
	Format string `yaml:"format,omitempty"`
	// Sheet selects the workbook sheet for xlsx input.
	Sheet string `yaml:"sheet,omitempty"`
	// Comma is the CSV delimiter; "tab" is accepted for '\t'.
	Comma string `yaml:"comma,omitempty"`
}

// Output describes how records are written.
type Output struct {
	// Format is json or yaml.
	Format string `yaml:"format,omitempty"`
	// Indent is the number of spaces per level; negative writes compact JSON.
	Indent int `yaml:"indent,omitempty"`
}

// Default returns a profile with every default applied.
func Default() *Profile {
	p := &Profile{}
	applyDefaults(p)

	return p
}

// Validate checks that every field holds a usable value.
func (p *Profile) Validate() error {
	var errs []error

	if p.Empty != "" && !p.Empty.IsValid() {
		errs = append(errs, fmt.Errorf("empty: %w %q", tree.ErrInvalidPolicy, p.Empty))
	}

	if p.Input.Format != "" {
		if _, err := table.ParseFormat(p.Input.Format); err != nil {
			errs = append(errs, fmt.Errorf("input.format: %w", err))
		}
	}

	if _, err := p.comma(); err != nil {
		errs = append(errs, fmt.Errorf("input.comma: %w", err))
	}

	if _, err := render.ParseFormat(p.Output.Format); err != nil {
		errs = append(errs, fmt.Errorf("output.format: %w", err))
	}

	return errors.Join(errs...)
}

// ShouldNormalize reports whether cells are converted to NFC.
func (p *Profile) ShouldNormalize() bool {
	return p.Normalize == nil || *p.Normalize
}

// ConvertOptions returns the conversion settings.
func (p *Profile) ConvertOptions() convert.Options {
	opts := convert.Options{
		Policy:       p.Empty,
		KeySeparator: p.KeySeparator,
	}

	if p.LegacyMarker != nil {
		opts.Header = []header.Option{header.WithLegacyMarker(*p.LegacyMarker)}
	}

	return opts
}

// TableOptions returns the input settings.
func (p *Profile) TableOptions() (table.Options, error) {
	var opts table.Options

	if p.Input.Format != "" {
		f, err := table.ParseFormat(p.Input.Format)
		if err != nil {
			return opts, err
		}

		opts.Format = f
	}

	comma, err := p.comma()
	if err != nil {
		return opts, err
	}

	opts.Sheet = p.Input.Sheet
	opts.Comma = comma

	return opts, nil
}

// RenderOptions returns the output settings.
func (p *Profile) RenderOptions() (render.Options, error) {
	f, err := render.ParseFormat(p.Output.Format)
	if err != nil {
		return render.Options{}, err
	}

	return render.Options{Format: f, Indent: p.Output.Indent}, nil
}

func (p *Profile) comma() (rune, error) {
	switch p.Input.Comma {
	case "":
		return 0, nil
	case "tab", `\t`:
		return '\t', nil
	}

	r, size := utf8.DecodeRuneInString(p.Input.Comma)
	if size != len(p.Input.Comma) || r == utf8.RuneError || r == '\n' || r == '\r' || r == '"' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidComma, p.Input.Comma)
	}

	return r, nil
}
