package profile

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sheet2tree/internal/convert"
	"sheet2tree/internal/render"
	"sheet2tree/internal/table"
	"sheet2tree/internal/tree"
)

func TestParse(t *testing.T) {
	yaml := `
version: "1"
empty: omit
legacy_marker: LIST
key_separator: "|"
normalize: false
input:
  format: csv
  comma: ";"
output:
  format: yaml
  indent: 4
`

	p, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.NotNil(t, p)

	assert.Equal(t, "1", p.Version)
	assert.Equal(t, tree.PolicyOmit, p.Empty)
	require.NotNil(t, p.LegacyMarker)
	assert.Equal(t, "LIST", *p.LegacyMarker)
	assert.Equal(t, "|", p.KeySeparator)
	assert.False(t, p.ShouldNormalize())

	in, err := p.TableOptions()
	require.NoError(t, err)
	assert.Equal(t, table.Options{Format: table.FormatCSV, Comma: ';'}, in)

	out, err := p.RenderOptions()
	require.NoError(t, err)
	assert.Equal(t, render.Options{Format: render.FormatYAML, Indent: 4}, out)
}

func TestParse_Defaults(t *testing.T) {
	p, err := Parse([]byte(``))
	require.NoError(t, err)

	assert.Equal(t, "1", p.Version)
	assert.Equal(t, tree.PolicyNull, p.Empty)
	require.NotNil(t, p.LegacyMarker)
	assert.Equal(t, "XX", *p.LegacyMarker)
	assert.True(t, p.ShouldNormalize())
	assert.Equal(t, "json", p.Output.Format)
	assert.Equal(t, render.DefaultIndent, p.Output.Indent)

	assert.Equal(t, Default(), p)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "bad policy", yaml: "empty: blank"},
		{name: "bad input format", yaml: "input:\n  format: ods"},
		{name: "bad output format", yaml: "output:\n  format: xml"},
		{name: "long comma", yaml: "input:\n  comma: ';;'"},
		{name: "not yaml", yaml: "empty: [omit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestValidate_ReportsEveryField(t *testing.T) {
	p := Default()
	p.Empty = "blank"
	p.Input.Comma = "ab"

	err := p.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, tree.ErrInvalidPolicy)
	assert.ErrorIs(t, err, ErrInvalidComma)
}

func TestComma(t *testing.T) {
	tests := []struct {
		input    string
		expected rune
	}{
		{input: "", expected: 0},
		{input: ";", expected: ';'},
		{input: "tab", expected: '\t'},
		{input: `\t`, expected: '\t'},
		{input: "、", expected: '、'},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p := &Profile{Input: Input{Comma: tt.input}}

			r, err := p.comma()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, r)
		})
	}
}

func TestConvertOptions_LegacyMarker(t *testing.T) {
	tbl := table.ParsePaste("id\tXX.name\n1\ta\n1\tb")

	p, err := Parse([]byte(``))
	require.NoError(t, err)

	records, ok := convert.Convert(tbl, p.ConvertOptions())
	require.True(t, ok)
	assert.Equal(t, "XX", records[0].Keys()[1])
	v, _ := records[0].Get("XX")
	assert.Equal(t, tree.KindList, v.Kind())

	p, err = Parse([]byte(`legacy_marker: ""`))
	require.NoError(t, err)

	records, ok = convert.Convert(tbl, p.ConvertOptions())
	require.True(t, ok)
	v, _ = records[0].Get("XX")
	assert.Equal(t, tree.KindRecord, v.Kind())
}

func TestWriteFile_RoundTrip(t *testing.T) {
	p := Default()
	p.Empty = tree.PolicyEmpty
	p.Input.Sheet = "Data"

	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, WriteFile(p, path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, p, loaded)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
