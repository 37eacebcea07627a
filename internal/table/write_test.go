package table

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWritePaste_RoundTrip(t *testing.T) {
	tbl := Table{
		{"id", "tags[]"},
		{"1", "a"},
		{"", "b"},
	}

	var buf bytes.Buffer
	require.NoError(t, WritePaste(&buf, tbl))

	assert.Equal(t, "id\ttags[]\n1\ta\n\tb\n", buf.String())
	assert.Equal(t, tbl, ParsePaste(buf.String()))
}

func TestWritePaste_FlattensCellBreaks(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePaste(&buf, Table{{"note"}, {"a\tb\nc"}}))

	assert.Equal(t, "note\na b c\n", buf.String())
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, Table{{"name", "city"}, {"Hong, Gildong", "Seoul"}}, 0))

	assert.Equal(t, "name,city\n\"Hong, Gildong\",Seoul\n", buf.String())

	back, err := ReadCSV(&buf, 0)
	require.NoError(t, err)
	assert.Equal(t, Table{{"name", "city"}, {"Hong, Gildong", "Seoul"}}, back)
}

func TestWrite_Unsupported(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, Write(&buf, Table{{"a"}}, Options{Format: FormatXLSX}), ErrUnsupportedFormat)
}
