package table

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParsePaste(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Table
	}{
		{
			name:  "tabs and newlines",
			input: "name\tage\nHong\t30",
			expected: Table{
				{"name", "age"},
				{"Hong", "30"},
			},
		},
		{
			name:  "windows line endings and padding",
			input: "name\tage\r\n Hong \t 30 \r\n",
			expected: Table{
				{"name", "age"},
				{"Hong", "30"},
			},
		},
		{
			name:  "short rows are kept short",
			input: "a\tb\tc\n1",
			expected: Table{
				{"a", "b", "c"},
				{"1"},
			},
		},
		{
			name:     "empty input",
			input:    "",
			expected: Table{{""}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParsePaste(tt.input))
		})
	}
}

func TestTableAccessors(t *testing.T) {
	tbl := ParsePaste("a\tb\n1\t2\n3")

	assert.Equal(t, []string{"a", "b"}, tbl.Headers())
	assert.Len(t, tbl.DataRows(), 2)
	assert.True(t, tbl.HasData())
	assert.Equal(t, 2, tbl.Width())
	assert.Equal(t, "", Cell(tbl[2], 1))
	assert.Equal(t, "3", Cell(tbl[2], 0))

	var empty Table
	assert.Nil(t, empty.Headers())
	assert.False(t, empty.HasData())
}

func TestReadCSV(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader("name,tags[]\n\"Hong, G\",a\nKim\n"), 0)
	require.NoError(t, err)

	assert.Equal(t, Table{
		{"name", "tags[]"},
		{"Hong, G", "a"},
		{"Kim"},
	}, tbl)

	semi, err := ReadCSV(strings.NewReader("a;b\n1;2\n"), ';')
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, semi[1])
}

func TestReadXLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]string{"이름", "취미[]"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]string{"홍길동", "독서"}))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	tbl, err := ReadXLSX(bytes.NewReader(buf.Bytes()), "")
	require.NoError(t, err)

	assert.Equal(t, Table{
		{"이름", "취미[]"},
		{"홍길동", "독서"},
	}, tbl)

	_, err = ReadXLSX(bytes.NewReader(buf.Bytes()), "NoSuchSheet")
	assert.Error(t, err)
}

func TestRead(t *testing.T) {
	tbl, err := Read(strings.NewReader("a\tb\n1\t2\n"), Options{Format: FormatTSV})
	require.NoError(t, err)
	assert.Len(t, tbl, 2)

	_, err = Read(strings.NewReader(""), Options{Format: "ods"})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestFormats(t *testing.T) {
	assert.Equal(t, FormatCSV, DetectFormat("data.CSV"))
	assert.Equal(t, FormatXLSX, DetectFormat("book.xlsx"))
	assert.Equal(t, FormatTSV, DetectFormat("paste.txt"))

	f, err := ParseFormat("paste")
	require.NoError(t, err)
	assert.Equal(t, FormatTSV, f)

	_, err = ParseFormat("ods")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestNormalize(t *testing.T) {
	decomposed := "\u1112\u1161\u11ab" // 한 as jamo
	tbl := Normalize(Table{{decomposed}})

	assert.Equal(t, "\ud55c", tbl[0][0])
	assert.NotEqual(t, decomposed, tbl[0][0])
}
