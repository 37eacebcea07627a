package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sheet2tree/internal/table"
)

func TestInspect(t *testing.T) {
	tests := []struct {
		name     string
		table    table.Table
		expected []string
	}{
		{
			name:     "clean table",
			table:    familyTable(),
			expected: []string{},
		},
		{
			name:     "no data",
			table:    table.Table{{"id"}},
			expected: []string{CodeNoData},
		},
		{
			name:     "empty and malformed headers",
			table:    table.ParsePaste("id\t\ttags[x]\ta..b\n1\t\t\t"),
			expected: []string{CodeEmptyHeader, CodeMalformedHeader, CodeMalformedHeader},
		},
		{
			name:     "duplicate plain header",
			table:    table.ParsePaste("id\tname\tname\n1\ta\tb"),
			expected: []string{CodeDuplicateHeader},
		},
		{
			name:     "repeated list headers are fine",
			table:    table.ParsePaste("id\tkids[]name\tkids[]name\n1\ta\tb"),
			expected: []string{},
		},
		{
			name:     "value and object share a key",
			table:    table.ParsePaste("id\taddress\taddress.city\n1\ta\tb"),
			expected: []string{CodeShapeConflict},
		},
		{
			name:     "no identity column",
			table:    table.ParsePaste("a.b\tc[]\n1\t2\n3\t4"),
			expected: []string{CodeNoIdentity},
		},
		{
			name:     "ragged rows",
			table:    table.ParsePaste("id\tname\n1\n2\tb\tc"),
			expected: []string{CodeLongRow, CodeShortRow},
		},
		{
			name:     "similar headers",
			table:    table.ParsePaste("id\tfamily[]name\tfamily[]nme\n1\ta\tb"),
			expected: []string{CodeSimilarHeader},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Inspect(tt.table, Options{})
			assert.Equal(t, tt.expected, d.Codes(), d.All())
			assert.True(t, d.IsValid())
		})
	}
}

func TestInspect_Suggestions(t *testing.T) {
	d := Inspect(table.ParsePaste("id\tfamily[]name\tfamily[]nme\ttags[x]\n1\ta\tb\tc"), Options{})

	all := d.All()
	require.Len(t, all, 2)

	assert.Equal(t, CodeMalformedHeader, all[0].Code)
	assert.Equal(t, []string{"tags.x"}, all[0].Suggestions)

	assert.Equal(t, CodeSimilarHeader, all[1].Code)
	assert.Equal(t, "family[].nme", all[1].Header)
	assert.Equal(t, []string{"family[].name"}, all[1].Suggestions)
}

func TestInspect_EmptyTable(t *testing.T) {
	d := Inspect(nil, Options{})

	assert.Equal(t, []string{CodeNoData}, d.Codes())
}
