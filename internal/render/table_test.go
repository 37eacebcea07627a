package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sheet2tree/internal/table"
)

func TestTable_AlignsWideCharacters(t *testing.T) {
	tbl := table.Table{
		{"id", "이름"},
		{"1", "홍길동"},
		{"22", "김"},
	}

	var buf bytes.Buffer
	require.NoError(t, Table(&buf, tbl, TableOptions{}))

	assert.Equal(t, ""+
		"id | 이름\n"+
		"-- | ------\n"+
		"1  | 홍길동\n"+
		"22 | 김\n", buf.String())
}

func TestTable_MaxRows(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Table(&buf, table.ParsePaste("a\n1\n2\n3"), TableOptions{MaxRows: 2}))

	assert.Equal(t, "a\n-\n1\n2\n... 1 more row(s)\n", buf.String())
}

func TestTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Table(&buf, nil, TableOptions{}))

	assert.Equal(t, "(empty)\n", buf.String())
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input    string
		max      int
		expected string
	}{
		{input: "abcdefgh", max: 0, expected: "abcdefgh"},
		{input: "abc", max: 6, expected: "abc"},
		{input: "abcdefgh", max: 6, expected: "abc..."},
		{input: "abcdef", max: 3, expected: "abc"},
		{input: "홍길동전", max: 5, expected: "홍..."},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, truncate(tt.input, tt.max))
		})
	}
}
