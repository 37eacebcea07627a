package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sheet2tree/internal/tree"
)

func lookupMap(env map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestApplyEnv(t *testing.T) {
	p := Default()

	err := p.ApplyEnv(lookupMap(map[string]string{
		"SHEET2TREE_EMPTY":         "omit",
		"SHEET2TREE_LEGACY_MARKER": "",
		"SHEET2TREE_KEY_SEPARATOR": "/",
		"SHEET2TREE_NORMALIZE":     "false",
		"SHEET2TREE_INPUT":         "xlsx",
		"SHEET2TREE_SHEET":         "Sheet2",
		"SHEET2TREE_FORMAT":        "yaml",
		"SHEET2TREE_INDENT":        "4",
	}))
	require.NoError(t, err)

	assert.Equal(t, tree.PolicyOmit, p.Empty)
	require.NotNil(t, p.LegacyMarker)
	assert.Empty(t, *p.LegacyMarker)
	assert.Equal(t, "/", p.KeySeparator)
	assert.False(t, p.ShouldNormalize())
	assert.Equal(t, "xlsx", p.Input.Format)
	assert.Equal(t, "Sheet2", p.Input.Sheet)
	assert.Equal(t, "yaml", p.Output.Format)
	assert.Equal(t, 4, p.Output.Indent)
}

func TestApplyEnv_EmptyMeansUnset(t *testing.T) {
	p := Default()

	require.NoError(t, p.ApplyEnv(lookupMap(map[string]string{
		"SHEET2TREE_EMPTY":  "",
		"SHEET2TREE_FORMAT": "",
	})))

	assert.Equal(t, Default(), p)
}

func TestApplyEnv_Errors(t *testing.T) {
	tests := map[string]map[string]string{
		"policy":    {"SHEET2TREE_EMPTY": "blank"},
		"normalize": {"SHEET2TREE_NORMALIZE": "maybe"},
		"indent":    {"SHEET2TREE_INDENT": "two"},
		"format":    {"SHEET2TREE_FORMAT": "xml"},
	}

	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, Default().ApplyEnv(lookupMap(env)))
		})
	}
}
