package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTOMLWithRecovery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eomi.toml")
	content := `
[extractor]
min_eojeol_count = 3
min_r_score = 1
scorer = "support_ratio"
verbose = false

[dict]
root_files = ["Root/Verb.txt", 7]
noun_files = ["nouns.txt"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	data, err := ParseTOMLWithRecovery(path)
	require.NoError(t, err)

	extractor, ok := ExtractSection(data, "extractor")
	require.True(t, ok)

	n, ok := ExtractInt64(extractor, "min_eojeol_count")
	assert.True(t, ok)
	assert.Equal(t, 3, n)

	f, ok := ExtractFloat64(extractor, "min_r_score")
	assert.True(t, ok)
	assert.Equal(t, 1.0, f)

	s, ok := ExtractString(extractor, "scorer")
	assert.True(t, ok)
	assert.Equal(t, "support_ratio", s)

	b, ok := ExtractBool(extractor, "verbose")
	assert.True(t, ok)
	assert.False(t, b)

	dict, ok := ExtractSection(data, "dict")
	require.True(t, ok)
	_, ok = ExtractStrings(dict, "root_files")
	assert.False(t, ok)
	nouns, ok := ExtractStrings(dict, "noun_files")
	assert.True(t, ok)
	assert.Equal(t, []string{"nouns.txt"}, nouns)

	_, ok = ExtractSection(data, "server")
	assert.False(t, ok)
}
