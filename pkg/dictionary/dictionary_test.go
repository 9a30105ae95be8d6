package dictionary

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadEntries(t *testing.T) {
	entries, err := ReadEntries(strings.NewReader("먹\tVerb\n예쁘 Adjective 12\n  가\n"), "roots")
	require.NoError(t, err)
	assert.Equal(t, []string{"먹", "예쁘", "가"}, entries)

	entries, err = ReadEntries(strings.NewReader(""), "empty")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestReadEntriesMalformed(t *testing.T) {
	_, err := ReadEntries(strings.NewReader("먹\n   \n가\n"), "Verb.txt")
	require.Error(t, err)

	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, "Verb.txt", formatErr.Source)
	assert.Equal(t, 2, formatErr.Line)
	assert.True(t, errors.Is(err, errors.NotValid))
}

func TestNounSetContainsNoun(t *testing.T) {
	nouns := NewNounSet("나", "밥", "학교", "대학교", "")
	assert.Equal(t, 4, nouns.Len())
	assert.False(t, nouns.Add("밥"))

	tests := []struct {
		token string
		want  bool
	}{
		// single rune noun prefixes are never checked
		{"나는", false},
		{"밥을", false},
		{"학교에", true},
		{"학교", true},
		{"대학교를", true},
		{"먹었다", false},
		// prefix only, not interior
		{"큰학교", false},
		{"학", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, nouns.ContainsNoun(tt.token))
		})
	}
}

func TestRoots(t *testing.T) {
	roots := NewRoots([]string{"먹", "예쁘"}, []string{"하"})
	assert.True(t, roots.IsRoot("먹"))
	assert.False(t, roots.IsRoot("먹었"))

	assert.True(t, roots.IsComposable("덕질하"))
	assert.True(t, roots.IsComposable("하"))
	assert.False(t, roots.IsComposable("덕질"))
	assert.False(t, roots.IsComposable("하기"))

	empty := NewRoots(nil, nil)
	assert.False(t, empty.IsComposable("덕질하"))
}

func TestLoadFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"noun_pos_features.txt": {Data: []byte("나 NNP\n밥 NNG\n")},
		"Root/Adjective.txt":    {Data: []byte("예쁘\n")},
		"Root/Verb.txt":         {Data: []byte("먹\n가\n")},
	}
	loader := FSLoader{FS: fsys}
	paths := DefaultPaths()

	nouns, err := LoadNouns(loader, paths.Nouns...)
	require.NoError(t, err)
	assert.True(t, nouns.Contains("밥"))

	// Composable.txt is missing and optional
	roots, err := LoadRoots(loader, paths)
	require.NoError(t, err)
	assert.Equal(t, 3, roots.Full.Cardinality())
	assert.Equal(t, 0, roots.Composable.Cardinality())

	_, err = LoadRoots(loader, Paths{Roots: []string{"Root/Missing.txt"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestDirLoader(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "Root"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Root", "Verb.txt"), []byte("먹\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Root", "Verb.bin"), []byte{1, 2}, 0644))

	loader := NewDirLoader(dir)
	roots, err := LoadRoots(loader, Paths{Roots: []string{"Root/Verb.txt"}, Composable: []string{"Root/Composable.txt"}})
	require.NoError(t, err)
	assert.True(t, roots.IsRoot("먹"))

	_, err = loader.Open("Root/Verb.bin")
	assert.True(t, errors.Is(err, errors.NotValid))

	_, err = loader.Open("Root")
	assert.Error(t, err)
}
