// Package dictionary loads the noun and predicate root dictionaries used by
// the ending extractor. Dictionaries are plain text with one entry per line;
// the first whitespace-delimited field is the canonical form.
package dictionary

import (
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/juju/errors"
)

// Paths names the dictionary resources, relative to a ResourceLoader.
type Paths struct {
	Nouns      []string `toml:"noun_files"`
	Roots      []string `toml:"root_files"`
	Composable []string `toml:"composable_files"`
}

// DefaultPaths returns the resource names of the bundled dictionary layout.
func DefaultPaths() Paths {
	return Paths{
		Nouns:      []string{"noun_pos_features.txt"},
		Roots:      []string{"Root/Adjective.txt", "Root/Verb.txt"},
		Composable: []string{"Root/Composable.txt"},
	}
}

// Roots holds predicate root canonical forms. Composable roots attach to an
// arbitrary preceding word, as 하 does in 덕질+하다.
type Roots struct {
	Full       mapset.Set[string]
	Composable mapset.Set[string]
}

// NewRoots creates a root dictionary from word lists.
func NewRoots(full, composable []string) *Roots {
	return &Roots{
		Full:       mapset.NewThreadUnsafeSet(full...),
		Composable: mapset.NewThreadUnsafeSet(composable...),
	}
}

// LoadRoots reads the root and composable root resources. Composable
// resources are optional.
func LoadRoots(loader ResourceLoader, paths Paths) (*Roots, error) {
	full, err := readAll(loader, paths.Roots, false)
	if err != nil {
		return nil, errors.Trace(err)
	}
	composable, err := readAll(loader, paths.Composable, true)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return NewRoots(full, composable), nil
}

// IsRoot reports whether l is a registered root.
func (r *Roots) IsRoot(l string) bool {
	return r.Full.Contains(l)
}

// IsComposable reports whether l is a composable root, alone or preceded by
// any other word.
func (r *Roots) IsComposable(l string) bool {
	if r.Composable.Cardinality() == 0 {
		return false
	}
	runes := []rune(l)
	for i := 0; i < len(runes); i++ {
		if r.Composable.Contains(string(runes[i:])) {
			return true
		}
	}
	return false
}
