package dictionary

import (
	"unicode/utf8"

	"github.com/juju/errors"
	"github.com/tchap/go-patricia/v2/patricia"
)

// minNounPrefix is the shortest token prefix checked against the noun set.
const minNounPrefix = 2

var errNounFound = errors.New("noun prefix found")

// NounSet holds canonical noun forms in a patricia trie so that all noun
// prefixes of a token are found in one walk.
type NounSet struct {
	trie *patricia.Trie
	size int
}

// NewNounSet creates a set holding nouns. Empty strings are ignored.
func NewNounSet(nouns ...string) *NounSet {
	s := &NounSet{trie: patricia.NewTrie()}
	for _, n := range nouns {
		s.Add(n)
	}
	return s
}

// LoadNouns reads every named resource into a new NounSet.
func LoadNouns(loader ResourceLoader, names ...string) (*NounSet, error) {
	entries, err := readAll(loader, names, false)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return NewNounSet(entries...), nil
}

// Add inserts noun and reports whether it was new.
func (s *NounSet) Add(noun string) bool {
	if noun == "" {
		return false
	}
	if s.trie.Insert(patricia.Prefix(noun), struct{}{}) {
		s.size++
		return true
	}
	return false
}

// Contains reports whether noun is in the set.
func (s *NounSet) Contains(noun string) bool {
	return noun != "" && s.trie.Get(patricia.Prefix(noun)) != nil
}

// Len returns the number of nouns.
func (s *NounSet) Len() int { return s.size }

// ContainsNoun reports whether token[0:e] is a noun for some e in [2, len(token)],
// lengths counted in runes. Only prefixes are checked.
func (s *NounSet) ContainsNoun(token string) bool {
	if utf8.RuneCountInString(token) < minNounPrefix {
		return false
	}
	found := false
	_ = s.trie.VisitPrefixes(patricia.Prefix(token), func(p patricia.Prefix, _ patricia.Item) error {
		if utf8.RuneCount(p) >= minNounPrefix {
			found = true
			return errNounFound
		}
		return nil
	})
	return found || s.Contains(token)
}
