package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/juju/errors"
)

// FormatError reports a dictionary line without a canonical form field.
type FormatError struct {
	Source string
	Line   int
	Text   string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("dictionary %s:%d: no entry field in line %q", e.Source, e.Line, e.Text)
}

// Unwrap lets callers match the error with errors.Is(err, errors.NotValid).
func (e *FormatError) Unwrap() error {
	return errors.NotValid
}

// ReadEntries returns the first whitespace-delimited field of every line in r.
// A line without any field is a *FormatError; source names r in the error.
func ReadEntries(r io.Reader, source string) ([]string, error) {
	var entries []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		fields := strings.Fields(line)
		if len(fields) == 0 {
			return nil, &FormatError{Source: source, Line: lineNo, Text: line}
		}
		entries = append(entries, fields[0])
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Annotatef(err, "read dictionary %s", source)
	}
	return entries, nil
}

// readAll loads the entries of every named resource. Missing resources are
// an error unless optional is set, in which case they are skipped.
func readAll(loader ResourceLoader, names []string, optional bool) ([]string, error) {
	var all []string
	for _, name := range names {
		rc, err := loader.Open(name)
		if err != nil {
			if optional && errors.Is(err, fs.ErrNotExist) {
				log.Debugf("Optional dictionary %s not found, skipping", name)
				continue
			}
			return nil, errors.Annotatef(err, "open dictionary %s", name)
		}
		entries, err := ReadEntries(rc, name)
		rc.Close()
		if err != nil {
			return nil, err
		}
		log.Debugf("Loaded %d entries from %s", len(entries), name)
		all = append(all, entries...)
	}
	return all, nil
}
