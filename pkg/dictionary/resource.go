package dictionary

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/juju/errors"
)

// ResourceLoader opens named dictionary resources.
// Implementations must return an error matching fs.ErrNotExist for missing resources.
type ResourceLoader interface {
	Open(name string) (io.ReadCloser, error)
}

// DirLoader reads dictionaries from a directory on disk.
type DirLoader struct {
	Dir string
}

// NewDirLoader creates a loader rooted at dir.
func NewDirLoader(dir string) *DirLoader {
	return &DirLoader{Dir: dir}
}

// Open validates and opens Dir/name.
func (l *DirLoader) Open(name string) (io.ReadCloser, error) {
	path := filepath.Join(l.Dir, filepath.FromSlash(name))
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	if err := ValidateFileFormat(path, FormatText); err != nil {
		return nil, errors.Trace(err)
	}
	return os.Open(path)
}

// FSLoader reads dictionaries from an fs.FS such as an embed.FS.
type FSLoader struct {
	FS fs.FS
}

// Open opens name inside the file system.
func (l FSLoader) Open(name string) (io.ReadCloser, error) {
	return l.FS.Open(name)
}
