package dictionary

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/juju/errors"
)

// FileFormat represents the dictionary file formats the loaders accept
type FileFormat int

const (
	FormatUnknown FileFormat = iota
	FormatText               // one entry per line, canonical form first
)

// FormatInfo contains metadata about a dictionary file format
type FormatInfo struct {
	Format      FileFormat
	Description string
	Extensions  []string
}

var supportedFormats = map[FileFormat]FormatInfo{
	FormatText: {
		Format:      FormatText,
		Description: "Plain Text Dictionary",
		Extensions:  []string{".txt", ""},
	},
}

// ValidateFileFormat checks that filename exists, is a regular file and
// carries an extension of the expected format.
func ValidateFileFormat(filename string, expectedFormat FileFormat) error {
	fileInfo, err := os.Stat(filename)
	if err != nil {
		return errors.Annotatef(err, "stat dictionary %s", filename)
	}
	if fileInfo.IsDir() {
		return errors.NotValidf("dictionary %s is a directory", filename)
	}

	formatInfo, exists := supportedFormats[expectedFormat]
	if !exists {
		return errors.NotSupportedf("dictionary format %v", expectedFormat)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	for _, validExtension := range formatInfo.Extensions {
		if ext == validExtension {
			log.Debugf("Dictionary file %s validated as %s (%d bytes)", filename, formatInfo.Description, fileInfo.Size())
			return nil
		}
	}
	return errors.NotValidf("dictionary %s has extension %q for format %s (expected: %v)",
		filename, ext, formatInfo.Description, formatInfo.Extensions)
}
