package orgdoc

import (
	"os"
	"path/filepath"

	"go.trai.ch/sectx/internal/core/domain"
	"go.trai.ch/sectx/internal/core/ports"
	"go.trai.ch/zerr"
)

// Loader reads outline documents from disk.
type Loader struct{}

// NewLoader creates a Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and parses the document at path.
func (l *Loader) Load(path string) (ports.Document, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDocumentReadFailed.Error()), "path", path)
	}
	//nolint:gosec // G304: abs is the document named on the command line
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDocumentReadFailed.Error()), "path", abs)
	}
	return Parse(abs, string(data)), nil
}
