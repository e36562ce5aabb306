// Package fs provides filesystem adapters: fingerprints, content reading and cache locations.
package fs

import (
	"os"

	"go.trai.ch/sectx/internal/core/domain"
	"go.trai.ch/sectx/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Fingerprinter = (*Fingerprinter)(nil)

// Fingerprinter derives fingerprints from file metadata only.
type Fingerprinter struct{}

// NewFingerprinter creates a new Fingerprinter.
func NewFingerprinter() *Fingerprinter {
	return &Fingerprinter{}
}

// Fingerprint returns the modification time (seconds) and size of path.
func (f *Fingerprinter) Fingerprint(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrFileStatFailed.Error()), "path", path)
	}
	return domain.Fingerprint(info.ModTime(), info.Size()), nil
}
