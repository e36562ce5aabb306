package fs

import (
	"bytes"
	"io"
	"os"

	"go.trai.ch/sectx/internal/core/domain"
	"go.trai.ch/sectx/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ContentReader = (*Reader)(nil)

// Reader reads linked files, refusing ones that look binary.
type Reader struct {
	probe int
}

// NewReader creates a Reader that scans the first probeBytes bytes for a null byte.
func NewReader(probeBytes int) *Reader {
	if probeBytes <= 0 {
		probeBytes = domain.DefaultBinaryProbeBytes
	}
	return &Reader{probe: probeBytes}
}

// ReadText returns the content of path as text.
func (r *Reader) ReadText(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // Path comes from the user's own document
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Read-only file

	data, err := io.ReadAll(f)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "path", path)
	}

	window := data
	if len(window) > r.probe {
		window = window[:r.probe]
	}
	if bytes.IndexByte(window, 0) >= 0 {
		return "", domain.ErrBinaryFile
	}
	return string(data), nil
}
