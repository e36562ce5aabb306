package cachefile

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/natefinch/atomic"
	"go.trai.ch/sectx/internal/core/domain"
	"go.trai.ch/sectx/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.EntryStore = (*Store)(nil)

// Store is the cache resource for one source document.
type Store struct {
	path   string
	logger ports.Logger

	mu    sync.Mutex
	index *index
}

// NewStore creates a store backed by the resource at path. Nothing is
// touched on disk until the first write.
func NewStore(path string, logger ports.Logger) *Store {
	return &Store{path: path, logger: logger}
}

// Path returns the resource location.
func (s *Store) Path() string {
	return s.path
}

// Ensure creates the resource with its header if it does not exist yet.
func (s *Store) Ensure() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ensure()
}

func (s *Store) ensure() error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()), "path", s.path)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()), "path", s.path)
	}
	return s.commit([]byte(Header))
}

// Find returns the entry stored under id. A non-empty variant must match the
// stored variant. A missing resource or entry yields nil without error, and
// so does an entry that cannot be decoded.
func (s *Store) Find(id string, variant domain.Variant) (*domain.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ix, err := s.load()
	if err != nil {
		return nil, err
	}
	sp, ok := ix.lookup(id, variant)
	if !ok {
		return nil, nil
	}
	return s.decode(data, sp), nil
}

// Write replaces the span carrying the entry's id in place, or appends a
// new span separated from existing content by one blank line. The id already
// encodes the variant, so a span with a damaged variant line is replaced too.
func (s *Store) Write(entry *domain.Entry) error {
	encoded, err := Encode(entry)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensure(); err != nil {
		return err
	}
	data, ix, err := s.load()
	if err != nil {
		return err
	}

	var out []byte
	if sp, ok := ix.lookup(entry.ID, domain.VariantAny); ok {
		out = make([]byte, 0, len(data)-(sp.end-sp.start)+len(encoded))
		out = append(out, data[:sp.start]...)
		out = append(out, encoded...)
		out = append(out, data[sp.end:]...)
	} else {
		out = bytes.TrimRight(data, "\n")
		out = append(out[:len(out):len(out)], "\n\n"...)
		out = append(out, encoded...)
	}
	return s.commit(out)
}

// Delete removes the matching span. Deleting a missing entry is a no-op.
func (s *Store) Delete(id string, variant domain.Variant) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ix, err := s.load()
	if err != nil {
		return err
	}
	sp, ok := ix.lookup(id, variant)
	if !ok {
		return nil
	}

	before := bytes.TrimRight(data[:sp.start], "\n")
	after := bytes.TrimLeft(data[sp.end:], "\n")
	out := append(before[:len(before):len(before)], '\n')
	if len(after) > 0 {
		out = append(out, '\n')
		out = append(out, after...)
	}
	return s.commit(out)
}

// List decodes every well-formed entry in resource order.
func (s *Store) List() ([]*domain.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ix, err := s.load()
	if err != nil {
		return nil, err
	}
	entries := make([]*domain.Entry, 0, len(ix.spans))
	for _, sp := range ix.spans {
		if e := s.decode(data, sp); e != nil {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

// Digest returns the xxhash of the resource bytes, or an empty string when
// the resource does not exist.
func (s *Store) Digest() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ix, err := s.load()
	if err != nil || data == nil {
		return "", err
	}
	return fmt.Sprintf("%016x", ix.digest), nil
}

// load reads the resource and returns its span index, reusing the cached
// index while the content digest is unchanged.
func (s *Store) load() ([]byte, *index, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &index{}, nil
	}
	if err != nil {
		return nil, nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", s.path)
	}

	digest := xxhash.Sum64(data)
	if s.index == nil || s.index.digest != digest {
		s.index = scan(data, digest)
	}
	return data, s.index, nil
}

func (s *Store) decode(data []byte, sp span) *domain.Entry {
	if !sp.complete {
		s.warnMalformed(sp, zerr.With(domain.ErrEntryMalformed, "reason", "unterminated entry"))
		return nil
	}
	entry, err := Decode(data[sp.start:sp.end])
	if err != nil {
		s.warnMalformed(sp, err)
		return nil
	}
	return entry
}

func (s *Store) warnMalformed(sp span, err error) {
	if s.logger == nil {
		return
	}
	s.logger.Warn(fmt.Sprintf("skipping cache entry %s in %s: %v", sp.id, s.path, err))
}

func (s *Store) commit(data []byte) error {
	if err := atomic.WriteFile(s.path, bytes.NewReader(data)); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", s.path)
	}
	// atomic.WriteFile keeps the mode of an existing target but creates new
	// ones from a private temp file.
	if err := os.Chmod(s.path, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", s.path)
	}
	s.index = scan(data, xxhash.Sum64(data))
	return nil
}
