package fs_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sectx/internal/adapters/fs"
	"go.trai.ch/sectx/internal/core/domain"
)

func TestFingerprinter_Fingerprint(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("content"), 0o600))

	mtime := time.Unix(1700000000, 0)
	require.NoError(t, os.Chtimes(file, mtime, mtime))

	f := fs.NewFingerprinter()

	t.Run("metadata", func(t *testing.T) {
		got, err := f.Fingerprint(file)
		require.NoError(t, err)
		assert.Equal(t, "1700000000-7", got)
	})

	t.Run("size change", func(t *testing.T) {
		before, err := f.Fingerprint(file)
		require.NoError(t, err)

		require.NoError(t, os.WriteFile(file, []byte("content, longer"), 0o600))
		require.NoError(t, os.Chtimes(file, mtime, mtime))

		after, err := f.Fingerprint(file)
		require.NoError(t, err)
		assert.NotEqual(t, before, after)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := f.Fingerprint(filepath.Join(tmpDir, "missing"))
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrFileStatFailed.Error())
	})
}

func TestReader_ReadText(t *testing.T) {
	tmpDir := t.TempDir()

	text := filepath.Join(tmpDir, "text.txt")
	require.NoError(t, os.WriteFile(text, []byte("hello\nworld\n"), 0o600))

	binary := filepath.Join(tmpDir, "image.bin")
	require.NoError(t, os.WriteFile(binary, []byte{0x89, 'P', 'N', 'G', 0x00, 0x01}, 0o600))

	lateNull := filepath.Join(tmpDir, "late.txt")
	require.NoError(t, os.WriteFile(lateNull, []byte(strings.Repeat("a", 32)+"\x00"), 0o600))

	r := fs.NewReader(16)

	got, err := r.ReadText(text)
	require.NoError(t, err)
	assert.Equal(t, "hello\nworld\n", got)

	_, err = r.ReadText(binary)
	require.ErrorIs(t, err, domain.ErrBinaryFile)

	// A null byte past the probe window is not detected.
	got, err = r.ReadText(lateNull)
	require.NoError(t, err)
	assert.Len(t, got, 33)

	_, err = r.ReadText(filepath.Join(tmpDir, "missing"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrFileReadFailed.Error())
}

func TestReader_ReadText_BinaryWindow(t *testing.T) {
	tmpDir := t.TempDir()
	empty := filepath.Join(tmpDir, "empty")
	require.NoError(t, os.WriteFile(empty, nil, 0o600))
	lateNull := filepath.Join(tmpDir, "late")
	require.NoError(t, os.WriteFile(lateNull, []byte{'a', 'b', 'c', 'd', 0}, 0o600))

	text, err := fs.NewReader(0).ReadText(empty)
	require.NoError(t, err)
	assert.Empty(t, text)

	text, err = fs.NewReader(4).ReadText(lateNull)
	require.NoError(t, err)
	assert.Equal(t, "abcd\x00", text)

	_, err = fs.NewReader(5).ReadText(lateNull)
	require.ErrorIs(t, err, domain.ErrBinaryFile)
}

func TestLocator_Locate(t *testing.T) {
	assert.Equal(t, filepath.Join("/notes", "work.ctx.org"), fs.NewLocator("", "").Locate("/notes/work.org"))
	assert.Equal(t, filepath.Join("/cache", "work.c.org"), fs.NewLocator(".c.org", "/cache").Locate("/notes/work.org"))
}
