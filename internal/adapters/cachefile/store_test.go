package cachefile_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sectx/internal/adapters/cachefile"
	"go.trai.ch/sectx/internal/core/domain"
	"go.trai.ch/sectx/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newStore(t *testing.T) (*cachefile.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "notes.org.ctx.org")
	return cachefile.NewStore(path, nil), path
}

func TestStore_EnsureCreatesHeaderOnce(t *testing.T) {
	t.Parallel()

	store, path := newStore(t)
	require.NoError(t, store.Ensure())
	require.NoError(t, store.Ensure())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, cachefile.Header, string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(domain.FilePerm), info.Mode().Perm())
}

func TestStore_FindMissing(t *testing.T) {
	t.Parallel()

	store, _ := newStore(t)

	got, err := store.Find("nope", domain.VariantAny)
	require.NoError(t, err)
	assert.Nil(t, got)

	digest, err := store.Digest()
	require.NoError(t, err)
	assert.Empty(t, digest)
}

func TestStore_WriteFind(t *testing.T) {
	t.Parallel()

	store, _ := newStore(t)
	path := domain.HeadingPath{"Project", "Design"}
	files := domain.NewEntry(path, domain.VariantFiles, map[string]string{"/a": "1-1"}, "raw")
	summary := domain.NewEntry(path, domain.VariantSummary, map[string]string{"/a": "1-1"}, "short")

	require.NoError(t, store.Write(files))
	require.NoError(t, store.Write(summary))

	got, err := store.Find(files.ID, domain.VariantFiles)
	require.NoError(t, err)
	assert.Equal(t, files, got)

	got, err = store.Find(summary.ID, domain.VariantAny)
	require.NoError(t, err)
	assert.Equal(t, summary, got)

	got, err = store.Find(files.ID, domain.VariantSummary)
	require.NoError(t, err)
	assert.Nil(t, got, "variant filter must reject a mismatched span")
}

func TestStore_WriteReplacesInPlace(t *testing.T) {
	t.Parallel()

	store, path := newStore(t)
	first := domain.NewEntry(domain.HeadingPath{"A"}, domain.VariantFiles, nil, "one")
	second := domain.NewEntry(domain.HeadingPath{"B"}, domain.VariantFiles, nil, "two")
	require.NoError(t, store.Write(first))
	require.NoError(t, store.Write(second))

	updated := domain.NewEntry(domain.HeadingPath{"A"}, domain.VariantFiles, map[string]string{"/x": "9-9"}, "one, longer\nand multi-line")
	require.NoError(t, store.Write(updated))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)

	assert.Equal(t, 1, strings.Count(text, "#+CTX_ID: "+first.ID))
	assert.Less(t, strings.Index(text, first.ID), strings.Index(text, second.ID), "replaced entry keeps its position")
	assert.NotContains(t, text, "\n\n\n")

	entries, err := store.List()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, updated, entries[0])
	assert.Equal(t, second, entries[1])
}

func TestStore_AppendSeparation(t *testing.T) {
	t.Parallel()

	store, path := newStore(t)
	require.NoError(t, store.Ensure())

	// Hand edits may leave extra blank lines at the end of the resource.
	require.NoError(t, os.WriteFile(path, []byte(cachefile.Header+"\n\n\n"), domain.FilePerm))

	entry := domain.NewEntry(domain.HeadingPath{"A"}, domain.VariantFiles, nil, "body")
	require.NoError(t, store.Write(entry))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	encoded, err := cachefile.Encode(entry)
	require.NoError(t, err)
	assert.Equal(t, cachefile.Header+"\n"+string(encoded), string(data))
}

func TestStore_Delete(t *testing.T) {
	t.Parallel()

	store, path := newStore(t)
	a := domain.NewEntry(domain.HeadingPath{"A"}, domain.VariantFiles, nil, "a")
	b := domain.NewEntry(domain.HeadingPath{"B"}, domain.VariantSummary, nil, "b")
	c := domain.NewEntry(domain.HeadingPath{"C"}, domain.VariantFiles, nil, "c")
	for _, e := range []*domain.Entry{a, b, c} {
		require.NoError(t, store.Write(e))
	}

	require.NoError(t, store.Delete(b.ID, domain.VariantSummary))
	require.NoError(t, store.Delete(b.ID, domain.VariantSummary), "deleting twice is a no-op")
	require.NoError(t, store.Delete(a.ID, domain.VariantSummary), "variant mismatch leaves the entry")

	entries, err := store.List()
	require.NoError(t, err)
	assert.Equal(t, []*domain.Entry{a, c}, entries)

	require.NoError(t, store.Delete(c.ID, domain.VariantAny))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	encodedA, err := cachefile.Encode(a)
	require.NoError(t, err)
	assert.Equal(t, cachefile.Header+"\n"+string(encodedA), string(data))
}

func TestStore_MalformedEntryIsSkipped(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Warn(gomock.Any()).MinTimes(1)

	path := filepath.Join(t.TempDir(), "doc.ctx.org")
	store := cachefile.NewStore(path, logger)

	good := domain.NewEntry(domain.HeadingPath{"Good"}, domain.VariantFiles, nil, "ok")
	encoded, err := cachefile.Encode(good)
	require.NoError(t, err)

	broken := "#+CTX_ID: broken\n#+CTX_VARIANT: files\n#+CTX_PATH: [\"Broken\"]\n* Broken\n#+BEGIN_CTX_CONTENT\n"
	content := cachefile.Header + "\n" + broken + "\n" + string(encoded)
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))

	got, err := store.Find("broken", domain.VariantFiles)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = store.Find(good.ID, domain.VariantFiles)
	require.NoError(t, err)
	assert.Equal(t, good, got)

	entries, err := store.List()
	require.NoError(t, err)
	assert.Equal(t, []*domain.Entry{good}, entries)
}

func TestStore_WriteReplacesEntryWithDamagedVariant(t *testing.T) {
	t.Parallel()

	store, path := newStore(t)
	heading := domain.HeadingPath{"Project", "Design"}
	first := domain.NewEntry(heading, domain.VariantFiles, map[string]string{"/a": "1-1"}, "v1")
	require.NoError(t, store.Write(first))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	damaged := strings.Replace(string(data), "#+CTX_VARIANT: files", "#+CTX_VARIANT: filez", 1)
	require.NoError(t, os.WriteFile(path, []byte(damaged), domain.FilePerm))

	got, err := store.Find(first.ID, domain.VariantFiles)
	require.NoError(t, err)
	assert.Nil(t, got)

	second := domain.NewEntry(heading, domain.VariantFiles, map[string]string{"/a": "2-2"}, "v2")
	require.NoError(t, store.Write(second))
	third := domain.NewEntry(heading, domain.VariantFiles, map[string]string{"/a": "3-3"}, "v3")
	require.NoError(t, store.Write(third))

	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "#+CTX_ID: "+first.ID+"\n"))
	assert.NotContains(t, string(data), "filez")

	got, err = store.Find(first.ID, domain.VariantFiles)
	require.NoError(t, err)
	assert.Equal(t, third, got)
}

func TestStore_DigestTracksContent(t *testing.T) {
	t.Parallel()

	store, path := newStore(t)
	require.NoError(t, store.Ensure())

	before, err := store.Digest()
	require.NoError(t, err)
	assert.Len(t, before, 16)

	require.NoError(t, store.Write(domain.NewEntry(domain.HeadingPath{"A"}, domain.VariantFiles, nil, "a")))
	after, err := store.Digest()
	require.NoError(t, err)
	assert.NotEqual(t, before, after)

	// External edits are picked up on the next read.
	require.NoError(t, os.WriteFile(path, []byte(cachefile.Header), domain.FilePerm))
	reset, err := store.Digest()
	require.NoError(t, err)
	assert.Equal(t, before, reset)

	entries, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestOpener_ReusesStores(t *testing.T) {
	t.Parallel()

	opener := cachefile.NewOpener(nil)
	dir := t.TempDir()

	a := opener.Open(filepath.Join(dir, "x", "..", "doc.ctx.org"))
	b := opener.Open(filepath.Join(dir, "doc.ctx.org"))
	assert.Same(t, a, b)
	assert.Equal(t, filepath.Join(dir, "doc.ctx.org"), a.Path())
}
