package resolver_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sectx/internal/core/domain"
	"go.trai.ch/sectx/internal/core/ports"
	"go.trai.ch/sectx/internal/core/ports/mocks"
	"go.trai.ch/sectx/internal/engine/resolver"
	"go.trai.ch/sectx/internal/engine/staleness"
	"go.uber.org/mock/gomock"
)

// fakeFS maps paths to their current fingerprint.
type fakeFS map[string]string

func (f fakeFS) Fingerprint(path string) (string, error) {
	fp, ok := f[path]
	if !ok {
		return "", errors.New("missing")
	}
	return fp, nil
}

// memStore is an in-memory ports.EntryStore.
type memStore struct {
	ports.EntryStore
	entries map[string]*domain.Entry
	finds   int
}

func newMemStore(entries ...*domain.Entry) *memStore {
	s := &memStore{entries: make(map[string]*domain.Entry)}
	for _, e := range entries {
		s.entries[e.ID] = e
	}
	return s
}

func (s *memStore) Find(id string, variant domain.Variant) (*domain.Entry, error) {
	s.finds++
	e, ok := s.entries[id]
	if !ok || !e.Variant.Matches(variant) {
		return nil, nil
	}
	return e, nil
}

func (s *memStore) Write(e *domain.Entry) error {
	s.entries[e.ID] = e
	return nil
}

func newResolver(t *testing.T, fs fakeFS) *resolver.Resolver {
	t.Helper()
	ctrl := gomock.NewController(t)

	span := mocks.NewMockSpan(ctrl)
	span.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()
	span.EXPECT().End().AnyTimes()
	tracer := mocks.NewMockTracer(ctrl)
	tracer.EXPECT().Start(gomock.Any(), "resolve").DoAndReturn(
		func(ctx context.Context, _ string) (context.Context, ports.Span) { return ctx, span },
	).AnyTimes()

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).AnyTimes()

	return resolver.New(staleness.NewChecker(fs), tracer, logger)
}

func TestResolve_ExactValid(t *testing.T) {
	t.Parallel()

	fs := fakeFS{"/a": "1-1"}
	entry := domain.NewEntry(domain.HeadingPath{"Topic"}, domain.VariantFiles, map[string]string{"/a": "1-1"}, "raw")
	store := newMemStore(entry)

	res, ok := newResolver(t, fs).Resolve(context.Background(), store, resolver.Request{
		HeadingPath: domain.HeadingPath{"Topic"},
		Files:       []string{"/a"},
	})
	require.True(t, ok)
	assert.True(t, res.Exact)
	assert.False(t, res.Rebuilt)
	assert.Equal(t, "raw", res.Entry.Content)
}

func TestResolve_AncestorFallback(t *testing.T) {
	t.Parallel()

	fs := fakeFS{"/a": "1-1", "/new": "5-5"}
	ancestor := domain.NewEntry(domain.HeadingPath{"A", "B"}, domain.VariantFiles, map[string]string{"/a": "1-1"}, "from B")
	store := newMemStore(ancestor)

	rebuilds := 0
	res, ok := newResolver(t, fs).Resolve(context.Background(), store, resolver.Request{
		HeadingPath: domain.HeadingPath{"A", "B", "C"},
		// A file linked only from C is not checked against B's entry.
		Files:      []string{"/a", "/new"},
		AutoUpdate: true,
		Rebuild: func(context.Context, domain.Variant) error {
			rebuilds++
			return nil
		},
	})
	require.True(t, ok)
	assert.False(t, res.Exact)
	assert.Equal(t, "from B", res.Entry.Content)
	assert.Zero(t, rebuilds)
}

func TestResolve_TagPreference(t *testing.T) {
	t.Parallel()

	fs := fakeFS{"/a": "1-1"}
	path := domain.HeadingPath{"Topic"}
	hashes := map[string]string{"/a": "1-1"}
	files := domain.NewEntry(path, domain.VariantFiles, hashes, "verbatim")
	summary := domain.NewEntry(path, domain.VariantSummary, hashes, "condensed")

	tests := []struct {
		name       string
		preference domain.Preference
		entries    []*domain.Entry
		want       string
		found      bool
	}{
		{name: "summary tag", preference: domain.PreferSummary, entries: []*domain.Entry{files, summary}, want: "condensed", found: true},
		{name: "files tag", preference: domain.PreferFiles, entries: []*domain.Entry{files, summary}, want: "verbatim", found: true},
		{name: "no preference favors summary", preference: domain.PreferNone, entries: []*domain.Entry{files, summary}, want: "condensed", found: true},
		{name: "no preference falls back to files", preference: domain.PreferNone, entries: []*domain.Entry{files}, want: "verbatim", found: true},
		{name: "summary tag never returns files", preference: domain.PreferSummary, entries: []*domain.Entry{files}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res, ok := newResolver(t, fs).Resolve(context.Background(), newMemStore(tt.entries...), resolver.Request{
				HeadingPath: path,
				Files:       []string{"/a"},
				Preference:  tt.preference,
			})
			require.Equal(t, tt.found, ok)
			if ok {
				assert.Equal(t, tt.want, res.Entry.Content)
			}
		})
	}
}

func TestResolve_RebuildsStaleExactOnce(t *testing.T) {
	t.Parallel()

	fs := fakeFS{"/a": "2-20"}
	path := domain.HeadingPath{"Topic"}
	store := newMemStore(domain.NewEntry(path, domain.VariantFiles, map[string]string{"/a": "1-10"}, "old"))

	rebuilds := 0
	res, ok := newResolver(t, fs).Resolve(context.Background(), store, resolver.Request{
		HeadingPath: path,
		Files:       []string{"/a"},
		Preference:  domain.PreferFiles,
		AutoUpdate:  true,
		Rebuild: func(_ context.Context, variant domain.Variant) error {
			rebuilds++
			return store.Write(domain.NewEntry(path, variant, map[string]string{"/a": "2-20"}, "new"))
		},
	})
	require.True(t, ok)
	assert.Equal(t, 1, rebuilds)
	assert.True(t, res.Rebuilt)
	assert.True(t, res.Exact)
	assert.Equal(t, "new", res.Entry.Content)
}

func TestResolve_NoRebuildWithoutAutoUpdate(t *testing.T) {
	t.Parallel()

	fs := fakeFS{"/a": "2-20", "/root": "1-1"}
	store := newMemStore(
		domain.NewEntry(domain.HeadingPath{"A", "B"}, domain.VariantFiles, map[string]string{"/a": "1-10"}, "stale B"),
		domain.NewEntry(domain.HeadingPath{"A"}, domain.VariantFiles, map[string]string{"/root": "1-1"}, "fresh A"),
	)

	res, ok := newResolver(t, fs).Resolve(context.Background(), store, resolver.Request{
		HeadingPath: domain.HeadingPath{"A", "B"},
		Files:       []string{"/root", "/a"},
		Rebuild: func(context.Context, domain.Variant) error {
			t.Fatal("rebuild must not run without auto update")
			return nil
		},
	})
	require.True(t, ok)
	assert.False(t, res.Exact)
	assert.Equal(t, "fresh A", res.Entry.Content)
}

func TestResolve_StaleAncestorIsNotRebuilt(t *testing.T) {
	t.Parallel()

	fs := fakeFS{"/a": "2-20"}
	store := newMemStore(domain.NewEntry(domain.HeadingPath{"A"}, domain.VariantSummary, map[string]string{"/a": "1-10"}, "stale"))

	_, ok := newResolver(t, fs).Resolve(context.Background(), store, resolver.Request{
		HeadingPath: domain.HeadingPath{"A", "B"},
		Files:       []string{"/a"},
		AutoUpdate:  true,
		Rebuild: func(context.Context, domain.Variant) error {
			t.Fatal("inherited entries are never rebuilt")
			return nil
		},
	})
	assert.False(t, ok)
}

func TestResolve_FailedRebuildFallsThrough(t *testing.T) {
	t.Parallel()

	fs := fakeFS{"/a": "2-20"}
	path := domain.HeadingPath{"Topic"}
	store := newMemStore(
		domain.NewEntry(path, domain.VariantSummary, map[string]string{"/a": "1-10"}, "stale summary"),
		domain.NewEntry(path, domain.VariantFiles, map[string]string{"/a": "2-20"}, "fresh files"),
	)

	var attempted []domain.Variant
	res, ok := newResolver(t, fs).Resolve(context.Background(), store, resolver.Request{
		HeadingPath: path,
		Files:       []string{"/a"},
		AutoUpdate:  true,
		Rebuild: func(_ context.Context, variant domain.Variant) error {
			attempted = append(attempted, variant)
			return domain.ErrSummaryFailed
		},
	})
	require.True(t, ok)
	assert.Equal(t, []domain.Variant{domain.VariantSummary}, attempted)
	assert.Equal(t, "fresh files", res.Entry.Content)
}

func TestResolve_StoreErrorIsMiss(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	store := mocks.NewMockEntryStore(ctrl)
	store.EXPECT().Find(gomock.Any(), gomock.Any()).Return(nil, domain.ErrStoreReadFailed).Times(2)

	_, ok := newResolver(t, fakeFS{}).Resolve(context.Background(), store, resolver.Request{
		HeadingPath: domain.HeadingPath{"Topic"},
	})
	assert.False(t, ok)
}

func TestResolve_EmptyPath(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	_, ok := newResolver(t, fakeFS{}).Resolve(context.Background(), store, resolver.Request{})
	assert.False(t, ok)
	assert.Zero(t, store.finds)
}
