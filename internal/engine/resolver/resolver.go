// Package resolver decides which cached context applies to a section.
package resolver

import (
	"context"
	"fmt"

	"go.trai.ch/sectx/internal/core/domain"
	"go.trai.ch/sectx/internal/core/ports"
)

// StalenessChecker compares stored fingerprints against live files.
type StalenessChecker interface {
	Stale(current []string, stored map[string]string) []string
	SubsetStale(stored map[string]string) []string
}

// RebuildFunc rebuilds the exact section for one variant and writes the
// result to the store. On failure it must leave the store untouched.
type RebuildFunc func(ctx context.Context, variant domain.Variant) error

// Request describes one resolution.
type Request struct {
	// HeadingPath is the full path of the section, root first.
	HeadingPath domain.HeadingPath
	// Files is the live link set of the section and its ancestors.
	Files []string
	// Preference restricts and orders the candidate variants.
	Preference domain.Preference
	// AutoUpdate enables a rebuild when the exact entry is stale.
	AutoUpdate bool
	// Rebuild is called for a stale exact entry when AutoUpdate is set.
	Rebuild RebuildFunc
}

// Result is a resolved cache entry.
type Result struct {
	Entry *domain.Entry
	// Exact is false when the entry was inherited from an ancestor.
	Exact bool
	// Rebuilt is true when the entry was rebuilt during resolution.
	Rebuilt bool
}

// Resolver walks up the heading path looking for a valid entry.
type Resolver struct {
	checker StalenessChecker
	tracer  ports.Tracer
	logger  ports.Logger
}

// New creates a Resolver.
func New(checker StalenessChecker, tracer ports.Tracer, logger ports.Logger) *Resolver {
	return &Resolver{checker: checker, tracer: tracer, logger: logger}
}

// Resolve returns the first valid entry for the section or its nearest
// ancestor. The section's own entry is validated against the full live
// file set; inherited entries only re-check the files they recorded.
// Only the section's own entry is ever rebuilt.
func (r *Resolver) Resolve(ctx context.Context, store ports.EntryStore, req Request) (Result, bool) {
	ctx, span := r.tracer.Start(ctx, "resolve")
	defer span.End()
	span.SetAttribute("heading_path", req.HeadingPath.String())
	span.SetAttribute("preference", req.Preference.String())

	exact := true
	for path := req.HeadingPath; len(path) > 0; path = path.Parent() {
		for _, variant := range req.Preference.Candidates() {
			res, ok := r.try(ctx, store, req, path, variant, exact)
			if ok {
				span.SetAttribute("exact", res.Exact)
				span.SetAttribute("variant", res.Entry.Variant)
				span.SetAttribute("depth", len(path))
				return res, true
			}
		}
		exact = false
	}

	span.SetAttribute("found", false)
	return Result{}, false
}

// try validates one candidate. A stale exact entry is rebuilt when allowed;
// if the rebuild fails the candidate is skipped rather than served stale.
func (r *Resolver) try(
	ctx context.Context,
	store ports.EntryStore,
	req Request,
	path domain.HeadingPath,
	variant domain.Variant,
	exact bool,
) (Result, bool) {
	id := domain.HeadingID(path, variant)
	entry := r.find(store, id, variant)
	if entry == nil {
		return Result{}, false
	}

	var stale []string
	if exact {
		stale = r.checker.Stale(req.Files, entry.FileHashes)
	} else {
		stale = r.checker.SubsetStale(entry.FileHashes)
	}
	if len(stale) == 0 {
		return Result{Entry: entry, Exact: exact}, true
	}

	if !exact || !req.AutoUpdate || req.Rebuild == nil {
		return Result{}, false
	}

	r.logger.Info(fmt.Sprintf("rebuilding stale %s entry for %s (%d changed)", variant, path, len(stale)))
	if err := req.Rebuild(ctx, variant); err != nil {
		r.logger.Error(err)
		return Result{}, false
	}
	if fresh := r.find(store, id, variant); fresh != nil {
		return Result{Entry: fresh, Exact: true, Rebuilt: true}, true
	}
	return Result{}, false
}

// find treats a failing store as a miss.
func (r *Resolver) find(store ports.EntryStore, id string, variant domain.Variant) *domain.Entry {
	entry, err := store.Find(id, variant)
	if err != nil {
		r.logger.Warn(fmt.Sprintf("cache lookup failed, treating as miss: %v", err))
		return nil
	}
	return entry
}
