package domain

import (
	"maps"
	"slices"
)

// Entry is one persisted cache record for a (heading path, variant) pair.
type Entry struct {
	// ID is HeadingID(HeadingPath, Variant).
	ID string
	// Variant is the kind of content held.
	Variant Variant
	// HeadingPath is kept for display and debugging.
	HeadingPath HeadingPath
	// FileHashes maps each referenced file to its fingerprint at build time.
	FileHashes map[string]string
	// Content is the raw concatenation or the summary text.
	Content string
}

// NewEntry builds an entry and derives its ID.
func NewEntry(path HeadingPath, variant Variant, hashes map[string]string, content string) *Entry {
	var files map[string]string
	if len(hashes) > 0 {
		files = maps.Clone(hashes)
	}
	return &Entry{
		ID:          HeadingID(path, variant),
		Variant:     variant,
		HeadingPath: slices.Clone(path),
		FileHashes:  files,
		Content:     content,
	}
}

// Files returns the fingerprinted paths in sorted order.
func (e *Entry) Files() []string {
	return slices.Sorted(maps.Keys(e.FileHashes))
}

// Collected is the aggregate of a section and its ancestors.
type Collected struct {
	// Content is every captured body, root first, joined by a newline.
	Content string
	// Files is the de-duplicated union of linked files, in first-seen order.
	Files []string
	// HeadingPath lists the section titles, root first.
	HeadingPath HeadingPath
	// Tags is the union of the section's, its ancestors' and the document's tags.
	Tags []string
}
