// Package staleness compares stored file fingerprints against the live filesystem.
package staleness

import (
	"slices"

	"go.trai.ch/sectx/internal/core/ports"
)

// Checker detects changed files by fingerprint.
type Checker struct {
	fingerprinter ports.Fingerprinter
}

// NewChecker creates a Checker.
func NewChecker(fingerprinter ports.Fingerprinter) *Checker {
	return &Checker{fingerprinter: fingerprinter}
}

// Stale returns the files of current whose live fingerprint differs from
// stored. A file absent from stored, or one that can no longer be
// fingerprinted, counts as changed.
func (c *Checker) Stale(current []string, stored map[string]string) []string {
	var changed []string
	for _, path := range current {
		want, ok := stored[path]
		if !ok || !c.matches(path, want) {
			changed = append(changed, path)
		}
	}
	return changed
}

// SubsetStale re-checks only the files recorded in stored. Files that are
// live but were never recorded are ignored.
func (c *Checker) SubsetStale(stored map[string]string) []string {
	var changed []string
	for _, path := range sortedKeys(stored) {
		if !c.matches(path, stored[path]) {
			changed = append(changed, path)
		}
	}
	return changed
}

// Fingerprints captures the current fingerprint of every path. Paths that
// cannot be fingerprinted are left out.
func (c *Checker) Fingerprints(paths []string) map[string]string {
	out := make(map[string]string, len(paths))
	for _, path := range paths {
		fp, err := c.fingerprinter.Fingerprint(path)
		if err != nil {
			continue
		}
		out[path] = fp
	}
	return out
}

func (c *Checker) matches(path, want string) bool {
	got, err := c.fingerprinter.Fingerprint(path)
	return err == nil && got == want
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
