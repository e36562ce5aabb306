package fs

import (
	"go.trai.ch/sectx/internal/core/domain"
	"go.trai.ch/sectx/internal/core/ports"
)

var _ ports.Locator = (*Locator)(nil)

// Locator applies the suffix naming rule for cache resources.
type Locator struct {
	suffix string
	dir    string
}

// NewLocator creates a Locator. An empty suffix uses domain.DefaultCacheSuffix;
// a non-empty dir places every cache resource in that directory.
func NewLocator(suffix, dir string) *Locator {
	return &Locator{suffix: suffix, dir: dir}
}

// Locate returns the cache resource path for sourcePath.
func (l *Locator) Locate(sourcePath string) string {
	return domain.CachePath(sourcePath, l.suffix, l.dir)
}
