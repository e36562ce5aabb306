package domain

import (
	"path/filepath"
	"strings"
)

const (
	// ConfigFileName is the name of the per-project configuration file.
	ConfigFileName = ".sectx.yaml"

	// DefaultCacheSuffix replaces the source extension to name the cache resource.
	DefaultCacheSuffix = ".ctx.org"

	// DefaultSummaryTag forces the summary variant when present on a section or its ancestors.
	DefaultSummaryTag = "ctx_summary"

	// DefaultFilesTag forces the files variant unless the summary tag is also present.
	DefaultFilesTag = "ctx_files"

	// DefaultAttachmentDir is where attachment links are resolved, relative to the document.
	DefaultAttachmentDir = "data"

	// DefaultBinaryProbeBytes is the size of the leading window scanned for a null byte.
	DefaultBinaryProbeBytes = 8000

	// HeadingSeparator joins heading path elements for display.
	HeadingSeparator = " / "

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// CachePath derives the cache resource path for a source document.
// The source extension is replaced by suffix; when dir is non-empty the
// resource is placed there instead of next to the source.
func CachePath(sourcePath, suffix, dir string) string {
	if suffix == "" {
		suffix = DefaultCacheSuffix
	}
	base := filepath.Base(sourcePath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	name := stem + suffix
	if dir != "" {
		return filepath.Join(dir, name)
	}
	return filepath.Join(filepath.Dir(sourcePath), name)
}
