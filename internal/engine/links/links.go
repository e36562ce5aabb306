// Package links extracts linked file paths from section text.
package links

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// linkPattern matches [[file:PATH]] and [[attachment:PATH]], with or without
// a [DESCRIPTION] part after the target.
var linkPattern = regexp.MustCompile(`\[\[(file|attachment):([^\]\n]+)\]`)

// Extractor turns link markup into absolute, existing, readable file paths.
type Extractor struct {
	// BaseDir resolves relative file: targets, normally the document directory.
	BaseDir string
	// AttachmentDir resolves attachment: targets.
	AttachmentDir string
}

// NewExtractor creates an Extractor for a document living in baseDir.
// A relative attachmentDir is taken relative to baseDir.
func NewExtractor(baseDir, attachmentDir string) *Extractor {
	if attachmentDir == "" {
		attachmentDir = baseDir
	} else if !filepath.IsAbs(attachmentDir) {
		attachmentDir = filepath.Join(baseDir, attachmentDir)
	}
	return &Extractor{BaseDir: baseDir, AttachmentDir: attachmentDir}
}

// Extract returns the linked files in order of first appearance.
// Targets that do not exist, are directories or cannot be opened are skipped.
func (e *Extractor) Extract(text string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, m := range linkPattern.FindAllStringSubmatch(text, -1) {
		path, ok := e.resolve(m[1], m[2])
		if !ok {
			continue
		}
		if _, dup := seen[path]; dup {
			continue
		}
		seen[path] = struct{}{}
		out = append(out, path)
	}
	return out
}

// Merge appends the paths of next that are not yet in acc, keeping order.
func Merge(acc, next []string) []string {
	seen := make(map[string]struct{}, len(acc))
	for _, p := range acc {
		seen[p] = struct{}{}
	}
	for _, p := range next {
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		acc = append(acc, p)
	}
	return acc
}

func (e *Extractor) resolve(kind, target string) (string, bool) {
	if i := strings.Index(target, "::"); i >= 0 {
		target = target[:i]
	}
	target = strings.TrimSpace(target)
	if target == "" {
		return "", false
	}

	base := e.BaseDir
	if kind == "attachment" {
		base = e.AttachmentDir
	}

	path, ok := expand(target, base)
	if !ok || !readableFile(path) {
		return "", false
	}
	return path, true
}

// expand makes target absolute and clean, honoring a leading "~".
func expand(target, base string) (string, bool) {
	if target == "~" || strings.HasPrefix(target, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false
		}
		target = filepath.Join(home, strings.TrimPrefix(target, "~"))
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(base, target)
	}
	abs, err := filepath.Abs(target)
	if err != nil {
		return "", false
	}
	return filepath.Clean(abs), true
}

func readableFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	f, err := os.Open(path) //nolint:gosec // Path comes from the user's own document
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}
