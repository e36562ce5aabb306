package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HeadingPath is the ordered list of section titles from the document root
// down to a section.
type HeadingPath []string

// String joins the path for display.
func (p HeadingPath) String() string {
	return strings.Join(p, HeadingSeparator)
}

// Parent returns the path with its last element removed.
// The parent of an empty or single-element path is empty.
func (p HeadingPath) Parent() HeadingPath {
	if len(p) <= 1 {
		return nil
	}
	return p[:len(p)-1]
}

// Equal reports whether two paths hold the same titles in the same order.
func (p HeadingPath) Equal(other HeadingPath) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// HeadingID derives the stable identity of a (heading path, variant) pair.
// It depends only on the titles and the variant, never on content, so a
// rebuild of the same section replaces the previous entry in place.
func HeadingID(path HeadingPath, variant Variant) string {
	seed := strings.Join(path, "/") + ":" + variant.String()
	sum := sha256.Sum256([]byte(seed))
	return hex.EncodeToString(sum[:])
}
