package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Variant selects which kind of context a cache entry holds.
type Variant string

const (
	// VariantAny matches any variant in store lookups.
	VariantAny Variant = ""
	// VariantFiles holds the verbatim content of the referenced files.
	VariantFiles Variant = "files"
	// VariantSummary holds an externally generated summary of the referenced files.
	VariantSummary Variant = "summary"
)

// Variants lists the concrete variants in their default resolution order.
var Variants = []Variant{VariantSummary, VariantFiles}

// String returns the variant name.
func (v Variant) String() string {
	return string(v)
}

// Matches reports whether v satisfies the filter. VariantAny matches everything.
func (v Variant) Matches(filter Variant) bool {
	return filter == VariantAny || v == filter
}

// ParseVariant parses a variant name. The empty string is rejected.
func ParseVariant(s string) (Variant, error) {
	switch Variant(strings.ToLower(strings.TrimSpace(s))) {
	case VariantFiles:
		return VariantFiles, nil
	case VariantSummary:
		return VariantSummary, nil
	default:
		return VariantAny, zerr.With(ErrInvalidVariant, "variant", s)
	}
}

// Preference restricts which variants the resolver may return.
type Preference uint8

const (
	// PreferNone tries the summary first, then the files variant.
	PreferNone Preference = iota
	// PreferSummary only considers the summary variant.
	PreferSummary
	// PreferFiles only considers the files variant.
	PreferFiles
)

// String returns a readable name for the preference.
func (p Preference) String() string {
	switch p {
	case PreferSummary:
		return "summary-only"
	case PreferFiles:
		return "files-only"
	default:
		return "no-preference"
	}
}

// Candidates returns the variants to try, in order.
func (p Preference) Candidates() []Variant {
	switch p {
	case PreferSummary:
		return []Variant{VariantSummary}
	case PreferFiles:
		return []Variant{VariantFiles}
	default:
		return []Variant{VariantSummary, VariantFiles}
	}
}

// PreferenceFromTags derives the preference from a tag set.
// The summary tag wins over the files tag.
func PreferenceFromTags(tags []string, summaryTag, filesTag string) Preference {
	var hasSummary, hasFiles bool
	for _, tag := range tags {
		switch tag {
		case summaryTag:
			hasSummary = true
		case filesTag:
			hasFiles = true
		}
	}
	switch {
	case hasSummary:
		return PreferSummary
	case hasFiles:
		return PreferFiles
	default:
		return PreferNone
	}
}
