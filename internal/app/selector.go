package app

import (
	"strings"

	"github.com/sahilm/fuzzy"
	"go.trai.ch/sectx/internal/core/domain"
	"go.trai.ch/sectx/internal/core/ports"
	"go.trai.ch/zerr"
)

// Selector picks one section of a document. Exactly one field must be set.
type Selector struct {
	// Heading is a heading path with titles separated by "/".
	Heading string
	// Line is a 1-based line number inside the section.
	Line int
	// Find is a fuzzy query matched against heading paths.
	Find string
}

// Validate checks that exactly one selection mode is used.
func (s Selector) Validate() error {
	n := 0
	if s.Heading != "" {
		n++
	}
	if s.Line > 0 {
		n++
	}
	if s.Find != "" {
		n++
	}
	if n != 1 {
		return domain.ErrAmbiguousSelector
	}
	return nil
}

// Select returns the section the selector names.
func (s Selector) Select(doc ports.Document) (ports.Section, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	switch {
	case s.Line > 0:
		if sec, ok := doc.SectionAt(s.Line); ok {
			return sec, nil
		}
		return nil, zerr.With(domain.ErrSectionNotFound, "line", s.Line)
	case s.Heading != "":
		want := ParseHeadingPath(s.Heading)
		for _, sec := range doc.Sections() {
			if PathOf(sec).Equal(want) {
				return sec, nil
			}
		}
		return nil, zerr.With(domain.ErrSectionNotFound, "heading", s.Heading)
	default:
		return findFuzzy(doc, s.Find)
	}
}

func findFuzzy(doc ports.Document, query string) (ports.Section, error) {
	sections := doc.Sections()
	paths := make([]string, len(sections))
	for i, sec := range sections {
		paths[i] = PathOf(sec).String()
	}

	matches := fuzzy.Find(query, paths)
	if len(matches) == 0 {
		return nil, zerr.With(domain.ErrSectionNotFound, "find", query)
	}
	return sections[matches[0].Index], nil
}

// ParseHeadingPath splits "A/B" or "A / B" into titles.
func ParseHeadingPath(s string) domain.HeadingPath {
	var path domain.HeadingPath
	for _, part := range strings.Split(s, "/") {
		if part = strings.TrimSpace(part); part != "" {
			path = append(path, part)
		}
	}
	return path
}

// PathOf returns the heading path of a section, root first.
func PathOf(sec ports.Section) domain.HeadingPath {
	var path domain.HeadingPath
	for s := sec; s != nil; s = s.Parent() {
		path = append(domain.HeadingPath{s.Title()}, path...)
	}
	return path
}
