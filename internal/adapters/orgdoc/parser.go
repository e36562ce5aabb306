// Package orgdoc parses Org-style outlines into sections.
package orgdoc

import (
	"regexp"
	"strings"

	"go.trai.ch/sectx/internal/core/ports"
)

var (
	headingPattern  = regexp.MustCompile(`^(\*+)[ \t]+(.*?)[ \t]*$`)
	tagGroupPattern = regexp.MustCompile(`[ \t]+(:(?:[\w@#%]+:)+)$`)
	keywordPattern  = regexp.MustCompile(`^(?:TODO|DONE)(?:[ \t]+|$)`)
	priorityPattern = regexp.MustCompile(`^\[#[A-Z0-9]\](?:[ \t]+|$)`)
	fileTagsPattern = regexp.MustCompile(`(?i)^#\+filetags:[ \t]*(.*)$`)
)

var (
	_ ports.Document = (*Document)(nil)
	_ ports.Section  = (*Section)(nil)
)

// Document is a parsed outline.
type Document struct {
	path     string
	preamble string
	fileTags []string
	sections []*Section
	lines    int
}

// Section is one heading and its own body.
type Section struct {
	title  string
	body   string
	tags   []string
	level  int
	line   int
	parent *Section
}

// Parse splits text into a preamble and sections.
func Parse(path, text string) *Document {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	doc := &Document{path: path, lines: len(lines)}

	var (
		stack []*Section
		cur   *Section
		start int
	)
	flush := func(end int) {
		body := strings.Join(lines[start:end], "\n")
		if cur == nil {
			doc.preamble = body
			return
		}
		cur.body = body
	}

	for i, line := range lines {
		if cur == nil {
			if m := fileTagsPattern.FindStringSubmatch(line); m != nil {
				doc.fileTags = appendTags(doc.fileTags, m[1])
			}
		}

		m := headingPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		flush(i)

		level := len(m[1])
		title, tags := splitTags(m[2])
		for len(stack) > 0 && stack[len(stack)-1].level >= level {
			stack = stack[:len(stack)-1]
		}
		sec := &Section{
			title: cleanTitle(title),
			tags:  tags,
			level: level,
			line:  i + 1,
		}
		if len(stack) > 0 {
			sec.parent = stack[len(stack)-1]
		}
		stack = append(stack, sec)
		doc.sections = append(doc.sections, sec)
		cur, start = sec, i
	}
	flush(len(lines))
	return doc
}

func splitTags(heading string) (string, []string) {
	loc := tagGroupPattern.FindStringSubmatchIndex(heading)
	if loc == nil {
		return heading, nil
	}
	return heading[:loc[0]], appendTags(nil, heading[loc[2]:loc[3]])
}

func cleanTitle(title string) string {
	title = keywordPattern.ReplaceAllString(title, "")
	title = priorityPattern.ReplaceAllString(title, "")
	return strings.TrimSpace(title)
}

// appendTags adds the tags in a ":a:b:" group or a whitespace separated list.
func appendTags(acc []string, group string) []string {
	for _, t := range strings.FieldsFunc(group, func(r rune) bool {
		return r == ':' || r == ' ' || r == '\t'
	}) {
		acc = append(acc, t)
	}
	return acc
}

// Path returns the source path.
func (d *Document) Path() string { return d.path }

// Preamble returns the text before the first heading.
func (d *Document) Preamble() string { return d.preamble }

// FileTags returns the tags declared with #+FILETAGS.
func (d *Document) FileTags() []string { return d.fileTags }

// Sections returns every section in document order.
func (d *Document) Sections() []ports.Section {
	out := make([]ports.Section, len(d.sections))
	for i, s := range d.sections {
		out[i] = s
	}
	return out
}

// SectionAt returns the section whose region contains line.
func (d *Document) SectionAt(line int) (ports.Section, bool) {
	if line < 1 || line > d.lines {
		return nil, false
	}
	var found *Section
	for _, s := range d.sections {
		if s.line > line {
			break
		}
		found = s
	}
	if found == nil {
		return nil, false
	}
	return found, true
}

// Title returns the heading text.
func (s *Section) Title() string { return s.title }

// Body returns the heading line and the text up to the next heading.
func (s *Section) Body() string { return s.body }

// Tags returns the heading's own tags.
func (s *Section) Tags() []string { return s.tags }

// Level returns the number of leading stars.
func (s *Section) Level() int { return s.level }

// Line returns the 1-based heading line.
func (s *Section) Line() int { return s.line }

// Parent returns the enclosing section or nil.
func (s *Section) Parent() ports.Section {
	if s.parent == nil {
		return nil
	}
	return s.parent
}
