// Package ports defines the core interfaces for the application.
package ports

//go:generate mockgen -source=document.go -destination=mocks/mock_document.go -package=mocks

// Section is one heading of a host document outline.
type Section interface {
	// Title is the heading text without markup or tags.
	Title() string
	// Body is the section's own text, from its heading line up to the next
	// heading, excluding nested sub-sections.
	Body() string
	// Tags are the tags attached directly to the heading.
	Tags() []string
	// Parent returns the enclosing section, or nil at the top level.
	Parent() Section
	// Line is the 1-based line number of the heading.
	Line() int
}

// Document is a parsed host document.
type Document interface {
	// Path is the absolute path of the source file.
	Path() string
	// Preamble is the content before the first heading.
	Preamble() string
	// FileTags are the document-wide tags.
	FileTags() []string
	// Sections lists every section in document order.
	Sections() []Section
	// SectionAt returns the section containing the given 1-based line.
	SectionAt(line int) (Section, bool)
}

// DocumentLoader reads and parses a host document.
type DocumentLoader interface {
	Load(path string) (Document, error)
}
