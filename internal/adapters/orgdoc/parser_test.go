package orgdoc_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sectx/internal/adapters/orgdoc"
	"go.trai.ch/sectx/internal/core/domain"
)

const sample = `#+TITLE: Notes
#+FILETAGS: :work:ctx_files:
Intro with [[file:intro.txt]].
* Project                                                       :proj:
Project body.
** TODO [#A] Design :ctx_summary:arch:
Design body.
*** Details
Details body.
** Ops
Ops body.
* Misc
`

func TestParse_Structure(t *testing.T) {
	t.Parallel()

	doc := orgdoc.Parse("/tmp/notes.org", sample)

	assert.Equal(t, "/tmp/notes.org", doc.Path())
	assert.Equal(t, "#+TITLE: Notes\n#+FILETAGS: :work:ctx_files:\nIntro with [[file:intro.txt]].", doc.Preamble())
	assert.Equal(t, []string{"work", "ctx_files"}, doc.FileTags())

	sections := doc.Sections()
	require.Len(t, sections, 5)

	titles := make([]string, len(sections))
	for i, s := range sections {
		titles[i] = s.Title()
	}
	assert.Equal(t, []string{"Project", "Design", "Details", "Ops", "Misc"}, titles)

	design := sections[1]
	assert.Equal(t, []string{"ctx_summary", "arch"}, design.Tags())
	assert.Equal(t, 6, design.Line())
	assert.Equal(t, "** TODO [#A] Design :ctx_summary:arch:\nDesign body.", design.Body())
	assert.Equal(t, "Project", design.Parent().Title())
	assert.Nil(t, sections[0].Parent())

	details := sections[2]
	assert.Equal(t, "Design", details.Parent().Title())

	ops := sections[3]
	assert.Equal(t, "Project", ops.Parent().Title())
	assert.Equal(t, []string{"proj"}, sections[0].Tags())
	assert.Equal(t, "* Project                                                       :proj:\nProject body.", sections[0].Body())

	assert.Equal(t, "* Misc", sections[4].Body())
}

func TestParse_SectionAt(t *testing.T) {
	t.Parallel()

	doc := orgdoc.Parse("/tmp/notes.org", sample)

	_, ok := doc.SectionAt(2)
	assert.False(t, ok, "preamble lines have no section")
	_, ok = doc.SectionAt(0)
	assert.False(t, ok)
	_, ok = doc.SectionAt(100)
	assert.False(t, ok)

	sec, ok := doc.SectionAt(7)
	require.True(t, ok)
	assert.Equal(t, "Design", sec.Title())

	sec, ok = doc.SectionAt(8)
	require.True(t, ok)
	assert.Equal(t, "Details", sec.Title())

	sec, ok = doc.SectionAt(12)
	require.True(t, ok)
	assert.Equal(t, "Misc", sec.Title())
}

func TestParse_NoHeadings(t *testing.T) {
	t.Parallel()

	doc := orgdoc.Parse("/tmp/x.org", "just text\n*not a heading\n")
	assert.Empty(t, doc.Sections())
	assert.Equal(t, "just text\n*not a heading", doc.Preamble())
}

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "notes.org")
	require.NoError(t, os.WriteFile(path, []byte(sample), domain.FilePerm))

	doc, err := orgdoc.NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, doc.Path())
	assert.Len(t, doc.Sections(), 5)

	_, err = orgdoc.NewLoader().Load(filepath.Join(dir, "missing.org"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrDocumentReadFailed.Error())
}
