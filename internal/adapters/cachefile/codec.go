// Package cachefile stores cache entries as spans of one text resource per document.
package cachefile

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"

	"go.trai.ch/sectx/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Structural markers. Every marker line starts with "#+" at column 0, and
// escaped payload lines never do, so a payload cannot end or open a span.
const (
	idMarker      = "#+CTX_ID: "
	variantMarker = "#+CTX_VARIANT: "
	pathMarker    = "#+CTX_PATH: "
	filesBegin    = "#+BEGIN_CTX_FILES"
	filesEnd      = "#+END_CTX_FILES"
	contentBegin  = "#+BEGIN_CTX_CONTENT"
	contentEnd    = "#+END_CTX_CONTENT"
	displayPrefix = "* "
)

// Header is written at the top of every new cache resource.
const Header = "#+TITLE: Section context cache\n" +
	"#+STARTUP: overview\n" +
	"# Managed by sectx. Entries are replaced on rebuild; manual edits may be lost.\n"

var (
	escapePattern   = regexp.MustCompile(`(?m)^([ \t]*)(,*(?:\*|#\+))`)
	unescapePattern = regexp.MustCompile(`(?m)^([ \t]*),(,*(?:\*|#\+))`)
)

// Escape prefixes a comma to every line that starts, after optional
// indentation and commas, with "*" or "#+".
func Escape(s string) string {
	return escapePattern.ReplaceAllString(s, "${1},${2}")
}

// Unescape reverses Escape exactly.
func Unescape(s string) string {
	return unescapePattern.ReplaceAllString(s, "${1}${2}")
}

// Encode serializes an entry into a self-describing span ending in a newline.
func Encode(e *domain.Entry) ([]byte, error) {
	path, err := json.Marshal([]string(e.HeadingPath))
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrEntryEncodeFailed.Error())
	}

	hashes := e.FileHashes
	if hashes == nil {
		hashes = map[string]string{}
	}
	files, err := yaml.Marshal(hashes)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrEntryEncodeFailed.Error())
	}

	var b bytes.Buffer
	b.WriteString(idMarker + e.ID + "\n")
	b.WriteString(variantMarker + e.Variant.String() + "\n")
	b.WriteString(pathMarker + string(path) + "\n")
	b.WriteString(displayPrefix + displayTitle(e.HeadingPath) + "\n")
	b.WriteString(filesBegin + "\n")
	b.Write(files)
	b.WriteString(filesEnd + "\n")
	b.WriteString(contentBegin + "\n")
	// The payload always gets one extra newline so that its own trailing
	// newline, or lack of one, survives decoding.
	b.WriteString(Escape(e.Content) + "\n")
	b.WriteString(contentEnd + "\n")
	return b.Bytes(), nil
}

// Decode parses a span produced by Encode.
func Decode(span []byte) (*domain.Entry, error) {
	text := string(span)

	id, rest, ok := cutLine(text, idMarker)
	if !ok || id == "" {
		return nil, malformed("missing identity line")
	}
	variantName, rest, ok := cutLine(rest, variantMarker)
	if !ok {
		return nil, malformed("missing variant line")
	}
	variant, err := domain.ParseVariant(variantName)
	if err != nil {
		return nil, malformed("unknown variant")
	}
	rawPath, rest, ok := cutLine(rest, pathMarker)
	if !ok {
		return nil, malformed("missing heading path line")
	}
	var path []string
	if err := json.Unmarshal([]byte(rawPath), &path); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrEntryMalformed.Error()), "id", id)
	}
	if _, rest, ok = cutLine(rest, displayPrefix); !ok {
		return nil, malformed("missing display line")
	}

	rawFiles, rest, ok := cutBlock(rest, filesBegin, filesEnd)
	if !ok {
		return nil, malformed("missing file block")
	}
	var hashes map[string]string
	if err := yaml.Unmarshal([]byte(rawFiles), &hashes); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrEntryMalformed.Error()), "id", id)
	}
	if len(hashes) == 0 {
		hashes = nil
	}

	rawContent, _, ok := cutBlock(rest, contentBegin, contentEnd)
	if !ok {
		return nil, malformed("missing content block")
	}
	content, ok := strings.CutSuffix(rawContent, "\n")
	if !ok {
		return nil, malformed("unterminated content block")
	}

	return &domain.Entry{
		ID:          id,
		Variant:     variant,
		HeadingPath: domain.HeadingPath(path),
		FileHashes:  hashes,
		Content:     Unescape(content),
	}, nil
}

func displayTitle(path domain.HeadingPath) string {
	if len(path) == 0 {
		return "(document)"
	}
	return path.String()
}

// cutLine consumes one line that must start with prefix and returns the rest of that line.
func cutLine(text, prefix string) (value, rest string, ok bool) {
	line, rest, _ := strings.Cut(text, "\n")
	value, ok = strings.CutPrefix(line, prefix)
	return strings.TrimRight(value, "\r"), rest, ok
}

// cutBlock consumes a begin line, then everything up to the matching end line.
func cutBlock(text, begin, end string) (body, rest string, ok bool) {
	line, rest, _ := strings.Cut(text, "\n")
	if line != begin {
		return "", "", false
	}
	if strings.HasPrefix(rest, end+"\n") || rest == end {
		return "", strings.TrimPrefix(strings.TrimPrefix(rest, end), "\n"), true
	}
	idx := strings.Index(rest, "\n"+end+"\n")
	if idx < 0 {
		if !strings.HasSuffix(rest, "\n"+end) {
			return "", "", false
		}
		return rest[:len(rest)-len(end)], "", true
	}
	return rest[:idx+1], rest[idx+len(end)+2:], true
}

func malformed(reason string) error {
	return zerr.With(domain.ErrEntryMalformed, "reason", reason)
}
