package cachefile

import (
	"bytes"

	"go.trai.ch/sectx/internal/core/domain"
)

// span locates one entry inside the resource bytes. end is exclusive and
// includes the trailing newline of the closing marker line.
type span struct {
	id       string
	variant  domain.Variant
	start    int
	end      int
	complete bool
}

// index is the parsed span layout of one version of the resource.
type index struct {
	digest uint64
	spans  []span
}

// lookup returns the first span carrying id whose variant matches the filter.
func (ix *index) lookup(id string, variant domain.Variant) (span, bool) {
	for _, sp := range ix.spans {
		if sp.id != id {
			continue
		}
		if variant != domain.VariantAny && sp.variant != variant {
			return span{}, false
		}
		return sp, true
	}
	return span{}, false
}

// scan splits the resource into entry spans. A span opens at an identity
// line and closes after the first content terminator. When no terminator
// appears before the next identity line the span is recorded incomplete and
// stops where the next one starts.
func scan(data []byte, digest uint64) *index {
	ix := &index{digest: digest}
	idLine := []byte(idMarker)
	variantLine := []byte(variantMarker)
	endLine := []byte(contentEnd)

	var cur *span
	closeAt := func(end int) {
		if cur != nil {
			cur.end = end
			ix.spans = append(ix.spans, *cur)
			cur = nil
		}
	}

	for pos := 0; pos < len(data); {
		next := bytes.IndexByte(data[pos:], '\n')
		lineEnd := len(data)
		if next >= 0 {
			lineEnd = pos + next + 1
		}
		line := bytes.TrimRight(data[pos:lineEnd], "\r\n")

		switch {
		case bytes.HasPrefix(line, idLine):
			closeAt(pos)
			cur = &span{id: string(line[len(idLine):]), start: pos}
		case cur != nil && cur.variant == domain.VariantAny && bytes.HasPrefix(line, variantLine):
			if v, err := domain.ParseVariant(string(line[len(variantLine):])); err == nil {
				cur.variant = v
			}
		case cur != nil && bytes.Equal(line, endLine):
			cur.complete = true
			closeAt(lineEnd)
		}
		pos = lineEnd
	}
	closeAt(len(data))
	return ix
}
