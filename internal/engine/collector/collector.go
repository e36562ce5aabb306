// Package collector aggregates a section and its ancestors into one logical unit.
package collector

import (
	"slices"
	"strings"

	"go.trai.ch/sectx/internal/core/domain"
	"go.trai.ch/sectx/internal/core/ports"
	"go.trai.ch/sectx/internal/engine/links"
)

// LinkExtractor pulls linked file paths out of raw text.
type LinkExtractor interface {
	Extract(text string) []string
}

// Collector walks a section's ancestor chain.
type Collector struct {
	extractor LinkExtractor
}

// New creates a Collector using the given link extractor.
func New(extractor LinkExtractor) *Collector {
	return &Collector{extractor: extractor}
}

// Collect captures the bodies, links, titles and tags of sec and every
// ancestor up to the document root, plus the document preamble.
// Everything is reported in root-to-current order.
func (c *Collector) Collect(doc ports.Document, sec ports.Section) domain.Collected {
	var chain []ports.Section
	for s := sec; s != nil; s = s.Parent() {
		chain = append(chain, s)
	}
	slices.Reverse(chain)

	var bodies []string
	if pre := doc.Preamble(); strings.TrimSpace(pre) != "" {
		bodies = append(bodies, pre)
	}

	path := make(domain.HeadingPath, 0, len(chain))
	tags := mergeTags(nil, doc.FileTags())
	for _, s := range chain {
		bodies = append(bodies, s.Body())
		path = append(path, s.Title())
		tags = mergeTags(tags, s.Tags())
	}

	var files []string
	for _, body := range bodies {
		files = links.Merge(files, c.extractor.Extract(body))
	}

	return domain.Collected{
		Content:     strings.Join(bodies, "\n"),
		Files:       files,
		HeadingPath: path,
		Tags:        tags,
	}
}

// Preference computes the variant preference for a collected unit.
func Preference(col domain.Collected, cfg domain.Config) domain.Preference {
	return domain.PreferenceFromTags(col.Tags, cfg.SummaryTag, cfg.FilesTag)
}

func mergeTags(acc, next []string) []string {
	for _, t := range next {
		if !slices.Contains(acc, t) {
			acc = append(acc, t)
		}
	}
	return acc
}
