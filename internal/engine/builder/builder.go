// Package builder produces cache entries from collected sections.
package builder

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.trai.ch/sectx/internal/core/domain"
	"go.trai.ch/sectx/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// DefaultReadConcurrency bounds parallel reads of linked files.
const DefaultReadConcurrency = 8

// Request describes one build.
type Request struct {
	// Collected is the section aggregate to build from.
	Collected domain.Collected
	// Variant selects raw file content or a summary.
	Variant domain.Variant
	// Store receives the entry on success.
	Store ports.EntryStore
	// Summarizer is required for the summary variant.
	Summarizer ports.Summarizer
	// SystemPrompt is passed to the summarizer.
	SystemPrompt string
}

// Result reports the outcome of an asynchronous build.
type Result struct {
	Entry *domain.Entry
	Err   error
}

// Builder assembles raw context, optionally summarizes it, and replaces the
// section's entry only when every step succeeded.
type Builder struct {
	reader        ports.ContentReader
	fingerprinter ports.Fingerprinter
	tracer        ports.Tracer
	logger        ports.Logger
	concurrency   int
}

// New creates a Builder.
func New(
	reader ports.ContentReader,
	fingerprinter ports.Fingerprinter,
	tracer ports.Tracer,
	logger ports.Logger,
) *Builder {
	return &Builder{
		reader:        reader,
		fingerprinter: fingerprinter,
		tracer:        tracer,
		logger:        logger,
		concurrency:   DefaultReadConcurrency,
	}
}

// Build writes a fresh entry for the request and returns it. Sections
// without links yield domain.ErrNoLinks and nothing is written.
func (b *Builder) Build(ctx context.Context, req Request) (*domain.Entry, error) {
	ctx, span := b.tracer.Start(ctx, "build")
	defer span.End()

	col := req.Collected
	span.SetAttribute("heading_path", col.HeadingPath.String())
	span.SetAttribute("variant", req.Variant)
	span.SetAttribute("files", len(col.Files))

	entry, err := b.build(ctx, req)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return entry, nil
}

func (b *Builder) build(ctx context.Context, req Request) (*domain.Entry, error) {
	col := req.Collected
	if req.Variant != domain.VariantFiles && req.Variant != domain.VariantSummary {
		return nil, zerr.With(domain.ErrInvalidVariant, "variant", req.Variant.String())
	}
	if len(col.Files) == 0 {
		return nil, domain.ErrNoLinks
	}

	// Fingerprints are taken before reading so a file modified mid-build
	// shows up as stale on the next read.
	hashes := b.fingerprints(col.Files)

	raw, err := b.assemble(ctx, col.Files)
	if err != nil {
		return nil, err
	}

	content := raw
	if req.Variant == domain.VariantSummary {
		content, err = b.summarize(ctx, req, raw)
		if err != nil {
			return nil, err
		}
	}

	entry := domain.NewEntry(col.HeadingPath, req.Variant, hashes, content)
	if err := req.Store.Write(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// BuildAsync runs Build on its own goroutine and reports through done.
func (b *Builder) BuildAsync(ctx context.Context, req Request, done func(Result)) {
	go func() {
		entry, err := b.Build(ctx, req)
		done(Result{Entry: entry, Err: err})
	}()
}

func (b *Builder) fingerprints(files []string) map[string]string {
	hashes := make(map[string]string, len(files))
	for _, path := range files {
		fp, err := b.fingerprinter.Fingerprint(path)
		if err != nil {
			b.logger.Warn(fmt.Sprintf("skipping %s: %v", path, err))
			continue
		}
		hashes[path] = fp
	}
	return hashes
}

// assemble reads every file concurrently and concatenates the readable
// text files in link order. Binary and unreadable files are left out.
func (b *Builder) assemble(ctx context.Context, files []string) (string, error) {
	blocks := make([]string, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			text, err := b.reader.ReadText(path)
			switch {
			case errors.Is(err, domain.ErrBinaryFile):
				return nil
			case err != nil:
				b.logger.Warn(fmt.Sprintf("skipping unreadable %s", path))
				return nil
			}
			blocks[i] = formatBlock(path, text)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, block := range blocks {
		sb.WriteString(block)
	}
	return sb.String(), nil
}

func formatBlock(path, text string) string {
	if text != "" && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	return "=== " + path + " ===\n" + text
}

func (b *Builder) summarize(ctx context.Context, req Request, raw string) (string, error) {
	if req.Summarizer == nil {
		return "", domain.ErrSummarizerNotConfigured
	}

	ctx, span := b.tracer.Start(ctx, "summarize")
	defer span.End()

	input := raw
	if strings.TrimSpace(req.Collected.Content) != "" {
		input = req.Collected.Content + "\n\n" + raw
	}
	span.SetAttribute("input_bytes", len(input))

	summary, err := req.Summarizer.Summarize(ctx, input, req.SystemPrompt)
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, domain.ErrSummarizerNotConfigured) {
			return "", err
		}
		return "", zerr.Wrap(err, domain.ErrSummaryFailed.Error())
	}
	if strings.TrimSpace(summary) == "" {
		return "", domain.ErrSummaryFailed
	}
	return summary, nil
}
