package ports

import (
	"context"

	"go.trai.ch/sectx/internal/core/domain"
)

//go:generate mockgen -source=summarizer.go -destination=mocks/mock_summarizer.go -package=mocks

// Summarizer condenses raw context through an external model.
type Summarizer interface {
	// Summarize returns the summary text. Any failure, including an empty
	// response, is reported as an error.
	Summarize(ctx context.Context, rawContext, systemPrompt string) (string, error)
}

// SummarizerFactory builds a summarizer for the settings of one document.
type SummarizerFactory interface {
	For(cfg domain.SummarizerConfig) Summarizer
}
