package domain

import "time"

// DefaultSummarizerTimeout bounds a single summarizer call.
const DefaultSummarizerTimeout = 2 * time.Minute

// DefaultSystemPrompt is sent to the summarizer when none is configured.
const DefaultSystemPrompt = "Summarize the referenced files so they can serve as background " +
	"context for questions about the section below. Keep names, signatures and facts; drop boilerplate."

// Config holds the resolved settings for one document.
type Config struct {
	// Enabled turns context lookup on or off.
	Enabled bool
	// AutoUpdate rebuilds a stale exact entry while reading it.
	AutoUpdate bool
	// CacheSuffix names the cache resource next to the document.
	CacheSuffix string
	// CacheDir optionally relocates cache resources.
	CacheDir string
	// SummaryTag and FilesTag drive the variant preference.
	SummaryTag string
	FilesTag   string
	// AttachmentDir resolves attachment links.
	AttachmentDir string
	// BinaryProbeBytes is the window scanned for a null byte.
	BinaryProbeBytes int
	// Summarizer configures the external summarizer command.
	Summarizer SummarizerConfig
}

// SummarizerConfig describes the external summarizer.
type SummarizerConfig struct {
	Command      []string
	SystemPrompt string
	Timeout      time.Duration
}

// DefaultConfig returns the settings used when no config file is found.
func DefaultConfig() Config {
	return Config{
		Enabled:          true,
		AutoUpdate:       true,
		CacheSuffix:      DefaultCacheSuffix,
		SummaryTag:       DefaultSummaryTag,
		FilesTag:         DefaultFilesTag,
		AttachmentDir:    DefaultAttachmentDir,
		BinaryProbeBytes: DefaultBinaryProbeBytes,
		Summarizer: SummarizerConfig{
			SystemPrompt: DefaultSystemPrompt,
			Timeout:      DefaultSummarizerTimeout,
		},
	}
}
