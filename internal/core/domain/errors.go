package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidVariant is returned when a cache variant name is not recognized.
	ErrInvalidVariant = zerr.New("invalid cache variant, expected 'files' or 'summary'")

	// ErrNoLinks is returned when a build finds no file links in the section or its ancestors.
	ErrNoLinks = zerr.New("no file links found")

	// ErrSummaryFailed is returned when the external summarizer produced no summary.
	ErrSummaryFailed = zerr.New("no summary produced")

	// ErrSummarizerNotConfigured is returned when a summary build is requested without a summarizer command.
	ErrSummarizerNotConfigured = zerr.New("summarizer command is not configured")

	// ErrContextDisabled is returned when context operations are requested while disabled.
	ErrContextDisabled = zerr.New("section context is disabled")

	// ErrEntryMalformed is returned when a stored entry cannot be decoded.
	ErrEntryMalformed = zerr.New("malformed cache entry")

	// ErrEntryNotFound is returned when a requested cache entry does not exist.
	ErrEntryNotFound = zerr.New("cache entry not found")

	// ErrStoreCreateFailed is returned when the cache resource cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create cache resource")

	// ErrStoreReadFailed is returned when the cache resource cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read cache resource")

	// ErrStoreWriteFailed is returned when the cache resource cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write cache resource")

	// ErrEntryEncodeFailed is returned when an entry cannot be serialized.
	ErrEntryEncodeFailed = zerr.New("failed to encode cache entry")

	// ErrSectionNotFound is returned when no section matches a selector.
	ErrSectionNotFound = zerr.New("section not found")

	// ErrAmbiguousSelector is returned when a section selector names more than one mode.
	ErrAmbiguousSelector = zerr.New("exactly one of --heading, --line or --find must be given")

	// ErrDocumentReadFailed is returned when the source document cannot be read.
	ErrDocumentReadFailed = zerr.New("failed to read document")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidTimeout is returned when the summarizer timeout is not a valid duration.
	ErrInvalidTimeout = zerr.New("invalid summarizer timeout")

	// ErrFileStatFailed is returned when a linked file cannot be stat'ed.
	ErrFileStatFailed = zerr.New("failed to stat file")

	// ErrFileReadFailed is returned when a linked file cannot be read.
	ErrFileReadFailed = zerr.New("failed to read file")

	// ErrBinaryFile is returned when a linked file looks binary and is excluded from raw content.
	ErrBinaryFile = zerr.New("binary file")

	// ErrClipboardFailed is returned when the context cannot be copied to the clipboard.
	ErrClipboardFailed = zerr.New("failed to copy to clipboard")
)
