package ports

//go:generate mockgen -source=files.go -destination=mocks/mock_files.go -package=mocks

// Fingerprinter computes cheap file identities.
type Fingerprinter interface {
	// Fingerprint returns the current fingerprint of path.
	Fingerprint(path string) (string, error)
}

// ContentReader reads linked files for raw context assembly.
type ContentReader interface {
	// ReadText returns the file content, or domain.ErrBinaryFile if the
	// leading bytes contain a null byte.
	ReadText(path string) (string, error)
}

// Locator maps a source document path to its cache resource path.
type Locator interface {
	Locate(sourcePath string) string
}
