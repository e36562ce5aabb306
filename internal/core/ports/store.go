package ports

import "go.trai.ch/sectx/internal/core/domain"

// EntryStore persists cache entries for one source document.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type EntryStore interface {
	// Path is the location of the backing resource.
	Path() string

	// Ensure creates the resource with its header if it is absent.
	Ensure() error

	// Find returns the entry with the given id, or nil, nil if absent.
	// A non-empty variant must match the stored variant.
	// Entries that fail to decode are reported as absent.
	Find(id string, variant domain.Variant) (*domain.Entry, error)

	// Write replaces the entry with the same id and variant, or appends it.
	Write(entry *domain.Entry) error

	// Delete removes the matching entry. It is a no-op if absent.
	Delete(id string, variant domain.Variant) error

	// List returns every decodable entry in resource order.
	List() ([]*domain.Entry, error)

	// Digest identifies the current resource content.
	Digest() (string, error)
}

// StoreOpener opens the entry store backing a cache resource path.
type StoreOpener interface {
	Open(cachePath string) EntryStore
}
