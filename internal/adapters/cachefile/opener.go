package cachefile

import (
	"path/filepath"
	"sync"

	"go.trai.ch/sectx/internal/core/ports"
)

var _ ports.StoreOpener = (*Opener)(nil)

// Opener hands out one Store per resource path so span indexes survive
// across operations in the same process.
type Opener struct {
	logger ports.Logger

	mu     sync.Mutex
	stores map[string]*Store
}

// NewOpener creates an Opener whose stores log skipped entries to logger.
func NewOpener(logger ports.Logger) *Opener {
	return &Opener{logger: logger, stores: make(map[string]*Store)}
}

// Open returns the store for cachePath.
func (o *Opener) Open(cachePath string) ports.EntryStore {
	key := filepath.Clean(cachePath)

	o.mu.Lock()
	defer o.mu.Unlock()

	if s, ok := o.stores[key]; ok {
		return s
	}
	s := NewStore(key, o.logger)
	o.stores[key] = s
	return s
}
