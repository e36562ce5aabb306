package orgdoc

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sectx/internal/core/ports"
)

// NodeID is the unique identifier for the document loader Graft node.
const NodeID graft.ID = "adapter.orgdoc"

func init() {
	graft.Register(graft.Node[ports.DocumentLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DocumentLoader, error) {
			return NewLoader(), nil
		},
	})
}
