package summarizer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sectx/internal/adapters/logger"
	"go.trai.ch/sectx/internal/core/ports"
)

// NodeID is the unique identifier for the summarizer factory Graft node.
const NodeID graft.ID = "adapter.summarizer"

func init() {
	graft.Register(graft.Node[ports.SummarizerFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.SummarizerFactory, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRunner(log), nil
		},
	})
}
