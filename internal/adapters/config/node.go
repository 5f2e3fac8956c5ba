package config

import (
	"context"

	"github.com/Global19-atlassian-net/kapsel/internal/core/ports"
	"github.com/grindlemire/graft"
)

const NodeID graft.ID = "adapter.project_loader"

func init() {
	graft.Register(graft.Node[ports.ProjectLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ProjectLoader, error) {
			return NewCachedLoader(NewLoader()), nil
		},
	})
}
