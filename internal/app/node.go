package app

import (
	"context"

	"github.com/Global19-atlassian-net/kapsel/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"github.com/Global19-atlassian-net/kapsel/internal/adapters/envfile" //nolint:depguard // Wired in app layer
	"github.com/Global19-atlassian-net/kapsel/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"github.com/Global19-atlassian-net/kapsel/internal/core/ports"
	"github.com/grindlemire/graft"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains the initialized application components needed by the
// CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			envfile.CheckerNodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			projects, err := graft.Dep[ports.ProjectLoader](ctx)
			if err != nil {
				return nil, err
			}
			checker, err := graft.Dep[ports.SyncChecker](ctx)
			if err != nil {
				return nil, err
			}
			return New(projects, checker), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: a, Logger: log}, nil
		},
	})
}
