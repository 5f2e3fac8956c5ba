package envfile

import (
	"context"

	"github.com/Global19-atlassian-net/kapsel/internal/core/ports"
	"github.com/grindlemire/graft"
)

const (
	LoaderNodeID  graft.ID = "adapter.envfile.loader"
	CheckerNodeID graft.ID = "adapter.envfile.checker"
)

func init() {
	graft.Register(graft.Node[ports.EnvFileLoader]{
		ID:        LoaderNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.EnvFileLoader, error) {
			return NewLoader(), nil
		},
	})

	graft.Register(graft.Node[ports.SyncChecker]{
		ID:        CheckerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{LoaderNodeID},
		Run: func(ctx context.Context) (ports.SyncChecker, error) {
			loader, err := graft.Dep[ports.EnvFileLoader](ctx)
			if err != nil {
				return nil, err
			}
			return NewChecker(loader), nil
		},
	})
}
