package envfile

import (
	"context"
	"path/filepath"

	"github.com/Global19-atlassian-net/kapsel/internal/core/domain"
	"github.com/Global19-atlassian-net/kapsel/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// CandidateFilenames are the environment-description filenames a project
// directory is scanned for, in priority order.
var CandidateFilenames = []string{"environment.yml", "environment.yaml"}

// Checker implements ports.SyncChecker.
type Checker struct {
	loader ports.EnvFileLoader
}

// NewChecker creates a sync checker that loads files through the given loader.
func NewChecker(loader ports.EnvFileLoader) *Checker {
	return &Checker{loader: loader}
}

// FindOutOfSync loads the environment file at path and compares it against
// the known specs. It returns nil when the file did not load (nothing to
// reconcile) or when a known spec matches the loaded spec by both name and
// channels-and-packages hash (already in sync). Otherwise the loaded spec is
// the out-of-sync candidate; deciding how to reconcile is the caller's job.
func (c *Checker) FindOutOfSync(known []*domain.EnvSpec, path string) *domain.EnvSpec {
	spec := c.loader.Load(path)
	if spec == nil {
		return nil
	}

	for _, existing := range known {
		if existing.Name() == spec.Name() &&
			existing.ChannelsAndPackagesHash() == spec.ChannelsAndPackagesHash() {
			return nil
		}
	}

	return spec
}

// Scan checks each candidate environment filename in projectDir and returns
// the first out-of-sync spec in priority order, or nil when every candidate
// is in sync or absent. Each file load is independent, so the loads run
// concurrently; the result is still evaluated in filename priority order.
func (c *Checker) Scan(ctx context.Context, known []*domain.EnvSpec, projectDir string) (*domain.OutOfSyncSpec, error) {
	specs := make([]*domain.EnvSpec, len(CandidateFilenames))

	g, ctx := errgroup.WithContext(ctx)
	for i, filename := range CandidateFilenames {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			specs[i] = c.FindOutOfSync(known, filepath.Join(projectDir, filename))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, spec := range specs {
		if spec != nil {
			return &domain.OutOfSyncSpec{Spec: spec, Filename: CandidateFilenames[i]}, nil
		}
	}
	return nil, nil
}
