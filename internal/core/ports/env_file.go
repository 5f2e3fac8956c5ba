package ports

import (
	"context"

	"github.com/Global19-atlassian-net/kapsel/internal/core/domain"
)

// EnvFileLoader reads an externally authored environment-description file
// (conda's environment.yml format) into an env spec.
//
//go:generate go run go.uber.org/mock/mockgen -source=env_file.go -destination=mocks/mock_env_file.go -package=mocks
type EnvFileLoader interface {
	// Load parses the file at path into an env spec with no inheritance link.
	// It returns nil when the file cannot be read or parsed; callers must
	// treat nil as "nothing to synchronize", not as a failure.
	Load(path string) *domain.EnvSpec
}

// SyncChecker compares external environment files against a project's known
// env specs to detect drift.
type SyncChecker interface {
	// Scan loads the candidate environment files in projectDir and returns
	// the first loaded spec that no known spec matches by name and hash, or
	// nil when everything is in sync. The error is only non-nil when the
	// context is canceled.
	Scan(ctx context.Context, known []*domain.EnvSpec, projectDir string) (*domain.OutOfSyncSpec, error)
}
