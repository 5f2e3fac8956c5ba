// Package ports defines the core interfaces for the application.
package ports

import "github.com/Global19-atlassian-net/kapsel/internal/core/domain"

// ProjectLoader loads a project's configuration file and returns the declared
// env specs along with any accumulated problems.
//
//go:generate go run go.uber.org/mock/mockgen -source=project_loader.go -destination=mocks/mock_project_loader.go -package=mocks
type ProjectLoader interface {
	// Load reads the project configuration from the given project directory.
	Load(dir string) (*domain.Project, error)
}
