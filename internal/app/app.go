// Package app implements the application layer for kapsel.
package app

import (
	"context"

	"github.com/Global19-atlassian-net/kapsel/internal/core/domain"
	"github.com/Global19-atlassian-net/kapsel/internal/core/ports"
	"go.trai.ch/zerr"
)

// App coordinates the project loader and the sync checker.
type App struct {
	projects ports.ProjectLoader
	sync     ports.SyncChecker
}

// New creates a new App instance.
func New(projects ports.ProjectLoader, sync ports.SyncChecker) *App {
	return &App{
		projects: projects,
		sync:     sync,
	}
}

// CheckReport is the outcome of a sync check of one project directory.
type CheckReport struct {
	// Problems are configuration issues found while loading the project.
	Problems []string

	// Candidate is the env spec from an external environment file that the
	// project does not reflect, nil when everything is in sync.
	Candidate *domain.EnvSpec

	// CandidateFile names the external file the candidate came from.
	CandidateFile string

	// Existing is the project's same-named spec, nil when the candidate's
	// name is new to the project.
	Existing *domain.EnvSpec

	// Diff is the candidate's diff against Existing, "" when Existing is nil.
	Diff string
}

// InSync reports whether no external drift was found. Project problems are
// reported separately and do not affect this.
func (r *CheckReport) InSync() bool {
	return r.Candidate == nil
}

// Check loads the project in dir and scans its directory for external
// environment files that are out of sync with the project's env specs. A
// candidate whose hash was recorded under skip_imports stays suppressed.
func (a *App) Check(ctx context.Context, dir string) (*CheckReport, error) {
	project, err := a.projects.Load(dir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load project")
	}

	report := &CheckReport{Problems: project.Problems}

	result, err := a.sync.Scan(ctx, project.OrderedEnvSpecs(), dir)
	if err != nil {
		return nil, zerr.Wrap(err, "sync scan failed")
	}
	if result == nil {
		return report, nil
	}
	if project.SkipImportHash != "" &&
		project.SkipImportHash == result.Spec.ChannelsAndPackagesHash() {
		return report, nil
	}

	report.Candidate = result.Spec
	report.CandidateFile = result.Filename
	if existing, ok := project.EnvSpecs[result.Spec.Name()]; ok {
		report.Existing = existing
		report.Diff = result.Spec.DiffFrom(existing)
	}
	return report, nil
}

// EnvSpecInfo is a display row for one env spec.
type EnvSpecInfo struct {
	Name            string
	Description     string
	Hash            string
	InheritFromName string
	CondaPackages   []string
	PipPackages     []string
	Channels        []string
}

// ListEnvSpecs returns the project's env specs in declaration order.
func (a *App) ListEnvSpecs(dir string) ([]EnvSpecInfo, error) {
	project, err := a.projects.Load(dir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load project")
	}

	infos := make([]EnvSpecInfo, 0, len(project.EnvSpecNames))
	for _, spec := range project.OrderedEnvSpecs() {
		infos = append(infos, EnvSpecInfo{
			Name:            spec.Name(),
			Description:     spec.Description(),
			Hash:            spec.ChannelsAndPackagesHash(),
			InheritFromName: spec.InheritFromName(),
			CondaPackages:   spec.CondaPackages(),
			PipPackages:     spec.PipPackages(),
			Channels:        spec.Channels(),
		})
	}
	return infos, nil
}

// DiffSpecs renders the diff of the env spec named newName against the one
// named oldName within the project in dir.
func (a *App) DiffSpecs(dir, oldName, newName string) (string, error) {
	project, err := a.projects.Load(dir)
	if err != nil {
		return "", zerr.Wrap(err, "failed to load project")
	}

	oldSpec, ok := project.EnvSpecs[oldName]
	if !ok {
		return "", zerr.With(zerr.Wrap(domain.ErrEnvSpecNotFound, "resolving diff operand"), "env_spec", oldName)
	}
	newSpec, ok := project.EnvSpecs[newName]
	if !ok {
		return "", zerr.With(zerr.Wrap(domain.ErrEnvSpecNotFound, "resolving diff operand"), "env_spec", newName)
	}

	return newSpec.DiffFrom(oldSpec), nil
}
