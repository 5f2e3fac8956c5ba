package app_test

import (
	"context"
	"testing"

	"github.com/Global19-atlassian-net/kapsel/internal/app"
	"github.com/Global19-atlassian-net/kapsel/internal/core/domain"
	"github.com/Global19-atlassian-net/kapsel/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func spec(t *testing.T, name string, conda, channels, pip []string) *domain.EnvSpec {
	t.Helper()
	s, err := domain.NewEnvSpec(name, conda, channels, pip, "", "", nil)
	require.NoError(t, err)
	return s
}

func projectWith(dir string, specs ...*domain.EnvSpec) *domain.Project {
	p := &domain.Project{
		Dir:      dir,
		EnvSpecs: make(map[string]*domain.EnvSpec),
	}
	for _, s := range specs {
		p.EnvSpecs[s.Name()] = s
		p.EnvSpecNames = append(p.EnvSpecNames, s.Name())
	}
	if len(p.EnvSpecNames) > 0 {
		p.DefaultEnvSpecName = p.EnvSpecNames[0]
	}
	return p
}

func TestCheck_InSync(t *testing.T) {
	ctrl := gomock.NewController(t)

	known := spec(t, "default", []string{"numpy"}, nil, nil)
	project := projectWith("proj", known)

	loader := mocks.NewMockProjectLoader(ctrl)
	checker := mocks.NewMockSyncChecker(ctrl)
	loader.EXPECT().Load("proj").Return(project, nil)
	checker.EXPECT().Scan(gomock.Any(), []*domain.EnvSpec{known}, "proj").Return(nil, nil)

	report, err := app.New(loader, checker).Check(context.Background(), "proj")
	require.NoError(t, err)
	assert.True(t, report.InSync())
	assert.Nil(t, report.Candidate)
	assert.Empty(t, report.Diff)
}

func TestCheck_CandidateWithDiffAgainstExisting(t *testing.T) {
	ctrl := gomock.NewController(t)

	existing := spec(t, "default", []string{"numpy"}, nil, nil)
	project := projectWith("proj", existing)
	candidate := spec(t, "default", []string{"numpy", "pandas"}, nil, nil)

	loader := mocks.NewMockProjectLoader(ctrl)
	checker := mocks.NewMockSyncChecker(ctrl)
	loader.EXPECT().Load("proj").Return(project, nil)
	checker.EXPECT().Scan(gomock.Any(), gomock.Any(), "proj").
		Return(&domain.OutOfSyncSpec{Spec: candidate, Filename: "environment.yml"}, nil)

	report, err := app.New(loader, checker).Check(context.Background(), "proj")
	require.NoError(t, err)
	assert.False(t, report.InSync())
	assert.Same(t, candidate, report.Candidate)
	assert.Equal(t, "environment.yml", report.CandidateFile)
	assert.Same(t, existing, report.Existing)
	assert.Contains(t, report.Diff, "+ pandas")
}

func TestCheck_NewSpecHasNoExisting(t *testing.T) {
	ctrl := gomock.NewController(t)

	project := projectWith("proj", spec(t, "default", []string{"numpy"}, nil, nil))
	candidate := spec(t, "gpu", []string{"cudatoolkit"}, nil, nil)

	loader := mocks.NewMockProjectLoader(ctrl)
	checker := mocks.NewMockSyncChecker(ctrl)
	loader.EXPECT().Load("proj").Return(project, nil)
	checker.EXPECT().Scan(gomock.Any(), gomock.Any(), "proj").
		Return(&domain.OutOfSyncSpec{Spec: candidate, Filename: "environment.yml"}, nil)

	report, err := app.New(loader, checker).Check(context.Background(), "proj")
	require.NoError(t, err)
	assert.Same(t, candidate, report.Candidate)
	assert.Nil(t, report.Existing)
	assert.Empty(t, report.Diff)
}

func TestCheck_SkipImportHashSuppressesCandidate(t *testing.T) {
	ctrl := gomock.NewController(t)

	project := projectWith("proj", spec(t, "default", []string{"numpy"}, nil, nil))
	candidate := spec(t, "default", []string{"numpy", "pandas"}, nil, nil)
	project.SkipImportHash = candidate.ChannelsAndPackagesHash()

	loader := mocks.NewMockProjectLoader(ctrl)
	checker := mocks.NewMockSyncChecker(ctrl)
	loader.EXPECT().Load("proj").Return(project, nil)
	checker.EXPECT().Scan(gomock.Any(), gomock.Any(), "proj").
		Return(&domain.OutOfSyncSpec{Spec: candidate, Filename: "environment.yml"}, nil)

	report, err := app.New(loader, checker).Check(context.Background(), "proj")
	require.NoError(t, err)
	assert.True(t, report.InSync())
}

func TestCheck_ReportsProjectProblems(t *testing.T) {
	ctrl := gomock.NewController(t)

	project := projectWith("proj")
	project.Problems = []string{"kapsel.yml has an empty env_specs section."}

	loader := mocks.NewMockProjectLoader(ctrl)
	checker := mocks.NewMockSyncChecker(ctrl)
	loader.EXPECT().Load("proj").Return(project, nil)
	checker.EXPECT().Scan(gomock.Any(), gomock.Any(), "proj").Return(nil, nil)

	report, err := app.New(loader, checker).Check(context.Background(), "proj")
	require.NoError(t, err)
	assert.Equal(t, project.Problems, report.Problems)
}

func TestListEnvSpecs(t *testing.T) {
	ctrl := gomock.NewController(t)

	base := spec(t, "base", []string{"numpy"}, []string{"defaults"}, nil)
	project := projectWith("proj", base, spec(t, "extra", []string{"pandas"}, nil, []string{"flask"}))

	loader := mocks.NewMockProjectLoader(ctrl)
	checker := mocks.NewMockSyncChecker(ctrl)
	loader.EXPECT().Load("proj").Return(project, nil)

	infos, err := app.New(loader, checker).ListEnvSpecs("proj")
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, "base", infos[0].Name)
	assert.Equal(t, base.ChannelsAndPackagesHash(), infos[0].Hash)
	assert.Equal(t, []string{"pandas"}, infos[1].CondaPackages)
}

func TestDiffSpecs(t *testing.T) {
	ctrl := gomock.NewController(t)

	project := projectWith("proj",
		spec(t, "old", []string{"numpy"}, nil, nil),
		spec(t, "new", []string{"numpy", "pandas"}, nil, nil),
	)

	loader := mocks.NewMockProjectLoader(ctrl)
	checker := mocks.NewMockSyncChecker(ctrl)
	loader.EXPECT().Load("proj").Return(project, nil).Times(2)

	a := app.New(loader, checker)

	diff, err := a.DiffSpecs("proj", "old", "new")
	require.NoError(t, err)
	assert.Contains(t, diff, "+ pandas")

	_, err = a.DiffSpecs("proj", "old", "missing")
	require.ErrorIs(t, err, domain.ErrEnvSpecNotFound)
}
