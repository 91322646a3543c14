package setup_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/hbjs97/cenv/internal/config"
	"github.com/hbjs97/cenv/internal/hook"
	"github.com/hbjs97/cenv/internal/setup"
	"github.com/hbjs97/cenv/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockFormRunner replays scripted answers.
type mockFormRunner struct {
	projectInputs []*setup.ProjectInput
	formCalls     int
	addMore       []bool
	addMoreCalls  int
	action        setup.Action
	selected      string
	confirm       bool
	condaRoot     string
}

var _ setup.FormRunner = (*mockFormRunner)(nil)

func (m *mockFormRunner) RunProjectForm(defaults *setup.ProjectInput, existing []string) (*setup.ProjectInput, error) {
	if m.formCalls >= len(m.projectInputs) {
		return nil, fmt.Errorf("mockFormRunner: unexpected form call %d", m.formCalls)
	}
	input := m.projectInputs[m.formCalls]
	m.formCalls++
	return input, nil
}

func (m *mockFormRunner) RunActionSelect([]string) (setup.Action, error) { return m.action, nil }
func (m *mockFormRunner) RunProjectSelect([]string) (string, error)      { return m.selected, nil }
func (m *mockFormRunner) RunConfirm(string) (bool, error)                { return m.confirm, nil }

func (m *mockFormRunner) RunAddMore() (bool, error) {
	if m.addMoreCalls >= len(m.addMore) {
		return false, nil
	}
	more := m.addMore[m.addMoreCalls]
	m.addMoreCalls++
	return more, nil
}

func (m *mockFormRunner) RunCondaRootSelect([]string) (string, error) { return m.condaRoot, nil }

func registerDoctorCommands(fake *testutil.FakeCommander) {
	fake.Register("conda --version", "conda 24.1.2\n", nil)
	fake.Register("conda env list --json", `{"envs": ["/opt/conda/envs/ceie"]}`, nil)
}

func TestRun_FirstTime(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	rcPath := filepath.Join(dir, ".zshrc")
	projectRoot := t.TempDir()

	fake := testutil.NewFakeCommander()
	registerDoctorCommands(fake)

	form := &mockFormRunner{
		projectInputs: []*setup.ProjectInput{
			{Name: "ceie", Root: projectRoot, Env: "ceie"},
		},
		condaRoot: "/opt/conda",
	}

	r := &setup.Runner{
		CfgPath:    cfgPath,
		Commander:  fake,
		FormRunner: form,
		ShellType:  "zsh",
		RCPath:     rcPath,
	}
	require.NoError(t, r.Run(context.Background()))

	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "ceie", cfg.Projects["ceie"].Env)
	assert.Equal(t, []string{"/opt/conda"}, cfg.CondaRoots)
	assert.Equal(t, "zsh", cfg.DefaultShell)

	// hook이 함께 설치된다
	result, err := hook.Check("zsh", rcPath)
	require.NoError(t, err)
	assert.True(t, result.Installed)
}

func TestRun_FirstTime_MultipleProjects(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	rootA, rootB := t.TempDir(), t.TempDir()

	fake := testutil.NewFakeCommander()
	registerDoctorCommands(fake)
	fake.Register("conda env list --json", `{"envs": []}`, nil)

	form := &mockFormRunner{
		projectInputs: []*setup.ProjectInput{
			{Name: "ceie", Root: rootA, Env: "ceie"},
			{Name: "lab", Root: rootB, Env: "lab"},
		},
		addMore: []bool{true, false},
	}

	r := &setup.Runner{
		CfgPath:    cfgPath,
		Commander:  fake,
		FormRunner: form,
		ShellType:  "zsh",
		RCPath:     filepath.Join(dir, ".zshrc"),
	}
	require.NoError(t, r.Run(context.Background()))

	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)
	assert.Len(t, cfg.Projects, 2)
}

func TestRun_Existing_Delete(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	rootA, rootB := t.TempDir(), t.TempDir()

	cfg := &config.Config{
		Version: 1,
		Projects: map[string]config.Project{
			"ceie": {Root: rootA, Env: "ceie"},
			"lab":  {Root: rootB, Env: "lab"},
		},
	}
	require.NoError(t, config.Save(cfgPath, cfg))

	form := &mockFormRunner{
		action:   setup.ActionDelete,
		selected: "lab",
		confirm:  true,
	}
	r := &setup.Runner{
		CfgPath:    cfgPath,
		Commander:  testutil.NewFakeCommander(),
		FormRunner: form,
		ShellType:  "zsh",
		RCPath:     filepath.Join(dir, ".zshrc"),
	}
	require.NoError(t, r.Run(context.Background()))

	loaded, err := config.Load(cfgPath)
	require.NoError(t, err)
	assert.Len(t, loaded.Projects, 1)
	_, ok := loaded.Projects["lab"]
	assert.False(t, ok)
}

func TestRun_Existing_DeleteLastProjectRejected(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")

	cfg := &config.Config{
		Version: 1,
		Projects: map[string]config.Project{
			"ceie": {Root: t.TempDir(), Env: "ceie"},
		},
	}
	require.NoError(t, config.Save(cfgPath, cfg))

	form := &mockFormRunner{action: setup.ActionDelete, selected: "ceie", confirm: true}
	r := &setup.Runner{
		CfgPath:    cfgPath,
		Commander:  testutil.NewFakeCommander(),
		FormRunner: form,
		ShellType:  "zsh",
		RCPath:     filepath.Join(dir, ".zshrc"),
	}
	assert.Error(t, r.Run(context.Background()))
}

func TestRun_Existing_Edit(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	root := t.TempDir()

	cfg := &config.Config{
		Version: 1,
		Projects: map[string]config.Project{
			"ceie": {Root: root, Env: "ceie"},
		},
	}
	require.NoError(t, config.Save(cfgPath, cfg))

	fake := testutil.NewFakeCommander()
	registerDoctorCommands(fake)

	form := &mockFormRunner{
		action:   setup.ActionEdit,
		selected: "ceie",
		projectInputs: []*setup.ProjectInput{
			{Name: "ceie", Root: root, Env: "ceie2024"},
		},
	}
	r := &setup.Runner{
		CfgPath:    cfgPath,
		Commander:  fake,
		FormRunner: form,
		ShellType:  "zsh",
		RCPath:     filepath.Join(dir, ".zshrc"),
	}
	require.NoError(t, r.Run(context.Background()))

	loaded, err := config.Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "ceie2024", loaded.Projects["ceie"].Env)
}

func TestRun_StatError(t *testing.T) {
	// CfgPath의 부모가 파일이면 stat이 NotExist가 아닌 에러를 낸다
	dir := t.TempDir()
	file := filepath.Join(dir, "plain")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0600))

	r := &setup.Runner{
		CfgPath:    filepath.Join(file, "config.toml"),
		Commander:  testutil.NewFakeCommander(),
		FormRunner: &mockFormRunner{},
		ShellType:  "zsh",
		RCPath:     filepath.Join(dir, ".zshrc"),
	}
	assert.Error(t, r.Run(context.Background()))
}
