package setup

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hbjs97/cenv/internal/cmdexec"
	"github.com/hbjs97/cenv/internal/conda"
	"github.com/hbjs97/cenv/internal/config"
	"github.com/hbjs97/cenv/internal/doctor"
	"github.com/hbjs97/cenv/internal/hook"
)

// Runner는 interactive setup의 진입점이다.
type Runner struct {
	CfgPath    string
	Commander  cmdexec.Commander
	FormRunner FormRunner
	ShellType  string // 테스트용. 비어있으면 감지.
	RCPath     string // 테스트용. 비어있으면 기본 경로.
}

// Run은 setup 플로우를 실행한다.
func (r *Runner) Run(ctx context.Context) error {
	_, err := os.Stat(r.CfgPath)
	if os.IsNotExist(err) {
		return r.runFirstTime(ctx)
	}
	if err != nil {
		return fmt.Errorf("setup.Run: %w", err)
	}
	return r.runExisting(ctx)
}

func (r *Runner) runFirstTime(ctx context.Context) error {
	fmt.Println("cenv 초기 설정을 시작합니다.")

	cfg := &config.Config{
		Version:  1,
		Projects: make(map[string]config.Project),
	}

	cwd, err := os.Getwd()
	if err != nil {
		cwd = ""
	}

	for {
		defaults := &ProjectInput{Env: "ceie"}
		if cwd != "" && len(cfg.Projects) == 0 {
			defaults.Root = cwd
			defaults.Name = filepath.Base(cwd)
		}
		input, err := r.collectProject(cfg, defaults)
		if err != nil {
			return err
		}
		cfg.Projects[input.Name] = config.Project{
			Root: config.ExpandHome(input.Root),
			Env:  input.Env,
		}

		more, err := r.FormRunner.RunAddMore()
		if err != nil || !more {
			break
		}
	}

	// conda 설치 선택
	detected := DetectCondaRoots(conda.DefaultRoots(), nil)
	selected, err := r.FormRunner.RunCondaRootSelect(detected)
	if err != nil {
		return err
	}
	if selected != "" {
		cfg.CondaRoots = []string{config.ExpandHome(selected)}
	}

	shellType := r.shellType()
	cfg.DefaultShell = shellType

	if err := config.Save(r.CfgPath, cfg); err != nil {
		return err
	}
	fmt.Printf("설정 파일이 저장되었습니다: %s\n", r.CfgPath)

	// 셸 hook 설치
	if rcPath := r.rcPath(shellType); rcPath != "" {
		installed, err := hook.Install(shellType, rcPath)
		switch {
		case err != nil:
			fmt.Fprintf(os.Stderr, "경고: 셸 hook 설치 실패: %v\n", err)
		case installed:
			fmt.Printf("셸 hook이 설치되었습니다: %s\n", rcPath)
		default:
			fmt.Printf("셸 hook이 이미 설치되어 있습니다: %s\n", rcPath)
		}
	}

	r.runDoctor(ctx, cfg)
	return nil
}

func (r *Runner) collectProject(cfg *config.Config, defaults *ProjectInput) (*ProjectInput, error) {
	input, err := r.FormRunner.RunProjectForm(defaults, cfg.ProjectNames())
	if err != nil {
		return nil, err
	}
	if input.Env == "" {
		input.Env = input.Name
	}
	return input, nil
}

func (r *Runner) shellType() string {
	if r.ShellType != "" {
		return r.ShellType
	}
	sh := hook.DetectShell()
	if sh == "" {
		return "zsh"
	}
	return sh
}

func (r *Runner) rcPath(shellType string) string {
	if r.RCPath != "" {
		return r.RCPath
	}
	return hook.RCPath(shellType)
}

// runDoctor는 설정 완료 후 환경 진단을 실행한다.
func (r *Runner) runDoctor(ctx context.Context, cfg *config.Config) {
	fmt.Println("\n환경 진단 실행 중...")
	shellType := r.shellType()
	rcPath := r.rcPath(shellType)
	for _, name := range cfg.ProjectNames() {
		p := cfg.Projects[name]
		fmt.Printf("\n[%s] 프로젝트 진단:\n", name)
		results := doctor.RunAll(ctx, r.Commander, cfg, name, &p, shellType, rcPath)
		for _, res := range results {
			icon := "✓"
			if res.Status == doctor.StatusFail {
				icon = "✗"
			} else if res.Status == doctor.StatusWarn {
				icon = "!"
			}
			fmt.Printf("  [%s] %s: %s\n", icon, res.Name, res.Message)
			if res.Fix != "" {
				fmt.Printf("      Fix: %s\n", res.Fix)
			}
		}
	}
}

// runExisting는 기존 config가 있을 때의 CRUD 플로우다.
func (r *Runner) runExisting(ctx context.Context) error {
	cfg, err := config.Load(r.CfgPath)
	if err != nil {
		return err
	}

	projectNames := cfg.ProjectNames()

	fmt.Println("기존 프로젝트:")
	for _, name := range projectNames {
		p := cfg.Projects[name]
		fmt.Printf("  - %s (%s → %s)\n", name, p.Root, p.Env)
	}

	action, err := r.FormRunner.RunActionSelect(projectNames)
	if err != nil {
		return err
	}

	switch action {
	case ActionAdd:
		return r.addProject(ctx, cfg)
	case ActionEdit:
		return r.editProject(ctx, cfg, projectNames)
	case ActionDelete:
		return r.deleteProject(cfg, projectNames)
	default:
		return fmt.Errorf("setup: 알 수 없는 작업: %s", action)
	}
}

// addProject는 새 프로젝트를 추가한다.
func (r *Runner) addProject(ctx context.Context, cfg *config.Config) error {
	input, err := r.collectProject(cfg, &ProjectInput{Env: "ceie"})
	if err != nil {
		return err
	}
	cfg.Projects[input.Name] = config.Project{
		Root: config.ExpandHome(input.Root),
		Env:  input.Env,
	}
	if err := config.Save(r.CfgPath, cfg); err != nil {
		return err
	}
	r.runDoctor(ctx, cfg)
	return nil
}

// editProject는 기존 프로젝트를 수정한다.
func (r *Runner) editProject(ctx context.Context, cfg *config.Config, projectNames []string) error {
	selected, err := r.FormRunner.RunProjectSelect(projectNames)
	if err != nil {
		return err
	}

	existing := cfg.Projects[selected]
	defaults := &ProjectInput{
		Name: selected,
		Root: existing.Root,
		Env:  existing.Env,
	}

	input, err := r.FormRunner.RunProjectForm(defaults, projectNames)
	if err != nil {
		return err
	}

	// 이름이 변경된 경우
	if input.Name != selected {
		delete(cfg.Projects, selected)
	}

	cfg.Projects[input.Name] = config.Project{
		Root:        config.ExpandHome(input.Root),
		Env:         input.Env,
		Interpreter: existing.Interpreter,
	}

	if err := config.Save(r.CfgPath, cfg); err != nil {
		return err
	}
	r.runDoctor(ctx, cfg)
	return nil
}

// deleteProject는 프로젝트를 삭제한다.
func (r *Runner) deleteProject(cfg *config.Config, projectNames []string) error {
	if len(cfg.Projects) <= 1 {
		return fmt.Errorf("setup: 마지막 프로젝트는 삭제할 수 없습니다")
	}

	selected, err := r.FormRunner.RunProjectSelect(projectNames)
	if err != nil {
		return err
	}

	confirmed, err := r.FormRunner.RunConfirm(
		fmt.Sprintf("프로젝트 %q을 정말 삭제하시겠습니까?", selected))
	if err != nil {
		return err
	}
	if !confirmed {
		fmt.Println("삭제가 취소되었습니다.")
		return nil
	}

	delete(cfg.Projects, selected)
	return config.Save(r.CfgPath, cfg)
}
