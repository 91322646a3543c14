package cli

import (
	"fmt"
	"os"

	"github.com/hbjs97/cenv/internal/conda"
	"github.com/hbjs97/cenv/internal/config"
	"github.com/hbjs97/cenv/internal/state"
	"github.com/spf13/cobra"
)

func (a *App) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "현재 디렉토리의 프로젝트와 환경 상태를 표시한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runStatus()
		},
	}
}

func (a *App) runStatus() error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("cli.status: %w", err)
	}

	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		fmt.Println("설정 파일이 없습니다. 'cenv init' 또는 'cenv setup'을 실행하세요.")
		return nil
	}

	name, project, ok := cfg.MatchProject(cwd)
	if !ok {
		fmt.Println("이 디렉토리는 등록된 프로젝트가 아닙니다.")
		return nil
	}

	currentEnv := os.Getenv("CONDA_DEFAULT_ENV")

	fmt.Printf("프로젝트: %s\n", name)
	fmt.Printf("  root:     %s\n", project.Root)
	fmt.Printf("  환경:     %s\n", project.Env)
	if currentEnv == project.Env {
		fmt.Printf("  상태:     활성화됨\n")
	} else if currentEnv == "" {
		fmt.Printf("  상태:     비활성 (CONDA_DEFAULT_ENV 없음)\n")
	} else {
		fmt.Printf("  상태:     다른 환경 활성화됨: %s\n", currentEnv)
	}

	if interp := a.expectedInterpreter(cfg, project); interp != "" {
		fmt.Printf("  기대 인터프리터: %s\n", interp)
	}

	s, err := state.Load(a.StatePath)
	if err == nil && s.Last != nil {
		fmt.Printf("  마지막 활성화: %s (%s, %s)\n", s.Last.Env, s.Last.CondaRoot, s.Last.EmittedAt)
	}
	return nil
}

// expectedInterpreter는 에디터 설정과 비교할 기대 인터프리터 경로를 유도한다.
func (a *App) expectedInterpreter(cfg *config.Config, project *config.Project) string {
	if project.Interpreter != "" {
		return project.Interpreter
	}
	candidates := cfg.CondaRoots
	if len(candidates) == 0 {
		candidates = conda.DefaultRoots()
	}
	for _, root := range candidates {
		if conda.RootExists(root) {
			return conda.InterpreterPath(root, project.Env)
		}
	}
	return ""
}
