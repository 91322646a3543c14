package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/hbjs97/cenv/internal/activator"
	"github.com/hbjs97/cenv/internal/conda"
	"github.com/hbjs97/cenv/internal/config"
	"github.com/hbjs97/cenv/internal/shell"
	"github.com/hbjs97/cenv/internal/state"
	"github.com/spf13/cobra"
)

func (a *App) newActivateCmd() *cobra.Command {
	var shellFlag string
	var hookOnly bool

	cmd := &cobra.Command{
		Use:   "activate",
		Short: "현재 디렉토리에 맞는 conda 환경 활성화 스니펫을 출력한다",
		Long: `현재 디렉토리가 등록된 프로젝트 root 아래면 conda 환경 활성화 스니펫을
stdout으로 출력한다. 셸 hook이 출력을 eval하여 실제 활성화가 일어난다.
이미 목표 환경이 활성화되어 있으면 아무것도 출력하지 않는다.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if hookOnly {
				fmt.Fprint(cmd.OutOrStdout(), shell.HookSnippet(a.shellType(shellFlag, nil)))
				return nil
			}
			return a.runActivate(cmd.OutOrStdout(), shellFlag)
		},
	}
	cmd.Flags().StringVar(&shellFlag, "shell", "", "셸 유형 (bash, zsh, fish)")
	cmd.Flags().BoolVar(&hookOnly, "hook", false, "hook 스니펫만 출력")
	return cmd
}

func (a *App) runActivate(w io.Writer, shellFlag string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("cli.activate: %w", err)
	}

	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		// hook이 모든 디렉토리 변경마다 호출하므로 설정이 없어도 조용히 성공한다
		return nil
	}

	shellType := a.shellType(shellFlag, cfg)
	currentEnv := os.Getenv("CONDA_DEFAULT_ENV")

	snippet, act, err := BuildActivation(cfg, cwd, currentEnv, shellType, conda.RootExists)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cenv: %v — conda 설치 경로를 conda_roots 설정으로 지정하세요\n", err)
		return err
	}
	if snippet == "" {
		return nil
	}

	fmt.Fprint(w, snippet)

	// 관측용 기록. 실패해도 활성화 자체에는 영향이 없다.
	if s, err := state.Load(a.StatePath); err == nil {
		s.Record(*act)
		_ = s.Save(a.StatePath)
	}
	return nil
}

// BuildActivation은 활성화 스니펫을 만든다. 출력할 것이 없으면 빈 문자열을
// 반환한다 (프로젝트 밖이거나 이미 활성화된 경우 — 두 경우 모두 부수효과가
// 없어야 한다). conda를 찾지 못하면 ErrManagerUnavailable를 반환한다.
func BuildActivation(cfg *config.Config, cwd, currentEnv, shellType string, exists func(string) bool) (string, *state.Activation, error) {
	name, project, ok := cfg.MatchProject(cwd)
	if !ok {
		// 프로젝트 밖에서는 비활성화도 하지 않는다. 활성화만 하고 비활성화는
		// 하지 않는 비대칭은 의도된 정책이다.
		return "", nil, nil
	}

	candidates := cfg.CondaRoots
	if len(candidates) == 0 {
		candidates = conda.DefaultRoots()
	}

	decision, err := activator.Decide(currentEnv, project.Env, candidates, exists)
	if err != nil {
		return "", nil, fmt.Errorf("cli.activate: %w", err)
	}
	if decision.AlreadyActive {
		return "", nil, nil
	}

	initScript := conda.InitScript(decision.CondaRoot, shellType)
	snippet := shell.ActivationSnippet(initScript, project.Env, shellType)

	act := &state.Activation{
		Project:     name,
		Env:         project.Env,
		CondaRoot:   decision.CondaRoot,
		InitScript:  initScript,
		Interpreter: conda.InterpreterPath(decision.CondaRoot, project.Env),
	}
	return snippet, act, nil
}
