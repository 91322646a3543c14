package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hbjs97/cenv/internal/config"
	"github.com/hbjs97/cenv/internal/hook"
	"github.com/spf13/cobra"
)

func (a *App) newInitCmd() *cobra.Command {
	var nameFlag string
	var envFlag string
	var noHook bool
	var shellFlag string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "현재 디렉토리를 cenv 프로젝트로 등록한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInit(nameFlag, envFlag, shellFlag, noHook)
		},
	}
	cmd.Flags().StringVarP(&nameFlag, "name", "n", "", "프로젝트 이름 (기본: 디렉토리 이름)")
	cmd.Flags().StringVarP(&envFlag, "env", "e", "", "conda 환경 이름 (기본: 프로젝트 이름)")
	cmd.Flags().StringVar(&shellFlag, "shell", "", "셸 유형 (bash, zsh, fish)")
	cmd.Flags().BoolVar(&noHook, "no-hook", false, "셸 hook 설치 생략")
	return cmd
}

func (a *App) runInit(nameFlag, envFlag, shellFlag string, noHook bool) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("cli.init: %w", err)
	}

	name := nameFlag
	if name == "" {
		name = filepath.Base(cwd)
	}
	env := envFlag
	if env == "" {
		env = name
	}

	var cfg *config.Config
	if _, statErr := os.Stat(a.CfgPath); errors.Is(statErr, os.ErrNotExist) {
		// 설정 파일이 없으면 새로 시작한다
		cfg = &config.Config{Version: 1, Projects: make(map[string]config.Project)}
	} else {
		cfg, err = config.Load(a.CfgPath)
		if err != nil {
			return err
		}
	}

	if existing, ok := cfg.Projects[name]; ok && filepath.Clean(existing.Root) != filepath.Clean(cwd) {
		return fmt.Errorf("cli.init: %w: 프로젝트 %s는 이미 다른 경로에 등록되어 있습니다: %s",
			config.ErrConfig, name, existing.Root)
	}

	cfg.Projects[name] = config.Project{Root: cwd, Env: env}
	if err := config.Save(a.CfgPath, cfg); err != nil {
		return err
	}
	fmt.Printf("프로젝트 등록 완료: %s (%s → %s)\n", name, cwd, env)

	if noHook {
		return nil
	}

	shellType := a.shellType(shellFlag, cfg)
	rcPath := hook.RCPath(shellType)
	if rcPath == "" {
		fmt.Fprintf(os.Stderr, "경고: 셸 %s는 hook 설치를 지원하지 않습니다\n", shellType)
		return nil
	}
	installed, err := hook.Install(shellType, rcPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "경고: 셸 hook 설치 실패: %v\n", err)
		return nil
	}
	if installed {
		fmt.Printf("셸 hook이 설치되었습니다: %s — 새 터미널에서 적용됩니다\n", rcPath)
	} else {
		fmt.Printf("셸 hook이 이미 설치되어 있습니다: %s\n", rcPath)
	}
	return nil
}
