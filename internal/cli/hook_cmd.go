package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hbjs97/cenv/internal/config"
	"github.com/hbjs97/cenv/internal/hook"
	"github.com/hbjs97/cenv/internal/shell"
	"github.com/spf13/cobra"
)

func (a *App) newHookCmd() *cobra.Command {
	var shellFlag string

	cmd := &cobra.Command{
		Use:   "hook",
		Short: "셸 rc 파일의 디렉토리 변경 hook을 관리한다",
	}
	cmd.PersistentFlags().StringVar(&shellFlag, "shell", "", "셸 유형 (bash, zsh, fish)")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "print",
			Short: "hook 스니펫을 출력한다",
			RunE: func(cmd *cobra.Command, args []string) error {
				shellType := a.hookShellType(shellFlag)
				snippet := shell.HookSnippet(shellType)
				if snippet == "" {
					return fmt.Errorf("cli.hook: %w: %s", hook.ErrUnsupportedShell, shellType)
				}
				fmt.Fprint(cmd.OutOrStdout(), snippet)
				return nil
			},
		},
		&cobra.Command{
			Use:   "install",
			Short: "rc 파일에 hook을 설치한다",
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.runHookInstall(shellFlag)
			},
		},
		&cobra.Command{
			Use:   "check",
			Short: "설치된 hook 블록의 무결성을 검사한다",
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.runHookCheck(shellFlag)
			},
		},
		&cobra.Command{
			Use:   "uninstall",
			Short: "rc 파일에서 hook을 제거한다",
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.runHookUninstall(shellFlag)
			},
		},
	)
	return cmd
}

func (a *App) hookShellType(flag string) string {
	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		cfg = nil
	}
	return a.shellType(flag, cfg)
}

func (a *App) runHookInstall(shellFlag string) error {
	shellType := a.hookShellType(shellFlag)
	rcPath := hook.RCPath(shellType)
	if rcPath == "" {
		return fmt.Errorf("cli.hook: %w: %s", hook.ErrUnsupportedShell, shellType)
	}

	installed, err := hook.Install(shellType, rcPath)
	if err != nil {
		return err
	}
	if !installed {
		// 중복 설치는 실패가 아니라 안내를 동반한 no-op이다
		fmt.Printf("hook이 이미 설치되어 있습니다: %s\n", rcPath)
		fmt.Println("재구성하려면 cenv hook uninstall로 먼저 제거하세요.")
		return nil
	}
	fmt.Printf("hook이 설치되었습니다: %s — 새 터미널에서 적용됩니다\n", rcPath)
	return nil
}

func (a *App) runHookCheck(shellFlag string) error {
	shellType := a.hookShellType(shellFlag)
	rcPath := hook.RCPath(shellType)
	if rcPath == "" {
		return fmt.Errorf("cli.hook: %w: %s", hook.ErrUnsupportedShell, shellType)
	}

	result, err := hook.Check(shellType, rcPath)
	if err != nil {
		return err
	}
	switch {
	case !result.Installed:
		fmt.Printf("hook 미설치: %s — cenv hook install로 설치하세요\n", rcPath)
	case result.Intact:
		fmt.Printf("hook 정상: %s\n", rcPath)
	default:
		fmt.Printf("hook 블록 손상: %s\n", strings.Join(result.Problems, ", "))
		return errors.New("cli.hook: hook 블록이 손상되었습니다 — 재설치가 필요합니다")
	}
	return nil
}

func (a *App) runHookUninstall(shellFlag string) error {
	shellType := a.hookShellType(shellFlag)
	rcPath := hook.RCPath(shellType)
	if rcPath == "" {
		return fmt.Errorf("cli.hook: %w: %s", hook.ErrUnsupportedShell, shellType)
	}
	if err := hook.Uninstall(rcPath); err != nil {
		return err
	}
	fmt.Printf("hook이 제거되었습니다: %s\n", rcPath)
	return nil
}
