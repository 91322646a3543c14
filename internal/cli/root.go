package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hbjs97/cenv/internal/cmdexec"
	"github.com/hbjs97/cenv/internal/config"
	"github.com/hbjs97/cenv/internal/hook"
	"github.com/spf13/cobra"
)

// App은 CLI 전체가 공유하는 의존성 묶음이다. 테스트에서 Commander와 경로를
// 주입한다.
type App struct {
	CfgPath   string
	StatePath string
	Commander cmdexec.Commander
}

// NewRootCmd는 cenv CLI의 루트 명령을 생성한다.
func (a *App) NewRootCmd() *cobra.Command {
	if a.CfgPath == "" {
		a.CfgPath = filepath.Join(homeDir(), ".config", "cenv", "config.toml")
	}
	if a.StatePath == "" {
		a.StatePath = filepath.Join(homeDir(), ".config", "cenv", "state.json")
	}
	if a.Commander == nil {
		a.Commander = &cmdexec.RealCommander{}
	}

	cmd := &cobra.Command{
		Use:          "cenv",
		Short:        "디렉토리 진입 시 conda 환경 자동 활성화",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&a.CfgPath, "config", a.CfgPath, "설정 파일 경로")

	cmd.AddCommand(
		a.newActivateCmd(),
		a.newInitCmd(),
		a.newSetupCmd(),
		a.newStatusCmd(),
		a.newDoctorCmd(),
		a.newHookCmd(),
	)
	return cmd
}

// shellType는 플래그 → 설정 → $SHELL 순서로 셸 유형을 결정한다.
func (a *App) shellType(flag string, cfg *config.Config) string {
	if flag != "" {
		return flag
	}
	if cfg != nil && cfg.DefaultShell != "" {
		return cfg.DefaultShell
	}
	if sh := hook.DetectShell(); sh != "" {
		return sh
	}
	return "zsh"
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "경고: 홈 디렉토리 확인 실패: %v\n", err)
		return "."
	}
	return home
}
