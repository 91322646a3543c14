package cli

import (
	"context"
	"fmt"

	"github.com/hbjs97/cenv/internal/config"
	"github.com/hbjs97/cenv/internal/doctor"
	"github.com/hbjs97/cenv/internal/hook"
	"github.com/spf13/cobra"
)

func (a *App) newDoctorCmd() *cobra.Command {
	var shellFlag string

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "환경 설정을 진단한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDoctor(cmd.Context(), shellFlag)
		},
	}
	cmd.Flags().StringVar(&shellFlag, "shell", "", "셸 유형 (bash, zsh, fish)")
	return cmd
}

func (a *App) runDoctor(ctx context.Context, shellFlag string) error {
	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		fmt.Printf("[FAIL] config: %v\n", err)
		fmt.Println("      Fix: cenv setup 실행 또는 설정 파일 확인")
	}

	if cfg == nil {
		// 설정 없이도 conda 존재 여부는 확인해준다
		printDiagResults([]doctor.DiagResult{
			doctor.CheckCondaBinary(ctx, a.Commander),
		})
		return nil
	}

	shellType := a.shellType(shellFlag, cfg)
	rcPath := hook.RCPath(shellType)

	for _, name := range cfg.ProjectNames() {
		p := cfg.Projects[name]
		fmt.Printf("\n--- 프로젝트: %s ---\n", name)
		results := doctor.RunAll(ctx, a.Commander, cfg, name, &p, shellType, rcPath)
		printDiagResults(results)
	}
	return nil
}

// printDiagResults는 진단 결과 목록을 출력한다.
func printDiagResults(results []doctor.DiagResult) {
	for _, r := range results {
		icon := statusIcon(r.Status)
		fmt.Printf("  [%s] %s: %s\n", icon, r.Name, r.Message)
		if r.Fix != "" {
			fmt.Printf("      Fix: %s\n", r.Fix)
		}
	}
}

func statusIcon(s doctor.Status) string {
	switch s {
	case doctor.StatusOK:
		return "OK"
	case doctor.StatusWarn:
		return "!!"
	case doctor.StatusFail:
		return "FAIL"
	default:
		return "??"
	}
}
