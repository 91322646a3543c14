package doctor

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hbjs97/cenv/internal/cmdexec"
	"github.com/hbjs97/cenv/internal/conda"
	"github.com/hbjs97/cenv/internal/config"
	"github.com/hbjs97/cenv/internal/hook"
)

// Status는 진단 결과 상태다.
type Status string

const (
	// StatusOK는 정상 상태다.
	StatusOK Status = "OK"
	// StatusWarn는 경고 상태다.
	StatusWarn Status = "WARN"
	// StatusFail는 실패 상태다.
	StatusFail Status = "FAIL"
)

// DiagResult는 하나의 진단 결과다.
type DiagResult struct {
	Name    string
	Status  Status
	Message string
	Fix     string
}

// CheckCondaBinary는 conda CLI 존재 여부를 확인한다.
func CheckCondaBinary(ctx context.Context, cmd cmdexec.Commander) DiagResult {
	adapter := conda.NewAdapter(cmd)
	version, err := adapter.Version(ctx)
	if err != nil {
		return DiagResult{
			Name:    "conda",
			Status:  StatusFail,
			Message: "conda 없음",
			Fix:     "설치: https://docs.conda.io/projects/miniconda/",
		}
	}
	return DiagResult{
		Name:    "conda",
		Status:  StatusOK,
		Message: strings.TrimSpace(version),
	}
}

// CheckRoots는 후보 경로 중 유효한 conda 설치가 있는지 확인한다.
// exists가 nil이면 conda.RootExists를 사용한다.
func CheckRoots(candidates []string, exists func(string) bool) DiagResult {
	if exists == nil {
		exists = conda.RootExists
	}
	for _, root := range candidates {
		if exists(root) {
			return DiagResult{
				Name:    "conda_root",
				Status:  StatusOK,
				Message: fmt.Sprintf("conda 설치 발견: %s", root),
			}
		}
	}
	return DiagResult{
		Name:    "conda_root",
		Status:  StatusFail,
		Message: "후보 경로 어디에도 conda 초기화 스크립트가 없습니다",
		Fix:     "conda_roots 설정에 설치 경로를 추가하세요",
	}
}

// CheckEnv는 프로젝트의 conda 환경이 존재하는지 확인한다.
func CheckEnv(ctx context.Context, cmd cmdexec.Commander, env string) DiagResult {
	adapter := conda.NewAdapter(cmd)
	if err := adapter.EnvExists(ctx, env); err != nil {
		return DiagResult{
			Name:    fmt.Sprintf("env_%s", env),
			Status:  StatusFail,
			Message: fmt.Sprintf("환경 %s 없음", env),
			Fix:     fmt.Sprintf("conda create -n %s 실행", env),
		}
	}
	return DiagResult{
		Name:    fmt.Sprintf("env_%s", env),
		Status:  StatusOK,
		Message: fmt.Sprintf("환경 %s 존재", env),
	}
}

// CheckHook는 셸 rc 파일의 hook 설치 상태를 확인한다.
func CheckHook(shellType, rcPath string) DiagResult {
	result, err := hook.Check(shellType, rcPath)
	if err != nil {
		return DiagResult{
			Name:    "shell_hook",
			Status:  StatusFail,
			Message: fmt.Sprintf("rc 파일 읽기 실패: %v", err),
		}
	}
	if !result.Installed {
		return DiagResult{
			Name:    "shell_hook",
			Status:  StatusFail,
			Message: fmt.Sprintf("hook 미설치: %s", rcPath),
			Fix:     "cenv hook install 실행",
		}
	}
	if !result.Intact {
		return DiagResult{
			Name:    "shell_hook",
			Status:  StatusWarn,
			Message: fmt.Sprintf("hook 블록 손상: %s", strings.Join(result.Problems, ", ")),
			Fix:     "cenv hook uninstall 후 cenv hook install로 재설치",
		}
	}
	return DiagResult{
		Name:    "shell_hook",
		Status:  StatusOK,
		Message: fmt.Sprintf("hook 설치됨: %s", rcPath),
	}
}

// CheckEditorInterpreter는 VSCode 설정의 인터프리터 경로가 기대 경로와
// 일치하는지 확인한다. 원본 프로젝트에서 수동 단계였던 에디터 설정을
// 진단으로만 노출하며 파일을 쓰지는 않는다.
func CheckEditorInterpreter(projectRoot, expected string) DiagResult {
	settingsPath := filepath.Join(projectRoot, ".vscode", "settings.json")
	data, err := os.ReadFile(settingsPath)
	if os.IsNotExist(err) {
		return DiagResult{
			Name:    "editor_interpreter",
			Status:  StatusWarn,
			Message: ".vscode/settings.json 없음",
			Fix:     fmt.Sprintf("python.defaultInterpreterPath를 %s로 설정하세요", expected),
		}
	}
	if err != nil {
		return DiagResult{
			Name:    "editor_interpreter",
			Status:  StatusWarn,
			Message: fmt.Sprintf("설정 파일 읽기 실패: %v", err),
		}
	}

	var settings map[string]any
	if err := json.Unmarshal(data, &settings); err != nil {
		// VSCode 설정은 주석을 허용하므로 파싱 실패는 비판정으로 둔다
		return DiagResult{
			Name:    "editor_interpreter",
			Status:  StatusWarn,
			Message: "settings.json 파싱 실패 — 수동으로 확인하세요",
		}
	}

	actual, _ := settings["python.defaultInterpreterPath"].(string)
	if actual == "" {
		return DiagResult{
			Name:    "editor_interpreter",
			Status:  StatusWarn,
			Message: "python.defaultInterpreterPath 미설정",
			Fix:     fmt.Sprintf("%s로 설정하세요", expected),
		}
	}
	if config.ExpandHome(actual) != expected {
		return DiagResult{
			Name:    "editor_interpreter",
			Status:  StatusWarn,
			Message: fmt.Sprintf("인터프리터 불일치: %s (기대: %s)", actual, expected),
			Fix:     fmt.Sprintf("python.defaultInterpreterPath를 %s로 변경하세요", expected),
		}
	}
	return DiagResult{
		Name:    "editor_interpreter",
		Status:  StatusOK,
		Message: fmt.Sprintf("인터프리터 일치: %s", actual),
	}
}

// RunAll은 프로젝트 하나에 대한 모든 진단을 실행한다.
func RunAll(ctx context.Context, cmd cmdexec.Commander, cfg *config.Config, name string, p *config.Project, shellType, rcPath string) []DiagResult {
	candidates := cfg.CondaRoots
	if len(candidates) == 0 {
		candidates = conda.DefaultRoots()
	}

	results := []DiagResult{
		CheckCondaBinary(ctx, cmd),
		CheckRoots(candidates, nil),
		CheckEnv(ctx, cmd, p.Env),
		CheckHook(shellType, rcPath),
	}

	expected := p.Interpreter
	if expected == "" {
		for _, root := range candidates {
			if conda.RootExists(root) {
				expected = conda.InterpreterPath(root, p.Env)
				break
			}
		}
	}
	if expected != "" {
		results = append(results, CheckEditorInterpreter(p.Root, expected))
	}
	return results
}
