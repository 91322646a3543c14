package hook

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hbjs97/cenv/internal/shell"
)

// ErrUnsupportedShell는 hook 스니펫이 없는 셸일 때 반환된다.
var ErrUnsupportedShell = errors.New("지원하지 않는 셸")

// DetectShell은 현재 사용자의 셸을 감지한다.
func DetectShell() string {
	sh := os.Getenv("SHELL")
	if sh == "" {
		return ""
	}
	return filepath.Base(sh)
}

// RCPath는 셸별 시작 스크립트 경로를 반환한다.
func RCPath(shellType string) string {
	home, _ := os.UserHomeDir() // 홈 디렉토리 조회 실패 시 빈 문자열
	switch shellType {
	case "zsh":
		return filepath.Join(home, ".zshrc")
	case "bash":
		return filepath.Join(home, ".bashrc")
	case "fish":
		return filepath.Join(home, ".config", "fish", "conf.d", "cenv.fish")
	default:
		return ""
	}
}

// Install은 rc 파일에 cenv hook 블록을 추가한다.
//
// 중복 검사는 Marker 문자열의 substring 검색 하나뿐이다. Marker가 이미 있으면
// 쓰기 없이 (false, nil)을 반환하고, 호출자가 재설치 전 수동 제거가 필요하다는
// 안내를 출력해야 한다. Marker 텍스트만 수동으로 지운 블록은 로직이 남아 있어도
// 재설치되어 중복 실행될 수 있다 — 알려진 한계이며 그대로 둔다.
func Install(shellType, rcPath string) (bool, error) {
	snippet := shell.HookSnippet(shellType)
	if snippet == "" {
		return false, fmt.Errorf("hook.Install: %w: %s", ErrUnsupportedShell, shellType)
	}

	existing, _ := os.ReadFile(rcPath) // 파일이 없으면 빈 바이트
	if strings.Contains(string(existing), shell.Marker) {
		return false, nil // 이미 설치됨
	}

	if dir := filepath.Dir(rcPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return false, fmt.Errorf("hook.Install: %w", err)
		}
	}

	f, err := os.OpenFile(rcPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return false, fmt.Errorf("hook.Install: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "\n%s", snippet); err != nil {
		return false, fmt.Errorf("hook.Install: %w", err)
	}
	return true, nil
}

// CheckResult는 설치된 hook 블록의 무결성 검사 결과다.
type CheckResult struct {
	Installed bool
	// Intact는 블록 구조(시작/끝 marker, 이벤트 등록 라인)가 온전할 때 true다.
	Intact bool
	// Problems는 발견된 문제 설명 목록이다.
	Problems []string
}

// Check는 rc 파일의 hook 블록 상태를 검사한다.
func Check(shellType, rcPath string) (*CheckResult, error) {
	data, err := os.ReadFile(rcPath)
	if os.IsNotExist(err) {
		return &CheckResult{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("hook.Check: %w", err)
	}

	content := string(data)
	result := &CheckResult{}
	if !strings.Contains(content, shell.Marker) {
		return result, nil
	}
	result.Installed = true
	result.Intact = true

	if !strings.Contains(content, shell.EndMarker) {
		result.Intact = false
		result.Problems = append(result.Problems, "블록 끝 marker 없음")
	}

	var registration string
	switch shellType {
	case "zsh":
		registration = "chpwd_functions"
	case "bash":
		registration = "PROMPT_COMMAND"
	case "fish":
		registration = "--on-variable PWD"
	}
	if registration != "" && !strings.Contains(content, registration) {
		result.Intact = false
		result.Problems = append(result.Problems, "이벤트 등록 라인 없음: "+registration)
	}

	if strings.Count(content, shell.Marker+" (") > 1 {
		result.Intact = false
		result.Problems = append(result.Problems, "hook 블록이 중복 설치됨")
	}

	return result, nil
}

// Uninstall은 rc 파일에서 hook 블록을 제거한다.
// 블록이 없으면 no-op이다.
func Uninstall(rcPath string) error {
	data, err := os.ReadFile(rcPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("hook.Uninstall: %w", err)
	}

	content := string(data)
	startIdx := strings.Index(content, "# "+shell.Marker)
	endIdx := strings.Index(content, "# "+shell.EndMarker)
	if startIdx == -1 {
		return nil
	}
	if endIdx == -1 {
		return fmt.Errorf("hook.Uninstall: 블록 끝 marker가 없어 제거할 수 없습니다 — 수동으로 제거하세요")
	}

	after := content[endIdx+len("# "+shell.EndMarker):]
	after = strings.TrimPrefix(after, "\n")
	cleaned := strings.TrimRight(content[:startIdx], "\n") + "\n" + strings.TrimLeft(after, "\n")
	if strings.TrimSpace(cleaned) == "" {
		return os.Remove(rcPath)
	}
	return os.WriteFile(rcPath, []byte(cleaned), 0600)
}
