// Package conda locates conda installations and wraps the conda CLI.
// The per-shell activation script must be sourced by the user's shell, not
// executed here; this package only resolves paths and answers questions the
// Go process can answer on its own (version, whether a named env exists).
package conda

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hbjs97/cenv/internal/cmdexec"
)

// ErrEnvNotFound는 conda는 있지만 이름에 해당하는 환경이 없을 때 반환된다.
// 활성화 실패(ActivationFailed) 범주의 Go 측 표현이다.
var ErrEnvNotFound = errors.New("conda 환경 없음")

// DefaultRoots는 conda 설치 후보 경로를 우선순위 순서로 반환한다.
// 홈 디렉토리 설치가 시스템 설치보다 우선한다.
func DefaultRoots() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	var roots []string
	if home != "" {
		roots = append(roots,
			filepath.Join(home, "miniconda3"),
			filepath.Join(home, "anaconda3"),
			filepath.Join(home, "miniforge3"),
		)
	}
	return append(roots,
		"/opt/conda",
		"/opt/miniconda3",
		"/opt/anaconda3",
		"/opt/homebrew/Caskroom/miniconda/base",
		"/usr/local/miniconda3",
	)
}

// InitScript는 설치 root에서 셸별 초기화 스크립트 경로를 유도한다.
func InitScript(root, shellType string) string {
	if shellType == "fish" {
		return filepath.Join(root, "etc", "fish", "conf.d", "conda.fish")
	}
	return filepath.Join(root, "etc", "profile.d", "conda.sh")
}

// RootExists는 root가 유효한 conda 설치인지 검사한다.
// 초기화 스크립트 존재가 판정 기준이다.
func RootExists(root string) bool {
	info, err := os.Stat(InitScript(root, "sh"))
	return err == nil && info.Mode().IsRegular()
}

// InterpreterPath는 환경의 python 인터프리터 경로를 유도한다.
func InterpreterPath(root, env string) string {
	return filepath.Join(root, "envs", env, "bin", "python")
}

// Adapter는 conda CLI를 Commander를 통해 실행한다.
type Adapter struct {
	cmd cmdexec.Commander
}

// NewAdapter는 새 conda Adapter를 생성한다.
func NewAdapter(cmd cmdexec.Commander) *Adapter {
	return &Adapter{cmd: cmd}
}

// Version은 conda 버전 문자열을 반환한다.
func (a *Adapter) Version(ctx context.Context) (string, error) {
	out, err := a.cmd.Run(ctx, "conda", "--version")
	if err != nil {
		return "", fmt.Errorf("conda.Version: %w", err)
	}
	return string(out), nil
}

// EnvExists는 이름에 해당하는 conda 환경이 존재하는지 확인한다.
// 존재하지 않으면 ErrEnvNotFound를 반환한다.
func (a *Adapter) EnvExists(ctx context.Context, name string) error {
	out, err := a.cmd.Run(ctx, "conda", "env", "list", "--json")
	if err != nil {
		return fmt.Errorf("conda.EnvExists: %w", err)
	}

	var resp struct {
		Envs []string `json:"envs"`
	}
	if err := json.Unmarshal(out, &resp); err != nil {
		return fmt.Errorf("conda.EnvExists: JSON 파싱 실패: %w", err)
	}

	for _, envPath := range resp.Envs {
		if filepath.Base(envPath) == name {
			return nil
		}
	}
	return fmt.Errorf("conda.EnvExists: %w: %s", ErrEnvNotFound, name)
}
