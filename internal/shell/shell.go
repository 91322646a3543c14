package shell

import (
	"fmt"

	"github.com/kballard/go-shellquote"
)

// Marker는 rc 파일에 설치된 hook 블록을 식별하는 고유 문자열이다.
// 설치 중복 검사는 이 문자열의 substring 검색만으로 판정한다.
const Marker = "cenv shell integration"

// EndMarker는 hook 블록의 끝을 표시한다.
const EndMarker = Marker + " end"

// ActivationSnippet는 환경 활성화를 위해 calling shell이 eval할 코드를 생성한다.
// 활성화 성공 시 인터프리터 경로와 버전을 담은 확인 메시지를, 실패 시 비치명적
// 경고를 stderr로 출력한다. 실패해도 calling shell은 계속 사용 가능해야 한다.
func ActivationSnippet(initScript, env, shellType string) string {
	qScript := shellquote.Join(initScript)
	qEnv := shellquote.Join(env)

	switch shellType {
	case "fish":
		return fmt.Sprintf(`source %s
if conda activate %s 2>/dev/null
  echo "cenv: %s 활성화 완료 ("(command -v python)", "(python --version 2>&1)")"
else
  echo "cenv: 환경 %s 활성화 실패 — conda env list로 환경을 확인하세요" >&2
end
`, qScript, qEnv, env, env)
	default: // bash, zsh, sh
		return fmt.Sprintf(`. %s
if conda activate %s 2>/dev/null; then
  echo "cenv: %s 활성화 완료 ($(command -v python), $(python --version 2>&1))"
else
  echo "cenv: 환경 %s 활성화 실패 — conda env list로 환경을 확인하세요" >&2
fi
`, qScript, qEnv, env, env)
	}
}

// HookSnippet는 rc 파일에 설치되는 디렉토리 변경 hook 블록을 반환한다.
// hook 정의, 디렉토리 변경 이벤트 등록, 셸 시작 시 1회 실행으로 구성된다.
// 지원하지 않는 셸이면 빈 문자열을 반환한다.
func HookSnippet(shellType string) string {
	switch shellType {
	case "zsh":
		return `# ` + Marker + ` (zsh)
_cenv_chpwd() {
  eval "$(cenv activate --shell zsh 2>/dev/null)"
}
chpwd_functions+=(_cenv_chpwd)
_cenv_chpwd
# ` + EndMarker + `
`
	case "bash":
		return `# ` + Marker + ` (bash)
_cenv_prompt_command() {
  eval "$(cenv activate --shell bash 2>/dev/null)"
}
PROMPT_COMMAND="_cenv_prompt_command;${PROMPT_COMMAND}"
_cenv_prompt_command
# ` + EndMarker + `
`
	case "fish":
		return `# ` + Marker + ` (fish)
function _cenv_chpwd --on-variable PWD
  eval (cenv activate --shell fish 2>/dev/null)
end
_cenv_chpwd
# ` + EndMarker + `
`
	default:
		return ""
	}
}
