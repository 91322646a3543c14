package shell_test

import (
	"strings"
	"testing"

	"github.com/hbjs97/cenv/internal/shell"
	"github.com/stretchr/testify/assert"
)

func TestActivationSnippet_Posix(t *testing.T) {
	out := shell.ActivationSnippet("/home/user/anaconda3/etc/profile.d/conda.sh", "ceie", "zsh")
	assert.Contains(t, out, ". /home/user/anaconda3/etc/profile.d/conda.sh")
	assert.Contains(t, out, "conda activate ceie")
	// 확인 메시지는 인터프리터 경로와 버전을 담는다
	assert.Contains(t, out, "command -v python")
	assert.Contains(t, out, "python --version")
}

func TestActivationSnippet_Bash(t *testing.T) {
	out := shell.ActivationSnippet("/opt/conda/etc/profile.d/conda.sh", "ceie", "bash")
	assert.Contains(t, out, ". /opt/conda/etc/profile.d/conda.sh")
	assert.Contains(t, out, "conda activate ceie")
}

func TestActivationSnippet_Fish(t *testing.T) {
	out := shell.ActivationSnippet("/opt/conda/etc/fish/conf.d/conda.fish", "ceie", "fish")
	assert.Contains(t, out, "source /opt/conda/etc/fish/conf.d/conda.fish")
	assert.Contains(t, out, "conda activate ceie")
	assert.Contains(t, out, "end")
}

func TestActivationSnippet_QuotesSpaces(t *testing.T) {
	out := shell.ActivationSnippet("/Users/u/conda root/etc/profile.d/conda.sh", "ceie", "zsh")
	assert.Contains(t, out, `'/Users/u/conda root/etc/profile.d/conda.sh'`)
}

func TestActivationSnippet_FailureIsNonFatal(t *testing.T) {
	out := shell.ActivationSnippet("/opt/conda/etc/profile.d/conda.sh", "ceie", "zsh")
	// 실패 경로는 경고를 stderr로 보내고 셸을 종료시키지 않는다
	assert.Contains(t, out, ">&2")
	assert.NotContains(t, out, "exit ")
	assert.NotContains(t, out, "set -e")
}

func TestHookSnippet_Zsh(t *testing.T) {
	snippet := shell.HookSnippet("zsh")
	assert.Contains(t, snippet, shell.Marker)
	assert.Contains(t, snippet, "chpwd_functions")
	assert.Contains(t, snippet, "cenv activate")
}

func TestHookSnippet_Bash(t *testing.T) {
	snippet := shell.HookSnippet("bash")
	assert.Contains(t, snippet, "PROMPT_COMMAND")
	assert.Contains(t, snippet, "cenv activate")
}

func TestHookSnippet_Fish(t *testing.T) {
	snippet := shell.HookSnippet("fish")
	assert.Contains(t, snippet, "--on-variable PWD")
	assert.Contains(t, snippet, "cenv activate")
}

func TestHookSnippet_Unknown(t *testing.T) {
	assert.Empty(t, shell.HookSnippet("tcsh"))
}

func TestHookSnippet_RunsOnceAtStartup(t *testing.T) {
	for _, sh := range []string{"zsh", "bash"} {
		// 등록 후 셸 시작 시점에도 1회 실행되어야 한다
		lines := strings.Split(shell.HookSnippet(sh), "\n")
		var hasBareCall bool
		for _, line := range lines {
			if line == "_cenv_chpwd" || line == "_cenv_prompt_command" {
				hasBareCall = true
			}
		}
		assert.True(t, hasBareCall, "shell %s", sh)
	}
	assert.Contains(t, shell.HookSnippet("fish"), "\n_cenv_chpwd\n")
}

func TestHookSnippet_HasEndMarker(t *testing.T) {
	for _, sh := range []string{"zsh", "bash", "fish"} {
		assert.Contains(t, shell.HookSnippet(sh), shell.EndMarker)
	}
}
