package activator_test

import (
	"testing"

	"github.com/hbjs97/cenv/internal/activator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func existsIn(present ...string) func(string) bool {
	set := make(map[string]bool, len(present))
	for _, p := range present {
		set[p] = true
	}
	return func(path string) bool { return set[path] }
}

func TestDecide_AlreadyActive(t *testing.T) {
	probed := false
	d, err := activator.Decide("ceie", "ceie",
		[]string{"/home/user/miniconda3"},
		func(string) bool { probed = true; return true })

	require.NoError(t, err)
	assert.True(t, d.AlreadyActive)
	assert.Empty(t, d.CondaRoot)
	// 멱등 guard는 후보 경로 검사 전에 단락해야 한다
	assert.False(t, probed)
}

func TestDecide_FirstCandidateWins(t *testing.T) {
	candidates := []string{
		"/home/user/miniconda3",
		"/home/user/anaconda3",
		"/opt/conda",
	}

	d, err := activator.Decide("", "ceie", candidates,
		existsIn("/home/user/anaconda3", "/opt/conda"))

	require.NoError(t, err)
	assert.False(t, d.AlreadyActive)
	// 둘 다 존재하면 우선순위가 높은 쪽을 고른다
	assert.Equal(t, "/home/user/anaconda3", d.CondaRoot)
}

func TestDecide_SecondaryCandidate(t *testing.T) {
	candidates := []string{"/home/user/miniconda3", "/home/user/anaconda3"}

	d, err := activator.Decide("", "ceie", candidates, existsIn("/home/user/anaconda3"))

	require.NoError(t, err)
	assert.Equal(t, "/home/user/anaconda3", d.CondaRoot)
}

func TestDecide_ManagerUnavailable(t *testing.T) {
	_, err := activator.Decide("", "ceie",
		[]string{"/home/user/miniconda3", "/opt/conda"}, existsIn())

	require.Error(t, err)
	assert.ErrorIs(t, err, activator.ErrManagerUnavailable)
}

func TestDecide_OtherEnvActive(t *testing.T) {
	// 다른 환경이 활성화되어 있어도 목표 환경으로 전환한다
	d, err := activator.Decide("base", "ceie",
		[]string{"/opt/conda"}, existsIn("/opt/conda"))

	require.NoError(t, err)
	assert.False(t, d.AlreadyActive)
	assert.Equal(t, "/opt/conda", d.CondaRoot)
}

func TestDecide_EmptyCandidates(t *testing.T) {
	_, err := activator.Decide("", "ceie", nil, existsIn())
	assert.ErrorIs(t, err, activator.ErrManagerUnavailable)
}
