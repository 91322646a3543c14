package state_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hbjs97/cenv/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFile(t *testing.T) {
	s, err := state.Load(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)
	assert.Equal(t, 1, s.Version)
	assert.Nil(t, s.Last)
}

func TestLoad_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0600))

	// 파싱 실패는 빈 state로 graceful 처리한다
	s, err := state.Load(path)
	require.NoError(t, err)
	assert.Nil(t, s.Last)
}

func TestRecordAndSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	s := state.New()
	s.Record(state.Activation{
		Project:     "ceie",
		Env:         "ceie",
		CondaRoot:   "/home/user/anaconda3",
		InitScript:  "/home/user/anaconda3/etc/profile.d/conda.sh",
		Interpreter: "/home/user/anaconda3/envs/ceie/bin/python",
	})
	require.NoError(t, s.Save(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := state.Load(path)
	require.NoError(t, err)
	require.NotNil(t, loaded.Last)
	assert.Equal(t, "ceie", loaded.Last.Env)
	assert.Equal(t, "/home/user/anaconda3", loaded.Last.CondaRoot)
	assert.NotEmpty(t, loaded.Last.EmittedAt)
}

func TestSave_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "cenv", "state.json")
	require.NoError(t, state.New().Save(path))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}
