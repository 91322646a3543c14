package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// State는 마지막으로 발행된 활성화 기록이다. status/doctor의 관측용이며
// 활성화 판정 자체는 매 호출마다 새로 수행한다.
type State struct {
	Version int         `json:"version"`
	Last    *Activation `json:"last,omitempty"`
}

// Activation은 활성화 스니펫 발행 1회의 기록이다.
type Activation struct {
	Project     string `json:"project"`
	Env         string `json:"env"`
	CondaRoot   string `json:"conda_root"`
	InitScript  string `json:"init_script"`
	Interpreter string `json:"interpreter"`
	EmittedAt   string `json:"emitted_at"`
}

// New는 빈 State를 생성한다.
func New() *State {
	return &State{Version: 1}
}

// Load는 state 파일을 파싱한다. 파일 없음/파싱 실패 시 빈 State 반환 (graceful).
func Load(path string) (*State, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("state.Load: %w", err)
	}
	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return New(), nil
	}
	return &s, nil
}

// Record는 마지막 활성화 기록을 갱신한다.
func (s *State) Record(a Activation) {
	if a.EmittedAt == "" {
		a.EmittedAt = time.Now().Format(time.RFC3339)
	}
	s.Last = &a
}

// Save는 State를 JSON 파일로 저장한다 (0600 권한).
func (s *State) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("state.Save: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("state.Save: %w", err)
	}
	return os.WriteFile(path, data, 0600)
}
