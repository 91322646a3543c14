// Package activator holds the pure activation decision.
// It is a function of (current label, target label, candidate existence) only;
// locating real paths and emitting shell code belong to the callers.
package activator

import (
	"errors"
	"fmt"
)

// ErrManagerUnavailable는 후보 경로 어디에서도 conda 설치를 찾지 못했을 때 반환된다.
var ErrManagerUnavailable = errors.New("conda를 찾을 수 없음")

// Decision은 활성화 판정 결과다.
type Decision struct {
	// AlreadyActive는 현재 환경이 이미 목표 환경일 때 true다.
	// 이 경우 어떤 부수효과도 없어야 한다.
	AlreadyActive bool
	// CondaRoot는 활성화에 사용할 conda 설치 경로다. AlreadyActive면 비어있다.
	CondaRoot string
}

// Decide는 활성화 여부와 사용할 conda 설치를 판정한다.
//
// currentEnv가 targetEnv와 같으면 즉시 AlreadyActive를 반환한다 (멱등 보장,
// 후보 경로 검사 이전에 단락). 아니면 candidates를 우선순위 순서로 검사해
// 첫 번째로 존재하는 항목을 고른다. 하나도 없으면 ErrManagerUnavailable.
func Decide(currentEnv, targetEnv string, candidates []string, exists func(string) bool) (*Decision, error) {
	if currentEnv == targetEnv {
		return &Decision{AlreadyActive: true}, nil
	}
	for _, root := range candidates {
		if exists(root) {
			return &Decision{CondaRoot: root}, nil
		}
	}
	return nil, fmt.Errorf("activator.Decide: %w", ErrManagerUnavailable)
}
