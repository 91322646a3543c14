package cli

import (
	"errors"
)

// ExitCode는 cenv의 종료 코드다.
type ExitCode int

const (
	// ExitSuccess는 정상 종료다.
	ExitSuccess ExitCode = 0
	// ExitGeneral는 일반 에러다.
	ExitGeneral ExitCode = 1
	// ExitManagerUnavailable는 conda를 후보 경로에서 찾지 못한 경우다.
	ExitManagerUnavailable ExitCode = 2
	// ExitEnvNotFound는 대상 conda 환경이 없는 경우다.
	ExitEnvNotFound ExitCode = 3
	// ExitConfigError는 설정 파일 오류다.
	ExitConfigError ExitCode = 4
)

// MapExitCode는 sentinel error를 기반으로 적절한 종료 코드를 반환한다.
func MapExitCode(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}
	switch {
	case errors.Is(err, ErrManagerUnavailable):
		return ExitManagerUnavailable
	case errors.Is(err, ErrEnvNotFound):
		return ExitEnvNotFound
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	default:
		return ExitGeneral
	}
}
