package cli

import (
	"github.com/hbjs97/cenv/internal/activator"
	"github.com/hbjs97/cenv/internal/conda"
	"github.com/hbjs97/cenv/internal/config"
)

// 각 도메인 패키지의 sentinel error를 CLI 레이어에서 편의상 re-export한다.
var (
	// ErrManagerUnavailable는 후보 경로 어디에도 conda가 없을 때의 sentinel error다.
	ErrManagerUnavailable = activator.ErrManagerUnavailable
	// ErrEnvNotFound는 conda는 있지만 이름에 해당하는 환경이 없을 때의 sentinel error다.
	ErrEnvNotFound = conda.ErrEnvNotFound
	// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
	ErrConfig = config.ErrConfig
)
