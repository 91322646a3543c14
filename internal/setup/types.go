package setup

// Action은 재실행 시 사용자가 선택하는 작업이다.
type Action string

const (
	ActionAdd    Action = "add"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

// ProjectInput은 프로젝트 생성/수정 시 사용자 입력 값이다.
type ProjectInput struct {
	Name string
	Root string
	Env  string
}

// FormRunner는 TUI 폼 실행을 추상화하는 interface다.
// 프로덕션에서는 huh 기반 구현, 테스트에서는 mock을 사용한다.
type FormRunner interface {
	// RunProjectForm은 프로젝트 입력 폼을 실행한다.
	// defaults가 nil이 아니면 기존 값을 기본값으로 표시한다 (수정 모드).
	RunProjectForm(defaults *ProjectInput, existingNames []string) (*ProjectInput, error)

	// RunActionSelect는 작업 선택 UI를 표시한다.
	RunActionSelect(projectNames []string) (Action, error)

	// RunProjectSelect는 프로젝트 선택 UI를 표시한다.
	RunProjectSelect(projectNames []string) (string, error)

	// RunConfirm은 확인 프롬프트를 표시한다.
	RunConfirm(message string) (bool, error)

	// RunAddMore는 "프로젝트를 더 추가하시겠습니까?" 프롬프트를 표시한다.
	RunAddMore() (bool, error)

	// RunCondaRootSelect는 감지된 conda 설치 목록에서 선택 UI를 표시한다.
	// detected가 비어있으면 직접 입력 폼으로 fallback한다. 빈 문자열 반환은
	// 기본 후보 우선순위를 그대로 쓰겠다는 뜻이다.
	RunCondaRootSelect(detected []string) (string, error)
}
