package setup

import (
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/charmbracelet/huh"
)

// HuhFormRunner는 charmbracelet/huh 기반의 FormRunner 구현이다.
type HuhFormRunner struct{}

var _ FormRunner = (*HuhFormRunner)(nil)

var projectNameRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]*$`)

// RunProjectForm은 프로젝트 입력 폼을 실행한다.
func (h *HuhFormRunner) RunProjectForm(defaults *ProjectInput, existingNames []string) (*ProjectInput, error) {
	input := &ProjectInput{}
	if defaults != nil {
		*input = *defaults
	}

	nameValidate := func(s string) error {
		if s == "" {
			return fmt.Errorf("프로젝트 이름을 입력하세요")
		}
		if !projectNameRegex.MatchString(s) {
			return fmt.Errorf("영문, 숫자, 하이픈, 언더스코어만 사용 가능합니다")
		}
		for _, n := range existingNames {
			if n == s && (defaults == nil || defaults.Name != s) {
				return fmt.Errorf("이미 존재하는 프로젝트 이름입니다: %s", s)
			}
		}
		return nil
	}

	rootValidate := func(s string) error {
		if s == "" {
			return fmt.Errorf("프로젝트 경로를 입력하세요")
		}
		if s[0] != '~' && !filepath.IsAbs(s) {
			return fmt.Errorf("절대 경로를 입력하세요")
		}
		return nil
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("프로젝트 이름").Value(&input.Name).Validate(nameValidate),
		huh.NewInput().Title("프로젝트 경로").
			Description("이 디렉토리(하위 포함)에 들어가면 환경이 활성화됩니다").
			Value(&input.Root).Validate(rootValidate),
		huh.NewInput().Title("conda 환경 이름").Value(&input.Env).Validate(huh.ValidateNotEmpty()),
	))
	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("setup.RunProjectForm: %w", err)
	}

	return input, nil
}

// RunActionSelect는 작업 선택 UI를 표시한다.
func (h *HuhFormRunner) RunActionSelect(projectNames []string) (Action, error) {
	var action Action
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[Action]().
			Title("작업을 선택하세요").
			Options(
				huh.NewOption("프로젝트 추가", ActionAdd),
				huh.NewOption("프로젝트 수정", ActionEdit),
				huh.NewOption("프로젝트 삭제", ActionDelete),
			).
			Value(&action),
	))
	if err := form.Run(); err != nil {
		return "", fmt.Errorf("setup.RunActionSelect: %w", err)
	}
	return action, nil
}

// RunProjectSelect는 프로젝트 선택 UI를 표시한다.
func (h *HuhFormRunner) RunProjectSelect(projectNames []string) (string, error) {
	var selected string
	options := make([]huh.Option[string], len(projectNames))
	for i, name := range projectNames {
		options[i] = huh.NewOption(name, name)
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("프로젝트를 선택하세요").
			Options(options...).
			Value(&selected),
	))
	if err := form.Run(); err != nil {
		return "", fmt.Errorf("setup.RunProjectSelect: %w", err)
	}
	return selected, nil
}

// RunConfirm은 확인 프롬프트를 표시한다.
func (h *HuhFormRunner) RunConfirm(message string) (bool, error) {
	var confirm bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().Title(message).Value(&confirm),
	))
	if err := form.Run(); err != nil {
		return false, fmt.Errorf("setup.RunConfirm: %w", err)
	}
	return confirm, nil
}

// RunAddMore는 "프로젝트를 더 추가하시겠습니까?" 프롬프트를 표시한다.
func (h *HuhFormRunner) RunAddMore() (bool, error) {
	return h.RunConfirm("프로젝트를 더 추가하시겠습니까?")
}

// RunCondaRootSelect는 conda 설치 선택 UI를 표시한다.
func (h *HuhFormRunner) RunCondaRootSelect(detected []string) (string, error) {
	if len(detected) == 0 {
		var root string
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().Title("conda 설치 경로").
				Description("예: ~/miniconda3 — 비워두면 기본 후보 경로를 사용합니다").
				Value(&root),
		))
		if err := form.Run(); err != nil {
			return "", fmt.Errorf("setup.RunCondaRootSelect: %w", err)
		}
		return root, nil
	}

	options := make([]huh.Option[string], 0, len(detected)+1)
	for _, root := range detected {
		options = append(options, huh.NewOption(root, root))
	}
	options = append(options, huh.NewOption("기본 후보 우선순위 사용", ""))

	var selected string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("사용할 conda 설치를 선택하세요").
			Options(options...).
			Value(&selected),
	))
	if err := form.Run(); err != nil {
		return "", fmt.Errorf("setup.RunCondaRootSelect: %w", err)
	}
	return selected, nil
}
