package setup

import "github.com/hbjs97/cenv/internal/conda"

// DetectCondaRoots는 후보 경로 중 실제로 존재하는 conda 설치를 우선순위
// 순서대로 반환한다. exists가 nil이면 conda.RootExists를 사용한다.
func DetectCondaRoots(candidates []string, exists func(string) bool) []string {
	if exists == nil {
		exists = conda.RootExists
	}
	var found []string
	for _, root := range candidates {
		if exists(root) {
			found = append(found, root)
		}
	}
	return found
}
