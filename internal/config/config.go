package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
var ErrConfig = errors.New("설정 파일 오류")

// Config는 cenv 설정 파일의 최상위 구조체다.
type Config struct {
	Version      int                `toml:"version"`
	DefaultShell string             `toml:"default_shell"`
	CondaRoots   []string           `toml:"conda_roots"`
	Projects     map[string]Project `toml:"projects"`
}

// Project는 자동 활성화 대상 프로젝트 하나다.
type Project struct {
	Root string `toml:"root"`
	Env  string `toml:"env"`
	// Interpreter는 에디터 설정 검증용 기대 인터프리터 경로다. 비어있으면
	// conda root에서 유도한다.
	Interpreter string `toml:"interpreter"`
}

// Load는 config.toml을 파싱하여 Config를 반환한다.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config.Load: %w: %w", ErrConfig, err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save는 Config를 TOML 파일로 저장한다 (0600 권한).
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	return nil
}

// GetProject는 이름으로 프로젝트를 조회한다.
func (c *Config) GetProject(name string) (*Project, error) {
	p, ok := c.Projects[name]
	if !ok {
		return nil, fmt.Errorf("config.GetProject: %w: 프로젝트 없음: %s", ErrConfig, name)
	}
	return &p, nil
}

// MatchProject는 cwd를 root로 감싸는 프로젝트를 찾는다.
// 중첩된 root가 여러 개 매칭되면 가장 긴 root가 이긴다.
func (c *Config) MatchProject(cwd string) (string, *Project, bool) {
	cwd = filepath.Clean(cwd)

	var bestName string
	var best *Project
	for name, p := range c.Projects {
		root := filepath.Clean(p.Root)
		if cwd != root && !strings.HasPrefix(cwd, root+string(filepath.Separator)) {
			continue
		}
		if best == nil || len(root) > len(filepath.Clean(best.Root)) {
			p := p
			bestName, best = name, &p
		}
	}
	if best == nil {
		return "", nil, false
	}
	return bestName, best, true
}

// ProjectNames는 정렬된 프로젝트 이름 목록을 반환한다.
func (c *Config) ProjectNames() []string {
	names := make([]string, 0, len(c.Projects))
	for name := range c.Projects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	// root의 선행 ~는 홈 디렉토리로 확장한다.
	for name, p := range c.Projects {
		p.Root = ExpandHome(p.Root)
		p.Interpreter = ExpandHome(p.Interpreter)
		c.Projects[name] = p
	}
	for i, root := range c.CondaRoots {
		c.CondaRoots[i] = ExpandHome(root)
	}
}

func (c *Config) validate() error {
	if len(c.Projects) == 0 {
		return fmt.Errorf("config.Load: %w: 프로젝트가 정의되지 않았습니다", ErrConfig)
	}
	seen := make(map[string]string)
	for name, p := range c.Projects {
		if p.Root == "" {
			return fmt.Errorf("config.Load: %w: projects.%s.root 필수", ErrConfig, name)
		}
		if !filepath.IsAbs(p.Root) {
			return fmt.Errorf("config.Load: %w: projects.%s.root는 절대 경로여야 합니다: %s", ErrConfig, name, p.Root)
		}
		if p.Env == "" {
			return fmt.Errorf("config.Load: %w: projects.%s.env 필수", ErrConfig, name)
		}
		root := filepath.Clean(p.Root)
		if prev, dup := seen[root]; dup {
			return fmt.Errorf("config.Load: %w: projects.%s와 projects.%s의 root가 동일합니다: %s", ErrConfig, prev, name, root)
		}
		seen[root] = name
	}
	return nil
}

// ExpandHome은 경로 선행의 ~를 홈 디렉토리로 치환한다.
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
	}
	return path
}
