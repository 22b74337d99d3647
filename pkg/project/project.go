package project

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

// Layout subdirectories created inside every project root.
const (
	DocsDirName     = "docs"
	SrcDirName      = "src"
	TestsDirName    = "tests"
	DiagramsDirName = "diagrams"
)

// Project is a generated project workspace under the configured projects dir.
type Project struct {
	Name string
	Root string
}

// Open resolves a project by name without touching the filesystem.
func Open(projectsDir, name string) (*Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("project name cannot be empty")
	}
	if strings.ContainsAny(name, "/\\") {
		return nil, fmt.Errorf("project name %q must not contain path separators", name)
	}
	return &Project{Name: name, Root: filepath.Join(projectsDir, name)}, nil
}

func (p *Project) DocsDir() string     { return filepath.Join(p.Root, DocsDirName) }
func (p *Project) SrcDir() string      { return filepath.Join(p.Root, SrcDirName) }
func (p *Project) TestsDir() string    { return filepath.Join(p.Root, TestsDirName) }
func (p *Project) DiagramsDir() string { return filepath.Join(p.Root, DiagramsDirName) }

// EnsureLayout creates the project root and its standard subdirectories.
func (p *Project) EnsureLayout() error {
	for _, dir := range []string{p.Root, p.DocsDir(), p.SrcDir(), p.TestsDir(), p.DiagramsDir()} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create project directory %s: %w", dir, err)
		}
	}
	return nil
}

// ReadDoc returns the contents of a document under docs/, e.g. "idea.md".
func (p *Project) ReadDoc(name string) (string, error) {
	data, err := os.ReadFile(filepath.Join(p.DocsDir(), name))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// HasDoc reports whether a document exists under docs/.
func (p *Project) HasDoc(name string) bool {
	info, err := os.Stat(filepath.Join(p.DocsDir(), name))
	return err == nil && !info.IsDir()
}

// CollectSources walks src/ and returns path->content for every regular file
// not excluded by the project's ignore rules. Paths are slash-separated and
// relative to src/, sorted for stable prompt assembly.
func (p *Project) CollectSources() (map[string]string, error) {
	srcDir := p.SrcDir()
	rules := loadIgnoreRules(p.Root)

	sources := make(map[string]string)
	err := filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if rules != nil && rules.MatchesPath(rel) {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		sources[rel] = string(data)
		return nil
	})
	if os.IsNotExist(err) {
		return sources, nil
	}
	if err != nil {
		return nil, err
	}
	return sources, nil
}

// loadIgnoreRules combines .gitignore and .ideaforge/.ignore from the project
// root. Returns nil when neither file contributes rules.
func loadIgnoreRules(rootDir string) *ignore.GitIgnore {
	var allRules []string

	for _, name := range []string{".gitignore", filepath.Join(".ideaforge", ".ignore")} {
		if rules, err := readIgnoreFile(filepath.Join(rootDir, name)); err == nil {
			allRules = append(allRules, rules...)
		}
	}
	if len(allRules) == 0 {
		return nil
	}
	return ignore.CompileIgnoreLines(allRules...)
}

func readIgnoreFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
