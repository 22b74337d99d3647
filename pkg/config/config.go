package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alantheprice/ideaforge/pkg/artifact"
)

const configFileName = "config.json"

// Config holds the persisted tool settings. A workspace-local
// .ideaforge/config.json takes precedence over the one in the home directory.
type Config struct {
	// Model is the default provider:model string used by every stage that has
	// no explicit override below.
	Model             string `json:"model"`
	IdeaModel         string `json:"idea_model,omitempty"`
	ArchitectureModel string `json:"architecture_model,omitempty"`
	CodeModel         string `json:"code_model,omitempty"`
	TestModel         string `json:"test_model,omitempty"`
	DocsModel         string `json:"docs_model,omitempty"`
	DiagramModel      string `json:"diagram_model,omitempty"`
	ScoringModel      string `json:"scoring_model,omitempty"`

	OllamaServerURL string  `json:"ollama_server_url"`
	Temperature     float64 `json:"temperature"`
	MaxTokens       int     `json:"max_tokens"`

	// ProjectsDir is where generated project trees are created.
	ProjectsDir string `json:"projects_dir"`
	// ExtensionlessAllowlist is the set of extensionless filenames the
	// materializer accepts from path-style responses.
	ExtensionlessAllowlist []string `json:"extensionless_allowlist"`
	// TrackRevisions records diffs of overwritten artifacts.
	TrackRevisions bool `json:"track_revisions"`

	SkipPrompt bool `json:"-"` // internal use, not saved to config
}

// setDefaultValues fills in any zero-valued settings.
func (cfg *Config) setDefaultValues() {
	if cfg.Model == "" {
		cfg.Model = "openai:gpt-4o-mini"
	}
	if cfg.OllamaServerURL == "" {
		cfg.OllamaServerURL = "http://localhost:11434"
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = 0.2
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = 16384
	}
	if cfg.ProjectsDir == "" {
		cfg.ProjectsDir = "projects"
	}
	if len(cfg.ExtensionlessAllowlist) == 0 {
		cfg.ExtensionlessAllowlist = append([]string(nil), artifact.DefaultExtensionlessAllowlist...)
	}
}

// ModelFor returns the model configured for a pipeline stage, falling back to
// the default model when the stage has no override.
func (cfg *Config) ModelFor(stage string) string {
	overrides := map[string]string{
		"idea":         cfg.IdeaModel,
		"features":     cfg.IdeaModel,
		"architecture": cfg.ArchitectureModel,
		"code":         cfg.CodeModel,
		"tests":        cfg.TestModel,
		"docs":         cfg.DocsModel,
		"diagrams":     cfg.DiagramModel,
		"tasks":        cfg.ArchitectureModel,
		"score":        cfg.ScoringModel,
	}
	if m := overrides[stage]; m != "" {
		return m
	}
	return cfg.Model
}

func getHomeConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".ideaforge", configFileName), nil
}

func getLocalConfigPath() string {
	return filepath.Join(".ideaforge", configFileName)
}

func loadConfig(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("could not parse config %s: %w", filePath, err)
	}
	cfg.setDefaultValues()
	return cfg, nil
}

func saveConfig(filePath string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("could not create config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, data, 0644)
}

func createConfig(filePath string) (*Config, error) {
	cfg := &Config{}
	cfg.setDefaultValues()
	if err := saveConfig(filePath, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrInitConfig loads the workspace config, falling back to the home
// config, and creates a default home config when neither exists.
func LoadOrInitConfig(skipPrompt bool) (*Config, error) {
	localPath := getLocalConfigPath()
	if cfg, err := loadConfig(localPath); err == nil {
		cfg.SkipPrompt = skipPrompt
		return cfg, nil
	}

	homePath, err := getHomeConfigPath()
	if err != nil {
		return nil, err
	}
	if cfg, err := loadConfig(homePath); err == nil {
		cfg.SkipPrompt = skipPrompt
		return cfg, nil
	}

	cfg, err := createConfig(homePath)
	if err != nil {
		return nil, err
	}
	cfg.SkipPrompt = skipPrompt
	return cfg, nil
}

// InitConfig writes a default workspace-local config file.
func InitConfig() error {
	localPath := getLocalConfigPath()
	if _, err := os.Stat(localPath); err == nil {
		return fmt.Errorf("config file %s already exists", localPath)
	}
	_, err := createConfig(localPath)
	return err
}
