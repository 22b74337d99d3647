package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chtemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
	return dir
}

func TestLoadOrInitConfigCreatesDefaults(t *testing.T) {
	chtemp(t)
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadOrInitConfig(true)
	require.NoError(t, err)

	assert.Equal(t, "openai:gpt-4o-mini", cfg.Model)
	assert.Equal(t, "projects", cfg.ProjectsDir)
	assert.True(t, cfg.SkipPrompt)
	assert.Contains(t, cfg.ExtensionlessAllowlist, "Makefile")

	home, _ := os.UserHomeDir()
	_, err = os.Stat(filepath.Join(home, ".ideaforge", "config.json"))
	assert.NoError(t, err)
}

func TestLoadOrInitConfigPrefersLocal(t *testing.T) {
	chtemp(t)
	t.Setenv("HOME", t.TempDir())

	require.NoError(t, os.MkdirAll(".ideaforge", 0755))
	require.NoError(t, os.WriteFile(filepath.Join(".ideaforge", "config.json"),
		[]byte(`{"model":"ollama:qwen2.5-coder"}`), 0644))

	cfg, err := LoadOrInitConfig(false)
	require.NoError(t, err)
	assert.Equal(t, "ollama:qwen2.5-coder", cfg.Model)
	// defaults still fill unset fields
	assert.Equal(t, 16384, cfg.MaxTokens)
}

func TestModelFor(t *testing.T) {
	cfg := &Config{Model: "openai:gpt-4o-mini", CodeModel: "anthropic:claude-sonnet-4-5"}
	assert.Equal(t, "anthropic:claude-sonnet-4-5", cfg.ModelFor("code"))
	assert.Equal(t, "openai:gpt-4o-mini", cfg.ModelFor("docs"))
	assert.Equal(t, "openai:gpt-4o-mini", cfg.ModelFor("unknown-stage"))
}

func TestInitConfigRefusesOverwrite(t *testing.T) {
	chtemp(t)
	require.NoError(t, InitConfig())
	err := InitConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}
