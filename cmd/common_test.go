package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alantheprice/ideaforge/pkg/config"
	"github.com/alantheprice/ideaforge/pkg/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmRegenerate(t *testing.T) {
	// Keep the workspace log out of the repo tree.
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(old) })

	proj, err := project.Open(t.TempDir(), "demo")
	require.NoError(t, err)
	cfg := &config.Config{SkipPrompt: true}

	// Nothing to overwrite yet: no confirmation needed.
	assert.True(t, confirmRegenerate(cfg, proj))

	// Existing concept document with prompts skipped: regenerate by default.
	require.NoError(t, proj.EnsureLayout())
	require.NoError(t, os.WriteFile(filepath.Join(proj.DocsDir(), "idea.md"), []byte("# Idea\n"), 0644))
	assert.True(t, confirmRegenerate(cfg, proj))
}
