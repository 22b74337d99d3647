package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenValidatesName(t *testing.T) {
	_, err := Open("projects", "")
	assert.Error(t, err)
	_, err = Open("projects", "a/b")
	assert.Error(t, err)
	_, err = Open("projects", `a\b`)
	assert.Error(t, err)

	p, err := Open("projects", "  todo-app  ")
	require.NoError(t, err)
	assert.Equal(t, "todo-app", p.Name)
	assert.Equal(t, filepath.Join("projects", "todo-app"), p.Root)
}

func TestEnsureLayout(t *testing.T) {
	p, err := Open(t.TempDir(), "demo")
	require.NoError(t, err)
	require.NoError(t, p.EnsureLayout())

	for _, dir := range []string{p.DocsDir(), p.SrcDir(), p.TestsDir(), p.DiagramsDir()} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestReadDoc(t *testing.T) {
	p, err := Open(t.TempDir(), "demo")
	require.NoError(t, err)
	require.NoError(t, p.EnsureLayout())

	require.NoError(t, os.WriteFile(filepath.Join(p.DocsDir(), "idea.md"), []byte("# Idea\n"), 0644))

	got, err := p.ReadDoc("idea.md")
	require.NoError(t, err)
	assert.Equal(t, "# Idea\n", got)

	assert.True(t, p.HasDoc("idea.md"))
	assert.False(t, p.HasDoc("plan.md"))

	_, err = p.ReadDoc("missing.md")
	assert.True(t, os.IsNotExist(err))
}

func TestCollectSources(t *testing.T) {
	p, err := Open(t.TempDir(), "demo")
	require.NoError(t, err)
	require.NoError(t, p.EnsureLayout())

	require.NoError(t, os.MkdirAll(filepath.Join(p.SrcDir(), "app"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(p.SrcDir(), "main.go"), []byte("package main\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(p.SrcDir(), "app", "app.go"), []byte("package app\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(p.SrcDir(), "debug.log"), []byte("noise"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(p.Root, ".gitignore"), []byte("*.log\n"), 0644))

	sources, err := p.CollectSources()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"main.go":    "package main\n",
		"app/app.go": "package app\n",
	}, sources)
}

func TestCollectSourcesMissingSrcDir(t *testing.T) {
	p, err := Open(t.TempDir(), "demo")
	require.NoError(t, err)

	sources, err := p.CollectSources()
	require.NoError(t, err)
	assert.Empty(t, sources)
}
