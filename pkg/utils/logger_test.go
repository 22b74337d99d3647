package utils

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/alantheprice/ideaforge/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureSink struct{ b strings.Builder }

func (c *captureSink) Print(text string)                 { c.b.WriteString(text) }
func (c *captureSink) Printf(format string, args ...any) { fmt.Fprintf(&c.b, format, args...) }

func chtemp(t *testing.T) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func withStdin(t *testing.T, input string) {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	_, err = w.WriteString(input)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	old := os.Stdin
	os.Stdin = r
	t.Cleanup(func() { os.Stdin = old })
}

func TestAskForConfirmation(t *testing.T) {
	chtemp(t)
	sink := &captureSink{}
	ui.SetDefaultSink(sink)
	t.Cleanup(func() { ui.SetDefaultSink(ui.StdoutSink{}) })

	logger := GetLogger(false) // prompts enabled

	withStdin(t, "n\n")
	assert.False(t, logger.AskForConfirmation("Regenerate?", true))

	withStdin(t, "yes\n")
	assert.True(t, logger.AskForConfirmation("Regenerate?", false))

	withStdin(t, "\n")
	assert.True(t, logger.AskForConfirmation("Regenerate?", true), "blank answer takes the default")

	assert.Contains(t, sink.b.String(), "Regenerate? [y/n]:")
}

func TestAskForConfirmationSkipsWhenDisabled(t *testing.T) {
	chtemp(t)
	logger := GetLogger(true) // prompts disabled

	// No stdin available; the default must be returned without blocking.
	assert.False(t, logger.AskForConfirmation("Regenerate?", false))
	assert.True(t, logger.AskForConfirmation("Regenerate?", true))
}

func TestLogUserInteractionPrintsToSink(t *testing.T) {
	chtemp(t)
	sink := &captureSink{}
	ui.SetDefaultSink(sink)
	t.Cleanup(func() { ui.SetDefaultSink(ui.StdoutSink{}) })

	GetLogger(true).LogUserInteraction("created project demo")
	assert.Contains(t, sink.b.String(), "created project demo")
}
