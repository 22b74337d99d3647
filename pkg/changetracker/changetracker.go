// Package changetracker records file overwrites performed by the artifact
// materializer, so a regenerated project can be audited after the fact.
package changetracker

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Tracker appends patch-format revision entries to a log file.
type Tracker struct {
	logPath string
	dmp     *diffmatchpatch.DiffMatchPatch
}

// NewTracker creates a tracker writing to .ideaforge/revisions.log under the
// given directory.
func NewTracker(baseDir string) *Tracker {
	return &Tracker{
		logPath: filepath.Join(baseDir, ".ideaforge", "revisions.log"),
		dmp:     diffmatchpatch.New(),
	}
}

// RecordChange logs the diff between the previous and new contents of a file
// that is about to be overwritten. Failures to record are returned but are
// not expected to abort the write itself.
func (t *Tracker) RecordChange(relPath, oldContent, newContent string) error {
	if oldContent == newContent {
		return nil
	}
	patches := t.dmp.PatchMake(oldContent, newContent)
	entry := fmt.Sprintf("--- %s | %s\n%s\n", relPath, time.Now().Format(time.RFC3339), t.dmp.PatchToText(patches))

	if err := os.MkdirAll(filepath.Dir(t.logPath), 0755); err != nil {
		return fmt.Errorf("could not create revision log directory: %w", err)
	}
	f, err := os.OpenFile(t.logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("could not open revision log: %w", err)
	}
	defer f.Close()
	if _, err := f.WriteString(entry); err != nil {
		return fmt.Errorf("could not append revision entry: %w", err)
	}
	return nil
}
