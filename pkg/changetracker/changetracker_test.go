package changetracker

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRecordChange(t *testing.T) {
	dir := t.TempDir()
	tracker := NewTracker(dir)

	if err := tracker.RecordChange("src/main.py", "print(1)\n", "print(2)\n"); err != nil {
		t.Fatalf("RecordChange() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, ".ideaforge", "revisions.log"))
	if err != nil {
		t.Fatalf("reading revision log: %v", err)
	}
	if !strings.Contains(string(data), "src/main.py") {
		t.Errorf("revision log missing file path, got: %s", data)
	}
}

func TestRecordChangeNoOpWhenIdentical(t *testing.T) {
	dir := t.TempDir()
	tracker := NewTracker(dir)

	if err := tracker.RecordChange("a.txt", "same", "same"); err != nil {
		t.Fatalf("RecordChange() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, ".ideaforge", "revisions.log")); !os.IsNotExist(err) {
		t.Error("identical contents should not create a revision entry")
	}
}
