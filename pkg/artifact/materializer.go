// Package artifact turns decoded LLM response blocks into files on disk,
// confined to a single project root.
package artifact

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alantheprice/ideaforge/pkg/changetracker"
	"github.com/alantheprice/ideaforge/pkg/parser"
	"github.com/alantheprice/ideaforge/pkg/ui"
)

// Failure is one artifact that could not be resolved or written.
type Failure struct {
	Path   string
	Reason string
}

// WriteReport lists every attempted artifact in the order the decoder
// produced it. Per-file failures never abort the batch; callers decide what a
// partially written report means for their stage.
type WriteReport struct {
	Written []string
	Failed  []Failure
}

// PartialSuccess reports whether some artifacts were written and some failed.
func (r *WriteReport) PartialSuccess() bool {
	return len(r.Written) > 0 && len(r.Failed) > 0
}

// Materializer writes decoded blocks into a project root. It never writes
// outside that root, even when the response labels try to escape it.
type Materializer struct {
	root      string
	allowlist map[string]bool
	tracker   *changetracker.Tracker
	quiet     bool
}

// Option configures a Materializer.
type Option func(*Materializer)

// WithAllowlist overrides the extensionless-filename allow-list.
func WithAllowlist(names []string) Option {
	return func(m *Materializer) {
		m.allowlist = make(map[string]bool, len(names))
		for _, n := range names {
			m.allowlist[n] = true
		}
	}
}

// WithTracker records overwrites of existing files in a revision log.
func WithTracker(t *changetracker.Tracker) Option {
	return func(m *Materializer) { m.tracker = t }
}

// Quiet suppresses per-file progress output.
func Quiet() Option {
	return func(m *Materializer) { m.quiet = true }
}

// NewMaterializer creates a materializer rooted at projectRoot.
func NewMaterializer(projectRoot string, opts ...Option) *Materializer {
	m := &Materializer{root: projectRoot}
	WithAllowlist(DefaultExtensionlessAllowlist)(m)
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Materialize validates and writes each block's artifact under the project
// root. It returns an error only for whole-batch preconditions (the root
// exists but is not a directory, or cannot be created); everything else is
// recorded per-artifact in the report and processing continues. Duplicate
// paths are written in order, so the last block wins — an explicit policy,
// not an accident.
func (m *Materializer) Materialize(blocks []parser.Block, grammar parser.Grammar) (*WriteReport, error) {
	if info, err := os.Stat(m.root); err == nil {
		if !info.IsDir() {
			return nil, fmt.Errorf("project root %s exists but is not a directory", m.root)
		}
	} else if err := os.MkdirAll(m.root, 0755); err != nil {
		return nil, fmt.Errorf("could not create project root %s: %w", m.root, err)
	}

	rootAbs, err := filepath.Abs(m.root)
	if err != nil {
		return nil, fmt.Errorf("could not resolve project root %s: %w", m.root, err)
	}

	report := &WriteReport{}
	for _, b := range blocks {
		rel, err := resolvePath(b, grammar, m.allowlist)
		if err != nil {
			report.Failed = append(report.Failed, Failure{Path: rel, Reason: err.Error()})
			if !m.quiet {
				ui.Warnf("⚠️  Skipping artifact %s: %s", rel, err)
			}
			continue
		}
		if err := m.writeOne(rootAbs, rel, b.Body); err != nil {
			report.Failed = append(report.Failed, Failure{Path: rel, Reason: err.Error()})
			if !m.quiet {
				ui.Errorf("❌ Failed to write %s: %v", rel, err)
			}
			continue
		}
		report.Written = append(report.Written, rel)
		if !m.quiet {
			ui.Successf("💾 Wrote %s (%d bytes)", rel, len(b.Body))
		}
	}
	return report, nil
}

// writeOne creates parent directories and writes a single artifact,
// overwriting any existing file at that path.
func (m *Materializer) writeOne(rootAbs, rel, content string) error {
	full := filepath.Join(rootAbs, filepath.FromSlash(rel))

	// Belt and braces on top of path validation: the joined path must still
	// be inside the root.
	if !strings.HasPrefix(filepath.Clean(full), rootAbs+string(filepath.Separator)) {
		return fmt.Errorf("resolved outside project root")
	}

	if dir := filepath.Dir(full); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create directory %s: %w", dir, err)
		}
	}

	var previous string
	hadPrevious := false
	if m.tracker != nil {
		if old, err := os.ReadFile(full); err == nil {
			previous = string(old)
			hadPrevious = true
		}
	}

	if err := os.WriteFile(full, []byte(content), 0644); err != nil {
		return err
	}

	if m.tracker != nil && hadPrevious {
		if err := m.tracker.RecordChange(rel, previous, content); err != nil {
			// Revision bookkeeping must not fail the write itself.
			ui.Warnf("⚠️  Could not record revision for %s: %v", rel, err)
		}
	}
	return nil
}

// Materialize is the package-level convenience used by callers that do not
// need a configured Materializer.
func Materialize(blocks []parser.Block, grammar parser.Grammar, projectRoot string) (*WriteReport, error) {
	return NewMaterializer(projectRoot).Materialize(blocks, grammar)
}
