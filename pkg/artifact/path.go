package artifact

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/alantheprice/ideaforge/pkg/parser"
)

// Reasons recorded in WriteReport.Failed for rejected paths.
const (
	ReasonTraversal   = "path traversal"
	ReasonAbsolute    = "absolute path"
	ReasonEmpty       = "empty path"
	ReasonImplausible = "implausible filename"
)

// DefaultExtensionlessAllowlist names the well-known extensionless files a
// path-style block may legitimately target. Anything else without an
// extension (outside the project root level) is treated as a probable
// mis-parse. The set is configurable via WithAllowlist.
var DefaultExtensionlessAllowlist = []string{".gitignore", ".dockerignore", "Dockerfile", "Makefile"}

var driveLetterRegex = regexp.MustCompile(`^[A-Za-z]:[/\\]`)

// validateRelPath applies the safety rules every candidate artifact path must
// pass, regardless of grammar: no absolute paths, no ".." segments, not empty
// after trimming separators.
func validateRelPath(p string) error {
	if strings.TrimSpace(strings.Trim(p, "/")) == "" {
		return errors.New(ReasonEmpty)
	}
	if strings.HasPrefix(p, "/") || strings.HasPrefix(p, "\\") || driveLetterRegex.MatchString(p) {
		return errors.New(ReasonAbsolute)
	}
	// Windows-style separators count as separators for traversal purposes.
	normalized := strings.ReplaceAll(p, "\\", "/")
	for _, segment := range strings.Split(normalized, "/") {
		if segment == ".." {
			return errors.New(ReasonTraversal)
		}
	}
	return nil
}

// plausibleFile applies the extra heuristic for path-style grammars: a final
// segment without an extension is accepted only when allow-listed or when it
// is a bare root-level file; otherwise the LLM most likely meant a directory.
func plausibleFile(p string, allowlist map[string]bool) bool {
	segments := strings.Split(p, "/")
	final := segments[len(segments)-1]
	if strings.Contains(strings.Trim(final, "."), ".") {
		return true
	}
	if allowlist[final] {
		return true
	}
	return len(segments) == 1
}

// resolvePath turns a decoded block into the relative path it materializes
// to. Name-style grammars synthesize a docs/ path from the slug; path-style
// grammars use the label directly after the safety checks.
func resolvePath(b parser.Block, grammar parser.Grammar, allowlist map[string]bool) (string, error) {
	var rel string
	switch b.Kind {
	case parser.BlockComponent:
		rel = fmt.Sprintf("docs/impl_%s.md", b.Label)
	case parser.BlockIntegration:
		if b.Label == "" {
			rel = "docs/integ.md"
		} else {
			rel = fmt.Sprintf("docs/integ_%s.md", b.Label)
		}
	case parser.BlockKeyFeature:
		rel = fmt.Sprintf("docs/feature_%s.md", b.Label)
	case parser.BlockFile:
		rel = b.Label
	default:
		return "", fmt.Errorf("unknown block kind %d", int(b.Kind))
	}

	if err := validateRelPath(rel); err != nil {
		return rel, err
	}
	if grammar.PathStyle() && !plausibleFile(rel, allowlist) {
		return rel, errors.New(ReasonImplausible)
	}
	return rel, nil
}
