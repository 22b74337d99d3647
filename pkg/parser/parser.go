package parser

import (
	"fmt"
	"regexp"
	"strings"
)

// Delimiter tokens recognized by the angle-bracket grammars. Matching is
// case-insensitive and tolerant of a missing ">>>" on the header line.
const (
	componentOpen   = "<<<COMPONENT:"
	integrationOpen = "<<<INTEGRATION"
	featureOpen     = "<<<FEATURE:"
	keyFeatureOpen  = "<<<KEY_FEATURE:"
	filenameOpen    = "<<<FILENAME:"
	blockClose      = ">>>"
)

var (
	// startOfFenceRegex matches the beginning of a fenced code block, e.g. ``` or
	// ```go, optionally prefixed by blockquote/markdown gutter characters.
	startOfFenceRegex = regexp.MustCompile("^\\s*[>|]*```(\\S*)")
	// fenceFilenameRegex captures the filename= tag on a fence line.
	fenceFilenameRegex = regexp.MustCompile("filename=([^\\s`\"']+)")
)

// Decode extracts labeled blocks from a raw LLM response using the given
// grammar. It is a pure function of its inputs: the same response always
// decodes to the same result. An empty response, or one containing no
// recognizable delimiters, yields an empty block list and no error — deciding
// whether "nothing found" is fatal belongs to the caller. Decode only fails
// on an unknown Grammar value.
func Decode(raw string, grammar Grammar) (*Result, error) {
	switch grammar {
	case ComponentIntegration:
		return decodeComponentIntegration(raw), nil
	case FeatureComponentIntegration:
		return decodeFeatureComponentIntegration(raw), nil
	case KeyFeature:
		return decodeKeyFeature(raw), nil
	case FilenameBlock:
		return decodeFilenameBlocks(raw), nil
	case FencedFilename:
		return decodeFencedFilename(raw), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownGrammar, int(grammar))
	}
}

// opener describes one opening delimiter a scanner pass recognizes.
type opener struct {
	token string
	kind  BlockKind
}

// rawSection is a scanned block before label normalization.
type rawSection struct {
	kind  BlockKind
	label string
	body  string
}

// matchOpener checks whether a line starts one of the given delimiters and,
// if so, returns the raw label text that follows the token on that line.
func matchOpener(line string, opens []opener) (opener, string, bool) {
	trimmed := strings.TrimSpace(line)
	upper := strings.ToUpper(trimmed)
	for _, o := range opens {
		if !strings.HasPrefix(upper, o.token) {
			continue
		}
		rest := trimmed[len(o.token):]
		if !strings.HasSuffix(o.token, ":") {
			// A bare token must end the header right there (optionally closed
			// by ">>>" or a stray ":"), so "<<<INTEGRATION_NOTES: x>>>" never
			// opens an integration section.
			if r := strings.TrimSpace(rest); r != "" && r != blockClose && !strings.HasPrefix(r, ":") {
				continue
			}
		}
		label := strings.TrimSuffix(strings.TrimSpace(rest), blockClose)
		return o, strings.TrimSpace(label), true
	}
	return opener{}, "", false
}

// scanSections performs the single boundary-scanning pass shared by the
// angle-bracket grammars: every line is checked against the recognized opening
// delimiters, and an open block's body runs exactly to the next opener (or to
// the end of input). A block can therefore never swallow a sibling's text, no
// matter how malformed the response is. Prose before the first delimiter is
// ignored.
func scanSections(raw string, opens []opener) []rawSection {
	var sections []rawSection
	var body strings.Builder
	var current *rawSection

	flush := func() {
		if current != nil {
			current.body = trimBlankLines(body.String())
			sections = append(sections, *current)
			current = nil
		}
		body.Reset()
	}

	for _, line := range strings.Split(raw, "\n") {
		if o, label, ok := matchOpener(line, opens); ok {
			flush()
			current = &rawSection{kind: o.kind, label: label}
			continue
		}
		if current != nil {
			body.WriteString(line)
			body.WriteString("\n")
		}
	}
	flush()
	return sections
}

func decodeComponentIntegration(raw string) *Result {
	res := &Result{}
	sections := scanSections(raw, []opener{
		{componentOpen, BlockComponent},
		{integrationOpen, BlockIntegration},
	})
	for _, s := range sections {
		switch s.kind {
		case BlockComponent:
			slug := Slugify(s.label)
			if slug == "" {
				res.Dropped++
				continue
			}
			res.Blocks = append(res.Blocks, Block{Kind: BlockComponent, Label: slug, Body: s.body})
		case BlockIntegration:
			// The integration section carries no name of its own.
			res.Blocks = append(res.Blocks, Block{Kind: BlockIntegration, Body: s.body})
		}
	}
	return res
}

func decodeFeatureComponentIntegration(raw string) *Result {
	res := &Result{}
	// First pass: split on the outer FEATURE boundary only.
	features := scanSections(raw, []opener{{featureOpen, BlockComponent}})
	for _, f := range features {
		featureSlug := Slugify(f.label)
		// Second pass: decode each feature body with the sub-grammar.
		inner := decodeComponentIntegration(f.body)
		res.Dropped += inner.Dropped
		for _, b := range inner.Blocks {
			if b.Kind == BlockIntegration {
				if featureSlug == "" {
					// The integration path is synthesized from the feature
					// name, so a nameless feature has nowhere to put it.
					res.Dropped++
					continue
				}
				b.Label = featureSlug
			}
			res.Blocks = append(res.Blocks, b)
		}
	}
	return res
}

func decodeKeyFeature(raw string) *Result {
	res := &Result{}
	for _, s := range scanSections(raw, []opener{{keyFeatureOpen, BlockKeyFeature}}) {
		slug := Slugify(s.label)
		if slug == "" {
			res.Dropped++
			continue
		}
		res.Blocks = append(res.Blocks, Block{Kind: BlockKeyFeature, Label: slug, Body: s.body})
	}
	return res
}

// decodeFilenameBlocks handles "<<<FILENAME: path" blocks. A block is closed
// by a ">>>" line, by the next "<<<FILENAME:" header (so one missing close
// marker cannot swallow the following blocks), or by the end of input. The
// label is the destination path and round-trips verbatim apart from
// surrounding whitespace and path separators.
func decodeFilenameBlocks(raw string) *Result {
	res := &Result{}
	var body strings.Builder
	var label string
	inBlock := false

	flush := func() {
		if inBlock {
			if path := cleanPathLabel(label); path != "" {
				res.Blocks = append(res.Blocks, Block{Kind: BlockFile, Label: path, Body: trimBlankLines(body.String())})
			} else {
				res.Dropped++
			}
		}
		inBlock = false
		body.Reset()
	}

	opens := []opener{{filenameOpen, BlockFile}}
	for _, line := range strings.Split(raw, "\n") {
		if _, l, ok := matchOpener(line, opens); ok {
			flush()
			label = l
			inBlock = true
			continue
		}
		if inBlock && strings.TrimSpace(line) == blockClose {
			flush()
			continue
		}
		if inBlock {
			body.WriteString(line)
			body.WriteString("\n")
		}
	}
	flush()
	return res
}

// decodeFencedFilename handles ```lang filename=path fenced blocks. While a
// block is open, any fence line ends it; a fence line that itself carries a
// filename= tag immediately starts the next block, so adjacent blocks never
// bleed into each other even when a closing fence was dropped.
func decodeFencedFilename(raw string) *Result {
	res := &Result{}
	var body strings.Builder
	var label string
	inBlock := false

	flush := func() {
		if inBlock {
			if path := cleanPathLabel(label); path != "" {
				res.Blocks = append(res.Blocks, Block{Kind: BlockFile, Label: path, Body: trimBlankLines(body.String())})
			} else {
				res.Dropped++
			}
		}
		inBlock = false
		body.Reset()
	}

	for _, line := range strings.Split(raw, "\n") {
		if startOfFenceRegex.MatchString(line) {
			if m := fenceFilenameRegex.FindStringSubmatch(line); m != nil {
				flush()
				label = m[1]
				inBlock = true
			} else {
				// A bare fence either closes the current block or opens an
				// anonymous one we do not capture.
				flush()
			}
			continue
		}
		if inBlock {
			body.WriteString(line)
			body.WriteString("\n")
		}
	}
	flush()
	return res
}

// cleanPathLabel trims whitespace and a leading/trailing path separator from a
// path-style label. No case folding: the path must round-trip exactly as the
// response cased it.
func cleanPathLabel(label string) string {
	label = strings.TrimSpace(label)
	label = strings.Trim(label, "/")
	return strings.TrimSpace(label)
}

// trimBlankLines removes leading and trailing blank lines from a block body
// while preserving interior blank lines and indentation.
func trimBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	end := len(lines)
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return strings.Join(lines[start:end], "\n")
}
