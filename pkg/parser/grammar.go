package parser

import "errors"

// Grammar selects which delimiter family a raw LLM response is decoded with.
type Grammar int

const (
	// ComponentIntegration decodes "<<<COMPONENT: name>>>" sections followed by
	// an optional "<<<INTEGRATION>>>" section.
	ComponentIntegration Grammar = iota
	// FeatureComponentIntegration decodes "<<<FEATURE: name>>>" sections, each of
	// which wraps its own ComponentIntegration sub-sections.
	FeatureComponentIntegration
	// KeyFeature decodes "<<<KEY_FEATURE: name>>>" sections.
	KeyFeature
	// FilenameBlock decodes "<<<FILENAME: path" blocks closed by ">>>".
	FilenameBlock
	// FencedFilename decodes fenced code blocks tagged with "filename=path".
	FencedFilename
)

func (g Grammar) String() string {
	switch g {
	case ComponentIntegration:
		return "component-integration"
	case FeatureComponentIntegration:
		return "feature-component-integration"
	case KeyFeature:
		return "key-feature"
	case FilenameBlock:
		return "filename-block"
	case FencedFilename:
		return "fenced-filename"
	default:
		return "unknown"
	}
}

// PathStyle reports whether the grammar's labels are literal relative paths
// (taken verbatim) as opposed to free-text names that get slug-normalized.
func (g Grammar) PathStyle() bool {
	return g == FilenameBlock || g == FencedFilename
}

// ErrUnknownGrammar is returned when Decode is handed a Grammar value it does
// not recognize. This is the only condition Decode fails on; malformed input
// text degrades to fewer or zero blocks instead.
var ErrUnknownGrammar = errors.New("parser: unknown grammar")

// BlockKind distinguishes the roles a decoded block can play within a grammar.
type BlockKind int

const (
	// BlockComponent is one named component section of an architecture plan.
	BlockComponent BlockKind = iota
	// BlockIntegration is the integration section of an architecture plan. For
	// ComponentIntegration its label is empty; for FeatureComponentIntegration
	// it carries the owning feature's slug.
	BlockIntegration
	// BlockKeyFeature is one named key-feature section of a concept document.
	BlockKeyFeature
	// BlockFile is a block whose label is the destination file path itself.
	BlockFile
)

// Block is one decoded unit of an LLM response, before path resolution.
// For path-style grammars Label is the relative path exactly as authored;
// for name-style grammars it is the normalized slug.
type Block struct {
	Kind  BlockKind
	Label string
	Body  string
}

// Result carries the decoded blocks plus a count of blocks that were dropped
// because their label normalized to nothing. Dropped blocks are tracked rather
// than silently lost so callers can surface a warning.
type Result struct {
	Blocks  []Block
	Dropped int
}
