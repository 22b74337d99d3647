// Package pipeline sequences the generation stages that turn an idea into a
// project tree: each stage builds a prompt from what earlier stages wrote,
// calls the content generator, decodes the response, and materializes the
// decoded blocks into files.
package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alantheprice/ideaforge/pkg/parser"
	"github.com/alantheprice/ideaforge/pkg/project"
	"github.com/alantheprice/ideaforge/pkg/prompts"
)

// StageKind identifies one generation stage.
type StageKind int

const (
	ExpandIdea StageKind = iota
	ExtractFeatures
	PlanArchitecture
	GenerateCode
	GenerateTests
	GenerateDocs
	GenerateDiagrams
	GenerateTasks
	Score
	MarketAnalysis
	Research
	BusinessPlan
)

func (k StageKind) String() string {
	switch k {
	case ExpandIdea:
		return "idea"
	case ExtractFeatures:
		return "features"
	case PlanArchitecture:
		return "architecture"
	case GenerateCode:
		return "code"
	case GenerateTests:
		return "tests"
	case GenerateDocs:
		return "docs"
	case GenerateDiagrams:
		return "diagrams"
	case GenerateTasks:
		return "tasks"
	case Score:
		return "score"
	case MarketAnalysis:
		return "market"
	case Research:
		return "research"
	case BusinessPlan:
		return "business"
	default:
		return "unknown"
	}
}

// OutputMode says how a stage's raw response becomes files.
type OutputMode int

const (
	// OutputSingleDoc saves the whole response verbatim as one document.
	OutputSingleDoc OutputMode = iota
	// OutputGrammar decodes the response with a delimiter grammar first.
	OutputGrammar
)

// Inputs are the caller-supplied values a stage cannot derive from the
// project tree.
type Inputs struct {
	// Idea is the raw idea text. Required by ExpandIdea, ignored elsewhere.
	Idea string
	// ByFeature switches PlanArchitecture to a per-feature breakdown.
	ByFeature bool
}

// StageSpec is the resolved plan for running one stage.
type StageSpec struct {
	Kind    StageKind
	Name    string
	Mode    OutputMode
	Grammar parser.Grammar
	// OutputDoc is the destination path for OutputSingleDoc stages, relative
	// to the project root.
	OutputDoc string
	// RootDir picks the directory artifacts are confined to.
	RootDir func(p *project.Project) string
	// BuildPrompt assembles the stage prompt from the project tree.
	BuildPrompt func(p *project.Project, in Inputs) (string, error)
}

func projectRoot(p *project.Project) string { return p.Root }

// specFor resolves a stage kind into its runnable spec.
func specFor(kind StageKind, in Inputs) (*StageSpec, error) {
	switch kind {
	case ExpandIdea:
		return &StageSpec{
			Kind:      kind,
			Name:      kind.String(),
			Mode:      OutputSingleDoc,
			OutputDoc: "docs/idea.md",
			RootDir:   projectRoot,
			BuildPrompt: func(p *project.Project, in Inputs) (string, error) {
				if strings.TrimSpace(in.Idea) == "" {
					return "", fmt.Errorf("idea stage requires idea text")
				}
				return prompts.BuildIdeaPrompt(in.Idea), nil
			},
		}, nil

	case ExtractFeatures:
		return &StageSpec{
			Kind:    kind,
			Name:    kind.String(),
			Mode:    OutputGrammar,
			Grammar: parser.KeyFeature,
			RootDir: projectRoot,
			BuildPrompt: func(p *project.Project, in Inputs) (string, error) {
				idea, err := requireDoc(p, "idea.md", kind)
				if err != nil {
					return "", err
				}
				return prompts.BuildFeaturesPrompt(idea), nil
			},
		}, nil

	case PlanArchitecture:
		grammar := parser.ComponentIntegration
		if in.ByFeature {
			grammar = parser.FeatureComponentIntegration
		}
		return &StageSpec{
			Kind:    kind,
			Name:    kind.String(),
			Mode:    OutputGrammar,
			Grammar: grammar,
			RootDir: projectRoot,
			BuildPrompt: func(p *project.Project, in Inputs) (string, error) {
				idea, err := requireDoc(p, "idea.md", kind)
				if err != nil {
					return "", err
				}
				features := readFeatureDocs(p)
				if in.ByFeature {
					if features == "" {
						return "", fmt.Errorf("architecture stage with feature breakdown requires the features stage to run first")
					}
					return prompts.BuildFeatureArchitecturePrompt(idea, features), nil
				}
				return prompts.BuildArchitecturePrompt(idea, features), nil
			},
		}, nil

	case GenerateCode:
		return &StageSpec{
			Kind:    kind,
			Name:    kind.String(),
			Mode:    OutputGrammar,
			Grammar: parser.FencedFilename,
			RootDir: func(p *project.Project) string { return p.SrcDir() },
			BuildPrompt: func(p *project.Project, in Inputs) (string, error) {
				idea, err := requireDoc(p, "idea.md", kind)
				if err != nil {
					return "", err
				}
				plan, err := requirePlanDocs(p, kind)
				if err != nil {
					return "", err
				}
				existing, err := p.CollectSources()
				if err != nil {
					return "", err
				}
				return prompts.BuildCodePrompt(idea, plan, existing), nil
			},
		}, nil

	case GenerateTests:
		return &StageSpec{
			Kind:    kind,
			Name:    kind.String(),
			Mode:    OutputGrammar,
			Grammar: parser.FilenameBlock,
			RootDir: func(p *project.Project) string { return p.TestsDir() },
			BuildPrompt: func(p *project.Project, in Inputs) (string, error) {
				plan, err := requirePlanDocs(p, kind)
				if err != nil {
					return "", err
				}
				sources, err := requireSources(p, kind)
				if err != nil {
					return "", err
				}
				return prompts.BuildTestsPrompt(plan, sources), nil
			},
		}, nil

	case GenerateDocs:
		return &StageSpec{
			Kind:      kind,
			Name:      kind.String(),
			Mode:      OutputSingleDoc,
			OutputDoc: "docs/readme.md",
			RootDir:   projectRoot,
			BuildPrompt: func(p *project.Project, in Inputs) (string, error) {
				idea, err := requireDoc(p, "idea.md", kind)
				if err != nil {
					return "", err
				}
				sources, err := p.CollectSources()
				if err != nil {
					return "", err
				}
				return prompts.BuildDocsPrompt(idea, sources), nil
			},
		}, nil

	case GenerateDiagrams:
		return &StageSpec{
			Kind:    kind,
			Name:    kind.String(),
			Mode:    OutputGrammar,
			Grammar: parser.FilenameBlock,
			RootDir: func(p *project.Project) string { return p.DiagramsDir() },
			BuildPrompt: func(p *project.Project, in Inputs) (string, error) {
				plan, err := requirePlanDocs(p, kind)
				if err != nil {
					return "", err
				}
				return prompts.BuildDiagramsPrompt(plan), nil
			},
		}, nil

	case GenerateTasks:
		return &StageSpec{
			Kind:      kind,
			Name:      kind.String(),
			Mode:      OutputSingleDoc,
			OutputDoc: "docs/tasks.md",
			RootDir:   projectRoot,
			BuildPrompt: func(p *project.Project, in Inputs) (string, error) {
				plan, err := requirePlanDocs(p, kind)
				if err != nil {
					return "", err
				}
				return prompts.BuildTasksPrompt(plan), nil
			},
		}, nil

	case Score:
		return &StageSpec{
			Kind:      kind,
			Name:      kind.String(),
			Mode:      OutputSingleDoc,
			OutputDoc: "docs/score.md",
			RootDir:   projectRoot,
			BuildPrompt: func(p *project.Project, in Inputs) (string, error) {
				idea, err := requireDoc(p, "idea.md", kind)
				if err != nil {
					return "", err
				}
				plan, _ := readPlanDocs(p) // plan is optional when scoring
				return prompts.BuildScorePrompt(idea, plan), nil
			},
		}, nil

	case MarketAnalysis:
		return &StageSpec{
			Kind:      kind,
			Name:      kind.String(),
			Mode:      OutputSingleDoc,
			OutputDoc: "docs/market.md",
			RootDir:   projectRoot,
			BuildPrompt: func(p *project.Project, in Inputs) (string, error) {
				idea, err := requireDoc(p, "idea.md", kind)
				if err != nil {
					return "", err
				}
				return prompts.BuildMarketPrompt(idea), nil
			},
		}, nil

	case Research:
		return &StageSpec{
			Kind:      kind,
			Name:      kind.String(),
			Mode:      OutputSingleDoc,
			OutputDoc: "docs/research.md",
			RootDir:   projectRoot,
			BuildPrompt: func(p *project.Project, in Inputs) (string, error) {
				idea, err := requireDoc(p, "idea.md", kind)
				if err != nil {
					return "", err
				}
				return prompts.BuildResearchPrompt(idea), nil
			},
		}, nil

	case BusinessPlan:
		return &StageSpec{
			Kind:      kind,
			Name:      kind.String(),
			Mode:      OutputSingleDoc,
			OutputDoc: "docs/business.md",
			RootDir:   projectRoot,
			BuildPrompt: func(p *project.Project, in Inputs) (string, error) {
				idea, err := requireDoc(p, "idea.md", kind)
				if err != nil {
					return "", err
				}
				market, _ := p.ReadDoc("market.md") // optional
				return prompts.BuildBusinessPrompt(idea, market), nil
			},
		}, nil

	default:
		return nil, fmt.Errorf("unknown stage kind %d", kind)
	}
}

func requireDoc(p *project.Project, name string, kind StageKind) (string, error) {
	doc, err := p.ReadDoc(name)
	if err != nil {
		return "", fmt.Errorf("%s stage requires docs/%s (run the earlier stages first): %w", kind, name, err)
	}
	return doc, nil
}

func requirePlanDocs(p *project.Project, kind StageKind) (string, error) {
	plan, err := readPlanDocs(p)
	if err != nil {
		return "", err
	}
	if plan == "" {
		return "", fmt.Errorf("%s stage requires an architecture plan (run the architecture stage first)", kind)
	}
	return plan, nil
}

func requireSources(p *project.Project, kind StageKind) (map[string]string, error) {
	sources, err := p.CollectSources()
	if err != nil {
		return nil, err
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("%s stage requires source files (run the code stage first)", kind)
	}
	return sources, nil
}

// readPlanDocs concatenates the architecture documents the plan stage wrote:
// every docs/impl_*.md, docs/feature_*.md plus docs/integ*.md, in sorted order.
func readPlanDocs(p *project.Project) (string, error) {
	var paths []string
	for _, pattern := range []string{"impl_*.md", "feature_*.md", "integ*.md"} {
		matches, err := filepath.Glob(filepath.Join(p.DocsDir(), pattern))
		if err != nil {
			return "", err
		}
		paths = append(paths, matches...)
	}
	sort.Strings(paths)

	var b strings.Builder
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "## %s\n%s\n", filepath.Base(path), strings.TrimSpace(string(data)))
	}
	return b.String(), nil
}

// readFeatureDocs concatenates only the docs/feature_*.md documents.
func readFeatureDocs(p *project.Project) string {
	matches, err := filepath.Glob(filepath.Join(p.DocsDir(), "feature_*.md"))
	if err != nil || len(matches) == 0 {
		return ""
	}
	sort.Strings(matches)

	var b strings.Builder
	for _, path := range matches {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		fmt.Fprintf(&b, "## %s\n%s\n", filepath.Base(path), strings.TrimSpace(string(data)))
	}
	return b.String()
}
