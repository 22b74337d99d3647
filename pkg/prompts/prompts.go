package prompts

import (
	"fmt"
	"sort"
	"strings"
)

// --- Stage prompt builders ---
//
// Each builder pairs the stage's task description with the exact response
// format the decoder expects. Models drift when the format instructions are
// vague, so every builder spells out the delimiters with an example.

// BuildIdeaPrompt asks for an expanded concept document from a one-line idea.
// The response is saved whole as docs/idea.md.
func BuildIdeaPrompt(idea string) string {
	return fmt.Sprintf(`You are a product strategist. Expand the following raw idea into a complete concept document in markdown.

Idea: %s

Include: a one-paragraph summary, the target users, the core problem being solved, and the key differentiators.
Respond with the markdown document only. Do not wrap it in code fences or add commentary.`, strings.TrimSpace(idea))
}

// BuildFeaturesPrompt asks for the concept's key features, one block per feature.
func BuildFeaturesPrompt(ideaDoc string) string {
	return fmt.Sprintf(`Based on the concept document below, identify the key features this product needs.

Concept document:
%s

Respond with one block per feature using EXACTLY this format:

<<<KEY_FEATURE: Feature Name>>>
A short description of the feature and why it matters.
>>>

Use the <<<KEY_FEATURE: ...>>> header for every feature. Do not add any text outside the blocks.`, ideaDoc)
}

// BuildArchitecturePrompt asks for a component breakdown plus an integration plan.
func BuildArchitecturePrompt(ideaDoc, featuresDoc string) string {
	var b strings.Builder
	b.WriteString("You are a software architect. Design the architecture for the product described below.\n\n")
	b.WriteString("Concept document:\n")
	b.WriteString(ideaDoc)
	if featuresDoc != "" {
		b.WriteString("\n\nKey features:\n")
		b.WriteString(featuresDoc)
	}
	b.WriteString(`

Respond using EXACTLY this format. One block per component, then a single integration section:

<<<COMPONENT: Component Name>>>
What the component does, its responsibilities, and its interfaces.
>>>

<<<INTEGRATION>>>
How the components connect: data flow, dependencies, and deployment shape.
>>>

Do not add any text outside the blocks.`)
	return b.String()
}

// BuildFeatureArchitecturePrompt asks for per-feature component breakdowns.
func BuildFeatureArchitecturePrompt(ideaDoc, featuresDoc string) string {
	return fmt.Sprintf(`You are a software architect. For each key feature below, design the components that implement it.

Concept document:
%s

Key features:
%s

Respond using EXACTLY this format, repeating the whole structure for each feature:

<<<FEATURE: Feature Name>>>
<<<COMPONENT: Component Name>>>
What the component does for this feature.
>>>
<<<INTEGRATION>>>
How this feature's components fit together.
>>>

Do not add any text outside the blocks.`, ideaDoc, featuresDoc)
}

// BuildCodePrompt asks for complete source files in fenced filename= blocks.
func BuildCodePrompt(ideaDoc, planDoc string, existing map[string]string) string {
	var b strings.Builder
	b.WriteString("You are an expert software engineer. Implement the project described below.\n\n")
	b.WriteString("Concept document:\n")
	b.WriteString(ideaDoc)
	b.WriteString("\n\nArchitecture plan:\n")
	b.WriteString(planDoc)
	if len(existing) > 0 {
		b.WriteString("\n\nExisting source files (regenerate any you change in full):\n")
		b.WriteString(FormatSources(existing))
	}
	b.WriteString("\n\nRespond with one fenced code block per file. Every fence MUST carry the filename, like this:\n\n")
	b.WriteString("```python filename=app/main.py\n<complete file contents>\n```\n\n")
	b.WriteString("Rules:\n")
	b.WriteString("- Every file must be COMPLETE from first line to last. Never truncate.\n")
	b.WriteString("- Filenames are relative paths. Never use absolute paths or '..'.\n")
	b.WriteString("- Do not add any prose outside the code blocks.\n")
	return b.String()
}

// BuildTestsPrompt asks for test files in FILENAME blocks.
func BuildTestsPrompt(planDoc string, sources map[string]string) string {
	var b strings.Builder
	b.WriteString("You are a test engineer. Write tests for the project below.\n\n")
	b.WriteString("Architecture plan:\n")
	b.WriteString(planDoc)
	b.WriteString("\n\nSource files:\n")
	b.WriteString(FormatSources(sources))
	b.WriteString(`

Respond with one block per test file using EXACTLY this format:

<<<FILENAME: test_example.py>>>
<complete file contents>
>>>

Filenames are relative paths. Each file must be complete. Do not add any text outside the blocks.`)
	return b.String()
}

// BuildDocsPrompt asks for a user-facing README. Saved whole as docs/readme.md.
func BuildDocsPrompt(ideaDoc string, sources map[string]string) string {
	var b strings.Builder
	b.WriteString("Write end-user documentation for the project below as a single markdown README.\n\n")
	b.WriteString("Concept document:\n")
	b.WriteString(ideaDoc)
	if len(sources) > 0 {
		b.WriteString("\n\nSource files:\n")
		b.WriteString(FormatSources(sources))
	}
	b.WriteString("\n\nInclude installation, usage, and configuration sections.\n")
	b.WriteString("Respond with the markdown document only. Do not wrap it in code fences or add commentary.")
	return b.String()
}

// BuildDiagramsPrompt asks for mermaid diagram files in FILENAME blocks.
func BuildDiagramsPrompt(planDoc string) string {
	return fmt.Sprintf(`Create architecture diagrams for the plan below using mermaid syntax.

Architecture plan:
%s

Respond with one block per diagram file using EXACTLY this format:

<<<FILENAME: architecture.mmd>>>
<mermaid diagram source>
>>>

Use .mmd filenames. Do not add any text outside the blocks.`, planDoc)
}

// BuildTasksPrompt asks for an ordered implementation task list. Saved whole
// as docs/tasks.md.
func BuildTasksPrompt(planDoc string) string {
	return fmt.Sprintf(`Break the architecture plan below into an ordered list of implementation tasks.

Architecture plan:
%s

For each task give a title, a short description, and its dependencies on earlier tasks.
Respond with a markdown document only. Do not wrap it in code fences or add commentary.`, planDoc)
}

// BuildScorePrompt asks for a viability assessment. Saved whole as docs/score.md.
func BuildScorePrompt(ideaDoc, planDoc string) string {
	var b strings.Builder
	b.WriteString("You are a venture analyst. Score the project below.\n\n")
	b.WriteString("Concept document:\n")
	b.WriteString(ideaDoc)
	if planDoc != "" {
		b.WriteString("\n\nArchitecture plan:\n")
		b.WriteString(planDoc)
	}
	b.WriteString("\n\nRate feasibility, market fit, and technical risk from 1 to 10 each, with a short justification per score and an overall recommendation.\n")
	b.WriteString("Respond with a markdown document only. Do not wrap it in code fences or add commentary.")
	return b.String()
}

// BuildMarketPrompt asks for a market analysis. Saved whole as docs/market.md.
func BuildMarketPrompt(ideaDoc string) string {
	return fmt.Sprintf(`You are a market analyst. Analyze the market for the product described below.

Concept document:
%s

Cover the market size, the main competitors and how this product differs, the target segments, and the biggest market risks.
Respond with a markdown document only. Do not wrap it in code fences or add commentary.`, ideaDoc)
}

// BuildResearchPrompt asks for background research notes. Saved whole as
// docs/research.md.
func BuildResearchPrompt(ideaDoc string) string {
	return fmt.Sprintf(`You are a research assistant. Gather background research for the product described below.

Concept document:
%s

Cover prior art and comparable products, relevant technologies and standards, and open questions that need validating before building.
Respond with a markdown document only. Do not wrap it in code fences or add commentary.`, ideaDoc)
}

// BuildBusinessPrompt asks for a business plan. Saved whole as docs/business.md.
func BuildBusinessPrompt(ideaDoc, marketDoc string) string {
	var b strings.Builder
	b.WriteString("You are a business strategist. Draft a business plan for the product described below.\n\n")
	b.WriteString("Concept document:\n")
	b.WriteString(ideaDoc)
	if marketDoc != "" {
		b.WriteString("\n\nMarket analysis:\n")
		b.WriteString(marketDoc)
	}
	b.WriteString("\n\nCover the revenue model, pricing, go-to-market strategy, and key costs.\n")
	b.WriteString("Respond with a markdown document only. Do not wrap it in code fences or add commentary.")
	return b.String()
}

// FormatSources renders path->content pairs as labelled sections, sorted by
// path so prompts are stable across runs.
func FormatSources(sources map[string]string) string {
	paths := make([]string, 0, len(sources))
	for path := range sources {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	var b strings.Builder
	for _, path := range paths {
		fmt.Fprintf(&b, "--- %s ---\n%s\n", path, sources[path])
	}
	return b.String()
}
