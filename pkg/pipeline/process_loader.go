package pipeline

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Process is a user-defined stage sequence loaded from a YAML file:
//
//	name: docs-refresh
//	stages:
//	  - docs
//	  - diagrams
type Process struct {
	Name   string   `yaml:"name"`
	Stages []string `yaml:"stages"`
}

var kindByName = map[string]StageKind{
	"idea":         ExpandIdea,
	"features":     ExtractFeatures,
	"architecture": PlanArchitecture,
	"plan":         PlanArchitecture, // alias, matches the CLI command name
	"code":         GenerateCode,
	"tests":        GenerateTests,
	"docs":         GenerateDocs,
	"diagrams":     GenerateDiagrams,
	"tasks":        GenerateTasks,
	"score":        Score,
	"market":       MarketAnalysis,
	"research":     Research,
	"business":     BusinessPlan,
}

// DefaultSequence is the full pipeline run by `ideaforge run` without a
// process file.
func DefaultSequence() []StageKind {
	return []StageKind{
		ExpandIdea,
		PlanArchitecture,
		GenerateCode,
		GenerateTests,
		GenerateDocs,
		GenerateDiagrams,
		Score,
	}
}

// LoadProcess reads and validates a process definition file, returning the
// stage kinds in order.
func LoadProcess(path string) ([]StageKind, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read process file %s: %w", path, err)
	}

	var proc Process
	if err := yaml.Unmarshal(data, &proc); err != nil {
		return nil, fmt.Errorf("could not parse process file %s: %w", path, err)
	}
	if len(proc.Stages) == 0 {
		return nil, fmt.Errorf("process file %s defines no stages", path)
	}

	kinds := make([]StageKind, 0, len(proc.Stages))
	for _, name := range proc.Stages {
		kind, ok := kindByName[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("process file %s: unknown stage %q (known: %s)", path, name, strings.Join(knownStageNames(), ", "))
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}

func knownStageNames() []string {
	return []string{"idea", "features", "market", "research", "business", "architecture", "code", "tests", "docs", "diagrams", "tasks", "score"}
}
