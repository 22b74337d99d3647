package cmd

import (
	"strings"

	"github.com/alantheprice/ideaforge/pkg/pipeline"
	"github.com/alantheprice/ideaforge/pkg/project"
	"github.com/alantheprice/ideaforge/pkg/prompts"
	"github.com/alantheprice/ideaforge/pkg/utils"
	"github.com/spf13/cobra"
)

var processFile string

// runCmd executes the whole pipeline, or a custom stage sequence from a
// process file.
var runCmd = &cobra.Command{
	Use:   "run [project] [idea text]",
	Short: "Run the full pipeline: idea, plan, code, tests, docs, diagrams, score",
	Long: `Runs every stage in sequence against one project. The idea text is only
needed when the sequence starts from the idea stage and docs/idea.md does
not exist yet.

A custom sequence can be given as a YAML process file:

  name: docs-refresh
  stages:
    - docs
    - diagrams

  ideaforge run my-app --process docs-refresh.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		projectName := args[0]
		ideaText := strings.Join(args[1:], " ")

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		proj, err := project.Open(cfg.ProjectsDir, projectName)
		if err != nil {
			return err
		}

		kinds := pipeline.DefaultSequence()
		if processFile != "" {
			kinds, err = pipeline.LoadProcess(processFile)
			if err != nil {
				return err
			}
		}

		// Re-running against an existing project keeps its concept document
		// unless the user supplies new idea text and confirms the overwrite.
		if proj.HasDoc("idea.md") && (ideaText == "" || !confirmRegenerate(cfg, proj)) {
			kinds = dropStage(kinds, pipeline.ExpandIdea)
		}

		if err := proj.EnsureLayout(); err != nil {
			return err
		}
		utils.GetLogger(cfg.SkipPrompt).LogUserInteraction(prompts.ProjectCreated(proj.Name, proj.Root))

		runner := pipeline.NewRunner(proj, cfg)
		return runner.RunPipeline(cmd.Context(), kinds, pipeline.Inputs{Idea: ideaText, ByFeature: byFeature})
	},
}

func dropStage(kinds []pipeline.StageKind, drop pipeline.StageKind) []pipeline.StageKind {
	out := kinds[:0:0]
	for _, k := range kinds {
		if k != drop {
			out = append(out, k)
		}
	}
	return out
}

func init() {
	addCommonFlags(runCmd)
	runCmd.Flags().StringVar(&processFile, "process", "", "YAML process file selecting which stages run")
	runCmd.Flags().BoolVar(&byFeature, "by-feature", false, "Plan the architecture feature by feature")
}
