package cmd

import (
	"strings"

	"github.com/alantheprice/ideaforge/pkg/pipeline"
	"github.com/alantheprice/ideaforge/pkg/project"
	"github.com/alantheprice/ideaforge/pkg/prompts"
	"github.com/alantheprice/ideaforge/pkg/ui"
	"github.com/alantheprice/ideaforge/pkg/utils"
	"github.com/spf13/cobra"
)

// ideaCmd creates a new project and expands the idea into docs/idea.md.
var ideaCmd = &cobra.Command{
	Use:   "idea [project] [idea text]",
	Short: "Create a project and expand a raw idea into a concept document",
	Args:  cobra.MinimumNArgs(2),
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
		if err := proj.EnsureLayout(); err != nil {
			return err
		}
		if !confirmRegenerate(cfg, proj) {
			ui.Out().Print("Keeping the existing concept document.\n")
			return nil
		}
		utils.GetLogger(cfg.SkipPrompt).LogUserInteraction(prompts.ProjectCreated(proj.Name, proj.Root))

		runner := pipeline.NewRunner(proj, cfg)
		return runner.RunStage(cmd.Context(), pipeline.ExpandIdea, pipeline.Inputs{Idea: ideaText})
	},
}

func init() {
	addCommonFlags(ideaCmd)
}
