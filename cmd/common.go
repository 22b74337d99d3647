package cmd

import (
	"context"
	"fmt"

	"github.com/alantheprice/ideaforge/pkg/config"
	"github.com/alantheprice/ideaforge/pkg/pipeline"
	"github.com/alantheprice/ideaforge/pkg/project"
	"github.com/alantheprice/ideaforge/pkg/utils"
	"github.com/spf13/cobra"
)

var (
	model      string
	skipPrompt bool
)

// addCommonFlags registers the flags shared by every stage command.
func addCommonFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&model, "model", "m", "", "Model to use, as provider:model (overrides config)")
	cmd.Flags().BoolVar(&skipPrompt, "skip-prompt", false, "Never prompt; assume default answers")
}

// loadConfig loads the layered config and applies command-line overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadOrInitConfig(skipPrompt)
	if err != nil {
		return nil, err
	}
	if model != "" {
		cfg.Model = model
	}
	return cfg, nil
}

// confirmRegenerate asks before overwriting a project's existing concept
// document. With --skip-prompt the regeneration proceeds unasked.
func confirmRegenerate(cfg *config.Config, proj *project.Project) bool {
	if !proj.HasDoc("idea.md") {
		return true
	}
	logger := utils.GetLogger(cfg.SkipPrompt)
	return logger.AskForConfirmation(
		fmt.Sprintf("Project '%s' already has a concept document. Regenerate it?", proj.Name), true)
}

// runStage is the shared body of the single-stage commands.
func runStage(kind pipeline.StageKind, projectName string, in pipeline.Inputs) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	proj, err := project.Open(cfg.ProjectsDir, projectName)
	if err != nil {
		return err
	}
	runner := pipeline.NewRunner(proj, cfg)
	return runner.RunStage(context.Background(), kind, in)
}
