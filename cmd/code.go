package cmd

import (
	"github.com/alantheprice/ideaforge/pkg/pipeline"
	"github.com/spf13/cobra"
)

var codeCmd = &cobra.Command{
	Use:   "code [project]",
	Short: "Generate the project's source files under src/",
	Long: `Feeds the concept document and architecture plan to the model and
materializes the returned code blocks under src/. Existing sources are
included in the prompt so regeneration keeps the project consistent.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStage(pipeline.GenerateCode, args[0], pipeline.Inputs{})
	},
}

func init() {
	addCommonFlags(codeCmd)
}
