package cmd

import (
	"github.com/alantheprice/ideaforge/pkg/pipeline"
	"github.com/spf13/cobra"
)

var businessCmd = &cobra.Command{
	Use:   "business [project]",
	Short: "Draft a business plan into docs/business.md",
	Long: `Drafts a business plan from the concept document. When docs/market.md
exists (from the 'market' command) the analysis is folded into the prompt.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStage(pipeline.BusinessPlan, args[0], pipeline.Inputs{})
	},
}

func init() {
	addCommonFlags(businessCmd)
}
