package cmd

import (
	"github.com/alantheprice/ideaforge/pkg/pipeline"
	"github.com/spf13/cobra"
)

var byFeature bool

var planCmd = &cobra.Command{
	Use:   "plan [project]",
	Short: "Design the architecture into docs/impl_*.md and docs/integ.md",
	Long: `Asks the model for a component breakdown plus an integration plan and
writes one document per component. With --by-feature the breakdown is
done per key feature (run 'features' first).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStage(pipeline.PlanArchitecture, args[0], pipeline.Inputs{ByFeature: byFeature})
	},
}

func init() {
	addCommonFlags(planCmd)
	planCmd.Flags().BoolVar(&byFeature, "by-feature", false, "Plan the architecture feature by feature")
}
