package cmd

import (
	"github.com/alantheprice/ideaforge/pkg/pipeline"
	"github.com/spf13/cobra"
)

var featuresCmd = &cobra.Command{
	Use:   "features [project]",
	Short: "Extract the concept's key features into docs/feature_*.md",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStage(pipeline.ExtractFeatures, args[0], pipeline.Inputs{})
	},
}

func init() {
	addCommonFlags(featuresCmd)
}
