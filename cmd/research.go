package cmd

import (
	"github.com/alantheprice/ideaforge/pkg/pipeline"
	"github.com/spf13/cobra"
)

var researchCmd = &cobra.Command{
	Use:   "research [project]",
	Short: "Gather background research into docs/research.md",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStage(pipeline.Research, args[0], pipeline.Inputs{})
	},
}

func init() {
	addCommonFlags(researchCmd)
}
