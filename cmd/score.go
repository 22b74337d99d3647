package cmd

import (
	"github.com/alantheprice/ideaforge/pkg/pipeline"
	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score [project]",
	Short: "Score the project's viability into docs/score.md",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStage(pipeline.Score, args[0], pipeline.Inputs{})
	},
}

func init() {
	addCommonFlags(scoreCmd)
}
