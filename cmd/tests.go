package cmd

import (
	"github.com/alantheprice/ideaforge/pkg/pipeline"
	"github.com/spf13/cobra"
)

var testsCmd = &cobra.Command{
	Use:   "tests [project]",
	Short: "Generate test files under tests/",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStage(pipeline.GenerateTests, args[0], pipeline.Inputs{})
	},
}

func init() {
	addCommonFlags(testsCmd)
}
