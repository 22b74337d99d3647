package cmd

import (
	"github.com/alantheprice/ideaforge/pkg/pipeline"
	"github.com/spf13/cobra"
)

var docsCmd = &cobra.Command{
	Use:   "docs [project]",
	Short: "Write end-user documentation to docs/readme.md",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStage(pipeline.GenerateDocs, args[0], pipeline.Inputs{})
	},
}

func init() {
	addCommonFlags(docsCmd)
}
