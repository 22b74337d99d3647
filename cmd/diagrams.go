package cmd

import (
	"github.com/alantheprice/ideaforge/pkg/pipeline"
	"github.com/spf13/cobra"
)

var diagramsCmd = &cobra.Command{
	Use:   "diagrams [project]",
	Short: "Generate mermaid architecture diagrams under diagrams/",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStage(pipeline.GenerateDiagrams, args[0], pipeline.Inputs{})
	},
}

func init() {
	addCommonFlags(diagramsCmd)
}
