package cmd

import (
	"github.com/alantheprice/ideaforge/pkg/pipeline"
	"github.com/spf13/cobra"
)

var tasksCmd = &cobra.Command{
	Use:   "tasks [project]",
	Short: "Break the plan into an ordered task list in docs/tasks.md",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStage(pipeline.GenerateTasks, args[0], pipeline.Inputs{})
	},
}

func init() {
	addCommonFlags(tasksCmd)
}
