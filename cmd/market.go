package cmd

import (
	"github.com/alantheprice/ideaforge/pkg/pipeline"
	"github.com/spf13/cobra"
)

var marketCmd = &cobra.Command{
	Use:   "market [project]",
	Short: "Analyze the market for the concept into docs/market.md",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStage(pipeline.MarketAnalysis, args[0], pipeline.Inputs{})
	},
}

func init() {
	addCommonFlags(marketCmd)
}
