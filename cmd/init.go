package cmd

import (
	"github.com/alantheprice/ideaforge/pkg/config"
	"github.com/alantheprice/ideaforge/pkg/ui"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default .ideaforge/config.json in the current directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.InitConfig(); err != nil {
			return err
		}
		ui.Out().Print("✅ Wrote .ideaforge/config.json\n")
		return nil
	},
}
