package cmd

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// These are set at build time using -ldflags.
var (
	version   = "dev"
	buildDate = "unknown"
	gitCommit = ""
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ideaforge version %s\n", version)
		if buildDate != "unknown" {
			fmt.Printf("Build date: %s\n", buildDate)
		}
		if gitCommit != "" {
			fmt.Printf("Git commit: %s\n", gitCommit)
		}
		fmt.Printf("Go version: %s\n", runtime.Version())
		if info, ok := debug.ReadBuildInfo(); ok {
			fmt.Printf("Module: %s\n", info.Main.Path)
		}
		fmt.Printf("Platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
