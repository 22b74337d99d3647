package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ideaforge",
	Short: "Turn a one-line idea into a generated project",
	Long: `Ideaforge is a command-line tool that expands a short product idea into a
full project tree: concept documents, an architecture plan, source code,
tests, diagrams and a viability score, all generated by prompting an LLM
backend and materializing its structured responses into files.

Typical flow:
  ideaforge idea my-app "a todo app with offline sync"
  ideaforge plan my-app
  ideaforge code my-app
  ideaforge run my-app "a todo app with offline sync"   (everything at once)`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// API keys may live in a local .env; missing file is fine.
		_ = godotenv.Load()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(ideaCmd)
	rootCmd.AddCommand(featuresCmd)
	rootCmd.AddCommand(marketCmd)
	rootCmd.AddCommand(researchCmd)
	rootCmd.AddCommand(businessCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(codeCmd)
	rootCmd.AddCommand(testsCmd)
	rootCmd.AddCommand(docsCmd)
	rootCmd.AddCommand(diagramsCmd)
	rootCmd.AddCommand(tasksCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(initCmd)
}
