package main

import (
	"os"

	"github.com/alantheprice/ideaforge/cmd"
	"github.com/alantheprice/ideaforge/pkg/utils"
)

func main() {
	logger := utils.GetLogger(false)
	// Defer closing the logger to ensure all buffered logs are written
	defer func() {
		if err := logger.Close(); err != nil {
			// The logger itself might be the issue, so print to stderr
			os.Stderr.WriteString("Error closing logger: " + err.Error() + "\n")
		}
	}()

	if err := cmd.Execute(); err != nil {
		logger.Logf("Application error: %v", err)
		os.Exit(1)
	}
}
