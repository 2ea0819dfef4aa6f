package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "nlpdemo",
	Short: "Web demo for the MEMORISE NLP services",
	Long: `A self-hosted web front-end for the MEMORISE NLP services.

Paste or upload a text and forward it to the remote subject-term
classification, named-entity extraction, and machine translation services,
rendering the results in the browser. Language detection runs locally;
everything else happens on the remote services.

Use "nlpdemo serve" to start the web server.`,
	Version: version,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
