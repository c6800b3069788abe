package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lexis",
	Short: "Vocabulary trainer for exam prep",
	Long: `Lexis builds exam vocabulary with a spaced-repetition schedule and a
four-stage learning path: preview, quiz, and deep learning by explaining
each word in your own words.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LEXIS_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to lexis.yaml (default: search $XDG_CONFIG_HOME/lexis and .)")

	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(deepCmd)
	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(versionCmd)
}
