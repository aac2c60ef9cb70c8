package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fancyrun",
	Short: "run commands with streamed output, retry, and rich failure reporting",
	Long: `fancyrun - run commands with streamed output, retry, and rich failure reporting
  - streams combined stdout+stderr line by line while keeping a capped tail
  - retries failed commands with exponential backoff
  - decodes exit codes into signal names and NTSTATUS symbols`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Config file path (default: per-user config dir)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(whichCmd)
	rootCmd.AddCommand(versionCmd)
}
