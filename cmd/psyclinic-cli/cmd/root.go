package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/nfrund/psyclinic/internal/logging"
)

var (
	logFormat string
	logLevel  string
)

var rootCmd = &cobra.Command{
	Use:   "psyclinic-cli",
	Short: "Psyclinic CLI tool",
	Long: `psyclinic-cli inspects the landing site's roster pipeline from the terminal.

Available commands:
  roster      Fetch the psychologist roster and print it with resolved photos
  carousel    Simulate carousel navigation over a roster
  topics      List the diagnostics topics published on the event bus

Use "psyclinic-cli [command] --help" for more information about a specific command.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Logs go to stderr so command output stays machine readable.
		slog.SetDefault(logging.NewWithWriter(os.Stderr, logFormat, logLevel))
	},
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format: text or json")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn or error")
}
