package cmd

import (
	"github.com/spf13/cobra"

	"github.com/nfrund/psyclinic/cmd/psyclinic-cli/internal/output"
	"github.com/nfrund/psyclinic/internal/diagnostics"
)

var topicsFormat string

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List the diagnostics topics published on the event bus",
	RunE: func(cmd *cobra.Command, args []string) error {
		var topics []output.TopicDisplay
		for _, t := range diagnostics.Topics() {
			topics = append(topics, output.TopicDisplay{Name: t.Name(), Description: t.Description()})
		}

		if topicsFormat == output.FormatJSON {
			return output.JSON(cmd.OutOrStdout(), topics)
		}
		return output.TopicsTable(cmd.OutOrStdout(), topics)
	},
}

func init() {
	topicsCmd.Flags().StringVarP(&topicsFormat, "format", "f", output.FormatTable, "output format: table or json")
	rootCmd.AddCommand(topicsCmd)
}
