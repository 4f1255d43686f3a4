package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nfrund/psyclinic/cmd/psyclinic-cli/internal/output"
	"github.com/nfrund/psyclinic/internal/backend"
	"github.com/nfrund/psyclinic/internal/config"
	"github.com/nfrund/psyclinic/internal/roster"
)

var rosterFormat string

var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "Fetch the roster and print it with resolved photo URLs",
	Long: `Calls the clinic backend the same way the landing page does: one list
request, then one photo request per profile that has a stored photo. Backend
settings come from the environment (BACKEND_URL, BACKEND_TOKEN, PHOTO_*).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		r, err := fetchRoster(ctx)
		if err != nil {
			return err
		}

		switch rosterFormat {
		case output.FormatJSON:
			return output.JSON(cmd.OutOrStdout(), r.Profiles())
		case output.FormatTable:
			return output.RosterTable(cmd.OutOrStdout(), r.Profiles())
		default:
			return fmt.Errorf("unknown format %q (want %s or %s)", rosterFormat, output.FormatTable, output.FormatJSON)
		}
	},
}

func init() {
	rosterCmd.Flags().StringVarP(&rosterFormat, "format", "f", output.FormatTable, "output format: table or json")
	rootCmd.AddCommand(rosterCmd)
}

// fetchRoster builds the fetch pipeline from the environment and runs it once.
func fetchRoster(ctx context.Context) (roster.Roster, error) {
	cfg, err := config.Load()
	if err != nil {
		return roster.Roster{}, err
	}

	client, err := backend.New(cfg.Backend.URL,
		backend.WithTimeout(cfg.Backend.Timeout),
		backend.WithToken(cfg.Backend.Token),
		backend.WithLogger(slog.Default()),
	)
	if err != nil {
		return roster.Roster{}, err
	}

	reporter := roster.NewLogReporter(slog.Default())
	photos := roster.NewPhotoResolver(client, cfg.Photos.BucketBase, cfg.Photos.DefaultPath, reporter)
	return roster.NewFetcher(client, photos, reporter).Fetch(ctx), nil
}
