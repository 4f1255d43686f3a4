package cmd

import (
	"fmt"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nfrund/psyclinic/cmd/psyclinic-cli/internal/output"
	"github.com/nfrund/psyclinic/internal/carousel"
	"github.com/nfrund/psyclinic/internal/domain"
	"github.com/nfrund/psyclinic/internal/roster"
)

var (
	carouselWidth     int
	carouselSteps     string
	carouselSynthetic int
)

var carouselCmd = &cobra.Command{
	Use:   "carousel",
	Short: "Simulate carousel navigation over a roster",
	Long: `Replays a list of carousel steps and prints the window after each one.

Steps are comma separated: next, prev, page:N (zero based) and resize:WIDTH.
With --synthetic N the roster is N generated profiles; otherwise it is fetched
from the backend.`,
	Example: `  psyclinic-cli carousel --synthetic 7 --width 1200 --steps next,next,next
  psyclinic-cli carousel --steps resize:800,page:2,prev`,
	RunE: func(cmd *cobra.Command, args []string) error {
		steps, err := parseSteps(carouselSteps)
		if err != nil {
			return err
		}

		var r roster.Roster
		if carouselSynthetic > 0 {
			r = syntheticRoster(carouselSynthetic)
		} else {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			if r, err = fetchRoster(ctx); err != nil {
				return err
			}
		}

		c := carousel.NewController(r)
		c.SetVisibleCount(carouselWidth)
		if c.IsEmpty() {
			fmt.Fprintln(cmd.OutOrStdout(), "Roster is empty; the page shows the static fallback set.")
			return nil
		}

		out := cmd.OutOrStdout()
		if err := output.CarouselStep(out, "mount", c); err != nil {
			return err
		}
		for _, s := range steps {
			s.apply(c)
			if err := output.CarouselStep(out, s.label, c); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	carouselCmd.Flags().IntVar(&carouselWidth, "width", carousel.DesktopMinWidth, "viewport width in pixels")
	carouselCmd.Flags().StringVar(&carouselSteps, "steps", "next,next,prev", "comma separated steps")
	carouselCmd.Flags().IntVar(&carouselSynthetic, "synthetic", 0, "use N generated profiles instead of the backend")
	rootCmd.AddCommand(carouselCmd)
}

type step struct {
	label string
	apply func(c *carousel.Controller)
}

func parseSteps(raw string) ([]step, error) {
	var steps []step
	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		name, arg, hasArg := strings.Cut(token, ":")
		switch carousel.Action(name) {
		case carousel.ActionNext:
			steps = append(steps, step{label: token, apply: (*carousel.Controller).GoToNext})
		case carousel.ActionPrev:
			steps = append(steps, step{label: token, apply: (*carousel.Controller).GoToPrevious})
		case carousel.ActionPage, carousel.ActionResize:
			if !hasArg {
				return nil, fmt.Errorf("step %q needs a value, e.g. %s:1", token, name)
			}
			n, err := strconv.Atoi(arg)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("step %q: %q is not a non-negative number", token, arg)
			}
			if carousel.Action(name) == carousel.ActionPage {
				steps = append(steps, step{label: token, apply: func(c *carousel.Controller) { c.JumpToPage(n) }})
			} else {
				steps = append(steps, step{label: token, apply: func(c *carousel.Controller) { c.SetVisibleCount(n) }})
			}
		default:
			return nil, fmt.Errorf("unknown step %q", token)
		}
	}
	return steps, nil
}

func syntheticRoster(n int) roster.Roster {
	profiles := make([]domain.Profile, n)
	for i := range profiles {
		profiles[i] = domain.Profile{
			ID:    int64(i + 1),
			Human: domain.Human{FirstName: "Psychologist", LastName: strconv.Itoa(i + 1)},
		}
	}
	return roster.New(profiles)
}
