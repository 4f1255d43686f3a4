package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/nfrund/psyclinic/internal/carousel"
	"github.com/nfrund/psyclinic/internal/domain"
)

// Formats accepted by --format.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// TopicDisplay represents a bus topic for display purposes.
type TopicDisplay struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// RosterTable writes profiles as an aligned table.
func RosterTable(w io.Writer, profiles []domain.Profile) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "ID\tNAME\tSPECIALIZATION\tPHOTO")
	fmt.Fprintln(tw, "--\t----\t--------------\t-----")
	if len(profiles) == 0 {
		fmt.Fprintln(tw, "No profiles found")
	}
	for _, p := range profiles {
		spec := p.SpecializationName()
		if spec == "" {
			spec = "-"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", p.ID, p.DisplayName(), truncateString(spec, 30), p.PhotoURL)
	}
	return tw.Flush()
}

// JSON writes v as indented JSON.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// CarouselStep writes one line describing the window after a step.
func CarouselStep(w io.Writer, step string, c *carousel.Controller) error {
	win := c.Window()
	ids := make([]string, 0, win.Visible)
	for _, p := range c.Visible() {
		ids = append(ids, fmt.Sprint(p.ID))
	}
	_, err := fmt.Fprintf(w, "%-8s index=%d visible=%d page=%d/%d shown=[%s]\n",
		step, win.Index, win.Visible, c.ActivePage()+1, c.Pages(), strings.Join(ids, " "))
	return err
}

// TopicsTable writes topics as an aligned table.
func TopicsTable(w io.Writer, topics []TopicDisplay) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tDESCRIPTION")
	fmt.Fprintln(tw, "----\t-----------")
	for _, t := range topics {
		fmt.Fprintf(tw, "%s\t%s\n", t.Name, truncateString(t.Description, 60))
	}
	return tw.Flush()
}

func truncateString(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
