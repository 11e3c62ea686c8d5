package inventory

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/GuildStock_Go/internal/domain"
)

var titleCaser = cases.Title(language.English)

// CategoryLabel renders a category's internal name for display,
// e.g. "aged_cheese" -> "Aged Cheese".
func CategoryLabel(category domain.Category) string {
	return titleCaser.String(strings.ReplaceAll(string(category), "_", " "))
}

// WriteReport writes a fixed-width table of the inventory state for one day.
func WriteReport(w io.Writer, day int, items []domain.Item) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "-- day %d --\n", day)
	fmt.Fprintln(tw, "NAME\tCATEGORY\tCOUNTDOWN\tDESIRABILITY")
	for _, item := range items {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\n", item.Name, CategoryLabel(item.Category), item.Countdown, item.Desirability)
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to write inventory report: %w", err)
	}
	return nil
}
