package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/ukaji3/worksched-go/pkg/worksched/models"
	"github.com/ukaji3/worksched-go/pkg/worksched/view"
)

// FormatBlock renders a block as "9:00 AM - 1:00 PM (office)".
func FormatBlock(b models.WorkBlock) string {
	return fmt.Sprintf("%s - %s (%s)", b.StartTime, b.EndTime, b.Kind())
}

func formatDay(blocks []models.WorkBlock) string {
	if len(blocks) == 0 {
		return "-"
	}
	parts := make([]string, len(blocks))
	for i, b := range blocks {
		parts[i] = FormatBlock(b)
	}
	return strings.Join(parts, "; ")
}

// StatusText renders the results count, e.g. "Showing 3 of 12 employees".
func StatusText(c view.Counts) string {
	return fmt.Sprintf("Showing %d of %d employees", c.Displayed, c.Total)
}

// WriteGridText writes the grid as an aligned plain-text table.
// Today's column, when shown, is marked with "*".
func WriteGridText(w io.Writer, g view.Grid) error {
	if _, err := fmt.Fprintf(w, "Week %d: %s\n\n", g.WeekType, g.DateRange); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	header := []string{"Employee"}
	for _, d := range models.Weekdays() {
		name := d.String()
		if int(d) == g.Highlight {
			name += "*"
		}
		header = append(header, name)
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for _, row := range g.Rows {
		cols := []string{row.Name}
		for _, d := range models.Weekdays() {
			cols = append(cols, formatDay(row.Week.Day(d)))
		}
		fmt.Fprintln(tw, strings.Join(cols, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\n%s\n", StatusText(g.Counts))
	return err
}

// WriteDetailText writes both weeks of one employee.
func WriteDetailText(w io.Writer, d view.Detail) error {
	if _, err := fmt.Fprintf(w, "%s - Schedule\n", d.Name); err != nil {
		return err
	}
	for _, wk := range d.Weeks {
		title := fmt.Sprintf("Week %d", wk.WeekType)
		if wk.Current {
			title += " (Current)"
		}
		fmt.Fprintf(w, "\n%s\n", title)
		for _, day := range wk.Days {
			if len(day.Blocks) == 0 {
				fmt.Fprintf(w, "  %-10s %s\n", day.Day, view.NoWorkText)
				continue
			}
			for i, b := range day.Blocks {
				label := ""
				if i == 0 {
					label = day.Day
				}
				fmt.Fprintf(w, "  %-10s %s\n", label, FormatBlock(b))
			}
		}
	}
	return nil
}
