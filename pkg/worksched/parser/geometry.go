package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ukaji3/worksched-go/pkg/worksched/models"
	"github.com/xuri/excelize/v2"
)

// ColumnTriplet names the start, end and location columns of one weekday.
type ColumnTriplet struct {
	Start    string
	End      string
	Location string
}

// RowBand is an inclusive range of 1-based sheet rows holding one week.
type RowBand struct {
	First int
	Last  int
}

// Rows returns the number of rows in the band.
func (b RowBand) Rows() int {
	return b.Last - b.First + 1
}

func (b RowBand) String() string {
	return fmt.Sprintf("%d:%d", b.First, b.Last)
}

// Geometry fixes where schedule data lives on an employee sheet.
type Geometry struct {
	// NameCell holds the employee display name.
	NameCell string
	// Days maps each weekday to its column triplet.
	Days [models.DaysPerWeek]ColumnTriplet
	// Week1 and Week2 are the row bands of the two alternating weeks.
	Week1 RowBand
	Week2 RowBand
}

// DefaultGeometry returns the layout used by the schedule workbook:
// name in C1, Monday I:K through Friday U:W, week 1 rows 9-13, week 2 rows 24-28.
func DefaultGeometry() Geometry {
	return Geometry{
		NameCell: "C1",
		Days: [models.DaysPerWeek]ColumnTriplet{
			{"I", "J", "K"},
			{"L", "M", "N"},
			{"O", "P", "Q"},
			{"R", "S", "T"},
			{"U", "V", "W"},
		},
		Week1: RowBand{First: 9, Last: 13},
		Week2: RowBand{First: 24, Last: 28},
	}
}

// Band returns the row band for a week type.
func (g Geometry) Band(t models.WeekType) RowBand {
	if t == models.Week2 {
		return g.Week2
	}
	return g.Week1
}

// Validate checks cell references and that the week bands are well-formed and disjoint.
func (g Geometry) Validate() error {
	if _, _, err := excelize.CellNameToCoordinates(g.NameCell); err != nil {
		return fmt.Errorf("name cell %q: %w", g.NameCell, err)
	}
	for i, cols := range g.Days {
		for _, c := range []string{cols.Start, cols.End, cols.Location} {
			if _, err := excelize.ColumnNameToNumber(c); err != nil {
				return fmt.Errorf("%s column %q: %w", models.Weekday(i), c, err)
			}
		}
	}
	for _, b := range []RowBand{g.Week1, g.Week2} {
		if b.First < 1 || b.Last < b.First {
			return fmt.Errorf("invalid row band %s", b)
		}
	}
	if g.Week1.First <= g.Week2.Last && g.Week2.First <= g.Week1.Last {
		return fmt.Errorf("row bands %s and %s overlap", g.Week1, g.Week2)
	}
	return nil
}

// ParseColumnTriplet parses "I:K" (three consecutive columns) or "I,J,K".
func ParseColumnTriplet(s string) (ColumnTriplet, error) {
	s = strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "$", ""))

	if parts := strings.Split(s, ","); len(parts) == 3 {
		t := ColumnTriplet{
			Start:    strings.TrimSpace(parts[0]),
			End:      strings.TrimSpace(parts[1]),
			Location: strings.TrimSpace(parts[2]),
		}
		for _, c := range []string{t.Start, t.End, t.Location} {
			if _, err := excelize.ColumnNameToNumber(c); err != nil {
				return ColumnTriplet{}, fmt.Errorf("column triplet %q: %w", s, err)
			}
		}
		return t, nil
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return ColumnTriplet{}, fmt.Errorf("column triplet %q: want FIRST:LAST or A,B,C", s)
	}
	first, err := excelize.ColumnNameToNumber(strings.TrimSpace(parts[0]))
	if err != nil {
		return ColumnTriplet{}, fmt.Errorf("column triplet %q: %w", s, err)
	}
	last, err := excelize.ColumnNameToNumber(strings.TrimSpace(parts[1]))
	if err != nil {
		return ColumnTriplet{}, fmt.Errorf("column triplet %q: %w", s, err)
	}
	if last-first != 2 {
		return ColumnTriplet{}, fmt.Errorf("column triplet %q: must span exactly three columns", s)
	}

	names := make([]string, 3)
	for i := range names {
		names[i], _ = excelize.ColumnNumberToName(first + i)
	}
	return ColumnTriplet{Start: names[0], End: names[1], Location: names[2]}, nil
}

// ParseRowBand parses an inclusive row range such as "9:13".
func ParseRowBand(s string) (RowBand, error) {
	parts := strings.Split(strings.ReplaceAll(strings.TrimSpace(s), "$", ""), ":")
	if len(parts) != 2 {
		return RowBand{}, fmt.Errorf("row band %q: want FIRST:LAST", s)
	}
	first, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return RowBand{}, fmt.Errorf("row band %q: %w", s, err)
	}
	last, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return RowBand{}, fmt.Errorf("row band %q: %w", s, err)
	}
	b := RowBand{First: first, Last: last}
	if first < 1 || last < first {
		return RowBand{}, fmt.Errorf("invalid row band %s", b)
	}
	return b, nil
}
