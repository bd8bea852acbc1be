package view

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/ukaji3/worksched-go/pkg/worksched/models"
	"github.com/ukaji3/worksched-go/pkg/worksched/weekclock"
)

// ErrUnknownEmployee is returned when a detail is requested for a name
// that is not in the schedule.
var ErrUnknownEmployee = errors.New("unknown employee")

// ColorSlots is the number of row colours cycled through by the grid.
const ColorSlots = 12

// NoWorkText is shown for a day without blocks in the detail view.
const NoWorkText = "No scheduled work"

// Counts is the (displayed, total) pair for status text.
type Counts struct {
	Displayed int `json:"displayed"`
	Total     int `json:"total"`
}

// Row is one employee line of the grid.
type Row struct {
	Name     string              `json:"name"`
	Initials string              `json:"initials"`
	Color    int                 `json:"color"`
	Week     models.EmployeeWeek `json:"week"`
}

// Grid is everything a renderer needs to draw one week.
type Grid struct {
	BookName  string          `json:"book_name,omitempty"`
	DateRange string          `json:"date_range"`
	WeekStart time.Time       `json:"week_start"`
	WeekType  models.WeekType `json:"week_type"`
	// Highlight is the weekday column of today, or -1 when today is not
	// in the displayed week or falls on a weekend.
	Highlight int    `json:"highlight"`
	Rows      []Row  `json:"rows"`
	Counts    Counts `json:"counts"`
}

// Initials returns the upper-cased first letters of the first two words.
func Initials(name string) string {
	var b strings.Builder
	n := 0
	for _, word := range strings.Fields(name) {
		if n == 2 {
			break
		}
		r := []rune(word)[0]
		b.WriteRune(unicode.ToUpper(r))
		n++
	}
	return b.String()
}

// BuildGrid sorts and filters the schedule for the state's week.
func BuildGrid(s *models.Schedule, st State, today time.Time) Grid {
	names := SortedNames(s.Names(), st.Filter.SortOrder)
	entries := FilteredNames(names, st.Filter.Selected, st.Filter.OfficeOnly, s, st.Cursor.WeekType)

	g := Grid{
		DateRange: weekclock.FormatRange(st.Cursor.WeekStart),
		WeekStart: st.Cursor.WeekStart,
		WeekType:  st.Cursor.WeekType,
		Highlight: -1,
		Rows:      make([]Row, 0, len(entries)),
		Counts:    Counts{Displayed: len(entries), Total: s.Len()},
	}
	if s != nil {
		g.BookName = s.BookName
	}
	if weekclock.IsCurrentWeek(st.Cursor.WeekStart, today) {
		g.Highlight = weekclock.WeekdayIndex(today)
	}
	for i, e := range entries {
		g.Rows = append(g.Rows, Row{
			Name:     e.Name,
			Initials: Initials(e.Name),
			Color:    i % ColorSlots,
			Week:     e.Week,
		})
	}
	return g
}

// DayDetail is one weekday of the detail view; Blocks may be empty.
type DayDetail struct {
	Day    string             `json:"day"`
	Blocks []models.WorkBlock `json:"blocks"`
}

// WeekDetail lists all five weekdays of one week type.
type WeekDetail struct {
	WeekType models.WeekType `json:"week_type"`
	Current  bool            `json:"current"`
	Days     []DayDetail     `json:"days"`
}

// Detail is the per-employee view showing both weeks, displayed week first.
type Detail struct {
	Name  string        `json:"name"`
	Weeks [2]WeekDetail `json:"weeks"`
}

func weekDetail(w models.EmployeeWeek, t models.WeekType, current bool) WeekDetail {
	wd := WeekDetail{WeekType: t, Current: current}
	for _, d := range models.Weekdays() {
		blocks := w.Day(d)
		if blocks == nil {
			blocks = []models.WorkBlock{}
		}
		wd.Days = append(wd.Days, DayDetail{Day: d.String(), Blocks: blocks})
	}
	return wd
}

// BuildDetail returns the detail view of name with current as the displayed week.
func BuildDetail(s *models.Schedule, name string, current models.WeekType) (Detail, error) {
	rec, ok := s.Get(name)
	if !ok {
		return Detail{}, fmt.Errorf("%w: %s", ErrUnknownEmployee, name)
	}
	other := current.Other()
	return Detail{
		Name: rec.Name,
		Weeks: [2]WeekDetail{
			weekDetail(rec.Week(current), current, true),
			weekDetail(rec.Week(other), other, false),
		},
	}, nil
}
