// Package weekclock maps calendar dates onto the alternating two-week cycle.
package weekclock

import (
	"errors"
	"fmt"
	"time"

	"github.com/ukaji3/worksched-go/pkg/worksched/models"
)

// ErrInvalidDirection is returned when navigating by anything but one week.
var ErrInvalidDirection = errors.New("direction must be -1 or +1")

// DefaultAnchor is the first day of week type 1 of the first cycle.
var DefaultAnchor = time.Date(2025, time.September, 13, 0, 0, 0, 0, time.UTC)

const daysPerWeek = 7

// Clock computes week types relative to a fixed anchor date.
// Only the calendar date of each time.Time is used; time of day and
// location are ignored.
type Clock struct {
	Anchor time.Time
}

// New creates a Clock for the given anchor date.
func New(anchor time.Time) Clock {
	return Clock{Anchor: civil(anchor)}
}

// civil returns the wall-clock date of t at UTC midnight.
func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// elapsedDays returns whole calendar days from the anchor to t.
func (c Clock) elapsedDays(t time.Time) int {
	return int(civil(t).Sub(civil(c.Anchor)).Hours() / 24)
}

func (c Clock) weekNumber(t time.Time) int {
	return floorDiv(c.elapsedDays(t), daysPerWeek)
}

// WeekType returns the week type active on today.
// Dates before the anchor continue the alternation backwards.
func (c Clock) WeekType(today time.Time) models.WeekType {
	n := c.weekNumber(today)
	if n%2 == 0 {
		return models.Week1
	}
	return models.Week2
}

// WeekStart returns the most recent cycle boundary at or before today.
func (c Clock) WeekStart(today time.Time) time.Time {
	return civil(c.Anchor).AddDate(0, 0, daysPerWeek*c.weekNumber(today))
}

// WeekEnd returns the last day of the week starting at start.
func WeekEnd(start time.Time) time.Time {
	return civil(start).AddDate(0, 0, daysPerWeek-1)
}

// Navigate moves start by one week in direction and returns the new
// start and its week type.
func (c Clock) Navigate(start time.Time, direction int) (time.Time, models.WeekType, error) {
	if direction != -1 && direction != 1 {
		return time.Time{}, 0, fmt.Errorf("%w: got %d", ErrInvalidDirection, direction)
	}
	next := civil(start).AddDate(0, 0, daysPerWeek*direction)
	return next, c.WeekType(next), nil
}

// IsCurrentWeek reports whether today falls within [start, start+6 days].
func IsCurrentWeek(start, today time.Time) bool {
	d := civil(today)
	s := civil(start)
	return !d.Before(s) && !d.After(WeekEnd(s))
}

// WeekdayIndex returns 0 for Monday through 4 for Friday, and -1 on weekends.
func WeekdayIndex(today time.Time) int {
	switch wd := today.Weekday(); wd {
	case time.Saturday, time.Sunday:
		return -1
	default:
		return int(wd) - 1
	}
}

// FormatRange renders the week as "September 13, 2025 - September 19, 2025".
func FormatRange(start time.Time) string {
	const layout = "January 2, 2006"
	return civil(start).Format(layout) + " - " + WeekEnd(start).Format(layout)
}
