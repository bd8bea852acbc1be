package weekclock

import (
	"time"

	"github.com/ukaji3/worksched-go/pkg/worksched/models"
)

// Cursor is the week currently displayed.
type Cursor struct {
	WeekStart time.Time       `json:"week_start"`
	WeekType  models.WeekType `json:"week_type"`
}

// CursorAt returns the cursor for the week containing today.
func (c Clock) CursorAt(today time.Time) Cursor {
	return Cursor{WeekStart: c.WeekStart(today), WeekType: c.WeekType(today)}
}

// Move returns the cursor shifted by one week in direction.
func (c Clock) Move(cur Cursor, direction int) (Cursor, error) {
	start, wt, err := c.Navigate(cur.WeekStart, direction)
	if err != nil {
		return cur, err
	}
	return Cursor{WeekStart: start, WeekType: wt}, nil
}
