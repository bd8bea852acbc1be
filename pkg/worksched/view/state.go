package view

import (
	"fmt"
	"slices"
	"time"

	"github.com/ukaji3/worksched-go/pkg/worksched/models"
	"github.com/ukaji3/worksched-go/pkg/worksched/weekclock"
)

// FilterState holds the user's filter choices.
type FilterState struct {
	// Selected restricts the grid to these names; empty means everyone.
	Selected   []string  `json:"selected,omitempty"`
	OfficeOnly bool      `json:"office_only"`
	SortOrder  SortOrder `json:"sort_order"`
}

// State is the complete display state. Update methods return a new
// State and leave the receiver untouched.
type State struct {
	Cursor weekclock.Cursor `json:"cursor"`
	Filter FilterState      `json:"filter"`
}

// NewState returns the state for the week containing today with no filters.
func NewState(clock weekclock.Clock, today time.Time) State {
	return State{
		Cursor: clock.CursorAt(today),
		Filter: FilterState{SortOrder: ByFirstToken},
	}
}

func (s State) clone() State {
	s.Filter.Selected = slices.Clone(s.Filter.Selected)
	return s
}

// Navigate moves the cursor one week in direction (-1 or +1).
func (s State) Navigate(clock weekclock.Clock, direction int) (State, error) {
	cur, err := clock.Move(s.Cursor, direction)
	if err != nil {
		return s, err
	}
	next := s.clone()
	next.Cursor = cur
	return next, nil
}

// JumpToToday resets the cursor to the week containing today.
func (s State) JumpToToday(clock weekclock.Clock, today time.Time) State {
	next := s.clone()
	next.Cursor = clock.CursorAt(today)
	return next
}

// SelectWeekType overrides the displayed week type without moving the
// week start, like the week selector of the grid.
func (s State) SelectWeekType(t models.WeekType) (State, error) {
	if !t.Valid() {
		return s, fmt.Errorf("invalid week type %d", t)
	}
	next := s.clone()
	next.Cursor.WeekType = t
	return next, nil
}

// WithSelected replaces the selected employees.
func (s State) WithSelected(names ...string) State {
	next := s.clone()
	next.Filter.Selected = slices.Clone(names)
	return next
}

// WithOfficeOnly toggles office-only mode.
func (s State) WithOfficeOnly(on bool) State {
	next := s.clone()
	next.Filter.OfficeOnly = on
	return next
}

// WithSortOrder changes the name sort order.
func (s State) WithSortOrder(o SortOrder) State {
	next := s.clone()
	next.Filter.SortOrder = o
	return next
}
