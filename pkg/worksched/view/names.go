// Package view derives display-ready employee lists from a schedule.
// Nothing here mutates the schedule; every function returns fresh data.
package view

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ukaji3/worksched-go/pkg/worksched/models"
)

// SortOrder selects the key used to order employee names.
type SortOrder string

const (
	// ByFirstToken sorts by the full name string.
	ByFirstToken SortOrder = "first"
	// ByLastToken sorts by the final whitespace-delimited token.
	ByLastToken SortOrder = "last"
)

// ParseSortOrder parses "first" or "last".
func ParseSortOrder(s string) (SortOrder, error) {
	switch o := SortOrder(strings.ToLower(strings.TrimSpace(s))); o {
	case ByFirstToken, ByLastToken:
		return o, nil
	case "":
		return ByFirstToken, nil
	}
	return "", fmt.Errorf("invalid sort order: %s (must be first or last)", s)
}

func lastToken(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

// SortedNames returns a stably sorted copy of names.
func SortedNames(names []string, order SortOrder) []string {
	out := slices.Clone(names)
	key := func(s string) string { return s }
	if order == ByLastToken {
		key = lastToken
	}
	slices.SortStableFunc(out, func(a, b string) int {
		return strings.Compare(key(a), key(b))
	})
	return out
}

// Entry is one employee ready for row rendering.
type Entry struct {
	Name string
	// Week is the slice for the requested week type, already narrowed
	// to office blocks in office-only mode.
	Week models.EmployeeWeek
}

// FilteredNames restricts allNames to selected (when non-empty, keeping
// allNames order) and drops employees with nothing to show for weekType.
// In office-only mode employees need office hours and their week is
// narrowed to office blocks.
func FilteredNames(allNames, selected []string, officeOnly bool, s *models.Schedule, weekType models.WeekType) []Entry {
	candidates := allNames
	if len(selected) > 0 {
		want := make(map[string]struct{}, len(selected))
		for _, name := range selected {
			want[name] = struct{}{}
		}
		candidates = make([]string, 0, len(selected))
		for _, name := range allNames {
			if _, ok := want[name]; ok {
				candidates = append(candidates, name)
			}
		}
	}

	entries := make([]Entry, 0, len(candidates))
	for _, name := range candidates {
		rec, ok := s.Get(name)
		if !ok {
			continue
		}
		week := rec.Week(weekType)
		if officeOnly {
			if !week.HasOfficeHours() {
				continue
			}
			week = week.OfficeOnly()
		} else if !week.HasData() {
			continue
		}
		entries = append(entries, Entry{Name: name, Week: week})
	}
	return entries
}
