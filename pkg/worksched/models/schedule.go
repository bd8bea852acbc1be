package models

import (
	"encoding/json"
	"sort"
)

// Schedule maps employee display name to its record.
// It is built once per load and read-only afterwards.
type Schedule struct {
	// BookName is the workbook file name (no path).
	BookName  string
	employees map[string]EmployeeRecord
}

// NewSchedule creates a schedule from records keyed by display name.
func NewSchedule(bookName string, employees map[string]EmployeeRecord) *Schedule {
	if employees == nil {
		employees = make(map[string]EmployeeRecord)
	}
	return &Schedule{BookName: bookName, employees: employees}
}

// Get returns the record for name.
func (s *Schedule) Get(name string) (EmployeeRecord, bool) {
	if s == nil {
		return EmployeeRecord{}, false
	}
	r, ok := s.employees[name]
	return r, ok
}

// Len returns the number of employees.
func (s *Schedule) Len() int {
	if s == nil {
		return 0
	}
	return len(s.employees)
}

// Names returns all employee names in lexical order.
func (s *Schedule) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.employees))
	for name := range s.employees {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type scheduleJSON struct {
	BookName  string                    `json:"book_name"`
	Employees map[string]EmployeeRecord `json:"employees"`
}

// MarshalJSON encodes the schedule with its employees keyed by name.
func (s *Schedule) MarshalJSON() ([]byte, error) {
	return json.Marshal(scheduleJSON{BookName: s.BookName, Employees: s.employees})
}
