package models

import (
	"encoding/json"
	"fmt"
)

// EmployeeWeek holds the blocks of one week, indexed by Weekday.
// A day with no blocks is an empty slice.
type EmployeeWeek [DaysPerWeek][]WorkBlock

// Day returns the blocks scheduled on d, in source row order.
func (w EmployeeWeek) Day(d Weekday) []WorkBlock {
	if !d.Valid() {
		return nil
	}
	return w[d]
}

// HasData reports whether any day has at least one block.
func (w EmployeeWeek) HasData() bool {
	for _, blocks := range w {
		if len(blocks) > 0 {
			return true
		}
	}
	return false
}

// HasOfficeHours reports whether any day has an office block.
func (w EmployeeWeek) HasOfficeHours() bool {
	for _, blocks := range w {
		for _, b := range blocks {
			if b.IsOffice() {
				return true
			}
		}
	}
	return false
}

// OfficeOnly returns a copy of the week keeping only office blocks.
// The receiver is not modified.
func (w EmployeeWeek) OfficeOnly() EmployeeWeek {
	var out EmployeeWeek
	for d, blocks := range w {
		for _, b := range blocks {
			if b.IsOffice() {
				out[d] = append(out[d], b)
			}
		}
	}
	return out
}

// BlockCount returns the number of blocks across all days.
func (w EmployeeWeek) BlockCount() int {
	n := 0
	for _, blocks := range w {
		n += len(blocks)
	}
	return n
}

// MarshalJSON encodes the week as an object keyed by day name.
// Days without blocks are omitted.
func (w EmployeeWeek) MarshalJSON() ([]byte, error) {
	m := make(map[string][]WorkBlock, DaysPerWeek)
	for d, blocks := range w {
		if len(blocks) > 0 {
			m[Weekday(d).String()] = blocks
		}
	}
	return json.Marshal(m)
}

// UnmarshalJSON decodes the object form produced by MarshalJSON.
func (w *EmployeeWeek) UnmarshalJSON(data []byte) error {
	var m map[string][]WorkBlock
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	var out EmployeeWeek
	for name, blocks := range m {
		d, err := ParseWeekday(name)
		if err != nil {
			return fmt.Errorf("decode week: %w", err)
		}
		out[d] = blocks
	}
	*w = out
	return nil
}
