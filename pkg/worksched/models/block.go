// Package models defines the schedule data structures built from a workbook.
package models

import "strings"

// Location classifies where a block is worked.
type Location string

const (
	// LocationOffice is on-site work.
	LocationOffice Location = "office"
	// LocationRemote is everything that is not exactly "office".
	LocationRemote Location = "remote"
)

// ClassifyLocation maps free-text location to office or remote.
// Only "office" (any case, surrounding whitespace ignored) counts as office.
func ClassifyLocation(s string) Location {
	if strings.ToLower(strings.TrimSpace(s)) == string(LocationOffice) {
		return LocationOffice
	}
	return LocationRemote
}

// WorkBlock represents one contiguous span of work on a single day.
type WorkBlock struct {
	// StartTime is the normalized start time (e.g. "9:00 AM").
	StartTime string `json:"start_time"`
	// EndTime is the normalized end time (e.g. "1:00 PM").
	EndTime string `json:"end_time"`
	// Location is the trimmed free-text location from the sheet.
	Location string `json:"location"`
	// Block is the 1-based row position within the week band.
	Block int `json:"block"`
}

// Kind returns the location classification of the block.
func (b WorkBlock) Kind() Location {
	return ClassifyLocation(b.Location)
}

// IsOffice reports whether the block is on-site work.
func (b WorkBlock) IsOffice() bool {
	return b.Kind() == LocationOffice
}
