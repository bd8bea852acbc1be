package models

// WeekType selects one of the two alternating week bands.
type WeekType int

const (
	// Week1 is the first band of the bi-weekly cycle.
	Week1 WeekType = 1
	// Week2 is the second band of the bi-weekly cycle.
	Week2 WeekType = 2
)

// Valid reports whether t is Week1 or Week2.
func (t WeekType) Valid() bool {
	return t == Week1 || t == Week2
}

// Other returns the opposite week type.
func (t WeekType) Other() WeekType {
	if t == Week1 {
		return Week2
	}
	return Week1
}

// EmployeeRecord represents the schedule extracted from one employee sheet.
type EmployeeRecord struct {
	// Name is the display name from the header cell, or the sheet name.
	Name string `json:"name"`
	// SheetName is the worksheet the record was read from.
	SheetName string `json:"sheet_name"`
	// Week1 holds the blocks of the first week band.
	Week1 EmployeeWeek `json:"week1"`
	// Week2 holds the blocks of the second week band.
	Week2 EmployeeWeek `json:"week2"`
}

// Week returns the slice for the given week type.
func (r EmployeeRecord) Week(t WeekType) EmployeeWeek {
	if t == Week2 {
		return r.Week2
	}
	return r.Week1
}
