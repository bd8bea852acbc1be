package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleWeek() EmployeeWeek {
	var w EmployeeWeek
	w[Monday] = []WorkBlock{
		{StartTime: "9:00 AM", EndTime: "12:00 PM", Location: "Office", Block: 1},
		{StartTime: "1:00 PM", EndTime: "5:00 PM", Location: "Home", Block: 2},
	}
	w[Wednesday] = []WorkBlock{
		{StartTime: "8:00 AM", EndTime: "4:00 PM", Location: "remote", Block: 3},
	}
	w[Friday] = []WorkBlock{
		{StartTime: "10:00 AM", EndTime: "2:00 PM", Location: "  OFFICE ", Block: 1},
	}
	return w
}

func TestClassifyLocation(t *testing.T) {
	tests := []struct {
		in   string
		want Location
	}{
		{"Office", LocationOffice},
		{" office ", LocationOffice},
		{"OFFICE", LocationOffice},
		{"Home", LocationRemote},
		{"Office 2", LocationRemote},
		{"", LocationRemote},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyLocation(tt.in), "ClassifyLocation(%q)", tt.in)
	}
}

func TestEmployeeWeekHasData(t *testing.T) {
	var empty EmployeeWeek
	assert.False(t, empty.HasData())

	empty[Tuesday] = []WorkBlock{}
	assert.False(t, empty.HasData(), "empty slices are not data")

	assert.True(t, sampleWeek().HasData())
}

func TestEmployeeWeekOfficeOnly(t *testing.T) {
	w := sampleWeek()
	office := w.OfficeOnly()

	require.Len(t, office[Monday], 1)
	assert.Equal(t, "9:00 AM", office[Monday][0].StartTime)
	assert.Empty(t, office[Wednesday])
	require.Len(t, office[Friday], 1)
	assert.Equal(t, 2, office.BlockCount())

	// receiver untouched
	assert.Len(t, w[Monday], 2)
	assert.Equal(t, 4, w.BlockCount())

	assert.Equal(t, office, office.OfficeOnly())
}

func TestEmployeeWeekHasOfficeHours(t *testing.T) {
	assert.True(t, sampleWeek().HasOfficeHours())

	var w EmployeeWeek
	w[Thursday] = []WorkBlock{{StartTime: "9:00 AM", EndTime: "5:00 PM", Location: "Home", Block: 1}}
	assert.True(t, w.HasData())
	assert.False(t, w.HasOfficeHours())
	assert.False(t, w.OfficeOnly().HasData())
}

func TestEmployeeWeekJSONIsSparse(t *testing.T) {
	data, err := json.Marshal(sampleWeek())
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Len(t, raw, 3)
	assert.Contains(t, raw, "Monday")
	assert.NotContains(t, raw, "Tuesday")

	var back EmployeeWeek
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, sampleWeek(), back)
}

func TestEmployeeRecordWeek(t *testing.T) {
	r := EmployeeRecord{Name: "Jane Doe", Week2: sampleWeek()}
	assert.False(t, r.Week(Week1).HasData())
	assert.True(t, r.Week(Week2).HasData())
	assert.Equal(t, Week2, Week1.Other())
	assert.Equal(t, Week1, Week2.Other())
}

func TestScheduleNames(t *testing.T) {
	s := NewSchedule("book.xlsx", map[string]EmployeeRecord{
		"Bob Young": {Name: "Bob Young"},
		"Amy Zane":  {Name: "Amy Zane"},
	})
	assert.Equal(t, []string{"Amy Zane", "Bob Young"}, s.Names())
	assert.Equal(t, 2, s.Len())

	_, ok := s.Get("Nobody")
	assert.False(t, ok)

	var nilSchedule *Schedule
	assert.Equal(t, 0, nilSchedule.Len())
}

func TestParseWeekday(t *testing.T) {
	d, err := ParseWeekday("wednesday")
	require.NoError(t, err)
	assert.Equal(t, Wednesday, d)

	_, err = ParseWeekday("Saturday")
	assert.Error(t, err)
}
