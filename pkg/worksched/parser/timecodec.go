// Package parser extracts employee schedules from workbook sheets.
package parser

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// ErrMalformedTime indicates a cell that is neither a number nor a recognizable time.
var ErrMalformedTime = errors.New("malformed time value")

// ErrTimeOutOfRange indicates a time value outside the accepted range.
var ErrTimeOutOfRange = errors.New("time value out of range")

// maxDayFraction bounds fractional-day input; values in [1, 2) wrap past midnight.
const maxDayFraction = 2.0

const minutesPerDay = 24 * 60

// RawTimeKind identifies which variant a RawTime carries.
type RawTimeKind int

const (
	// KindClock carries hour and minute components (date/time cells, clock text).
	KindClock RawTimeKind = iota
	// KindFraction carries a fraction of a day (0.5 = 12:00).
	KindFraction
)

// RawTime is a time cell value as read from the sheet, before formatting.
type RawTime struct {
	Kind     RawTimeKind
	Hour     int
	Minute   int
	Fraction float64
}

// ClockTime creates a RawTime from hour and minute components.
func ClockTime(hour, minute int) RawTime {
	return RawTime{Kind: KindClock, Hour: hour, Minute: minute}
}

// DayFraction creates a RawTime from a fractional-day number.
func DayFraction(f float64) RawTime {
	return RawTime{Kind: KindFraction, Fraction: f}
}

// hours returns the real-valued hour of day.
func (t RawTime) hours() (float64, error) {
	switch t.Kind {
	case KindClock:
		if t.Hour < 0 || t.Hour > 23 || t.Minute < 0 || t.Minute > 59 {
			return 0, fmt.Errorf("%w: %02d:%02d", ErrTimeOutOfRange, t.Hour, t.Minute)
		}
		return float64(t.Hour) + float64(t.Minute)/60, nil
	case KindFraction:
		f := t.Fraction
		if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 || f >= maxDayFraction {
			return 0, fmt.Errorf("%w: %v", ErrTimeOutOfRange, f)
		}
		return f * 24, nil
	}
	return 0, fmt.Errorf("%w: unknown kind %d", ErrMalformedTime, t.Kind)
}

// Decode formats a raw time as "H:MM AM/PM".
// Minutes are rounded on the whole value, so 8:59:45 becomes 9:00 AM.
// Fractions in [1, 2) wrap past midnight.
func Decode(t RawTime) (string, error) {
	h, err := t.hours()
	if err != nil {
		return "", err
	}
	total := int(math.Round(h*60)) % minutesPerDay
	return formatMinutes(total), nil
}

func formatMinutes(total int) string {
	hour, minute := total/60, total%60
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	display := hour
	switch {
	case hour == 0:
		display = 12
	case hour > 12:
		display = hour - 12
	}
	return fmt.Sprintf("%d:%02d %s", display, minute, period)
}

var displayTimePattern = regexp.MustCompile(`^(\d{1,2}):(\d{2}) ([AaPp][Mm])$`)

// ToMinutes parses a "H:MM AM/PM" string into minutes since midnight.
// 12:00 AM is 0 and 12:00 PM is 720.
func ToMinutes(s string) (int, error) {
	m := displayTimePattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour < 1 || hour > 12 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrTimeOutOfRange, s)
	}
	total := (hour%12)*60 + minute
	if strings.EqualFold(m[3], "PM") {
		total += 720
	}
	return total, nil
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

var clockLayouts = []string{
	"3:04 PM",
	"3:04PM",
	"3:04:05 PM",
	"15:04",
	"15:04:05",
}

// ReadRawTime resolves a raw cell string into a RawTime.
// Date-typed cells and serial date-times (>= 2) become KindClock, plain
// numbers become KindFraction, and clock text such as "9:30 AM" is
// accepted as KindClock.
func ReadRawTime(raw string, cellType excelize.CellType) (RawTime, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return RawTime{}, fmt.Errorf("%w: empty", ErrMalformedTime)
	}

	if cellType == excelize.CellTypeDate {
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, raw); err == nil {
				return ClockTime(t.Hour(), t.Minute()), nil
			}
		}
	}

	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		if f >= maxDayFraction {
			t, err := excelize.ExcelDateToTime(f, false)
			if err != nil {
				return RawTime{}, fmt.Errorf("%w: %v", ErrTimeOutOfRange, err)
			}
			return ClockTime(t.Hour(), t.Minute()), nil
		}
		return DayFraction(f), nil
	}

	upper := strings.ToUpper(raw)
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, upper); err == nil {
			return ClockTime(t.Hour(), t.Minute()), nil
		}
	}
	return RawTime{}, fmt.Errorf("%w: %q", ErrMalformedTime, raw)
}
