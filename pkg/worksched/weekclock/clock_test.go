package weekclock

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/worksched-go/pkg/worksched/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekTypeAroundAnchor(t *testing.T) {
	c := New(DefaultAnchor)

	for d := 13; d <= 19; d++ {
		assert.Equal(t, models.Week1, c.WeekType(date(2025, time.September, d)), "Sep %d", d)
	}
	for d := 20; d <= 26; d++ {
		assert.Equal(t, models.Week2, c.WeekType(date(2025, time.September, d)), "Sep %d", d)
	}
	assert.Equal(t, models.Week1, c.WeekType(date(2025, time.September, 27)))
}

func TestWeekTypeBeforeAnchor(t *testing.T) {
	c := New(DefaultAnchor)

	// the seven days before the anchor are the previous cycle's week 2
	for d := 6; d <= 12; d++ {
		assert.Equal(t, models.Week2, c.WeekType(date(2025, time.September, d)), "Sep %d", d)
	}
	assert.Equal(t, models.Week1, c.WeekType(date(2025, time.August, 30)))
	assert.Equal(t, date(2025, time.September, 6), c.WeekStart(date(2025, time.September, 12)))
}

func TestWeekTypeAlternates(t *testing.T) {
	c := New(DefaultAnchor)
	start := date(2024, time.January, 1)
	for i := 0; i < 3*365; i++ {
		d := start.AddDate(0, 0, i)
		assert.NotEqual(t, c.WeekType(d), c.WeekType(d.AddDate(0, 0, 7)), "%s", d.Format(time.DateOnly))
		assert.Equal(t, c.WeekType(d), c.WeekType(d.AddDate(0, 0, 14)), "%s", d.Format(time.DateOnly))
	}
}

func TestWeekTypeIgnoresTimeOfDay(t *testing.T) {
	c := New(DefaultAnchor)
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	lastEvening := time.Date(2025, time.September, 19, 23, 59, 0, 0, ny)
	assert.Equal(t, models.Week1, c.WeekType(lastEvening))
	assert.Equal(t, models.Week2, c.WeekType(time.Date(2025, time.September, 20, 0, 1, 0, 0, ny)))

	// across the November DST change
	assert.Equal(t, date(2025, time.November, 8), c.WeekStart(time.Date(2025, time.November, 14, 12, 0, 0, 0, ny)))
}

func TestWeekStart(t *testing.T) {
	c := New(DefaultAnchor)
	assert.Equal(t, date(2025, time.September, 13), c.WeekStart(date(2025, time.September, 13)))
	assert.Equal(t, date(2025, time.September, 13), c.WeekStart(date(2025, time.September, 19)))
	assert.Equal(t, date(2025, time.September, 20), c.WeekStart(date(2025, time.September, 22)))
	assert.Equal(t, date(2026, time.October, 17), c.WeekStart(date(2026, time.October, 19)))
}

func TestNavigate(t *testing.T) {
	c := New(DefaultAnchor)
	start := date(2025, time.September, 13)

	next, wt, err := c.Navigate(start, 1)
	require.NoError(t, err)
	assert.Equal(t, date(2025, time.September, 20), next)
	assert.Equal(t, models.Week2, wt)

	prev, wt, err := c.Navigate(start, -1)
	require.NoError(t, err)
	assert.Equal(t, date(2025, time.September, 6), prev)
	assert.Equal(t, models.Week2, wt)

	_, _, err = c.Navigate(start, 2)
	assert.ErrorIs(t, err, ErrInvalidDirection)
	_, _, err = c.Navigate(start, 0)
	assert.ErrorIs(t, err, ErrInvalidDirection)
}

func TestCursor(t *testing.T) {
	c := New(DefaultAnchor)
	cur := c.CursorAt(date(2025, time.September, 24))
	assert.Equal(t, Cursor{WeekStart: date(2025, time.September, 20), WeekType: models.Week2}, cur)

	back, err := c.Move(cur, -1)
	require.NoError(t, err)
	assert.Equal(t, Cursor{WeekStart: date(2025, time.September, 13), WeekType: models.Week1}, back)

	same, err := c.Move(cur, 3)
	assert.Error(t, err)
	assert.Equal(t, cur, same)
}

func TestIsCurrentWeek(t *testing.T) {
	start := date(2025, time.September, 13)
	assert.True(t, IsCurrentWeek(start, date(2025, time.September, 13)))
	assert.True(t, IsCurrentWeek(start, time.Date(2025, time.September, 19, 23, 30, 0, 0, time.UTC)))
	assert.False(t, IsCurrentWeek(start, date(2025, time.September, 20)))
	assert.False(t, IsCurrentWeek(start, date(2025, time.September, 12)))
}

func TestWeekdayIndex(t *testing.T) {
	tests := []struct {
		day  time.Time
		want int
	}{
		{date(2025, time.September, 15), 0}, // Monday
		{date(2025, time.September, 17), 2},
		{date(2025, time.September, 19), 4}, // Friday
		{date(2025, time.September, 20), -1},
		{date(2025, time.September, 21), -1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, WeekdayIndex(tt.day), tt.day.Weekday().String())
	}
}

func TestFormatRange(t *testing.T) {
	assert.Equal(t, "September 13, 2025 - September 19, 2025", FormatRange(date(2025, time.September, 13)))
	assert.Equal(t, "December 27, 2025 - January 2, 2026", FormatRange(date(2025, time.December, 27)))
}
