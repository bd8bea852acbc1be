package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/worksched-go/pkg/worksched/models"
	"github.com/ukaji3/worksched-go/pkg/worksched/parser"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "worksched.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func clearEnv(t *testing.T) {
	for _, key := range []string{"WORKSCHED_CONFIG", "WORKSCHED_WORKBOOK", "WORKSCHED_ANCHOR", "WORKSCHED_LOG_LEVEL", "WORKSCHED_RESERVED_SHEETS"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)

	opts, err := cfg.Options(nil)
	require.NoError(t, err)
	assert.Equal(t, parser.DefaultGeometry(), opts.Geometry)
	assert.True(t, opts.Anchor.IsZero())
	assert.Equal(t, parser.DefaultReservedSheets, opts.Reserved())
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
workbook_path: schedules/TMS-WorkSchedules.xlsx
anchor_date: "2025-09-13"
reserved_sheets: [Template]
log_level: debug
geometry:
  name_cell: B2
  days:
    friday: "X:Z"
  week1_rows: "10:14"
  week2_rows: "30:34"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "schedules/TMS-WorkSchedules.xlsx", cfg.WorkbookPath)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)

	opts, err := cfg.Options(nil)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.September, 13, 0, 0, 0, 0, time.UTC), opts.Anchor)
	assert.Equal(t, []string{"Template"}, opts.Reserved())
	assert.Equal(t, "B2", opts.Geometry.NameCell)
	assert.Equal(t, parser.ColumnTriplet{Start: "X", End: "Y", Location: "Z"}, opts.Geometry.Days[models.Friday])
	assert.Equal(t, parser.ColumnTriplet{Start: "I", End: "J", Location: "K"}, opts.Geometry.Days[models.Monday])
	assert.Equal(t, parser.RowBand{First: 30, Last: 34}, opts.Geometry.Week2)
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "workbook_path: a.xlsx\nlog_level: warn\n")
	t.Setenv("WORKSCHED_WORKBOOK", "b.xlsx")
	t.Setenv("WORKSCHED_RESERVED_SHEETS", "One, Two ,")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "b.xlsx", cfg.WorkbookPath)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, []string{"One", "Two"}, cfg.ReservedSheets)
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("WORKSCHED_ANCHOR=2024-01-06\n"), 0644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-06", cfg.AnchorDate)
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err, "explicit path must exist")

	tests := []struct {
		name string
		body string
	}{
		{"bad yaml", "geometry: [\n"},
		{"bad anchor", "anchor_date: 13/09/2025\n"},
		{"bad level", "log_level: loud\n"},
		{"bad weekday", "geometry:\n  days:\n    saturday: \"X:Z\"\n"},
		{"bad columns", "geometry:\n  days:\n    monday: \"I:J\"\n"},
		{"overlapping rows", "geometry:\n  week2_rows: \"12:16\"\n"},
	}
	for _, tt := range tests {
		_, err := Load(writeConfig(t, tt.body))
		assert.Error(t, err, tt.name)
	}
}
