// Package config loads worksched settings from YAML, .env and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/ukaji3/worksched-go/pkg/worksched"
	"github.com/ukaji3/worksched-go/pkg/worksched/models"
	"github.com/ukaji3/worksched-go/pkg/worksched/parser"
)

// DefaultPath is read when no explicit config path is given.
const DefaultPath = "worksched.yaml"

// Config is the on-disk configuration.
type Config struct {
	WorkbookPath   string         `yaml:"workbook_path"`
	AnchorDate     string         `yaml:"anchor_date"`
	ReservedSheets []string       `yaml:"reserved_sheets"`
	LogLevel       string         `yaml:"log_level"`
	Geometry       GeometryConfig `yaml:"geometry"`
}

// GeometryConfig describes the sheet layout in spreadsheet notation.
type GeometryConfig struct {
	NameCell string `yaml:"name_cell"`
	// Days maps weekday name to a column triplet such as "I:K".
	Days  map[string]string `yaml:"days"`
	Week1 string            `yaml:"week1_rows"`
	Week2 string            `yaml:"week2_rows"`
}

// Load reads configuration. An explicit path must exist; the default
// path and .env are optional. Environment variables override file values.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	explicit := path != ""
	if !explicit {
		path = DefaultPath
		if env := os.Getenv("WORKSCHED_CONFIG"); env != "" {
			path, explicit = env, true
		}
	}

	cfg := &Config{}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case explicit || !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	envOverride(&cfg.WorkbookPath, "WORKSCHED_WORKBOOK")
	envOverride(&cfg.AnchorDate, "WORKSCHED_ANCHOR")
	envOverride(&cfg.LogLevel, "WORKSCHED_LOG_LEVEL")
	if names := os.Getenv("WORKSCHED_RESERVED_SHEETS"); names != "" {
		cfg.ReservedSheets = nil
		for _, name := range strings.Split(names, ",") {
			if name = strings.TrimSpace(name); name != "" {
				cfg.ReservedSheets = append(cfg.ReservedSheets, name)
			}
		}
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func envOverride(field *string, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		*field = val
	}
}

// Validate checks that every configured value parses.
func (c *Config) Validate() error {
	if _, err := c.Anchor(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if _, err := c.Geometry.Build(); err != nil {
		return err
	}
	return nil
}

// Anchor returns the anchor date, or the zero time when unset.
func (c *Config) Anchor() (time.Time, error) {
	if c.AnchorDate == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.DateOnly, c.AnchorDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid anchor_date %q: %w", c.AnchorDate, err)
	}
	return t, nil
}

// Level returns the configured slog level.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}

// Build returns the parser geometry, starting from the default layout
// and replacing whatever is set.
func (gc GeometryConfig) Build() (parser.Geometry, error) {
	geom := parser.DefaultGeometry()
	if gc.NameCell != "" {
		geom.NameCell = gc.NameCell
	}
	for day, cols := range gc.Days {
		d, err := models.ParseWeekday(day)
		if err != nil {
			return parser.Geometry{}, fmt.Errorf("geometry.days: %w", err)
		}
		triplet, err := parser.ParseColumnTriplet(cols)
		if err != nil {
			return parser.Geometry{}, fmt.Errorf("geometry.days.%s: %w", day, err)
		}
		geom.Days[d] = triplet
	}
	if gc.Week1 != "" {
		band, err := parser.ParseRowBand(gc.Week1)
		if err != nil {
			return parser.Geometry{}, fmt.Errorf("geometry.week1_rows: %w", err)
		}
		geom.Week1 = band
	}
	if gc.Week2 != "" {
		band, err := parser.ParseRowBand(gc.Week2)
		if err != nil {
			return parser.Geometry{}, fmt.Errorf("geometry.week2_rows: %w", err)
		}
		geom.Week2 = band
	}
	if err := geom.Validate(); err != nil {
		return parser.Geometry{}, fmt.Errorf("geometry: %w", err)
	}
	return geom, nil
}

// Options converts the configuration into load options.
func (c *Config) Options(logger *slog.Logger) (worksched.Options, error) {
	anchor, err := c.Anchor()
	if err != nil {
		return worksched.Options{}, err
	}
	geom, err := c.Geometry.Build()
	if err != nil {
		return worksched.Options{}, err
	}
	return worksched.Options{
		Geometry:       geom,
		ReservedSheets: c.ReservedSheets,
		Anchor:         anchor,
		Logger:         logger,
	}, nil
}
