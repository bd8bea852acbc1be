// Package worksched loads bi-weekly employee work schedules from xlsx workbooks.
package worksched

import (
	"log/slog"
	"time"

	"github.com/ukaji3/worksched-go/pkg/worksched/parser"
	"github.com/ukaji3/worksched-go/pkg/worksched/weekclock"
)

// Options configures loading behavior.
type Options struct {
	// Geometry locates names and blocks on each employee sheet.
	Geometry parser.Geometry
	// ReservedSheets are excluded by exact name match.
	// If nil, parser.DefaultReservedSheets is used.
	ReservedSheets []string
	// Anchor is the first day of week type 1. Zero means weekclock.DefaultAnchor.
	Anchor time.Time
	// Logger receives debug and warning output. Nil discards it.
	Logger *slog.Logger
}

// DefaultOptions returns default loading options.
func DefaultOptions() Options {
	return Options{
		Geometry: parser.DefaultGeometry(),
	}
}

// Reserved returns the reserved sheet names in effect.
func (o Options) Reserved() []string {
	if o.ReservedSheets != nil {
		return o.ReservedSheets
	}
	return parser.DefaultReservedSheets
}

// Clock returns the week clock for the configured anchor.
func (o Options) Clock() weekclock.Clock {
	if o.Anchor.IsZero() {
		return weekclock.New(weekclock.DefaultAnchor)
	}
	return weekclock.New(o.Anchor)
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.DiscardHandler)
}
