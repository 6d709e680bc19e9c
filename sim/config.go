package sim

import (
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// ErrInvalidConfig is wrapped by every error Config.Validate returns.
var ErrInvalidConfig = errors.New("invalid config")

const (
	DefaultColumns      = 10
	DefaultRows         = 40
	DefaultGravityEvery = 2
	DefaultTickInterval = 100 * time.Millisecond

	minRows = 4
)

// Config fixes the board size and tick cadence for an engine.
type Config struct {
	// Columns is the number of playable columns, borders excluded.
	Columns int
	Rows    int
	// GravityEvery moves pieces down on every n-th tick.
	GravityEvery int
	// TickInterval is only used by Run's collaborators; Tick itself is untimed.
	TickInterval time.Duration
	Glyph        string
	Logger       *slog.Logger
}

func DefaultConfig() Config {
	return Config{
		Columns:      DefaultColumns,
		Rows:         DefaultRows,
		GravityEvery: DefaultGravityEvery,
		TickInterval: DefaultTickInterval,
		Glyph:        DefaultGlyph,
	}
}

// Validate checks that every piece can spawn and rotate on a board of this size.
func (c Config) Validate() error {
	minCol, maxCol := ColumnExtent()
	if width := maxCol - minCol + 1; c.Columns < width {
		return fmt.Errorf("%w: columns %d, need at least %d", ErrInvalidConfig, c.Columns, width)
	}
	if c.Rows < minRows {
		return fmt.Errorf("%w: rows %d, need at least %d", ErrInvalidConfig, c.Rows, minRows)
	}
	if c.GravityEvery < 1 {
		return fmt.Errorf("%w: gravity cadence %d must be positive", ErrInvalidConfig, c.GravityEvery)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("%w: tick interval %s must be positive", ErrInvalidConfig, c.TickInterval)
	}
	return nil
}

func (c Config) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}
