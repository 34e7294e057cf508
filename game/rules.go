package game

import (
	"errors"
	"fmt"
)

// ErrInvalidRules is wrapped by every Rules validation failure.
var ErrInvalidRules = errors.New("invalid rules")

// Rules are the fixed parameters of a game: board size, scoring and the
// fall-speed ramp. Intervals are in seconds.
type Rules struct {
	Width         int     `mapstructure:"width" yaml:"width"`
	Height        int     `mapstructure:"height" yaml:"height"`
	LinesPerLevel int     `mapstructure:"lines_per_level" yaml:"lines_per_level"`
	PointsPerLine int     `mapstructure:"points_per_line" yaml:"points_per_line"`
	BaseInterval  float64 `mapstructure:"base_interval" yaml:"base_interval"`
	IntervalStep  float64 `mapstructure:"interval_step" yaml:"interval_step"`
	MinInterval   float64 `mapstructure:"min_interval" yaml:"min_interval"`
}

// DefaultRules returns the standard 10×20 game: 100 points per line, a level
// every 10 lines, and a fall interval starting at 0.5s that shrinks by 0.05s
// per level down to 0.1s.
func DefaultRules() Rules {
	return Rules{
		Width:         10,
		Height:        20,
		LinesPerLevel: 10,
		PointsPerLine: 100,
		BaseInterval:  0.5,
		IntervalStep:  0.05,
		MinInterval:   0.1,
	}
}

// FallInterval returns the seconds per row at the given level.
func (r Rules) FallInterval(level int) float64 {
	return max(r.MinInterval, r.BaseInterval-float64(level-1)*r.IntervalStep)
}

// Validate reports the first rule that cannot produce a playable game.
func (r Rules) Validate() error {
	switch {
	case r.Width < 4:
		return fmt.Errorf("%w: width %d is narrower than the widest piece", ErrInvalidRules, r.Width)
	case r.Height < 4:
		return fmt.Errorf("%w: height %d is shorter than the tallest piece", ErrInvalidRules, r.Height)
	case r.LinesPerLevel <= 0:
		return fmt.Errorf("%w: lines per level must be positive", ErrInvalidRules)
	case r.PointsPerLine < 0:
		return fmt.Errorf("%w: points per line must not be negative", ErrInvalidRules)
	case r.MinInterval <= 0:
		return fmt.Errorf("%w: min interval must be positive", ErrInvalidRules)
	case r.BaseInterval < r.MinInterval:
		return fmt.Errorf("%w: base interval %.3fs is below min interval %.3fs", ErrInvalidRules, r.BaseInterval, r.MinInterval)
	case r.IntervalStep < 0:
		return fmt.Errorf("%w: interval step must not be negative", ErrInvalidRules)
	}
	return nil
}
