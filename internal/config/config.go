// Package config loads blockfall settings from defaults, a YAML file, the
// environment and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/kirsle/configdir"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/internal/highscore"
	"github.com/plus3/blockfall/piece"
)

const (
	// AppName names the config directory and the environment prefix.
	AppName   = "blockfall"
	EnvPrefix = "BLOCKFALL"

	RandomizerUniform = "uniform"
	RandomizerBag     = "bag"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Rules      game.Rules   `mapstructure:"rules" yaml:"rules"`
	Seed       uint64       `mapstructure:"seed" yaml:"seed"`
	Randomizer string       `mapstructure:"randomizer" yaml:"randomizer"`
	Scores     ScoresConfig `mapstructure:"scores" yaml:"scores"`
	Log        LogConfig    `mapstructure:"log" yaml:"log"`
	Window     WindowConfig `mapstructure:"window" yaml:"window"`
}

type ScoresConfig struct {
	// Backend is "file" or "sqlite".
	Backend string `mapstructure:"backend" yaml:"backend"`
	// Path defaults to a file in Dir() named after the backend.
	Path string `mapstructure:"path" yaml:"path"`
}

type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	File  string `mapstructure:"file" yaml:"file"`
}

type WindowConfig struct {
	CellSize int  `mapstructure:"cell_size" yaml:"cell_size"`
	Debug    bool `mapstructure:"debug" yaml:"debug"`
}

// Dir is the per-user directory holding config.yaml, scores and logs.
func Dir() string {
	return configdir.LocalConfig(AppName)
}

// SetDefaults registers a default for every key so that environment
// variables are seen by Unmarshal.
func SetDefaults(v *viper.Viper) {
	rules := game.DefaultRules()
	v.SetDefault("rules.width", rules.Width)
	v.SetDefault("rules.height", rules.Height)
	v.SetDefault("rules.lines_per_level", rules.LinesPerLevel)
	v.SetDefault("rules.points_per_line", rules.PointsPerLine)
	v.SetDefault("rules.base_interval", rules.BaseInterval)
	v.SetDefault("rules.interval_step", rules.IntervalStep)
	v.SetDefault("rules.min_interval", rules.MinInterval)

	v.SetDefault("seed", 0)
	v.SetDefault("randomizer", RandomizerUniform)
	v.SetDefault("scores.backend", highscore.BackendFile)
	v.SetDefault("scores.path", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("window.cell_size", 30)
	v.SetDefault("window.debug", false)
}

// Load reads the configuration into v. An explicit file must exist; without
// one, config.yaml is looked up in Dir() and may be absent.
func Load(v *viper.Viper, file string) (*Config, error) {
	return load(v, file, Dir())
}

func load(v *viper.Viper, file, searchDir string) (*Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(searchDir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Scores.Path == "" {
		cfg.Scores.Path = defaultScoresPath(searchDir, cfg.Scores.Backend)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaultScoresPath(dir, backend string) string {
	if backend == highscore.BackendSQLite {
		return filepath.Join(dir, "scores.db")
	}
	return filepath.Join(dir, "highscore.txt")
}

// Validate checks every field that cannot be fixed up silently.
func (c *Config) Validate() error {
	if err := c.Rules.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	switch c.Randomizer {
	case RandomizerUniform, RandomizerBag:
	default:
		return fmt.Errorf("%w: randomizer %q is not %q or %q", ErrInvalid, c.Randomizer, RandomizerUniform, RandomizerBag)
	}
	switch c.Scores.Backend {
	case highscore.BackendFile, highscore.BackendSQLite:
	default:
		return fmt.Errorf("%w: scores backend %q is not %q or %q", ErrInvalid, c.Scores.Backend, highscore.BackendFile, highscore.BackendSQLite)
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log level: %w", ErrInvalid, err)
	}
	if c.Window.CellSize < 4 {
		return fmt.Errorf("%w: window cell size %d is too small", ErrInvalid, c.Window.CellSize)
	}
	return nil
}

// Source builds the configured piece source. A zero seed is replaced by the
// current time.
func (c *Config) Source() piece.Source {
	seed := c.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	if c.Randomizer == RandomizerBag {
		return piece.NewBag(seed)
	}
	return piece.NewUniform(seed)
}

// YAML renders the effective configuration in config file form.
func (c *Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}
