// Package config loads algoflow CLI configuration from defaults, an optional
// YAML file, ALGOFLOW_* environment variables and bound command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/algoflow/driver"
	"github.com/katalvlaran/algoflow/pathfind"
	"github.com/katalvlaran/algoflow/sequence"
	"github.com/katalvlaran/algoflow/sorting"
)

// Sentinel validation errors.
var (
	ErrInvalidSize        = errors.New("run size must be between 0 and the maximum")
	ErrInvalidRange       = errors.New("run min/max must form a drawable range")
	ErrInvalidSpeed       = errors.New("run speed must be between 1 and 100")
	ErrInvalidMaxSteps    = errors.New("run max_steps must be non-negative")
	ErrInvalidNodes       = errors.New("path nodes must be between 1 and the maximum")
	ErrInvalidProbability = errors.New("path probability must be in [0,1]")
	ErrInvalidLogLevel    = errors.New("unknown logging level")
	ErrInvalidLogFormat   = errors.New("unknown logging format")
	ErrInvalidWidth       = errors.New("render width must be positive")
)

// Default configuration values.
const (
	envPrefix     = "ALGOFLOW"
	defaultSpeed  = 50
	defaultWidth  = 60
	maxSize       = 2000
	maxNodes      = 200
	defaultLevel  = "info"
	defaultFormat = "text"
	defaultAlgo   = string(sorting.AlgoBubble)
)

// Config holds all configuration for the algoflow CLI.
type Config struct {
	Run     RunConfig     `mapstructure:"run"`
	Path    PathConfig    `mapstructure:"path"`
	Logging LoggingConfig `mapstructure:"logging"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Render  RenderConfig  `mapstructure:"render"`
}

// RunConfig controls sorting runs.
type RunConfig struct {
	Algorithm string `mapstructure:"algorithm"`
	Size      int    `mapstructure:"size"`
	Min       int    `mapstructure:"min"`
	Max       int    `mapstructure:"max"`
	Seed      int64  `mapstructure:"seed"`
	Speed     int    `mapstructure:"speed"`
	MaxSteps  int    `mapstructure:"max_steps"`
	Runs      int    `mapstructure:"runs"`
}

// PathConfig controls path-finding runs. Target −1 means the last node.
type PathConfig struct {
	Nodes       int     `mapstructure:"nodes"`
	Probability float64 `mapstructure:"probability"`
	Seed        int64   `mapstructure:"seed"`
	Source      int     `mapstructure:"source"`
	Target      int     `mapstructure:"target"`
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// MetricsConfig holds the Prometheus endpoint configuration. An empty
// address disables the endpoint.
type MetricsConfig struct {
	Addr string `mapstructure:"addr"`
}

// RenderConfig holds terminal rendering options.
type RenderConfig struct {
	Color  bool `mapstructure:"color"`
	Width  int  `mapstructure:"width"`
	Frames bool `mapstructure:"frames"`
}

// Load builds the configuration. configPath may be empty, in which case
// ./algoflow.yaml and $HOME/.config/algoflow/algoflow.yaml are tried and a
// missing file is not an error. flags maps config keys (e.g. "run.size")
// to command-line flags that override every other source when set.
func Load(configPath string, flags map[string]*pflag.Flag) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("algoflow")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/algoflow")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, flag := range flags {
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return nil, fmt.Errorf("bind flag %q: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Run defaults.
	v.SetDefault("run.algorithm", defaultAlgo)
	v.SetDefault("run.size", sequence.DefaultSize)
	v.SetDefault("run.min", sequence.DefaultMin)
	v.SetDefault("run.max", sequence.DefaultMax)
	v.SetDefault("run.seed", 0)
	v.SetDefault("run.speed", defaultSpeed)
	v.SetDefault("run.max_steps", 0)
	v.SetDefault("run.runs", 1)

	// Path defaults.
	v.SetDefault("path.nodes", pathfind.DefaultNodes)
	v.SetDefault("path.probability", pathfind.DefaultProbability)
	v.SetDefault("path.seed", 0)
	v.SetDefault("path.source", 0)
	v.SetDefault("path.target", -1)

	// Logging defaults.
	v.SetDefault("logging.level", defaultLevel)
	v.SetDefault("logging.format", defaultFormat)

	// Metrics and render defaults.
	v.SetDefault("metrics.addr", "")
	v.SetDefault("render.color", true)
	v.SetDefault("render.width", defaultWidth)
	v.SetDefault("render.frames", true)
}

// Validate checks value domains and normalizes the algorithm name.
func Validate(cfg *Config) error {
	algo, err := sorting.Parse(cfg.Run.Algorithm)
	if err != nil {
		return err
	}
	cfg.Run.Algorithm = string(algo)

	if cfg.Run.Size < 0 || cfg.Run.Size > maxSize {
		return fmt.Errorf("%w: %d (max %d)", ErrInvalidSize, cfg.Run.Size, maxSize)
	}
	if err := sequence.CheckRange(cfg.Run.Min, cfg.Run.Max); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRange, err)
	}
	if cfg.Run.Speed < driver.MinSpeed || cfg.Run.Speed > driver.MaxSpeed {
		return fmt.Errorf("%w: %d", ErrInvalidSpeed, cfg.Run.Speed)
	}
	if cfg.Run.MaxSteps < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMaxSteps, cfg.Run.MaxSteps)
	}
	if cfg.Run.Runs < 1 {
		cfg.Run.Runs = 1
	}

	if cfg.Path.Nodes < 1 || cfg.Path.Nodes > maxNodes {
		return fmt.Errorf("%w: %d (max %d)", ErrInvalidNodes, cfg.Path.Nodes, maxNodes)
	}
	if cfg.Path.Probability < 0 || cfg.Path.Probability > 1 {
		return fmt.Errorf("%w: %g", ErrInvalidProbability, cfg.Path.Probability)
	}
	if cfg.Path.Target < 0 {
		cfg.Path.Target = cfg.Path.Nodes - 1
	}

	switch strings.ToLower(cfg.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, cfg.Logging.Level)
	}
	switch strings.ToLower(cfg.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, cfg.Logging.Format)
	}

	if cfg.Render.Width <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWidth, cfg.Render.Width)
	}

	return nil
}
