package config

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/IlikeChooros/go-sim/pkg/search"
	"github.com/IlikeChooros/go-sim/pkg/sim"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Depth        int    `mapstructure:"DEPTH"`
	HumanColor   string `mapstructure:"HUMAN_COLOR"`
	Color        bool   `mapstructure:"COLOR"`
	LogLevel     string `mapstructure:"LOG_LEVEL"`
	ArenaGames   int    `mapstructure:"ARENA_GAMES"`
	ArenaThreads int    `mapstructure:"ARENA_THREADS"`
	OpeningMoves int    `mapstructure:"OPENING_MOVES"`

	// Each arena engine needs an even depth as red and an odd one as blue
	ArenaRedDepth1  int `mapstructure:"ARENA_RED_DEPTH1"`
	ArenaBlueDepth1 int `mapstructure:"ARENA_BLUE_DEPTH1"`
	ArenaRedDepth2  int `mapstructure:"ARENA_RED_DEPTH2"`
	ArenaBlueDepth2 int `mapstructure:"ARENA_BLUE_DEPTH2"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("DEPTH", 3)
	v.SetDefault("HUMAN_COLOR", "red")
	v.SetDefault("COLOR", true)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("ARENA_GAMES", 100)
	v.SetDefault("ARENA_THREADS", 2)
	v.SetDefault("ARENA_RED_DEPTH1", 2)
	v.SetDefault("ARENA_BLUE_DEPTH1", 1)
	v.SetDefault("ARENA_RED_DEPTH2", 4)
	v.SetDefault("ARENA_BLUE_DEPTH2", 3)
	v.SetDefault("OPENING_MOVES", 2)
}

// Setup reads the configuration from cfgPath (skipped when empty) and SIM_* environment
// variables, on top of the defaults
func Setup(cfgPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("SIM")
	v.AutomaticEnv()

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", cfgPath)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Depth in [1, 15] that ends the search on red to move, see search.ValidDepth
func validDepth(player sim.Color, depth int) bool {
	return depth >= 1 && depth <= sim.NumEdges && search.ValidDepth(player, depth)
}

func (c *Config) Validate() error {
	human, err := sim.ParseColor(c.HumanColor)
	if err != nil {
		return errors.Wrapf(ErrInvalidConfig, "human color: %v", err)
	}
	if computer := human.Opponent(); !validDepth(computer, c.Depth) {
		return errors.Wrapf(ErrInvalidConfig, "depth %d for the computer playing %v, expected %s in 1..%d",
			c.Depth, computer, parity(computer), sim.NumEdges)
	}
	if !validDepth(sim.ColorRed, c.ArenaRedDepth1) || !validDepth(sim.ColorRed, c.ArenaRedDepth2) {
		return errors.Wrapf(ErrInvalidConfig, "arena red depths %d, %d, expected even in 2..%d",
			c.ArenaRedDepth1, c.ArenaRedDepth2, sim.NumEdges)
	}
	if !validDepth(sim.ColorBlue, c.ArenaBlueDepth1) || !validDepth(sim.ColorBlue, c.ArenaBlueDepth2) {
		return errors.Wrapf(ErrInvalidConfig, "arena blue depths %d, %d, expected odd in 1..%d",
			c.ArenaBlueDepth1, c.ArenaBlueDepth2, sim.NumEdges)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "log level: %v", err)
	}
	if c.ArenaGames < 0 || c.ArenaThreads < 1 || c.OpeningMoves < 0 || c.OpeningMoves > sim.NumEdges {
		return errors.Wrapf(ErrInvalidConfig, "arena games %d, threads %d, opening moves %d",
			c.ArenaGames, c.ArenaThreads, c.OpeningMoves)
	}
	return nil
}

func parity(player sim.Color) string {
	if player == sim.ColorRed {
		return "even"
	}
	return "odd"
}

// Human returns the parsed human color, valid after Validate
func (c *Config) Human() sim.Color {
	color, _ := sim.ParseColor(c.HumanColor)
	return color
}
