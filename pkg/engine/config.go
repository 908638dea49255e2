package engine

import (
	"errors"
	"fmt"

	"github.com/pthyseba/astar/pkg"
	"github.com/spf13/viper"
)

var (
	ErrInvalidConfig = errors.New("invalid engine config")
)

type Config struct {
	MaxNodes              uint32
	MaxFuel               uint64
	DefaultMaxHopDistance uint64
	MaxPops               int
	ResultCacheSize       int
}

func DefaultConfig() Config {
	return Config{
		MaxNodes:              pkg.DEFAULT_MAX_NODES,
		MaxFuel:               pkg.DEFAULT_MAX_FUEL,
		DefaultMaxHopDistance: pkg.DEFAULT_MAX_HOP_DISTANCE,
		MaxPops:               0,
		ResultCacheSize:       pkg.DEFAULT_RESULT_CACHE_SIZE,
	}
}

// NewConfigFromViper reads the engine keys, falling back to DefaultConfig.
func NewConfigFromViper() Config {
	def := DefaultConfig()
	viper.SetDefault("MAX_NODES", def.MaxNodes)
	viper.SetDefault("MAX_FUEL", def.MaxFuel)
	viper.SetDefault("MAX_HOP_DISTANCE", def.DefaultMaxHopDistance)
	viper.SetDefault("MAX_POPS", def.MaxPops)
	viper.SetDefault("RESULT_CACHE_SIZE", def.ResultCacheSize)

	return Config{
		MaxNodes:              viper.GetUint32("MAX_NODES"),
		MaxFuel:               viper.GetUint64("MAX_FUEL"),
		DefaultMaxHopDistance: viper.GetUint64("MAX_HOP_DISTANCE"),
		MaxPops:               viper.GetInt("MAX_POPS"),
		ResultCacheSize:       viper.GetInt("RESULT_CACHE_SIZE"),
	}
}

// Validate enforces the system level invariant that a single hop never needs more than a full
// tank, so successor fuel never underflows.
func (c Config) Validate() error {
	if c.MaxNodes == 0 {
		return fmt.Errorf("max nodes must be positive: %w", ErrInvalidConfig)
	}
	if c.MaxFuel == 0 {
		return fmt.Errorf("max fuel must be positive: %w", ErrInvalidConfig)
	}
	if c.DefaultMaxHopDistance > c.MaxFuel {
		return fmt.Errorf("max hop distance %d exceeds max fuel %d: %w", c.DefaultMaxHopDistance, c.MaxFuel,
			ErrInvalidConfig)
	}
	if c.MaxPops < 0 {
		return fmt.Errorf("max pops must not be negative: %w", ErrInvalidConfig)
	}
	return nil
}
