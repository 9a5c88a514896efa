package cmd

import (
	"github.com/spf13/viper"

	"github.com/relevant-community/pagerank/rank"
)

// Config holds the runtime knobs of the CLI.
// Values come from .pagerank.yaml, PAGERANK_* env vars, and flags.
type Config struct {
	Damping float64 `mapstructure:"damping"`
	Samples int     `mapstructure:"samples"`
	Port    int     `mapstructure:"port"`
}

// LoadConfig reads configuration from viper, applying built-in
// defaults for any value not set by config file, environment, or flags.
func LoadConfig() Config {
	viper.SetDefault("damping", rank.DefaultDamping)
	viper.SetDefault("samples", rank.DefaultSamples)
	viper.SetDefault("port", 7000)

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}
