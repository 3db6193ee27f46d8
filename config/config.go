// Package config resolves the planning run configuration from an optional
// YAML file and FLYTHROUGH_* environment variables. Overrides are resolved
// exactly once per run into plain structs; nothing in the planning pipeline
// reads configuration at arbitrary times.
//
// Recognized camera override keys, per strategy (follow, cinematic, birdseye,
// static): followDistance, followHeight, lookAheadDistance, smoothingFactor,
// enableTilt, enableRotation, minHeight, maxHeight.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/thelonius/flythrough/camera"
	"github.com/thelonius/flythrough/playback"
)

// Config is the fully resolved run configuration.
type Config struct {
	Strategy  string  `mapstructure:"strategy"`
	TargetFPS float64 `mapstructure:"targetFps"`
	BaseSpeed float64 `mapstructure:"baseSpeed"`

	// Camera holds the per-strategy settings, defaults already applied.
	Camera map[string]camera.Settings `mapstructure:"camera"`
}

// Load resolves the configuration. path may be empty, in which case only
// defaults and environment variables apply; a named file that cannot be read
// is an error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("FLYTHROUGH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("strategy", camera.NameFollow)
	v.SetDefault("targetFps", float64(playback.DefaultTargetFPS))
	v.SetDefault("baseSpeed", 1.0)
	for _, name := range camera.Names() {
		s := camera.DefaultSettings(name)
		v.SetDefault("camera."+name+".followDistance", s.FollowDistance)
		v.SetDefault("camera."+name+".followHeight", s.FollowHeight)
		v.SetDefault("camera."+name+".lookAheadDistance", s.LookAheadDistance)
		v.SetDefault("camera."+name+".smoothingFactor", s.Smoothing)
		v.SetDefault("camera."+name+".enableTilt", s.EnableTilt)
		v.SetDefault("camera."+name+".enableRotation", s.EnableRotation)
		v.SetDefault("camera."+name+".minHeight", s.MinHeight)
		v.SetDefault("camera."+name+".maxHeight", s.MaxHeight)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if _, err := camera.ForName(cfg.Strategy); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Settings returns the resolved settings for a strategy, falling back to the
// package defaults when the strategy has no entry.
func (c Config) Settings(strategy string) camera.Settings {
	if s, ok := c.Camera[strategy]; ok {
		return s
	}
	return camera.DefaultSettings(strategy)
}
