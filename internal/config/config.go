// Package config provides Viper-based configuration loading for the battle simulator.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// CombatConfig holds the damage-pipeline tuning knobs.
type CombatConfig struct {
	// DefenseK is the soft-cap constant in the defense reduction curve.
	DefenseK float64 `mapstructure:"defense_k"`
	// BlockReduction is the fraction of damage removed while guarding.
	BlockReduction float64 `mapstructure:"block_reduction"`
}

// ProgressionConfig holds the XP curve and prestige settings.
type ProgressionConfig struct {
	// BaseXP is the XP required to reach level 2.
	BaseXP int `mapstructure:"base_xp"`
	// Growth is the per-level geometric multiplier on XP requirements.
	Growth float64 `mapstructure:"growth"`
	// MaxLevel is the level cap.
	MaxLevel int `mapstructure:"max_level"`
	// MaxPrestige is the prestige cap.
	MaxPrestige int `mapstructure:"max_prestige"`
}

// ContentConfig holds bird roster content settings.
type ContentConfig struct {
	// BirdsDir is a directory of bird archetype YAML files. Empty means
	// use the built-in roster.
	BirdsDir string `mapstructure:"birds_dir"`
}

// SimulatorConfig holds batch-simulation settings for the simbattle binary.
type SimulatorConfig struct {
	// Battles is the number of battles to simulate.
	Battles int `mapstructure:"battles"`
	// TickMs is the simulated tick duration in milliseconds.
	TickMs int `mapstructure:"tick_ms"`
	// MaxBattleSeconds aborts a battle as a forfeit once exceeded.
	MaxBattleSeconds int `mapstructure:"max_battle_seconds"`
	// ArcadeStage is the arcade stage number reported for rewards.
	ArcadeStage int `mapstructure:"arcade_stage"`
	// Seed drives matchup selection; 0 means time-seeded.
	Seed int64 `mapstructure:"seed"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging     LoggingConfig     `mapstructure:"logging"`
	Combat      CombatConfig      `mapstructure:"combat"`
	Progression ProgressionConfig `mapstructure:"progression"`
	Content     ContentConfig     `mapstructure:"content"`
	Simulator   SimulatorConfig   `mapstructure:"simulator"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateCombat(c.Combat); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateProgression(c.Progression); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateSimulator(c.Simulator); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateCombat(c CombatConfig) error {
	var errs []string
	if c.DefenseK <= 0 {
		errs = append(errs, fmt.Sprintf("combat.defense_k must be > 0, got %g", c.DefenseK))
	}
	if c.BlockReduction < 0 || c.BlockReduction >= 1 {
		errs = append(errs, fmt.Sprintf("combat.block_reduction must be in [0, 1), got %g", c.BlockReduction))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateProgression(p ProgressionConfig) error {
	var errs []string
	if p.BaseXP < 1 {
		errs = append(errs, fmt.Sprintf("progression.base_xp must be >= 1, got %d", p.BaseXP))
	}
	if p.Growth <= 1 {
		errs = append(errs, fmt.Sprintf("progression.growth must be > 1, got %g", p.Growth))
	}
	if p.MaxLevel < 2 {
		errs = append(errs, fmt.Sprintf("progression.max_level must be >= 2, got %d", p.MaxLevel))
	}
	if p.MaxPrestige < 0 {
		errs = append(errs, fmt.Sprintf("progression.max_prestige must be >= 0, got %d", p.MaxPrestige))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateSimulator(s SimulatorConfig) error {
	var errs []string
	if s.Battles < 1 {
		errs = append(errs, fmt.Sprintf("simulator.battles must be >= 1, got %d", s.Battles))
	}
	if s.TickMs < 1 {
		errs = append(errs, fmt.Sprintf("simulator.tick_ms must be >= 1, got %d", s.TickMs))
	}
	if s.MaxBattleSeconds < 1 {
		errs = append(errs, fmt.Sprintf("simulator.max_battle_seconds must be >= 1, got %d", s.MaxBattleSeconds))
	}
	if s.ArcadeStage < 1 {
		errs = append(errs, fmt.Sprintf("simulator.arcade_stage must be >= 1, got %d", s.ArcadeStage))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	// Environment variable overrides with BIRDCLASH_ prefix
	v.SetEnvPrefix("BIRDCLASH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	return LoadFromViper(v)
}

// Default returns the built-in configuration without reading any file.
//
// Postcondition: Returns a Config that passes Validate.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("config: default configuration failed to unmarshal: %v", err))
	}
	return cfg
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("combat.defense_k", 25.0)
	v.SetDefault("combat.block_reduction", 0.30)

	v.SetDefault("progression.base_xp", 100)
	v.SetDefault("progression.growth", 1.15)
	v.SetDefault("progression.max_level", 50)
	v.SetDefault("progression.max_prestige", 10)

	v.SetDefault("content.birds_dir", "")

	v.SetDefault("simulator.battles", 10)
	v.SetDefault("simulator.tick_ms", 1000)
	v.SetDefault("simulator.max_battle_seconds", 600)
	v.SetDefault("simulator.arcade_stage", 1)
	v.SetDefault("simulator.seed", 0)
}
