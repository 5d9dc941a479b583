// Package config provides Viper-based configuration loading for the maze tools.
package config

import (
	"errors"
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

// MazeConfig selects how the reference maze is assembled and printed.
type MazeConfig struct {
	// Family is the family name or alias to build with.
	Family string `mapstructure:"family"`
	// Shape is the construction abstraction: "factory" or "builder".
	Shape string `mapstructure:"shape"`
	// Format is the output format: "text" or "yaml".
	Format string `mapstructure:"format"`
	// Color is "auto", "always" or "never". Auto colors text output on a terminal.
	Color string `mapstructure:"color"`
}

// ScriptingConfig holds settings for Lua-scripted families.
type ScriptingConfig struct {
	// ScriptDir holds one subdirectory of *.lua files per scripted family.
	// Empty disables scripted families.
	ScriptDir string `mapstructure:"script_dir"`
	// InstructionLimit caps the Lua instructions a single hook call may run.
	// Zero selects the scripting package default.
	InstructionLimit int `mapstructure:"instruction_limit"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging   LoggingConfig   `mapstructure:"logging"`
	Maze      MazeConfig      `mapstructure:"maze"`
	Scripting ScriptingConfig `mapstructure:"scripting"`
}

// Validate checks all configuration invariants. Family names are not checked
// here; they are resolved against the registry at startup.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateMaze(c.Maze); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateScripting(c.Scripting); err != nil {
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

func validateMaze(m MazeConfig) error {
	var errs []string
	if m.Family == "" {
		errs = append(errs, "maze.family must not be empty")
	}
	validShapes := map[string]bool{"factory": true, "builder": true}
	if !validShapes[m.Shape] {
		errs = append(errs, fmt.Sprintf("maze.shape must be one of [factory, builder], got %q", m.Shape))
	}
	validFormats := map[string]bool{"text": true, "yaml": true}
	if !validFormats[m.Format] {
		errs = append(errs, fmt.Sprintf("maze.format must be one of [text, yaml], got %q", m.Format))
	}
	validColors := map[string]bool{"auto": true, "always": true, "never": true}
	if !validColors[m.Color] {
		errs = append(errs, fmt.Sprintf("maze.color must be one of [auto, always, never], got %q", m.Color))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateScripting(s ScriptingConfig) error {
	if s.InstructionLimit < 0 {
		return errors.New("scripting.instruction_limit must not be negative")
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := NewViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	return LoadFromViper(v)
}

// NewViper returns a Viper instance carrying the defaults and the MAZE_
// environment overrides, with no config file attached.
//
// Postcondition: Returns a non-nil Viper.
func NewViper() *viper.Viper {
	v := viper.New()

	// Environment variable overrides with MAZE_ prefix
	v.SetEnvPrefix("MAZE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	return v
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
	v.SetDefault("logging.format", "console")

	v.SetDefault("maze.family", "normal")
	v.SetDefault("maze.shape", "factory")
	v.SetDefault("maze.format", "text")
	v.SetDefault("maze.color", "auto")

	v.SetDefault("scripting.script_dir", "")
	v.SetDefault("scripting.instruction_limit", 0)
}
