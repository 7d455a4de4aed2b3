// SPDX-License-Identifier: MIT

// Package config loads pauliexp settings from flags, QPAULI_* environment
// variables and an optional config file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/qpauli/pauli"
)

// EnvPrefix is prepended to every environment variable, e.g. QPAULI_ALPHA.
const EnvPrefix = "QPAULI"

// Output formats.
const (
	FormatText = "text"
	FormatQASM = "qasm"
)

// Setting keys, shared by flags, environment and config files.
const (
	KeyConfig    = "config"
	KeyAlpha     = "alpha"
	KeyTolerance = "tolerance"
	KeyFormat    = "format"
	KeyTopology  = "topology"
	KeyLogLevel  = "log-level"
	KeySets      = "sets"
	KeyVerify    = "verify"
)

// Sentinel errors for configuration loading.
var (
	ErrConfigFile = errors.New("config: cannot read config file")
	ErrFormat     = errors.New("config: unknown output format")
	ErrTolerance  = errors.New("config: tolerance must be positive")
	ErrLogLevel   = errors.New("config: unknown log level")
)

var logLevels = []string{"debug", "info", "warn", "error", "fatal"}

// Config holds the resolved settings of one pauliexp run.
type Config struct {
	Alpha     float64 `mapstructure:"alpha"`
	Tolerance float64 `mapstructure:"tolerance"`
	Format    string  `mapstructure:"format"`
	Topology  string  `mapstructure:"topology"`
	LogLevel  string  `mapstructure:"log-level"`
	Sets      bool    `mapstructure:"sets"`
	Verify    bool    `mapstructure:"verify"`
}

// Default returns the settings used when nothing overrides them.
func Default() Config {
	return Config{
		Alpha:     1,
		Tolerance: pauli.Tolerance,
		Format:    FormatText,
		LogLevel:  "info",
	}
}

// RegisterFlags adds every setting to fs with its default value.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.StringP(KeyConfig, "c", "", "path to a config file (yaml, toml or json)")
	fs.Float64P(KeyAlpha, "a", d.Alpha, "evolution time: the circuit implements exp(-i·alpha·H)")
	fs.Float64(KeyTolerance, d.Tolerance, "amplitude tolerance used by --verify")
	fs.StringP(KeyFormat, "f", d.Format, "circuit output format: text or qasm")
	fs.StringP(KeyTopology, "t", d.Topology, `device layout, e.g. "grid:3x3", "directed:line:0,1,2" or "0-1,1-2"`)
	fs.String(KeyLogLevel, d.LogLevel, "log level: debug, info, warn, error")
	fs.Bool(KeySets, d.Sets, "print the commuting sets of the Hamiltonian")
	fs.Bool(KeyVerify, d.Verify, "check the circuit against the exact term-by-term evolution")
}

// Load resolves the configuration for fs, which must already be parsed.
//
// Steps:
//  1. Seed viper with Default().
//  2. Bind QPAULI_* variables and the flag set; only flags the user set
//     override the file and environment.
//  3. Read the --config file when given (ErrConfigFile on failure).
//  4. Decode and validate.
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()

	// 1) Defaults
	d := Default()
	v.SetDefault(KeyAlpha, d.Alpha)
	v.SetDefault(KeyTolerance, d.Tolerance)
	v.SetDefault(KeyFormat, d.Format)
	v.SetDefault(KeyTopology, d.Topology)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeySets, d.Sets)
	v.SetDefault(KeyVerify, d.Verify)

	// 2) Environment and flags
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return Config{}, err
	}

	// 3) Config file
	if path := v.GetString(KeyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("%w: %s: %v", ErrConfigFile, path, err)
		}
	}

	// 4) Decode
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, err
	}
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))

	return c, c.Validate()
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Format != FormatText && c.Format != FormatQASM {
		return fmt.Errorf("%w: %q", ErrFormat, c.Format)
	}
	if !(c.Tolerance > 0) {
		return fmt.Errorf("%w: got %v", ErrTolerance, c.Tolerance)
	}
	if !slices.Contains(logLevels, c.LogLevel) {
		return fmt.Errorf("%w: %q", ErrLogLevel, c.LogLevel)
	}

	return nil
}
