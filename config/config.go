// Package config defines the TOML configuration read by the euclid CLI.
package config

import (
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"go.viam.com/euclid/fit"
	"go.viam.com/euclid/fit/gonumsvd"
	"go.viam.com/euclid/logging"
)

// SolverGonum selects the gonum SVD solver.
const SolverGonum = "gonum"

// DefaultPrecision is the number of significant digits printed when none is configured.
const DefaultPrecision = 6

// maxPrecision is the number of significant digits that round trip a float64.
const maxPrecision = 17

// Config is the top level configuration.
type Config struct {
	Log    LogConfig    `toml:"log"`
	Solver SolverConfig `toml:"solver"`
	Output OutputConfig `toml:"output"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `toml:"level"`
}

// SolverConfig selects the decomposition backend used for fitting.
type SolverConfig struct {
	Kind string `toml:"kind"`
}

// OutputConfig controls how results are printed. Precision is the number of significant digits;
// 0 prints the shortest representation that round trips.
type OutputConfig struct {
	Precision int `toml:"precision"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Log:    LogConfig{Level: "info"},
		Solver: SolverConfig{Kind: SolverGonum},
		Output: OutputConfig{Precision: DefaultPrecision},
	}
}

// Read decodes the file at path over the defaults and validates the result.
func Read(path string) (*Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read config file %q", path)
	}
	return finish(cfg, meta)
}

// Parse decodes TOML text over the defaults and validates the result.
func Parse(data string) (*Config, error) {
	cfg := Default()
	meta, err := toml.Decode(data, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "cannot parse config")
	}
	return finish(cfg, meta)
}

func finish(cfg *Config, meta toml.MetaData) (*Config, error) {
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		sort.Strings(keys)
		return nil, errors.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(""); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate ensures every section is well formed. path prefixes field names in errors.
func (c *Config) Validate(path string) error {
	if err := c.Log.Validate(join(path, "log")); err != nil {
		return err
	}
	if err := c.Solver.Validate(join(path, "solver")); err != nil {
		return err
	}
	return c.Output.Validate(join(path, "output"))
}

// Validate ensures the level names a known log level.
func (c *LogConfig) Validate(path string) error {
	if _, err := logging.LevelFromString(c.Level); err != nil {
		return newFieldError(path, "level", err)
	}
	return nil
}

// LogLevel returns the configured level, or INFO when it is unset.
func (c *LogConfig) LogLevel() logging.Level {
	level, err := logging.LevelFromString(c.Level)
	if err != nil {
		return logging.INFO
	}
	return level
}

// Validate ensures the solver kind is known.
func (c *SolverConfig) Validate(path string) error {
	switch c.Kind {
	case SolverGonum:
		return nil
	case "":
		return newFieldError(path, "kind", errors.New("field is required"))
	}
	return newFieldError(path, "kind", errors.Errorf("unknown solver %q", c.Kind))
}

// Build constructs the configured solver.
func (c *SolverConfig) Build(logger logging.Logger) (fit.Solver, error) {
	if err := c.Validate("solver"); err != nil {
		return nil, err
	}
	return gonumsvd.NewSolver(logger.Sublogger(c.Kind)), nil
}

// Validate ensures the precision can be honored.
func (c *OutputConfig) Validate(path string) error {
	if c.Precision < 0 || c.Precision > maxPrecision {
		return newFieldError(path, "precision", errors.Errorf("must be between 0 and %d but got %d", maxPrecision, c.Precision))
	}
	return nil
}

func join(path, field string) string {
	if path == "" {
		return field
	}
	return path + "." + field
}

func newFieldError(path, field string, err error) error {
	return errors.Wrapf(err, "error validating %q", join(path, field))
}
