// Package config loads citygraph settings from a YAML file, a .env file and
// the environment, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/katalvlaran/citygraph/prim_kruskal"
	log "go.arcalot.io/log/v2"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultFile is read when no --config flag is given, if it exists.
	DefaultFile = "citygraph.yml"

	// DefaultDataFile is the data file used when none is configured.
	DefaultDataFile = "distances.csv"

	// EnvFile is the dotenv file loaded by LoadEnvFile.
	EnvFile = ".env"
)

// Environment variables overriding file settings.
const (
	EnvData     = "CITYGRAPH_DATA"
	EnvMethod   = "CITYGRAPH_METHOD"
	EnvRoot     = "CITYGRAPH_ROOT"
	EnvLogLevel = "CITYGRAPH_LOG_LEVEL"
)

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("config: invalid value")

// Config holds the settings shared by every command.
type Config struct {
	DataFile  string `yaml:"data_file,omitempty"`
	MSTMethod string `yaml:"mst_method,omitempty"`
	Root      string `yaml:"root,omitempty"`
	LogLevel  string `yaml:"log_level,omitempty"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		DataFile:  DefaultDataFile,
		MSTMethod: prim_kruskal.MethodPrim,
		LogLevel:  string(log.LevelInfo),
	}
}

// Load reads path over the defaults. A missing file is not an error and
// yields Default(); keys absent from the file keep their default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// LoadEnvFile exports the variables of a dotenv file into the process
// environment. Variables that are already set win. A missing file is
// ignored.
func LoadEnvFile(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}

	return nil
}

// ApplyEnv overrides fields with non-empty CITYGRAPH_* variables.
func (c *Config) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvData)); v != "" {
		c.DataFile = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvMethod)); v != "" {
		c.MSTMethod = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvRoot)); v != "" {
		c.Root = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.LogLevel = strings.ToLower(v)
	}
}

// Validate checks the MST method and log level.
func (c Config) Validate() error {
	if c.DataFile == "" {
		return fmt.Errorf("%w: data_file is empty", ErrInvalid)
	}
	if !prim_kruskal.ValidMethod(c.MSTMethod) {
		return fmt.Errorf("%w: mst_method %q (want %s or %s)",
			ErrInvalid, c.MSTMethod, prim_kruskal.MethodPrim, prim_kruskal.MethodKruskal)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}

// Level returns the configured log level, falling back to info.
func (c Config) Level() log.Level {
	lvl, err := ParseLevel(c.LogLevel)
	if err != nil {
		return log.LevelInfo
	}

	return lvl
}

// ParseLevel maps a level name to a log.Level. "warn" is accepted as an
// alias of "warning".
func ParseLevel(s string) (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return log.LevelDebug, nil
	case "info", "":
		return log.LevelInfo, nil
	case "warning", "warn":
		return log.LevelWarning, nil
	case "error":
		return log.LevelError, nil
	default:
		return log.LevelInfo, fmt.Errorf("%w: log_level %q", ErrInvalid, s)
	}
}
