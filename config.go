package sqlin

import (
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"gopkg.in/src-d/go-errors.v1"
	"gopkg.in/yaml.v2"

	"gopkg.in/src-d/go-sqlin.v0/sql/expression/incode"
)

const (
	switchThresholdKey = "SQLIN_SWITCH_THRESHOLD"
	denseTableLimitKey = "SQLIN_DENSE_TABLE_LIMIT"
)

var (
	// ErrInvalidConfig is returned when the configuration can't be decoded.
	ErrInvalidConfig = errors.NewKind("invalid configuration: %s")

	// ErrNegativeOption is returned when a size option is negative.
	ErrNegativeOption = errors.NewKind("%s can't be negative, got %d")
)

// Config of the engine.
type Config struct {
	// SwitchThreshold is the largest IN list compiled to a switch. Larger
	// lists use a set. Zero means the default.
	SwitchThreshold int `yaml:"switch_threshold"`
	// DenseTableLimit is the largest key span compiled to a dense table.
	// Zero means the default.
	DenseTableLimit int `yaml:"dense_table_limit"`
	// Debug enables the debug log of the analyzer.
	Debug bool `yaml:"debug"`
}

// DefaultConfig returns the configuration with the default options.
func DefaultConfig() *Config {
	opts := incode.DefaultOptions()
	return &Config{
		SwitchThreshold: opts.SwitchThreshold,
		DenseTableLimit: opts.DenseTableLimit,
	}
}

// LoadConfig reads the YAML configuration at the given path and applies the
// environment overrides.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadConfig(f)
}

// ReadConfig decodes a YAML configuration and applies the environment
// overrides. Missing keys keep their default value.
func ReadConfig(r io.Reader) (*Config, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, ErrInvalidConfig.Wrap(err, err.Error())
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() {
	if n, ok := intFromEnv(switchThresholdKey); ok {
		c.SwitchThreshold = n
	}

	if n, ok := intFromEnv(denseTableLimitKey); ok {
		c.DenseTableLimit = n
	}
}

func intFromEnv(key string) (int, bool) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return 0, false
	}

	n, err := cast.ToIntE(strings.TrimSpace(v))
	if err != nil {
		logrus.Warnf("invalid value %q given to %s environment variable", v, key)
		return 0, false
	}

	return n, true
}

// Validate checks the options are in range.
func (c *Config) Validate() error {
	if c.SwitchThreshold < 0 {
		return ErrNegativeOption.New("switch_threshold", c.SwitchThreshold)
	}

	if c.DenseTableLimit < 0 {
		return ErrNegativeOption.New("dense_table_limit", c.DenseTableLimit)
	}

	return nil
}

// Options returns the compilation options of the configuration.
func (c *Config) Options() incode.Options {
	return incode.Options{
		SwitchThreshold: c.SwitchThreshold,
		DenseTableLimit: c.DenseTableLimit,
	}
}
