package softmaxgo

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	GeneratorUniform  = "uniform"
	GeneratorGaussian = "gaussian"
)

type Config struct {
	Seed        uint64          `yaml:"seed"`
	Temperature float64         `yaml:"temperature"`
	LogLevel    string          `yaml:"log_level"`
	Generator   GeneratorConfig `yaml:"generator"`
}

type GeneratorConfig struct {
	Kind   string  `yaml:"kind"`
	Count  int     `yaml:"count"`
	Min    float64 `yaml:"min"`
	Max    float64 `yaml:"max"`
	Mean   float64 `yaml:"mean"`
	StdDev float64 `yaml:"std_dev"`
}

func DefaultConfig() Config {
	u, g := DefaultUniform(), DefaultGaussian()
	return Config{
		Seed:        DefaultSeed,
		Temperature: DefaultTemperature,
		LogLevel:    "info",
		Generator: GeneratorConfig{
			Kind:   GeneratorUniform,
			Count:  DefaultCount,
			Min:    u.Min,
			Max:    u.Max,
			Mean:   g.Mean,
			StdDev: g.StdDev,
		},
	}
}

// LoadConfig reads a YAML config file. Fields missing from the file keep
// their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to open config %s: %w", path, err)
	}
	defer f.Close()
	return ParseConfig(f)
}

func ParseConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Generator.Kind = strings.ToLower(strings.TrimSpace(cfg.Generator.Kind))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the fields the generators reject. Temperature is
// deliberately left alone.
func (c Config) Validate() error {
	if c.Generator.Count < 0 {
		return fmt.Errorf("generator count %d: %w", c.Generator.Count, ErrInvalidArgument)
	}
	switch c.Generator.Kind {
	case GeneratorUniform, GeneratorGaussian:
		return nil
	default:
		return fmt.Errorf("unknown generator kind %q: %w", c.Generator.Kind, ErrInvalidArgument)
	}
}

// NewGenerator returns the strategy selected by Kind.
func (c GeneratorConfig) NewGenerator() (Generator, error) {
	switch c.Kind {
	case GeneratorUniform:
		return Uniform{Min: c.Min, Max: c.Max}, nil
	case GeneratorGaussian:
		return Gaussian{Mean: c.Mean, StdDev: c.StdDev}, nil
	default:
		return nil, fmt.Errorf("unknown generator kind %q: %w", c.Kind, ErrInvalidArgument)
	}
}
