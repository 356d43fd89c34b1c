package facefilter

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds the settings for a Filter and a Batch, usually decoded
// from a TOML file:
//
//	kernel_width = 3.5
//	workers = 8
//
// Zero values select the defaults.
type Config struct {
	// KernelWidth is the Gaussian kernel width. Zero means DefaultKernelWidth.
	KernelWidth float64 `toml:"kernel_width"`

	// Workers is the number of batch workers. Zero means GOMAXPROCS.
	Workers int `toml:"workers"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		KernelWidth: DefaultKernelWidth,
		Workers:     runtime.GOMAXPROCS(0),
	}
}

// ParseConfig decodes a TOML document into a Config.
// Unknown keys are rejected.
func ParseConfig(data string) (Config, error) {
	var cfg Config
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return finishConfig(cfg, md)
}

// LoadConfig decodes the TOML file at path into a Config.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	return finishConfig(cfg, md)
}

func finishConfig(cfg Config, md toml.MetaData) (Config, error) {
	if undec := md.Undecoded(); len(undec) > 0 {
		keys := make([]string, len(undec))
		for i, k := range undec {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: unknown keys %s", ErrInvalidConfig, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	if cfg.KernelWidth == 0 {
		cfg.KernelWidth = DefaultKernelWidth
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	return cfg, nil
}

// Validate reports whether the configuration values are usable.
func (c Config) Validate() error {
	if c.KernelWidth < 0 {
		return fmt.Errorf("%w: kernel_width %v is negative", ErrInvalidConfig, c.KernelWidth)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers %d is negative", ErrInvalidConfig, c.Workers)
	}
	return nil
}

// NewFilter creates a Filter with the configured kernel width.
func (c Config) NewFilter() *Filter {
	if c.KernelWidth == 0 {
		return NewFilter()
	}
	return NewFilter(WithKernelWidth(c.KernelWidth))
}

// NewBatch creates a Batch with the configured filter and worker count.
func (c Config) NewBatch() *Batch {
	return NewBatch(c.NewFilter(), c.Workers)
}
