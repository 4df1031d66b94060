package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"github.com/weaveworks/beerctl/pkg/client"
)

const (
	// EnvBaseURL overrides the catalog service base url.
	EnvBaseURL = "BEERCTL_BASE_URL"
	// EnvTimeout overrides the request timeout, e.g. 10s.
	EnvTimeout = "BEERCTL_TIMEOUT"
	// EnvRateLimit overrides the requests per second limit.
	EnvRateLimit = "BEERCTL_RATE_LIMIT"

	// DefaultFileName is looked up in the user's home directory.
	DefaultFileName = ".beerctl.yaml"
)

// Config holds the settings used to reach the catalog service.
type Config struct {
	BaseURL   string        `yaml:"baseURL"`
	Timeout   time.Duration `yaml:"timeout"`
	RateLimit float64       `yaml:"rateLimit"`
	RateBurst int           `yaml:"rateBurst"`
	// Output is the default output format of the read commands.
	Output string `yaml:"output"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		BaseURL:   client.DefaultBaseURL,
		RateBurst: 1,
		Output:    "table",
	}
}

// DefaultPath returns ~/.beerctl.yaml, or an empty string if the home
// directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, DefaultFileName)
}

// Options controls where Load looks for settings.
type Options struct {
	// Path of the yaml config file. A missing file is ignored.
	Path string
	// EnvFile is a dotenv file read before the process environment. A missing
	// file is ignored.
	EnvFile string
	// LookupEnv defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)
}

// Load layers defaults, the yaml file, the dotenv file and the process
// environment, in that order.
func Load(opts Options) (Config, error) {
	cfg := Default()
	if opts.Path != "" {
		if err := cfg.loadFile(opts.Path); err != nil {
			return Config{}, err
		}
	}

	dotenv := map[string]string{}
	if opts.EnvFile != "" {
		var err error
		dotenv, err = godotenv.Read(opts.EnvFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to read env file %q: %w", opts.EnvFile, err)
		}
	}
	lookup := opts.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	getenv := func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
	if err := cfg.applyEnv(getenv); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config file %q: %w", path, err)
	}
	if err := yaml.UnmarshalStrict(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %q: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv(getenv func(string) (string, bool)) error {
	if v, ok := getenv(EnvBaseURL); ok && v != "" {
		c.BaseURL = v
	}
	if v, ok := getenv(EnvTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvTimeout, v, err)
		}
		c.Timeout = d
	}
	if v, ok := getenv(EnvRateLimit); ok && v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvRateLimit, v, err)
		}
		c.RateLimit = f
	}
	return nil
}

// Validate checks the values that cannot be caught by the client itself.
func (c Config) Validate() error {
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.Timeout)
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("rate limit must not be negative, got %v", c.RateLimit)
	}
	switch c.Output {
	case "table", "json", "yaml":
	default:
		return fmt.Errorf("unsupported output format %q", c.Output)
	}
	return nil
}

// ServiceOptions converts the config into client options.
func (c Config) ServiceOptions() client.ServiceOptions {
	return client.ServiceOptions{
		BaseURL:   c.BaseURL,
		Timeout:   c.Timeout,
		RateLimit: c.RateLimit,
		RateBurst: c.RateBurst,
	}
}
