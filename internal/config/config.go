package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pokeview/pokedex/internal/errors"
	"github.com/pokeview/pokedex/internal/fetch"
	"github.com/pokeview/pokedex/internal/pokeapi"
)

// Config is the file-backed configuration. Zero fields take defaults.
type Config struct {
	APIBase     string        `yaml:"api_base"`
	HTTPTimeout time.Duration `yaml:"http_timeout"`
	UserAgent   string        `yaml:"user_agent"`
	RandomMaxID int           `yaml:"random_max_id"`
}

// Default returns a config with every field set to its default
func Default() *Config {
	c := &Config{}
	_ = c.Validate()
	return c
}

// Load reads a YAML config file. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	b, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "parse config "+path)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate fills defaults and rejects negative values
func (c *Config) Validate() error {
	if c.HTTPTimeout < 0 {
		return errors.InvalidArgumentf("http_timeout must be positive, got %s", c.HTTPTimeout)
	}
	if c.RandomMaxID < 0 {
		return errors.InvalidArgumentf("random_max_id must be positive, got %d", c.RandomMaxID)
	}

	if c.APIBase == "" {
		c.APIBase = pokeapi.DefaultBaseURL
	}
	if c.HTTPTimeout == 0 {
		c.HTTPTimeout = pokeapi.DefaultHTTPTimeout
	}
	if c.UserAgent == "" {
		c.UserAgent = pokeapi.DefaultUserAgent
	}
	if c.RandomMaxID == 0 {
		c.RandomMaxID = fetch.MaxRandomID
	}
	return nil
}

// ClientConfig converts the file config into API client settings
func (c *Config) ClientConfig() *pokeapi.Config {
	return &pokeapi.Config{
		BaseURL:     c.APIBase,
		HTTPTimeout: c.HTTPTimeout,
		UserAgent:   c.UserAgent,
	}
}
