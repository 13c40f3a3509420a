package config

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/sethvargo/go-envconfig"
)

// Config represents the application configuration
type Config struct {
	Logging LoggingConfig `env:", prefix=LOG_"`
	Posts   PostsConfig   `env:", prefix=POSTS_"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `env:"LEVEL, default=info"`
	Format string `env:"FORMAT, default=text"`
	Output string `env:"OUTPUT, default=stderr"`
}

// PostsConfig holds the post compiler directories
type PostsConfig struct {
	Dir       string `env:"DIR, default=posts"`
	OutputDir string `env:"OUTPUT_DIR, default=compiled_posts"`
}

// Load loads configuration from environment variables using go-envconfig
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config

	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values that cannot be expressed as envconfig defaults
func (c *Config) Validate() error {
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q: must be text or json", c.Logging.Format)
	}

	if c.Posts.Dir == "" {
		return errors.New("posts directory cannot be empty")
	}
	if c.Posts.OutputDir == "" {
		return errors.New("posts output directory cannot be empty")
	}
	if filepath.Clean(c.Posts.Dir) == filepath.Clean(c.Posts.OutputDir) {
		return errors.New("posts output directory must differ from posts directory")
	}

	return nil
}
