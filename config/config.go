// Package config loads feed-build settings from a YAML file and merges
// them with command-line overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Feed holds the channel-level settings used when building an RSS feed.
type Feed struct {
	Title       string `yaml:"title"`
	Link        string `yaml:"link"`
	Description string `yaml:"description"`
	Language    string `yaml:"language"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Config is the on-disk configuration.
type Config struct {
	Feed     Feed   `yaml:"feed"`
	PostsDir string `yaml:"posts_dir"`
	Output   string `yaml:"output"`
	KeyName  string `yaml:"key_name"`
}

// DefaultPath returns the conventional config location, ~/.dsigo/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".dsigo", "config.yaml"), nil
}

// Default returns the built-in settings used when no file and no flags
// provide a value.
func Default() *Config {
	return &Config{
		Feed: Feed{
			Language: "en-US",
		},
		PostsDir: "posts",
		Output:   "rss.xml",
	}
}

// Load reads and decodes a config file. A missing file is not an error;
// the defaults are returned unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Merge overlays non-empty fields of other onto c and returns c. Flag
// values win over file values, which win over defaults.
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}
	if other.Feed.Title != "" {
		c.Feed.Title = other.Feed.Title
	}
	if other.Feed.Link != "" {
		c.Feed.Link = other.Feed.Link
	}
	if other.Feed.Description != "" {
		c.Feed.Description = other.Feed.Description
	}
	if other.Feed.Language != "" {
		c.Feed.Language = other.Feed.Language
	}
	if other.Feed.AuthorName != "" {
		c.Feed.AuthorName = other.Feed.AuthorName
	}
	if other.Feed.AuthorEmail != "" {
		c.Feed.AuthorEmail = other.Feed.AuthorEmail
	}
	if other.PostsDir != "" {
		c.PostsDir = other.PostsDir
	}
	if other.Output != "" {
		c.Output = other.Output
	}
	if other.KeyName != "" {
		c.KeyName = other.KeyName
	}
	return c
}

// Save writes the config back to disk, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
