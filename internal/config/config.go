// Package config loads the optional .bindery.yml file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is looked up in the working directory when no path is given.
const DefaultFile = ".bindery.yml"

// DefaultExcludes are always part of the exclusion set.
var DefaultExcludes = []string{".git"}

// Config mirrors the keys accepted in the configuration file.
type Config struct {
	// Exclude lists extra exclusion globs, added to DefaultExcludes.
	Exclude []string `yaml:"exclude"`

	// IncludeHidden keeps dot files and dot directories.
	IncludeHidden bool `yaml:"include_hidden"`

	// StripComments removes comments from every file.
	StripComments bool `yaml:"strip_comments"`

	// Gitignore honours .gitignore rule files found under the roots.
	Gitignore bool `yaml:"gitignore"`

	// Jobs is the number of files read and stripped in parallel (0 = NumCPU).
	Jobs int `yaml:"jobs"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Gitignore: true,
		LogLevel:  "info",
	}
}

// Load reads path and merges it onto Default. A missing file is not an
// error; a malformed one is.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	// Pointers tell an explicit false apart from an absent key.
	var file struct {
		Exclude       []string `yaml:"exclude"`
		IncludeHidden *bool    `yaml:"include_hidden"`
		StripComments *bool    `yaml:"strip_comments"`
		Gitignore     *bool    `yaml:"gitignore"`
		Jobs          int      `yaml:"jobs"`
		LogLevel      string   `yaml:"log_level"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	cfg.Exclude = append(cfg.Exclude, file.Exclude...)
	if file.IncludeHidden != nil {
		cfg.IncludeHidden = *file.IncludeHidden
	}
	if file.StripComments != nil {
		cfg.StripComments = *file.StripComments
	}
	if file.Gitignore != nil {
		cfg.Gitignore = *file.Gitignore
	}
	if file.Jobs < 0 {
		return nil, fmt.Errorf("invalid jobs value %d in %s", file.Jobs, path)
	}
	if file.Jobs != 0 {
		cfg.Jobs = file.Jobs
	}
	if file.LogLevel != "" {
		cfg.LogLevel = file.LogLevel
	}
	return cfg, nil
}

// Excludes returns DefaultExcludes followed by the configured patterns,
// without duplicates.
func (c *Config) Excludes() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range append(append([]string{}, DefaultExcludes...), c.Exclude...) {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}
