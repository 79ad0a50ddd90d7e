// File: pkg/config/config.go
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"promptget/pkg/consolidate"
	"promptget/pkg/ignore"
)

// FileName is the optional per-project configuration file read from the root.
// It is a dotfile, so it never ends up in the consolidated output.
const FileName = ".prompt.yaml"

// Config holds the settings of a consolidation run.
type Config struct {
	Root         string   `yaml:"-"`             // Directory to consolidate; never read from the file.
	Output       string   `yaml:"output"`        // Output filename, written into Root.
	ExcludeDirs  []string `yaml:"exclude_dirs"`  // Extra directory names pruned at any depth.
	ExcludeFiles []string `yaml:"exclude_files"` // Extra file names skipped at any depth.
	Exclude      []string `yaml:"exclude"`       // Doublestar globs matched against root-relative paths.
	IgnoreFile   string   `yaml:"ignore_file"`   // Gitignore-style rules file inside Root.
}

// Default returns the built-in configuration for root.
func Default(root string) Config {
	return Config{
		Root:       root,
		Output:     consolidate.DefaultOutput,
		IgnoreFile: ignore.DefaultFile,
	}
}

// Load returns the defaults for root overlaid with root/.prompt.yaml when it exists.
func Load(root string) (Config, error) {
	cfg := Default(root)

	path := filepath.Join(root, FileName)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the settings that would otherwise fail late.
func (c Config) Validate() error {
	if c.Root == "" {
		return errors.New("root directory is required")
	}
	switch {
	case c.Output == "", c.Output == ".", c.Output == "..":
		return fmt.Errorf("invalid output filename %q", c.Output)
	case strings.ContainsAny(c.Output, `/\`):
		return fmt.Errorf("output filename %q must not contain a path separator", c.Output)
	}
	return nil
}

// Policy builds the exclusion policy described by c, loading the ignore file from Root.
func (c Config) Policy(logger *zap.Logger) (*consolidate.Policy, error) {
	rules, err := ignore.Load(os.DirFS(c.Root), c.IgnoreFile, c.Exclude, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load ignore rules: %w", err)
	}

	opts := consolidate.PolicyOptions{
		Output:       c.Output,
		ExcludeDirs:  c.ExcludeDirs,
		ExcludeFiles: c.ExcludeFiles,
	}
	if !rules.Empty() {
		opts.Matcher = rules
	}
	return consolidate.NewPolicy(opts), nil
}
