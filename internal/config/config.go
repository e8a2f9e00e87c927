// Package config loads lexiscope.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"lexiscope/internal/phase"
)

// FileName is the name looked up from the working directory upwards.
const FileName = "lexiscope.toml"

var (
	formats  = []string{"pretty", "short", "json", "cbor", "sarif"}
	switches = []string{"auto", "on", "off"}
)

type Config struct {
	Analysis AnalysisConfig `toml:"analysis"`
	Output   OutputConfig   `toml:"output"`
	Cache    CacheConfig    `toml:"cache"`
	Batch    BatchConfig    `toml:"batch"`

	// Path is the file the values came from; empty for defaults.
	Path string `toml:"-"`
}

type AnalysisConfig struct {
	SymmetricDelimiters bool `toml:"symmetric_delimiters"`
	KeywordHints        bool `toml:"keyword_hints"`
}

type OutputConfig struct {
	Format         string `toml:"format"`
	Color          string `toml:"color"`
	Progress       string `toml:"progress"`
	MaxDiagnostics int    `toml:"max_diagnostics"`
}

type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

type BatchConfig struct {
	Jobs       int      `toml:"jobs"`
	Extensions []string `toml:"extensions"`
}

// Default returns the configuration used when no file is found.
func Default() Config {
	return Config{
		Output: OutputConfig{Format: "pretty", Color: "auto", Progress: "auto"},
	}
}

// PhaseOptions maps the analysis settings onto phase options.
func (c *Config) PhaseOptions() phase.Options {
	return phase.Options{
		SymmetricDelimiters: c.Analysis.SymmetricDelimiters,
		KeywordHints:        c.Analysis.KeywordHints,
		MaxDiagnostics:      c.Output.MaxDiagnostics,
	}
}

// Find walks up from startDir looking for FileName.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load decodes path on top of Default. Unknown keys are an error so typos
// do not silently fall back to defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if meta.IsDefined("output", "format") && strings.TrimSpace(cfg.Output.Format) == "" {
		return Config{}, fmt.Errorf("%s: [output].format is empty", path)
	}
	if meta.IsDefined("cache", "dir") && strings.TrimSpace(cfg.Cache.Dir) != "" && !filepath.IsAbs(cfg.Cache.Dir) {
		// относительный путь считается от каталога конфига
		cfg.Cache.Dir = filepath.Join(filepath.Dir(path), cfg.Cache.Dir)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

// Discover loads the nearest config above startDir, or returns Default.
func Discover(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks enumerated values and ranges.
func (c *Config) Validate() error {
	if !slices.Contains(formats, c.Output.Format) {
		return fmt.Errorf("invalid output format %q (expected: %s)", c.Output.Format, strings.Join(formats, "|"))
	}
	if !slices.Contains(switches, c.Output.Color) {
		return fmt.Errorf("invalid color mode %q (expected: %s)", c.Output.Color, strings.Join(switches, "|"))
	}
	if !slices.Contains(switches, c.Output.Progress) {
		return fmt.Errorf("invalid progress mode %q (expected: %s)", c.Output.Progress, strings.Join(switches, "|"))
	}
	if c.Output.MaxDiagnostics < 0 {
		return fmt.Errorf("max_diagnostics must be >= 0, got %d", c.Output.MaxDiagnostics)
	}
	if c.Batch.Jobs < 0 {
		return fmt.Errorf("jobs must be >= 0, got %d", c.Batch.Jobs)
	}
	return nil
}
