// Package config loads exprlex.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the config file looked up from the working directory upwards.
const FileName = "exprlex.toml"

// Config mirrors exprlex.toml. Zero values are replaced by Default.
type Config struct {
	Output OutputConfig `toml:"output"`
	Lexer  LexerConfig  `toml:"lexer"`
	Batch  BatchConfig  `toml:"batch"`
}

type OutputConfig struct {
	Format string `toml:"format"` // pretty|json|msgpack
	Color  string `toml:"color"`  // auto|on|off
}

type LexerConfig struct {
	NFC      bool `toml:"nfc"`
	MaxInput int  `toml:"max_input"` // bytes, 0 = unlimited
}

type BatchConfig struct {
	Jobs int    `toml:"jobs"` // 0 = GOMAXPROCS
	UI   string `toml:"ui"`   // auto|on|off
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Output: OutputConfig{Format: "pretty", Color: "auto"},
		Lexer:  LexerConfig{MaxInput: 1 << 20},
		Batch:  BatchConfig{UI: "auto"},
	}
}

// Find walks from startDir to the filesystem root looking for exprlex.toml.
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

// Load decodes path over Default. Keys the schema does not know are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Resolve loads explicit when set, otherwise the nearest exprlex.toml above
// startDir, otherwise Default. The returned path is "" when no file was used.
func Resolve(explicit, startDir string) (Config, string, error) {
	if explicit != "" {
		cfg, err := Load(explicit)
		return cfg, explicit, err
	}
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, "", err
	}
	if !ok {
		return Default(), "", nil
	}
	cfg, err := Load(path)
	return cfg, path, err
}

// Validate checks enumerated values and limits.
func (c Config) Validate() error {
	if !oneOf(c.Output.Format, "pretty", "json", "msgpack") {
		return fmt.Errorf("[output].format: invalid value %q (expected pretty|json|msgpack)", c.Output.Format)
	}
	if !oneOf(c.Output.Color, "auto", "on", "off") {
		return fmt.Errorf("[output].color: invalid value %q (expected auto|on|off)", c.Output.Color)
	}
	if !oneOf(c.Batch.UI, "auto", "on", "off") {
		return fmt.Errorf("[batch].ui: invalid value %q (expected auto|on|off)", c.Batch.UI)
	}
	if c.Lexer.MaxInput < 0 {
		return fmt.Errorf("[lexer].max_input: must not be negative, got %d", c.Lexer.MaxInput)
	}
	if c.Batch.Jobs < 0 {
		return fmt.Errorf("[batch].jobs: must not be negative, got %d", c.Batch.Jobs)
	}
	return nil
}

func oneOf(v string, allowed ...string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
