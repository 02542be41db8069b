// Package config loads tokdump.toml, which tunes the reference lexer and logging.
// It never affects how tokens are printed.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"

	"tokdump/internal/lexer"
)

// FileName is the config file looked up from the working directory upwards.
const FileName = "tokdump.toml"

type Config struct {
	Lexer LexerConfig `toml:"lexer"`
	Log   LogConfig   `toml:"log"`
}

type LexerConfig struct {
	LineComments  []string             `toml:"line_comments"`
	BlockComments []BlockCommentConfig `toml:"block_comments"`
	Operators     []string             `toml:"operators"`
	// ExtraOperators are appended to Operators; handy to extend the defaults.
	ExtraOperators []string `toml:"extra_operators"`
}

type BlockCommentConfig struct {
	Open   string `toml:"open"`
	Close  string `toml:"close"`
	Nested bool   `toml:"nested"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

// Default mirrors lexer.DefaultOptions; lexer reports are logged as warnings.
func Default() Config {
	opts := lexer.DefaultOptions()
	cfg := Config{
		Lexer: LexerConfig{
			LineComments: slices.Clone(opts.LineComments),
			Operators:    slices.Clone(opts.Operators),
		},
		Log: LogConfig{Level: "warn"},
	}
	for _, bc := range opts.BlockComments {
		cfg.Lexer.BlockComments = append(cfg.Lexer.BlockComments, BlockCommentConfig(bc))
	}
	return cfg
}

// Find walks from startDir up to the root of fs looking for FileName.
func Find(fs afero.Fs, startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := fs.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// Load decodes path. Keys present in the file replace the defaults, absent
// keys keep them; unknown keys are an error so typos don't go unnoticed.
func Load(fs afero.Fs, path string) (Config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	var file Config
	meta, err := toml.Decode(string(data), &file)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	cfg := Default()
	if meta.IsDefined("lexer", "line_comments") {
		cfg.Lexer.LineComments = file.Lexer.LineComments
	}
	if meta.IsDefined("lexer", "block_comments") {
		cfg.Lexer.BlockComments = file.Lexer.BlockComments
	}
	if meta.IsDefined("lexer", "operators") {
		cfg.Lexer.Operators = file.Lexer.Operators
	}
	cfg.Lexer.ExtraOperators = file.Lexer.ExtraOperators
	if meta.IsDefined("log", "level") {
		cfg.Log.Level = file.Log.Level
	}

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Resolve loads explicit if set, otherwise the nearest FileName above dir,
// otherwise Default(). The returned path is empty when no file was used.
func Resolve(fs afero.Fs, explicit, dir string) (Config, string, error) {
	path := explicit
	if path == "" {
		found, ok, err := Find(fs, dir)
		if err != nil {
			return Config{}, "", err
		}
		if !ok {
			return Default(), "", nil
		}
		path = found
	}
	cfg, err := Load(fs, path)
	if err != nil {
		return Config{}, "", err
	}
	return cfg, path, nil
}

func (c Config) validate() error {
	for i, bc := range c.Lexer.BlockComments {
		if bc.Open == "" || bc.Close == "" {
			return fmt.Errorf("lexer.block_comments[%d]: open and close must be non-empty", i)
		}
	}
	for _, p := range c.Lexer.LineComments {
		if p == "" {
			return errors.New("lexer.line_comments: empty prefix")
		}
	}
	return nil
}

// LexerOptions converts the lexer section into lexer.Options.
func (c Config) LexerOptions(r lexer.Reporter) lexer.Options {
	opts := lexer.Options{
		Reporter:     r,
		LineComments: slices.Clone(c.Lexer.LineComments),
		Operators:    slices.Concat(c.Lexer.Operators, c.Lexer.ExtraOperators),
	}
	for _, bc := range c.Lexer.BlockComments {
		opts.BlockComments = append(opts.BlockComments, lexer.BlockComment(bc))
	}
	return opts
}
