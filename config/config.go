//-----------------------------------------------------------------------------
// Copyright (c) 2024-present Detlef Stern
//
// This file is part of Htmlmin.
//
// Htmlmin is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package config provides the configuration of a conversion, read from a
// configuration file and overridden by command line flags.
package config

import (
	"errors"
	"io/fs"
	"os"
	"sort"
	"strings"

	"zettelstore.de/htmlmin/input"
	"zettelstore.de/htmlmin/logger"
	"zettelstore.de/htmlmin/parser"
	"zettelstore.de/htmlmin/writer"
)

// DefaultFile is the name of the configuration file that is read, if no
// other file is given.
const DefaultFile = ".hmcfg"

// Predefined keys.
const (
	KeyTarget           = "target"
	KeySyntax           = "syntax"
	KeyKeepStructure    = "keep-structure"
	KeyKeepFormatting   = "keep-formatting"
	KeyKeepHTMLEscape   = "keep-html-escape"
	KeyKeepComments     = "keep-comments"
	KeyNormalizeUnicode = "normalize-unicode"
	KeyLogLevel         = "log-level"
)

// Default values.
const (
	DefaultSyntax   = "html"
	DefaultLogLevel = logger.InfoLevel
)

// Config stores configuration values by their key.
type Config struct {
	pairs map[string]string
}

// New creates an empty configuration.
func New() *Config { return &Config{pairs: make(map[string]string)} }

// Parse reads a configuration from "key: value" lines. Keys are case
// insensitive. Lines starting with '#' or '%' are comments. An indented line
// continues the value of the previous line. A later value for the same key
// overwrites an earlier one.
func Parse(src []byte) *Config {
	cfg := New()
	inp := input.NewInput(src)
	for {
		inp.SkipSpace()
		switch inp.Ch {
		case input.EOS:
			return cfg
		case '\n', '\r':
			inp.EatEOL()
			continue
		case '#', '%':
			inp.SkipToEOL()
			inp.EatEOL()
			continue
		}
		parsePair(cfg, inp)
	}
}

func parsePair(cfg *Config, inp *input.Input) {
	key := inp.ScanWhile(isKey)
	inp.SkipSpace()
	if !inp.Accept(":") && key == "" {
		// Not a key: skip the line to guarantee progress.
		inp.SkipToEOL()
		inp.EatEOL()
		return
	}
	var val strings.Builder
	for {
		inp.SkipSpace()
		val.WriteString(inp.ScanToEOL())
		inp.EatEOL()
		if !input.IsSpace(inp.Ch) {
			break
		}
		val.WriteByte(' ')
	}
	if key != "" {
		cfg.Set(key, strings.TrimSpace(val.String()))
	}
}

func isKey(ch rune) bool {
	return ('a' <= ch && ch <= 'z') ||
		('0' <= ch && ch <= '9') ||
		ch == '-' ||
		('A' <= ch && ch <= 'Z')
}

// ReadFile reads the configuration from the given file. A missing file
// results in an empty configuration.
func ReadFile(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return New(), nil
		}
		return nil, err
	}
	return Parse(src), nil
}

// Set stores the value under the given key.
func (cfg *Config) Set(key, value string) {
	cfg.pairs[strings.ToLower(key)] = value
}

// Get retrieves the value of the given key and reports whether it was set.
func (cfg *Config) Get(key string) (string, bool) {
	if cfg == nil {
		return "", false
	}
	val, ok := cfg.pairs[strings.ToLower(key)]
	return val, ok
}

// GetDefault retrieves the value of the key, or the default value.
func (cfg *Config) GetDefault(key, def string) string {
	if val, ok := cfg.Get(key); ok && val != "" {
		return val
	}
	return def
}

// BoolValue returns the boolean value of the given string. Values starting
// with '0', 'f', or 'n' are false, every other value is true.
func BoolValue(value string) bool {
	if len(value) > 0 {
		switch value[0] {
		case '0', 'f', 'F', 'n', 'N':
			return false
		}
	}
	return true
}

// GetBool returns the boolean value of the given key. Absent keys are false.
func (cfg *Config) GetBool(key string) bool {
	if val, ok := cfg.Get(key); ok {
		return BoolValue(val)
	}
	return false
}

// Keys returns all keys in sorted order.
func (cfg *Config) Keys() []string {
	if cfg == nil {
		return nil
	}
	result := make([]string, 0, len(cfg.pairs))
	for k := range cfg.pairs {
		result = append(result, k)
	}
	sort.Strings(result)
	return result
}

// Target returns the name of the writer to use.
func (cfg *Config) Target() string { return cfg.GetDefault(KeyTarget, writer.DefaultName()) }

// Syntax returns the name of the parser to use.
func (cfg *Config) Syntax() string { return cfg.GetDefault(KeySyntax, DefaultSyntax) }

// Environment returns the writer environment.
func (cfg *Config) Environment() *writer.Environment {
	return &writer.Environment{
		KeepStructure:  cfg.GetBool(KeyKeepStructure),
		KeepFormatting: cfg.GetBool(KeyKeepFormatting),
		KeepHTMLEscape: cfg.GetBool(KeyKeepHTMLEscape),
		KeepComments:   cfg.GetBool(KeyKeepComments),
	}
}

// ParserOptions returns the options for parsing.
func (cfg *Config) ParserOptions() *parser.Options {
	return &parser.Options{NormalizeUnicode: cfg.GetBool(KeyNormalizeUnicode)}
}

// LogLevel returns the configured log level.
func (cfg *Config) LogLevel() logger.Level {
	if val, ok := cfg.Get(KeyLogLevel); ok {
		if lvl := logger.ParseLevel(val); lvl.IsValid() {
			return lvl
		}
	}
	return DefaultLogLevel
}
