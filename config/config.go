// Package config holds the settings of an interpreter session.
// The zero value is ready to use.
package config

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	defaultPrompt = "> "
	historyFile   = ".untyped_history"
)

type Config struct {
	prompt    string
	allParens bool
	trace     bool
	history   string
	output    io.Writer
	errOutput io.Writer
	logger    *slog.Logger
}

// file is the YAML form of a Config.
type file struct {
	Prompt    string `yaml:"prompt"`
	AllParens bool   `yaml:"all_parens"`
	Trace     bool   `yaml:"trace"`
	History   string `yaml:"history"`
}

// Load reads a YAML configuration file. Keys that are absent keep their
// defaults; unknown keys are an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes a YAML configuration.
func Parse(data []byte) (*Config, error) {
	var f file
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("config: %w", err)
	}
	c := new(Config)
	c.SetPrompt(f.Prompt)
	c.SetAllParens(f.AllParens)
	c.SetTrace(f.Trace)
	c.SetHistory(f.History)
	return c, nil
}

func (c *Config) Prompt() string {
	if c.prompt == "" {
		return defaultPrompt
	}
	return c.prompt
}

func (c *Config) SetPrompt(prompt string) {
	c.prompt = prompt
}

// AllParens reports whether printed applications parenthesize every operand.
func (c *Config) AllParens() bool {
	return c.allParens
}

func (c *Config) SetAllParens(b bool) {
	c.allParens = b
}

// Trace reports whether every reduction pass is logged.
func (c *Config) Trace() bool {
	return c.trace
}

func (c *Config) SetTrace(b bool) {
	c.trace = b
}

// History returns the REPL history file. It is empty if there is no home
// directory to put it in.
func (c *Config) History() string {
	if c.history != "" {
		return c.history
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, historyFile)
}

func (c *Config) SetHistory(path string) {
	c.history = path
}

func (c *Config) Output() io.Writer {
	if c.output == nil {
		return os.Stdout
	}
	return c.output
}

func (c *Config) SetOutput(w io.Writer) {
	c.output = w
}

func (c *Config) ErrOutput() io.Writer {
	if c.errOutput == nil {
		return os.Stderr
	}
	return c.errOutput
}

func (c *Config) SetErrOutput(w io.Writer) {
	c.errOutput = w
}

func (c *Config) Logger() *slog.Logger {
	if c.logger == nil {
		return slog.Default()
	}
	return c.logger
}

func (c *Config) SetLogger(l *slog.Logger) {
	c.logger = l
}
