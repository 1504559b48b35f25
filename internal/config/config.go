// Package config provides configuration for chesscodec.
package config

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/lgbarn/chesscodec-go/internal/errors"
	"github.com/lgbarn/chesscodec-go/internal/hashing"
)

// Notation selects how decoded moves are printed.
type Notation string

const (
	SAN Notation = "san" // Short algebraic (Nf3)
	LAN Notation = "lan" // Long coordinate (Ng1-f3)
)

// ParseNotation maps a notation name (any case) to its value.
func ParseNotation(s string) (Notation, error) {
	switch n := Notation(strings.ToLower(strings.TrimSpace(s))); n {
	case SAN, LAN:
		return n, nil
	}
	return "", errors.Wrapf(errors.ErrInvalidConfig, "unknown notation %q", s)
}

// Config holds all program configuration.
type Config struct {
	// Archive
	DataDir string `yaml:"data_dir"`

	// Batch hashing
	Workers           int `yaml:"workers"`
	ReadLimit         int `yaml:"read_limit"`
	DuplicateCapacity int `yaml:"duplicate_capacity"`

	// Output
	Notation  Notation `yaml:"notation"`
	Verbosity int      `yaml:"verbosity"` // 0=nothing, 1=summary, 2=running commentary

	// Output streams
	OutputFile io.Writer `yaml:"-"`
	LogFile    io.Writer `yaml:"-"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		DataDir:    "./data",
		Workers:    runtime.NumCPU(),
		ReadLimit:  hashing.MaxReadLimit,
		Notation:   SAN,
		Verbosity:  1,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks that every field holds a usable value.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return errors.Wrap(errors.ErrInvalidConfig, "data_dir must not be empty")
	}
	if c.Workers < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "workers must be at least 1, got %d", c.Workers)
	}
	if c.ReadLimit < 0 || c.ReadLimit > hashing.MaxReadLimit {
		return errors.Wrapf(errors.ErrInvalidConfig, "read_limit must be in [0, %d], got %d", hashing.MaxReadLimit, c.ReadLimit)
	}
	if c.DuplicateCapacity < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "duplicate_capacity must not be negative, got %d", c.DuplicateCapacity)
	}
	if _, err := ParseNotation(string(c.Notation)); err != nil {
		return err
	}
	if c.Verbosity < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "verbosity must not be negative, got %d", c.Verbosity)
	}
	return nil
}

// Logf writes a diagnostic line to LogFile when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}
