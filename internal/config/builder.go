package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// NewConfigBuilderFrom starts from an existing Config, e.g. one read by
// LoadConfig, so flags can be layered over file values.
func NewConfigBuilderFrom(cfg *Config) *ConfigBuilder {
	return &ConfigBuilder{cfg: cfg}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithDataDir sets the archive directory.
func (b *ConfigBuilder) WithDataDir(dir string) *ConfigBuilder {
	b.cfg.DataDir = dir
	return b
}

// WithWorkers sets the number of hashing workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithReadLimit sets the largest content the hasher buffers.
func (b *ConfigBuilder) WithReadLimit(n int) *ConfigBuilder {
	b.cfg.ReadLimit = n
	return b
}

// WithNotation sets the move notation.
func (b *ConfigBuilder) WithNotation(n Notation) *ConfigBuilder {
	b.cfg.Notation = n
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithOutput sets the output and log writers.
func (b *ConfigBuilder) WithOutput(out, log io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = out
	b.cfg.LogFile = log
	return b
}
