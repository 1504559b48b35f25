package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lgbarn/chesscodec-go/internal/errors"
	"github.com/lgbarn/chesscodec-go/internal/hashing"
)

// TestNewConfig_Defaults verifies Config has sensible defaults
func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Notation != SAN {
		t.Errorf("Notation = %v, want %v", cfg.Notation, SAN)
	}
	if cfg.ReadLimit != hashing.MaxReadLimit {
		t.Errorf("ReadLimit = %d, want %d", cfg.ReadLimit, hashing.MaxReadLimit)
	}
	if cfg.Workers < 1 {
		t.Errorf("Workers = %d, want >= 1", cfg.Workers)
	}
	if cfg.Verbosity != 1 {
		t.Errorf("Verbosity = %d, want 1", cfg.Verbosity)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"empty data dir", func(c *Config) { c.DataDir = "" }},
		{"zero workers", func(c *Config) { c.Workers = 0 }},
		{"negative read limit", func(c *Config) { c.ReadLimit = -1 }},
		{"read limit too large", func(c *Config) { c.ReadLimit = hashing.MaxReadLimit + 1 }},
		{"negative capacity", func(c *Config) { c.DuplicateCapacity = -1 }},
		{"unknown notation", func(c *Config) { c.Notation = "uci" }},
		{"negative verbosity", func(c *Config) { c.Verbosity = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			if err := cfg.Validate(); !errors.Is(err, errors.ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestParseNotation(t *testing.T) {
	for in, want := range map[string]Notation{"san": SAN, "LAN": LAN, " San ": SAN} {
		got, err := ParseNotation(in)
		if err != nil || got != want {
			t.Errorf("ParseNotation(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseNotation("fen"); !errors.Is(err, errors.ErrInvalidConfig) {
		t.Errorf("ParseNotation(fen) error = %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "data_dir: /var/lib/chesscodec\nworkers: 3\nnotation: lan\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.DataDir != "/var/lib/chesscodec" || cfg.Workers != 3 || cfg.Notation != LAN {
		t.Errorf("LoadConfig = %+v", cfg)
	}
	if cfg.ReadLimit != hashing.MaxReadLimit {
		t.Errorf("missing key should keep default, ReadLimit = %d", cfg.ReadLimit)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	_ = os.WriteFile(bad, []byte("workers: [1, 2"), 0600)
	if _, err := LoadConfig(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	_ = os.WriteFile(invalid, []byte("workers: 0\n"), 0600)
	if _, err := LoadConfig(invalid); !errors.Is(err, errors.ErrInvalidConfig) {
		t.Errorf("LoadConfig(invalid) = %v, want ErrInvalidConfig", err)
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := NewConfigBuilder().
		WithDataDir("/tmp/archive").
		WithWorkers(2).
		WithReadLimit(1 << 20).
		WithNotation(LAN).
		WithVerbosity(2).
		Build()

	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}
	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got.DataDir != cfg.DataDir || got.Workers != 2 || got.ReadLimit != 1<<20 || got.Notation != LAN || got.Verbosity != 2 {
		t.Errorf("round trip = %+v", got)
	}

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "outputfile") {
		t.Error("writers should not be serialized")
	}
}

func TestLogf(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewConfigBuilder().WithOutput(&bytes.Buffer{}, &buf).WithVerbosity(1).Build()

	cfg.Logf(1, "hashed %d files", 3)
	cfg.Logf(2, "too chatty")

	if got := buf.String(); got != "hashed 3 files\n" {
		t.Errorf("log = %q", got)
	}
}

func TestDefaultConfigPath(t *testing.T) {
	if !strings.HasSuffix(DefaultConfigPath(), ".yaml") {
		t.Errorf("DefaultConfigPath() = %q", DefaultConfigPath())
	}
}

func TestNewConfigBuilderFrom(t *testing.T) {
	base := NewConfigBuilder().WithDataDir("/srv/archive").WithWorkers(6).Build()
	cfg := NewConfigBuilderFrom(base).WithNotation(LAN).Build()

	if cfg != base {
		t.Error("builder should update the config it was given")
	}
	if cfg.DataDir != "/srv/archive" || cfg.Workers != 6 || cfg.Notation != LAN {
		t.Errorf("layered config = %+v", cfg)
	}
}
