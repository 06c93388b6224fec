package shell

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"src.pina.sh/pkg/prog"
)

// Config keeps the settings of the interactive shell.
type Config struct {
	Prompt      string   `yaml:"prompt"`
	Engine      string   `yaml:"engine"`
	EngineArgs  []string `yaml:"engine_args"`
	Shell       string   `yaml:"shell"`
	HistorySize int      `yaml:"history_size"`
	Capture     bool     `yaml:"capture"`
	DB          string   `yaml:"db"`
}

// DefaultConfig returns the settings used when neither an rc file nor flags
// say otherwise.
func DefaultConfig() Config {
	return Config{
		Prompt:      "pina_shell> ",
		Engine:      "espeak-ng",
		EngineArgs:  []string{"--punct"},
		Shell:       "/bin/sh",
		HistorySize: 15,
		Capture:     true,
	}
}

// LoadRC overlays the settings in the YAML file at path onto cfg. Keys that
// are absent from the file leave cfg unchanged; unknown keys are an error.
func LoadRC(cfg *Config, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read rc file: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse rc file %s: %w", path, err)
	}
	logger.Printf("loaded rc file %s", path)
	return nil
}

// ApplyFlags overlays the flags given on the command line onto cfg.
func ApplyFlags(cfg *Config, f *prog.Flags) {
	if f.Set["engine"] {
		cfg.Engine = f.Engine
	}
	if f.Set["shell"] {
		cfg.Shell = f.Shell
	}
	if f.Set["history-size"] {
		cfg.HistorySize = f.HistorySize
	}
	if f.Set["no-capture"] {
		cfg.Capture = !f.NoCapture
	}
	if f.Set["db"] {
		cfg.DB = f.DB
	}
}

// Validate checks that cfg can be used.
func (cfg *Config) Validate() error {
	if cfg.HistorySize < 1 {
		return fmt.Errorf("history size must be positive, got %d", cfg.HistorySize)
	}
	if cfg.Shell == "" {
		return errors.New("shell must not be empty")
	}
	return nil
}
