package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rrsched/rrsched/sim"
	"github.com/rrsched/rrsched/sim/trace"
)

// RunConfig represents the optional run-config YAML.
// All fields are optional; zero values leave the flag defaults in place.
type RunConfig struct {
	Programs  string `yaml:"programs"`
	Quantum   int    `yaml:"quantum"`
	IOWait    int    `yaml:"io_wait"`
	Promotion string `yaml:"promotion"`
	Averages  string `yaml:"averages"`
	Language  string `yaml:"language"`
	LogsDir   string `yaml:"logs_dir"`
	HistoryDB string `yaml:"history_db"`
}

// runOptions is the effective configuration of a run after merging flags
// and the run config.
type runOptions struct {
	Programs  string
	Quantum   int
	IOWait    int
	Promotion string
	Averages  string
	Language  string
	LogsDir   string
	HistoryDB string
}

// loadRunConfig parses a run-config YAML file.
// Uses strict field checking: typos must cause errors.
func loadRunConfig(path string) (RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RunConfig{}, fmt.Errorf("reading run config: %w", err)
	}
	var cfg RunConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return RunConfig{}, fmt.Errorf("parsing run config: %w", err)
	}
	return cfg, nil
}

// applyRunConfig copies non-zero config values into opts for every option
// whose flag was not set explicitly.
func applyRunConfig(opts *runOptions, cfg RunConfig, changed func(flag string) bool) {
	setString := func(flag string, dst *string, v string) {
		if v != "" && !changed(flag) {
			*dst = v
		}
	}
	setInt := func(flag string, dst *int, v int) {
		if v != 0 && !changed(flag) {
			*dst = v
		}
	}
	setString("programs", &opts.Programs, cfg.Programs)
	setInt("quantum", &opts.Quantum, cfg.Quantum)
	setInt("io-wait", &opts.IOWait, cfg.IOWait)
	setString("promotion", &opts.Promotion, cfg.Promotion)
	setString("averages", &opts.Averages, cfg.Averages)
	setString("lang", &opts.Language, cfg.Language)
	setString("logs", &opts.LogsDir, cfg.LogsDir)
	setString("history", &opts.HistoryDB, cfg.HistoryDB)
}

// validateRunOptions rejects option values the engine would not accept.
func validateRunOptions(opts runOptions) error {
	if !sim.IsValidPromotionPolicy(opts.Promotion) {
		return fmt.Errorf("unknown promotion policy %q; valid: head, all", opts.Promotion)
	}
	if !sim.IsValidAverageMode(opts.Averages) {
		return fmt.Errorf("unknown average mode %q; valid: integer, real", opts.Averages)
	}
	if !trace.IsValidLanguage(opts.Language) {
		return fmt.Errorf("unknown language %q; valid: en, pt", opts.Language)
	}
	if opts.Quantum < 0 {
		return fmt.Errorf("quantum must be non-negative, got %d", opts.Quantum)
	}
	if opts.IOWait < 1 {
		return fmt.Errorf("io-wait must be positive, got %d", opts.IOWait)
	}
	return nil
}

// resolveRunOptions merges the flag values with --config and validates them.
func resolveRunOptions(cmd *cobra.Command) runOptions {
	opts := runOptions{
		Programs:  programsPath,
		Quantum:   quantum,
		IOWait:    ioWait,
		Promotion: promotion,
		Averages:  averages,
		Language:  language,
		LogsDir:   logsDir,
		HistoryDB: historyDB,
	}
	if configPath != "" {
		cfg, err := loadRunConfig(configPath)
		if err != nil {
			logrus.Fatalf("Failed to load run config: %v", err)
		}
		applyRunConfig(&opts, cfg, func(flag string) bool {
			f := cmd.Flags().Lookup(flag)
			return f != nil && f.Changed
		})
	}
	if err := validateRunOptions(opts); err != nil {
		logrus.Fatalf("Invalid options: %v", err)
	}
	return opts
}
