// Package config resolves runtime settings from command-line flags with
// environment fallbacks. There is no configuration file.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/kk-code-lab/dirsplit/internal/logging"
	"github.com/kk-code-lab/dirsplit/internal/state"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// EnvPrefix is prepended to the upper-cased flag name to form its variable.
const EnvPrefix = "DIRSPLIT_"

const (
	flagSecond      = "second"
	flagDual        = "dual"
	flagSort        = "sort"
	flagHistorySize = "history-size"
	flagNoClipboard = "no-clipboard"
	flagPrintYanked = "print-yanked"
	flagLogFile     = "log-file"
	flagLogLevel    = "log-level"
)

// Config captures runtime configuration for the application.
type Config struct {
	// Path is the starting directory of the first pane.
	Path string
	// SecondPath, when set, opens a second pane there.
	SecondPath string
	// Dual opens a second pane on Path at startup.
	Dual        bool
	Sort        state.SortMode
	HistorySize int
	Clipboard   bool
	PrintYanked bool
	Logging     Logging
}

type Logging struct {
	FilePath string
	Level    slog.Level
}

// Default returns the settings used when nothing is given.
func Default() Config {
	return Config{
		Path:        ".",
		Sort:        state.SortUngrouped,
		HistorySize: state.DefaultHistorySize,
		Clipboard:   true,
		Logging:     Logging{Level: slog.LevelInfo},
	}
}

// RegisterFlags declares every setting on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	def := Default()
	fs.String(flagSecond, "", "open a second pane on this directory")
	fs.Bool(flagDual, false, "start with two panes on the same directory")
	fs.String(flagSort, def.Sort.String(), "initial sort mode (ungrouped, dirs-first)")
	fs.Int(flagHistorySize, def.HistorySize, "directories that remember their last selection (0 disables)")
	fs.Bool(flagNoClipboard, false, "do not copy yanked paths to the system clipboard")
	fs.Bool(flagPrintYanked, false, "print yanked paths to stdout on exit")
	fs.String(flagLogFile, "", "write diagnostics to this file")
	fs.String(flagLogLevel, "info", "log level (debug, info, warn, error)")
}

// EnvName returns the environment variable consulted for a flag.
func EnvName(flag string) string {
	return EnvPrefix + strings.ToUpper(strings.ReplaceAll(flag, "-", "_"))
}

// flagSettings mirrors the registered flags; keys are flag names.
type flagSettings struct {
	Second      string `koanf:"second"`
	Dual        bool   `koanf:"dual"`
	Sort        string `koanf:"sort"`
	HistorySize int    `koanf:"history-size"`
	NoClipboard bool   `koanf:"no-clipboard"`
	PrintYanked bool   `koanf:"print-yanked"`
	LogFile     string `koanf:"log-file"`
	LogLevel    string `koanf:"log-level"`
}

// Load builds the configuration from parsed flags and positional args.
// Flags given on the command line win over DIRSPLIT_* variables, which win
// over flag defaults.
func Load(fs *pflag.FlagSet, args []string) (Config, error) {
	if len(args) > 1 {
		return Config{}, fmt.Errorf("expected at most one directory, got %d", len(args))
	}

	k := koanf.New(".")
	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envKey), nil); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}
	if err := k.Load(posflag.Provider(fs, ".", k), nil); err != nil {
		return Config{}, fmt.Errorf("read flags: %w", err)
	}

	var raw flagSettings
	if err := k.Unmarshal("", &raw); err != nil {
		return Config{}, fmt.Errorf("invalid setting: %w", err)
	}

	cfg := Default()
	if len(args) == 1 && args[0] != "" {
		cfg.Path = args[0]
	}
	cfg.SecondPath = raw.Second
	cfg.Dual = raw.Dual
	cfg.HistorySize = raw.HistorySize
	cfg.Clipboard = !raw.NoClipboard
	cfg.PrintYanked = raw.PrintYanked
	cfg.Logging.FilePath = raw.LogFile

	var err error
	if cfg.Sort, err = state.ParseSortMode(raw.Sort); err != nil {
		return Config{}, err
	}
	if cfg.Logging.Level, err = logging.ParseLevel(raw.LogLevel); err != nil {
		return Config{}, err
	}

	return cfg, Validate(cfg)
}

// envKey maps DIRSPLIT_HISTORY_SIZE to history-size. Blank values are skipped.
func envKey(key, value string) (string, interface{}) {
	if strings.TrimSpace(value) == "" {
		return "", nil
	}
	name := strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	return strings.ReplaceAll(name, "_", "-"), value
}

// Validate rejects settings that cannot be satisfied.
func Validate(cfg Config) error {
	if cfg.HistorySize < 0 {
		return fmt.Errorf("history-size must be >= 0 (got %d)", cfg.HistorySize)
	}
	if cfg.Dual && cfg.SecondPath != "" {
		return fmt.Errorf("--dual and --second cannot be combined")
	}
	return nil
}
