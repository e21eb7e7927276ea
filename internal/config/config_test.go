package config

import (
	"log/slog"
	"testing"

	"github.com/kk-code-lab/dirsplit/internal/state"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, argv []string, env map[string]string) (Config, error) {
	t.Helper()
	for key, value := range env {
		t.Setenv(key, value)
	}
	fs := pflag.NewFlagSet("dirsplit", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(argv))
	return Load(fs, fs.Args())
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(t, nil, nil)

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, ".", cfg.Path)
	assert.True(t, cfg.Clipboard)
	assert.Equal(t, state.DefaultHistorySize, cfg.HistorySize)
}

func TestLoadFlags(t *testing.T) {
	cfg, err := load(t, []string{
		"/srv",
		"--second", "/tmp",
		"--sort", "dirs-first",
		"--history-size", "0",
		"--no-clipboard",
		"--print-yanked",
		"--log-file", "/var/log/dirsplit.log",
		"--log-level", "debug",
	}, nil)

	require.NoError(t, err)
	assert.Equal(t, "/srv", cfg.Path)
	assert.Equal(t, "/tmp", cfg.SecondPath)
	assert.Equal(t, state.SortDirectoriesFirst, cfg.Sort)
	assert.Equal(t, 0, cfg.HistorySize)
	assert.False(t, cfg.Clipboard)
	assert.True(t, cfg.PrintYanked)
	assert.Equal(t, "/var/log/dirsplit.log", cfg.Logging.FilePath)
	assert.Equal(t, slog.LevelDebug, cfg.Logging.Level)
}

func TestLoadEnvironmentFallback(t *testing.T) {
	cfg, err := load(t, []string{"--sort", "ungrouped"}, map[string]string{
		"DIRSPLIT_SORT":         "dirs-first",
		"DIRSPLIT_DUAL":         "true",
		"DIRSPLIT_LOG_FILE":     "/tmp/d.log",
		"DIRSPLIT_HISTORY_SIZE": "12",
		"DIRSPLIT_NO_CLIPBOARD": "1",
		"DIRSPLIT_LOG_LEVEL":    "  ",
		"DIRSPLIT_UNKNOWN":      "x",
		"UNRELATED":             "1",
	})

	require.NoError(t, err)
	assert.Equal(t, state.SortUngrouped, cfg.Sort, "flags win over the environment")
	assert.True(t, cfg.Dual)
	assert.Equal(t, "/tmp/d.log", cfg.Logging.FilePath)
	assert.Equal(t, 12, cfg.HistorySize)
	assert.False(t, cfg.Clipboard)
	assert.Equal(t, slog.LevelInfo, cfg.Logging.Level, "blank variables keep the default")
}

func TestLoadFlagDefaultsDoNotMaskEnvironment(t *testing.T) {
	cfg, err := load(t, []string{"--dual"}, map[string]string{
		"DIRSPLIT_HISTORY_SIZE": "3",
	})

	require.NoError(t, err)
	assert.True(t, cfg.Dual)
	assert.Equal(t, 3, cfg.HistorySize)
	assert.Equal(t, state.SortUngrouped, cfg.Sort)
}

func TestEnvKey(t *testing.T) {
	key, value := envKey("DIRSPLIT_PRINT_YANKED", "true")
	assert.Equal(t, "print-yanked", key)
	assert.Equal(t, "true", value)

	key, _ = envKey(EnvName("no-clipboard"), "1")
	assert.Equal(t, "no-clipboard", key)

	key, _ = envKey("DIRSPLIT_SECOND", " ")
	assert.Empty(t, key)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		argv    []string
		env     map[string]string
		wantErr string
	}{
		{name: "sort", argv: []string{"--sort", "size"}, wantErr: `unknown sort mode "size"`},
		{name: "level", argv: []string{"--log-level", "loud"}, wantErr: "unknown log level"},
		{name: "history", argv: []string{"--history-size", "-1"}, wantErr: "history-size must be >= 0"},
		{name: "dual and second", argv: []string{"--dual", "--second", "/x"}, wantErr: "cannot be combined"},
		{name: "two paths", argv: []string{"/a", "/b"}, wantErr: "at most one directory"},
		{name: "env bool", env: map[string]string{"DIRSPLIT_DUAL": "maybe"}, wantErr: "dual"},
		{name: "env int", env: map[string]string{"DIRSPLIT_HISTORY_SIZE": "lots"}, wantErr: "history-size"},
		{name: "env sort", env: map[string]string{"DIRSPLIT_SORT": "size"}, wantErr: `unknown sort mode "size"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := load(t, tt.argv, tt.env)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestEnvName(t *testing.T) {
	assert.Equal(t, "DIRSPLIT_NO_CLIPBOARD", EnvName("no-clipboard"))
}
