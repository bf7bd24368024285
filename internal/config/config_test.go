package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	// Test notification defaults
	assert.Equal(t, 3000, cfg.Notifications.ExtraDisplayMs)
	assert.Equal(t, 300, cfg.Notifications.SlideInMs)
	assert.Equal(t, 300, cfg.Notifications.SlideOutMs)
	assert.Equal(t, 400, cfg.Notifications.DelayBetweenMs)
	require.NotNil(t, cfg.Notifications.CompletedSound)
	require.NotNil(t, cfg.Notifications.FailedSound)

	// Test mood defaults
	assert.Equal(t, 0.5, cfg.Mood.Initial)
	assert.Equal(t, -0.25, cfg.Mood.CompletedDelta)
	assert.Equal(t, 0.25, cfg.Mood.FailedDelta)
	assert.Equal(t, 0.01, cfg.Mood.Tolerance)

	// Test game defaults
	assert.Equal(t, "intro", cfg.Game.Level)
	assert.Equal(t, 0, cfg.Game.Difficulty)
	assert.Equal(t, 30, cfg.Game.FrameRateHz)

	// Test log defaults
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Log.File)
}

func TestLoadConfigFromQuestlogJSON(t *testing.T) {
	tmpDir := t.TempDir()

	configContent := `{
  "version": 2,
  "notifications": {
    "extraDisplayMs": 1500
  },
  "game": {
    "level": "level1",
    "difficulty": 2
  },
  "log": {
    "level": "debug",
    "file": "questlog.log"
  }
}`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, FileName), []byte(configContent), 0644))

	cfg, err := LoadConfig(tmpDir)
	require.NoError(t, err)

	// Overridden values
	assert.Equal(t, 1500, cfg.Notifications.ExtraDisplayMs)
	assert.Equal(t, "level1", cfg.Game.Level)
	assert.Equal(t, 2, cfg.Game.Difficulty)
	assert.Equal(t, "questlog.log", cfg.Log.File)

	// Defaults preserved
	assert.Equal(t, 300, cfg.Notifications.SlideInMs)
	assert.Equal(t, 30, cfg.Game.FrameRateHz)
	assert.Equal(t, -0.25, cfg.Mood.CompletedDelta)
}

func TestLoadConfigNoFiles(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigInvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, FileName), []byte(`{"game": `), 0644))

	_, err := LoadConfig(tmpDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), FileName)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSaveConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	cfg := DefaultConfig()
	cfg.Game.Level = "level2"
	cfg.Mood.Tolerance = 0.05
	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestMergeWithDefaultsEmptyConfig(t *testing.T) {
	cfg := MergeWithDefaults(&Config{})

	assert.Equal(t, DefaultConfig(), cfg)
}

func TestMergeWithDefaultsKeepsDifficultyZero(t *testing.T) {
	cfg := MergeWithDefaults(&Config{Game: GameConfig{Difficulty: 0, Level: "level1"}})

	assert.Equal(t, 0, cfg.Game.Difficulty)
	assert.Equal(t, "level1", cfg.Game.Level)
}

func TestConfig_NotifyConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Notifications.SlideOutMs = 250
	cfg.Notifications.FailedSound = nil

	n := cfg.NotifyConfig()

	assert.Equal(t, 3*time.Second, n.ExtraDisplay)
	assert.Equal(t, 300*time.Millisecond, n.SlideIn)
	assert.Equal(t, 250*time.Millisecond, n.SlideOut)
	assert.Equal(t, 400*time.Millisecond, n.DelayBetween)
	require.NotNil(t, n.CompletedSound)
	assert.Equal(t, "complete", n.CompletedSound.Name)
	assert.Equal(t, 1200*time.Millisecond, n.CompletedSound.Length)
	assert.Nil(t, n.FailedSound)
}

func TestConfig_FrameInterval(t *testing.T) {
	tests := []struct {
		hz   int
		want time.Duration
	}{
		{30, time.Second / 30},
		{60, time.Second / 60},
		{0, time.Second / 30},
		{-5, time.Second / 30},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.Game.FrameRateHz = tt.hz
		assert.Equal(t, tt.want, cfg.FrameInterval(), "hz=%d", tt.hz)
	}
}

func TestConfig_SlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"loud", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		cfg := &Config{Log: LogConfig{Level: tt.level}}
		assert.Equal(t, tt.want, cfg.SlogLevel(), "level=%q", tt.level)
	}
}
