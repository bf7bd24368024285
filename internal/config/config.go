package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/riordanpawley/questlog/internal/domain"
	"github.com/riordanpawley/questlog/internal/services/notify"
)

// FileName is the project-level config file looked up by LoadConfig
const FileName = ".questlog.json"

// Config represents the full questlog configuration
type Config struct {
	Notifications NotificationsConfig `json:"notifications"`
	Mood          MoodConfig          `json:"mood"`
	Game          GameConfig          `json:"game"`
	Log           LogConfig           `json:"log"`
}

// NotificationsConfig contains notification timing, all in milliseconds
type NotificationsConfig struct {
	ExtraDisplayMs int          `json:"extraDisplayMs"`
	SlideInMs      int          `json:"slideInMs"`
	SlideOutMs     int          `json:"slideOutMs"`
	DelayBetweenMs int          `json:"delayBetweenMs"`
	CompletedSound *SoundConfig `json:"completedSound,omitempty"`
	FailedSound    *SoundConfig `json:"failedSound,omitempty"`
}

// SoundConfig names a clip and its length
type SoundConfig struct {
	Name     string `json:"name"`
	LengthMs int    `json:"lengthMs"`
}

// MoodConfig contains mood store settings
type MoodConfig struct {
	Initial        float64 `json:"initial"`
	CompletedDelta float64 `json:"completedDelta"`
	FailedDelta    float64 `json:"failedDelta"`
	Tolerance      float64 `json:"tolerance"`
}

// GameConfig contains session settings
type GameConfig struct {
	Level       string `json:"level"`
	Difficulty  int    `json:"difficulty"`
	FrameRateHz int    `json:"frameRateHz"`
}

// LogConfig contains logging settings. An empty File discards logs.
type LogConfig struct {
	Level string `json:"level"`
	File  string `json:"file"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Notifications: NotificationsConfig{
			ExtraDisplayMs: 3000,
			SlideInMs:      300,
			SlideOutMs:     300,
			DelayBetweenMs: 400,
			CompletedSound: &SoundConfig{Name: "complete", LengthMs: 1200},
			FailedSound:    &SoundConfig{Name: "fail", LengthMs: 1500},
		},
		Mood: MoodConfig{
			Initial:        0.5,
			CompletedDelta: -0.25,
			FailedDelta:    0.25,
			Tolerance:      0.01,
		},
		Game: GameConfig{
			Level:       "intro",
			Difficulty:  0,
			FrameRateHz: 30,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from project path with priority:
// 1. CLI flags (applied by the caller)
// 2. .questlog.json in project root (with version migration support)
// 3. Defaults
func LoadConfig(projectPath string) (*Config, error) {
	path := filepath.Join(projectPath, FileName)
	if _, err := os.Stat(path); err != nil {
		return DefaultConfig(), nil
	}
	return LoadFile(path)
}

// LoadFile loads configuration from an explicit path. A missing file is an
// error here, unlike LoadConfig.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := ParseVersionedConfig(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return MergeWithDefaults(cfg), nil
}

// SaveConfig saves configuration to the specified path with version information
func SaveConfig(cfg *Config, path string) error {
	data, err := MarshalVersionedConfig(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// MergeWithDefaults fills in missing values with defaults.
// Zero means unset for every numeric field except Game.Difficulty.
func MergeWithDefaults(cfg *Config) *Config {
	defaults := DefaultConfig()

	// Merge Notifications config
	if cfg.Notifications.ExtraDisplayMs == 0 {
		cfg.Notifications.ExtraDisplayMs = defaults.Notifications.ExtraDisplayMs
	}
	if cfg.Notifications.SlideInMs == 0 {
		cfg.Notifications.SlideInMs = defaults.Notifications.SlideInMs
	}
	if cfg.Notifications.SlideOutMs == 0 {
		cfg.Notifications.SlideOutMs = defaults.Notifications.SlideOutMs
	}
	if cfg.Notifications.DelayBetweenMs == 0 {
		cfg.Notifications.DelayBetweenMs = defaults.Notifications.DelayBetweenMs
	}
	if cfg.Notifications.CompletedSound == nil {
		cfg.Notifications.CompletedSound = defaults.Notifications.CompletedSound
	}
	if cfg.Notifications.FailedSound == nil {
		cfg.Notifications.FailedSound = defaults.Notifications.FailedSound
	}

	// Merge Mood config
	if cfg.Mood.Initial == 0 {
		cfg.Mood.Initial = defaults.Mood.Initial
	}
	if cfg.Mood.CompletedDelta == 0 {
		cfg.Mood.CompletedDelta = defaults.Mood.CompletedDelta
	}
	if cfg.Mood.FailedDelta == 0 {
		cfg.Mood.FailedDelta = defaults.Mood.FailedDelta
	}
	if cfg.Mood.Tolerance == 0 {
		cfg.Mood.Tolerance = defaults.Mood.Tolerance
	}

	// Merge Game config
	if cfg.Game.Level == "" {
		cfg.Game.Level = defaults.Game.Level
	}
	if cfg.Game.FrameRateHz <= 0 {
		cfg.Game.FrameRateHz = defaults.Game.FrameRateHz
	}

	// Merge Log config
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}

	return cfg
}

// Load is a convenience function that loads config from current directory
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return LoadConfig(cwd)
}

// NotifyConfig converts the notification settings for the presenter
func (c *Config) NotifyConfig() notify.Config {
	n := c.Notifications
	return notify.Config{
		ExtraDisplay:   ms(n.ExtraDisplayMs),
		SlideIn:        ms(n.SlideInMs),
		SlideOut:       ms(n.SlideOutMs),
		DelayBetween:   ms(n.DelayBetweenMs),
		CompletedSound: n.CompletedSound.clip(),
		FailedSound:    n.FailedSound.clip(),
	}
}

// FrameInterval is the time between host frames
func (c *Config) FrameInterval() time.Duration {
	hz := c.Game.FrameRateHz
	if hz <= 0 {
		hz = DefaultConfig().Game.FrameRateHz
	}
	return time.Second / time.Duration(hz)
}

// SlogLevel parses Log.Level, falling back to info
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func (s *SoundConfig) clip() *domain.AudioClip {
	if s == nil {
		return nil
	}
	return &domain.AudioClip{Name: s.Name, Length: ms(s.LengthMs)}
}

func ms(n int) time.Duration {
	if n < 0 {
		n = 0
	}
	return time.Duration(n) * time.Millisecond
}
