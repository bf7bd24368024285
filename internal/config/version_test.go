package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersionedConfig_LegacyConfig(t *testing.T) {
	// Legacy config without version field
	legacyJSON := `{
		"extraDisplayTime": 2.5,
		"game": {
			"level": "level1"
		}
	}`

	cfg, err := ParseVersionedConfig([]byte(legacyJSON))
	require.NoError(t, err)

	assert.Equal(t, 2500, cfg.Notifications.ExtraDisplayMs)
	assert.Equal(t, "level1", cfg.Game.Level)
}

func TestParseVersionedConfig_Version1(t *testing.T) {
	v1JSON := `{
		"version": 1,
		"extraDisplayTime": 4,
		"notifications": {
			"slideInMs": 200
		}
	}`

	cfg, err := ParseVersionedConfig([]byte(v1JSON))
	require.NoError(t, err)

	assert.Equal(t, 4000, cfg.Notifications.ExtraDisplayMs)
	assert.Equal(t, 200, cfg.Notifications.SlideInMs)
}

func TestParseVersionedConfig_Version2(t *testing.T) {
	v2JSON := `{
		"version": 2,
		"mood": {
			"completedDelta": -0.1
		}
	}`

	cfg, err := ParseVersionedConfig([]byte(v2JSON))
	require.NoError(t, err)

	assert.Equal(t, -0.1, cfg.Mood.CompletedDelta)
}

func TestParseVersionedConfig_NestedConfig(t *testing.T) {
	nestedJSON := `{
		"version": 2,
		"config": {
			"game": {"level": "level2"}
		}
	}`

	cfg, err := ParseVersionedConfig([]byte(nestedJSON))
	require.NoError(t, err)

	assert.Equal(t, "level2", cfg.Game.Level)
}

func TestParseVersionedConfig_FutureVersion(t *testing.T) {
	futureJSON := `{"version": 999}`

	_, err := ParseVersionedConfig([]byte(futureJSON))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "newer than supported")
}

func TestApplyMigrations_V1ToV2(t *testing.T) {
	tests := []struct {
		name string
		data map[string]interface{}
		want map[string]interface{}
	}{
		{
			name: "moves extraDisplayTime",
			data: map[string]interface{}{"extraDisplayTime": 3.0},
			want: map[string]interface{}{
				"version":       2,
				"notifications": map[string]interface{}{"extraDisplayMs": 3000.0},
			},
		},
		{
			name: "explicit extraDisplayMs wins",
			data: map[string]interface{}{
				"extraDisplayTime": 3.0,
				"notifications":    map[string]interface{}{"extraDisplayMs": 1000.0},
			},
			want: map[string]interface{}{
				"version":       2,
				"notifications": map[string]interface{}{"extraDisplayMs": 1000.0},
			},
		},
		{
			name: "nothing to move",
			data: map[string]interface{}{"game": map[string]interface{}{"level": "intro"}},
			want: map[string]interface{}{
				"version": 2,
				"game":    map[string]interface{}{"level": "intro"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ApplyMigrations(tt.data, 1)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApplyMigrations_BadLegacyValue(t *testing.T) {
	_, err := ApplyMigrations(map[string]interface{}{"extraDisplayTime": "three"}, 1)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration 1 -> 2 failed")
}

func TestApplyMigrations_V0ToCurrent(t *testing.T) {
	got, err := ApplyMigrations(map[string]interface{}{}, 0)
	require.NoError(t, err)

	assert.Equal(t, CurrentVersion, got["version"])
}

func TestMarshalVersionedConfig(t *testing.T) {
	data, err := MarshalVersionedConfig(DefaultConfig())
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))

	assert.Equal(t, float64(CurrentVersion), raw["version"])
	assert.Contains(t, raw, "notifications")
	assert.Contains(t, raw, "mood")
	assert.Contains(t, raw, "game")
	assert.Contains(t, raw, "log")
}

func TestRoundTrip(t *testing.T) {
	original := DefaultConfig()
	original.Game.Difficulty = 1
	original.Notifications.CompletedSound = &SoundConfig{Name: "yay", LengthMs: 900}

	data, err := MarshalVersionedConfig(original)
	require.NoError(t, err)

	parsed, err := ParseVersionedConfig(data)
	require.NoError(t, err)

	assert.Equal(t, original, parsed)
}

func TestCurrentVersion(t *testing.T) {
	assert.Equal(t, 2, CurrentVersion)
	assert.Equal(t, CurrentVersion, migrations[len(migrations)-1].ToVersion)
}
