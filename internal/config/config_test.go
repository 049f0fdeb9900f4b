package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestResolveMissingFileUsesAndWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := Resolve(path)
	assert.Equal(t, Default(), cfg)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var written Config
	require.NoError(t, json.Unmarshal(data, &written))
	assert.Equal(t, Default(), written)
}

func TestResolveMalformedFileRepairs(t *testing.T) {
	path := writeConfig(t, "{not json")

	cfg := Resolve(path)
	assert.Equal(t, Default(), cfg)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))
}

func TestResolvePartialBarMerge(t *testing.T) {
	path := writeConfig(t, `{"bar": {"width": 20}}`)

	cfg := Resolve(path)
	assert.Equal(t, "default", cfg.Bar.Style)
	assert.Equal(t, 20, cfg.Bar.Width)
}

func TestResolveThemePrecedence(t *testing.T) {
	t.Run("theme overrides defaults", func(t *testing.T) {
		cfg := Resolve(writeConfig(t, `{"theme": "ocean"}`))
		assert.Equal(t, "teal", cfg.Colors.Low)
		assert.Equal(t, "royal_blue", cfg.Colors.Mid)
		assert.Equal(t, "purple", cfg.Colors.High)
	})

	t.Run("explicit colors override theme", func(t *testing.T) {
		cfg := Resolve(writeConfig(t, `{"theme": "ocean", "colors": {"high": "gold"}}`))
		assert.Equal(t, "teal", cfg.Colors.Low)
		assert.Equal(t, "gold", cfg.Colors.High)
	})

	t.Run("unknown theme contributes nothing", func(t *testing.T) {
		cfg := Resolve(writeConfig(t, `{"theme": "nope"}`))
		assert.Equal(t, Default().Colors, cfg.Colors)
	})

	t.Run("thresholds survive theme overlay", func(t *testing.T) {
		cfg := Resolve(writeConfig(t, `{"theme": "sunset", "colors": {"threshold_high": 90}}`))
		assert.Equal(t, float64(50), cfg.Colors.ThresholdMid)
		assert.Equal(t, float64(90), cfg.Colors.ThresholdHigh)
	})
}

func TestResolveVerbatimKeys(t *testing.T) {
	path := writeConfig(t, `{"layout": "compact", "cache_ttl": 5, "sections": ["plan"]}`)

	cfg := Resolve(path)
	assert.Equal(t, "compact", cfg.Layout)
	assert.Equal(t, 5, cfg.CacheTTL)
	assert.Equal(t, []string{"plan"}, cfg.Sections)
}

func TestResolveEmptySectionsListOverrides(t *testing.T) {
	cfg := Resolve(writeConfig(t, `{"sections": []}`))
	assert.NotNil(t, cfg.Sections)
	assert.Empty(t, cfg.Sections)
}

func TestResolveExplicitZeroThreshold(t *testing.T) {
	// 0 must read as an explicit override, not an absent key.
	cfg := Resolve(writeConfig(t, `{"colors": {"threshold_mid": 0}}`))
	assert.Equal(t, float64(0), cfg.Colors.ThresholdMid)
	assert.Equal(t, float64(80), cfg.Colors.ThresholdHigh)
}

func TestResolveIdempotent(t *testing.T) {
	path := writeConfig(t, `{"theme": "neon", "bar": {"style": "blocks"}, "cache_ttl": 60}`)

	first := Resolve(path)
	second := Resolve(path)
	assert.Equal(t, first, second)
}
