package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "tokyo-night", cfg.TUI.Theme)
	assert.Equal(t, "all", cfg.TUI.InitialFilter)
	assert.Equal(t, 650, cfg.Animation.EmphasisMS)
	assert.True(t, cfg.Data.WatchEnabled())
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	content := `
tui:
  theme: gruvbox
animation:
  emphasis_ms: 700
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path, dir)
	require.NoError(t, err)

	assert.Equal(t, "gruvbox", cfg.TUI.Theme)
	assert.Equal(t, 700, cfg.Animation.EmphasisMS)
	// untouched values fall back to defaults
	assert.Equal(t, 280, cfg.Animation.SlideMS)
	assert.Equal(t, "all", cfg.TUI.InitialFilter)
	assert.Equal(t, dir, cfg.DataDir)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown theme", "tui:\n  theme: plasma\n"},
		{"unknown filter", "tui:\n  initial_filter: two-star\n"},
		{"emphasis out of range", "animation:\n  emphasis_ms: 50000\n"},
		{"bad glob", "data:\n  globs: [\"[\"]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "config.yml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := Load(path, dir)
			assert.Error(t, err)
		})
	}
}

func TestAnimationConfig_Durations(t *testing.T) {
	a := AnimationConfig{EmphasisMS: 650, SlideMS: 280, WidthMS: 180, FPS: 30}

	assert.Equal(t, 650*time.Millisecond, a.Emphasis())
	assert.Equal(t, 280*time.Millisecond, a.Slide())
	assert.Equal(t, 180*time.Millisecond, a.Width())
	assert.Equal(t, time.Second/30, a.FrameInterval())
}

func TestDataConfig_WatchEnabled(t *testing.T) {
	off := false
	on := true

	assert.True(t, DataConfig{}.WatchEnabled())
	assert.True(t, DataConfig{Watch: &on}.WatchEnabled())
	assert.False(t, DataConfig{Watch: &off}.WatchEnabled())
}

func TestValidateDeep_ConfigFileIsDirectory(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.DataDir = dir

	err := cfg.ValidateDeep(dir)
	assert.Error(t, err)
}
