package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.True(t, cfg.IncludeDependencies)
	assert.True(t, cfg.ValidateFormulas)
	assert.Empty(t, cfg.TargetSheets)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracker.yaml")
	content := "environment: staging\ninclude_dependencies: false\ntarget_sheets:\n  - custom-sheet\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Environment)
	assert.False(t, cfg.IncludeDependencies)
	assert.Equal(t, []string{"custom-sheet"}, cfg.TargetSheets)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("TRACKER_ENVIRONMENT", "development")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Environment)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
