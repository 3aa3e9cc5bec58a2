package app

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := NewConfig(Config{})
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.Root)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.False(t, cfg.FailFast)
	assert.Equal(t, filepath.Join("data", "alchemy_recipe_table.json"), cfg.Table())
	assert.Equal(t, filepath.Join("resources", "recipes"), cfg.Output())
}

func TestNewConfigPaths(t *testing.T) {
	t.Parallel()
	abs := filepath.Join(t.TempDir(), "out")
	cfg, err := NewConfig(Config{Root: "/game", TablePath: "tables/main.hcl", OutDir: abs})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("/game", "tables", "main.hcl"), cfg.Table())
	assert.Equal(t, abs, cfg.Output())
}

func TestNewConfigValidation(t *testing.T) {
	t.Parallel()
	_, err := NewConfig(Config{LogFormat: "xml"})
	require.ErrorContains(t, err, "log-format")

	_, err = NewConfig(Config{LogLevel: "trace"})
	require.ErrorContains(t, err, "log-level")
}
