package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"rosterfill/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "utf-8-sig,utf-8,gbk,gb18030,latin-1", cfg.Files.Encodings)
	assert.Equal(t, ",", cfg.Files.Delimiter)
	assert.Equal(t, "xlsx", cfg.Files.Format)
	assert.Equal(t, "_filled", cfg.Files.Suffix)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("FILES_FORMAT", "csv")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "csv", cfg.Files.Format)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfig_EnvFileOverload(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, ".env"),
		[]byte("FILES_SUFFIX=_done\nFILES_DELIMITER=;\n"),
		0o644,
	))
	// godotenv writes into the process environment; clean up after.
	defer os.Unsetenv("FILES_SUFFIX")
	defer os.Unsetenv("FILES_DELIMITER")

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "_done", cfg.Files.Suffix)
	assert.Equal(t, ";", cfg.Files.Delimiter)
}
