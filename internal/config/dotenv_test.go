package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvFile_Missing(t *testing.T) {
	assert.NoError(t, LoadEnvFile(filepath.Join(t.TempDir(), ".env")))
	assert.NoError(t, LoadEnvFile(""))
}

func TestLoadEnvFile_FeedsLoad(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("HITRATE_CONSOLE_PROMPT=env> \n"), 0644))
	t.Setenv("HITRATE_CONSOLE_PROMPT", "")
	require.NoError(t, os.Unsetenv("HITRATE_CONSOLE_PROMPT"))

	require.NoError(t, LoadEnvFile(envPath))

	cfgPath := filepath.Join(dir, "test.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("console:\n  prompt: \"file> \"\n"), 0644))
	cfg, err := Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "env>", cfg.Console.Prompt)
}

func TestLoadEnvFile_DoesNotOverrideSetVars(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("HITRATE_LOGGING_LEVEL=error\n"), 0644))
	t.Setenv("HITRATE_LOGGING_LEVEL", "warn")

	require.NoError(t, LoadEnvFile(envPath))
	assert.Equal(t, "warn", os.Getenv("HITRATE_LOGGING_LEVEL"))
}
