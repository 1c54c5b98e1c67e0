package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func validConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stderr",
		},
		Console: ConsoleConfig{
			Prompt:     "> ",
			Color:      true,
			PresetsDir: "content/presets",
		},
	}
}

func TestValidConfig(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	err := os.WriteFile(path, []byte(`
logging:
  level: debug
  format: console
console:
  prompt: "calc> "
  color: false
  presets_dir: /tmp/presets
`), 0644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "stderr", cfg.Logging.Output, "unset keys fall back to defaults")
	assert.Equal(t, "calc> ", cfg.Console.Prompt)
	assert.False(t, cfg.Console.Color)
	assert.Equal(t, "/tmp/presets", cfg.Console.PresetsDir)
}

func TestLoadDevConfig_QuietInteractiveLogging(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "configs", "dev.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level, "debug lines would interleave with the console screen")
	assert.Equal(t, "stderr", cfg.Logging.Output)
	assert.Equal(t, "content/presets", cfg.Console.PresetsDir)
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: info\n"), 0644))
	t.Setenv("HITRATE_LOGGING_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadInvalidPath(t *testing.T) {
	_, err := Load("/nonexistent/path.yaml")
	assert.Error(t, err)
}

func TestLoadInvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: trace\n  format: xml\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
	assert.Contains(t, err.Error(), "logging.format", "all violations must be reported")
}

func TestDefault(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "> ", cfg.Console.Prompt)
	assert.True(t, cfg.Console.Color)
	assert.Equal(t, "content/presets", cfg.Console.PresetsDir)
}

func TestLoadFromViper(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("console.prompt", "? ")
	cfg, err := LoadFromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "? ", cfg.Console.Prompt)
}

func TestValidateLoggingLevel(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		cfg := validConfig()
		cfg.Logging.Level = level
		assert.NoError(t, cfg.Validate(), "level %q should be valid", level)
	}
	cfg := validConfig()
	cfg.Logging.Level = "trace"
	assert.Error(t, cfg.Validate())
}

func TestValidateLoggingFormat(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		cfg := validConfig()
		cfg.Logging.Format = format
		assert.NoError(t, cfg.Validate(), "format %q should be valid", format)
	}
	cfg := validConfig()
	cfg.Logging.Format = "xml"
	assert.Error(t, cfg.Validate())
}

func TestValidateLoggingOutputEmpty(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Output = ""
	assert.Error(t, cfg.Validate())
}

func TestValidateConsolePrompt(t *testing.T) {
	cfg := validConfig()
	cfg.Console.Prompt = ""
	assert.NoError(t, cfg.Validate(), "empty prompt is allowed")

	cfg.Console.Prompt = "line\nbreak"
	assert.Error(t, cfg.Validate())
}

func TestPropertyPromptWithoutBreaksIsValid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		prompt := rapid.StringMatching(`[a-z>:$# ]{0,12}`).Draw(t, "prompt")
		cfg := validConfig()
		cfg.Console.Prompt = prompt
		if err := cfg.Validate(); err != nil {
			t.Fatalf("prompt %q rejected: %v", prompt, err)
		}
	})
}
