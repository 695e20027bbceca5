package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

func TestEnsureConfigDir(t *testing.T) {
	t.Run("DirectoryDoesNotExist", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "nested", "scoldme")

		returnedDir, err := EnsureConfigDir(target)
		require.NoError(t, err, "EnsureConfigDir should create a missing directory")
		require.DirExists(t, target)
		require.Equal(t, target, returnedDir)
	})

	t.Run("DirectoryAlreadyExists", func(t *testing.T) {
		tempDir := t.TempDir()

		returnedDir, err := EnsureConfigDir(tempDir)
		require.NoError(t, err)
		require.Equal(t, tempDir, returnedDir)
	})

	t.Run("PathIsAFile", func(t *testing.T) {
		filePath := filepath.Join(t.TempDir(), "not-a-dir")
		require.NoError(t, os.WriteFile(filePath, []byte("x"), 0600))

		_, err := EnsureConfigDir(filePath)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrConfigDirNotDir)
	})

	t.Run("EnvVarOverride", func(t *testing.T) {
		envDir := t.TempDir()
		t.Setenv(ConfigDirEnvVar, envDir)

		returnedDir, err := EnsureConfigDir("")
		require.NoError(t, err)
		assert.Equal(t, envDir, returnedDir)
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		tempDir := t.TempDir()
		validYAML := `
server:
  addr: ":8088"
  allowed_origins:
    - "https://scold.example.com"
client:
  server_url: "http://scold.internal:8088"
llm:
  provider: "openai"
  openai:
    model_name: "gpt-4o"
    base_url: "http://proxy.local/v1"
    temperature: 0.7
    max_tokens: 200
`
		require.NoError(t, os.WriteFile(filepath.Join(tempDir, DefaultConfigFileName), []byte(validYAML), 0644))

		cfg, err := LoadConfig(tempDir)
		require.NoError(t, err)
		require.NotNil(t, cfg)
		assert.Equal(t, ":8088", cfg.Server.Addr)
		assert.Equal(t, []string{"https://scold.example.com"}, cfg.Server.AllowedOrigins)
		assert.Equal(t, "http://scold.internal:8088", cfg.Client.ServerURL)
		assert.Equal(t, "openai", cfg.LLM.Provider)
		assert.Equal(t, "gpt-4o", cfg.LLM.OpenAI.ModelName)
		assert.Equal(t, "http://proxy.local/v1", cfg.LLM.OpenAI.BaseURL)
		assert.InDelta(t, 0.7, cfg.LLM.OpenAI.Temperature, 0.0001)
		assert.Equal(t, 200, cfg.LLM.OpenAI.MaxTokens)
	})

	t.Run("FileNotFound", func(t *testing.T) {
		cfg, err := LoadConfig(t.TempDir())
		require.NoError(t, err, "LoadConfig should fall back to defaults when the file is missing")
		require.NotNil(t, cfg)
		assert.Equal(t, ":3000", cfg.Server.Addr)
		assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
		assert.Equal(t, "http://localhost:3000", cfg.Client.ServerURL)
		assert.Equal(t, "openai", cfg.LLM.Provider)
		assert.Equal(t, "gpt-4o-mini", cfg.LLM.OpenAI.ModelName)
		assert.InDelta(t, 0.9, cfg.LLM.OpenAI.Temperature, 0.0001)
		assert.Equal(t, 300, cfg.LLM.OpenAI.MaxTokens)
	})

	t.Run("EnvOverride", func(t *testing.T) {
		t.Setenv("SCOLDME_SERVER_ADDR", ":9999")
		t.Setenv("SCOLDME_LLM_OPENAI_MODEL_NAME", "gpt-4.1-mini")

		cfg, err := LoadConfig(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, ":9999", cfg.Server.Addr)
		assert.Equal(t, "gpt-4.1-mini", cfg.LLM.OpenAI.ModelName)
	})

	t.Run("InvalidYAML", func(t *testing.T) {
		tempDir := t.TempDir()
		invalidYAML := `llm: provider: "openai"`
		require.NoError(t, os.WriteFile(filepath.Join(tempDir, DefaultConfigFileName), []byte(invalidYAML), 0644))

		_, err := LoadConfig(tempDir)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrConfigRead)
	})
}

func TestCreateDefaultConfigFiles(t *testing.T) {
	t.Run("CreateDefaults", func(t *testing.T) {
		tempDir := t.TempDir()

		dir, err := CreateDefaultConfigFiles(tempDir)
		require.NoError(t, err)
		assert.Equal(t, tempDir, dir)

		configPath := filepath.Join(tempDir, DefaultConfigFileName)
		require.FileExists(t, configPath)

		// The written defaults must load back to the built-in defaults.
		cfg, err := LoadConfig(tempDir)
		require.NoError(t, err)
		assert.Equal(t, ":3000", cfg.Server.Addr)
		assert.Equal(t, "gpt-4o-mini", cfg.LLM.OpenAI.ModelName)
	})

	t.Run("ExistingFileUntouched", func(t *testing.T) {
		tempDir := t.TempDir()
		configPath := filepath.Join(tempDir, DefaultConfigFileName)
		custom := "server:\n  addr: \":1234\"\n"
		require.NoError(t, os.WriteFile(configPath, []byte(custom), 0600))

		_, err := CreateDefaultConfigFiles(tempDir)
		require.NoError(t, err)

		content, err := os.ReadFile(configPath)
		require.NoError(t, err)
		assert.Equal(t, custom, string(content))
	})
}

func TestGetAPIKey(t *testing.T) {
	t.Run("FromKeychain", func(t *testing.T) {
		keyring.MockInit()
		t.Setenv(EnvAPIKeyName, "")
		t.Setenv(EnvOpenAIKeyName, "")
		require.NoError(t, SetAPIKey("sk-keychain"))

		key, err := GetAPIKey()
		require.NoError(t, err)
		assert.Equal(t, "sk-keychain", key)
	})

	t.Run("FromScoldmeEnv", func(t *testing.T) {
		keyring.MockInit()
		t.Setenv(EnvAPIKeyName, "sk-scoldme")
		t.Setenv(EnvOpenAIKeyName, "sk-openai")

		key, err := GetAPIKey()
		require.NoError(t, err)
		assert.Equal(t, "sk-scoldme", key, "SCOLDME_LLM_API_KEY takes precedence over OPENAI_API_KEY")
	})

	t.Run("FromOpenAIEnv", func(t *testing.T) {
		keyring.MockInit()
		t.Setenv(EnvAPIKeyName, "")
		t.Setenv(EnvOpenAIKeyName, "sk-openai")

		key, err := GetAPIKey()
		require.NoError(t, err)
		assert.Equal(t, "sk-openai", key)
	})

	t.Run("NotFound", func(t *testing.T) {
		keyring.MockInit()
		t.Setenv(EnvAPIKeyName, "")
		t.Setenv(EnvOpenAIKeyName, "")

		_, err := GetAPIKey()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrAPIKeyNotFound)
	})
}
