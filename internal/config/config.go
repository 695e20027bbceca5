package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/zalando/go-keyring"

	"github.com/spf13/viper"
)

const (
	// DefaultConfigFileName is the standard name for the main configuration file.
	DefaultConfigFileName = "config.yaml"
	// DefaultConfigDirName is the standard name for the configuration directory within the user's home directory.
	DefaultConfigDirName = ".scoldme"
	// ConfigDirEnvVar is the environment variable used to override the default configuration directory path.
	ConfigDirEnvVar = "SCOLDME_CONFIG_DIR"
	// EnvPrefix is the prefix viper uses for environment overrides (SCOLDME_SERVER_ADDR, ...).
	EnvPrefix = "SCOLDME"
)

// EnsureConfigDir checks if the configuration directory exists, creating it if necessary.
// It prioritizes baseDir if provided. If baseDir is empty, it checks the SCOLDME_CONFIG_DIR
// environment variable. If that is also empty, it defaults to ~/.scoldme.
// It returns the validated configuration directory path or an error if creation/validation fails.
func EnsureConfigDir(baseDir string) (string, error) {
	var configDirPath string

	if baseDir != "" {
		configDirPath = baseDir
		log.Debug().Str("path", configDirPath).Msg("Using provided base directory path")
	} else if envDir := os.Getenv(ConfigDirEnvVar); envDir != "" {
		configDirPath = envDir
		log.Debug().Str("path", configDirPath).Str("env_var", ConfigDirEnvVar).Msg("Using config directory path from environment variable")
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		configDirPath = filepath.Join(homeDir, DefaultConfigDirName)
		log.Debug().Str("path", configDirPath).Msg("Using default config directory path")
	}

	info, err := os.Stat(configDirPath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Info().Str("path", configDirPath).Msg("Config directory does not exist, attempting to create")
			if mkdirErr := os.MkdirAll(configDirPath, 0700); mkdirErr != nil {
				log.Error().Err(mkdirErr).Str("path", configDirPath).Msg("Failed to create config directory")
				return "", fmt.Errorf("%w: %w", ErrConfigDirCreate, mkdirErr)
			}
			log.Info().Str("path", configDirPath).Msg("Successfully created config directory")
			return configDirPath, nil
		}
		log.Error().Err(err).Str("path", configDirPath).Msg("Failed to stat config directory path")
		return "", fmt.Errorf("%w: %w", ErrConfigDirStat, err)
	}

	if !info.IsDir() {
		log.Error().Str("path", configDirPath).Msg("Config path exists but is not a directory")
		return "", ErrConfigDirNotDir
	}

	log.Debug().Str("path", configDirPath).Msg("Config directory exists and is a directory")
	return configDirPath, nil
}

// OpenAIConfig holds configuration specific to the OpenAI provider.
type OpenAIConfig struct {
	ModelName   string  `mapstructure:"model_name" json:"model_name" yaml:"model_name"`
	BaseURL     string  `mapstructure:"base_url" json:"base_url,omitempty" yaml:"base_url,omitempty"` // Optional custom base URL
	Temperature float32 `mapstructure:"temperature" json:"temperature" yaml:"temperature"`
	MaxTokens   int     `mapstructure:"max_tokens" json:"max_tokens" yaml:"max_tokens"`
	// APIKey is handled separately via keyring/env var (GetAPIKey)
}

// LLMConfig holds the provider selection and provider-specific settings.
type LLMConfig struct {
	Provider string       `mapstructure:"provider" json:"provider" yaml:"provider"`
	OpenAI   OpenAIConfig `mapstructure:"openai" json:"openai" yaml:"openai"`
}

// ServerConfig holds settings for `scold serve`.
type ServerConfig struct {
	Addr           string   `mapstructure:"addr" json:"addr" yaml:"addr"`
	AllowedOrigins []string `mapstructure:"allowed_origins" json:"allowed_origins" yaml:"allowed_origins"`
}

// ClientConfig holds settings for `scold ask`.
type ClientConfig struct {
	ServerURL string `mapstructure:"server_url" json:"server_url" yaml:"server_url"`
}

// AppConfig holds the overall application configuration.
type AppConfig struct {
	Server ServerConfig `mapstructure:"server" json:"server" yaml:"server"`
	Client ClientConfig `mapstructure:"client" json:"client" yaml:"client"`
	LLM    LLMConfig    `mapstructure:"llm" json:"llm" yaml:"llm"`
}

// LoadConfig loads the application configuration from the config file (~/.scoldme/config.yaml
// or baseDir/config.yaml), environment variables (SCOLDME_*), and defaults.
// If baseDir is empty, it uses the default directory.
func LoadConfig(baseDir string) (*AppConfig, error) {
	configDir, err := EnsureConfigDir(baseDir)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure config directory: %w", err)
	}

	v := viper.New()

	v.SetDefault("server.addr", ":3000")
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("client.server_url", "http://localhost:3000")
	v.SetDefault("llm.provider", "openai")
	v.SetDefault("llm.openai.model_name", "gpt-4o-mini")
	v.SetDefault("llm.openai.base_url", "")
	v.SetDefault("llm.openai.temperature", 0.9)
	v.SetDefault("llm.openai.max_tokens", 300)

	configPath := filepath.Join(configDir, DefaultConfigFileName)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)
	log.Debug().Str("path", configPath).Msg("Attempting to load config file")

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // llm.openai.model_name -> SCOLDME_LLM_OPENAI_MODEL_NAME

	err = v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			log.Warn().Str("path", configPath).Msg("Config file not found. Using defaults and environment variables.")
		} else {
			log.Error().Err(err).Str("path", configPath).Msg("Failed to read config file")
			return nil, fmt.Errorf("%w: %w", ErrConfigRead, err)
		}
	} else {
		log.Debug().Str("path", configPath).Msg("Read config file successfully")
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		log.Error().Err(err).Str("path", configPath).Msg("Failed to unmarshal config file")
		return nil, fmt.Errorf("%w: %w", ErrConfigParse, err)
	}
	log.Debug().Str("path", configPath).Interface("config", cfg).Msg("Unmarshalled config successfully")

	return &cfg, nil
}

// --- Default File Creation ---

const defaultConfigYAML = `# User-specific configuration for scoldme (scold)
# Located at ~/.scoldme/config.yaml

# Settings for 'scold serve'.
server:
  # Listen address for the web page and POST /api/scold.
  addr: ":3000"
  # Origins allowed to call the API from a browser.
  allowed_origins:
    - "*"

# Settings for 'scold ask'.
client:
  # Where a running 'scold serve' can be reached.
  server_url: "http://localhost:3000"

# Configuration for the Large Language Model (LLM) that writes the scoldings.
llm:
  provider: "openai"
  openai:
    model_name: "gpt-4o-mini"
    temperature: 0.9
    max_tokens: 300
    # Optional: custom base URL for an OpenAI-compatible API (e.g., a proxy)
    # base_url: ""

# The API key is not stored here. Use 'scold config set-key <key>'
# or set SCOLDME_LLM_API_KEY / OPENAI_API_KEY.
`

// writeFileIfNotExists checks if a file exists. If not, it writes the provided content.
func writeFileIfNotExists(filePath string, content string, perm os.FileMode) error {
	_, err := os.Stat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Info().Str("path", filePath).Msg("File does not exist, attempting to write default content")
			if errWrite := os.WriteFile(filePath, []byte(content), perm); errWrite != nil {
				log.Error().Err(errWrite).Str("path", filePath).Msg("Failed to write default file content")
				return fmt.Errorf("%w: %w", ErrDefaultFileWrite, errWrite)
			}
			log.Info().Str("path", filePath).Msg("Successfully wrote default file content")
			return nil
		}
		log.Error().Err(err).Str("path", filePath).Msg("Failed to stat file path")
		return fmt.Errorf("%w: %w", ErrDefaultFileStat, err)
	}
	log.Debug().Str("path", filePath).Msg("File already exists, no action needed")
	return nil
}

// CreateDefaultConfigFiles ensures the configuration directory exists and writes
// a default config.yaml into it if none is present. Existing files are left alone.
func CreateDefaultConfigFiles(baseDir string) (string, error) {
	configDir, err := EnsureConfigDir(baseDir)
	if err != nil {
		return "", fmt.Errorf("failed to ensure config directory: %w", err)
	}

	filePath := filepath.Join(configDir, DefaultConfigFileName)
	if err := writeFileIfNotExists(filePath, defaultConfigYAML, 0600); err != nil {
		return "", err
	}
	return configDir, nil
}

// --- API Key Handling ---

const (
	// KeyringServiceName is the OS keychain service the API key is stored under.
	KeyringServiceName = "scoldme"
	// KeyringUserName is the OS keychain account the API key is stored under.
	KeyringUserName = "openai_api_key"
	// EnvAPIKeyName is checked when the key is not in the OS keychain.
	EnvAPIKeyName = "SCOLDME_LLM_API_KEY"
	// EnvOpenAIKeyName is the conventional OpenAI variable, checked last.
	EnvOpenAIKeyName = "OPENAI_API_KEY"
)

// GetAPIKey retrieves the OpenAI API key.
// It first tries the OS keychain, then SCOLDME_LLM_API_KEY, then OPENAI_API_KEY.
// It returns ErrAPIKeyNotFound if none of them holds a key.
func GetAPIKey() (string, error) {
	log.Debug().Str("service", KeyringServiceName).Str("user", KeyringUserName).Msg("Attempting to get API key from keychain")
	key, err := keyring.Get(KeyringServiceName, KeyringUserName)
	if err == nil {
		log.Debug().Msg("API key retrieved successfully (from keychain)")
		return key, nil
	}

	if !errors.Is(err, keyring.ErrNotFound) {
		// Headless servers usually have no keychain at all; fall back to the environment.
		log.Warn().Err(err).Str("service", KeyringServiceName).Msg("Keychain unavailable, checking environment variables")
		if key := keyFromEnv(); key != "" {
			return key, nil
		}
		return "", fmt.Errorf("%w: %w", ErrKeyringGet, err)
	}

	log.Debug().Str("service", KeyringServiceName).Msg("API key not found in keychain, checking environment variables")
	if key := keyFromEnv(); key != "" {
		return key, nil
	}

	log.Error().Str("env_var", EnvAPIKeyName).Str("fallback_env_var", EnvOpenAIKeyName).Msg("API key not found in environment variables either.")
	return "", ErrAPIKeyNotFound
}

func keyFromEnv() string {
	for _, name := range []string{EnvAPIKeyName, EnvOpenAIKeyName} {
		if key := os.Getenv(name); key != "" {
			log.Debug().Str("env_var", name).Msg("API key retrieved successfully (from env var)")
			return key
		}
	}
	return ""
}

// SetAPIKey stores the OpenAI API key securely in the OS keychain/keyring.
func SetAPIKey(apiKey string) error {
	log.Debug().Str("service", KeyringServiceName).Str("user", KeyringUserName).Msg("Attempting to set API key in keychain")
	if err := keyring.Set(KeyringServiceName, KeyringUserName, apiKey); err != nil {
		log.Error().Err(err).Str("service", KeyringServiceName).Msg("Failed to set API key in keychain")
		return fmt.Errorf("%w: %w", ErrKeyringSet, err)
	}
	log.Info().Str("service", KeyringServiceName).Msg("API key stored successfully in keychain")
	return nil
}
