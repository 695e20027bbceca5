package cmd

import (
	"fmt"

	keyring "github.com/zalando/go-keyring"

	"github.com/karolswdev/scoldme/internal/config"
	"github.com/karolswdev/scoldme/internal/llm"
)

// --- Concrete Implementations of Shared Interfaces ---

// DefaultConfigProvider implements the ConfigProvider interface using the actual config package functions.
// BaseDir is the --config-dir value; empty means $SCOLDME_CONFIG_DIR or ~/.scoldme.
type DefaultConfigProvider struct {
	BaseDir string
}

func (p *DefaultConfigProvider) LoadConfig() (*config.AppConfig, error) {
	return config.LoadConfig(p.BaseDir)
}

func (p *DefaultConfigProvider) GetAPIKey() (string, error) {
	return config.GetAPIKey()
}

// CreateDefaultConfigFiles writes the default config.yaml if missing and returns the directory used.
func (p *DefaultConfigProvider) CreateDefaultConfigFiles() (string, error) {
	return config.CreateDefaultConfigFiles(p.BaseDir)
}

// EnsureConfigDir calls the underlying config function to ensure the config directory exists.
func (p *DefaultConfigProvider) EnsureConfigDir() (string, error) {
	return config.EnsureConfigDir(p.BaseDir)
}

// --- Keyring Client Implementation ---

// defaultKeyringClient implements the KeyringClient interface using the actual keyring package.
type defaultKeyringClient struct{}

// Set calls the underlying keyring package's Set function.
func (k *defaultKeyringClient) Set(service, user, password string) error {
	return keyring.Set(service, user, password)
}

// GetAPIKey resolves the key the same way the server does (keychain, then environment).
// The service and user parameters are fixed by the config package.
func (k *defaultKeyringClient) GetAPIKey(service, user string) (string, error) {
	return config.GetAPIKey()
}

// --- Central Provider ---

// Provider serves as a central dependency injection container, aggregating the
// service interfaces required by the application's commands. This structure
// simplifies passing dependencies down the call stack and facilitates mocking
// during testing.
type Provider struct {
	Config  ConfigProvider
	Keyring KeyringClient
	LLM     llm.Client // nil when the API key could not be resolved
}

// GetProvider loads the configuration from configDir and wires the concrete
// services. A missing API key is not an error here: LLM stays nil and the
// commands that need it fail with ErrLLMUnavailable.
func GetProvider(configDir string) (*Provider, error) {
	cfgProvider := &DefaultConfigProvider{BaseDir: configDir}
	appCfg, err := cfgProvider.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load application config: %w", err)
	}

	llmClient, err := newLLMClient(cfgProvider, appCfg)
	if err != nil {
		Log.Warn().Err(err).Msg("LLM client not initialized. Scolding requests will fail until this is fixed.")
	}

	provider := &Provider{
		Config:  cfgProvider,
		Keyring: &defaultKeyringClient{},
		LLM:     llmClient,
	}

	Log.Debug().Msg("Service Provider initialized successfully.")
	return provider, nil
}

// newLLMClient builds the configured LLM client. The API key is read exactly once, here.
func newLLMClient(cfgProvider ConfigProvider, appCfg *config.AppConfig) (llm.Client, error) {
	switch appCfg.LLM.Provider {
	case "openai":
		apiKey, err := cfgProvider.GetAPIKey()
		if err != nil {
			return nil, err
		}
		Log.Debug().Str("provider", "openai").Str("model", appCfg.LLM.OpenAI.ModelName).Msg("Initializing OpenAI LLM client")
		client, err := llm.NewOpenAIClientWithKey(apiKey, appCfg.LLM.OpenAI.BaseURL, llm.Options{
			ModelName:   appCfg.LLM.OpenAI.ModelName,
			Temperature: llm.Temperature(appCfg.LLM.OpenAI.Temperature),
			MaxTokens:   appCfg.LLM.OpenAI.MaxTokens,
		})
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedProvider, appCfg.LLM.Provider)
	}
}
