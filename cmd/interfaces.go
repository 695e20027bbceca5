package cmd

import (
	"github.com/karolswdev/scoldme/internal/config"
)

// ConfigProvider defines an interface for components that load the scoldme
// configuration and API key, and manage the configuration directory and
// default files. This abstraction allows for easier testing by mocking
// configuration loading behavior.
type ConfigProvider interface {
	LoadConfig() (*config.AppConfig, error)
	GetAPIKey() (string, error)
	CreateDefaultConfigFiles() (string, error)
	EnsureConfigDir() (string, error)
}

// KeyringClient defines an interface for components that interact with the
// operating system's secure credential store (keychain/keyring). It abstracts
// the operations of setting and retrieving the LLM API key.
type KeyringClient interface {
	Set(service, user, password string) error
	GetAPIKey(service, user string) (string, error)
}
