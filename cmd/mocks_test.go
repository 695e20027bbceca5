package cmd

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/karolswdev/scoldme/internal/config"
	"github.com/karolswdev/scoldme/internal/scold"
)

// --- Mock ConfigProvider ---

type MockConfigProvider struct {
	mock.Mock
}

// LoadConfig matches ConfigProvider interface
func (m *MockConfigProvider) LoadConfig() (*config.AppConfig, error) {
	args := m.Called()
	cfg, _ := args.Get(0).(*config.AppConfig)
	return cfg, args.Error(1)
}

// GetAPIKey matches ConfigProvider interface
func (m *MockConfigProvider) GetAPIKey() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

// CreateDefaultConfigFiles matches ConfigProvider interface
func (m *MockConfigProvider) CreateDefaultConfigFiles() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

// EnsureConfigDir matches ConfigProvider interface
func (m *MockConfigProvider) EnsureConfigDir() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

// --- Mock KeyringClient ---

type MockKeyringClient struct {
	mock.Mock
}

// Set matches KeyringClient interface
func (m *MockKeyringClient) Set(service, user, password string) error {
	args := m.Called(service, user, password)
	return args.Error(0)
}

// GetAPIKey matches KeyringClient interface
func (m *MockKeyringClient) GetAPIKey(service, user string) (string, error) {
	args := m.Called(service, user)
	return args.String(0), args.Error(1)
}

// --- Mock Sender (ui.Sender) ---

type MockSender struct {
	mock.Mock
}

// Scold matches ui.Sender interface
func (m *MockSender) Scold(ctx context.Context, req scold.Request) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}
