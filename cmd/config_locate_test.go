package cmd

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigLocateCmd_Success(t *testing.T) {
	mockProvider := new(MockConfigProvider)
	var out bytes.Buffer

	expectedPath := filepath.Join("home", "user", ".scoldme")
	mockProvider.On("EnsureConfigDir").Return(expectedPath, nil)

	err := configLocateRunE(mockProvider, &out)

	assert.NoError(t, err)
	assert.Contains(t, out.String(), "Configuration directory: "+expectedPath)
	assert.Contains(t, out.String(), filepath.Join(expectedPath, "config.yaml"))
	assert.Contains(t, out.String(), `service "scoldme"`)
	assert.Contains(t, out.String(), "$SCOLDME_LLM_API_KEY / $OPENAI_API_KEY")
	mockProvider.AssertExpectations(t)
}

func TestConfigLocateCmd_ProviderError(t *testing.T) {
	mockProvider := new(MockConfigProvider)
	var out bytes.Buffer

	expectedErr := errors.New("cannot create config dir")
	mockProvider.On("EnsureConfigDir").Return("", expectedErr)

	err := configLocateRunE(mockProvider, &out)

	assert.Error(t, err)
	assert.ErrorIs(t, err, expectedErr)
	assert.Contains(t, err.Error(), "error ensuring config directory:")
	assert.Empty(t, out.String())
	mockProvider.AssertExpectations(t)
}
