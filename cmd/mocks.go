package cmd

// This file contains mock implementations used across different test files
// within the cmd package, but which need to be accessible from outside
// _test.go files (e.g., for integration tests).

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockLLMClient is a mock implementation of the llm.Client interface.
// Exported for use in integration tests.
type MockLLMClient struct {
	mock.Mock
}

// Complete matches llm.Client interface
func (m *MockLLMClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	args := m.Called(ctx, systemPrompt, userPrompt)
	return args.String(0), args.Error(1)
}
