package cmd

import "errors"

// ErrLLMUnavailable indicates no LLM client could be built, usually because the API key is missing.
var ErrLLMUnavailable = errors.New("LLM client is not available")

// ErrEmptyAPIKey indicates set-key was called with an empty key.
var ErrEmptyAPIKey = errors.New("API key cannot be empty")

// ErrUnsupportedOutput indicates an --output value the command cannot render.
var ErrUnsupportedOutput = errors.New("unsupported output format")

// ErrUnsupportedProvider indicates the configured llm.provider is unknown.
var ErrUnsupportedProvider = errors.New("unsupported LLM provider")
