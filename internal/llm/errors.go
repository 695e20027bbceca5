package llm

import "errors"

// Sentinel errors for LLM client operations.

// ErrLLMClientNil indicates the LLM client (e.g., OpenAI client) was nil when used.
var ErrLLMClientNil = errors.New("LLM client cannot be nil")

// ErrLLMPromptEmpty indicates the system or user prompt provided to the LLM was empty.
var ErrLLMPromptEmpty = errors.New("prompt cannot be empty")

// ErrLLMCompletion indicates an error occurred during the LLM API call (network error,
// non-2xx status, undecodable body). The underlying error from the SDK is wrapped.
var ErrLLMCompletion = errors.New("failed to create LLM completion")

// ErrLLMEmptyResponse indicates the LLM returned no choices or blank content.
var ErrLLMEmptyResponse = errors.New("received an empty response from LLM")

// ErrLLMInvalidOptions indicates sampling options the API would reject, such as a negative temperature.
var ErrLLMInvalidOptions = errors.New("invalid LLM options")
