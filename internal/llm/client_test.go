package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewOpenAIClient tests the constructor for OpenAIClient.
func TestNewOpenAIClient(t *testing.T) {
	t.Run("Nil_OpenAI_Client", func(t *testing.T) {
		_, err := NewOpenAIClient(nil, Options{ModelName: "test-model"})
		require.Error(t, err, "Expected error when providing a nil openai.Client")
		assert.ErrorIs(t, err, ErrLLMClientNil)
	})

	t.Run("Zero_Options_Default", func(t *testing.T) {
		llmClient, err := NewOpenAIClient(openai.NewClient("dummy-key"), Options{})
		require.NoError(t, err)
		assert.Equal(t, DefaultModel, llmClient.opts.ModelName)
		assert.Equal(t, DefaultTemperature, llmClient.temperature)
		assert.Equal(t, DefaultMaxTokens, llmClient.opts.MaxTokens)
	})

	t.Run("Explicit_Zero_Temperature_Kept", func(t *testing.T) {
		llmClient, err := NewOpenAIClient(openai.NewClient("dummy-key"), Options{Temperature: Temperature(0)})
		require.NoError(t, err)
		assert.Zero(t, llmClient.temperature)
	})

	t.Run("Negative_Temperature", func(t *testing.T) {
		_, err := NewOpenAIClient(openai.NewClient("dummy-key"), Options{Temperature: Temperature(-0.1)})
		assert.ErrorIs(t, err, ErrLLMInvalidOptions)
	})

	t.Run("Valid_Input", func(t *testing.T) {
		dummyClient := openai.NewClient("dummy-key")
		opts := Options{ModelName: "custom-model", Temperature: Temperature(0.5), MaxTokens: 42}
		llmClient, err := NewOpenAIClient(dummyClient, opts)
		require.NoError(t, err)
		assert.Equal(t, opts, llmClient.opts)
		assert.InDelta(t, 0.5, llmClient.temperature, 0.0001)
		assert.Equal(t, dummyClient, llmClient.client)
	})
}

// TestOpenAIClient_Complete runs the client against a mock chat completion endpoint.
func TestOpenAIClient_Complete(t *testing.T) {
	testCases := []struct {
		name           string
		mockResponse   string
		mockStatusCode int
		expectError    error
		expected       string
	}{
		{
			name: "Successful_Completion",
			mockResponse: `{
				"id": "chatcmpl-123", "object": "chat.completion", "created": 1677652288, "model": "gpt-4o-mini",
				"choices": [{"index": 0, "message": {"role": "assistant", "content": "TEST_MESSAGE"}, "finish_reason": "stop"}],
				"usage": {"prompt_tokens": 50, "completion_tokens": 5, "total_tokens": 55}
			}`,
			mockStatusCode: http.StatusOK,
			expected:       "TEST_MESSAGE",
		},
		{
			name: "Multiline_Content_Trimmed",
			mockResponse: `{
				"id": "chatcmpl-124", "object": "chat.completion", "created": 1677652288, "model": "gpt-4o-mini",
				"choices": [{"index": 0, "message": {"role": "assistant", "content": "\n정신 차려\n→ 한 줄\n"}, "finish_reason": "stop"}]
			}`,
			mockStatusCode: http.StatusOK,
			expected:       "정신 차려\n→ 한 줄",
		},
		{
			name:           "API_Error_Response",
			mockResponse:   `{"error": {"message": "Invalid API key.", "type": "invalid_request_error", "code": "invalid_api_key"}}`,
			mockStatusCode: http.StatusUnauthorized,
			expectError:    ErrLLMCompletion,
		},
		{
			name:           "Server_Error_Response",
			mockResponse:   `upstream exploded`,
			mockStatusCode: http.StatusBadGateway,
			expectError:    ErrLLMCompletion,
		},
		{
			name:           "Malformed_JSON_Body",
			mockResponse:   `{"choices": [`,
			mockStatusCode: http.StatusOK,
			expectError:    ErrLLMCompletion,
		},
		{
			name: "Empty_Choices_In_Response",
			mockResponse: `{
				"id": "chatcmpl-456", "object": "chat.completion", "created": 1677652290, "model": "gpt-4o-mini", "choices": []
			}`,
			mockStatusCode: http.StatusOK,
			expectError:    ErrLLMEmptyResponse,
		},
		{
			name: "Blank_Content",
			mockResponse: `{
				"id": "chatcmpl-789", "object": "chat.completion", "created": 1677652299, "model": "gpt-4o-mini",
				"choices": [{"index": 0, "message": {"role": "assistant", "content": "   "}, "finish_reason": "length"}]
			}`,
			mockStatusCode: http.StatusOK,
			expectError:    ErrLLMEmptyResponse,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/v1/chat/completions" {
					http.Error(w, "Not Found", http.StatusNotFound)
					return
				}
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.mockStatusCode)
				fmt.Fprintln(w, tc.mockResponse)
			}))
			defer server.Close()

			llmClient, err := NewOpenAIClientWithKey("dummy-api-key", server.URL+"/v1", Options{ModelName: "test-model"})
			require.NoError(t, err)

			content, err := llmClient.Complete(context.Background(), "system", "user")
			if tc.expectError != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, content)
		})
	}
}

// TestOpenAIClient_Complete_RequestShape checks what goes over the wire.
func TestOpenAIClient_Complete_RequestShape(t *testing.T) {
	var captured openai.ChatCompletionRequest
	var authHeader string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"choices": [{"index": 0, "message": {"role": "assistant", "content": "ok"}}]}`)
	}))
	defer server.Close()

	llmClient, err := NewOpenAIClientWithKey("sk-test", server.URL+"/v1", Options{ModelName: "gpt-4o-mini", Temperature: Temperature(0.9), MaxTokens: 300})
	require.NoError(t, err)

	_, err = llmClient.Complete(context.Background(), "persona text", "situation text")
	require.NoError(t, err)

	assert.Equal(t, "Bearer sk-test", authHeader)
	assert.Equal(t, "gpt-4o-mini", captured.Model)
	assert.InDelta(t, 0.9, captured.Temperature, 0.0001)
	assert.Equal(t, 300, captured.MaxTokens)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, captured.Messages[0].Role)
	assert.Equal(t, "persona text", captured.Messages[0].Content)
	assert.Equal(t, openai.ChatMessageRoleUser, captured.Messages[1].Role)
	assert.Equal(t, "situation text", captured.Messages[1].Content)
}

// TestOpenAIClient_Complete_ZeroTemperature checks that a configured 0 reaches
// the API as a near-zero value instead of being omitted from the body.
func TestOpenAIClient_Complete_ZeroTemperature(t *testing.T) {
	var body map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"choices": [{"index": 0, "message": {"role": "assistant", "content": "ok"}}]}`)
	}))
	defer server.Close()

	llmClient, err := NewOpenAIClientWithKey("sk-test", server.URL+"/v1", Options{Temperature: Temperature(0)})
	require.NoError(t, err)

	_, err = llmClient.Complete(context.Background(), "persona text", "situation text")
	require.NoError(t, err)

	require.Contains(t, body, "temperature")
	assert.InDelta(t, 0, body["temperature"], 0.0001)
}

func TestOpenAIClient_Complete_EmptyPrompt(t *testing.T) {
	llmClient, err := NewOpenAIClient(openai.NewClient("dummy"), Options{})
	require.NoError(t, err)

	_, err = llmClient.Complete(context.Background(), "", "user")
	assert.ErrorIs(t, err, ErrLLMPromptEmpty)
	_, err = llmClient.Complete(context.Background(), "system", "")
	assert.ErrorIs(t, err, ErrLLMPromptEmpty)
}
