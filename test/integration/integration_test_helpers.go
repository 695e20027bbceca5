//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	keyring "github.com/zalando/go-keyring"

	"github.com/karolswdev/scoldme/cmd"
	"github.com/karolswdev/scoldme/internal/config"
)

// chatCall is one chat completion request seen by the mock LLM server.
type chatCall struct {
	Model       string  `json:"model"`
	Temperature float32 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
	Messages    []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
	Authorization string `json:"-"`
}

// llmRecorder collects the requests received by the mock LLM server.
type llmRecorder struct {
	mu    sync.Mutex
	calls []chatCall
}

func (r *llmRecorder) Calls() []chatCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]chatCall, len(r.calls))
	copy(out, r.calls)
	return out
}

// mockLLMServer creates a mock HTTP server simulating the OpenAI chat completion API.
// status and content control the answer; a non-2xx status returns an OpenAI-style error body.
func mockLLMServer(t *testing.T, status int, content string) (*httptest.Server, *llmRecorder) {
	t.Helper()
	rec := &llmRecorder{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			http.NotFound(w, r)
			return
		}
		var call chatCall
		if err := json.NewDecoder(r.Body).Decode(&call); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		call.Authorization = r.Header.Get("Authorization")
		rec.mu.Lock()
		rec.calls = append(rec.calls, call)
		rec.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		if status != http.StatusOK {
			w.WriteHeader(status)
			fmt.Fprintf(w, `{"error":{"message":"simulated failure","type":"server_error"}}`)
			return
		}
		fmt.Fprintf(w, `{"id":"chatcmpl-test","object":"chat.completion","created":1,"model":%q,"choices":[{"index":0,"message":{"role":"assistant","content":%q},"finish_reason":"stop"}]}`,
			call.Model, content)
	}))
	t.Cleanup(server.Close)
	return server, rec
}

// setupTestEnvironment creates a temporary config directory whose config.yaml
// points the OpenAI client at llmURL, and provides the API key through the environment.
func setupTestEnvironment(t *testing.T, llmURL string) string {
	t.Helper()
	keyring.MockInit()

	tempDir := t.TempDir()
	configContent := fmt.Sprintf(`
server:
  addr: "127.0.0.1:0"
  allowed_origins:
    - "*"
llm:
  provider: "openai"
  openai:
    model_name: "test-model"
    base_url: "%s/v1"
    temperature: 0.9
    max_tokens: 300
`, llmURL)

	configPath := filepath.Join(tempDir, config.DefaultConfigFileName)
	if err := os.WriteFile(configPath, []byte(configContent), 0600); err != nil {
		t.Fatalf("Failed to write temp config file: %v", err)
	}

	t.Setenv(config.ConfigDirEnvVar, tempDir)
	t.Setenv(config.EnvAPIKeyName, "sk-integration-test")
	t.Setenv(config.EnvOpenAIKeyName, "")
	return tempDir
}

// executeScoldCommand runs the scold root command with given arguments in-process.
// It captures stdout and stderr. SCOLDME_CONFIG_DIR must be set before calling
// this function (e.g., by setupTestEnvironment).
func executeScoldCommand(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	originalLevel := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(originalLevel) })

	var outBuf, errBuf bytes.Buffer
	rootCmd := cmd.NewRootCmd()
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetArgs(append([]string{"--log-level", "error"}, args...))

	execErr := rootCmd.ExecuteContext(context.Background())
	return outBuf.String(), errBuf.String(), execErr
}
