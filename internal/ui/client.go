package ui

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/rs/zerolog/log"

	"github.com/karolswdev/scoldme/internal/scold"
)

// Client talks to a running scold server's POST /api/scold.
type Client struct {
	BaseURL    *url.URL
	HTTPClient *http.Client
}

// NewClient parses serverURL and sets up a client using the transport defaults.
// No timeout is set: a request runs until the server answers or fails.
func NewClient(serverURL string) (*Client, error) {
	if serverURL == "" {
		return nil, ErrServerURLMissing
	}
	baseURL, err := url.Parse(serverURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrServerURLParse, err)
	}
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{},
	}, nil
}

// Scold sends req and returns the generated message.
// A non-200 answer is returned as ErrServerError carrying the server's error text.
func (c *Client) Scold(ctx context.Context, req scold.Request) (string, error) {
	jsonData, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRequestMarshal, err)
	}

	endpointURL := c.BaseURL.ResolveReference(&url.URL{Path: "/api/scold"})

	log.Debug().RawJSON("request_body", jsonData).Str("url", endpointURL.String()).Msg("Sending scold request")
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpointURL.String(), bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRequestCreate, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRequestExecute, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrResponseDecode, err)
	}
	log.Debug().Int("status_code", resp.StatusCode).Str("request_id", resp.Header.Get("X-Request-Id")).Msg("Received scold response")

	var out scold.Response
	decodeErr := json.Unmarshal(body, &out)

	if resp.StatusCode != http.StatusOK {
		if decodeErr == nil && out.Error != "" {
			return "", fmt.Errorf("%w: %s (status %d)", ErrServerError, out.Error, resp.StatusCode)
		}
		return "", fmt.Errorf("%w (status %d)", ErrServerErrorUnparseable, resp.StatusCode)
	}
	if decodeErr != nil {
		return "", fmt.Errorf("%w: %w", ErrResponseDecode, decodeErr)
	}
	return out.Message, nil
}
