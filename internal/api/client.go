// Package api is the HTTP client for the AryaAI travel backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/pkg/errors"

	"github.com/dharmaretainer/AryaAI/internal/configuration"
)

// Client talks to the travel backend. The base URL is the single configured
// value; no component carries its own endpoint literal.
type Client struct {
	baseURL    string
	username   string
	password   string
	httpClient *http.Client
}

// NewClient instantiates a backend client from configuration.
func NewClient(config *configuration.Config) *Client {
	client := &Client{
		baseURL: strings.TrimSuffix(config.ServerURL, "/"),
		// No request timeout: a failed call surfaces immediately and is
		// terminal for that attempt; cancellation comes from the context.
		httpClient: &http.Client{},
	}
	if config.Admin != nil {
		client.username = config.Admin.Username
		client.password = config.Admin.Password
	}
	return client
}

// SetCredentials replaces the basic-auth credentials used by the admin reads.
func (c *Client) SetCredentials(username, password string) {
	c.username = username
	c.password = password
}

// PlanTrip submits a structured trip request and returns the assistant's reply.
func (c *Client) PlanTrip(ctx context.Context, request *TripRequest) (string, error) {
	return c.postChat(ctx, request)
}

// Prompt submits a free-text request and returns the assistant's reply.
func (c *Client) Prompt(ctx context.Context, prompt string) (string, error) {
	return c.postChat(ctx, &promptRequest{Prompt: prompt})
}

func (c *Client) postChat(ctx context.Context, payload any) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", errors.Wrap(err, "marshaling payload")
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat", bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "creating request")
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return "", errors.Wrap(err, "posting chat request")
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		return "", errors.Errorf("backend returned status %d", response.StatusCode)
	}

	chatResponse := &chatResponse{}
	if err := json.NewDecoder(response.Body).Decode(chatResponse); err != nil {
		return "", errors.Wrap(err, "decoding chat response")
	}
	return chatResponse.Response, nil
}

// Analytics fetches the backend's aggregate usage statistics.
func (c *Client) Analytics(ctx context.Context) (*AnalyticsSnapshot, error) {
	snapshot := &AnalyticsSnapshot{}
	if err := c.getAdmin(ctx, "/admin/analytics", snapshot); err != nil {
		return nil, err
	}
	return snapshot, nil
}

// Queries fetches the backend's query log, oldest first.
func (c *Client) Queries(ctx context.Context) ([]QueryRecord, error) {
	var records []QueryRecord
	if err := c.getAdmin(ctx, "/admin/queries", &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *Client) getAdmin(ctx context.Context, path string, out any) error {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return errors.Wrap(err, "creating request")
	}
	request.SetBasicAuth(c.username, c.password)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return errors.Wrapf(err, "fetching %s", path)
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		return errors.Errorf("backend returned status %d for %s", response.StatusCode, path)
	}

	if err := json.NewDecoder(response.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "decoding %s response", path)
	}
	return nil
}
