package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	internal_errors "github.com/kebab-dev/kebab/shared/errors"
	"github.com/kebab-dev/kebab/shared/validation"
)

// APIClient struct handles all communication with the backend API.
type APIClient struct {
	BaseURL    string
	HttpClient *http.Client
}

// New creates a new client for interacting with the backend.
func New(baseURL string, timeout time.Duration) *APIClient {
	return &APIClient{
		BaseURL:    strings.TrimSuffix(baseURL, "/"),
		HttpClient: &http.Client{Timeout: timeout},
	}
}

// do is the single, unified helper for making API requests.
func (c *APIClient) do(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create API request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend unavailable: %w", err)
	}
	return resp, nil
}

// decodeError turns a non-2xx response into the error the backend described:
// validation issues stay *validation.Error, other messages keep their status code.
func decodeError(resp *http.Response) error {
	var body struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || len(body.Error) == 0 {
		return &internal_errors.ErrorWithStatusCode{Message: fmt.Sprintf("backend returned status %d", resp.StatusCode), StatusCode: resp.StatusCode}
	}

	var issues []validation.Issue
	if json.Unmarshal(body.Error, &issues) == nil && len(issues) > 0 {
		return &validation.Error{Issues: issues}
	}

	var message string
	if err := json.Unmarshal(body.Error, &message); err != nil {
		message = string(body.Error)
	}
	return &internal_errors.ErrorWithStatusCode{Message: message, StatusCode: resp.StatusCode}
}
