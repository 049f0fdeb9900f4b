package usage

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const endpoint = "https://api.anthropic.com/api/oauth/usage"

var httpClient = &http.Client{Timeout: 5 * time.Second}

// HTTPError is a non-2xx response from the usage endpoint.
type HTTPError struct {
	Code int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("usage endpoint returned HTTP %d", e.Code)
}

// Fetch performs a single authenticated GET against the usage endpoint.
// No retries: a flaky fetch must not stall the host's prompt render.
func Fetch(token string) (*Snapshot, error) {
	return fetch(endpoint, token)
}

func fetch(url, token string) (*Snapshot, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("anthropic-beta", "oauth-2025-04-20")
	req.Header.Set("Accept", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPError{Code: resp.StatusCode}
	}

	var snap Snapshot
	if err := json.Unmarshal(body, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return &snap, nil
}
