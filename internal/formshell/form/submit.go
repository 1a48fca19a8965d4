package form

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPSubmitter POSTs the collected form data as a JSON object mapping each
// field id to its value (absent fields serialize as null).
type HTTPSubmitter struct {
	Client *http.Client
}

// NewHTTPSubmitter builds a submitter. A zero timeout keeps the client
// default.
func NewHTTPSubmitter(timeout time.Duration) *HTTPSubmitter {
	return &HTTPSubmitter{Client: &http.Client{Timeout: timeout}}
}

// Submit delivers the payload. A non-2xx status is a failure; a 2xx body is
// parsed as JSON and returned verbatim (nil for an empty body).
func (s *HTTPSubmitter) Submit(ctx context.Context, endpoint string, data FormData) (any, error) {
	body, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encode submission: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("submission failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("submission failed: %s", resp.Status)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}
	return parsed, nil
}
