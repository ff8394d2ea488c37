// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across components.
package httputil

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// maxErrorBody bounds how much of a failed response body is kept for the
// error message.
const maxErrorBody = 512

// Doer is the subset of *http.Client used by GetJSON. Tests substitute a
// fake or an httptest server client.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// StatusError reports a response with a non-200 status.
type StatusError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("GET %s returned HTTP %d: %s", e.URL, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("GET %s returned HTTP %d", e.URL, e.StatusCode)
}

// GetJSON issues a single GET for rawURL and decodes the JSON body into v.
// The body must hold a single JSON value; anything after it is an error.
// Any status other than 200 is returned as a *StatusError. The request is
// not retried.
func GetJSON(ctx context.Context, client Doer, rawURL, userAgent string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{URL: rawURL, StatusCode: resp.StatusCode, Body: string(b)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response from %s: %w", rawURL, err)
	}
	// The body must be exactly one JSON value; trailing data is malformed.
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("parsing response from %s: %w", rawURL, err)
	}
	return nil
}
