// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across stages.
package httputil

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

// maxErrorBody bounds how much of an error response body is kept for
// the error message.
const maxErrorBody = 2048

// NewClient returns an HTTP client with an explicit request timeout.
// Batch runs make one blocking call per document; without a timeout a
// single stuck request stalls the whole run.
func NewClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &http.Client{Timeout: timeout}
}

// StatusError converts a non-2xx response into an error carrying the
// status and a bounded slice of the body. The body is consumed.
func StatusError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
}
