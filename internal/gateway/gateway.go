package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/DamirBesirovic/tradeflow/internal/logger"
	"github.com/DamirBesirovic/tradeflow/internal/model"
)

// User-facing messages for the outcomes the gateway surfaces itself.
// Wording matches the web client.
const (
	msgUnauthorized = "Nemate dozvolu za ovu akciju"
	msgForbidden    = "Pristup zabranjen"
	msgServerError  = "Greška na serveru"
)

// StatusError reports a non-2xx response. The raw body is kept so callers
// can show backend validation messages.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, e.Body)
}

// Gateway is the single outgoing-request pipeline. Every request picks up
// the stored bearer token when one is present; 401, 403 and 5xx responses
// additionally raise a user-facing notification before the error is handed
// back to the caller. The gateway never retries, never caches, never queues.
type Gateway struct {
	baseURL  string
	client   *http.Client
	creds    model.CredentialStore
	notifier model.Notifier
	logger   *logger.Logger
}

// New creates a Gateway for the given backend origin. A zero timeout
// disables the per-request deadline.
func New(baseURL string, timeout time.Duration, creds model.CredentialStore, notifier model.Notifier, logger *logger.Logger) *Gateway {
	return &Gateway{
		baseURL:  strings.TrimRight(baseURL, "/"),
		client:   &http.Client{Timeout: timeout},
		creds:    creds,
		notifier: notifier,
		logger:   logger,
	}
}

// Get issues a GET request and decodes the JSON response into out.
func (g *Gateway) Get(ctx context.Context, path string, query url.Values, out any) error {
	return g.Do(ctx, http.MethodGet, path, query, nil, out)
}

// Post issues a POST request with a JSON body.
func (g *Gateway) Post(ctx context.Context, path string, body, out any) error {
	return g.Do(ctx, http.MethodPost, path, nil, body, out)
}

// Put issues a PUT request with a JSON body.
func (g *Gateway) Put(ctx context.Context, path string, body, out any) error {
	return g.Do(ctx, http.MethodPut, path, nil, body, out)
}

// Delete issues a DELETE request.
func (g *Gateway) Delete(ctx context.Context, path string, out any) error {
	return g.Do(ctx, http.MethodDelete, path, nil, nil, out)
}

// Do dispatches one request. body is JSON-encoded when non-nil; the response
// body is decoded into out when out is non-nil and the response carries one.
// Non-2xx responses return a *StatusError.
func (g *Gateway) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	reqID := uuid.NewString()
	log := g.logger.With("request_id", reqID, "method", method, "path", path)

	target := g.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var payload io.Reader
	if body != nil {
		blob, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		payload = bytes.NewReader(blob)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, payload)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token, ok := g.creds.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		log.Error("request failed", "error", err)
		g.notifier.Error(msgServerError)
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	g.notifyStatus(resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Debug("request rejected", "status", resp.StatusCode)
		return &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response body: %w", err)
		}
	}

	log.Debug("request completed", "status", resp.StatusCode)
	return nil
}

// notifyStatus maps coarse response classes to notifications. Other
// statuses, 2xx and remaining 4xx included, stay silent: callers own their
// success and validation messaging.
func (g *Gateway) notifyStatus(status int) {
	switch {
	case status == http.StatusUnauthorized:
		g.notifier.Error(msgUnauthorized)
	case status == http.StatusForbidden:
		g.notifier.Error(msgForbidden)
	case status >= 500:
		g.notifier.Error(msgServerError)
	}
}
