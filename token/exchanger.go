// Package token exchanges authorization codes and client credentials for
// token bundles at the platform's token endpoint.
package token

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// ErrExchange is wrapped into every transport-level or non-2xx failure
// returned by Exchange.
var ErrExchange = errors.New("token exchange failed")

const defaultTimeout = 30 * time.Second

// Doer abstracts the HTTP client so tests and callers can substitute their
// own transport.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Exchanger performs a single token request per call. No retry, no backoff:
// a failed exchange is terminal for that invocation.
type Exchanger struct {
	client Doer
}

// ExchangerOption modifies an Exchanger instance.
type ExchangerOption func(*Exchanger)

// WithHTTPClient sets the HTTP client used for token requests.
func WithHTTPClient(client Doer) ExchangerOption {
	return func(e *Exchanger) {
		e.client = client
	}
}

// NewExchanger initializes an Exchanger with a default 30 second timeout
// client unless one is injected.
func NewExchanger(options ...ExchangerOption) *Exchanger {
	e := &Exchanger{
		client: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range options {
		opt(e)
	}
	return e
}

// Exchange POSTs the form-encoded body to the token endpoint and maps the
// JSON response into a Bundle. Non-2xx statuses and transport failures are
// returned as errors wrapping ErrExchange; a 2xx response missing fields
// yields a partially populated or empty bundle.
func (e *Exchanger) Exchange(ctx context.Context, url, body string) (*Bundle, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "[Exchange] building token request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExchange, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", ErrExchange, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d: %s", ErrExchange, resp.StatusCode, respBody)
	}

	var bundle Bundle
	if err := json.Unmarshal(respBody, &bundle); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %v", ErrExchange, err)
	}
	return &bundle, nil
}
