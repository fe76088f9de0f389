package rateproviders

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/SscSPs/remittance_pricing/internal/apperrors"
	"github.com/SscSPs/remittance_pricing/internal/metrics"
)

// Options configures a single HTTP rate provider.
type Options struct {
	BaseURL string
	APIKey  string
	// Timeout of the underlying HTTP client, 0 means no client timeout.
	Timeout time.Duration
	Metrics *metrics.PricingMetrics
	// HTTPClient overrides the default client (tests).
	HTTPClient *http.Client
}

// httpProvider holds what all HTTP adapters share.
type httpProvider struct {
	name    string
	baseURL string
	apiKey  string
	client  *http.Client
	metrics *metrics.PricingMetrics
}

func newHTTPProvider(name string, opts Options) httpProvider {
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}
	return httpProvider{
		name:    name,
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		apiKey:  opts.APIKey,
		client:  client,
		metrics: opts.Metrics,
	}
}

// observe records the outcome of one FetchRate call. Answers that decode but
// carry no usable rate count as failures.
func (p httpProvider) observe(started time.Time, err error) {
	p.metrics.ObserveProviderCall(p.name, started, err)
}

// Name returns the registry key of the provider.
func (p httpProvider) Name() string {
	return p.name
}

// getJSON performs a GET on path and decodes the body into result.
// Transport errors, non-2xx statuses, empty bodies and undecodable bodies all
// wrap apperrors.ErrProviderUnavailable.
func (p httpProvider) getJSON(ctx context.Context, path string, query url.Values, headers map[string]string, result interface{}) error {
	endpoint := p.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: %s: failed to create request: %v", apperrors.ErrProviderUnavailable, p.name, err)
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: failed to make request: %v", apperrors.ErrProviderUnavailable, p.name, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			slog.Default().Warn("Error closing provider response body", "provider", p.name, "error", cerr)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %s: failed to read response body: %v", apperrors.ErrProviderUnavailable, p.name, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %s: status %d", apperrors.ErrProviderUnavailable, p.name, resp.StatusCode)
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return fmt.Errorf("%w: %s: empty response body", apperrors.ErrProviderUnavailable, p.name)
	}

	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("%w: %s: failed to unmarshal response: %v", apperrors.ErrProviderUnavailable, p.name, err)
	}
	return nil
}

func missingQuote(provider, source, quote string) error {
	return fmt.Errorf("%w: %s: no %s quote for %s", apperrors.ErrProviderUnavailable, provider, quote, source)
}

func unsuccessful(provider string) error {
	return fmt.Errorf("%w: %s: provider reported an unsuccessful response", apperrors.ErrProviderUnavailable, provider)
}
