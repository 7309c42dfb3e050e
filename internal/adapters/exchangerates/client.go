// Package exchangerates implements the HTTP client for the external
// exchange-rate service.
package exchangerates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spendio/spendio_backend/internal/apperrors"
	"github.com/spendio/spendio_backend/internal/core/domain"
	portsclients "github.com/spendio/spendio_backend/internal/core/ports/clients"
)

const resultSuccess = "success"

// Client is a thin JSON client for the rate service. Caching happens a
// layer up in the rate service, never here.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a rate service client. baseURL is the service root
// without a trailing slash; the API key becomes a path segment as the
// service expects.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type latestRatesResponse struct {
	Result          string                 `json:"result"`
	ErrorType       string                 `json:"error-type"`
	BaseCode        string                 `json:"base_code"`
	ConversionRates map[string]json.Number `json:"conversion_rates"`
}

type supportedCodesResponse struct {
	Result         string      `json:"result"`
	ErrorType      string      `json:"error-type"`
	SupportedCodes [][2]string `json:"supported_codes"`
}

// LatestRates fetches the conversion rate table expressed relative to base.
func (c *Client) LatestRates(ctx context.Context, base string) (domain.RateTable, error) {
	var payload latestRatesResponse
	if err := c.getJSON(ctx, fmt.Sprintf("%s/%s/latest/%s", c.baseURL, c.apiKey, base), &payload); err != nil {
		return nil, err
	}
	if payload.Result != resultSuccess {
		return nil, fmt.Errorf("%w: service returned %q (%s)", apperrors.ErrRateFetch, payload.Result, payload.ErrorType)
	}

	table := make(domain.RateTable, len(payload.ConversionRates))
	for code, raw := range payload.ConversionRates {
		rate, err := decimal.NewFromString(raw.String())
		if err != nil {
			// One malformed entry should not poison the whole table.
			continue
		}
		table[code] = rate
	}
	return table, nil
}

// SupportedCurrencies fetches the supported-currency catalog.
func (c *Client) SupportedCurrencies(ctx context.Context) ([]domain.Currency, error) {
	var payload supportedCodesResponse
	if err := c.getJSON(ctx, fmt.Sprintf("%s/%s/codes", c.baseURL, c.apiKey), &payload); err != nil {
		return nil, err
	}
	if payload.Result != resultSuccess {
		return nil, fmt.Errorf("%w: service returned %q (%s)", apperrors.ErrRateFetch, payload.Result, payload.ErrorType)
	}

	currencies := make([]domain.Currency, 0, len(payload.SupportedCodes))
	for _, pair := range payload.SupportedCodes {
		currencies = append(currencies, domain.Currency{
			CurrencyCode: pair[0],
			Name:         pair[1],
		})
	}
	return currencies, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrRateFetch, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrRateFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: unexpected status %d", apperrors.ErrRateFetch, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", apperrors.ErrRateFetch, err)
	}
	return nil
}

var _ portsclients.RateSourceClient = (*Client)(nil)
