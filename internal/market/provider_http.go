// Copyright (c) 2026 StockSeer.AI. All rights reserved.
// Author: dev@stockseer.app

package market

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/stockseer/api/internal/platform/apperr"
)

// # HTTP Provider

// providerRequestTimeout bounds a single upstream call. Kept under the
// global request deadline so a slow provider degrades one panel, not the
// whole page.
const providerRequestTimeout = 10 * time.Second

// HTTPProvider implements [Provider] against a JSON market-data API.
//
// # Authentication
//
// The API key travels in the X-Api-Key header on every request; the base
// URL and key come from configuration and are never logged.
type HTTPProvider struct {
	baseURL string
	apiKey  string
	newsKey string
	client  *http.Client
}

// NewHTTPProvider constructs an [HTTPProvider] for the given endpoint.
//
// newsKey authenticates the news endpoint when the provider issues a
// separate key for it; pass an empty string to reuse apiKey.
func NewHTTPProvider(baseURL, apiKey, newsKey string) *HTTPProvider {
	if newsKey == "" {
		newsKey = apiKey
	}
	return &HTTPProvider{
		baseURL: baseURL,
		apiKey:  apiKey,
		newsKey: newsKey,
		client:  &http.Client{Timeout: providerRequestTimeout},
	}
}

// FetchProfile returns the company profile for a ticker.
func (provider *HTTPProvider) FetchProfile(context context.Context, ticker string) (*Profile, error) {
	profile := &Profile{}
	if err := provider.getJSON(context, "/v1/profile", ticker, profile); err != nil {
		return nil, err
	}
	profile.Ticker = ticker
	profile.decorate()
	return profile, nil
}

// FetchQuote returns the latest price snapshot for a ticker.
func (provider *HTTPProvider) FetchQuote(context context.Context, ticker string) (*Quote, error) {
	quote := &Quote{}
	if err := provider.getJSON(context, "/v1/quote", ticker, quote); err != nil {
		return nil, err
	}
	quote.Ticker = ticker
	quote.FetchedAt = time.Now()
	quote.decorate()
	return quote, nil
}

// FetchStatistics returns the fundamentals for a ticker.
func (provider *HTTPProvider) FetchStatistics(context context.Context, ticker string) (*KeyStatistics, error) {
	statistics := &KeyStatistics{}
	if err := provider.getJSON(context, "/v1/statistics", ticker, statistics); err != nil {
		return nil, err
	}
	statistics.Ticker = ticker
	statistics.decorate()
	return statistics, nil
}

// FetchAnalystCoverage returns sell-side coverage for a ticker.
func (provider *HTTPProvider) FetchAnalystCoverage(context context.Context, ticker string) (*AnalystCoverage, error) {
	coverage := &AnalystCoverage{}
	if err := provider.getJSON(context, "/v1/analysts", ticker, coverage); err != nil {
		return nil, err
	}
	coverage.Ticker = ticker
	return coverage, nil
}

// FetchNews returns recent headlines for a ticker.
func (provider *HTTPProvider) FetchNews(context context.Context, ticker string) ([]NewsArticle, error) {
	var payload struct {
		Articles []NewsArticle `json:"articles"`
	}
	if err := provider.fetchJSON(context, "/v1/news", ticker, provider.newsKey, &payload); err != nil {
		return nil, err
	}
	return payload.Articles, nil
}

// getJSON fetches with the provider's primary API key.
func (provider *HTTPProvider) getJSON(context context.Context, path, ticker string, target any) error {
	return provider.fetchJSON(context, path, ticker, provider.apiKey, target)
}

/*
fetchJSON performs an authenticated GET against the provider and decodes the
JSON response body into target.

Description: Central transport path for every fetch. Status mapping:
  - 404: apperr.NotFound (unknown ticker)
  - any other non-200: apperr.Upstream
  - transport failure: apperr.Upstream

Parameters:
  - context: context.Context
  - path: string (provider endpoint, e.g. "/v1/quote")
  - ticker: string (query parameter)
  - apiKey: string (X-Api-Key header value for this endpoint)
  - target: any (JSON decode destination)

Returns:
  - error: Mapped provider failures or decode errors
*/
func (provider *HTTPProvider) fetchJSON(context context.Context, path, ticker, apiKey string, target any) error {
	endpoint := fmt.Sprintf("%s%s?ticker=%s", provider.baseURL, path, url.QueryEscape(ticker))

	request, err := http.NewRequestWithContext(context, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("market_provider_build_request_failed: %w", err)
	}
	request.Header.Set("Accept", "application/json")
	request.Header.Set("X-Api-Key", apiKey)

	response, err := provider.client.Do(request)
	if err != nil {
		return apperr.Upstream(fmt.Errorf("market_provider_request_failed: %w", err))
	}
	defer func() { _ = response.Body.Close() }()

	switch {
	case response.StatusCode == http.StatusNotFound:
		return apperr.NotFound("Ticker not found")
	case response.StatusCode != http.StatusOK:
		// Drain a bounded slice of the body for the wrapped error; full bodies
		// from a misbehaving upstream can be huge.
		body, _ := io.ReadAll(io.LimitReader(response.Body, 512))
		return apperr.Upstream(fmt.Errorf("market_provider_status_%d: %s", response.StatusCode, string(body)))
	}

	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		return apperr.Upstream(fmt.Errorf("market_provider_decode_failed: %w", err))
	}

	return nil
}
