// Copyright (c) 2026 StockSeer.AI. All rights reserved.
// Author: dev@stockseer.app

package market

import (
	"context"
	"strings"

	"github.com/stockseer/api/internal/platform/apperr"
)

// # Service Layer

// Service orchestrates market data access for the delivery layer.
//
// It normalizes tickers and delegates to the injected [Provider], which in
// production is the [CachedProvider] over the [HTTPProvider].
type Service struct {
	provider Provider
}

// NewService constructs a market [Service].
func NewService(provider Provider) *Service {
	return &Service{provider: provider}
}

// normalizeTicker upper-cases and trims a ticker symbol. Exchange suffixes
// like ".NS" are preserved.
func normalizeTicker(ticker string) (string, error) {
	normalized := strings.ToUpper(strings.TrimSpace(ticker))
	if normalized == "" {
		return "", apperr.ValidationError("Ticker symbol is required")
	}
	return normalized, nil
}

/*
GetProfile returns the company profile for a ticker.

Parameters:
  - context: context.Context
  - ticker: string (case-insensitive)

Returns:
  - *Profile: Company profile with display decoration
  - error: Validation, not-found, or upstream failures
*/
func (service *Service) GetProfile(context context.Context, ticker string) (*Profile, error) {
	normalized, err := normalizeTicker(ticker)
	if err != nil {
		return nil, err
	}
	return service.provider.FetchProfile(context, normalized)
}

/*
GetQuote returns the latest price snapshot for a ticker.

Parameters:
  - context: context.Context
  - ticker: string

Returns:
  - *Quote: Price snapshot with display decoration
  - error: Validation, not-found, or upstream failures
*/
func (service *Service) GetQuote(context context.Context, ticker string) (*Quote, error) {
	normalized, err := normalizeTicker(ticker)
	if err != nil {
		return nil, err
	}
	return service.provider.FetchQuote(context, normalized)
}

/*
GetStatistics returns the fundamentals panel for a ticker.

Parameters:
  - context: context.Context
  - ticker: string

Returns:
  - *KeyStatistics: Fundamentals with display decoration
  - error: Validation, not-found, or upstream failures
*/
func (service *Service) GetStatistics(context context.Context, ticker string) (*KeyStatistics, error) {
	normalized, err := normalizeTicker(ticker)
	if err != nil {
		return nil, err
	}
	return service.provider.FetchStatistics(context, normalized)
}

/*
GetAnalystCoverage returns sell-side coverage for a ticker.

Parameters:
  - context: context.Context
  - ticker: string

Returns:
  - *AnalystCoverage: Ratings and price targets
  - error: Validation, not-found, or upstream failures
*/
func (service *Service) GetAnalystCoverage(context context.Context, ticker string) (*AnalystCoverage, error) {
	normalized, err := normalizeTicker(ticker)
	if err != nil {
		return nil, err
	}
	return service.provider.FetchAnalystCoverage(context, normalized)
}

/*
GetNews returns recent headlines for a ticker.

Parameters:
  - context: context.Context
  - ticker: string

Returns:
  - []NewsArticle: Headlines, newest first
  - error: Validation, not-found, or upstream failures
*/
func (service *Service) GetNews(context context.Context, ticker string) ([]NewsArticle, error) {
	normalized, err := normalizeTicker(ticker)
	if err != nil {
		return nil, err
	}
	return service.provider.FetchNews(context, normalized)
}

/*
ListMarkets returns the static market configurations.

Parameters: none beyond context; the configurations are compiled in.

Returns:
  - []Config: Supported markets in display order
*/
func (service *Service) ListMarkets(_ context.Context) []Config {
	return Configs()
}
