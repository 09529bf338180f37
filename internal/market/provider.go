// Copyright (c) 2026 StockSeer.AI. All rights reserved.
// Author: dev@stockseer.app

package market

import "context"

// # Provider Contract

// Provider defines the upstream market-data access contract.
//
// Implementations must return [apperr.NotFound] for unknown tickers and
// [apperr.Upstream] for provider outages, so the delivery layer can map
// them without inspecting transport details.
type Provider interface {

	/*
		FetchProfile returns the company profile for a ticker.

		Parameters:
		  - context: context.Context
		  - ticker: string (normalized, upper-case)

		Returns:
		  - *Profile: Decoded company profile
		  - error: apperr.NotFound, apperr.Upstream, or decode failures
	*/
	FetchProfile(context context.Context, ticker string) (*Profile, error)

	/*
		FetchQuote returns the latest price snapshot for a ticker.

		Parameters:
		  - context: context.Context
		  - ticker: string

		Returns:
		  - *Quote: Decoded price snapshot
		  - error: apperr.NotFound, apperr.Upstream, or decode failures
	*/
	FetchQuote(context context.Context, ticker string) (*Quote, error)

	/*
		FetchStatistics returns the fundamentals for a ticker.

		Parameters:
		  - context: context.Context
		  - ticker: string

		Returns:
		  - *KeyStatistics: Decoded fundamentals
		  - error: apperr.NotFound, apperr.Upstream, or decode failures
	*/
	FetchStatistics(context context.Context, ticker string) (*KeyStatistics, error)

	/*
		FetchAnalystCoverage returns sell-side coverage for a ticker.

		Parameters:
		  - context: context.Context
		  - ticker: string

		Returns:
		  - *AnalystCoverage: Decoded ratings and price targets
		  - error: apperr.NotFound, apperr.Upstream, or decode failures
	*/
	FetchAnalystCoverage(context context.Context, ticker string) (*AnalystCoverage, error)

	/*
		FetchNews returns recent headlines for a ticker.

		Parameters:
		  - context: context.Context
		  - ticker: string

		Returns:
		  - []NewsArticle: Decoded headlines, newest first
		  - error: apperr.NotFound, apperr.Upstream, or decode failures
	*/
	FetchNews(context context.Context, ticker string) ([]NewsArticle, error)
}
