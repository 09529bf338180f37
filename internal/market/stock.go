// Copyright (c) 2026 StockSeer.AI. All rights reserved.
// Author: dev@stockseer.app

/*
Package market implements the stock market data layer of the platform.

It fetches company profiles, quotes, key statistics, analyst coverage, and
news from an upstream market-data provider over HTTP, and serves them
through a Redis read-through cache so that hot tickers do not hammer the
(rate-limited, paid) upstream.

# Architecture

  - Entities: Provider payloads decoded defensively; any field the upstream
    may omit is a pointer, and display strings render nil as "N/A".
  - Provider: Abstracted interface with an HTTP implementation.
  - Cache: Read-through decorator over any Provider; cache failures degrade
    to upstream fetches, never to request failures.
*/
package market

import (
	"time"

	"github.com/stockseer/api/pkg/format"
	"github.com/stockseer/api/pkg/pointer"
)

// # Domain Entities

// Profile describes a listed company.
type Profile struct {
	Ticker           string    `json:"ticker"`
	Name             string    `json:"name"`
	Summary          string    `json:"summary"`
	Sector           string    `json:"sector"`
	Industry         string    `json:"industry"`
	Exchange         string    `json:"exchange"`
	Currency         string    `json:"currency"`
	Website          string    `json:"website,omitempty"`
	MarketCap        *float64  `json:"market_cap"`
	MarketCapDisplay string    `json:"market_cap_display"`
	Officers         []Officer `json:"officers,omitempty"`
}

// Officer is a senior executive listed on the company profile.
type Officer struct {
	Name     string   `json:"name"`
	Title    string   `json:"title"`
	TotalPay *float64 `json:"total_pay,omitempty"`
}

// Quote is a point-in-time price snapshot.
type Quote struct {
	Ticker        string   `json:"ticker"`
	Currency      string   `json:"currency"`
	Price         *float64 `json:"price"`
	PriceDisplay  string   `json:"price_display"`
	PreviousClose *float64 `json:"previous_close"`
	Change        *float64 `json:"change"`
	ChangePercent *float64 `json:"change_percent"` // Fraction, e.g. 0.0134 for +1.34%.
	ChangeDisplay string   `json:"change_display"`
	Volume        *int64   `json:"volume"`
	FetchedAt     time.Time `json:"fetched_at"`
}

// KeyStatistics carries the fundamentals panel figures.
type KeyStatistics struct {
	Ticker           string   `json:"ticker"`
	Currency         string   `json:"currency"`
	FiftyTwoWeekHigh *float64 `json:"fifty_two_week_high"`
	FiftyTwoWeekLow  *float64 `json:"fifty_two_week_low"`
	AverageVolume    *float64 `json:"average_volume"`
	TrailingPE       *float64 `json:"trailing_pe"`
	ForwardPE        *float64 `json:"forward_pe"`
	Beta             *float64 `json:"beta"`
	DividendRate     *float64 `json:"dividend_rate"`
	DividendYield    *float64 `json:"dividend_yield"` // Fraction.
	PayoutRatio      *float64 `json:"payout_ratio"`   // Fraction.

	// Display carries the pre-rendered panel strings.
	Display StatisticsDisplay `json:"display"`
}

// StatisticsDisplay is the human-readable rendering of [KeyStatistics].
type StatisticsDisplay struct {
	FiftyTwoWeekHigh string `json:"fifty_two_week_high"`
	FiftyTwoWeekLow  string `json:"fifty_two_week_low"`
	AverageVolume    string `json:"average_volume"`
	TrailingPE       string `json:"trailing_pe"`
	ForwardPE        string `json:"forward_pe"`
	Beta             string `json:"beta"`
	DividendRate     string `json:"dividend_rate"`
	DividendYield    string `json:"dividend_yield"`
	PayoutRatio      string `json:"payout_ratio"`
}

// AnalystCoverage aggregates sell-side research on a ticker.
type AnalystCoverage struct {
	Ticker            string                  `json:"ticker"`
	Currency          string                  `json:"currency"`
	RecommendationKey string                  `json:"recommendation_key"` // e.g. "buy", "hold".
	NumberOfAnalysts  *int64                  `json:"number_of_analysts"`
	PriceTarget       PriceTarget             `json:"price_target"`
	Recommendations   []AnalystRecommendation `json:"recommendations,omitempty"`
}

// PriceTarget is the analyst consensus price range.
type PriceTarget struct {
	Low     *float64 `json:"low"`
	Mean    *float64 `json:"mean"`
	High    *float64 `json:"high"`
	Current *float64 `json:"current"`
}

// AnalystRecommendation is a single research-firm rating action.
type AnalystRecommendation struct {
	Firm      string    `json:"firm"`
	ToGrade   string    `json:"to_grade"`
	FromGrade string    `json:"from_grade,omitempty"`
	Action    string    `json:"action,omitempty"`
	Date      time.Time `json:"date"`
}

// NewsArticle is a single headline for a ticker.
type NewsArticle struct {
	Title       string    `json:"title"`
	Publisher   string    `json:"publisher"`
	Link        string    `json:"link"`
	Summary     string    `json:"summary,omitempty"`
	PublishedAt time.Time `json:"published_at"`
}

// # Display Decoration

// decorate fills the market-cap display string. Empty defaults mirror what
// the upstream omits.
func (profile *Profile) decorate() {
	if profile.MarketCap == nil {
		profile.MarketCapDisplay = format.NotAvailable
		return
	}
	profile.MarketCapDisplay = format.CurrencySymbol(profile.Currency) + format.LargeNumber(profile.MarketCap)
}

// decorate fills the price and change display strings.
func (quote *Quote) decorate() {
	quote.PriceDisplay = format.Money(quote.Price, quote.Currency)
	if quote.Change == nil || quote.ChangePercent == nil {
		quote.ChangeDisplay = format.NotAvailable
		return
	}
	sign := ""
	if pointer.Val(quote.Change) > 0 {
		sign = "+"
	}
	quote.ChangeDisplay = sign + format.Ratio(quote.Change) + " (" + sign + format.Percent(quote.ChangePercent) + ")"
}

// decorate fills the fundamentals panel strings.
func (statistics *KeyStatistics) decorate() {
	statistics.Display = StatisticsDisplay{
		FiftyTwoWeekHigh: format.Money(statistics.FiftyTwoWeekHigh, statistics.Currency),
		FiftyTwoWeekLow:  format.Money(statistics.FiftyTwoWeekLow, statistics.Currency),
		AverageVolume:    format.LargeNumber(statistics.AverageVolume),
		TrailingPE:       format.Ratio(statistics.TrailingPE),
		ForwardPE:        format.Ratio(statistics.ForwardPE),
		Beta:             format.Ratio(statistics.Beta),
		DividendRate:     format.Money(statistics.DividendRate, statistics.Currency),
		DividendYield:    format.Percent(statistics.DividendYield),
		PayoutRatio:      format.Percent(statistics.PayoutRatio),
	}
}
