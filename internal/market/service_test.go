// Copyright (c) 2026 StockSeer.AI. All rights reserved.
// Author: dev@stockseer.app

package market

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockseer/api/internal/platform/apperr"
	"github.com/stockseer/api/pkg/pointer"
)

// # Fakes

// fakeProvider records the tickers it was asked for.
type fakeProvider struct {
	lastTicker string
}

func (p *fakeProvider) FetchProfile(_ context.Context, ticker string) (*Profile, error) {
	p.lastTicker = ticker
	return &Profile{Ticker: ticker, Name: "Apple Inc.", Currency: "USD"}, nil
}

func (p *fakeProvider) FetchQuote(_ context.Context, ticker string) (*Quote, error) {
	p.lastTicker = ticker
	return &Quote{Ticker: ticker, Currency: "USD"}, nil
}

func (p *fakeProvider) FetchStatistics(_ context.Context, ticker string) (*KeyStatistics, error) {
	p.lastTicker = ticker
	return &KeyStatistics{Ticker: ticker, Currency: "USD"}, nil
}

func (p *fakeProvider) FetchAnalystCoverage(_ context.Context, ticker string) (*AnalystCoverage, error) {
	p.lastTicker = ticker
	return &AnalystCoverage{Ticker: ticker}, nil
}

func (p *fakeProvider) FetchNews(_ context.Context, ticker string) ([]NewsArticle, error) {
	p.lastTicker = ticker
	return []NewsArticle{{Title: "Markets rally"}}, nil
}

// # Ticker Normalization

/*
TestService_TickerNormalization verifies upper-casing, trimming, and the
rejection of blank symbols.
*/
func TestService_TickerNormalization(t *testing.T) {
	provider := &fakeProvider{}
	service := NewService(provider)

	tests := []struct {
		name       string
		input      string
		normalized string
	}{
		{"lowercase", "aapl", "AAPL"},
		{"padded", "  msft ", "MSFT"},
		{"exchange_suffix", "tcs.ns", "TCS.NS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.GetQuote(context.Background(), tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.normalized, provider.lastTicker)
		})
	}

	t.Run("blank_rejected", func(t *testing.T) {
		_, err := service.GetQuote(context.Background(), "   ")
		require.Error(t, err)
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	})
}

// # Display Decoration

/*
TestProfileDecorate covers market-cap compaction and the nil fallback.
*/
func TestProfileDecorate(t *testing.T) {
	profile := &Profile{Currency: "USD", MarketCap: pointer.To(2_500_000_000_000.0)}
	profile.decorate()
	assert.Equal(t, "$2.5T", profile.MarketCapDisplay)

	missing := &Profile{Currency: "USD"}
	missing.decorate()
	assert.Equal(t, "N/A", missing.MarketCapDisplay)
}

/*
TestQuoteDecorate covers positive, negative, and missing change rendering.
*/
func TestQuoteDecorate(t *testing.T) {
	tests := []struct {
		name          string
		quote         Quote
		priceDisplay  string
		changeDisplay string
	}{
		{
			name: "positive_change",
			quote: Quote{
				Currency:      "USD",
				Price:         pointer.To(187.44),
				Change:        pointer.To(2.31),
				ChangePercent: pointer.To(0.0125),
			},
			priceDisplay:  "$187.44",
			changeDisplay: "+2.31 (+1.25%)",
		},
		{
			name: "negative_change",
			quote: Quote{
				Currency:      "INR",
				Price:         pointer.To(3450.75),
				Change:        pointer.To(-12.50),
				ChangePercent: pointer.To(-0.0036),
			},
			priceDisplay:  "₹3450.75",
			changeDisplay: "-12.50 (-0.36%)",
		},
		{
			name:          "missing_everything",
			quote:         Quote{Currency: "USD"},
			priceDisplay:  "N/A",
			changeDisplay: "N/A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.quote.decorate()
			assert.Equal(t, tt.priceDisplay, tt.quote.PriceDisplay)
			assert.Equal(t, tt.changeDisplay, tt.quote.ChangeDisplay)
		})
	}
}

/*
TestStatisticsDecorate checks the fundamentals panel strings, including the
"N/A" fallbacks for absent figures.
*/
func TestStatisticsDecorate(t *testing.T) {
	statistics := &KeyStatistics{
		Currency:         "USD",
		FiftyTwoWeekHigh: pointer.To(199.62),
		AverageVolume:    pointer.To(58_340_000.0),
		TrailingPE:       pointer.To(24.3072),
		DividendYield:    pointer.To(0.0044),
	}
	statistics.decorate()

	assert.Equal(t, "$199.62", statistics.Display.FiftyTwoWeekHigh)
	assert.Equal(t, "N/A", statistics.Display.FiftyTwoWeekLow)
	assert.Equal(t, "58.3M", statistics.Display.AverageVolume)
	assert.Equal(t, "24.31", statistics.Display.TrailingPE)
	assert.Equal(t, "N/A", statistics.Display.Beta)
	assert.Equal(t, "0.44%", statistics.Display.DividendYield)
	assert.Equal(t, "N/A", statistics.Display.PayoutRatio)
}

// # Market Configurations

/*
TestConfigs sanity-checks the static market descriptors.
*/
func TestConfigs(t *testing.T) {
	configs := Configs()
	require.Len(t, configs, 2)

	byName := map[string]Config{}
	for _, config := range configs {
		byName[config.Name] = config
	}

	us, ok := byName["US"]
	require.True(t, ok)
	assert.Equal(t, "USD", us.Currency)
	assert.Equal(t, "$", us.CurrencySymbol)
	assert.Equal(t, "AAPL", us.DefaultTicker)
	assert.Contains(t, us.Stocks, "NVDA")
	assert.Nil(t, us.TaxBrackets[len(us.TaxBrackets)-1].Limit, "top bracket must be open")

	indian, ok := byName["Indian"]
	require.True(t, ok)
	assert.Equal(t, "INR", indian.Currency)
	assert.Equal(t, "₹", indian.CurrencySymbol)
	assert.Equal(t, "TCS.NS", indian.DefaultTicker)
	assert.Equal(t, "NSE", indian.Exchange)
}
