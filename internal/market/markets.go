// Copyright (c) 2026 StockSeer.AI. All rights reserved.
// Author: dev@stockseer.app

package market

// # Market Configurations

// Config is a static descriptor of a supported stock market.
type Config struct {
	Name           string       `json:"name"`
	Currency       string       `json:"currency"`
	CurrencySymbol string       `json:"currency_symbol"`
	Exchange       string       `json:"exchange"`
	DefaultTicker  string       `json:"default_ticker"`
	Stocks         []string     `json:"stocks"` // Headline tickers shown before the user builds a watchlist.
	RetirementAge  int          `json:"retirement_age"`
	LifeExpectancy int          `json:"life_expectancy"`
	InflationRate  float64      `json:"inflation_rate"`
	MarketReturn   float64      `json:"market_return"`
	RiskFreeRate   float64      `json:"risk_free_rate"`
	TaxBrackets    []TaxBracket `json:"tax_brackets"`
}

// TaxBracket is one marginal income-tax band. A nil Limit marks the open
// top bracket.
type TaxBracket struct {
	Limit *float64 `json:"limit"`
	Rate  float64  `json:"rate"`
}

func limit(v float64) *float64 { return &v }

// marketConfigs holds the supported markets, keyed by display name.
// Planning parameters (retirement age, inflation, market return) feed the
// dashboard's financial-planning widgets.
var marketConfigs = []Config{
	{
		Name:           "US",
		Currency:       "USD",
		CurrencySymbol: "$",
		Exchange:       "NASDAQ/NYSE",
		DefaultTicker:  "AAPL",
		Stocks: []string{
			"AAPL", "MSFT", "GOOGL", "AMZN", "NVDA",
			"JPM", "V", "JNJ", "LLY",
			"PG", "COST", "XOM",
		},
		RetirementAge:  65,
		LifeExpectancy: 80,
		InflationRate:  0.03,
		MarketReturn:   0.10,
		RiskFreeRate:   0.04,
		TaxBrackets: []TaxBracket{
			{Limit: limit(10_000), Rate: 0.10},
			{Limit: limit(40_000), Rate: 0.12},
			{Limit: limit(85_000), Rate: 0.22},
			{Limit: limit(165_000), Rate: 0.24},
			{Limit: limit(210_000), Rate: 0.32},
			{Limit: nil, Rate: 0.35},
		},
	},
	{
		Name:           "Indian",
		Currency:       "INR",
		CurrencySymbol: "₹",
		Exchange:       "NSE",
		DefaultTicker:  "TCS.NS",
		Stocks: []string{
			"TCS.NS", "RELIANCE.NS", "HDFCBANK.NS", "INFY.NS", "ICICIBANK.NS",
			"HINDUNILVR.NS", "BHARTIARTL.NS", "ITC.NS", "SBIN.NS", "LT.NS",
			"WIPRO.NS", "HCLTECH.NS", "ASIANPAINT.NS", "AXISBANK.NS", "MARUTI.NS",
		},
		RetirementAge:  60,
		LifeExpectancy: 75,
		InflationRate:  0.06,
		MarketReturn:   0.12,
		RiskFreeRate:   0.07,
		TaxBrackets: []TaxBracket{
			{Limit: limit(250_000), Rate: 0},
			{Limit: limit(500_000), Rate: 0.05},
			{Limit: limit(750_000), Rate: 0.10},
			{Limit: limit(1_000_000), Rate: 0.15},
			{Limit: limit(1_250_000), Rate: 0.20},
			{Limit: nil, Rate: 0.30},
		},
	},
}

// Configs returns the static market configurations in display order.
func Configs() []Config {
	return marketConfigs
}
