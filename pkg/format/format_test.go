// Copyright (c) 2026 StockSeer.AI. All rights reserved.
// Author: dev@stockseer.app

package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stockseer/api/pkg/format"
	"github.com/stockseer/api/pkg/pointer"
)

/*
TestLargeNumber tests the K/M/B/T compaction of large figures.
*/
func TestLargeNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    *float64
		expected string
	}{
		{"nil_value", nil, "N/A"},
		{"below_thousand", pointer.To(999.0), "999"},
		{"thousands", pointer.To(1500.0), "1.5K"},
		{"millions", pointer.To(2_340_000.0), "2.3M"},
		{"billions", pointer.To(3_450_000_000.0), "3.5B"},
		{"trillions", pointer.To(1_800_000_000_000.0), "1.8T"},
		{"negative_billions", pointer.To(-2_500_000_000.0), "-2.5B"},
		{"zero", pointer.To(0.0), "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, format.LargeNumber(tt.input))
		})
	}
}

/*
TestCurrencySymbol checks the override table and the ISO fallback.
*/
func TestCurrencySymbol(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected string
	}{
		{"us_dollar", "USD", "$"},
		{"euro", "EUR", "€"},
		{"rupee", "INR", "₹"},
		{"hong_kong_dollar", "HKD", "HK$"},
		{"singapore_dollar", "SGD", "S$"},
		{"unknown_code", "ZZZ", "ZZZ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, format.CurrencySymbol(tt.code))
		})
	}
}

/*
TestPercent verifies fraction-to-percentage rendering.
*/
func TestPercent(t *testing.T) {
	assert.Equal(t, "4.27%", format.Percent(pointer.To(0.0427)))
	assert.Equal(t, "0.00%", format.Percent(pointer.To(0.0)))
	assert.Equal(t, "-1.50%", format.Percent(pointer.To(-0.015)))
	assert.Equal(t, "N/A", format.Percent(nil))
}

/*
TestRatio verifies two-decimal ratio rendering.
*/
func TestRatio(t *testing.T) {
	assert.Equal(t, "24.31", format.Ratio(pointer.To(24.3072)))
	assert.Equal(t, "N/A", format.Ratio(nil))
}

/*
TestMoney verifies price rendering with currency symbols.
*/
func TestMoney(t *testing.T) {
	assert.Equal(t, "$187.44", format.Money(pointer.To(187.44), "USD"))
	assert.Equal(t, "₹2450.10", format.Money(pointer.To(2450.10), "INR"))
	assert.Equal(t, "N/A", format.Money(nil, "USD"))
}
