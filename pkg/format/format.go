// Copyright (c) 2026 StockSeer.AI. All rights reserved.
// Author: dev@stockseer.app

/*
Package format provides display formatting for financial figures.

Market data arrives as raw floats (market caps in the trillions, yields as
fractions, prices in local currency) and every surface that renders them
needs the same human-readable treatment. Centralizing it here keeps the
rules consistent: one decimal for magnitude-suffixed numbers, two decimals
for ratios and percentages, and "N/A" for anything absent.

Key Functions:
  - LargeNumber: Compacts a number into K/M/B/T notation.
  - CurrencySymbol: Resolves an ISO 4217 code to its display symbol.
  - Percent: Renders a fractional value (0.0427) as a percentage ("4.27%").
  - Ratio: Renders a plain ratio with two decimals.
  - Money: Renders a price with its currency symbol.

All pointer-accepting functions treat nil as "not available" and return
[NotAvailable] rather than a zero value, because a missing figure and a
zero figure mean very different things on a dashboard.
*/
package format

import (
	"fmt"
	"strconv"

	"golang.org/x/text/currency"
)

// NotAvailable is the placeholder rendered for absent figures.
const NotAvailable = "N/A"

// currencyOverrides maps ISO codes to the symbols traders actually expect.
// The CLDR defaults from [currency.Symbol] are locale-dependent and render
// some of these as "US$" or bare codes, which reads wrong on a ticker board.
var currencyOverrides = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"INR": "₹",
	"CNY": "¥",
	"HKD": "HK$",
	"SGD": "S$",
	"AUD": "A$",
	"CAD": "C$",
}

// CurrencySymbol resolves an ISO 4217 currency code to a display symbol.
//
// Codes with a well-known trading symbol are resolved from a fixed override
// table; anything else falls back to the CLDR symbol data shipped with
// [golang.org/x/text/currency]. Unknown codes are returned verbatim so the
// caller still renders something identifiable.
func CurrencySymbol(code string) string {
	if symbol, ok := currencyOverrides[code]; ok {
		return symbol
	}

	unit, err := currency.ParseISO(code)
	if err != nil {
		return code
	}
	return fmt.Sprintf("%v", currency.Symbol(unit))
}

// LargeNumber compacts a number into K/M/B/T notation with one decimal,
// e.g. 3_450_000_000 becomes "3.5B". Values below one thousand are
// rendered as-is without a suffix.
func LargeNumber(number *float64) string {
	if number == nil {
		return NotAvailable
	}

	value := *number
	if value < 1000 && value > -1000 {
		return strconv.FormatFloat(value, 'f', -1, 64)
	}

	for _, unit := range []string{"", "K", "M", "B", "T"} {
		if value < 1000 && value > -1000 {
			return fmt.Sprintf("%.1f%s", value, unit)
		}
		value /= 1000
	}

	// Beyond trillions; clamp to the largest suffix.
	return fmt.Sprintf("%.1fT", value)
}

// Percent renders a fractional value as a percentage with two decimals.
// The input is a fraction, not a percentage: 0.0427 renders as "4.27%".
func Percent(fraction *float64) string {
	if fraction == nil {
		return NotAvailable
	}
	return fmt.Sprintf("%.2f%%", *fraction*100)
}

// Ratio renders a plain ratio (P/E, beta, etc.) with two decimals.
func Ratio(value *float64) string {
	if value == nil {
		return NotAvailable
	}
	return fmt.Sprintf("%.2f", *value)
}

// Money renders a price with the symbol for the given ISO currency code,
// e.g. Money(pointer.To(187.44), "USD") renders "$187.44".
func Money(value *float64, code string) string {
	if value == nil {
		return NotAvailable
	}
	return fmt.Sprintf("%s%.2f", CurrencySymbol(code), *value)
}
