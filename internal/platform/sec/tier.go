// Copyright (c) 2026 StockSeer.AI. All rights reserved.
// Author: dev@stockseer.app

package sec

// # Subscription Tiers

// SubscriptionTier represents the product plan attached to an account.
type SubscriptionTier string

const (
	// Full access, including administrative dashboards
	TierPremium SubscriptionTier = "premium"

	// Unlocks analyst coverage and price-target panels
	TierPro SubscriptionTier = "pro"

	// Default plan for newly registered accounts
	TierFree SubscriptionTier = "free"
)

// # Tier Hierarchy

// AtLeast checks if the current tier meets or exceeds the required target tier.
func (t SubscriptionTier) AtLeast(target SubscriptionTier) bool {
	return t.level() >= target.level()
}

// level maps a tier to a numeric hierarchy level for comparison logic.
func (t SubscriptionTier) level() int {

	// Linear scale (10-30) allows for future intermediate plans
	switch t {
	case TierPremium:
		return 30
	case TierPro:
		return 20
	case TierFree:
		return 10
	default:
		return 0
	}
}
