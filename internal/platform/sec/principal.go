// Copyright (c) 2026 StockSeer.AI. All rights reserved.
// Author: dev@stockseer.app

package sec

// Principal is the authenticated user view attached to a request after its
// opaque session token has been resolved against the store.
//
// # Why not a claims struct?
//
// Sessions are opaque bearer tokens with no decodable payload, so the
// middleware resolves every request against the session store and receives
// this joined view (account + session) back. Handlers read it from the
// request context instead of re-querying the database.
type Principal struct {
	UserID           int64            `json:"user_id"`
	Username         string           `json:"username"`
	Email            string           `json:"email"`
	FullName         string           `json:"full_name,omitempty"`
	SubscriptionTier SubscriptionTier `json:"subscription_tier"`
	Preferences      map[string]any   `json:"preferences"`
}
