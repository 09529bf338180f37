// Copyright (c) 2026 StockSeer.AI. All rights reserved.
// Author: dev@stockseer.app

/*
Package account handles user profile access, dashboard preferences, and
platform-level account statistics.

It provides functionalities for users to view their private identity data
and replace their preference document, and for premium operators to read
aggregate platform health numbers.

# Architecture

  - Entities: Stats (DTO).
  - Domain: This package depends on the auth package for the Account entity.
  - Preferences: Stored as a single JSONB document, replaced wholesale.
*/
package account

import (
	"context"
	"time"

	"github.com/stockseer/api/internal/users/auth"
)

// # Domain Entities

// Stats aggregates platform-level account numbers for the operator dashboard.
type Stats struct {
	TotalUsers        int64 `json:"total_users"`         // Active accounts only.
	NewUsersThisMonth int64 `json:"new_users_this_month"` // Accounts created since the start of the calendar month.
	ActiveSessions    int64 `json:"active_sessions"`      // Unexpired sessions across all users.
}

// # Repository Contracts

// AccountRepository defines the persistence contract for profile and
// preference access.
type AccountRepository interface {
	/*
		FindByID retrieves an account by its primary key.

		Parameters:
		  - context: context.Context
		  - id: int64

		Returns:
		  - *auth.Account: Loaded account entity
		  - error: apperr.NotFound or storage failures
	*/
	FindByID(context context.Context, id int64) (*auth.Account, error)

	/*
		ReplacePreferences overwrites the user's preference document.

		The stored document is replaced wholesale, not merged. Keys absent
		from the new document are gone after the call.

		Parameters:
		  - context: context.Context
		  - userID: int64
		  - preferences: map[string]any

		Returns:
		  - error: apperr.NotFound if the account does not exist, or storage failures
	*/
	ReplacePreferences(context context.Context, userID int64, preferences map[string]any) error

	/*
		CountActive returns the number of active (non-deactivated) accounts.

		Parameters:
		  - context: context.Context

		Returns:
		  - int64: Account count
		  - error: Query failures
	*/
	CountActive(context context.Context) (int64, error)

	/*
		CountCreatedSince returns the number of accounts created at or after
		the given instant.

		Parameters:
		  - context: context.Context
		  - since: time.Time

		Returns:
		  - int64: Account count
		  - error: Query failures
	*/
	CountCreatedSince(context context.Context, since time.Time) (int64, error)
}

// SessionCounter exposes the live-session count owned by the auth domain.
type SessionCounter interface {
	/*
		CountActive returns the number of unexpired sessions across all users.

		Parameters:
		  - context: context.Context

		Returns:
		  - int64: Live session count
		  - error: Query failures
	*/
	CountActive(context context.Context) (int64, error)
}
