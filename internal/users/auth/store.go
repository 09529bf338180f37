// Copyright (c) 2026 StockSeer.AI. All rights reserved.
// Author: dev@stockseer.app

package auth

import (
	"context"

	"github.com/stockseer/api/internal/platform/sec"
)

// # Account Data Access

// AccountRepository defines the data access contract for user accounts.
type AccountRepository interface {

	/*
		Create persists a brand-new user account to the storage.

		Uniqueness of username and email is enforced by the database; a
		violation surfaces as an [apperr.Conflict] rather than being
		pre-checked, so concurrent registrations cannot race past each other.

		Parameters:
		  - context: context.Context
		  - account: *Account (ID and CreatedAt are populated on success)

		Returns:
		  - error: Conflict on duplicate identity, or persistence failures
	*/
	Create(context context.Context, account *Account) error

	/*
		FindActiveByUsername returns the active account with the given username.

		Deactivated accounts are excluded so that disabled users fail
		credential checks identically to unknown users.

		Parameters:
		  - context: context.Context
		  - username: string

		Returns:
		  - *Account: Hydrated entity
		  - error: apperr.NotFound or database retrieval failures
	*/
	FindActiveByUsername(context context.Context, username string) (*Account, error)

	/*
		FindActiveByEmail returns the active account with the given email.

		Parameters:
		  - context: context.Context
		  - email: string

		Returns:
		  - *Account: Hydrated entity
		  - error: apperr.NotFound or database retrieval failures
	*/
	FindActiveByEmail(context context.Context, email string) (*Account, error)

	/*
		FindByID returns the account with the given ID, active or not.

		Parameters:
		  - context: context.Context
		  - id: int64

		Returns:
		  - *Account: Hydrated entity
		  - error: apperr.NotFound or database retrieval failures
	*/
	FindByID(context context.Context, id int64) (*Account, error)
}

// # Session Data Access

// SessionRepository defines the data access contract for opaque-token sessions.
type SessionRepository interface {

	/*
		CreateWithLoginStamp persists a new session and stamps the account's
		last-login timestamp in a single transaction.

		Both writes commit together or not at all, so the login audit trail
		can never disagree with the set of live sessions.

		Parameters:
		  - context: context.Context
		  - session: *Session (ID and CreatedAt are populated on success)

		Returns:
		  - error: Persistence failures
	*/
	CreateWithLoginStamp(context context.Context, session *Session) error

	/*
		FindUserByToken resolves a raw session token into the owning user's
		identity via a read-only join against the account table.

		Expired sessions and sessions owned by deactivated accounts resolve
		to NotFound. The lookup never mutates or deletes the session row.

		Parameters:
		  - context: context.Context
		  - token: string

		Returns:
		  - *sec.Principal: Identity snapshot for request context injection
		  - error: apperr.NotFound or database retrieval failures
	*/
	FindUserByToken(context context.Context, token string) (*sec.Principal, error)

	/*
		Delete removes the session holding the given token.

		Deleting a token with no matching row is not an error; the operation
		is idempotent by construction.

		Parameters:
		  - context: context.Context
		  - token: string

		Returns:
		  - error: Persistence failures
	*/
	Delete(context context.Context, token string) error

	/*
		DeleteExpired physically removes sessions whose ExpiresAt is in the past.

		Parameters:
		  - context: context.Context

		Returns:
		  - int64: Number of rows removed
		  - error: Cleanup failures
	*/
	DeleteExpired(context context.Context) (int64, error)

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
