// Copyright (c) 2026 StockSeer.AI. All rights reserved.
// Author: dev@stockseer.app

// # Architecture
//
// Repositories in this file are strictly separated from domain logic. They
// implement the domain-defined interfaces ([AccountRepository],
// [SessionRepository]) using the [pgxpool.Pool] connection manager.
//
// # Error Mapping
//
// Storage-specific errors (pgx.ErrNoRows, SQLSTATE 23505) are mapped to
// domain-friendly [apperr.AppError] types to avoid leaking storage
// implementation details.

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stockseer/api/internal/platform/apperr"
	"github.com/stockseer/api/internal/platform/dberr"
	"github.com/stockseer/api/internal/platform/sec"
)

// accountColumns is the canonical scan order for account queries.
const accountColumns = "id, username, email, passwordhash, fullname, subscriptiontier, preferences, isactive, lastlogin, createdat"

// # Account Repository

// PostgresAccountRepository implements the AccountRepository interface using pgx.
type PostgresAccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository creates a new PostgreSQL implementation of the AccountRepository.
func NewAccountRepository(pool *pgxpool.Pool) *PostgresAccountRepository {
	return &PostgresAccountRepository{pool: pool}
}

/*
Create persists a new account record into the users.account table.

Description: Single-statement insert; uniqueness of username and email is
delegated to the table's constraints and surfaced as a client-safe Conflict.

Parameters:
  - context: context.Context
  - account: *Account (Entity to persist; ID and CreatedAt set on return)

Returns:
  - error: apperr.Conflict on duplicate identity, or connectivity errors
*/
func (repository *PostgresAccountRepository) Create(context context.Context, account *Account) error {
	const query = `
		INSERT INTO users.account (
			username, email, passwordhash, fullname, subscriptiontier, preferences, isactive, createdat
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now()
	}
	if account.Preferences == nil {
		account.Preferences = map[string]any{}
	}

	err := repository.pool.QueryRow(context, query,
		account.Username,
		account.Email,
		account.PasswordHash,
		account.FullName,
		account.SubscriptionTier,
		account.Preferences,
		account.IsActive,
		account.CreatedAt,
	).Scan(&account.ID)

	if err != nil {
		if dberr.IsUniqueViolation(err) {
			return dberr.Wrap(err, "Username or email is already registered")
		}
		return fmt.Errorf("postgres_account_repo_create_failed: %w", err)
	}

	return nil
}

/*
FindActiveByUsername retrieves an active account by its unique username.

Description: Standard lookup for credential verification. Deactivated
accounts are filtered out at the query level so they are indistinguishable
from unknown users.

Parameters:
  - context: context.Context
  - username: string

Returns:
  - *Account: Hydrated account entity
  - error: apperr.NotFound or database errors
*/
func (repository *PostgresAccountRepository) FindActiveByUsername(context context.Context, username string) (*Account, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM users.account
		WHERE username = $1 AND isactive = TRUE`, accountColumns)

	account, err := scanAccount(repository.pool.QueryRow(context, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Account not found with this username")
		}
		return nil, fmt.Errorf("postgres_account_repo_find_by_username_failed: %w", err)
	}

	return account, nil
}

/*
FindActiveByEmail retrieves an active account by its unique email address.

Parameters:
  - context: context.Context
  - email: string

Returns:
  - *Account: Hydrated account entity
  - error: apperr.NotFound or database errors
*/
func (repository *PostgresAccountRepository) FindActiveByEmail(context context.Context, email string) (*Account, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM users.account
		WHERE email = $1 AND isactive = TRUE`, accountColumns)

	account, err := scanAccount(repository.pool.QueryRow(context, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Account not found with this email")
		}
		return nil, fmt.Errorf("postgres_account_repo_find_by_email_failed: %w", err)
	}

	return account, nil
}

/*
FindByID retrieves an account by its primary key, active or not.

Parameters:
  - context: context.Context
  - id: int64

Returns:
  - *Account: Hydrated account entity
  - error: apperr.NotFound or execution errors
*/
func (repository *PostgresAccountRepository) FindByID(context context.Context, id int64) (*Account, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM users.account
		WHERE id = $1`, accountColumns)

	account, err := scanAccount(repository.pool.QueryRow(context, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Account not found")
		}
		return nil, fmt.Errorf("postgres_account_repo_find_by_id_failed: %w", err)
	}

	return account, nil
}

// scanAccount hydrates an Account from a row in accountColumns order.
func scanAccount(row pgx.Row) (*Account, error) {
	account := &Account{}
	err := row.Scan(
		&account.ID,
		&account.Username,
		&account.Email,
		&account.PasswordHash,
		&account.FullName,
		&account.SubscriptionTier,
		&account.Preferences,
		&account.IsActive,
		&account.LastLogin,
		&account.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return account, nil
}

// # Session Repository

// PostgresSessionRepository implements the SessionRepository interface.
type PostgresSessionRepository struct {
	pool *pgxpool.Pool
}

// NewSessionRepository creates a new PostgreSQL implementation of SessionRepository.
func NewSessionRepository(pool *pgxpool.Pool) *PostgresSessionRepository {
	return &PostgresSessionRepository{pool: pool}
}

/*
CreateWithLoginStamp persists a new session and stamps the owning account's
lastlogin in a single transaction.

Description: BEGIN; UPDATE account.lastlogin; INSERT session; COMMIT. The
two writes succeed or fail together so the audit trail stays consistent
with the live session set.

Parameters:
  - context: context.Context
  - session: *Session (ID and CreatedAt set on return)

Returns:
  - error: Storage failures
*/
func (repository *PostgresSessionRepository) CreateWithLoginStamp(context context.Context, session *Session) error {
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}

	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return fmt.Errorf("postgres_session_repo_begin_failed: %w", err)
	}
	defer func() { _ = transaction.Rollback(context) }()

	const stampQuery = "UPDATE users.account SET lastlogin = $2 WHERE id = $1"
	if _, err := transaction.Exec(context, stampQuery, session.UserID, session.CreatedAt); err != nil {
		return fmt.Errorf("postgres_session_repo_login_stamp_failed: %w", err)
	}

	const insertQuery = `
		INSERT INTO users.session (userid, token, expiresat, createdat)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err = transaction.QueryRow(context, insertQuery,
		session.UserID,
		session.Token,
		session.ExpiresAt,
		session.CreatedAt,
	).Scan(&session.ID)
	if err != nil {
		return fmt.Errorf("postgres_session_repo_create_failed: %w", err)
	}

	if err := transaction.Commit(context); err != nil {
		return fmt.Errorf("postgres_session_repo_commit_failed: %w", err)
	}

	return nil
}

/*
FindUserByToken resolves a raw session token into the owning user's identity.

Description: Read-only join from users.session to users.account. Expiry and
account deactivation are enforced in the WHERE clause; the session row is
never touched. Expired rows are left for the background sweeper.

Parameters:
  - context: context.Context
  - token: string

Returns:
  - *sec.Principal: Identity snapshot of the session owner
  - error: apperr.NotFound or execution errors
*/
func (repository *PostgresSessionRepository) FindUserByToken(context context.Context, token string) (*sec.Principal, error) {
	const query = `
		SELECT a.id, a.username, a.email, a.fullname, a.subscriptiontier, a.preferences
		FROM users.session s
		JOIN users.account a ON a.id = s.userid
		WHERE s.token = $1 AND s.expiresat > NOW() AND a.isactive = TRUE`

	principal := &sec.Principal{}
	err := repository.pool.QueryRow(context, query, token).Scan(
		&principal.UserID,
		&principal.Username,
		&principal.Email,
		&principal.FullName,
		&principal.SubscriptionTier,
		&principal.Preferences,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Session not found or expired")
		}
		return nil, fmt.Errorf("postgres_session_repo_find_by_token_failed: %w", err)
	}

	return principal, nil
}

/*
Delete removes the session holding the given token.

Description: Idempotent by construction; deleting an absent token affects
zero rows and returns nil.

Parameters:
  - context: context.Context
  - token: string

Returns:
  - error: Execution errors
*/
func (repository *PostgresSessionRepository) Delete(context context.Context, token string) error {
	const query = "DELETE FROM users.session WHERE token = $1"
	_, err := repository.pool.Exec(context, query, token)
	if err != nil {
		return fmt.Errorf("postgres_session_repo_delete_failed: %w", err)
	}
	return nil
}

/*
DeleteExpired permanently removes all sessions that have passed their expiration.

Description: Cleanup task to reclaim storage from stale sessions. Run by the
background sweeper when enabled.

Parameters:
  - context: context.Context

Returns:
  - int64: Number of rows removed
  - error: Cleanup failures
*/
func (repository *PostgresSessionRepository) DeleteExpired(context context.Context) (int64, error) {
	const query = "DELETE FROM users.session WHERE expiresat <= NOW()"
	tag, err := repository.pool.Exec(context, query)
	if err != nil {
		return 0, fmt.Errorf("postgres_session_repo_delete_expired_failed: %w", err)
	}
	return tag.RowsAffected(), nil
}

/*
CountActive returns the number of unexpired sessions across all users.

Parameters:
  - context: context.Context

Returns:
  - int64: Live session count
  - error: Query failures
*/
func (repository *PostgresSessionRepository) CountActive(context context.Context) (int64, error) {
	const query = "SELECT COUNT(*) FROM users.session WHERE expiresat > NOW()"
	var count int64
	if err := repository.pool.QueryRow(context, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("postgres_session_repo_count_active_failed: %w", err)
	}
	return count, nil
}
