// Copyright (c) 2026 StockSeer.AI. All rights reserved.
// Author: dev@stockseer.app

package account

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stockseer/api/internal/platform/apperr"
	"github.com/stockseer/api/internal/users/auth"
)

// # Account Repository

// PostgresAccountRepository implements the AccountRepository interface over
// the users.account table.
type PostgresAccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository creates a new PostgreSQL implementation of AccountRepository.
func NewAccountRepository(pool *pgxpool.Pool) *PostgresAccountRepository {
	return &PostgresAccountRepository{pool: pool}
}

/*
FindByID retrieves an account by its primary key.

Parameters:
  - context: context.Context
  - id: int64

Returns:
  - *auth.Account: Hydrated account entity
  - error: apperr.NotFound or execution errors
*/
func (repository *PostgresAccountRepository) FindByID(context context.Context, id int64) (*auth.Account, error) {
	const query = `
		SELECT id, username, email, passwordhash, fullname, subscriptiontier, preferences, isactive, lastlogin, createdat
		FROM users.account
		WHERE id = $1`

	account := &auth.Account{}
	err := repository.pool.QueryRow(context, query, id).Scan(
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
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Account not found")
		}
		return nil, fmt.Errorf("postgres_account_repo_find_by_id_failed: %w", err)
	}

	return account, nil
}

/*
ReplacePreferences overwrites the preference document for a user.

Description: Single UPDATE; zero affected rows means the account is gone
and maps to NotFound.

Parameters:
  - context: context.Context
  - userID: int64
  - preferences: map[string]any

Returns:
  - error: apperr.NotFound or execution errors
*/
func (repository *PostgresAccountRepository) ReplacePreferences(context context.Context, userID int64, preferences map[string]any) error {
	const query = "UPDATE users.account SET preferences = $2 WHERE id = $1"

	tag, err := repository.pool.Exec(context, query, userID, preferences)
	if err != nil {
		return fmt.Errorf("postgres_account_repo_replace_preferences_failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Account not found")
	}

	return nil
}

/*
CountActive returns the number of active accounts.

Parameters:
  - context: context.Context

Returns:
  - int64: Account count
  - error: Query failures
*/
func (repository *PostgresAccountRepository) CountActive(context context.Context) (int64, error) {
	const query = "SELECT COUNT(*) FROM users.account WHERE isactive = TRUE"
	var count int64
	if err := repository.pool.QueryRow(context, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("postgres_account_repo_count_active_failed: %w", err)
	}
	return count, nil
}

/*
CountCreatedSince returns the number of accounts created at or after the
given instant.

Parameters:
  - context: context.Context
  - since: time.Time

Returns:
  - int64: Account count
  - error: Query failures
*/
func (repository *PostgresAccountRepository) CountCreatedSince(context context.Context, since time.Time) (int64, error) {
	const query = "SELECT COUNT(*) FROM users.account WHERE createdat >= $1"
	var count int64
	if err := repository.pool.QueryRow(context, query, since).Scan(&count); err != nil {
		return 0, fmt.Errorf("postgres_account_repo_count_created_since_failed: %w", err)
	}
	return count, nil
}
