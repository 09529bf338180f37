// Copyright (c) 2026 StockSeer.AI. All rights reserved.
// Author: dev@stockseer.app

package watchlist

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stockseer/api/internal/platform/apperr"
	"github.com/stockseer/api/internal/platform/dberr"
	"github.com/stockseer/api/pkg/pagination"
)

// # Watchlist Repository

// PostgresRepository implements the [Repository] interface over the
// users.watchlist table.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL implementation of Repository.
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

/*
Add persists a new tracked ticker.

Description: Insert-and-catch; the UNIQUE (userid, ticker) constraint turns
a duplicate into a client-safe Conflict.

Parameters:
  - context: context.Context
  - item: *Item

Returns:
  - error: apperr.Conflict on duplicate, or execution errors
*/
func (repository *PostgresRepository) Add(context context.Context, item *Item) error {
	const query = `
		INSERT INTO users.watchlist (userid, ticker, note, createdat, updatedat)
		VALUES ($1, $2, $3, $4, $4)
		RETURNING id`

	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}
	item.UpdatedAt = item.CreatedAt

	err := repository.pool.QueryRow(context, query,
		item.UserID,
		item.Ticker,
		item.Note,
		item.CreatedAt,
	).Scan(&item.ID)

	if err != nil {
		if dberr.IsUniqueViolation(err) {
			return dberr.Wrap(err, "Ticker is already on your watchlist")
		}
		return fmt.Errorf("postgres_watchlist_repo_add_failed: %w", err)
	}

	return nil
}

/*
ListByUser returns one page of a user's watchlist, oldest first.

Parameters:
  - context: context.Context
  - userID: int64
  - params: pagination.Params

Returns:
  - []Item: Page of items
  - int: Total item count for the user
  - error: Query failures
*/
func (repository *PostgresRepository) ListByUser(context context.Context, userID int64, params pagination.Params) ([]Item, int, error) {
	const countQuery = "SELECT COUNT(*) FROM users.watchlist WHERE userid = $1"
	var total int
	if err := repository.pool.QueryRow(context, countQuery, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("postgres_watchlist_repo_count_failed: %w", err)
	}

	const listQuery = `
		SELECT id, userid, ticker, note, createdat, updatedat
		FROM users.watchlist
		WHERE userid = $1
		ORDER BY createdat ASC, id ASC
		LIMIT $2 OFFSET $3`

	rows, err := repository.pool.Query(context, listQuery, userID, params.Limit, params.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("postgres_watchlist_repo_list_failed: %w", err)
	}
	defer rows.Close()

	items := make([]Item, 0, params.Limit)
	for rows.Next() {
		var item Item
		err := rows.Scan(&item.ID, &item.UserID, &item.Ticker, &item.Note, &item.CreatedAt, &item.UpdatedAt)
		if err != nil {
			return nil, 0, fmt.Errorf("postgres_watchlist_repo_scan_failed: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("postgres_watchlist_repo_rows_failed: %w", err)
	}

	return items, total, nil
}

/*
ReplaceNote overwrites the note on a tracked ticker.

Parameters:
  - context: context.Context
  - userID: int64
  - ticker: string
  - note: string

Returns:
  - *Item: The updated item
  - error: apperr.NotFound or execution errors
*/
func (repository *PostgresRepository) ReplaceNote(context context.Context, userID int64, ticker, note string) (*Item, error) {
	const query = `
		UPDATE users.watchlist
		SET note = $3, updatedat = $4
		WHERE userid = $1 AND ticker = $2
		RETURNING id, userid, ticker, note, createdat, updatedat`

	item := &Item{}
	err := repository.pool.QueryRow(context, query, userID, ticker, note, time.Now()).Scan(
		&item.ID,
		&item.UserID,
		&item.Ticker,
		&item.Note,
		&item.CreatedAt,
		&item.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Ticker is not on your watchlist")
		}
		return nil, fmt.Errorf("postgres_watchlist_repo_replace_note_failed: %w", err)
	}

	return item, nil
}

/*
Remove deletes a tracked ticker.

Description: Idempotent; zero affected rows is a success.

Parameters:
  - context: context.Context
  - userID: int64
  - ticker: string

Returns:
  - error: Execution errors
*/
func (repository *PostgresRepository) Remove(context context.Context, userID int64, ticker string) error {
	const query = "DELETE FROM users.watchlist WHERE userid = $1 AND ticker = $2"
	_, err := repository.pool.Exec(context, query, userID, ticker)
	if err != nil {
		return fmt.Errorf("postgres_watchlist_repo_remove_failed: %w", err)
	}
	return nil
}
