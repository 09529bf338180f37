// Copyright (c) 2026 StockSeer.AI. All rights reserved.
// Author: dev@stockseer.app

/*
Package watchlist implements per-user tracked tickers with free-form notes.

Each user keeps a list of ticker symbols with an optional research note per
ticker. The (user, ticker) pair is unique; duplicates are rejected at the
database constraint.

# Architecture

  - Entities: Item.
  - Repository: Postgres-backed, paginated listing.
  - Idempotency: Removal of an absent ticker succeeds silently.
*/
package watchlist

import (
	"context"
	"time"

	"github.com/stockseer/api/pkg/pagination"
)

// # Domain Entities

// Item is a single tracked ticker with its research note.
type Item struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"-"`
	Ticker    string    `json:"ticker"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// # Field Identifiers

const (
	FieldTicker = "ticker"
	FieldNote   = "note"
)

// MaxNoteLength bounds research notes; anything longer belongs in a document.
const MaxNoteLength = 2000

// # Repository Contract

// Repository defines the persistence contract for watchlist items.
type Repository interface {

	/*
		Add persists a new tracked ticker for a user.

		The (userid, ticker) unique constraint rejects duplicates; the
		violation surfaces as an [apperr.Conflict].

		Parameters:
		  - context: context.Context
		  - item: *Item (ID and timestamps populated on success)

		Returns:
		  - error: Conflict on duplicate ticker, or persistence failures
	*/
	Add(context context.Context, item *Item) error

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
	ListByUser(context context.Context, userID int64, params pagination.Params) ([]Item, int, error)

	/*
		ReplaceNote overwrites the note on a tracked ticker.

		Parameters:
		  - context: context.Context
		  - userID: int64
		  - ticker: string
		  - note: string

		Returns:
		  - *Item: The updated item
		  - error: apperr.NotFound if the ticker is not tracked, or storage failures
	*/
	ReplaceNote(context context.Context, userID int64, ticker, note string) (*Item, error)

	/*
		Remove deletes a tracked ticker. Removing an absent ticker is a no-op.

		Parameters:
		  - context: context.Context
		  - userID: int64
		  - ticker: string

		Returns:
		  - error: Persistence failures
	*/
	Remove(context context.Context, userID int64, ticker string) error
}
