// Copyright (c) 2026 StockSeer.AI. All rights reserved.
// Author: dev@stockseer.app

package watchlist

import (
	"context"
	"fmt"
	"strings"

	"github.com/stockseer/api/pkg/pagination"
)

// # Service Layer

// Service orchestrates watchlist business logic.
type Service struct {
	repository Repository
}

// NewService constructs a watchlist [Service].
func NewService(repository Repository) *Service {
	return &Service{repository: repository}
}

/*
Add tracks a new ticker for a user.

Description: Normalizes the ticker to upper case and inserts; a duplicate
surfaces as Conflict from the repository.

Parameters:
  - context: context.Context
  - userID: int64
  - ticker: string
  - note: string (optional initial note)

Returns:
  - *Item: The tracked item
  - error: Conflict or storage failures
*/
func (service *Service) Add(context context.Context, userID int64, ticker, note string) (*Item, error) {
	item := &Item{
		UserID: userID,
		Ticker: strings.ToUpper(strings.TrimSpace(ticker)),
		Note:   note,
	}

	if err := service.repository.Add(context, item); err != nil {
		return nil, err
	}

	return item, nil
}

/*
List returns one page of the user's watchlist with pagination metadata.

Parameters:
  - context: context.Context
  - userID: int64
  - params: pagination.Params

Returns:
  - []Item: Page of items, oldest first
  - pagination.Meta: Page metadata
  - error: Query failures
*/
func (service *Service) List(context context.Context, userID int64, params pagination.Params) ([]Item, pagination.Meta, error) {
	items, total, err := service.repository.ListByUser(context, userID, params)
	if err != nil {
		return nil, pagination.Meta{}, fmt.Errorf("watchlist_service_list_failed: %w", err)
	}

	return items, pagination.NewMeta(params.Page, params.Limit, total), nil
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
  - error: NotFound or storage failures
*/
func (service *Service) ReplaceNote(context context.Context, userID int64, ticker, note string) (*Item, error) {
	return service.repository.ReplaceNote(context, userID, strings.ToUpper(strings.TrimSpace(ticker)), note)
}

/*
Remove stops tracking a ticker. Idempotent.

Parameters:
  - context: context.Context
  - userID: int64
  - ticker: string

Returns:
  - error: Storage failures
*/
func (service *Service) Remove(context context.Context, userID int64, ticker string) error {
	return service.repository.Remove(context, userID, strings.ToUpper(strings.TrimSpace(ticker)))
}
