// Copyright (c) 2026 StockSeer.AI. All rights reserved.
// Author: dev@stockseer.app

package watchlist

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockseer/api/internal/platform/apperr"
	"github.com/stockseer/api/pkg/pagination"
)

// # In-Memory Fake

// fakeRepository mirrors the UNIQUE (userid, ticker) constraint in memory.
type fakeRepository struct {
	items  []*Item
	nextID int64
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{nextID: 1}
}

func (r *fakeRepository) find(userID int64, ticker string) *Item {
	for _, item := range r.items {
		if item.UserID == userID && item.Ticker == ticker {
			return item
		}
	}
	return nil
}

func (r *fakeRepository) Add(_ context.Context, item *Item) error {
	if r.find(item.UserID, item.Ticker) != nil {
		return apperr.Conflict("Ticker is already on your watchlist")
	}
	item.ID = r.nextID
	r.nextID++
	item.CreatedAt = time.Now()
	item.UpdatedAt = item.CreatedAt
	copied := *item
	r.items = append(r.items, &copied)
	return nil
}

func (r *fakeRepository) ListByUser(_ context.Context, userID int64, params pagination.Params) ([]Item, int, error) {
	var owned []Item
	for _, item := range r.items {
		if item.UserID == userID {
			owned = append(owned, *item)
		}
	}

	total := len(owned)
	start := params.Offset()
	if start > total {
		start = total
	}
	end := start + params.Limit
	if end > total {
		end = total
	}
	return owned[start:end], total, nil
}

func (r *fakeRepository) ReplaceNote(_ context.Context, userID int64, ticker, note string) (*Item, error) {
	item := r.find(userID, ticker)
	if item == nil {
		return nil, apperr.NotFound("Ticker is not on your watchlist")
	}
	item.Note = note
	item.UpdatedAt = time.Now()
	copied := *item
	return &copied, nil
}

func (r *fakeRepository) Remove(_ context.Context, userID int64, ticker string) error {
	for index, item := range r.items {
		if item.UserID == userID && item.Ticker == ticker {
			r.items = append(r.items[:index], r.items[index+1:]...)
			return nil
		}
	}
	return nil
}

// # Tests

/*
TestAdd_NormalizesAndConflicts verifies ticker normalization and the
duplicate rejection, including duplicates differing only in case.
*/
func TestAdd_NormalizesAndConflicts(t *testing.T) {
	service := NewService(newFakeRepository())

	item, err := service.Add(context.Background(), 1, " aapl ", "looks strong")
	require.NoError(t, err)
	assert.Equal(t, "AAPL", item.Ticker)
	assert.NotZero(t, item.ID)

	_, err = service.Add(context.Background(), 1, "AAPL", "")
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))

	_, err = service.Add(context.Background(), 1, "aapl", "")
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err), "case-variant duplicate must conflict")

	// A different user may track the same ticker.
	_, err = service.Add(context.Background(), 2, "AAPL", "")
	require.NoError(t, err)
}

/*
TestReplaceNote verifies wholesale note replacement and the not-found path.
*/
func TestReplaceNote(t *testing.T) {
	service := NewService(newFakeRepository())

	_, err := service.Add(context.Background(), 1, "TCS.NS", "initial thesis")
	require.NoError(t, err)

	updated, err := service.ReplaceNote(context.Background(), 1, "tcs.ns", "updated thesis")
	require.NoError(t, err)
	assert.Equal(t, "updated thesis", updated.Note)

	_, err = service.ReplaceNote(context.Background(), 1, "MSFT", "untracked")
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

/*
TestRemove_Idempotent verifies removal and that removing twice succeeds.
*/
func TestRemove_Idempotent(t *testing.T) {
	repository := newFakeRepository()
	service := NewService(repository)

	_, err := service.Add(context.Background(), 1, "NVDA", "")
	require.NoError(t, err)

	require.NoError(t, service.Remove(context.Background(), 1, "nvda"))
	assert.Empty(t, repository.items)

	require.NoError(t, service.Remove(context.Background(), 1, "NVDA"))
	require.NoError(t, service.Remove(context.Background(), 1, "NEVER"))
}

/*
TestList_Pagination checks page slicing and metadata totals.
*/
func TestList_Pagination(t *testing.T) {
	service := NewService(newFakeRepository())

	tickers := []string{"AAPL", "MSFT", "GOOGL", "AMZN", "NVDA"}
	for _, ticker := range tickers {
		_, err := service.Add(context.Background(), 1, ticker, "")
		require.NoError(t, err)
	}

	items, meta, err := service.List(context.Background(), 1, pagination.Params{Page: 1, Limit: 2})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "AAPL", items[0].Ticker)
	assert.Equal(t, 5, meta.Total)
	assert.Equal(t, 3, meta.TotalPages)

	items, _, err = service.List(context.Background(), 1, pagination.Params{Page: 3, Limit: 2})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "NVDA", items[0].Ticker)

	// Another user's list is empty.
	items, meta, err = service.List(context.Background(), 2, pagination.Params{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, 0, meta.Total)
}
