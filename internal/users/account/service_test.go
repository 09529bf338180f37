// Copyright (c) 2026 StockSeer.AI. All rights reserved.
// Author: dev@stockseer.app

package account

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockseer/api/internal/platform/apperr"
	"github.com/stockseer/api/internal/users/auth"
)

// # In-Memory Fakes

type fakeAccountRepository struct {
	accounts map[int64]*auth.Account
}

func (r *fakeAccountRepository) FindByID(_ context.Context, id int64) (*auth.Account, error) {
	account, ok := r.accounts[id]
	if !ok {
		return nil, apperr.NotFound("Account not found")
	}
	return account, nil
}

func (r *fakeAccountRepository) ReplacePreferences(_ context.Context, userID int64, preferences map[string]any) error {
	account, ok := r.accounts[userID]
	if !ok {
		return apperr.NotFound("Account not found")
	}
	account.Preferences = preferences
	return nil
}

func (r *fakeAccountRepository) CountActive(_ context.Context) (int64, error) {
	var count int64
	for _, account := range r.accounts {
		if account.IsActive {
			count++
		}
	}
	return count, nil
}

func (r *fakeAccountRepository) CountCreatedSince(_ context.Context, since time.Time) (int64, error) {
	var count int64
	for _, account := range r.accounts {
		if !account.CreatedAt.Before(since) {
			count++
		}
	}
	return count, nil
}

type fakeSessionCounter struct {
	active int64
}

func (c *fakeSessionCounter) CountActive(_ context.Context) (int64, error) {
	return c.active, nil
}

func newTestService(accounts map[int64]*auth.Account, liveSessions int64) *Service {
	repo := &fakeAccountRepository{accounts: accounts}
	return NewService(repo, &fakeSessionCounter{active: liveSessions}, slog.Default())
}

// # Preferences

/*
TestReplacePreferences_Wholesale verifies that replacement drops keys absent
from the new document instead of merging.
*/
func TestReplacePreferences_Wholesale(t *testing.T) {
	accounts := map[int64]*auth.Account{
		1: {ID: 1, Username: "trader_jane", IsActive: true, Preferences: map[string]any{
			"theme":          "dark",
			"default_market": "US",
		}},
	}
	service := newTestService(accounts, 0)

	stored, err := service.ReplacePreferences(context.Background(), 1, map[string]any{"theme": "light"})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"theme": "light"}, stored)
	assert.Equal(t, map[string]any{"theme": "light"}, accounts[1].Preferences)
	assert.NotContains(t, accounts[1].Preferences, "default_market")
}

/*
TestReplacePreferences_NilBecomesEmpty checks nil normalization.
*/
func TestReplacePreferences_NilBecomesEmpty(t *testing.T) {
	accounts := map[int64]*auth.Account{
		1: {ID: 1, IsActive: true, Preferences: map[string]any{"theme": "dark"}},
	}
	service := newTestService(accounts, 0)

	stored, err := service.ReplacePreferences(context.Background(), 1, nil)
	require.NoError(t, err)
	assert.NotNil(t, stored)
	assert.Empty(t, stored)
}

/*
TestReplacePreferences_UnknownUser maps to a not-found failure.
*/
func TestReplacePreferences_UnknownUser(t *testing.T) {
	service := newTestService(map[int64]*auth.Account{}, 0)

	_, err := service.ReplacePreferences(context.Background(), 42, map[string]any{"theme": "dark"})
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

// # Statistics

/*
TestGetStats aggregates active accounts, month-to-date signups, and live sessions.
*/
func TestGetStats(t *testing.T) {
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	accounts := map[int64]*auth.Account{
		1: {ID: 1, IsActive: true, CreatedAt: monthStart.Add(24 * time.Hour)},
		2: {ID: 2, IsActive: true, CreatedAt: monthStart.Add(-30 * 24 * time.Hour)},
		3: {ID: 3, IsActive: false, CreatedAt: monthStart.Add(-60 * 24 * time.Hour)},
	}
	service := newTestService(accounts, 7)

	stats, err := service.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalUsers)
	assert.Equal(t, int64(1), stats.NewUsersThisMonth)
	assert.Equal(t, int64(7), stats.ActiveSessions)
}
