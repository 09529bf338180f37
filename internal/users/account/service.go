// Copyright (c) 2026 StockSeer.AI. All rights reserved.
// Author: dev@stockseer.app

package account

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/stockseer/api/internal/users/auth"
)

// # Service Layer

// Service orchestrates business logic for profile access, preference
// persistence, and platform statistics.
type Service struct {
	accountRepository AccountRepository
	sessionCounter    SessionCounter
	logger            *slog.Logger
}

// NewService constructs a new [Service] with its repository dependencies.
func NewService(accountRepo AccountRepository, sessionCounter SessionCounter, logger *slog.Logger) *Service {
	return &Service{
		accountRepository: accountRepo,
		sessionCounter:    sessionCounter,
		logger:            logger,
	}
}

// # Profile Management

/*
GetProfile retrieves the full private identity of a user.

Parameters:
  - context: context.Context
  - userID: int64

Returns:
  - *auth.Account: The hydrated user profile
  - error: Not found or execution failures
*/
func (service *Service) GetProfile(context context.Context, userID int64) (*auth.Account, error) {
	account, err := service.accountRepository.FindByID(context, userID)
	if err != nil {
		return nil, fmt.Errorf("account_service_get_profile_failed: %w", err)
	}
	return account, nil
}

/*
ReplacePreferences overwrites the user's dashboard preference document.

Description: Wholesale replacement, never a merge. Clients that want to
change one key read the current document, modify it, and send it back.

Parameters:
  - context: context.Context
  - userID: int64
  - preferences: map[string]any (nil is normalized to an empty document)

Returns:
  - map[string]any: The stored document
  - error: Not found or storage failures
*/
func (service *Service) ReplacePreferences(context context.Context, userID int64, preferences map[string]any) (map[string]any, error) {
	if preferences == nil {
		preferences = map[string]any{}
	}

	if err := service.accountRepository.ReplacePreferences(context, userID, preferences); err != nil {
		return nil, fmt.Errorf("account_service_replace_preferences_failed: %w", err)
	}

	service.logger.Info("user_preferences_replaced", slog.Int64("user_id", userID), slog.Int("keys", len(preferences)))

	return preferences, nil
}

// # Platform Statistics

/*
GetStats aggregates platform-level account numbers.

Description: Active account total, accounts created since the start of the
current calendar month, and the live session count.

Parameters:
  - context: context.Context

Returns:
  - *Stats: Aggregated counters
  - error: Query failures
*/
func (service *Service) GetStats(context context.Context) (*Stats, error) {
	totalUsers, err := service.accountRepository.CountActive(context)
	if err != nil {
		return nil, fmt.Errorf("account_service_stats_total_failed: %w", err)
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	newUsers, err := service.accountRepository.CountCreatedSince(context, monthStart)
	if err != nil {
		return nil, fmt.Errorf("account_service_stats_new_users_failed: %w", err)
	}

	activeSessions, err := service.sessionCounter.CountActive(context)
	if err != nil {
		return nil, fmt.Errorf("account_service_stats_sessions_failed: %w", err)
	}

	return &Stats{
		TotalUsers:        totalUsers,
		NewUsersThisMonth: newUsers,
		ActiveSessions:    activeSessions,
	}, nil
}
