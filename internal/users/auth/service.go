// Copyright (c) 2026 StockSeer.AI. All rights reserved.
// Author: dev@stockseer.app

package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/stockseer/api/internal/platform/apperr"
	"github.com/stockseer/api/internal/platform/ctxutil"
	"github.com/stockseer/api/internal/platform/sec"
)

// # Service

// Service implements user authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing,
// registration, or login logic must be reviewed before merging.
type Service struct {
	accountRepository AccountRepository
	sessionRepository SessionRepository
}

// NewService constructs a new [Service] with necessary dependencies.
func NewService(accountRepo AccountRepository, sessionRepo SessionRepository) *Service {
	return &Service{
		accountRepository: accountRepo,
		sessionRepository: sessionRepo,
	}
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new member.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	FullName string
}

/*
Register validates, hashes, and persists a brand new user account.

Description: Hashes the password with bcrypt and inserts the account in a
single statement. Duplicate usernames or emails are detected by the
database's unique constraints, never by a racy pre-check; the conflict is
surfaced as a client-safe 409 that does not say which field collided.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *Account: Created entity
  - error: Conflict (if identity exists) or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*Account, error) {

	// Prevent storing plain-text passwords. Default cost is used for balance
	// between security and CPU utilization during registration spikes.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	// New accounts start active on the free tier with empty preferences.
	account := &Account{
		Username:         input.Username,
		Email:            input.Email,
		PasswordHash:     hashedPassword,
		FullName:         input.FullName,
		SubscriptionTier: sec.TierFree,
		Preferences:      map[string]any{},
		IsActive:         true,
	}

	// Insert-and-catch: the repository maps a unique violation to Conflict.
	if err := service.accountRepository.Create(context, account); err != nil {
		return nil, err
	}

	return account, nil
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Login    string // Can be Username or Email
	Password string
}

// LoginSession represents a successfully established user session.
type LoginSession struct {
	Token     string
	ExpiresAt time.Time
	User      *Account
}

/*
Login validates user credentials and establishes a session.

Description: Resolves the identifier (email if it contains '@', username
otherwise), performs a constant-time password comparison, then creates the
session and stamps lastlogin in one transaction.

Every failure mode — unknown identifier, wrong password, deactivated
account — returns the same generic Unauthorized to prevent enumeration.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *LoginSession: Transport-ready session token and profile
  - error: Unauthorized or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (*LoginSession, error) {

	// Identifier disambiguation: an '@' marks the login as an email address.
	var account *Account
	var err error
	if strings.Contains(input.Login, "@") {
		account, err = service.accountRepository.FindActiveByEmail(context, input.Login)
	} else {
		account, err = service.accountRepository.FindActiveByUsername(context, input.Login)
	}

	// If (err != nil) the account does not exist or is deactivated.
	// Generic message to prevent enumeration.
	if err != nil {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	// Verify password hash using constant-time comparison in bcrypt to prevent timing attacks
	if !sec.CheckPasswordHash(input.Password, account.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	// Generate the opaque session token
	token, err := sec.GenerateSecureToken(SessionTokenLength)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	// Create and persist the session; lastlogin is stamped in the same transaction
	now := time.Now()
	session := &Session{
		UserID:    account.ID,
		Token:     token,
		ExpiresAt: now.Add(SessionTokenTTL),
		CreatedAt: now,
	}

	if err := service.sessionRepository.CreateWithLoginStamp(context, session); err != nil {
		return nil, fmt.Errorf("auth_service_session_creation_failed: %w", err)
	}

	account.LastLogin = &session.CreatedAt

	return &LoginSession{
		Token:     token,
		ExpiresAt: session.ExpiresAt,
		User:      account,
	}, nil
}

// # Session Resolution

/*
ResolveSession maps a raw session token to the owning user's identity.

Description: Pure read; resolving never extends, rotates, or deletes the
session. Expired tokens and tokens owned by deactivated accounts fail with
the same Unauthorized as unknown tokens.

Parameters:
  - context: context.Context
  - token: string

Returns:
  - *sec.Principal: Identity snapshot for context injection
  - error: Unauthorized or storage failures
*/
func (service *Service) ResolveSession(context context.Context, token string) (*sec.Principal, error) {
	if token == "" {
		return nil, apperr.Unauthorized("Invalid or expired session")
	}

	principal, err := service.sessionRepository.FindUserByToken(context, token)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.Unauthorized("Invalid or expired session")
		}
		return nil, fmt.Errorf("auth_service_resolve_session_failed: %w", err)
	}

	return principal, nil
}

/*
Logout permanently removes the session holding the given token.

Description: Idempotent; logging out an unknown, expired, or already
removed token succeeds silently. Storage failures are logged but not
surfaced, so a logout request observably always succeeds.

Parameters:
  - context: context.Context
  - token: string

Returns:
  - error: Always nil
*/
func (service *Service) Logout(context context.Context, token string) error {
	if token == "" {
		return nil
	}

	if err := service.sessionRepository.Delete(context, token); err != nil {
		ctxutil.GetLogger(context).Error("session delete failed during logout", "error", err)
	}

	return nil
}

// # Background Maintenance

/*
SweepExpiredSessions removes sessions past their expiration.

Description: Housekeeping entry point for the background sweeper.
Correctness never depends on it running; expired sessions are already
rejected at resolution time.

Parameters:
  - context: context.Context

Returns:
  - int64: Number of sessions removed
  - error: Cleanup failures
*/
func (service *Service) SweepExpiredSessions(context context.Context) (int64, error) {
	removed, err := service.sessionRepository.DeleteExpired(context)
	if err != nil {
		return 0, fmt.Errorf("auth_service_sweep_failed: %w", err)
	}
	return removed, nil
}
