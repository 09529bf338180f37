// Copyright (c) 2026 StockSeer.AI. All rights reserved.
// Author: dev@stockseer.app

package auth

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockseer/api/internal/platform/apperr"
	"github.com/stockseer/api/internal/platform/sec"
)

// # In-Memory Fakes

// fakeAccountRepository is an in-memory AccountRepository enforcing the same
// uniqueness semantics as the users.account table.
type fakeAccountRepository struct {
	accounts map[int64]*Account
	nextID   int64
}

func newFakeAccountRepository() *fakeAccountRepository {
	return &fakeAccountRepository{accounts: map[int64]*Account{}, nextID: 1}
}

func (r *fakeAccountRepository) Create(_ context.Context, account *Account) error {
	for _, existing := range r.accounts {
		if existing.Username == account.Username || existing.Email == account.Email {
			return apperr.Conflict("Username or email is already registered")
		}
	}
	account.ID = r.nextID
	r.nextID++
	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now()
	}
	copied := *account
	r.accounts[account.ID] = &copied
	return nil
}

func (r *fakeAccountRepository) FindActiveByUsername(_ context.Context, username string) (*Account, error) {
	for _, account := range r.accounts {
		if account.Username == username && account.IsActive {
			copied := *account
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("Account not found with this username")
}

func (r *fakeAccountRepository) FindActiveByEmail(_ context.Context, email string) (*Account, error) {
	for _, account := range r.accounts {
		if account.Email == email && account.IsActive {
			copied := *account
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("Account not found with this email")
}

func (r *fakeAccountRepository) FindByID(_ context.Context, id int64) (*Account, error) {
	account, ok := r.accounts[id]
	if !ok {
		return nil, apperr.NotFound("Account not found")
	}
	copied := *account
	return &copied, nil
}

// fakeSessionRepository is an in-memory SessionRepository keyed by raw token.
type fakeSessionRepository struct {
	accounts *fakeAccountRepository
	sessions map[string]*Session
	nextID   int64
}

func newFakeSessionRepository(accounts *fakeAccountRepository) *fakeSessionRepository {
	return &fakeSessionRepository{accounts: accounts, sessions: map[string]*Session{}, nextID: 1}
}

func (r *fakeSessionRepository) CreateWithLoginStamp(_ context.Context, session *Session) error {
	session.ID = r.nextID
	r.nextID++
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}
	if account, ok := r.accounts.accounts[session.UserID]; ok {
		stamp := session.CreatedAt
		account.LastLogin = &stamp
	}
	copied := *session
	r.sessions[session.Token] = &copied
	return nil
}

func (r *fakeSessionRepository) FindUserByToken(_ context.Context, token string) (*sec.Principal, error) {
	session, ok := r.sessions[token]
	if !ok || time.Now().After(session.ExpiresAt) {
		return nil, apperr.NotFound("Session not found or expired")
	}
	account, ok := r.accounts.accounts[session.UserID]
	if !ok || !account.IsActive {
		return nil, apperr.NotFound("Session not found or expired")
	}
	return &sec.Principal{
		UserID:           account.ID,
		Username:         account.Username,
		Email:            account.Email,
		FullName:         account.FullName,
		SubscriptionTier: account.SubscriptionTier,
		Preferences:      account.Preferences,
	}, nil
}

func (r *fakeSessionRepository) Delete(_ context.Context, token string) error {
	delete(r.sessions, token)
	return nil
}

func (r *fakeSessionRepository) DeleteExpired(_ context.Context) (int64, error) {
	var removed int64
	for token, session := range r.sessions {
		if time.Now().After(session.ExpiresAt) {
			delete(r.sessions, token)
			removed++
		}
	}
	return removed, nil
}

func (r *fakeSessionRepository) CountActive(_ context.Context) (int64, error) {
	var count int64
	for _, session := range r.sessions {
		if time.Now().Before(session.ExpiresAt) {
			count++
		}
	}
	return count, nil
}

// newTestService wires a Service over fresh fakes.
func newTestService() (*Service, *fakeAccountRepository, *fakeSessionRepository) {
	accounts := newFakeAccountRepository()
	sessions := newFakeSessionRepository(accounts)
	return NewService(accounts, sessions), accounts, sessions
}

func mustRegister(t *testing.T, service *Service, username, email, password string) *Account {
	t.Helper()
	account, err := service.Register(context.Background(), RegisterInput{
		Username: username,
		Email:    email,
		Password: password,
		FullName: "Test User",
	})
	require.NoError(t, err)
	return account
}

// # Registration

/*
TestRegister_Success verifies the initial state of a freshly created account.
*/
func TestRegister_Success(t *testing.T) {
	service, _, _ := newTestService()

	account := mustRegister(t, service, "trader_jane", "jane@example.com", "s3cretpass")

	assert.NotZero(t, account.ID)
	assert.Equal(t, sec.TierFree, account.SubscriptionTier)
	assert.True(t, account.IsActive)
	assert.Nil(t, account.LastLogin)
	assert.NotNil(t, account.Preferences)
	assert.Empty(t, account.Preferences)

	// The stored hash must verify against the original password and must not
	// be the password itself.
	assert.NotEqual(t, "s3cretpass", account.PasswordHash)
	assert.True(t, sec.CheckPasswordHash("s3cretpass", account.PasswordHash))
}

/*
TestRegister_DuplicateIdentity checks that username and email collisions both
surface as a 409 Conflict.
*/
func TestRegister_DuplicateIdentity(t *testing.T) {
	tests := []struct {
		name     string
		username string
		email    string
	}{
		{"duplicate_username", "trader_jane", "other@example.com"},
		{"duplicate_email", "other_user", "jane@example.com"},
		{"duplicate_both", "trader_jane", "jane@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, _ := newTestService()
			mustRegister(t, service, "trader_jane", "jane@example.com", "s3cretpass")

			_, err := service.Register(context.Background(), RegisterInput{
				Username: tt.username,
				Email:    tt.email,
				Password: "anotherpass",
				FullName: "Other User",
			})

			require.Error(t, err)
			assert.True(t, apperr.IsConflict(err))
			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, http.StatusConflict, ae.HTTPStatus)
		})
	}
}

// # Login

/*
TestLogin_Success checks the full credential flow: the issued token resolves
back to the owning identity and lastlogin gets stamped.
*/
func TestLogin_Success(t *testing.T) {
	service, accounts, _ := newTestService()
	registered := mustRegister(t, service, "trader_jane", "jane@example.com", "s3cretpass")

	tests := []struct {
		name  string
		login string
	}{
		{"by_username", "trader_jane"},
		{"by_email", "jane@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, err := service.Login(context.Background(), LoginInput{
				Login:    tt.login,
				Password: "s3cretpass",
			})
			require.NoError(t, err)

			assert.NotEmpty(t, session.Token)
			assert.WithinDuration(t, time.Now().Add(SessionTokenTTL), session.ExpiresAt, 5*time.Second)

			// The token resolves to the registered user.
			principal, err := service.ResolveSession(context.Background(), session.Token)
			require.NoError(t, err)
			assert.Equal(t, registered.ID, principal.UserID)
			assert.Equal(t, "trader_jane", principal.Username)

			// lastlogin was stamped alongside the session insert.
			stored := accounts.accounts[registered.ID]
			require.NotNil(t, stored.LastLogin)
		})
	}
}

/*
TestLogin_Failures verifies that every failure mode returns the same generic
401 so clients cannot enumerate accounts.
*/
func TestLogin_Failures(t *testing.T) {
	service, accounts, _ := newTestService()
	registered := mustRegister(t, service, "trader_jane", "jane@example.com", "s3cretpass")

	deactivated := mustRegister(t, service, "gone_user", "gone@example.com", "s3cretpass")
	accounts.accounts[deactivated.ID].IsActive = false
	_ = registered

	tests := []struct {
		name     string
		login    string
		password string
	}{
		{"unknown_username", "nobody", "s3cretpass"},
		{"unknown_email", "nobody@example.com", "s3cretpass"},
		{"wrong_password", "trader_jane", "wrongpass"},
		{"deactivated_account", "gone_user", "s3cretpass"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Login(context.Background(), LoginInput{
				Login:    tt.login,
				Password: tt.password,
			})

			require.Error(t, err)
			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, http.StatusUnauthorized, ae.HTTPStatus)
			assert.Equal(t, "Invalid login credentials", ae.Message)
		})
	}
}

/*
TestLogin_TokensAreUnique ensures independent logins never share a token.
*/
func TestLogin_TokensAreUnique(t *testing.T) {
	service, _, _ := newTestService()
	mustRegister(t, service, "trader_jane", "jane@example.com", "s3cretpass")

	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		session, err := service.Login(context.Background(), LoginInput{
			Login:    "trader_jane",
			Password: "s3cretpass",
		})
		require.NoError(t, err)
		assert.False(t, seen[session.Token], "token issued twice")
		seen[session.Token] = true
	}
}

// # Session Resolution

/*
TestResolveSession_Rejections covers unknown, empty, and expired tokens, and
tokens whose owner has been deactivated.
*/
func TestResolveSession_Rejections(t *testing.T) {
	service, accounts, sessions := newTestService()
	registered := mustRegister(t, service, "trader_jane", "jane@example.com", "s3cretpass")

	live, err := service.Login(context.Background(), LoginInput{Login: "trader_jane", Password: "s3cretpass"})
	require.NoError(t, err)

	t.Run("empty_token", func(t *testing.T) {
		_, err := service.ResolveSession(context.Background(), "")
		require.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, apperr.As(err).HTTPStatus)
	})

	t.Run("unknown_token", func(t *testing.T) {
		_, err := service.ResolveSession(context.Background(), "not-a-real-token")
		require.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, apperr.As(err).HTTPStatus)
	})

	t.Run("expired_token", func(t *testing.T) {
		// Flip the stored expiry into the past; the very same token that
		// validated a moment ago must now be rejected.
		_, err := service.ResolveSession(context.Background(), live.Token)
		require.NoError(t, err)

		sessions.sessions[live.Token].ExpiresAt = time.Now().Add(-time.Minute)

		_, err = service.ResolveSession(context.Background(), live.Token)
		require.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, apperr.As(err).HTTPStatus)

		sessions.sessions[live.Token].ExpiresAt = time.Now().Add(time.Hour)
	})

	t.Run("deactivated_owner", func(t *testing.T) {
		accounts.accounts[registered.ID].IsActive = false
		defer func() { accounts.accounts[registered.ID].IsActive = true }()

		_, err := service.ResolveSession(context.Background(), live.Token)
		require.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, apperr.As(err).HTTPStatus)
	})
}

/*
TestResolveSession_IsReadOnly confirms that resolving a session, including a
failed resolve, never deletes or alters the stored row.
*/
func TestResolveSession_IsReadOnly(t *testing.T) {
	service, _, sessions := newTestService()
	mustRegister(t, service, "trader_jane", "jane@example.com", "s3cretpass")

	live, err := service.Login(context.Background(), LoginInput{Login: "trader_jane", Password: "s3cretpass"})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := service.ResolveSession(context.Background(), live.Token)
		require.NoError(t, err)
	}
	_, err = service.ResolveSession(context.Background(), "bogus")
	require.Error(t, err)

	assert.Len(t, sessions.sessions, 1)
	assert.Contains(t, sessions.sessions, live.Token)
}

// # Logout

/*
TestLogout_Idempotent verifies that logout removes the session and that
repeating it (or logging out garbage) still succeeds.
*/
func TestLogout_Idempotent(t *testing.T) {
	service, _, sessions := newTestService()
	mustRegister(t, service, "trader_jane", "jane@example.com", "s3cretpass")

	live, err := service.Login(context.Background(), LoginInput{Login: "trader_jane", Password: "s3cretpass"})
	require.NoError(t, err)

	require.NoError(t, service.Logout(context.Background(), live.Token))
	assert.Empty(t, sessions.sessions)

	// The token is dead: resolution now fails.
	_, err = service.ResolveSession(context.Background(), live.Token)
	require.Error(t, err)

	// Second logout and unknown-token logout both succeed silently.
	require.NoError(t, service.Logout(context.Background(), live.Token))
	require.NoError(t, service.Logout(context.Background(), "never-existed"))
	require.NoError(t, service.Logout(context.Background(), ""))
}

// # Maintenance

/*
TestSweepExpiredSessions checks that only expired rows are removed.
*/
func TestSweepExpiredSessions(t *testing.T) {
	service, _, sessions := newTestService()
	mustRegister(t, service, "trader_jane", "jane@example.com", "s3cretpass")

	fresh, err := service.Login(context.Background(), LoginInput{Login: "trader_jane", Password: "s3cretpass"})
	require.NoError(t, err)
	stale, err := service.Login(context.Background(), LoginInput{Login: "trader_jane", Password: "s3cretpass"})
	require.NoError(t, err)

	sessions.sessions[stale.Token].ExpiresAt = time.Now().Add(-time.Hour)

	removed, err := service.SweepExpiredSessions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)
	assert.Contains(t, sessions.sessions, fresh.Token)
	assert.NotContains(t, sessions.sessions, stale.Token)
}

// # Token Generation

/*
TestGenerateSecureToken_Entropy checks token shape: URL-safe base64 of the
configured byte length, unique across draws.
*/
func TestGenerateSecureToken_Entropy(t *testing.T) {
	token, err := sec.GenerateSecureToken(SessionTokenLength)
	require.NoError(t, err)

	// 32 bytes of entropy encode to 43 unpadded base64 characters.
	assert.Len(t, token, 43)
	assert.NotContains(t, token, "+")
	assert.NotContains(t, token, "/")
	assert.NotContains(t, token, "=")
}
