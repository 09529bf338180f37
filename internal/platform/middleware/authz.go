// Copyright (c) 2026 StockSeer.AI. All rights reserved.
// Author: dev@stockseer.app

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/stockseer/api/internal/platform/apperr"
	"github.com/stockseer/api/internal/platform/constants"
	"github.com/stockseer/api/internal/platform/ctxutil"
	"github.com/stockseer/api/internal/platform/respond"
	"github.com/stockseer/api/internal/platform/sec"
)

// SessionResolver defines the interface needed to resolve opaque bearer
// tokens in middleware.
//
// # Why an interface?
//
// Defining SessionResolver here decouples the middleware from the auth
// service implementation, allowing us to easily inject fakes during unit
// testing. The resolver performs a read-only lookup: it never mutates or
// deletes the session it inspects, even when the session turns out to be
// expired.
type SessionResolver interface {
	ResolveSession(ctx context.Context, token string) (*sec.Principal, error)
}

// Authenticate extracts and resolves the opaque session token from the
// Authorization header.
//
// # Flow
//  1. Check for 'Authorization: Bearer <token>' header.
//  2. If absent, request proceeds as anonymous.
//  3. If present, resolve the token against the session store.
//  4. Inject the [*sec.Principal] and the raw token into the request context.
//
// Unlike a signed-claims scheme, every authenticated request resolves the
// token against the store: revocation (logout) is effective immediately.
func Authenticate(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authHeader := request.Header.Get(constants.HeaderAuthorization)

			// ── 1. Anonymous Access ───────────────────────────────────────────
			if authHeader == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Format Validation ──────────────────────────────────────────
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				respond.Error(writer, request, apperr.Unauthorized("Invalid authorization format"))
				return
			}

			// ── 3. Token Resolution ───────────────────────────────────────────
			token := parts[1]
			user, err := resolver.ResolveSession(request.Context(), token)
			if err != nil {
				respond.Error(writer, request, apperr.Unauthorized("Invalid or expired session"))
				return
			}

			// ── 4. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithAuthUser(request.Context(), user)
			ctx = ctxutil.WithSessionToken(ctx, token)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAuth blocks requests that are not authenticated.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate].
//
// # Flow
//  1. Check if a [*sec.Principal] exists in context.
//  2. If missing, abort with HTTP 401 Unauthorized.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		user := ctxutil.GetAuthUser(request.Context())
		if user == nil {
			respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}

// RequireTier blocks requests if the authenticated user's subscription plan
// is below the required tier.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate]. It automatically
// implies [RequireAuth] so you don't need to mount both.
//
// # Flow
//  1. Check if a [*sec.Principal] exists in context (implies AuthN).
//  2. Check if the user's tier meets or exceeds the target via [sec.SubscriptionTier.AtLeast].
//  3. If insufficient, abort with HTTP 403 Forbidden.
func RequireTier(tier sec.SubscriptionTier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			user := ctxutil.GetAuthUser(request.Context())

			// ── 1. Authentication Check ───────────────────────────────────────
			if user == nil {
				respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
				return
			}

			// ── 2. Plan Check ─────────────────────────────────────────────────
			if !user.SubscriptionTier.AtLeast(tier) {
				respond.Error(writer, request, apperr.Forbidden("Upgrade required for this feature"))
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}
