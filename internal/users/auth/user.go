// Copyright (c) 2026 StockSeer.AI. All rights reserved.
// Author: dev@stockseer.app

/*
Package auth implements the user identity and session management layer.

It defines the core domain entities (Account, Session) and logic for
registration, credential verification, and the opaque-token session
lifecycle that gates every personalized surface of the dashboard.

# Architecture

This layer is the "Truth" of the system. Entities defined here have no
external dependencies and encapsulate all business rules related to user
identity. Sessions are opaque database rows, not signed claims: deleting
the row is the one and only revocation mechanism.
*/
package auth

import (
	"time"

	"github.com/stockseer/api/internal/platform/sec"
)

// # Domain Entities

// Account represents a registered member of the StockSeer platform.
type Account struct {
	ID               int64                `json:"id"`
	Username         string               `json:"username"`
	Email            string               `json:"email"`
	PasswordHash     string               `json:"-"` // Explicitly omitted from JSON for security.
	FullName         string               `json:"full_name"`
	SubscriptionTier sec.SubscriptionTier `json:"subscription_tier"`
	Preferences      map[string]any       `json:"preferences"`
	IsActive         bool                 `json:"is_active"`
	LastLogin        *time.Time           `json:"last_login,omitempty"` // Nil until the first successful login.
	CreatedAt        time.Time            `json:"created_at"`
}

// Session represents an active opaque-token session.
//
// The token is stored raw and matched by equality; there is no revoked
// flag. A session is valid exactly when its row exists and ExpiresAt is
// in the future.
type Session struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Token     string    `json:"-"` // Raw opaque token. Omitted for security.
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// # Field Identifiers

// Global field names for validation and identity mapping in the authentication domain.
const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldFullName = "full_name"
	FieldLogin    = "login"
	FieldToken    = "token"
	FieldUser     = "user"
)
