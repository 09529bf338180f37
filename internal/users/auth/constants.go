// Copyright (c) 2026 StockSeer.AI. All rights reserved.
// Author: dev@stockseer.app

package auth

import "time"

// # Authentication Constraints

const (
	// SessionTokenTTL is the duration a session token remains valid.
	// Long-lived (30 days) to provide a good user experience; every request
	// revalidates against the store, so revocation does not wait on expiry.
	SessionTokenTTL = 30 * 24 * time.Hour

	// SessionTokenLength is the byte length of entropy in a session token.
	// 32 bytes (256 bits) before URL-safe base64 encoding.
	SessionTokenLength = 32

	// MinPasswordLength is the minimum accepted password length at registration.
	MinPasswordLength = 8

	// MaxUsernameLength bounds usernames to keep display layouts sane.
	MaxUsernameLength = 50

	// MaxFullNameLength matches the account column width.
	MaxFullNameLength = 255
)
