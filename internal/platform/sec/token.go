// Copyright (c) 2026 StockSeer.AI. All rights reserved.
// Author: dev@stockseer.app

// Package sec provides cryptographic primitives and identity types.
//
// # Architecture
//
// This package isolates security-sensitive code (hashing, token generation)
// from the domain logic. It acts as an Infrastructure service injected into
// the Application layer.
package sec

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// GenerateSecureToken returns a URL-safe, cryptographically random string
// built from byteLength bytes of entropy.
//
// # Entropy
//
// Session tokens are minted with 32 bytes (256 bits), which makes online or
// offline guessing infeasible. The encoded form carries no decodable
// structure — it is an opaque bearer credential.
func GenerateSecureToken(byteLength int) (string, error) {
	raw := make([]byte, byteLength)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("sec: failed to read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}
