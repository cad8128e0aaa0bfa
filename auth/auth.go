// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
)

// AdminKeyHeader carries the admin key on admin API requests
const AdminKeyHeader = "X-Admin-Key"

var ErrInvalidAdminKey = errors.New("invalid admin key")

// ValidateAdminKey checks the provided key against the configured one
// in constant time. An empty configured key never validates.
func ValidateAdminKey(provided, configured string) error {
	if configured == "" || !hmac.Equal([]byte(provided), []byte(configured)) {
		return ErrInvalidAdminKey
	}
	return nil
}

// ValidateRequest checks the admin key header of r
func ValidateRequest(r *http.Request, configured string) error {
	return ValidateAdminKey(r.Header.Get(AdminKeyHeader), configured)
}

// HashIP returns a salted one-way hash of an IP address
func HashIP(ip, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(ip))
	sum := h.Sum(nil)
	// First 16 hex chars (64 bits)
	return hex.EncodeToString(sum[:8])
}
