// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides admin key checks and IP hashing.

# Admin Keys

Admin API requests carry the configured key in the X-Admin-Key header:

	if err := auth.ValidateRequest(r, cfg.AdminKey); err != nil {
		// 401
	}

The comparison is constant time.

# IP Hashing

Client addresses are hashed before they are used as rate limiter keys:

	hash := auth.HashIP(ipAddress, salt)

Returns first 8 bytes (16 hex chars) of HMAC-SHA256.
*/
package auth
