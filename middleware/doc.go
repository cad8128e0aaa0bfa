// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (status,
duration_ms). Each request carries an id from the X-Request-ID header, or a
new UUID when the client sent none; the id is echoed in the response.

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows methods GET, POST, PUT, DELETE, OPTIONS with headers
Content-Type, Authorization, X-Admin-Key, X-Request-ID.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies:

	var req models.CreateQuestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the client IP. RemoteAddr is used unless trustProxy is set, in which
case X-Forwarded-For and X-Real-IP are honoured:

	ip := middleware.GetClientIP(r, cfg.TrustProxy)

# Rate Limiting

RateLimiter keeps one token bucket per hashed client IP:

	limiter := middleware.NewRateLimiter(cfg.VoteRate, cfg.VoteBurst, cfg.AdminKey, cfg.TrustProxy)
	mux.HandleFunc("POST /polls/{id}/vote/{$}", limiter.Wrap(handler))

Rejected requests get 429 Too Many Requests with a Retry-After header.
Buckets idle for ten minutes are dropped.
*/
package middleware
