// Copyright (C) 2026 Dragonchain SDK Contributors
//
// This file is part of dragonchain-sdk-go.
//
// dragonchain-sdk-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// dragonchain-sdk-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with dragonchain-sdk-go.  If not, see <https://www.gnu.org/licenses/>.

package server

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dragonchain/dragonchain-sdk-go/pkg/credentials"
	"github.com/dragonchain/dragonchain-sdk-go/pkg/signer"
	"github.com/dragonchain/dragonchain-sdk-go/pkg/verifier"
)

type contextKey string

const authKeyIDKey contextKey = "auth_key_id"

// ErrorHandler handles verification failures.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// HMACAuthMiddleware verifies the chain signature headers on inbound HTTP
// requests. It serves webhook receivers and test servers that want to
// authenticate callbacks signed the same way the client signs its calls.
type HMACAuthMiddleware struct {
	identity     credentials.Identity
	verifier     verifier.SignatureVerifier
	errorHandler ErrorHandler
	optional     bool
	maxSkew      time.Duration
	now          func() time.Time
}

// NewHMACAuthMiddleware creates middleware that verifies requests against
// the given identity's key pair.
func NewHMACAuthMiddleware(identity credentials.Identity) *HMACAuthMiddleware {
	return &HMACAuthMiddleware{
		identity:     identity,
		verifier:     verifier.NewDefaultHMACVerifier(),
		errorHandler: defaultErrorHandler,
		now:          time.Now,
	}
}

// SetErrorHandler sets a custom error handler.
func (m *HMACAuthMiddleware) SetErrorHandler(handler ErrorHandler) {
	m.errorHandler = handler
}

// SetOptional sets whether signature verification is optional.
// If true, requests without signature headers are allowed to pass through.
func (m *HMACAuthMiddleware) SetOptional(optional bool) {
	m.optional = optional
}

// SetMaxSkew bounds how far a request's signed timestamp may lie from the
// server clock. Zero (the default) disables the freshness check.
func (m *HMACAuthMiddleware) SetMaxSkew(maxSkew time.Duration) {
	m.maxSkew = maxSkew
}

// SetClock overrides the server clock used by the freshness check.
func (m *HMACAuthMiddleware) SetClock(now func() time.Time) {
	m.now = now
}

// Wrap wraps an HTTP handler with HMAC signature verification.
func (m *HMACAuthMiddleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Skip verification for OPTIONS requests (CORS preflight)
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		authorization := r.Header.Get("Authorization")
		timestamp := r.Header.Get("timestamp")
		chainID := r.Header.Get("dragonchain")

		if authorization == "" || timestamp == "" || chainID == "" {
			if m.optional {
				next.ServeHTTP(w, r)
				return
			}
			m.errorHandler(w, r, fmt.Errorf("missing signature headers"))
			return
		}

		if chainID != m.identity.DragonchainID {
			m.errorHandler(w, r, fmt.Errorf("request signed for a different chain"))
			return
		}

		if err := m.checkFreshness(timestamp); err != nil {
			m.errorHandler(w, r, err)
			return
		}

		// Read body to preserve it for the handler
		var bodyBytes []byte
		if r.Body != nil {
			bodyBytes, _ = io.ReadAll(r.Body)
			r.Body.Close()
		}
		r.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		signingReq := signer.SigningRequest{
			Method:      r.Method,
			Path:        r.URL.RequestURI(),
			Body:        bodyBytes,
			ContentType: r.Header.Get("Content-Type"),
			Timestamp:   timestamp,
		}
		if err := m.verifier.VerifyRequest(m.identity, signingReq, authorization); err != nil {
			m.errorHandler(w, r, fmt.Errorf("signature verification failed: %w", err))
			return
		}

		ctx := context.WithValue(r.Context(), authKeyIDKey, m.identity.AuthKeyID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// checkFreshness rejects timestamps outside the configured skew window.
func (m *HMACAuthMiddleware) checkFreshness(timestamp string) error {
	if m.maxSkew <= 0 {
		return nil
	}
	signedAt, err := time.Parse(time.RFC3339Nano, timestamp)
	if err != nil {
		return fmt.Errorf("malformed timestamp header: %w", err)
	}
	skew := m.now().Sub(signedAt)
	if skew < 0 {
		skew = -skew
	}
	if skew > m.maxSkew {
		return fmt.Errorf("request timestamp outside freshness window")
	}
	return nil
}

// AuthKeyIDFromContext extracts the verified auth key id from a request
// context. It is only present after Wrap has verified the request.
func AuthKeyIDFromContext(ctx context.Context) (string, bool) {
	keyID, ok := ctx.Value(authKeyIDKey).(string)
	return keyID, ok
}

// defaultErrorHandler is the default error handler.
func defaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	http.Error(w, fmt.Sprintf("Unauthorized: %s", err.Error()), http.StatusUnauthorized)
}
