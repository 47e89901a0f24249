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

package signer

import (
	"net/http"

	"github.com/dragonchain/dragonchain-sdk-go/pkg/credentials"
)

// RequestSigner produces the signed header set for a chain request.
// Implementations must be pure: no I/O, no clock reads, no randomness.
// For a fixed (identity, request) pair the output is byte-identical on
// every invocation.
type RequestSigner interface {
	// SignRequest builds the canonical string for req, computes the HMAC
	// signature with the identity's key, and returns the full header set.
	SignRequest(identity credentials.Identity, req SigningRequest) (SignedHeaders, error)

	// Signature returns the raw MAC bytes for req. Used by verifiers to
	// recompute and compare.
	Signature(identity credentials.Identity, req SigningRequest) ([]byte, error)
}

// SigningRequest is the per-call value signed into the Authorization
// header. It is constructed fresh for each call and never shared.
type SigningRequest struct {
	// Method is the HTTP verb (GET, POST, PUT, PATCH, DELETE).
	Method string

	// Path is the full path including any query string, exactly as it will
	// be transmitted, starting with a '/'. The signer and the dispatcher
	// must share this single string: any divergence is a verification
	// failure on the chain.
	Path string

	// Body is the exact bytes that will be transmitted. Empty bodies sign
	// the digest of the empty byte sequence.
	Body []byte

	// ContentType accompanies a non-empty body and is itself signed.
	ContentType string

	// Timestamp is the RFC3339 UTC time of transmission, captured by the
	// caller. The signer never generates it.
	Timestamp string
}

// SignedHeaders is the header set emitted for one signed request. It is a
// per-call value, sent as HTTP headers and never persisted.
type SignedHeaders struct {
	Dragonchain   string
	Authorization string
	Timestamp     string
	ContentType   string
}

// Apply sets the headers on an outgoing HTTP request. Content-Type is only
// set when a body accompanies the request.
func (h SignedHeaders) Apply(req *http.Request) {
	req.Header.Set("dragonchain", h.Dragonchain)
	req.Header.Set("Authorization", h.Authorization)
	req.Header.Set("timestamp", h.Timestamp)
	if h.ContentType != "" {
		req.Header.Set("Content-Type", h.ContentType)
	}
}
