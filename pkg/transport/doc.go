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

// Package transport executes signed HTTP requests against a chain.
//
// The dispatcher owns everything time- and network-dependent so the signer
// can stay pure: it captures the wall-clock timestamp at send time, signs,
// transmits, and interprets the result.
//
// # Error mapping
//
//   - 2xx — success; JSON bodies are parsed, others returned raw
//   - 401/403 — dcerror.AuthenticationError, never retried
//   - 404 — dcerror.NotFoundError
//   - other 4xx — dcerror.BadRequestError with the server payload verbatim
//   - 5xx / network failure — retried (idempotent calls only), then
//     dcerror.UnreachableError
//
// # Retries
//
// Retries are immediate (no backoff — this is a thin client, not a
// resilience engine) and bounded by WithMaxRetries. Each attempt re-signs
// with a freshly captured timestamp, since a stale timestamp would itself
// be rejected outside the chain's freshness window. GET is always
// retryable; other verbs only when Request.Idempotent is set.
//
// # Concurrency
//
// A single dispatcher is safe for unbounded concurrent use: the identity
// is immutable, every signing input is a per-call value, and SendAll
// fans independent requests out over the shared connection pool.
package transport
