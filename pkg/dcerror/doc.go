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

// Package dcerror defines the typed errors surfaced by the SDK.
//
// Every failure mode has a distinct type so callers can branch with
// errors.As:
//
//	resp, err := c.GetTransaction(ctx, id)
//	var notFound *dcerror.NotFoundError
//	if errors.As(err, &notFound) {
//	    // transaction does not exist
//	}
//
// The taxonomy:
//
//   - CredentialsNotFoundError — no identity resolvable from any source
//   - AuthenticationError — 401/403, bad signature or revoked key, never retried
//   - NotFoundError — 404
//   - BadRequestError — other 4xx, carries the server's JSON payload verbatim
//   - UnreachableError — exhausted retries on 5xx or network failure
//   - InvalidInputError — malformed call arguments, caught before any network call
//   - UnexpectedResponseError — 2xx body that could not be interpreted
package dcerror
