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

// Package signer builds the HMAC-signed header set for chain requests.
//
// # Signing scheme
//
// Requests are authenticated by an HMAC over a canonical string joined
// with newline separators, in this exact order:
//
//	METHOD
//	/full/path?including=query
//	<chain id>
//	<RFC3339 timestamp>
//	<content type, empty without a body>
//	base64(HASH(body))
//
// The signature is base64(HMAC(auth key, canonical string)) and is emitted
// in the Authorization header:
//
//	Authorization: DC1-HMAC-SHA256 <auth key id>:<base64 signature>
//
// together with the dragonchain, timestamp and (when a body is present)
// Content-Type headers. The chain reconstructs the same canonical string
// independently, so the path must be the exact string transmitted on the
// wire and the body digest must cover the exact bytes sent.
//
// # Purity
//
// The signer is a pure function. The timestamp is supplied by the caller,
// never read from a clock inside the signer, which keeps repeated
// invocations byte-identical and makes the scheme testable with fixed
// vectors:
//
//	s := signer.NewDefaultHMACSigner()
//	headers, err := s.SignRequest(identity, signer.SigningRequest{
//	    Method:    "GET",
//	    Path:      "/v1/status",
//	    Timestamp: "2020-01-01T00:00:00Z",
//	})
//
// # Algorithms
//
// The identity's Algorithm field selects the hash/MAC pair from a closed
// set: SHA256 (default), BLAKE2b512 and SHA3-256.
package signer
