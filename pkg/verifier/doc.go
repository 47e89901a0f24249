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

// Package verifier checks HMAC Authorization headers produced by the
// signer package.
//
// It is the receiving half of the signing scheme: given the same request
// components and the shared auth key, it recomputes the signature and
// compares in constant time. Smart-contract webhook receivers use it
// (usually through the server package middleware) to authenticate calls
// from a chain:
//
//	v := verifier.NewDefaultHMACVerifier()
//	err := v.VerifyRequest(identity, signer.SigningRequest{
//	    Method:    r.Method,
//	    Path:      r.URL.RequestURI(),
//	    Body:      body,
//	    Timestamp: r.Header.Get("timestamp"),
//	}, r.Header.Get("Authorization"))
package verifier
