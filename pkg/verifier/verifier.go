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

package verifier

import (
	"github.com/dragonchain/dragonchain-sdk-go/pkg/credentials"
	"github.com/dragonchain/dragonchain-sdk-go/pkg/signer"
)

// SignatureVerifier checks an Authorization header against a recomputed
// signature for the same request components.
type SignatureVerifier interface {
	// VerifyRequest recomputes the signature for req using the identity's
	// key and compares it, in constant time, with the one carried in the
	// authorization header. A nil return means the signature is genuine.
	VerifyRequest(identity credentials.Identity, req signer.SigningRequest, authorization string) error
}
