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
	"crypto/hmac"
	"encoding/base64"
	"fmt"

	"github.com/dragonchain/dragonchain-sdk-go/pkg/credentials"
	"github.com/dragonchain/dragonchain-sdk-go/pkg/signer"
)

// DefaultHMACVerifier implements SignatureVerifier by recomputing the MAC
// with the same signer the client side uses. Stateless and safe for
// concurrent use.
type DefaultHMACVerifier struct {
	signer signer.RequestSigner
}

// NewDefaultHMACVerifier creates a new DefaultHMACVerifier.
func NewDefaultHMACVerifier() *DefaultHMACVerifier {
	return &DefaultHMACVerifier{signer: signer.NewDefaultHMACSigner()}
}

// VerifyRequest checks authorization against a recomputed signature. The
// algorithm is taken from the header (the client chooses it); the key id
// must match the identity's.
func (v *DefaultHMACVerifier) VerifyRequest(identity credentials.Identity, req signer.SigningRequest, authorization string) error {
	algorithm, keyID, encodedSig, err := signer.ParseAuthorization(authorization)
	if err != nil {
		return err
	}
	if keyID != identity.AuthKeyID {
		return fmt.Errorf("authorization key id %q does not match expected key id", keyID)
	}

	claimed, err := base64.StdEncoding.DecodeString(encodedSig)
	if err != nil {
		return fmt.Errorf("signature is not valid base64: %w", err)
	}

	recomputeIdentity := identity
	recomputeIdentity.Algorithm = algorithm
	expected, err := v.signer.Signature(recomputeIdentity, req)
	if err != nil {
		return fmt.Errorf("failed to recompute signature: %w", err)
	}

	if !hmac.Equal(claimed, expected) {
		return fmt.Errorf("signature mismatch")
	}
	return nil
}
