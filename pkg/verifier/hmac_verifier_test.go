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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dragonchain/dragonchain-sdk-go/pkg/credentials"
	"github.com/dragonchain/dragonchain-sdk-go/pkg/signer"
)

func testIdentity() credentials.Identity {
	return credentials.Identity{
		DragonchainID: "35a7371c-a20a-4830-9a59-5d654fcd0a4a",
		AuthKeyID:     "JSDMWFUJDVTC",
		AuthKey:       "n3hlldsFxFdP2De0yMu6A4MFRh1HGzFvn6rJ0ICZzkE",
		Algorithm:     credentials.AlgorithmSHA256,
	}
}

func signedRequest(t *testing.T, identity credentials.Identity, req signer.SigningRequest) string {
	t.Helper()
	headers, err := signer.NewDefaultHMACSigner().SignRequest(identity, req)
	require.NoError(t, err)
	return headers.Authorization
}

func TestVerifyRequest_RoundTrip(t *testing.T) {
	// Test Case 1: a header produced by the signer verifies cleanly
	identity := testIdentity()
	req := signer.SigningRequest{
		Method:      "POST",
		Path:        "/v1/transaction",
		Body:        []byte(`{"payload":"x"}`),
		ContentType: "application/json",
		Timestamp:   "2020-01-01T00:00:00Z",
	}
	authorization := signedRequest(t, identity, req)

	v := NewDefaultHMACVerifier()
	assert.NoError(t, v.VerifyRequest(identity, req, authorization))
}

func TestVerifyRequest_RoundTrip_AllAlgorithms(t *testing.T) {
	// Test Case 2: verification honors the algorithm carried in the header
	for _, alg := range []credentials.Algorithm{
		credentials.AlgorithmSHA256,
		credentials.AlgorithmBLAKE2b512,
		credentials.AlgorithmSHA3256,
	} {
		identity := testIdentity()
		identity.Algorithm = alg
		req := signer.SigningRequest{Method: "GET", Path: "/v1/status", Timestamp: "2020-01-01T00:00:00Z"}
		authorization := signedRequest(t, identity, req)

		v := NewDefaultHMACVerifier()
		assert.NoError(t, v.VerifyRequest(identity, req, authorization), string(alg))
	}
}

func TestVerifyRequest_TamperedBody(t *testing.T) {
	// Test Case 3: any change to the signed components fails verification
	identity := testIdentity()
	req := signer.SigningRequest{
		Method:      "POST",
		Path:        "/v1/transaction",
		Body:        []byte(`{"payload":"x"}`),
		ContentType: "application/json",
		Timestamp:   "2020-01-01T00:00:00Z",
	}
	authorization := signedRequest(t, identity, req)

	tampered := req
	tampered.Body = []byte(`{"payload":"y"}`)

	v := NewDefaultHMACVerifier()
	assert.Error(t, v.VerifyRequest(identity, tampered, authorization))
}

func TestVerifyRequest_WrongKey(t *testing.T) {
	// Test Case 4: a signature made with another key is rejected
	identity := testIdentity()
	req := signer.SigningRequest{Method: "GET", Path: "/v1/status", Timestamp: "2020-01-01T00:00:00Z"}

	other := identity
	other.AuthKey = "some-other-secret"
	authorization := signedRequest(t, other, req)

	v := NewDefaultHMACVerifier()
	assert.Error(t, v.VerifyRequest(identity, req, authorization))
}

func TestVerifyRequest_WrongKeyID(t *testing.T) {
	// Test Case 5: key id mismatch is rejected before comparing MACs
	identity := testIdentity()
	req := signer.SigningRequest{Method: "GET", Path: "/v1/status", Timestamp: "2020-01-01T00:00:00Z"}

	other := identity
	other.AuthKeyID = "SOMEOTHERKEYID"
	authorization := signedRequest(t, other, req)

	v := NewDefaultHMACVerifier()
	err := v.VerifyRequest(identity, req, authorization)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "key id")
}

func TestVerifyRequest_MalformedHeader(t *testing.T) {
	// Test Case 6: garbage headers fail with a parse error, not a panic
	identity := testIdentity()
	req := signer.SigningRequest{Method: "GET", Path: "/v1/status", Timestamp: "2020-01-01T00:00:00Z"}

	v := NewDefaultHMACVerifier()
	assert.Error(t, v.VerifyRequest(identity, req, "Bearer nope"))
	assert.Error(t, v.VerifyRequest(identity, req, "DC1-HMAC-SHA256 JSDMWFUJDVTC:!!!not-base64!!!"))
	assert.Error(t, v.VerifyRequest(identity, req, ""))
}
