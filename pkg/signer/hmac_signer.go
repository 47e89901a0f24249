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
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"hash"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"

	"github.com/dragonchain/dragonchain-sdk-go/pkg/credentials"
	"github.com/dragonchain/dragonchain-sdk-go/pkg/dcerror"
)

// authScheme is the fixed prefix of the Authorization header. The full
// value reads: DC1-HMAC-<ALG> <auth key id>:<base64 signature>.
const authScheme = "DC1-HMAC"

// DefaultHMACSigner implements RequestSigner with the chain's HMAC
// authentication scheme. It is stateless; a single instance is safe for
// any number of concurrent callers.
type DefaultHMACSigner struct{}

// NewDefaultHMACSigner creates a new DefaultHMACSigner.
func NewDefaultHMACSigner() *DefaultHMACSigner {
	return &DefaultHMACSigner{}
}

// SignRequest signs req with the identity's key and returns the header set.
func (s *DefaultHMACSigner) SignRequest(identity credentials.Identity, req SigningRequest) (SignedHeaders, error) {
	mac, err := s.Signature(identity, req)
	if err != nil {
		return SignedHeaders{}, err
	}

	authorization := fmt.Sprintf("%s-%s %s:%s",
		authScheme, identity.Algorithm, identity.AuthKeyID, base64.StdEncoding.EncodeToString(mac))

	return SignedHeaders{
		Dragonchain:   identity.DragonchainID,
		Authorization: authorization,
		Timestamp:     req.Timestamp,
		ContentType:   req.ContentType,
	}, nil
}

// Signature computes the raw HMAC over the canonical string for req.
func (s *DefaultHMACSigner) Signature(identity credentials.Identity, req SigningRequest) ([]byte, error) {
	if err := validate(identity, req); err != nil {
		return nil, err
	}

	newHash, err := hashConstructor(identity.Algorithm)
	if err != nil {
		return nil, err
	}

	message := canonicalString(identity.DragonchainID, req, newHash)
	mac := hmac.New(newHash, []byte(identity.AuthKey))
	mac.Write([]byte(message))
	return mac.Sum(nil), nil
}

// ParseAuthorization splits an Authorization header produced by this
// scheme into its algorithm, auth key id and base64 signature parts.
func ParseAuthorization(header string) (credentials.Algorithm, string, string, error) {
	scheme, rest, ok := strings.Cut(header, " ")
	if !ok || !strings.HasPrefix(scheme, authScheme+"-") {
		return "", "", "", &dcerror.InvalidInputError{Reason: "authorization header is not an HMAC scheme"}
	}
	algorithm := credentials.Algorithm(strings.TrimPrefix(scheme, authScheme+"-"))
	if !algorithm.Valid() {
		return "", "", "", &dcerror.InvalidInputError{Reason: fmt.Sprintf("%s is not a supported hash algorithm", algorithm)}
	}
	keyID, sig, ok := strings.Cut(rest, ":")
	if !ok || keyID == "" || sig == "" {
		return "", "", "", &dcerror.InvalidInputError{Reason: "authorization header is missing key id or signature"}
	}
	return algorithm, keyID, sig, nil
}

// canonicalString joins the signed components with newline separators in
// the exact order the chain's verifier reconstructs: method, full path,
// chain id, timestamp, content type (empty without a body), and the base64
// digest of the body bytes. An empty body digests the empty byte sequence.
func canonicalString(chainID string, req SigningRequest, newHash func() hash.Hash) string {
	h := newHash()
	h.Write(req.Body)
	bodyDigest := base64.StdEncoding.EncodeToString(h.Sum(nil))

	return strings.Join([]string{
		strings.ToUpper(req.Method),
		req.Path,
		chainID,
		req.Timestamp,
		req.ContentType,
		bodyDigest,
	}, "\n")
}

func validate(identity credentials.Identity, req SigningRequest) error {
	switch strings.ToUpper(req.Method) {
	case "GET", "POST", "PUT", "PATCH", "DELETE":
	default:
		return &dcerror.InvalidInputError{Reason: fmt.Sprintf("%s is an unsupported http operation", req.Method)}
	}
	if !strings.HasPrefix(req.Path, "/") {
		return &dcerror.InvalidInputError{Reason: "path must start with a '/'"}
	}
	if req.Timestamp == "" {
		return &dcerror.InvalidInputError{Reason: "timestamp must be supplied"}
	}
	if len(req.Body) > 0 && req.ContentType == "" {
		return &dcerror.InvalidInputError{Reason: "body present but content type empty"}
	}
	if identity.AuthKey == "" || identity.AuthKeyID == "" {
		return &dcerror.InvalidInputError{Reason: "identity is missing signing material"}
	}
	return nil
}

func hashConstructor(algorithm credentials.Algorithm) (func() hash.Hash, error) {
	switch algorithm {
	case credentials.AlgorithmSHA256:
		return sha256.New, nil
	case credentials.AlgorithmBLAKE2b512:
		return func() hash.Hash {
			h, _ := blake2b.New512(nil)
			return h
		}, nil
	case credentials.AlgorithmSHA3256:
		return sha3.New256, nil
	default:
		return nil, &dcerror.InvalidInputError{Reason: fmt.Sprintf("%s is not a supported hash algorithm", algorithm)}
	}
}
