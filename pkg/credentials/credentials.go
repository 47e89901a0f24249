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

package credentials

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"gopkg.in/ini.v1"

	"github.com/dragonchain/dragonchain-sdk-go/pkg/dcerror"
)

// Algorithm selects the hash used by the HMAC signing scheme. The set is
// closed; the chain's verifier recognizes exactly these.
type Algorithm string

const (
	AlgorithmSHA256     Algorithm = "SHA256"
	AlgorithmBLAKE2b512 Algorithm = "BLAKE2b512"
	AlgorithmSHA3256    Algorithm = "SHA3-256"
)

// Valid reports whether the algorithm is one of the supported variants.
func (a Algorithm) Valid() bool {
	switch a {
	case AlgorithmSHA256, AlgorithmBLAKE2b512, AlgorithmSHA3256:
		return true
	}
	return false
}

// Environment variables consulted during resolution.
const (
	EnvDragonchainID = "DRAGONCHAIN_ID"
	EnvAuthKey       = "DRAGONCHAIN_AUTH_KEY"
	EnvAuthKeyID     = "DRAGONCHAIN_AUTH_KEY_ID"
	EnvEndpoint      = "DRAGONCHAIN_ENDPOINT"
)

// Credentials file keys. The section name is the chain id; the special
// "default" section may carry a dragonchain_id for clients constructed
// without one.
const (
	fileKeyAuthKey   = "auth_key"
	fileKeyAuthKeyID = "auth_key_id"
	fileKeyChainID   = "dragonchain_id"
	defaultSection   = "default"
)

// Identity is the resolved signing material for one chain. It is immutable
// once resolved and safe to share by value across any number of concurrent
// callers. AuthKey is a secret and is never logged.
type Identity struct {
	DragonchainID string
	AuthKeyID     string
	AuthKey       string
	Algorithm     Algorithm
}

// Resolver locates identities, chain ids and endpoints from the ordered
// sources described in the package documentation. The zero value is not
// usable; construct with NewResolver.
type Resolver struct {
	filePath string
	getenv   func(string) string
	log      zerolog.Logger
}

// ResolverOption customizes a Resolver.
type ResolverOption func(*Resolver)

// WithFilePath overrides the credentials file location. Used mainly by
// tests; production code relies on the per-user default.
func WithFilePath(path string) ResolverOption {
	return func(r *Resolver) { r.filePath = path }
}

// WithEnv overrides environment lookup.
func WithEnv(getenv func(string) string) ResolverOption {
	return func(r *Resolver) { r.getenv = getenv }
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(log zerolog.Logger) ResolverOption {
	return func(r *Resolver) { r.log = log }
}

// NewResolver creates a Resolver backed by the process environment and the
// per-user credentials file.
func NewResolver(opts ...ResolverOption) *Resolver {
	r := &Resolver{
		filePath: DefaultCredentialsPath(),
		getenv:   os.Getenv,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// DefaultCredentialsPath returns the per-user credentials file location:
// ~/.dragonchain/credentials, or %LOCALAPPDATA%\dragonchain\credentials on
// Windows.
func DefaultCredentialsPath() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "dragonchain", "credentials")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dragonchain", "credentials")
}

// ResolveChainID resolves the target chain id: explicit argument, then the
// DRAGONCHAIN_ID environment variable, then the credentials file's
// [default] section.
func (r *Resolver) ResolveChainID(explicit string) (string, error) {
	id, ok := ResolveFirst(
		Static(explicit),
		func() (string, bool) {
			v := r.getenv(EnvDragonchainID)
			return v, v != ""
		},
		func() (string, bool) {
			return r.fileValue(defaultSection, fileKeyChainID)
		},
	)
	if !ok {
		return "", &dcerror.CredentialsNotFoundError{}
	}
	return id, nil
}

// ResolveIdentity resolves signing material for chainID. Explicit key and
// key id win; both must be present for the explicit source to be used (no
// merging across sources). Falls back to the environment, then to the
// chain's section of the credentials file.
func (r *Resolver) ResolveIdentity(chainID, authKey, authKeyID string, algorithm Algorithm) (Identity, error) {
	if algorithm == "" {
		algorithm = AlgorithmSHA256
	}
	if !algorithm.Valid() {
		return Identity{}, &dcerror.InvalidInputError{Reason: fmt.Sprintf("%s is not a supported hash algorithm", algorithm)}
	}

	type keyPair struct{ key, keyID string }
	pair, ok := ResolveFirst(
		func() (keyPair, bool) {
			return keyPair{authKey, authKeyID}, authKey != "" && authKeyID != ""
		},
		func() (keyPair, bool) {
			key, keyID := r.getenv(EnvAuthKey), r.getenv(EnvAuthKeyID)
			return keyPair{key, keyID}, key != "" && keyID != ""
		},
		func() (keyPair, bool) {
			key, okKey := r.fileValue(chainID, fileKeyAuthKey)
			keyID, okKeyID := r.fileValue(chainID, fileKeyAuthKeyID)
			return keyPair{key, keyID}, okKey && okKeyID
		},
	)
	if !ok {
		return Identity{}, &dcerror.CredentialsNotFoundError{ChainID: chainID}
	}

	r.log.Debug().Str("dragonchain_id", chainID).Str("auth_key_id", pair.keyID).Msg("resolved credentials")
	return Identity{
		DragonchainID: chainID,
		AuthKeyID:     pair.keyID,
		AuthKey:       pair.key,
		Algorithm:     algorithm,
	}, nil
}

// ResolveEndpoint resolves the chain's network address: explicit override,
// then the DRAGONCHAIN_ENDPOINT environment variable, then the well-known
// managed-service host derived from the chain id.
func (r *Resolver) ResolveEndpoint(chainID, explicit string) (string, error) {
	endpoint, ok := ResolveFirst(
		Static(explicit),
		func() (string, bool) {
			v := r.getenv(EnvEndpoint)
			return v, v != ""
		},
		func() (string, bool) {
			if chainID == "" {
				return "", false
			}
			return fmt.Sprintf("https://%s.api.dragonchain.com", chainID), true
		},
	)
	if !ok {
		return "", &dcerror.CredentialsNotFoundError{ChainID: chainID}
	}
	r.log.Debug().Str("endpoint", endpoint).Msg("resolved endpoint")
	return endpoint, nil
}

// fileValue reads one key from one section of the credentials file. Any
// failure (file unreadable, section or key absent, empty value) reports
// the source as unpopulated rather than erroring, so the cascade can move
// on.
func (r *Resolver) fileValue(section, key string) (string, bool) {
	if r.filePath == "" {
		return "", false
	}
	cfg, err := ini.Load(r.filePath)
	if err != nil {
		r.log.Debug().Err(err).Str("path", r.filePath).Msg("credentials file not readable")
		return "", false
	}
	sec, err := cfg.GetSection(section)
	if err != nil {
		return "", false
	}
	if !sec.HasKey(key) {
		return "", false
	}
	v := sec.Key(key).String()
	return v, v != ""
}
