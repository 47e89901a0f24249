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

// Package credentials resolves the signing identity for a target chain.
//
// An Identity (chain id, auth key id, auth key, algorithm) is located from
// ordered sources; the first fully-populated source wins and sources are
// never merged:
//
//  1. Explicit arguments passed by the caller
//  2. Environment variables DRAGONCHAIN_AUTH_KEY / DRAGONCHAIN_AUTH_KEY_ID
//  3. The per-user credentials file, section keyed by chain id
//
// The credentials file is INI-formatted, at ~/.dragonchain/credentials
// (or %LOCALAPPDATA%\dragonchain\credentials on Windows):
//
//	[default]
//	dragonchain_id = 35a7371c-a20a-4830-9a59-5d654fcd0a4a
//
//	[35a7371c-a20a-4830-9a59-5d654fcd0a4a]
//	auth_key_id = JSDMWFUJDVTC
//	auth_key = n3hlldsFxFdP2De0yMu6A4MFRh1HGzFvn6rJ0ICZzkE
//
// The chain's endpoint follows an analogous cascade: explicit override,
// DRAGONCHAIN_ENDPOINT, then https://<chain id>.api.dragonchain.com.
//
// A resolved Identity is immutable and safe to share by value across any
// number of concurrent callers.
package credentials
