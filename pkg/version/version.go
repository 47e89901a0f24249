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

// Package version provides version information for dragonchain-sdk-go and
// the chain API it targets.
package version

const (
	// Version is the current version of dragonchain-sdk-go
	Version = "1.0.0-dev"

	// APIVersion is the chain REST API version this library speaks
	APIVersion = "v1"

	// SignatureScheme is the request signing scheme emitted in the
	// Authorization header
	SignatureScheme = "DC1-HMAC"
)

// Info contains detailed version information
type Info struct {
	SDKVersion      string
	APIVersion      string
	SignatureScheme string
}

// Get returns detailed version information
func Get() Info {
	return Info{
		SDKVersion:      Version,
		APIVersion:      APIVersion,
		SignatureScheme: SignatureScheme,
	}
}
