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

// Source is one fallible lookup in an ordered resolution chain.
// It returns the value and whether the source was fully populated.
type Source[T any] func() (T, bool)

// ResolveFirst evaluates sources in order and returns the value from the
// first one that reports success. Sources never merge: a partially
// populated source is skipped entirely.
func ResolveFirst[T any](sources ...Source[T]) (T, bool) {
	for _, source := range sources {
		if v, ok := source(); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Static wraps a fixed value as a Source that succeeds when the value is
// non-zero (for strings, non-empty).
func Static(value string) Source[string] {
	return func() (string, bool) {
		return value, value != ""
	}
}
