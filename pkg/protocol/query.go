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

package protocol

import (
	"net/url"
	"strconv"
)

// Query holds the common query parameters of the chain's search endpoints
// (transactions, blocks). The zero value queries everything with server
// defaults.
type Query struct {
	// Query is a Lucene query string, e.g. `tag:"pottery AND vase"`.
	Query string

	// Sort is a sort specifier, e.g. "block_id:desc".
	Sort string

	Offset int
	Limit  int
}

// QueryString encodes the parameters as an HTTP query string with a
// leading '?', or "" when no parameter is set. The result is appended to
// the request path before signing, so the encoded form here is exactly
// what goes over the wire.
func (q Query) QueryString() string {
	values := url.Values{}
	if q.Query != "" {
		values.Set("q", q.Query)
	}
	if q.Sort != "" {
		values.Set("sort", q.Sort)
	}
	if q.Offset > 0 {
		values.Set("offset", strconv.Itoa(q.Offset))
	}
	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}
