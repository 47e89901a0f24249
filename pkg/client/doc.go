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

// Package client is the top-level entry point of the SDK. It composes
// credential resolution, HMAC request signing and the retrying HTTP
// dispatcher into a single Client with one method per chain API endpoint.
//
// Minimal usage, with credentials taken from the environment or
// ~/.dragonchain/credentials:
//
//	c, err := client.New("")
//	if err != nil {
//		log.Fatal(err)
//	}
//	resp, err := c.GetStatus(ctx)
//
// Everything a method needs beyond its arguments is fixed at New time:
// chain id, endpoint, key pair and HMAC algorithm. Response bodies are
// returned as raw JSON for the caller to decode; typed request bodies live
// in pkg/protocol.
package client
