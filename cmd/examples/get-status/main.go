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

package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/dragonchain/dragonchain-sdk-go/pkg/client"
)

func main() {
	fmt.Println("Dragonchain SDK - Get Status Example")
	fmt.Println("=====================================")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Credentials come from DRAGONCHAIN_* environment variables or
	// ~/.dragonchain/credentials; the chain id may come from there too.
	c, err := client.New("")
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}
	fmt.Printf("\nChain:    %s\nEndpoint: %s\n", c.ChainID(), c.Endpoint())

	resp, err := c.GetStatus(ctx)
	if err != nil {
		log.Fatalf("Status call failed: %v", err)
	}
	fmt.Printf("\nStatus (%d):\n%s\n", resp.Status, resp.Raw)
}
