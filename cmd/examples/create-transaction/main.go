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
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dragonchain/dragonchain-sdk-go/pkg/client"
	"github.com/dragonchain/dragonchain-sdk-go/pkg/protocol"
)

func main() {
	fmt.Println("Dragonchain SDK - Create Transaction Example")
	fmt.Println("=============================================")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.InfoLevel)

	c, err := client.New("", client.WithLogger(logger))
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}

	// Tag each run so it can be found again with QueryTransactions.
	tag := "example-" + uuid.NewString()
	payload := map[string]any{
		"message":   "hello from dragonchain-sdk-go",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	fmt.Println("\n1. Posting transaction...")
	resp, err := c.CreateTransaction(ctx, "example", payload, tag)
	if err != nil {
		log.Fatalf("Create transaction failed: %v", err)
	}

	var created struct {
		TransactionID string `json:"transaction_id"`
	}
	if err := json.Unmarshal(resp.Body, &created); err != nil {
		log.Fatalf("Unexpected response shape: %v", err)
	}
	fmt.Printf("   Transaction id: %s\n", created.TransactionID)

	fmt.Println("\n2. Querying it back by tag...")
	resp, err = c.QueryTransactions(ctx, protocol.Query{Query: fmt.Sprintf("tag:%q", tag)})
	if err != nil {
		log.Fatalf("Query failed: %v", err)
	}
	fmt.Printf("   Result (%d):\n%s\n", resp.Status, resp.Raw)
}
