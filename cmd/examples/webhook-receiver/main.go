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
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/dragonchain/dragonchain-sdk-go/pkg/credentials"
	"github.com/dragonchain/dragonchain-sdk-go/pkg/server"
)

func main() {
	fmt.Println("Dragonchain SDK - Webhook Receiver Example")
	fmt.Println("===========================================")

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	// The receiver verifies callbacks with the same key pair the chain
	// signs with.
	resolver := credentials.NewResolver(credentials.WithLogger(logger))
	chainID, err := resolver.ResolveChainID("")
	if err != nil {
		log.Fatalf("Failed to resolve chain id: %v", err)
	}
	identity, err := resolver.ResolveIdentity(chainID, "", "", "")
	if err != nil {
		log.Fatalf("Failed to resolve credentials: %v", err)
	}

	middleware := server.NewHMACAuthMiddleware(identity)
	middleware.SetMaxSkew(5 * time.Minute)
	middleware.SetErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
		logger.Warn().Err(err).Str("remote", r.RemoteAddr).Msg("rejected callback")
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	})

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		keyID, _ := server.AuthKeyIDFromContext(r.Context())
		body, _ := io.ReadAll(r.Body)
		logger.Info().Str("auth_key_id", keyID).Int("bytes", len(body)).Msg("verified callback")
		w.WriteHeader(http.StatusOK)
	})

	http.Handle("/webhook", middleware.Wrap(handler))
	fmt.Println("\nListening on :8080 ...")
	if err := http.ListenAndServe(":8080", nil); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
