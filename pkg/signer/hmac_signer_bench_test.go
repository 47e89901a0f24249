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
	"bytes"
	"testing"

	"github.com/dragonchain/dragonchain-sdk-go/pkg/credentials"
)

func BenchmarkSignRequest_EmptyBody(b *testing.B) {
	s := NewDefaultHMACSigner()
	identity := testIdentity(credentials.AlgorithmSHA256)
	req := statusRequest()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := s.SignRequest(identity, req); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSignRequest_LargeBody(b *testing.B) {
	s := NewDefaultHMACSigner()
	identity := testIdentity(credentials.AlgorithmSHA256)
	req := SigningRequest{
		Method:      "POST",
		Path:        "/v1/transaction_bulk",
		Body:        bytes.Repeat([]byte(`{"txn_type":"bench","payload":"x"},`), 1024),
		ContentType: "application/json",
		Timestamp:   fixedTimestamp,
	}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := s.SignRequest(identity, req); err != nil {
			b.Fatal(err)
		}
	}
}
