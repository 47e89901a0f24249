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

// payloadVersion is the transaction model version understood by current
// chains.
const payloadVersion = "1"

// CreateTransaction is the body of POST /v1/transaction.
type CreateTransaction struct {
	Version         string `json:"version"`
	TransactionType string `json:"txn_type"`
	Payload         any    `json:"payload"`
	Tag             string `json:"tag,omitempty"`
}

// NewCreateTransaction builds a transaction body. Payload may be any
// JSON-encodable value; a nil payload is sent as an empty string, matching
// what chains expect for payload-less transactions.
func NewCreateTransaction(txnType string, payload any, tag string) CreateTransaction {
	if payload == nil {
		payload = ""
	}
	return CreateTransaction{
		Version:         payloadVersion,
		TransactionType: txnType,
		Payload:         payload,
		Tag:             tag,
	}
}

// CustomIndexField declares one queryable field extracted from a
// transaction payload, registered with the transaction type.
type CustomIndexField struct {
	Path      string `json:"path"`
	FieldName string `json:"field_name"`
	Type      string `json:"type"` // text | tag | number
	Options   any    `json:"options,omitempty"`
}

// CreateTransactionType is the body of POST /v1/transaction-type.
type CreateTransactionType struct {
	Version         string             `json:"version"`
	TransactionType string             `json:"txn_type"`
	CustomIndexes   []CustomIndexField `json:"custom_indexes,omitempty"`
}

// NewCreateTransactionType builds a transaction-type registration body.
func NewCreateTransactionType(txnType string, customIndexes []CustomIndexField) CreateTransactionType {
	return CreateTransactionType{
		Version:         payloadVersion,
		TransactionType: txnType,
		CustomIndexes:   customIndexes,
	}
}

// CreateAPIKey is the body of POST /v1/api-key.
type CreateAPIKey struct {
	Nickname string `json:"nickname,omitempty"`
}

// UpdateAPIKey is the body of PUT /v1/api-key/{id}.
type UpdateAPIKey struct {
	Nickname string `json:"nickname"`
}

// ErrorPayload is the minimal shape of a chain error body. The raw bytes
// are always preserved on the typed error; this type exists for callers
// that want the common fields without hand-rolling a struct.
type ErrorPayload struct {
	Error struct {
		Type    string `json:"type"`
		Details string `json:"details"`
	} `json:"error"`
	Message string `json:"message,omitempty"`
	Details string `json:"details,omitempty"`
}
