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

package dcerror

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// CredentialsNotFoundError indicates no credential source (explicit
// arguments, environment, credentials file) yielded a full identity.
type CredentialsNotFoundError struct {
	ChainID string
}

func (e *CredentialsNotFoundError) Error() string {
	if e.ChainID == "" {
		return "could not locate credentials for this client"
	}
	return fmt.Sprintf("could not locate credentials for chain %s", e.ChainID)
}

// AuthenticationError indicates the chain rejected the request signature
// or the key has been revoked (HTTP 401/403). Never retried.
type AuthenticationError struct {
	Status  int
	Payload json.RawMessage
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication rejected by chain (status %d): %s", e.Status, e.Payload)
}

// NotFoundError indicates the requested resource does not exist (HTTP 404).
type NotFoundError struct {
	Path    string
	Payload json.RawMessage
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("resource not found: %s", e.Path)
}

// BadRequestError indicates the chain rejected the request as malformed
// (any 4xx other than 401/403/404). Payload carries the server's JSON
// error body verbatim.
type BadRequestError struct {
	Status  int
	Payload json.RawMessage
}

func (e *BadRequestError) Error() string {
	return fmt.Sprintf("bad request (status %d): %s", e.Status, e.Payload)
}

// UnreachableError indicates the chain could not be reached after
// exhausting the configured retries (network failure or 5xx responses).
type UnreachableError struct {
	Attempts int
	Err      error
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("chain unreachable after %d attempt(s): %v", e.Attempts, e.Err)
}

func (e *UnreachableError) Unwrap() error { return e.Err }

// InvalidInputError indicates malformed call arguments detected before any
// network activity, e.g. a body without a content type.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Reason)
}

// UnexpectedResponseError indicates the chain answered with a body that
// could not be interpreted (e.g. a 2xx response declaring JSON that does
// not parse).
type UnexpectedResponseError struct {
	Status int
	Body   []byte
	Err    error
}

func (e *UnexpectedResponseError) Error() string {
	return fmt.Sprintf("unexpected response from chain (status %d): %v", e.Status, e.Err)
}

func (e *UnexpectedResponseError) Unwrap() error { return e.Err }

// FromResponse maps a non-2xx HTTP status to the matching typed error.
// The payload is carried verbatim so callers can inspect the server's
// message/details fields.
func FromResponse(status int, path string, payload []byte) error {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return &AuthenticationError{Status: status, Payload: payload}
	case status == http.StatusNotFound:
		return &NotFoundError{Path: path, Payload: payload}
	case status >= 400 && status < 500:
		return &BadRequestError{Status: status, Payload: payload}
	default:
		return &UnreachableError{Attempts: 1, Err: fmt.Errorf("status %d: %s", status, payload)}
	}
}

// Retryable reports whether an error produced by FromResponse is eligible
// for a retry. Only server-side (5xx) and network failures qualify.
func Retryable(err error) bool {
	switch err.(type) {
	case *AuthenticationError, *NotFoundError, *BadRequestError, *InvalidInputError, *UnexpectedResponseError:
		return false
	}
	return true
}
