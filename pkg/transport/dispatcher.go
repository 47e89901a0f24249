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

package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/dragonchain/dragonchain-sdk-go/pkg/credentials"
	"github.com/dragonchain/dragonchain-sdk-go/pkg/dcerror"
	"github.com/dragonchain/dragonchain-sdk-go/pkg/signer"
)

// DefaultMaxRetries is the number of additional attempts made for
// idempotent calls that hit a 5xx or a network failure.
const DefaultMaxRetries = 3

// Request describes one call to the chain. Path must start with '/' and
// include any query string; it is the exact string that gets signed and
// transmitted.
type Request struct {
	Method      string
	Path        string
	Body        []byte
	ContentType string

	// Idempotent marks the call as safe to retry. GET is always treated as
	// idempotent; state-changing verbs are retried only when the caller
	// opts in, since a replayed POST could double-submit a transaction.
	Idempotent bool
}

// Response is the interpreted result of a 2xx reply.
type Response struct {
	Status int
	OK     bool

	// Body holds the parsed JSON body, nil when the chain declared a
	// non-JSON content type.
	Body json.RawMessage

	// Raw always holds the exact response bytes.
	Raw []byte
}

// Dispatcher executes signed requests against a chain.
type Dispatcher interface {
	// Send executes one request, blocking until a response, an exhausted
	// retry budget, or context cancellation.
	Send(ctx context.Context, req Request) (*Response, error)

	// SendAll executes independent requests concurrently over the shared
	// connection pool, preserving order. The first error cancels the rest.
	SendAll(ctx context.Context, reqs []Request) ([]*Response, error)
}

// HTTPDispatcher is the standard Dispatcher over net/http. Each attempt
// captures a fresh wall-clock timestamp and re-signs, so retries never
// replay a stale signature outside the chain's freshness window.
type HTTPDispatcher struct {
	endpoint   string
	identity   credentials.Identity
	signer     signer.RequestSigner
	httpClient *http.Client
	maxRetries uint64
	now        func() time.Time
	log        zerolog.Logger
}

// Option customizes an HTTPDispatcher.
type Option func(*HTTPDispatcher)

// WithHTTPClient injects the HTTP client (and its connection pool).
// Defaults to http.DefaultClient.
func WithHTTPClient(c *http.Client) Option {
	return func(d *HTTPDispatcher) {
		if c != nil {
			d.httpClient = c
		}
	}
}

// WithMaxRetries sets the retry budget for idempotent calls.
func WithMaxRetries(n uint64) Option {
	return func(d *HTTPDispatcher) { d.maxRetries = n }
}

// WithSigner overrides the request signer.
func WithSigner(s signer.RequestSigner) Option {
	return func(d *HTTPDispatcher) { d.signer = s }
}

// WithClock overrides the wall-clock source used to stamp requests.
func WithClock(now func() time.Time) Option {
	return func(d *HTTPDispatcher) { d.now = now }
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(log zerolog.Logger) Option {
	return func(d *HTTPDispatcher) { d.log = log }
}

// NewHTTPDispatcher creates a dispatcher for one chain endpoint and
// identity.
func NewHTTPDispatcher(endpoint string, identity credentials.Identity, opts ...Option) *HTTPDispatcher {
	d := &HTTPDispatcher{
		endpoint:   strings.TrimSuffix(endpoint, "/"),
		identity:   identity,
		signer:     signer.NewDefaultHMACSigner(),
		httpClient: http.DefaultClient,
		maxRetries: DefaultMaxRetries,
		now:        time.Now,
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Send executes req, retrying 5xx and network failures for idempotent
// calls with an immediate (zero-backoff) policy.
func (d *HTTPDispatcher) Send(ctx context.Context, req Request) (*Response, error) {
	var retries uint64
	if req.Idempotent || strings.EqualFold(req.Method, http.MethodGet) {
		retries = d.maxRetries
	}

	attempts := 0
	operation := func() (*Response, error) {
		attempts++
		resp, err := d.attempt(ctx, req)
		if err != nil && !dcerror.Retryable(err) {
			return nil, backoff.Permanent(err)
		}
		return resp, err
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(&backoff.ZeroBackOff{}, retries), ctx)
	resp, err := backoff.RetryWithData(operation, policy)
	if err != nil {
		if !dcerror.Retryable(err) {
			return nil, err
		}
		var unreachable *dcerror.UnreachableError
		if errors.As(err, &unreachable) {
			err = unreachable.Err
		}
		return nil, &dcerror.UnreachableError{Attempts: attempts, Err: err}
	}
	return resp, nil
}

// SendAll dispatches reqs concurrently. Responses are returned in request
// order; signing is per-call and lock-free, so any number of requests may
// be in flight at once.
func (d *HTTPDispatcher) SendAll(ctx context.Context, reqs []Request) ([]*Response, error) {
	responses := make([]*Response, len(reqs))
	g, ctx := errgroup.WithContext(ctx)
	for i, req := range reqs {
		i, req := i, req
		g.Go(func() error {
			resp, err := d.Send(ctx, req)
			if err != nil {
				return fmt.Errorf("%s %s: %w", req.Method, req.Path, err)
			}
			responses[i] = resp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return responses, nil
}

// attempt performs a single signed exchange. The timestamp is captured
// here, once per attempt, so the signed string and the transmitted headers
// always agree.
func (d *HTTPDispatcher) attempt(ctx context.Context, req Request) (*Response, error) {
	timestamp := d.now().UTC().Format(time.RFC3339Nano)

	headers, err := d.signer.SignRequest(d.identity, signer.SigningRequest{
		Method:      req.Method,
		Path:        req.Path,
		Body:        req.Body,
		ContentType: req.ContentType,
		Timestamp:   timestamp,
	})
	if err != nil {
		return nil, err
	}

	var bodyReader io.Reader
	if len(req.Body) > 0 {
		bodyReader = bytes.NewReader(req.Body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, strings.ToUpper(req.Method), d.endpoint+req.Path, bodyReader)
	if err != nil {
		return nil, &dcerror.InvalidInputError{Reason: err.Error()}
	}
	headers.Apply(httpReq)

	d.log.Debug().Str("method", req.Method).Str("path", req.Path).Str("timestamp", timestamp).Msg("dispatching request")

	httpResp, err := d.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("error while communicating with the chain: %w", err)
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response from the chain: %w", err)
	}

	d.log.Debug().Int("status", httpResp.StatusCode).Msg("received response")

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return nil, dcerror.FromResponse(httpResp.StatusCode, req.Path, raw)
	}

	resp := &Response{Status: httpResp.StatusCode, OK: true, Raw: raw}
	contentType := httpResp.Header.Get("Content-Type")
	switch {
	case strings.Contains(contentType, "application/json"):
		if len(raw) > 0 && !json.Valid(raw) {
			return nil, &dcerror.UnexpectedResponseError{Status: httpResp.StatusCode, Body: raw, Err: errors.New("declared JSON body does not parse")}
		}
		resp.Body = json.RawMessage(raw)
	case contentType == "" && json.Valid(raw) && len(raw) > 0:
		resp.Body = json.RawMessage(raw)
	}
	return resp, nil
}
