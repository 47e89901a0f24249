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

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/dragonchain/dragonchain-sdk-go/pkg/credentials"
	"github.com/dragonchain/dragonchain-sdk-go/pkg/transport"
)

// Client is the public surface of the SDK. It wires the credential store,
// the request signer and the transport dispatcher together; it owns no
// signing logic itself. A Client is immutable after construction and safe
// for unbounded concurrent use.
type Client struct {
	chainID    string
	endpoint   string
	identity   credentials.Identity
	dispatcher transport.Dispatcher
	log        zerolog.Logger
}

type config struct {
	authKey    string
	authKeyID  string
	endpoint   string
	algorithm  credentials.Algorithm
	httpClient *http.Client
	maxRetries *uint64
	log        zerolog.Logger
	resolver   *credentials.Resolver
	dispatcher transport.Dispatcher
}

// Option customizes a Client.
type Option func(*config)

// WithAuthKey supplies the signing key pair explicitly, overriding the
// environment and the credentials file.
func WithAuthKey(authKeyID, authKey string) Option {
	return func(c *config) {
		c.authKeyID = authKeyID
		c.authKey = authKey
	}
}

// WithEndpoint overrides the chain's network address.
func WithEndpoint(endpoint string) Option {
	return func(c *config) { c.endpoint = endpoint }
}

// WithAlgorithm selects the HMAC hash. Defaults to SHA256.
func WithAlgorithm(algorithm credentials.Algorithm) Option {
	return func(c *config) { c.algorithm = algorithm }
}

// WithHTTPClient injects the HTTP client used by the dispatcher.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *config) { c.httpClient = httpClient }
}

// WithMaxRetries sets the dispatcher's retry budget for idempotent calls.
func WithMaxRetries(n uint64) Option {
	return func(c *config) { c.maxRetries = &n }
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(log zerolog.Logger) Option {
	return func(c *config) { c.log = log }
}

// WithResolver overrides the credential resolver. Used mainly by tests.
func WithResolver(r *credentials.Resolver) Option {
	return func(c *config) { c.resolver = r }
}

// WithDispatcher overrides the transport entirely. Used mainly by tests.
func WithDispatcher(d transport.Dispatcher) Option {
	return func(c *config) { c.dispatcher = d }
}

// New constructs a Client for chainID. An empty chainID is resolved from
// the environment or the credentials file. Credentials and endpoint are
// resolved once, here; the resulting identity is cached on the client for
// its lifetime.
func New(chainID string, opts ...Option) (*Client, error) {
	cfg := config{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	resolver := cfg.resolver
	if resolver == nil {
		resolver = credentials.NewResolver(credentials.WithLogger(cfg.log))
	}

	resolvedID, err := resolver.ResolveChainID(chainID)
	if err != nil {
		return nil, err
	}
	identity, err := resolver.ResolveIdentity(resolvedID, cfg.authKey, cfg.authKeyID, cfg.algorithm)
	if err != nil {
		return nil, err
	}
	endpoint, err := resolver.ResolveEndpoint(resolvedID, cfg.endpoint)
	if err != nil {
		return nil, err
	}

	dispatcher := cfg.dispatcher
	if dispatcher == nil {
		dispatcherOpts := []transport.Option{transport.WithLogger(cfg.log)}
		if cfg.httpClient != nil {
			dispatcherOpts = append(dispatcherOpts, transport.WithHTTPClient(cfg.httpClient))
		}
		if cfg.maxRetries != nil {
			dispatcherOpts = append(dispatcherOpts, transport.WithMaxRetries(*cfg.maxRetries))
		}
		dispatcher = transport.NewHTTPDispatcher(endpoint, identity, dispatcherOpts...)
	}

	cfg.log.Debug().Str("dragonchain_id", resolvedID).Str("endpoint", endpoint).Msg("created chain client")
	return &Client{
		chainID:    resolvedID,
		endpoint:   endpoint,
		identity:   identity,
		dispatcher: dispatcher,
		log:        cfg.log,
	}, nil
}

// ChainID returns the resolved chain id this client targets.
func (c *Client) ChainID() string { return c.chainID }

// Endpoint returns the resolved chain endpoint.
func (c *Client) Endpoint() string { return c.endpoint }

// AuthKeyID returns the id of the key pair this client signs with. The
// secret key itself is never exposed.
func (c *Client) AuthKeyID() string { return c.identity.AuthKeyID }

// Get performs a signed GET. Path must start with '/' and include any
// query string.
func (c *Client) Get(ctx context.Context, path string) (*transport.Response, error) {
	return c.dispatcher.Send(ctx, transport.Request{Method: http.MethodGet, Path: path})
}

// Post performs a signed POST with a JSON-encoded body.
func (c *Client) Post(ctx context.Context, path string, body any) (*transport.Response, error) {
	return c.sendJSON(ctx, http.MethodPost, path, body, false)
}

// PostRaw performs a signed POST with pre-encoded bytes (e.g. a binary
// smart-contract package), passed through unchanged.
func (c *Client) PostRaw(ctx context.Context, path string, body []byte, contentType string) (*transport.Response, error) {
	return c.dispatcher.Send(ctx, transport.Request{
		Method:      http.MethodPost,
		Path:        path,
		Body:        body,
		ContentType: contentType,
	})
}

// Put performs a signed PUT with a JSON-encoded body.
func (c *Client) Put(ctx context.Context, path string, body any) (*transport.Response, error) {
	return c.sendJSON(ctx, http.MethodPut, path, body, false)
}

// Patch performs a signed PATCH with a JSON-encoded body.
func (c *Client) Patch(ctx context.Context, path string, body any) (*transport.Response, error) {
	return c.sendJSON(ctx, http.MethodPatch, path, body, false)
}

// Delete performs a signed DELETE. Deletes on the chain API are
// idempotent.
func (c *Client) Delete(ctx context.Context, path string) (*transport.Response, error) {
	return c.dispatcher.Send(ctx, transport.Request{Method: http.MethodDelete, Path: path, Idempotent: true})
}

func (c *Client) sendJSON(ctx context.Context, method, path string, body any, idempotent bool) (*transport.Response, error) {
	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}
	return c.dispatcher.Send(ctx, transport.Request{
		Method:      method,
		Path:        path,
		Body:        encoded,
		ContentType: "application/json",
		Idempotent:  idempotent,
	})
}
