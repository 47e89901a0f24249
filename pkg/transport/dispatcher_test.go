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
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dragonchain/dragonchain-sdk-go/pkg/credentials"
	"github.com/dragonchain/dragonchain-sdk-go/pkg/dcerror"
)

func testIdentity() credentials.Identity {
	return credentials.Identity{
		DragonchainID: "35a7371c-a20a-4830-9a59-5d654fcd0a4a",
		AuthKeyID:     "JSDMWFUJDVTC",
		AuthKey:       "n3hlldsFxFdP2De0yMu6A4MFRh1HGzFvn6rJ0ICZzkE",
		Algorithm:     credentials.AlgorithmSHA256,
	}
}

func TestSend_Success(t *testing.T) {
	// Test Case 1: 2xx with JSON content type yields a parsed body and the
	// full signed header set on the wire
	var gotHeaders http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeaders = r.Header.Clone()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	d := NewHTTPDispatcher(srv.URL, testIdentity())
	resp, err := d.Send(context.Background(), Request{Method: "GET", Path: "/v1/status"})

	require.NoError(t, err)
	assert.True(t, resp.OK)
	assert.Equal(t, 200, resp.Status)
	assert.JSONEq(t, `{"status":"ok"}`, string(resp.Body))

	assert.Equal(t, "35a7371c-a20a-4830-9a59-5d654fcd0a4a", gotHeaders.Get("dragonchain"))
	assert.NotEmpty(t, gotHeaders.Get("timestamp"))
	assert.Contains(t, gotHeaders.Get("Authorization"), "DC1-HMAC-SHA256 JSDMWFUJDVTC:")
	assert.Empty(t, gotHeaders.Get("Content-Type"), "no content type without a body")
}

func TestSend_RetryThenSuccess(t *testing.T) {
	// Test Case 2: a 500 followed by a 200 yields the 200's parsed body
	// for an idempotent call
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"recovered":true}`))
	}))
	defer srv.Close()

	d := NewHTTPDispatcher(srv.URL, testIdentity())
	resp, err := d.Send(context.Background(), Request{Method: "GET", Path: "/v1/status"})

	require.NoError(t, err)
	assert.JSONEq(t, `{"recovered":true}`, string(resp.Body))
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestSend_RetriesResignWithFreshTimestamp(t *testing.T) {
	// Test Case 3: each attempt carries a newly captured timestamp
	var mu sync.Mutex
	var timestamps []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		timestamps = append(timestamps, r.Header.Get("timestamp"))
		mu.Unlock()
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	clock := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	var ticks int64
	d := NewHTTPDispatcher(srv.URL, testIdentity(),
		WithMaxRetries(2),
		WithClock(func() time.Time {
			return clock.Add(time.Duration(atomic.AddInt64(&ticks, 1)) * time.Second)
		}),
	)

	_, err := d.Send(context.Background(), Request{Method: "GET", Path: "/v1/status"})
	require.Error(t, err)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, timestamps, 3)
	assert.NotEqual(t, timestamps[0], timestamps[1])
	assert.NotEqual(t, timestamps[1], timestamps[2])
}

func TestSend_AuthenticationErrorNeverRetried(t *testing.T) {
	// Test Case 4: a 401 surfaces immediately, even for GET
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, `{"error":{"type":"ACTION_FORBIDDEN"}}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	d := NewHTTPDispatcher(srv.URL, testIdentity())
	_, err := d.Send(context.Background(), Request{Method: "GET", Path: "/v1/status"})

	var authErr *dcerror.AuthenticationError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestSend_NotFound(t *testing.T) {
	// Test Case 5
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"type":"NOT_FOUND"}}`, http.StatusNotFound)
	}))
	defer srv.Close()

	d := NewHTTPDispatcher(srv.URL, testIdentity())
	_, err := d.Send(context.Background(), Request{Method: "GET", Path: "/v1/transaction/missing"})

	var nfErr *dcerror.NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, "/v1/transaction/missing", nfErr.Path)
}

func TestSend_BadRequestCarriesPayload(t *testing.T) {
	// Test Case 6: other 4xx carries the server's JSON payload verbatim
	payload := `{"error":{"type":"VALIDATION_ERROR","details":"txn_type is required"}}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(payload))
	}))
	defer srv.Close()

	d := NewHTTPDispatcher(srv.URL, testIdentity())
	_, err := d.Send(context.Background(), Request{
		Method: "POST", Path: "/v1/transaction", Body: []byte(`{}`), ContentType: "application/json",
	})

	var badErr *dcerror.BadRequestError
	require.ErrorAs(t, err, &badErr)
	assert.Equal(t, payload, string(badErr.Payload))
}

func TestSend_NonIdempotentPostNotRetried(t *testing.T) {
	// Test Case 7: a failing POST is not retried unless the caller opts in
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	d := NewHTTPDispatcher(srv.URL, testIdentity())
	_, err := d.Send(context.Background(), Request{
		Method: "POST", Path: "/v1/transaction", Body: []byte(`{}`), ContentType: "application/json",
	})

	var unreachable *dcerror.UnreachableError
	require.ErrorAs(t, err, &unreachable)
	assert.Equal(t, 1, unreachable.Attempts)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestSend_OptInIdempotentPostRetried(t *testing.T) {
	// Test Case 8
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) <= 2 {
			http.Error(w, "down", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	d := NewHTTPDispatcher(srv.URL, testIdentity())
	resp, err := d.Send(context.Background(), Request{
		Method: "POST", Path: "/v1/transaction", Body: []byte(`{}`), ContentType: "application/json", Idempotent: true,
	})

	require.NoError(t, err)
	assert.True(t, resp.OK)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestSend_NetworkFailureExhaustsRetries(t *testing.T) {
	// Test Case 9: connection refused ends in UnreachableError with the
	// attempt count
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening

	d := NewHTTPDispatcher(srv.URL, testIdentity(), WithMaxRetries(2))
	_, err := d.Send(context.Background(), Request{Method: "GET", Path: "/v1/status"})

	var unreachable *dcerror.UnreachableError
	require.ErrorAs(t, err, &unreachable)
	assert.Equal(t, 3, unreachable.Attempts)
}

func TestSend_InvalidInputFailsBeforeNetwork(t *testing.T) {
	// Test Case 10: body without content type never leaves the client
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer srv.Close()

	d := NewHTTPDispatcher(srv.URL, testIdentity())
	_, err := d.Send(context.Background(), Request{Method: "POST", Path: "/v1/transaction", Body: []byte(`{}`)})

	var invalid *dcerror.InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Zero(t, atomic.LoadInt32(&calls))
}

func TestSend_NonJSONResponseReturnedRaw(t *testing.T) {
	// Test Case 11: a non-JSON content type skips parsing
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/octet-stream")
		w.Write([]byte{0x1f, 0x8b, 0x08})
	}))
	defer srv.Close()

	d := NewHTTPDispatcher(srv.URL, testIdentity())
	resp, err := d.Send(context.Background(), Request{Method: "GET", Path: "/v1/get/contract-heap/key"})

	require.NoError(t, err)
	assert.Nil(t, resp.Body)
	assert.Equal(t, []byte{0x1f, 0x8b, 0x08}, resp.Raw)
}

func TestSend_InvalidJSONResponse(t *testing.T) {
	// Test Case 12: a 2xx declaring JSON that does not parse is surfaced
	// as UnexpectedResponseError, not retried
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"truncated":`))
	}))
	defer srv.Close()

	d := NewHTTPDispatcher(srv.URL, testIdentity())
	_, err := d.Send(context.Background(), Request{Method: "GET", Path: "/v1/status"})

	var unexpected *dcerror.UnexpectedResponseError
	require.ErrorAs(t, err, &unexpected)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestSend_ContextCancellation(t *testing.T) {
	// Test Case 13: an abandoned request surfaces promptly
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	d := NewHTTPDispatcher(srv.URL, testIdentity())
	_, err := d.Send(ctx, Request{Method: "GET", Path: "/v1/status"})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSendAll_Concurrent(t *testing.T) {
	// Test Case 14: independent requests run concurrently and results come
	// back in request order
	var inFlight, peak int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&inFlight, 1)
		for {
			old := atomic.LoadInt32(&peak)
			if n <= old || atomic.CompareAndSwapInt32(&peak, old, n) {
				break
			}
		}
		time.Sleep(20 * time.Millisecond)
		atomic.AddInt32(&inFlight, -1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"path":"` + r.URL.Path + `"}`))
	}))
	defer srv.Close()

	d := NewHTTPDispatcher(srv.URL, testIdentity())
	reqs := []Request{
		{Method: "GET", Path: "/v1/block/1"},
		{Method: "GET", Path: "/v1/block/2"},
		{Method: "GET", Path: "/v1/block/3"},
		{Method: "GET", Path: "/v1/block/4"},
	}

	responses, err := d.SendAll(context.Background(), reqs)
	require.NoError(t, err)
	require.Len(t, responses, 4)
	for i, resp := range responses {
		assert.JSONEq(t, `{"path":"`+reqs[i].Path+`"}`, string(resp.Body))
	}
	assert.Greater(t, atomic.LoadInt32(&peak), int32(1), "requests should overlap")
}

func TestSendAll_FirstErrorWins(t *testing.T) {
	// Test Case 15: one failing request fails the batch with a typed error
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v1/block/bad" {
			http.Error(w, `{}`, http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	d := NewHTTPDispatcher(srv.URL, testIdentity())
	_, err := d.SendAll(context.Background(), []Request{
		{Method: "GET", Path: "/v1/block/1"},
		{Method: "GET", Path: "/v1/block/bad"},
	})

	var nfErr *dcerror.NotFoundError
	require.ErrorAs(t, err, &nfErr)
}
