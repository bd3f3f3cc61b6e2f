package storeapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/muhammadheryan/storefront/cmd/config"
	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/thirdparty/storeapi"
	cerr "github.com/muhammadheryan/storefront/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, h http.HandlerFunc) *storeapi.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return storeapi.NewClient(config.StoreAPIConfig{
		BaseURL:          srv.URL + "/api",
		Timeout:          time.Second,
		FailureThreshold: 2,
		OpenTimeout:      time.Minute,
	})
}

func TestClient_Do(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}
	tests := []struct {
		name    string
		handler http.HandlerFunc
		req     storeapi.Request
		want    payload
		wantErr bool
		errCode constant.ErrorType
		details []string
	}{
		{
			name: "success: query, headers and body are forwarded",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/orders", r.URL.Path)
				assert.Equal(t, "5", r.URL.Query().Get("limit"))
				assert.Equal(t, "key-1", r.Header.Get("Idempotency-Key"))
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
				var in payload
				_ = json.NewDecoder(r.Body).Decode(&in)
				_ = json.NewEncoder(w).Encode(payload{Name: in.Name + "!"})
			},
			req: storeapi.Request{
				Op: "test", Method: http.MethodPost, Path: "orders",
				Query:  url.Values{"limit": {"5"}},
				Header: http.Header{"Idempotency-Key": {"key-1"}},
				Body:   payload{Name: "desk"},
			},
			want: payload{Name: "desk!"},
		},
		{
			name: "error: not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			req:     storeapi.Request{Op: "test", Method: http.MethodGet, Path: "products/1"},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: upstream message is surfaced",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnprocessableEntity)
				_, _ = w.Write([]byte(`{"error":"voucher already used"}`))
			},
			req:     storeapi.Request{Op: "test", Method: http.MethodPost, Path: "orders"},
			wantErr: true,
			errCode: constant.ErrUpstream,
			details: []string{"voucher already used"},
		},
		{
			name: "error: malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"name":`))
			},
			req:     storeapi.Request{Op: "test", Method: http.MethodGet, Path: "products"},
			wantErr: true,
			errCode: constant.ErrUpstream,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			c := newClient(t, tt.handler)

			var got payload
			err := c.Do(context.Background(), tt.req, &got)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Do() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assert.Equal(t, tt.errCode, cerr.TypeOf(err))
				if tt.details != nil {
					var ce cerr.CustomError
					require.ErrorAs(t, err, &ce)
					assert.Equal(t, tt.details, ce.Details())
				}
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClient_BreakerOpensOnServerErrors(t *testing.T) {
	var calls int32
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	})
	req := storeapi.Request{Op: "test", Method: http.MethodGet, Path: "products"}

	for i := 0; i < 2; i++ {
		err := c.Do(context.Background(), req, nil)
		assert.Equal(t, constant.ErrUpstream, cerr.TypeOf(err))
	}

	err := c.Do(context.Background(), req, nil)
	assert.Equal(t, constant.ErrUpstreamUnavailable, cerr.TypeOf(err))
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestClient_ClientErrorsDoNotTripBreaker(t *testing.T) {
	var calls int32
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
	})
	req := storeapi.Request{Op: "test", Method: http.MethodPost, Path: "orders"}

	for i := 0; i < 5; i++ {
		err := c.Do(context.Background(), req, nil)
		assert.Equal(t, constant.ErrUpstream, cerr.TypeOf(err))
	}
	assert.Equal(t, int32(5), atomic.LoadInt32(&calls))
}

func TestClient_CallerCancellationDoesNotTripBreaker(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/provinces/1/districts" {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
			return
		}
		_, _ = w.Write([]byte(`{}`))
	})
	slow := storeapi.Request{Op: "list_districts", Method: http.MethodGet, Path: "provinces/1/districts"}

	for i := 0; i < 5; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		err := c.Do(ctx, slow, nil)
		cancel()
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	}

	// an unrelated call still reaches upstream
	err := c.Do(context.Background(), storeapi.Request{Op: "create_order", Method: http.MethodPost, Path: "orders"}, nil)
	assert.NoError(t, err)
}
