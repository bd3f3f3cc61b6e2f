package rabbitmq

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftExpirer_Expire(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		wantErr     bool
		wantRequeue bool
	}{
		{name: "ok", status: http.StatusNoContent},
		{name: "server error is retried", status: http.StatusBadGateway, wantErr: true, wantRequeue: true},
		{name: "client error is dropped", status: http.StatusNotFound, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath, gotAuth string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.Method + " " + r.URL.Path
				gotAuth = r.Header.Get("Authorization")
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			e := NewDraftExpirer(srv.URL, "secret")
			requeue, err := e.Expire(context.Background(), "d-1")

			assert.Equal(t, "POST /internal/v1/admin/drafts/d-1/expire", gotPath)
			assert.Equal(t, "Bearer secret", gotAuth)
			assert.Equal(t, tt.wantRequeue, requeue)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestDraftExpirer_UnreachableIsRetried(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	requeue, err := NewDraftExpirer(url, "k").Expire(context.Background(), "d-1")
	require.Error(t, err)
	assert.True(t, requeue)
}

func TestDelayMillis(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, int64(90_000), delayMillis(now.Add(90*time.Second), now))
	assert.Equal(t, int64(0), delayMillis(now.Add(-time.Minute), now))
}
