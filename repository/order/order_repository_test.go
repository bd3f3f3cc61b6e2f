package order_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/muhammadheryan/storefront/cmd/config"
	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
	"github.com/muhammadheryan/storefront/repository/order"
	"github.com/muhammadheryan/storefront/thirdparty/storeapi"
	cerr "github.com/muhammadheryan/storefront/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T, h http.HandlerFunc) order.OrderRepository {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return order.NewOrderRepository(storeapi.NewClient(config.StoreAPIConfig{BaseURL: srv.URL, Timeout: time.Second, OpenTimeout: time.Second}))
}

func TestOrderRepository_Create(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantErr bool
		errCode constant.ErrorType
	}{
		{
			name: "success",
			body: `{"success":true,"order":{"id":"ORD-1","total":299500}}`,
			want: "ORD-1",
		},
		{
			name:    "error: success false",
			body:    `{"success":false,"error":"out of stock"}`,
			wantErr: true,
			errCode: constant.ErrUpstream,
		},
		{
			name:    "error: missing order id",
			body:    `{"success":true,"order":{}}`,
			wantErr: true,
			errCode: constant.ErrUpstream,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/orders", r.URL.Path)
				assert.Equal(t, "idem-1", r.Header.Get("Idempotency-Key"))
				var req model.OrderRequest
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				assert.Equal(t, "cod", req.PaymentMethod)
				_, _ = w.Write([]byte(tt.body))
			})

			got, err := repo.Create(context.Background(), &model.OrderRequest{PaymentMethod: "cod"}, "idem-1")
			if (err != nil) != tt.wantErr {
				t.Fatalf("Create() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assert.Equal(t, tt.errCode, cerr.TypeOf(err))
				return
			}
			assert.Equal(t, tt.want, got.ID)
		})
	}
}

func TestOrderRepository_Admin(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/admin/orders":
			assert.Equal(t, "pending", r.URL.Query().Get("status"))
			assert.Equal(t, "2", r.URL.Query().Get("page"))
			_, _ = w.Write([]byte(`{"orders":[{"id":"A1"}],"total":11}`))
		case r.Method == http.MethodGet && r.URL.Path == "/admin/orders/A1":
			_, _ = w.Write([]byte(`{"order":{"id":"A1","items":[{"sku":"7-71","product_id":7,"quantity":2,"unit_price":100}]}}`))
		case r.Method == http.MethodPut && r.URL.Path == "/admin/orders/A1":
			_, _ = w.Write([]byte(`{"success":true}`))
		case r.Method == http.MethodDelete && r.URL.Path == "/admin/orders/A1":
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	ctx := context.Background()

	list, err := repo.AdminList(ctx, &model.AdminOrderFilter{Status: "pending", Page: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(11), list.Total)
	assert.Len(t, list.Orders, 1)

	got, err := repo.AdminGet(ctx, "A1")
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, int64(200), got.Items[0].LineTotal())

	updated, err := repo.AdminUpdate(ctx, "A1", &model.AdminOrderRequest{})
	require.NoError(t, err)
	assert.Equal(t, "A1", updated.ID)

	assert.NoError(t, repo.AdminDelete(ctx, "A1"))

	_, err = repo.AdminGet(ctx, "missing")
	assert.Equal(t, constant.ErrNotFound, cerr.TypeOf(err))
}
