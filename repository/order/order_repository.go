package order

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
	"github.com/muhammadheryan/storefront/thirdparty/storeapi"
	"github.com/muhammadheryan/storefront/utils/errors"
)

const idempotencyHeader = "Idempotency-Key"

type API struct {
	client storeapi.Caller
}

// OrderRepository submits storefront orders and manages back-office orders on the
// commerce API.
type OrderRepository interface {
	Create(ctx context.Context, req *model.OrderRequest, idempotencyKey string) (*model.OrderSummary, error)
	AdminList(ctx context.Context, filter *model.AdminOrderFilter) (*model.AdminOrderListResponse, error)
	AdminGet(ctx context.Context, id string) (*model.AdminOrder, error)
	AdminCreate(ctx context.Context, req *model.AdminOrderRequest, idempotencyKey string) (*model.AdminOrder, error)
	AdminUpdate(ctx context.Context, id string, req *model.AdminOrderRequest) (*model.AdminOrder, error)
	AdminDelete(ctx context.Context, id string) error
}

func NewOrderRepository(client storeapi.Caller) OrderRepository {
	return &API{client: client}
}

func (s *API) Create(ctx context.Context, req *model.OrderRequest, idempotencyKey string) (*model.OrderSummary, error) {
	var res model.OrderResponse
	err := s.client.Do(ctx, storeapi.Request{
		Op:     "create_order",
		Method: http.MethodPost,
		Path:   "/orders",
		Body:   req,
		Header: http.Header{idempotencyHeader: {idempotencyKey}},
	}, &res)
	if err != nil {
		return nil, err
	}
	if !res.Success || res.Order.ID == "" {
		return nil, rejected(res.Error)
	}
	return &res.Order, nil
}

func (s *API) AdminList(ctx context.Context, filter *model.AdminOrderFilter) (*model.AdminOrderListResponse, error) {
	q := url.Values{}
	if filter != nil {
		if filter.Status != "" {
			q.Set("status", filter.Status)
		}
		if filter.Page > 0 {
			q.Set("page", strconv.Itoa(filter.Page))
		}
		if filter.Limit > 0 {
			q.Set("limit", strconv.Itoa(filter.Limit))
		}
	}
	var res model.AdminOrderListResponse
	if err := s.client.Do(ctx, storeapi.Request{Op: "admin_list_orders", Method: http.MethodGet, Path: "/admin/orders", Query: q}, &res); err != nil {
		return nil, err
	}
	if res.Orders == nil {
		res.Orders = []model.AdminOrder{}
	}
	return &res, nil
}

func (s *API) AdminGet(ctx context.Context, id string) (*model.AdminOrder, error) {
	var res model.AdminOrderResponse
	if err := s.client.Do(ctx, storeapi.Request{Op: "admin_get_order", Method: http.MethodGet, Path: "/admin/orders/" + url.PathEscape(id)}, &res); err != nil {
		return nil, err
	}
	if res.Order.ID == "" {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return &res.Order, nil
}

func (s *API) AdminCreate(ctx context.Context, req *model.AdminOrderRequest, idempotencyKey string) (*model.AdminOrder, error) {
	var res model.AdminOrderResponse
	err := s.client.Do(ctx, storeapi.Request{
		Op:     "admin_create_order",
		Method: http.MethodPost,
		Path:   "/admin/orders",
		Body:   req,
		Header: http.Header{idempotencyHeader: {idempotencyKey}},
	}, &res)
	if err != nil {
		return nil, err
	}
	if !res.Success || res.Order.ID == "" {
		return nil, rejected(res.Error)
	}
	return &res.Order, nil
}

func (s *API) AdminUpdate(ctx context.Context, id string, req *model.AdminOrderRequest) (*model.AdminOrder, error) {
	var res model.AdminOrderResponse
	err := s.client.Do(ctx, storeapi.Request{
		Op:     "admin_update_order",
		Method: http.MethodPut,
		Path:   "/admin/orders/" + url.PathEscape(id),
		Body:   req,
	}, &res)
	if err != nil {
		return nil, err
	}
	if !res.Success {
		return nil, rejected(res.Error)
	}
	if res.Order.ID == "" {
		res.Order.ID = id
	}
	return &res.Order, nil
}

func (s *API) AdminDelete(ctx context.Context, id string) error {
	return s.client.Do(ctx, storeapi.Request{Op: "admin_delete_order", Method: http.MethodDelete, Path: "/admin/orders/" + url.PathEscape(id)}, nil)
}

// rejected turns a 2xx {success:false, error} answer into ErrUpstream.
func rejected(msg string) error {
	if msg == "" {
		return errors.SetCustomError(constant.ErrUpstream)
	}
	return errors.SetCustomErrorWithDetails(constant.ErrUpstream, msg)
}
