package catalog

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/muhammadheryan/storefront/model"
	"github.com/muhammadheryan/storefront/thirdparty/storeapi"
)

// CatalogRepository reads the checkout reference data: vouchers, payment methods
// and shipping carriers.
type CatalogRepository interface {
	ListVouchers(ctx context.Context, userID uint64) ([]model.Voucher, error)
	ListPaymentMethods(ctx context.Context) ([]model.PaymentMethod, error)
	ListShippingCarriers(ctx context.Context) ([]model.ShippingCarrier, error)
}

type API struct {
	client storeapi.Caller
}

func NewCatalogRepository(client storeapi.Caller) CatalogRepository {
	return &API{client: client}
}

func (s *API) ListVouchers(ctx context.Context, userID uint64) ([]model.Voucher, error) {
	var q url.Values
	if userID != 0 {
		q = url.Values{"userId": {strconv.FormatUint(userID, 10)}}
	}
	var res model.VoucherListResponse
	if err := s.client.Do(ctx, storeapi.Request{Op: "list_vouchers", Method: http.MethodGet, Path: "/vouchers", Query: q}, &res); err != nil {
		return nil, err
	}
	return res.Vouchers, nil
}

func (s *API) ListPaymentMethods(ctx context.Context) ([]model.PaymentMethod, error) {
	var res model.PaymentMethodListResponse
	if err := s.client.Do(ctx, storeapi.Request{Op: "list_payment_methods", Method: http.MethodGet, Path: "/payment-methods"}, &res); err != nil {
		return nil, err
	}
	return res.PaymentMethods, nil
}

func (s *API) ListShippingCarriers(ctx context.Context) ([]model.ShippingCarrier, error) {
	var res model.ShippingCarrierListResponse
	if err := s.client.Do(ctx, storeapi.Request{Op: "list_shipping_carriers", Method: http.MethodGet, Path: "/shipping-carriers"}, &res); err != nil {
		return nil, err
	}
	return res.ShippingCarriers, nil
}
