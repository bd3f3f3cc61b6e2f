package product

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/muhammadheryan/storefront/model"
	"github.com/muhammadheryan/storefront/thirdparty/storeapi"
)

type API struct {
	client storeapi.Caller
}

type ProductRepository interface {
	List(ctx context.Context, filter *model.ProductFilter) ([]model.Product, error)
	GetByID(ctx context.Context, id uint64) (*model.Product, error)
}

func NewProductRepository(client storeapi.Caller) ProductRepository {
	return &API{client: client}
}

func (s *API) List(ctx context.Context, filter *model.ProductFilter) ([]model.Product, error) {
	q := url.Values{}
	if filter != nil {
		if filter.Category != "" {
			q.Set("category", filter.Category)
		}
		if filter.Brand != "" {
			q.Set("brand", filter.Brand)
		}
		if filter.Sort != "" {
			q.Set("sort", filter.Sort)
		}
		if filter.Limit > 0 {
			q.Set("limit", strconv.Itoa(filter.Limit))
		}
	}

	var res model.ProductListResponse
	err := s.client.Do(ctx, storeapi.Request{
		Op:     "list_products",
		Method: http.MethodGet,
		Path:   "/products",
		Query:  q,
	}, &res)
	if err != nil {
		return nil, err
	}
	if res.Products == nil {
		res.Products = []model.Product{}
	}
	return res.Products, nil
}

func (s *API) GetByID(ctx context.Context, id uint64) (*model.Product, error) {
	var p model.Product
	err := s.client.Do(ctx, storeapi.Request{
		Op:     "get_product",
		Method: http.MethodGet,
		Path:   "/products/" + strconv.FormatUint(id, 10),
	}, &p)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
