package user

import (
	"context"
	"net/http"

	"github.com/muhammadheryan/storefront/model"
	"github.com/muhammadheryan/storefront/thirdparty/storeapi"
)

type API struct {
	client storeapi.Caller
}

type UserRepository interface {
	CreateAddress(ctx context.Context, req *model.UserAddressRequest) (*model.UserAddressResponse, error)
}

func NewUserRepository(client storeapi.Caller) UserRepository {
	return &API{client: client}
}

// CreateAddress saves a shipping address on the customer's address book.
func (s *API) CreateAddress(ctx context.Context, req *model.UserAddressRequest) (*model.UserAddressResponse, error) {
	var res model.UserAddressResponse
	err := s.client.Do(ctx, storeapi.Request{
		Op:     "create_user_address",
		Method: http.MethodPost,
		Path:   "/user/addresses",
		Body:   req,
	}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}
