package model

type Region struct {
	Code int    `json:"code"`
	Name string `json:"name"`
}

func (r Region) Selected() bool {
	return r.Code != 0
}

type ShippingAddress struct {
	Province Region `json:"province"`
	District Region `json:"district"`
	Ward     Region `json:"ward"`
	Detail   string `json:"detail"`
	Note     string `json:"note,omitempty"`
}

type SelectRegionRequest struct {
	Code int    `json:"code" validate:"required,gt=0"`
	Name string `json:"name" validate:"required"`
}

type AddressDetailRequest struct {
	Detail string `json:"detail" validate:"required"`
	Note   string `json:"note"`
}

// UserAddressRequest is the body of POST /user/addresses.
type UserAddressRequest struct {
	UserID   uint64          `json:"user_id,omitempty"`
	FullName string          `json:"full_name"`
	Phone    string          `json:"phone"`
	Address  ShippingAddress `json:"address"`
}

type UserAddressResponse struct {
	ID uint64 `json:"id"`
}
