package model

import (
	"time"

	"github.com/muhammadheryan/storefront/constant"
)

type AdminLineItem struct {
	SKU       string  `json:"sku" db:"sku" validate:"required"`
	ProductID uint64  `json:"product_id" db:"product_id" validate:"required"`
	VariantID *uint64 `json:"variant_id,omitempty" db:"variant_id"`
	Name      string  `json:"name" db:"name"`
	Quantity  int     `json:"quantity" db:"quantity" validate:"gt=0"`
	UnitPrice int64   `json:"unit_price" db:"unit_price" validate:"gte=0"`
}

func (a AdminLineItem) LineTotal() int64 {
	return a.UnitPrice * int64(a.Quantity)
}

type AdminOrder struct {
	ID              string               `json:"id"`
	Status          constant.OrderStatus `json:"status"`
	Buyer           BuyerInfo            `json:"buyer"`
	ShippingAddress ShippingAddress      `json:"shipping_address"`
	PaymentMethod   string               `json:"payment_method"`
	Items           []AdminLineItem      `json:"items"`
	VoucherID       *uint64              `json:"voucher_id,omitempty"`
	PointsUsed      int64                `json:"points_used,omitempty"`
	ShippingFee     int64                `json:"shipping_fee"`
	Total           int64                `json:"total"`
	CreatedAt       *time.Time           `json:"created_at,omitempty"`
}

type AdminOrderFilter struct {
	Status string
	Page   int
	Limit  int
}

type AdminOrderListResponse struct {
	Orders []AdminOrder `json:"orders"`
	Total  int64        `json:"total"`
}

type AdminOrderRequest struct {
	UserID          uint64          `json:"user_id,omitempty"`
	AddressID       uint64          `json:"address_id,omitempty"`
	Buyer           BuyerInfo       `json:"buyer"`
	ShippingAddress ShippingAddress `json:"shipping_address"`
	PaymentMethod   string          `json:"payment_method"`
	Items           []AdminLineItem `json:"items"`
	VoucherID       *uint64         `json:"voucher_id,omitempty"`
	PointsUsed      int64           `json:"points_used,omitempty"`
	ShippingFee     int64           `json:"shipping_fee"`
	Total           int64           `json:"total"`
}

type AdminOrderResponse struct {
	Success bool       `json:"success"`
	Order   AdminOrder `json:"order"`
	Error   string     `json:"error,omitempty"`
}

// Draft is a persisted AdminOrderComposer state.
type Draft struct {
	ID            string               `db:"id" json:"id"`
	OrderID       string               `db:"order_id" json:"order_id,omitempty"`
	UserID        uint64               `db:"user_id" json:"user_id,omitempty"`
	Status        constant.DraftStatus `db:"status" json:"status"`
	BuyerName     string               `db:"buyer_name" json:"buyer_name"`
	BuyerPhone    string               `db:"buyer_phone" json:"buyer_phone"`
	BuyerEmail    string               `db:"buyer_email" json:"buyer_email,omitempty"`
	ProvinceCode  int                  `db:"province_code" json:"province_code"`
	ProvinceName  string               `db:"province_name" json:"province_name"`
	DistrictCode  int                  `db:"district_code" json:"district_code"`
	DistrictName  string               `db:"district_name" json:"district_name"`
	WardCode      int                  `db:"ward_code" json:"ward_code"`
	WardName      string               `db:"ward_name" json:"ward_name"`
	AddressDetail string               `db:"address_detail" json:"address_detail"`
	AddressNote   string               `db:"address_note" json:"address_note,omitempty"`
	PaymentMethod string               `db:"payment_method" json:"payment_method"`
	VoucherID     *uint64              `db:"voucher_id" json:"voucher_id,omitempty"`
	VoucherCode   string               `db:"voucher_code" json:"voucher_code,omitempty"`
	VoucherAmount int64                `db:"voucher_amount" json:"voucher_amount"`
	VoucherMin    int64                `db:"voucher_min" json:"voucher_min"`
	PointsBalance int64                `db:"points_balance" json:"points_balance"`
	PointsUsed    int64                `db:"points_used" json:"points_used"`
	ShippingFee   int64                `db:"shipping_fee" json:"shipping_fee"`
	ExpiresAt     time.Time            `db:"expires_at" json:"expires_at"`
	UpdatedAt     time.Time            `db:"updated_at" json:"updated_at"`
	Items         []AdminLineItem      `db:"-" json:"items"`
}

type CreateDraftRequest struct {
	OrderID string `json:"order_id,omitempty"`
	UserID  uint64 `json:"user_id,omitempty"`
}

type DraftShippingRequest struct {
	ProvinceCode int    `json:"province_code" validate:"required,gt=0"`
	DistrictCode int    `json:"district_code" validate:"required,gt=0"`
	WardCode     int    `json:"ward_code" validate:"required,gt=0"`
	Detail       string `json:"detail" validate:"required"`
	Note         string `json:"note"`
	ShippingFee  int64  `json:"shipping_fee" validate:"gte=0"`
}

type EditLineItemRequest struct {
	Quantity  int   `json:"quantity" validate:"gt=0"`
	UnitPrice int64 `json:"unit_price" validate:"gte=0"`
}

type DraftPointsRequest struct {
	Balance int64 `json:"balance" validate:"gte=0"`
	Points  int64 `json:"points" validate:"gte=0"`
}

type DraftView struct {
	Draft     Draft                   `json:"draft"`
	Summary   PriceSummary            `json:"summary"`
	Missing   []constant.CheckoutStep `json:"missing_steps"`
	CanSubmit bool                    `json:"can_submit"`
}
