package model

import (
	"time"

	"github.com/muhammadheryan/storefront/constant"
)

type OrderItemRequest struct {
	ProductID uint64  `json:"product_id" validate:"required"`
	VariantID *uint64 `json:"variant_id,omitempty"`
	SKU       string  `json:"sku,omitempty"`
	Name      string  `json:"name,omitempty"`
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
	UnitPrice int64   `json:"unit_price" validate:"gte=0"`
}

// OrderRequest is the payload of POST /orders. It is built fresh for every attempt.
type OrderRequest struct {
	UserID          uint64             `json:"user_id,omitempty"`
	Buyer           BuyerInfo          `json:"buyer"`
	ShippingAddress ShippingAddress    `json:"shipping_address"`
	PaymentMethod   string             `json:"payment_method"`
	ShippingCarrier string             `json:"shipping_carrier,omitempty"`
	Items           []OrderItemRequest `json:"items" validate:"required,dive"`
	VoucherID       *uint64            `json:"voucher_id,omitempty"`
	PointsUsed      int64              `json:"points_used,omitempty"`
	ShippingFee     int64              `json:"shipping_fee"`
	Total           int64              `json:"total"`
}

type OrderSummary struct {
	ID        string               `json:"id"`
	Status    constant.OrderStatus `json:"status,omitempty"`
	Total     int64                `json:"total,omitempty"`
	CreatedAt *time.Time           `json:"created_at,omitempty"`
}

type OrderResponse struct {
	Success bool         `json:"success"`
	Order   OrderSummary `json:"order"`
	Error   string       `json:"error,omitempty"`
}

type SubmitResponse struct {
	OrderID string `json:"order_id"`
}
