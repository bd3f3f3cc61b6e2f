package model

import "github.com/muhammadheryan/storefront/constant"

type BuyerInfo struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Email    string `json:"email,omitempty"`
}

type PaymentMethod struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type ShippingCarrier struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Fee  int64  `json:"fee"`
}

type PaymentMethodListResponse struct {
	PaymentMethods []PaymentMethod `json:"paymentMethods"`
}

type ShippingCarrierListResponse struct {
	ShippingCarriers []ShippingCarrier `json:"shippingCarriers"`
}

type RewardPoints struct {
	Available int64 `json:"available"`
	Use       bool  `json:"use"`
	Points    int64 `json:"points"`
	Cap       int64 `json:"cap"`
}

type PriceSummary struct {
	Subtotal        int64 `json:"subtotal"`
	VoucherDiscount int64 `json:"voucher_discount"`
	PointsDiscount  int64 `json:"points_discount"`
	ShippingFee     int64 `json:"shipping_fee"`
	GrandTotal      int64 `json:"grand_total"`
}

type StepStatus struct {
	Step      constant.CheckoutStep `json:"step"`
	Completed bool                  `json:"completed"`
	Optional  bool                  `json:"optional"`
}

type CheckoutView struct {
	Buyer         BuyerInfo        `json:"buyer"`
	Address       ShippingAddress  `json:"address"`
	PaymentMethod string           `json:"payment_method,omitempty"`
	Carrier       *ShippingCarrier `json:"carrier,omitempty"`
	Voucher       *Voucher         `json:"voucher,omitempty"`
	Points        RewardPoints     `json:"points"`
	Steps         []StepStatus     `json:"steps"`
	CanSubmit     bool             `json:"can_submit"`
	Summary       PriceSummary     `json:"summary"`
	Items         []CartItem       `json:"items"`
	Submitting    bool             `json:"submitting"`
}

type BuyerInfoRequest struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Email    string `json:"email" validate:"omitempty,email"`
}

type SelectCodeRequest struct {
	Code string `json:"code" validate:"required"`
}

type RewardPointsRequest struct {
	Use    bool  `json:"use"`
	Points int64 `json:"points" validate:"gte=0"`
}
