package model

import "strconv"

type CartItem struct {
	ID            string  `json:"id"`
	ProductID     uint64  `json:"product_id"`
	VariantID     *uint64 `json:"variant_id,omitempty"`
	Name          string  `json:"name"`
	UnitPrice     int64   `json:"price"`
	OriginalPrice *int64  `json:"original_price,omitempty"`
	Quantity      int     `json:"quantity"`
	Image         string  `json:"image,omitempty"`
	Brand         string  `json:"brand,omitempty"`
	MaxQuantity   int     `json:"max_quantity,omitempty"`
}

// LineTotal is unit price times quantity.
func (c CartItem) LineTotal() int64 {
	return c.UnitPrice * int64(c.Quantity)
}

// CartItemKey builds the line identity: the product id, qualified by the variant id
// when a variant was chosen.
func CartItemKey(productID uint64, variantID *uint64) string {
	key := strconv.FormatUint(productID, 10)
	if variantID != nil {
		key += "-" + strconv.FormatUint(*variantID, 10)
	}
	return key
}

type CartView struct {
	Items        []CartItem `json:"items"`
	TotalItems   int        `json:"total_items"`
	TotalPrice   int64      `json:"total_price"`
	DrawerOpen   bool       `json:"drawer_open"`
	CheckoutOpen bool       `json:"checkout_open"`
}

type AddCartItemRequest struct {
	ProductID uint64  `json:"product_id" validate:"required"`
	VariantID *uint64 `json:"variant_id,omitempty"`
}

type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

type OverlayRequest struct {
	Drawer   *bool `json:"drawer,omitempty"`
	Checkout *bool `json:"checkout,omitempty"`
}
