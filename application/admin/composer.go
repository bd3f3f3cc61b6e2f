package admin

import (
	"strings"
	"time"

	"github.com/muhammadheryan/storefront/application/checkout"
	"github.com/muhammadheryan/storefront/application/pricing"
	"github.com/muhammadheryan/storefront/cmd/config"
	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
	"github.com/muhammadheryan/storefront/utils/errors"
	validatorx "github.com/muhammadheryan/storefront/utils/validator"
)

// Composer edits the state of one admin draft. Lines are entered by hand and keyed
// by SKU; the remaining steps follow the storefront checkout rules.
type Composer struct {
	cfg   config.CheckoutConfig
	draft *model.Draft
}

func NewComposer(cfg config.CheckoutConfig, d *model.Draft) *Composer {
	return &Composer{cfg: cfg, draft: d}
}

func (c *Composer) Draft() *model.Draft {
	return c.draft
}

// AddItem appends a line, or adds its quantity to the line with the same SKU. The
// existing line keeps its price.
func (c *Composer) AddItem(item model.AdminLineItem) error {
	item.SKU = strings.TrimSpace(item.SKU)
	if err := validateLine(item); err != nil {
		return err
	}
	if i := c.index(item.SKU); i >= 0 {
		c.draft.Items[i].Quantity += item.Quantity
		return nil
	}
	c.draft.Items = append(c.draft.Items, item)
	return nil
}

func (c *Composer) EditItem(sku string, quantity int, unitPrice int64) error {
	i := c.index(sku)
	if i < 0 {
		return errors.SetCustomErrorWithDetails(constant.ErrLineItemNotFound, sku)
	}
	line := c.draft.Items[i]
	line.Quantity = quantity
	line.UnitPrice = unitPrice
	if err := validateLine(line); err != nil {
		return err
	}
	c.draft.Items[i] = line
	return nil
}

func (c *Composer) RemoveItem(sku string) error {
	i := c.index(sku)
	if i < 0 {
		return errors.SetCustomErrorWithDetails(constant.ErrLineItemNotFound, sku)
	}
	c.draft.Items = append(c.draft.Items[:i], c.draft.Items[i+1:]...)
	return nil
}

func (c *Composer) SetBuyer(b model.BuyerInfo) {
	c.draft.BuyerName = strings.TrimSpace(b.FullName)
	c.draft.BuyerPhone = strings.TrimSpace(b.Phone)
	c.draft.BuyerEmail = strings.TrimSpace(b.Email)
}

// SetShipping records an address whose regions were already resolved by code.
func (c *Composer) SetShipping(addr model.ShippingAddress, fee int64) {
	c.draft.ProvinceCode, c.draft.ProvinceName = addr.Province.Code, addr.Province.Name
	c.draft.DistrictCode, c.draft.DistrictName = addr.District.Code, addr.District.Name
	c.draft.WardCode, c.draft.WardName = addr.Ward.Code, addr.Ward.Name
	c.draft.AddressDetail = strings.TrimSpace(addr.Detail)
	c.draft.AddressNote = strings.TrimSpace(addr.Note)
	c.draft.ShippingFee = fee
}

func (c *Composer) SetPaymentMethod(code string) {
	c.draft.PaymentMethod = strings.TrimSpace(code)
}

// ApplyVoucher keeps v only if the current lines reach its minimum order value.
func (c *Composer) ApplyVoucher(v *model.Voucher, now time.Time) error {
	if err := pricing.CheckVoucher(v, pricing.Subtotal(c.draft.Items), now); err != nil {
		return err
	}
	id := v.ID
	c.draft.VoucherID = &id
	c.draft.VoucherCode = v.Code
	c.draft.VoucherAmount = v.DiscountAmount
	c.draft.VoucherMin = v.MinOrderValue
	return nil
}

func (c *Composer) RemoveVoucher() {
	c.draft.VoucherID = nil
	c.draft.VoucherCode = ""
	c.draft.VoucherAmount = 0
	c.draft.VoucherMin = 0
}

// SetPoints records the customer's balance and the points to redeem, clamped to
// the balance and the per-order cap.
func (c *Composer) SetPoints(balance, points int64) {
	if balance < 0 {
		balance = 0
	}
	c.draft.PointsBalance = balance
	c.draft.PointsUsed = pricing.ClampPoints(points, balance, c.cfg.MaxPointsPerOrder)
}

// Voucher rebuilds the selected voucher, or nil.
func (c *Composer) Voucher() *model.Voucher {
	if c.draft.VoucherID == nil {
		return nil
	}
	return &model.Voucher{
		ID:             *c.draft.VoucherID,
		Code:           c.draft.VoucherCode,
		DiscountAmount: c.draft.VoucherAmount,
		MinOrderValue:  c.draft.VoucherMin,
	}
}

func (c *Composer) Address() model.ShippingAddress {
	d := c.draft
	return model.ShippingAddress{
		Province: model.Region{Code: d.ProvinceCode, Name: d.ProvinceName},
		District: model.Region{Code: d.DistrictCode, Name: d.DistrictName},
		Ward:     model.Region{Code: d.WardCode, Name: d.WardName},
		Detail:   d.AddressDetail,
		Note:     d.AddressNote,
	}
}

func (c *Composer) Buyer() model.BuyerInfo {
	return model.BuyerInfo{FullName: c.draft.BuyerName, Phone: c.draft.BuyerPhone, Email: c.draft.BuyerEmail}
}

// Summary drops the voucher discount while the lines are below its minimum.
func (c *Composer) Summary() model.PriceSummary {
	in := pricing.Input{
		ShippingFee: c.draft.ShippingFee,
		PointsToUse: c.pointsUsed(),
		PointValue:  c.cfg.PointValue,
	}
	if v := c.Voucher(); v != nil && pricing.Subtotal(c.draft.Items) >= v.MinOrderValue {
		in.Voucher = v
	}
	return pricing.Price(c.draft.Items, in)
}

func (c *Composer) MissingSteps() []constant.CheckoutStep {
	return checkout.Missing(checkout.Form{
		Buyer:         c.Buyer(),
		Address:       c.Address(),
		PaymentMethod: c.draft.PaymentMethod,
	})
}

// Request builds the upstream payload. Incomplete drafts and drafts without lines
// are rejected, as is a voucher the lines no longer qualify for.
func (c *Composer) Request() (*model.AdminOrderRequest, error) {
	if missing := c.MissingSteps(); len(missing) > 0 {
		return nil, errors.SetCustomErrorWithDetails(constant.ErrCheckoutIncomplete, checkout.Labels(missing)...)
	}
	if len(c.draft.Items) == 0 {
		return nil, errors.SetCustomError(constant.ErrCartEmpty)
	}
	if v := c.Voucher(); v != nil && pricing.Subtotal(c.draft.Items) < v.MinOrderValue {
		return nil, errors.SetCustomErrorWithDetails(constant.ErrVoucherMinOrder, v.Code)
	}

	summary := c.Summary()
	items := make([]model.AdminLineItem, len(c.draft.Items))
	copy(items, c.draft.Items)
	return &model.AdminOrderRequest{
		UserID:          c.draft.UserID,
		Buyer:           c.Buyer(),
		ShippingAddress: c.Address(),
		PaymentMethod:   c.draft.PaymentMethod,
		Items:           items,
		VoucherID:       c.draft.VoucherID,
		PointsUsed:      c.pointsUsed(),
		ShippingFee:     summary.ShippingFee,
		Total:           summary.GrandTotal,
	}, nil
}

func (c *Composer) pointsUsed() int64 {
	return pricing.ClampPoints(c.draft.PointsUsed, c.draft.PointsBalance, c.cfg.MaxPointsPerOrder)
}

func (c *Composer) index(sku string) int {
	for i := range c.draft.Items {
		if c.draft.Items[i].SKU == sku {
			return i
		}
	}
	return -1
}

func validateLine(item model.AdminLineItem) error {
	if err := validatorx.ValidateStruct(item); err != nil {
		return errors.SetCustomErrorWithDetails(constant.ErrInvalidRequest, validatorx.Fields(err)...)
	}
	return nil
}
