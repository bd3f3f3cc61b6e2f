// Package pricing turns priced lines plus shipping, voucher and reward points into order totals.
//
// Price is pure. Voucher thresholds and point caps are selection-time gates applied by
// callers through CheckVoucher and ClampPoints before Price runs.
package pricing

import (
	"time"

	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
	"github.com/muhammadheryan/storefront/utils/errors"
	"github.com/shopspring/decimal"
)

// Line is anything with a unit price times quantity amount.
type Line interface {
	LineTotal() int64
}

type Input struct {
	ShippingFee int64
	Voucher     *model.Voucher
	PointsToUse int64
	// PointValue is the currency amount one reward point is worth.
	PointValue decimal.Decimal
}

func Price[L Line](lines []L, in Input) model.PriceSummary {
	subtotal := Subtotal(lines)

	var voucherDiscount int64
	if in.Voucher != nil {
		voucherDiscount = in.Voucher.DiscountAmount
	}
	pointsDiscount := PointsDiscount(in.PointsToUse, in.PointValue)

	total := subtotal + in.ShippingFee - voucherDiscount - pointsDiscount
	if total < 0 {
		total = 0
	}

	return model.PriceSummary{
		Subtotal:        subtotal,
		VoucherDiscount: voucherDiscount,
		PointsDiscount:  pointsDiscount,
		ShippingFee:     in.ShippingFee,
		GrandTotal:      total,
	}
}

func Subtotal[L Line](lines []L) int64 {
	var sum int64
	for _, l := range lines {
		sum += l.LineTotal()
	}
	return sum
}

// PointsDiscount converts points at value, truncating fractions of the currency unit.
func PointsDiscount(points int64, value decimal.Decimal) int64 {
	if points <= 0 {
		return 0
	}
	return decimal.NewFromInt(points).Mul(value).IntPart()
}

// CheckVoucher is the selection-time gate: the voucher must not be expired and the
// subtotal must reach its minimum order value.
func CheckVoucher(v *model.Voucher, subtotal int64, now time.Time) error {
	if v == nil {
		return errors.SetCustomError(constant.ErrVoucherNotFound)
	}
	if v.Expired(now) {
		return errors.SetCustomErrorWithDetails(constant.ErrVoucherExpired, v.Code)
	}
	if subtotal < v.MinOrderValue {
		return errors.SetCustomErrorWithDetails(constant.ErrVoucherMinOrder,
			v.Code+" requires a minimum order of "+formatAmount(v.MinOrderValue))
	}
	return nil
}

// RejectReason labels a CheckVoucher failure for metrics.
func RejectReason(err error) string {
	switch errors.TypeOf(err) {
	case constant.ErrVoucherMinOrder:
		return "min_order"
	case constant.ErrVoucherExpired:
		return "expired"
	default:
		return "not_found"
	}
}

// PointsCap is the most points a single order may redeem.
func PointsCap(available, maxPerOrder int64) int64 {
	c := available
	if maxPerOrder < c {
		c = maxPerOrder
	}
	if c < 0 {
		return 0
	}
	return c
}

// ClampPoints bounds requested to [0, PointsCap(available, maxPerOrder)].
func ClampPoints(requested, available, maxPerOrder int64) int64 {
	if requested < 0 {
		return 0
	}
	if c := PointsCap(available, maxPerOrder); requested > c {
		return c
	}
	return requested
}

func formatAmount(v int64) string {
	return decimal.NewFromInt(v).StringFixed(0)
}
