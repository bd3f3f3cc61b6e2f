package model

import (
	"encoding/json"
	"strings"
	"time"
)

type Voucher struct {
	ID             uint64    `json:"id"`
	Code           string    `json:"code"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	DiscountAmount int64     `json:"discount_amount"`
	MinOrderValue  int64     `json:"min_order_value"`
	ExpiresAt      time.Time `json:"expires_at"`
}

func (v *Voucher) UnmarshalJSON(data []byte) error {
	type alias Voucher
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	a.Code = NormalizeVoucherCode(a.Code)
	*v = Voucher(a)
	return nil
}

// Expired reports whether the voucher is past its expiry; a zero expiry never expires.
func (v Voucher) Expired(now time.Time) bool {
	return !v.ExpiresAt.IsZero() && now.After(v.ExpiresAt)
}

func NormalizeVoucherCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

type VoucherListResponse struct {
	Vouchers []Voucher `json:"vouchers"`
}

type ApplyVoucherRequest struct {
	Code string `json:"code" validate:"required"`
}
