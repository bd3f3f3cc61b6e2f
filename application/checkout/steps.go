package checkout

import (
	"strings"

	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
)

// BuyerInfoCompleted: full name and phone are set, or the signed-in profile
// already carries a phone number.
func BuyerInfoCompleted(buyer model.BuyerInfo, profile *model.Profile) bool {
	if profile != nil && strings.TrimSpace(profile.Phone) != "" {
		return true
	}
	return strings.TrimSpace(buyer.FullName) != "" && strings.TrimSpace(buyer.Phone) != ""
}

// ShippingCompleted: detail address plus a selected province, district and ward.
func ShippingCompleted(addr model.ShippingAddress) bool {
	return strings.TrimSpace(addr.Detail) != "" &&
		addr.Province.Selected() && addr.District.Selected() && addr.Ward.Selected()
}

func PaymentCompleted(code string) bool {
	return strings.TrimSpace(code) != ""
}

// Form is the state the step predicates look at.
type Form struct {
	Buyer         model.BuyerInfo
	Profile       *model.Profile
	Address       model.ShippingAddress
	PaymentMethod string
}

// Steps evaluates every step in display order. Voucher and reward points are
// optional and always complete.
func Steps(f Form) []model.StepStatus {
	done := map[constant.CheckoutStep]bool{
		constant.StepBuyerInfo:    BuyerInfoCompleted(f.Buyer, f.Profile),
		constant.StepShipping:     ShippingCompleted(f.Address),
		constant.StepPayment:      PaymentCompleted(f.PaymentMethod),
		constant.StepVoucher:      true,
		constant.StepRewardPoints: true,
	}
	out := make([]model.StepStatus, 0, len(constant.CheckoutSteps))
	for _, step := range constant.CheckoutSteps {
		out = append(out, model.StepStatus{
			Step:      step,
			Completed: done[step],
			Optional:  step == constant.StepVoucher || step == constant.StepRewardPoints,
		})
	}
	return out
}

// Missing lists the incomplete mandatory steps in display order.
func Missing(f Form) []constant.CheckoutStep {
	var out []constant.CheckoutStep
	for _, s := range Steps(f) {
		if !s.Completed {
			out = append(out, s.Step)
		}
	}
	return out
}

// Labels renders steps for error details.
func Labels(steps []constant.CheckoutStep) []string {
	out := make([]string, len(steps))
	for i, s := range steps {
		out[i] = constant.CheckoutStepLabel[s]
	}
	return out
}
