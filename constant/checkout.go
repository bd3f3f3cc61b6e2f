package constant

// CheckoutStep identifies one collapsible section of the checkout form.
type CheckoutStep string

const (
	StepBuyerInfo    CheckoutStep = "buyer_info"
	StepShipping     CheckoutStep = "shipping"
	StepPayment      CheckoutStep = "payment"
	StepVoucher      CheckoutStep = "voucher"
	StepRewardPoints CheckoutStep = "reward_points"
)

// CheckoutSteps is the display order of the checkout form.
var CheckoutSteps = []CheckoutStep{
	StepBuyerInfo,
	StepShipping,
	StepPayment,
	StepVoucher,
	StepRewardPoints,
}

var CheckoutStepLabel = map[CheckoutStep]string{
	StepBuyerInfo:    "buyer information",
	StepShipping:     "shipping address",
	StepPayment:      "payment method",
	StepVoucher:      "voucher",
	StepRewardPoints: "reward points",
}

const (
	// CartStorageKey prefixes the persisted cart of every storefront session.
	CartStorageKey = "cart"

	SessionHeader = "X-Session-ID"

	RoleAdmin = "admin"
)
