package checkout

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadheryan/storefront/application/address"
	"github.com/muhammadheryan/storefront/application/cart"
	"github.com/muhammadheryan/storefront/application/pricing"
	"github.com/muhammadheryan/storefront/cmd/config"
	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
	orderrepo "github.com/muhammadheryan/storefront/repository/order"
	"github.com/muhammadheryan/storefront/utils/errors"
	"github.com/muhammadheryan/storefront/utils/logger"
	"github.com/muhammadheryan/storefront/utils/metrics"
	"go.uber.org/zap"
)

const channelStorefront = "storefront"

// Orchestrator drives the checkout form of one session over its cart and
// address cascade.
type Orchestrator struct {
	cfg       config.CheckoutConfig
	cart      *cart.Store
	cascade   *address.Cascade
	orderRepo orderrepo.OrderRepository
	now       func() time.Time

	mu         sync.Mutex
	profile    *model.Profile
	buyer      model.BuyerInfo
	detail     string
	note       string
	payment    string
	carrier    *model.ShippingCarrier
	voucher    *model.Voucher
	usePoints  bool
	points     int64
	submitting bool
	// idempotency key reused while retrying the same payload
	pendingKey  string
	pendingHash [sha256.Size]byte
}

func NewOrchestrator(cfg config.CheckoutConfig, store *cart.Store, cascade *address.Cascade, orderRepo orderrepo.OrderRepository) *Orchestrator {
	return &Orchestrator{
		cfg:       cfg,
		cart:      store,
		cascade:   cascade,
		orderRepo: orderRepo,
		now:       time.Now,
	}
}

// SetProfile binds the signed-in shopper, or nil for a guest.
func (o *Orchestrator) SetProfile(p *model.Profile) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.profile = p
}

func (o *Orchestrator) SetBuyerInfo(b model.BuyerInfo) model.CheckoutView {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.buyer = model.BuyerInfo{
		FullName: strings.TrimSpace(b.FullName),
		Phone:    strings.TrimSpace(b.Phone),
		Email:    strings.TrimSpace(b.Email),
	}
	return o.viewLocked()
}

func (o *Orchestrator) SetAddressDetail(detail, note string) model.CheckoutView {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.detail = strings.TrimSpace(detail)
	o.note = strings.TrimSpace(note)
	return o.viewLocked()
}

func (o *Orchestrator) SelectPaymentMethod(code string) model.CheckoutView {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.payment = strings.TrimSpace(code)
	return o.viewLocked()
}

// SelectCarrier sets the carrier whose fee replaces the default shipping fee.
func (o *Orchestrator) SelectCarrier(c *model.ShippingCarrier) model.CheckoutView {
	o.mu.Lock()
	defer o.mu.Unlock()
	if c == nil {
		o.carrier = nil
	} else {
		cp := *c
		o.carrier = &cp
	}
	return o.viewLocked()
}

// ApplyVoucher selects v if the current cart subtotal reaches its minimum order
// value and it has not expired. A rejected voucher leaves the form unchanged.
func (o *Orchestrator) ApplyVoucher(v *model.Voucher) (model.CheckoutView, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	subtotal := pricing.Subtotal(o.cart.Items())
	if err := pricing.CheckVoucher(v, subtotal, o.now()); err != nil {
		metrics.VoucherRejected.WithLabelValues(pricing.RejectReason(err)).Inc()
		return o.viewLocked(), err
	}
	cp := *v
	o.voucher = &cp
	return o.viewLocked(), nil
}

func (o *Orchestrator) RemoveVoucher() model.CheckoutView {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.voucher = nil
	return o.viewLocked()
}

// SetPoints toggles redemption and records the amount, clamped to the balance
// and the per-order cap.
func (o *Orchestrator) SetPoints(use bool, points int64) model.CheckoutView {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.usePoints = use
	o.points = pricing.ClampPoints(points, o.balanceLocked(), o.cfg.MaxPointsPerOrder)
	return o.viewLocked()
}

func (o *Orchestrator) MissingSteps() []constant.CheckoutStep {
	o.mu.Lock()
	defer o.mu.Unlock()
	return Missing(o.formLocked())
}

func (o *Orchestrator) CanSubmit() bool {
	return len(o.MissingSteps()) == 0
}

func (o *Orchestrator) Summary() model.PriceSummary {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.summaryLocked(o.cart.Items())
}

func (o *Orchestrator) View() model.CheckoutView {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.viewLocked()
}

// Submit places the order. Incomplete forms fail with the missing steps and
// nothing is sent. On success the cart is cleared and both overlays close; on
// failure the form and the cart are left as they were.
func (o *Orchestrator) Submit(ctx context.Context) (*model.SubmitResponse, error) {
	o.mu.Lock()
	if o.submitting {
		o.mu.Unlock()
		return nil, errors.SetCustomError(constant.ErrSubmitInProgress)
	}
	req, err := o.buildLocked()
	if err != nil {
		o.mu.Unlock()
		return nil, err
	}
	key := o.keyLocked(req)
	o.submitting = true
	o.mu.Unlock()

	created, err := o.orderRepo.Create(ctx, req, key)

	o.mu.Lock()
	defer o.mu.Unlock()
	o.submitting = false

	if err != nil {
		metrics.OrdersSubmitted.WithLabelValues(channelStorefront, "failed").Inc()
		logger.Error("[Submit] error orderRepo.Create", zap.String("error", err.Error()))
		return nil, errors.Normalize(err)
	}

	metrics.OrdersSubmitted.WithLabelValues(channelStorefront, "ok").Inc()
	metrics.OrderValue.WithLabelValues(channelStorefront).Observe(float64(req.Total))
	logger.Info("[Submit] order created", zap.String("order_id", created.ID), zap.Int64("total", req.Total))

	ordered := make(map[string]int, len(req.Items))
	for _, it := range req.Items {
		ordered[it.SKU] += it.Quantity
	}
	o.cart.Deduct(ctx, ordered)
	o.cart.CloseOverlays()
	o.voucher = nil
	o.usePoints = false
	o.points = 0
	o.pendingKey = ""
	return &model.SubmitResponse{OrderID: created.ID}, nil
}

func (o *Orchestrator) buildLocked() (*model.OrderRequest, error) {
	form := o.formLocked()
	if missing := Missing(form); len(missing) > 0 {
		return nil, errors.SetCustomErrorWithDetails(constant.ErrCheckoutIncomplete, Labels(missing)...)
	}

	items := o.cart.Items()
	if len(items) == 0 {
		return nil, errors.SetCustomError(constant.ErrCartEmpty)
	}
	if o.voucher != nil {
		if err := pricing.CheckVoucher(o.voucher, pricing.Subtotal(items), o.now()); err != nil {
			return nil, err
		}
	}

	summary := o.summaryLocked(items)
	buyer := o.buyer
	var userID uint64
	if o.profile != nil {
		userID = o.profile.UserID
		if buyer.FullName == "" {
			buyer.FullName = o.profile.Name
		}
		if buyer.Phone == "" {
			buyer.Phone = o.profile.Phone
		}
	}

	req := &model.OrderRequest{
		UserID:          userID,
		Buyer:           buyer,
		ShippingAddress: form.Address,
		PaymentMethod:   o.payment,
		Items:           make([]model.OrderItemRequest, 0, len(items)),
		ShippingFee:     summary.ShippingFee,
		Total:           summary.GrandTotal,
	}
	if o.carrier != nil {
		req.ShippingCarrier = o.carrier.Code
	}
	if o.voucher != nil {
		id := o.voucher.ID
		req.VoucherID = &id
	}
	if summary.PointsDiscount > 0 {
		req.PointsUsed = o.pointsLocked()
	}
	for _, it := range items {
		req.Items = append(req.Items, model.OrderItemRequest{
			ProductID: it.ProductID,
			VariantID: it.VariantID,
			SKU:       it.ID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return req, nil
}

func (o *Orchestrator) keyLocked(req *model.OrderRequest) string {
	raw, _ := json.Marshal(req)
	sum := sha256.Sum256(raw)
	if o.pendingKey == "" || sum != o.pendingHash {
		o.pendingKey = uuid.NewString()
		o.pendingHash = sum
	}
	return o.pendingKey
}

func (o *Orchestrator) formLocked() Form {
	addr := o.cascade.Address()
	addr.Detail = o.detail
	addr.Note = o.note
	return Form{
		Buyer:         o.buyer,
		Profile:       o.profile,
		Address:       addr,
		PaymentMethod: o.payment,
	}
}

func (o *Orchestrator) balanceLocked() int64 {
	if o.profile == nil {
		return 0
	}
	return o.profile.RewardPoints
}

// pointsLocked re-clamps the stored amount in case the balance changed.
func (o *Orchestrator) pointsLocked() int64 {
	if !o.usePoints {
		return 0
	}
	return pricing.ClampPoints(o.points, o.balanceLocked(), o.cfg.MaxPointsPerOrder)
}

func (o *Orchestrator) shippingFeeLocked() int64 {
	if o.carrier != nil {
		return o.carrier.Fee
	}
	return o.cfg.DefaultShippingFee
}

// summaryLocked prices the lines. A voucher that no longer passes its gate
// contributes no discount; Submit rejects it.
func (o *Orchestrator) summaryLocked(items []model.CartItem) model.PriceSummary {
	in := pricing.Input{
		ShippingFee: o.shippingFeeLocked(),
		PointsToUse: o.pointsLocked(),
		PointValue:  o.cfg.PointValue,
	}
	if o.voucher != nil && pricing.CheckVoucher(o.voucher, pricing.Subtotal(items), o.now()) == nil {
		in.Voucher = o.voucher
	}
	return pricing.Price(items, in)
}

func (o *Orchestrator) viewLocked() model.CheckoutView {
	items := o.cart.Items()
	form := o.formLocked()
	steps := Steps(form)
	canSubmit := true
	for _, s := range steps {
		if !s.Completed {
			canSubmit = false
		}
	}

	view := model.CheckoutView{
		Buyer:         o.buyer,
		Address:       form.Address,
		PaymentMethod: o.payment,
		Carrier:       o.carrier,
		Voucher:       o.voucher,
		Points: model.RewardPoints{
			Available: o.balanceLocked(),
			Use:       o.usePoints,
			Points:    o.pointsLocked(),
			Cap:       pricing.PointsCap(o.balanceLocked(), o.cfg.MaxPointsPerOrder),
		},
		Steps:      steps,
		CanSubmit:  canSubmit && len(items) > 0,
		Summary:    o.summaryLocked(items),
		Items:      items,
		Submitting: o.submitting,
	}
	return view
}
