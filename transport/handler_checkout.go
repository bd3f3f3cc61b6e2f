package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/storefront/application/address"
	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
	"github.com/muhammadheryan/storefront/utils/errors"
)

var levels = map[string]address.Level{
	"province": address.LevelProvince,
	"district": address.LevelDistrict,
	"ward":     address.LevelWard,
}

// GetRegions handler
// @Summary Address cascade state
// @Description With settle=true the response waits for pending list loads.
// @Tags Checkout
// @Produce json
// @Param X-Session-ID header string false "Storefront session"
// @Param settle query bool false "Wait for pending loads"
// @Success 200 {object} address.State
// @Router /regions [get]
func (s *RestHandler) GetRegions(w http.ResponseWriter, r *http.Request) {
	c := s.session(r).Cascade
	if r.URL.Query().Get("settle") == "true" {
		c.Settle()
	}
	writeSuccess(w, c.State())
}

// SelectRegion handler
// @Summary Select a province, district or ward
// @Description Selecting a level clears every level below it and loads the next list.
// @Tags Checkout
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Storefront session"
// @Param level path string true "province, district or ward"
// @Param request body model.SelectRegionRequest true "Region"
// @Success 200 {object} address.State
// @Failure 400 {object} ErrorResponse
// @Router /regions/{level} [put]
func (s *RestHandler) SelectRegion(w http.ResponseWriter, r *http.Request) {
	level, ok := levels[mux.Vars(r)["level"]]
	if !ok {
		writeError(w, errors.SetCustomErrorWithDetails(constant.ErrInvalidRequest, "level"))
		return
	}
	var req model.SelectRegionRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	c := s.session(r).Cascade
	region := model.Region{Code: req.Code, Name: req.Name}
	var err error
	switch level {
	case address.LevelProvince:
		err = c.SelectProvince(region)
	case address.LevelDistrict:
		err = c.SelectDistrict(region)
	default:
		err = c.SelectWard(region)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, c.State())
}

// RetryRegion handler
// @Summary Reload a region list after a failed load
// @Tags Checkout
// @Produce json
// @Param X-Session-ID header string false "Storefront session"
// @Param level path string true "province, district or ward"
// @Success 200 {object} address.State
// @Router /regions/{level}/retry [post]
func (s *RestHandler) RetryRegion(w http.ResponseWriter, r *http.Request) {
	level, ok := levels[mux.Vars(r)["level"]]
	if !ok {
		writeError(w, errors.SetCustomErrorWithDetails(constant.ErrInvalidRequest, "level"))
		return
	}
	c := s.session(r).Cascade
	c.Retry(level)
	writeSuccess(w, c.State())
}

// GetCheckout handler
// @Summary Checkout form, steps and price summary
// @Tags Checkout
// @Produce json
// @Param X-Session-ID header string false "Storefront session"
// @Success 200 {object} model.CheckoutView
// @Router /checkout [get]
func (s *RestHandler) GetCheckout(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, s.session(r).Checkout.View())
}

// SetBuyerInfo handler
// @Summary Set buyer name, phone and email
// @Tags Checkout
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Storefront session"
// @Param request body model.BuyerInfoRequest true "Buyer"
// @Success 200 {object} model.CheckoutView
// @Router /checkout/buyer [put]
func (s *RestHandler) SetBuyerInfo(w http.ResponseWriter, r *http.Request) {
	var req model.BuyerInfoRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, s.session(r).Checkout.SetBuyerInfo(model.BuyerInfo{
		FullName: req.FullName,
		Phone:    req.Phone,
		Email:    req.Email,
	}))
}

// SetAddressDetail handler
// @Summary Set street address and delivery note
// @Tags Checkout
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Storefront session"
// @Param request body model.AddressDetailRequest true "Address detail"
// @Success 200 {object} model.CheckoutView
// @Router /checkout/address [put]
func (s *RestHandler) SetAddressDetail(w http.ResponseWriter, r *http.Request) {
	var req model.AddressDetailRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, s.session(r).Checkout.SetAddressDetail(req.Detail, req.Note))
}

// SelectPaymentMethod handler
// @Summary Choose the payment method
// @Tags Checkout
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Storefront session"
// @Param request body model.SelectCodeRequest true "Payment method code"
// @Success 200 {object} model.CheckoutView
// @Router /checkout/payment [put]
func (s *RestHandler) SelectPaymentMethod(w http.ResponseWriter, r *http.Request) {
	var req model.SelectCodeRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	methods, err := s.ProductApp.ListPaymentMethods(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	for _, m := range methods.PaymentMethods {
		if strings.EqualFold(m.Code, strings.TrimSpace(req.Code)) {
			writeSuccess(w, s.session(r).Checkout.SelectPaymentMethod(m.Code))
			return
		}
	}
	writeError(w, errors.SetCustomErrorWithDetails(constant.ErrInvalidRequest, "code"))
}

// SelectCarrier handler
// @Summary Choose the shipping carrier
// @Description The carrier fee replaces the default shipping fee.
// @Tags Checkout
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Storefront session"
// @Param request body model.SelectCodeRequest true "Carrier code"
// @Success 200 {object} model.CheckoutView
// @Router /checkout/carrier [put]
func (s *RestHandler) SelectCarrier(w http.ResponseWriter, r *http.Request) {
	var req model.SelectCodeRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	carriers, err := s.ProductApp.ListShippingCarriers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	for i := range carriers.ShippingCarriers {
		if strings.EqualFold(carriers.ShippingCarriers[i].Code, strings.TrimSpace(req.Code)) {
			writeSuccess(w, s.session(r).Checkout.SelectCarrier(&carriers.ShippingCarriers[i]))
			return
		}
	}
	writeError(w, errors.SetCustomErrorWithDetails(constant.ErrInvalidRequest, "code"))
}

// ApplyVoucher handler
// @Summary Apply a voucher by code
// @Description Rejected when the cart subtotal is below the voucher minimum or the voucher expired; the form is left unchanged.
// @Tags Checkout
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Storefront session"
// @Param request body model.ApplyVoucherRequest true "Voucher code"
// @Success 200 {object} model.CheckoutView
// @Failure 400 {object} ErrorResponse
// @Router /checkout/voucher [post]
func (s *RestHandler) ApplyVoucher(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.ApplyVoucherRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	v, err := s.ProductApp.FindVoucher(ctx, userID(ctx), req.Code)
	if err != nil {
		writeError(w, err)
		return
	}
	view, err := s.session(r).Checkout.ApplyVoucher(v)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, view)
}

// RemoveVoucher handler
// @Summary Remove the selected voucher
// @Tags Checkout
// @Produce json
// @Param X-Session-ID header string false "Storefront session"
// @Success 200 {object} model.CheckoutView
// @Router /checkout/voucher [delete]
func (s *RestHandler) RemoveVoucher(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, s.session(r).Checkout.RemoveVoucher())
}

// SetPoints handler
// @Summary Toggle reward point redemption
// @Description Points are clamped to the balance and the per-order cap.
// @Tags Checkout
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Storefront session"
// @Param request body model.RewardPointsRequest true "Points"
// @Success 200 {object} model.CheckoutView
// @Router /checkout/points [put]
func (s *RestHandler) SetPoints(w http.ResponseWriter, r *http.Request) {
	var req model.RewardPointsRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, s.session(r).Checkout.SetPoints(req.Use, req.Points))
}

// SubmitCheckout handler
// @Summary Place the order
// @Description Fails with the list of missing steps when the form is incomplete. On success the cart is emptied and both overlays close.
// @Tags Checkout
// @Produce json
// @Param X-Session-ID header string false "Storefront session"
// @Success 200 {object} model.SubmitResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /checkout/submit [post]
func (s *RestHandler) SubmitCheckout(w http.ResponseWriter, r *http.Request) {
	res, err := s.session(r).Checkout.Submit(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
