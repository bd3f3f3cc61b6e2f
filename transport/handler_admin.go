package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/storefront/model"
)

// AdminListOrders handler
// @Summary List orders
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Order status"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 20, max 100)"
// @Success 200 {object} model.AdminOrderListResponse
// @Failure 403 {object} ErrorResponse
// @Router /admin/orders [get]
func (s *RestHandler) AdminListOrders(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page")
	if err != nil {
		writeError(w, err)
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AdminApp.ListOrders(r.Context(), &model.AdminOrderFilter{
		Status: r.URL.Query().Get("status"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// AdminGetOrder handler
// @Summary Order detail
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} model.AdminOrder
// @Router /admin/orders/{id} [get]
func (s *RestHandler) AdminGetOrder(w http.ResponseWriter, r *http.Request) {
	res, err := s.AdminApp.GetOrder(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// AdminDeleteOrder handler
// @Summary Delete an order
// @Tags Admin
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 204
// @Router /admin/orders/{id} [delete]
func (s *RestHandler) AdminDeleteOrder(w http.ResponseWriter, r *http.Request) {
	if err := s.AdminApp.DeleteOrder(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeNoContent(w)
}

// CreateDraft handler
// @Summary Open an order draft
// @Description With order_id the draft is prefilled from that order and submitting it edits the order.
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateDraftRequest false "Draft"
// @Success 200 {object} model.DraftView
// @Router /admin/drafts [post]
func (s *RestHandler) CreateDraft(w http.ResponseWriter, r *http.Request) {
	var req model.CreateDraftRequest
	// an empty body opens a blank draft
	if r.ContentLength != 0 {
		if err := decode(r, &req); err != nil {
			writeError(w, err)
			return
		}
	}
	s.writeDraft(w)(s.AdminApp.CreateDraft(r.Context(), &req))
}

// GetDraft handler
// @Summary Draft with summary and missing steps
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Success 200 {object} model.DraftView
// @Failure 404 {object} ErrorResponse
// @Router /admin/drafts/{id} [get]
func (s *RestHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	s.writeDraft(w)(s.AdminApp.GetDraft(r.Context(), mux.Vars(r)["id"]))
}

// AddDraftItem handler
// @Summary Add a line, merging quantity into an existing line with the same SKU
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Param request body model.AdminLineItem true "Line"
// @Success 200 {object} model.DraftView
// @Failure 400 {object} ErrorResponse
// @Router /admin/drafts/{id}/items [post]
func (s *RestHandler) AddDraftItem(w http.ResponseWriter, r *http.Request) {
	var req model.AdminLineItem
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	s.writeDraft(w)(s.AdminApp.AddItem(r.Context(), mux.Vars(r)["id"], &req))
}

// EditDraftItem handler
// @Summary Change quantity and price of a line
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Param sku path string true "SKU"
// @Param request body model.EditLineItemRequest true "Line values"
// @Success 200 {object} model.DraftView
// @Router /admin/drafts/{id}/items/{sku} [put]
func (s *RestHandler) EditDraftItem(w http.ResponseWriter, r *http.Request) {
	var req model.EditLineItemRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	vars := mux.Vars(r)
	s.writeDraft(w)(s.AdminApp.EditItem(r.Context(), vars["id"], vars["sku"], &req))
}

// RemoveDraftItem handler
// @Summary Remove a line
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Param sku path string true "SKU"
// @Success 200 {object} model.DraftView
// @Router /admin/drafts/{id}/items/{sku} [delete]
func (s *RestHandler) RemoveDraftItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	s.writeDraft(w)(s.AdminApp.RemoveItem(r.Context(), vars["id"], vars["sku"]))
}

// SetDraftBuyer handler
// @Summary Set buyer
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Param request body model.BuyerInfoRequest true "Buyer"
// @Success 200 {object} model.DraftView
// @Router /admin/drafts/{id}/buyer [put]
func (s *RestHandler) SetDraftBuyer(w http.ResponseWriter, r *http.Request) {
	var req model.BuyerInfoRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	s.writeDraft(w)(s.AdminApp.SetBuyer(r.Context(), mux.Vars(r)["id"], &req))
}

// SetDraftShipping handler
// @Summary Set shipping address by region codes
// @Description Each code must belong to its parent region.
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Param request body model.DraftShippingRequest true "Shipping"
// @Success 200 {object} model.DraftView
// @Failure 400 {object} ErrorResponse
// @Router /admin/drafts/{id}/shipping [put]
func (s *RestHandler) SetDraftShipping(w http.ResponseWriter, r *http.Request) {
	var req model.DraftShippingRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	s.writeDraft(w)(s.AdminApp.SetShipping(r.Context(), mux.Vars(r)["id"], &req))
}

// SetDraftPayment handler
// @Summary Set payment method
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Param request body model.SelectCodeRequest true "Payment method code"
// @Success 200 {object} model.DraftView
// @Router /admin/drafts/{id}/payment [put]
func (s *RestHandler) SetDraftPayment(w http.ResponseWriter, r *http.Request) {
	var req model.SelectCodeRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	s.writeDraft(w)(s.AdminApp.SetPaymentMethod(r.Context(), mux.Vars(r)["id"], req.Code))
}

// ApplyDraftVoucher handler
// @Summary Apply a voucher to the draft
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Param request body model.ApplyVoucherRequest true "Voucher code"
// @Success 200 {object} model.DraftView
// @Failure 400 {object} ErrorResponse
// @Router /admin/drafts/{id}/voucher [post]
func (s *RestHandler) ApplyDraftVoucher(w http.ResponseWriter, r *http.Request) {
	var req model.ApplyVoucherRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	s.writeDraft(w)(s.AdminApp.ApplyVoucher(r.Context(), mux.Vars(r)["id"], req.Code))
}

// RemoveDraftVoucher handler
// @Summary Remove the draft voucher
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Success 200 {object} model.DraftView
// @Router /admin/drafts/{id}/voucher [delete]
func (s *RestHandler) RemoveDraftVoucher(w http.ResponseWriter, r *http.Request) {
	s.writeDraft(w)(s.AdminApp.RemoveVoucher(r.Context(), mux.Vars(r)["id"]))
}

// SetDraftPoints handler
// @Summary Set reward points balance and redemption
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Param request body model.DraftPointsRequest true "Points"
// @Success 200 {object} model.DraftView
// @Router /admin/drafts/{id}/points [put]
func (s *RestHandler) SetDraftPoints(w http.ResponseWriter, r *http.Request) {
	var req model.DraftPointsRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	s.writeDraft(w)(s.AdminApp.SetPoints(r.Context(), mux.Vars(r)["id"], &req))
}

// SubmitDraft handler
// @Summary Submit the draft as a new order, or as an edit of its source order
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Success 200 {object} model.AdminOrder
// @Failure 400 {object} ErrorResponse
// @Router /admin/drafts/{id}/submit [post]
func (s *RestHandler) SubmitDraft(w http.ResponseWriter, r *http.Request) {
	res, err := s.AdminApp.SubmitDraft(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ExpireDraft handler
// @Summary Expire a draft whose deadline passed
// @Tags Internal
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Success 204
// @Router /internal/v1/admin/drafts/{id}/expire [post]
func (s *RestHandler) ExpireDraft(w http.ResponseWriter, r *http.Request) {
	if err := s.AdminApp.ExpireDraft(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeNoContent(w)
}

func (s *RestHandler) writeDraft(w http.ResponseWriter) func(*model.DraftView, error) {
	return func(v *model.DraftView, err error) {
		if err != nil {
			writeError(w, err)
			return
		}
		writeSuccess(w, v)
	}
}
