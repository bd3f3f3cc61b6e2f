package transport

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
	"github.com/muhammadheryan/storefront/utils/errors"
	"github.com/muhammadheryan/storefront/utils/logger"
	"go.uber.org/zap"
)

// GetCart handler
// @Summary Current cart
// @Tags Cart
// @Produce json
// @Param X-Session-ID header string false "Storefront session"
// @Success 200 {object} model.CartView
// @Router /cart [get]
func (s *RestHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, s.session(r).Cart.View())
}

// AddCartItem handler
// @Summary Add a product, or one more of it, to the cart
// @Description The line price is snapshotted from the variant at add time. The cart drawer opens.
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Storefront session"
// @Param request body model.AddCartItemRequest true "Item"
// @Success 200 {object} model.CartView
// @Failure 400 {object} ErrorResponse
// @Router /cart/items [post]
func (s *RestHandler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.AddCartItemRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	product, v, err := s.ProductApp.CartLine(ctx, req.ProductID, req.VariantID)
	if err != nil {
		writeError(w, err)
		return
	}

	view, err := s.session(r).Cart.Add(ctx, *product, v)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, view)
}

// UpdateCartItem handler
// @Summary Set the quantity of a cart line
// @Description Zero or less removes the line; larger values are clamped to stock.
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Storefront session"
// @Param itemId path string true "Cart line id"
// @Param request body model.UpdateCartItemRequest true "Quantity"
// @Success 200 {object} model.CartView
// @Failure 404 {object} ErrorResponse
// @Router /cart/items/{itemId} [patch]
func (s *RestHandler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateCartItemRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	view, err := s.session(r).Cart.SetQuantity(r.Context(), mux.Vars(r)["itemId"], *req.Quantity)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, view)
}

// RemoveCartItem handler
// @Summary Remove a cart line
// @Tags Cart
// @Produce json
// @Param X-Session-ID header string false "Storefront session"
// @Param itemId path string true "Cart line id"
// @Success 200 {object} model.CartView
// @Router /cart/items/{itemId} [delete]
func (s *RestHandler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, s.session(r).Cart.Remove(r.Context(), mux.Vars(r)["itemId"]))
}

// ClearCart handler
// @Summary Empty the cart
// @Tags Cart
// @Produce json
// @Param X-Session-ID header string false "Storefront session"
// @Success 200 {object} model.CartView
// @Router /cart [delete]
func (s *RestHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, s.session(r).Cart.Clear(r.Context()))
}

// SetOverlays handler
// @Summary Open or close the cart drawer and the checkout overlay
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Storefront session"
// @Param request body model.OverlayRequest true "Overlay flags"
// @Success 200 {object} model.CartView
// @Router /overlays [put]
func (s *RestHandler) SetOverlays(w http.ResponseWriter, r *http.Request) {
	var req model.OverlayRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, s.session(r).Cart.SetOverlays(req.Drawer, req.Checkout))
}

// CartEvents handler
// @Summary Stream cart changes
// @Description Server-sent events; every event carries the full cart view. Slow readers only get the latest view.
// @Tags Cart
// @Produce text/event-stream
// @Param X-Session-ID header string false "Storefront session"
// @Router /cart/events [get]
func (s *RestHandler) CartEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	updates, cancel := s.session(r).Cart.Subscribe()
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case view, ok := <-updates:
			if !ok {
				return
			}
			data, err := json.Marshal(view)
			if err != nil {
				logger.Error("[CartEvents] marshal cart view", zap.String("error", err.Error()))
				return
			}
			if _, err := fmt.Fprintf(w, "event: cart\ndata: %s\n\n", data); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
