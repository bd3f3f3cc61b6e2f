package transport

import (
	"net/http"

	"github.com/muhammadheryan/storefront/model"
)

// ListProducts handler
// @Summary List products
// @Tags Catalog
// @Produce json
// @Param category query string false "Category"
// @Param brand query string false "Brand"
// @Param sort query string false "Sort order"
// @Param limit query int false "Max products (default 20, max 100)"
// @Success 200 {object} model.ProductListResponse
// @Failure 502 {object} ErrorResponse
// @Router /products [get]
func (s *RestHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		writeError(w, err)
		return
	}
	q := r.URL.Query()
	res, err := s.ProductApp.ListProducts(r.Context(), &model.ProductFilter{
		Category: q.Get("category"),
		Brand:    q.Get("brand"),
		Sort:     q.Get("sort"),
		Limit:    limit,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetProduct handler
// @Summary Product detail with its default variant
// @Tags Catalog
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} model.ProductDetailResponse
// @Failure 400 {object} ErrorResponse
// @Router /products/{id} [get]
func (s *RestHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathUint(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := s.ProductApp.GetProduct(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// SelectVariant handler
// @Summary Move the variant selection along one dimension
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body model.SelectVariantRequest true "Selection"
// @Success 200 {object} model.ProductDetailResponse
// @Router /products/{id}/variant [post]
func (s *RestHandler) SelectVariant(w http.ResponseWriter, r *http.Request) {
	id, err := pathUint(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req model.SelectVariantRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	res, err := s.ProductApp.SelectVariant(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ResolveVariant handler
// @Summary Resolve the variant matching every given attribute
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body model.VariantSelection true "Attributes"
// @Success 200 {object} model.ProductDetailResponse
// @Failure 404 {object} ErrorResponse
// @Router /products/{id}/variant/resolve [post]
func (s *RestHandler) ResolveVariant(w http.ResponseWriter, r *http.Request) {
	id, err := pathUint(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var sel model.VariantSelection
	if err := decode(r, &sel); err != nil {
		writeError(w, err)
		return
	}
	res, err := s.ProductApp.ResolveVariant(r.Context(), id, sel)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListVouchers handler
// @Summary Vouchers available to the caller
// @Tags Catalog
// @Produce json
// @Success 200 {object} model.VoucherListResponse
// @Router /vouchers [get]
func (s *RestHandler) ListVouchers(w http.ResponseWriter, r *http.Request) {
	res, err := s.ProductApp.ListVouchers(r.Context(), userID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListPaymentMethods handler
// @Summary Payment methods
// @Tags Catalog
// @Produce json
// @Success 200 {object} model.PaymentMethodListResponse
// @Router /payment-methods [get]
func (s *RestHandler) ListPaymentMethods(w http.ResponseWriter, r *http.Request) {
	res, err := s.ProductApp.ListPaymentMethods(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListShippingCarriers handler
// @Summary Shipping carriers
// @Tags Catalog
// @Produce json
// @Success 200 {object} model.ShippingCarrierListResponse
// @Router /shipping-carriers [get]
func (s *RestHandler) ListShippingCarriers(w http.ResponseWriter, r *http.Request) {
	res, err := s.ProductApp.ListShippingCarriers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
