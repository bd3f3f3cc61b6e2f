package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	adminapp "github.com/muhammadheryan/storefront/application/admin"
	productapp "github.com/muhammadheryan/storefront/application/product"
	"github.com/muhammadheryan/storefront/application/session"
	userapp "github.com/muhammadheryan/storefront/application/user"
	"github.com/muhammadheryan/storefront/constant"
	utilsContext "github.com/muhammadheryan/storefront/utils/context"
	"github.com/muhammadheryan/storefront/utils/errors"
	"github.com/muhammadheryan/storefront/utils/metrics"
	validatorx "github.com/muhammadheryan/storefront/utils/validator"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Sessions hands out the storefront state of a session id.
type Sessions interface {
	Get(ctx context.Context, id string) *session.Session
}

type RestHandler struct {
	ProductApp productapp.ProductApp
	UserApp    userapp.UserApp
	AdminApp   adminapp.AdminOrderApp
	Sessions   Sessions
}

type Options struct {
	InternalAPIKey string
}

func NewTransport(productApp productapp.ProductApp, userApp userapp.UserApp, adminApp adminapp.AdminOrderApp, sessions Sessions, opts Options) http.Handler {
	router := mux.NewRouter()

	rh := &RestHandler{
		ProductApp: productApp,
		UserApp:    userApp,
		AdminApp:   adminApp,
		Sessions:   sessions,
	}

	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	router.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	// internal routes, called by the draft expiration consumer
	internal := router.PathPrefix("/internal/v1").Subrouter()
	internal.HandleFunc("/admin/drafts/{id}/expire", rh.ExpireDraft).Methods(http.MethodPost)
	internal.Use(InternalMiddleware(opts.InternalAPIKey))

	// admin routes
	admin := router.PathPrefix("/admin").Subrouter()
	admin.HandleFunc("/orders", rh.AdminListOrders).Methods(http.MethodGet)
	admin.HandleFunc("/orders/{id}", rh.AdminGetOrder).Methods(http.MethodGet)
	admin.HandleFunc("/orders/{id}", rh.AdminDeleteOrder).Methods(http.MethodDelete)
	admin.HandleFunc("/drafts", rh.CreateDraft).Methods(http.MethodPost)
	admin.HandleFunc("/drafts/{id}", rh.GetDraft).Methods(http.MethodGet)
	admin.HandleFunc("/drafts/{id}/items", rh.AddDraftItem).Methods(http.MethodPost)
	admin.HandleFunc("/drafts/{id}/items/{sku}", rh.EditDraftItem).Methods(http.MethodPut)
	admin.HandleFunc("/drafts/{id}/items/{sku}", rh.RemoveDraftItem).Methods(http.MethodDelete)
	admin.HandleFunc("/drafts/{id}/buyer", rh.SetDraftBuyer).Methods(http.MethodPut)
	admin.HandleFunc("/drafts/{id}/shipping", rh.SetDraftShipping).Methods(http.MethodPut)
	admin.HandleFunc("/drafts/{id}/payment", rh.SetDraftPayment).Methods(http.MethodPut)
	admin.HandleFunc("/drafts/{id}/voucher", rh.ApplyDraftVoucher).Methods(http.MethodPost)
	admin.HandleFunc("/drafts/{id}/voucher", rh.RemoveDraftVoucher).Methods(http.MethodDelete)
	admin.HandleFunc("/drafts/{id}/points", rh.SetDraftPoints).Methods(http.MethodPut)
	admin.HandleFunc("/drafts/{id}/submit", rh.SubmitDraft).Methods(http.MethodPost)
	admin.Use(AuthMiddleware(userApp, true))
	admin.Use(AdminMiddleware())

	// storefront routes
	store := router.NewRoute().Subrouter()
	store.HandleFunc("/products", rh.ListProducts).Methods(http.MethodGet)
	store.HandleFunc("/products/{id}", rh.GetProduct).Methods(http.MethodGet)
	store.HandleFunc("/products/{id}/variant", rh.SelectVariant).Methods(http.MethodPost)
	store.HandleFunc("/products/{id}/variant/resolve", rh.ResolveVariant).Methods(http.MethodPost)
	store.HandleFunc("/vouchers", rh.ListVouchers).Methods(http.MethodGet)
	store.HandleFunc("/payment-methods", rh.ListPaymentMethods).Methods(http.MethodGet)
	store.HandleFunc("/shipping-carriers", rh.ListShippingCarriers).Methods(http.MethodGet)

	store.HandleFunc("/cart", rh.GetCart).Methods(http.MethodGet)
	store.HandleFunc("/cart", rh.ClearCart).Methods(http.MethodDelete)
	store.HandleFunc("/cart/items", rh.AddCartItem).Methods(http.MethodPost)
	store.HandleFunc("/cart/items/{itemId}", rh.UpdateCartItem).Methods(http.MethodPatch)
	store.HandleFunc("/cart/items/{itemId}", rh.RemoveCartItem).Methods(http.MethodDelete)
	store.HandleFunc("/cart/events", rh.CartEvents).Methods(http.MethodGet)
	store.HandleFunc("/overlays", rh.SetOverlays).Methods(http.MethodPut)

	store.HandleFunc("/regions", rh.GetRegions).Methods(http.MethodGet)
	store.HandleFunc("/regions/{level}", rh.SelectRegion).Methods(http.MethodPut)
	store.HandleFunc("/regions/{level}/retry", rh.RetryRegion).Methods(http.MethodPost)

	store.HandleFunc("/checkout", rh.GetCheckout).Methods(http.MethodGet)
	store.HandleFunc("/checkout/buyer", rh.SetBuyerInfo).Methods(http.MethodPut)
	store.HandleFunc("/checkout/address", rh.SetAddressDetail).Methods(http.MethodPut)
	store.HandleFunc("/checkout/payment", rh.SelectPaymentMethod).Methods(http.MethodPut)
	store.HandleFunc("/checkout/carrier", rh.SelectCarrier).Methods(http.MethodPut)
	store.HandleFunc("/checkout/voucher", rh.ApplyVoucher).Methods(http.MethodPost)
	store.HandleFunc("/checkout/voucher", rh.RemoveVoucher).Methods(http.MethodDelete)
	store.HandleFunc("/checkout/points", rh.SetPoints).Methods(http.MethodPut)
	store.HandleFunc("/checkout/submit", rh.SubmitCheckout).Methods(http.MethodPost)
	store.Use(AuthMiddleware(userApp, false))
	store.Use(SessionMiddleware())

	// middleware
	router.Use(LoggingMiddleware())
	router.Use(metrics.Middleware())

	return router
}

// session returns the caller's storefront session with the signed-in profile bound
// to its checkout.
func (s *RestHandler) session(r *http.Request) *session.Session {
	ctx := r.Context()
	sess := s.Sessions.Get(ctx, utilsContext.GetSessionID(ctx))
	sess.Checkout.SetProfile(utilsContext.GetProfile(ctx))
	return sess
}

// decode reads a JSON body into req and validates it.
func decode(r *http.Request, req interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		return errors.SetCustomErrorWithDetails(constant.ErrInvalidRequest, "malformed body")
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		return errors.SetCustomErrorWithDetails(constant.ErrInvalidRequest, validatorx.Fields(err)...)
	}
	return nil
}

func pathUint(r *http.Request, name string) (uint64, error) {
	v, err := strconv.ParseUint(mux.Vars(r)[name], 10, 64)
	if err != nil || v == 0 {
		return 0, errors.SetCustomErrorWithDetails(constant.ErrInvalidRequest, name)
	}
	return v, nil
}

func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, errors.SetCustomErrorWithDetails(constant.ErrInvalidRequest, name)
	}
	return v, nil
}

func userID(ctx context.Context) uint64 {
	id, _ := utilsContext.GetUserID(ctx)
	return id
}
