package transport

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/muhammadheryan/storefront/constant"
	utilsContext "github.com/muhammadheryan/storefront/utils/context"
)

// SessionMiddleware reads the storefront session id from X-Session-ID. A missing or
// malformed id starts a new session; the id in use is echoed back in the same header.
func SessionMiddleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(constant.SessionHeader)
			if _, err := uuid.Parse(id); err != nil {
				id = uuid.NewString()
			}
			w.Header().Set(constant.SessionHeader, id)
			next.ServeHTTP(w, r.WithContext(utilsContext.WithSessionID(r.Context(), id)))
		})
	}
}
