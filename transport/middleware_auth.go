package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/storefront/application/user"
	"github.com/muhammadheryan/storefront/constant"
	utilsContext "github.com/muhammadheryan/storefront/utils/context"
	"github.com/muhammadheryan/storefront/utils/errors"
	"github.com/muhammadheryan/storefront/utils/logger"
	"go.uber.org/zap"
)

// AuthMiddleware validates the bearer token and stores the profile in the context.
// With required unset, requests without a token pass through as guests; a token
// that is present must still be valid.
func AuthMiddleware(userApp user.UserApp, required bool) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				if required {
					writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
					return
				}
				next.ServeHTTP(w, r)
				return
			}
			if !strings.HasPrefix(auth, "Bearer ") {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			profile, err := userApp.ValidateToken(r.Context(), strings.TrimPrefix(auth, "Bearer "))
			if err != nil {
				logger.Info("[AuthMiddleware] token rejected", zap.String("error", err.Error()))
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			ctx := utilsContext.WithProfile(r.Context(), profile)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminMiddleware lets through only profiles with the admin role. It runs after
// a required AuthMiddleware.
func AdminMiddleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p := utilsContext.GetProfile(r.Context())
			if p == nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			if p.Role != constant.RoleAdmin {
				writeError(w, errors.SetCustomError(constant.ErrForbidden))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
