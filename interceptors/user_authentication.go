package interceptors

import (
	"context"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/tradepoint/returns.api/helpers"
	"github.com/tradepoint/returns.api/models"
)

// UserAuthenticationInterceptor checks that the platform gateway identified
// the caller and that the role is one this service understands
func UserAuthenticationInterceptor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Check headers for identity and role
		identity := helpers.GetAuthorisedIdentity(r)
		if identity == "" {
			log.Error(fmt.Errorf("authentication interceptor unauthorised: no authorised identity"))
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		role := helpers.GetAuthorisedRole(r)
		if role == "" {
			log.Error(fmt.Errorf("authentication interceptor unauthorised: no authorised role"))
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		if !helpers.IsRecognisedRole(role) {
			log.Error(fmt.Errorf("authentication interceptor unauthorised: role [%s] not recognised", role))
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		requesterDetails := models.RequesterDetails{
			ID:       identity,
			Role:     role,
			Products: helpers.GetAuthorisedProducts(r),
		}

		ctx := context.WithValue(r.Context(), helpers.ContextKeyRequesterDetails, requesterDetails)

		// Call the next handler
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
