package interceptors

import (
	"context"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
	"github.com/tradepoint/returns.api/helpers"
	"github.com/tradepoint/returns.api/models"
	"github.com/tradepoint/returns.api/service"
)

// ReturnAuthenticationInterceptor contains the return service used in the interceptor
type ReturnAuthenticationInterceptor struct {
	Service service.ReturnService
	Access  service.AccessPolicy
}

// ReturnAuthenticationIntercept loads the return request addressed by the URL
// and checks the authenticated requester is allowed to see it. The loaded
// resource is stored in the request context for the handler.
func (interceptor ReturnAuthenticationInterceptor) ReturnAuthenticationIntercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		id := vars["return_id"]
		if id == "" {
			log.ErrorR(r, fmt.Errorf("ReturnAuthenticationInterceptor error: no return id"))
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		// Requester details are put into context by UserAuthenticationInterceptor
		requesterDetails, ok := r.Context().Value(helpers.ContextKeyRequesterDetails).(models.RequesterDetails)
		if !ok {
			log.ErrorR(r, fmt.Errorf("ReturnAuthenticationInterceptor error: invalid RequesterDetails from UserAuthenticationInterceptor"))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		returnResource, responseType, err := interceptor.Service.GetReturnRequest(r, id)
		if err != nil {
			log.ErrorR(r, fmt.Errorf("ReturnAuthenticationInterceptor error when retrieving return request: [%v]", err), log.Data{"service_response_type": responseType.String()})
			if responseType == service.NotFound {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		if responseType != service.Success {
			log.ErrorR(r, fmt.Errorf("ReturnAuthenticationInterceptor error when retrieving return request. Status: [%s]", responseType.String()))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		debugMap := log.Data{
			"return_id":      id,
			"requester_role": requesterDetails.Role,
			"request_method": r.Method,
		}

		if !interceptor.Access.CanView(requesterDetails, returnResource) {
			log.InfoR(r, "ReturnAuthenticationInterceptor not authorised to view return request", debugMap)
			w.WriteHeader(http.StatusForbidden)
			return
		}

		log.InfoR(r, "ReturnAuthenticationInterceptor authorised", debugMap)

		ctx := context.WithValue(r.Context(), helpers.ContextKeyReturnRequest, returnResource)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
