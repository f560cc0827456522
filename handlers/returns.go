package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/tradepoint/returns.api/helpers"
	"github.com/tradepoint/returns.api/models"
	"github.com/tradepoint/returns.api/service"

	"gopkg.in/go-playground/validator.v9"
)

// HandleCreateReturnRequest opens a new return request against an order
func HandleCreateReturnRequest(w http.ResponseWriter, req *http.Request) {
	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	requestDecoder := json.NewDecoder(req.Body)
	var incomingReturnRequest models.IncomingReturnRequest
	err := requestDecoder.Decode(&incomingReturnRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err = validator.New().Struct(incomingReturnRequest); err != nil {
		log.ErrorR(req, fmt.Errorf("invalid POST request to create return request: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	requesterDetails, ok := req.Context().Value(helpers.ContextKeyRequesterDetails).(models.RequesterDetails)
	if !ok {
		log.ErrorR(req, fmt.Errorf("invalid RequesterDetails in request context"))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	returnResource, responseType, err := returnService.CreateReturnRequest(req, requesterDetails, incomingReturnRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error creating return request: [%v]", err))
		switch responseType {
		case service.InvalidData, service.WindowExpired, service.QuantityLimitExceeded:
			w.WriteHeader(http.StatusBadRequest)
		case service.Forbidden:
			w.WriteHeader(http.StatusForbidden)
		case service.NotFound:
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	err = json.NewEncoder(w).Encode(returnResource)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error writing response: %v", err))
		return
	}

	log.InfoR(req, "Successful POST request for new return request", log.Data{"return_reference": returnResource.Reference, "status": http.StatusCreated})
}

// HandleGetReturnRequest returns the return request loaded from request context
func HandleGetReturnRequest(w http.ResponseWriter, req *http.Request) {

	// get return request from context, put there by ReturnAuthenticationInterceptor
	returnResource, ok := req.Context().Value(helpers.ContextKeyReturnRequest).(*models.ReturnRequestResourceRest)
	if !ok {
		log.ErrorR(req, fmt.Errorf("invalid ReturnRequestResourceRest in request context"))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	err := json.NewEncoder(w).Encode(returnResource)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error writing response: %v", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	log.InfoR(req, "Successful GET request for return request", log.Data{"return_reference": returnResource.Reference})
}

// HandleListReturnRequests lists the return requests the requester may see
func HandleListReturnRequests(w http.ResponseWriter, req *http.Request) {
	requesterDetails, ok := req.Context().Value(helpers.ContextKeyRequesterDetails).(models.RequesterDetails)
	if !ok {
		log.ErrorR(req, fmt.Errorf("invalid RequesterDetails in request context"))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	filters := service.ListFilters{
		Status:  req.URL.Query().Get("status"),
		OrderID: req.URL.Query().Get("order_id"),
	}

	list, responseType, err := returnService.ListReturnRequests(req, requesterDetails, filters)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error listing return requests: [%v]", err))
		switch responseType {
		case service.InvalidData:
			w.WriteHeader(http.StatusBadRequest)
		case service.Forbidden:
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")

	err = json.NewEncoder(w).Encode(list)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error writing response: %v", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	log.InfoR(req, "Successful GET request for return request listing", log.Data{"total": list.Total})
}

// HandleUpdateReturnRequest applies staff changes to a return request and its items
func HandleUpdateReturnRequest(w http.ResponseWriter, req *http.Request) {
	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	requestDecoder := json.NewDecoder(req.Body)
	var incomingReturnUpdate models.IncomingReturnUpdate
	err := requestDecoder.Decode(&incomingReturnUpdate)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err = validator.New().Struct(incomingReturnUpdate); err != nil {
		log.ErrorR(req, fmt.Errorf("invalid PATCH request to update return request: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	requesterDetails, ok := req.Context().Value(helpers.ContextKeyRequesterDetails).(models.RequesterDetails)
	if !ok {
		log.ErrorR(req, fmt.Errorf("invalid RequesterDetails in request context"))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// the addressed return request was loaded and authorised by ReturnAuthenticationInterceptor
	returnResource, ok := req.Context().Value(helpers.ContextKeyReturnRequest).(*models.ReturnRequestResourceRest)
	if !ok {
		log.ErrorR(req, fmt.Errorf("invalid ReturnRequestResourceRest in request context"))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	updatedResource, responseType, err := returnService.UpdateReturnRequest(req, returnResource.MetaData.ID, requesterDetails, incomingReturnUpdate)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error updating return request: [%v]", err))
		switch responseType {
		case service.InvalidData:
			w.WriteHeader(http.StatusBadRequest)
		case service.Forbidden:
			w.WriteHeader(http.StatusForbidden)
		case service.NotFound:
			w.WriteHeader(http.StatusNotFound)
		case service.InvalidState:
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")

	err = json.NewEncoder(w).Encode(updatedResource)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error writing response: %v", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	log.InfoR(req, "Successful PATCH request for return request", log.Data{"return_reference": updatedResource.Reference, "return_status": updatedResource.Status})
}
