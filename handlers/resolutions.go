package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/tradepoint/returns.api/helpers"
	"github.com/tradepoint/returns.api/models"
	"github.com/tradepoint/returns.api/service"
	"github.com/tradepoint/returns.api/utils"

	"gopkg.in/go-playground/validator.v9"
)

// HandleCreateResolution resolves a return request with a single refund,
// replacement, store credit or exchange action
func HandleCreateResolution(w http.ResponseWriter, req *http.Request) {
	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	requestDecoder := json.NewDecoder(req.Body)
	var incomingResolutionRequest models.IncomingResolutionRequest
	err := requestDecoder.Decode(&incomingResolutionRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err = validator.New().Struct(incomingResolutionRequest); err != nil {
		log.ErrorR(req, fmt.Errorf("invalid POST request to resolve return request: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	requesterDetails, ok := req.Context().Value(helpers.ContextKeyRequesterDetails).(models.RequesterDetails)
	if !ok {
		log.ErrorR(req, fmt.Errorf("invalid RequesterDetails in request context"))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	returnResource, ok := req.Context().Value(helpers.ContextKeyReturnRequest).(*models.ReturnRequestResourceRest)
	if !ok {
		log.ErrorR(req, fmt.Errorf("invalid ReturnRequestResourceRest in request context"))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	resolvedResource, responseType, err := resolutionService.ResolveReturnRequest(req, returnResource.MetaData.ID, requesterDetails, incomingResolutionRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error resolving return request: [%v]", err))
		switch responseType {
		case service.InvalidData:
			w.WriteHeader(http.StatusBadRequest)
		case service.Forbidden:
			w.WriteHeader(http.StatusForbidden)
		case service.NotFound:
			w.WriteHeader(http.StatusNotFound)
		case service.InvalidState:
			m := utils.NewMessageResponse("return request cannot be resolved in its current state")
			utils.WriteJSONWithStatus(w, req, m, http.StatusConflict)
		case service.AlreadyResolved:
			m := utils.NewMessageResponse("return request already has an active or completed resolution")
			utils.WriteJSONWithStatus(w, req, m, http.StatusConflict)
		case service.ExternalFailure:
			m := utils.NewMessageResponse("error processing resolution with the external provider")
			utils.WriteJSONWithStatus(w, req, m, http.StatusBadGateway)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	err = json.NewEncoder(w).Encode(resolvedResource)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error writing response: %v", err))
		return
	}

	log.InfoR(req, "Successful POST request to resolve return request", log.Data{"return_reference": resolvedResource.Reference, "resolution_type": incomingResolutionRequest.Type})
}
