package service

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/shopspring/decimal"
	"github.com/tradepoint/returns.api/config"
	"github.com/tradepoint/returns.api/dao"
	"github.com/tradepoint/returns.api/models"
	"github.com/tradepoint/returns.api/utils"
)

// OrderStatusPending is the status a freshly created replacement order carries
const OrderStatusPending = "pending"

// ResolutionService executes exactly one resolution per return request
type ResolutionService struct {
	DAO            dao.DAO
	PaymentService PaymentProviderService
	CreditService  CreditService
	Notifications  NotificationService
	Access         AccessPolicy
	Config         config.Config
}

// ResolveReturnRequest performs the single type-specific resolution action
// together with the request's transition to completed as one transactional
// unit. A failed attempt leaves a failed resolution record behind for retry
// and nothing else.
func (service *ResolutionService) ResolveReturnRequest(req *http.Request, id string, requester models.RequesterDetails, incoming models.IncomingResolutionRequest) (*models.ReturnRequestResourceRest, ResponseType, error) {

	if !service.Access.CanMutate(requester) {
		return nil, Forbidden, fmt.Errorf("role [%s] may not resolve return requests", requester.Role)
	}

	returnRequest, err := service.DAO.GetReturnRequest(id)
	if err != nil {
		return nil, Error, fmt.Errorf("error getting return request resource from db: [%v]", err)
	}
	if returnRequest == nil {
		return nil, NotFound, fmt.Errorf("return request not found. id: %s", id)
	}

	if returnRequest.Resolution != nil && returnRequest.Resolution.Status != models.ResolutionStatusFailed.String() {
		return nil, AlreadyResolved, fmt.Errorf("return request [%s] already has a %s resolution", id, returnRequest.Resolution.Status)
	}

	if !models.IsResolvableReturnStatus(returnRequest.Status) {
		return nil, InvalidState, fmt.Errorf("return request [%s] cannot be resolved in status %s", id, returnRequest.Status)
	}

	if !models.IsValidResolutionType(incoming.Type) {
		return nil, InvalidData, fmt.Errorf("resolution type [%s] not recognised", incoming.Type)
	}

	if responseType, err := validateResolutionInput(incoming); err != nil {
		return nil, responseType, err
	}

	// a retry after a failed attempt updates the existing record rather than
	// creating a second one
	resolutionID := generateID()
	if returnRequest.Resolution != nil {
		resolutionID = returnRequest.Resolution.ID
	}

	now := time.Now().Truncate(time.Millisecond)

	etag, err := utils.GenerateEtag()
	if err != nil {
		return nil, Error, fmt.Errorf("error generating etag: [%v]", err)
	}

	// the record is created pending; the provider action runs synchronously in
	// this call, so the next persisted status is completed or failed
	resolution := models.ReturnResolutionDB{
		ID:         resolutionID,
		Type:       incoming.Type,
		Status:     models.ResolutionStatusPending.String(),
		ResolvedBy: requester.ID,
		ResolvedAt: now,
		Notes:      incoming.Notes,
	}

	// claiming the resolution slot is conditional on no other non-failed
	// resolution existing, so concurrent resolve calls surface here as
	// already-resolved rather than racing
	err = service.DAO.PatchResolution(id, &resolution)
	if err != nil {
		if errors.Is(err, dao.ErrResolutionConflict) {
			return nil, AlreadyResolved, fmt.Errorf("return request [%s] already has an active resolution", id)
		}
		return nil, Error, fmt.Errorf("error writing resolution to database: [%v]", err)
	}

	replacementOrder, responseType, err := service.executeResolution(req, returnRequest, &resolution, incoming, now)
	if err != nil {
		service.markResolutionFailed(req, id, &resolution)
		return nil, responseType, err
	}

	resolution.Status = models.ResolutionStatusCompleted.String()

	err = service.DAO.CompleteResolution(id, &resolution, replacementOrder, etag)
	if err != nil {
		if errors.Is(err, dao.ErrResolutionConflict) {
			return nil, AlreadyResolved, fmt.Errorf("return request [%s] resolution was completed concurrently", id)
		}
		service.markResolutionFailed(req, id, &resolution)
		return nil, Error, fmt.Errorf("error completing resolution on database: [%v]", err)
	}

	notify(req, service.Notifications, returnRequest.CustomerID, NotificationCategoryReturnResolved,
		"Return request resolved",
		fmt.Sprintf("Your return request %s has been resolved with a %s", returnRequest.Reference, incoming.Type),
		map[string]string{"return_reference": returnRequest.Reference, "resolution_type": incoming.Type})

	returnService := ReturnService{DAO: service.DAO, Config: service.Config}
	return returnService.GetReturnRequest(req, id)
}

// executeResolution performs the type-specific action. For replacements it
// returns the order document to be inserted in the completing transaction.
func (service *ResolutionService) executeResolution(req *http.Request, returnRequest *models.ReturnRequestResourceDB, resolution *models.ReturnResolutionDB, incoming models.IncomingResolutionRequest, now time.Time) (*models.OrderResourceDB, ResponseType, error) {

	switch incoming.Type {
	case models.Refund.String():
		responseType, err := service.executeRefund(req, returnRequest, resolution, incoming.RefundAmount)
		return nil, responseType, err

	case models.Replacement.String():
		return service.buildReplacementOrder(returnRequest, resolution, incoming.ReplacementItems, now)

	case models.StoreCredit.String():
		credit, responseType, err := service.CreditService.IssueCredit(returnRequest.CustomerID, service.Config.StoreCreditAmount)
		if err != nil {
			return nil, responseType, fmt.Errorf("error issuing store credit: [%v]", err)
		}
		resolution.CreditCode = credit.Code
		resolution.CreditAmount = credit.Amount
		return nil, Success, nil

	case models.Exchange.String():
		// further exchange fulfilment happens outside this service
		resolution.ExchangeNotes = incoming.Notes
		return nil, Success, nil
	}

	return nil, InvalidData, fmt.Errorf("resolution type [%s] not recognised", incoming.Type)
}

func (service *ResolutionService) executeRefund(req *http.Request, returnRequest *models.ReturnRequestResourceDB, resolution *models.ReturnResolutionDB, amount string) (ResponseType, error) {
	order, err := service.DAO.GetOrder(returnRequest.OrderID)
	if err != nil {
		return Error, fmt.Errorf("error getting order resource: [%v]", err)
	}
	if order == nil {
		return NotFound, fmt.Errorf("order not found. id: %s", returnRequest.OrderID)
	}

	refund, _, err := service.PaymentService.RefundPayment(order.PaymentCaptureID, amount)
	if err != nil {
		return ExternalFailure, fmt.Errorf("error refunding payment with provider: [%v]", err)
	}

	if refund.Status != models.RefundStatusSucceeded {
		return ExternalFailure, fmt.Errorf("payment provider reported refund failure: [%s]", refund.FailureReason)
	}

	resolution.RefundAmount = amount
	resolution.RefundTransactionID = refund.TransactionID

	return Success, nil
}

// buildReplacementOrder creates a fresh pre-paid order document from the
// supplied replacement lines, copying the shipping address from the original
// order. The original order is never mutated.
func (service *ResolutionService) buildReplacementOrder(returnRequest *models.ReturnRequestResourceDB, resolution *models.ReturnResolutionDB, replacementItems []models.IncomingReplacementItem, now time.Time) (*models.OrderResourceDB, ResponseType, error) {
	order, err := service.DAO.GetOrder(returnRequest.OrderID)
	if err != nil {
		return nil, Error, fmt.Errorf("error getting order resource: [%v]", err)
	}
	if order == nil {
		return nil, NotFound, fmt.Errorf("order not found. id: %s", returnRequest.OrderID)
	}

	var totalAmount decimal.Decimal
	lines := make([]models.OrderLineDB, len(replacementItems))
	for i, replacementItem := range replacementItems {
		unitPrice, err := decimal.NewFromString(replacementItem.UnitPrice)
		if err != nil {
			return nil, InvalidData, fmt.Errorf("unit price [%s] format incorrect", replacementItem.UnitPrice)
		}
		totalAmount = totalAmount.Add(unitPrice.Mul(decimal.NewFromInt(int64(replacementItem.Quantity))))

		lines[i] = models.OrderLineDB{
			LineID:    generateID(),
			ProductID: replacementItem.ProductID,
			Quantity:  replacementItem.Quantity,
			UnitPrice: unitPrice.StringFixed(2),
		}
	}

	replacementOrder := &models.OrderResourceDB{
		ID:              generateID(),
		CreatedAt:       now,
		CustomerID:      returnRequest.CustomerID,
		Status:          OrderStatusPending,
		Prepaid:         true,
		TotalAmount:     totalAmount.StringFixed(2),
		Lines:           lines,
		ShippingAddress: order.ShippingAddress,
	}

	resolution.ReplacementOrderID = replacementOrder.ID

	return replacementOrder, Success, nil
}

// markResolutionFailed records the failed attempt for visibility and retry.
// The return request itself is left untouched.
func (service *ResolutionService) markResolutionFailed(req *http.Request, id string, resolution *models.ReturnResolutionDB) {
	failed := *resolution
	failed.Status = models.ResolutionStatusFailed.String()

	if err := service.DAO.PatchResolution(id, &failed); err != nil {
		log.ErrorR(req, fmt.Errorf("error recording failed resolution: [%v]", err))
	}
}

func validateResolutionInput(incoming models.IncomingResolutionRequest) (ResponseType, error) {
	switch incoming.Type {
	case models.Refund.String():
		if incoming.RefundAmount == "" {
			return InvalidData, errors.New("refund amount is required for a refund resolution")
		}
		amount, err := decimal.NewFromString(incoming.RefundAmount)
		if err != nil {
			return InvalidData, fmt.Errorf("refund amount [%s] format incorrect", incoming.RefundAmount)
		}
		if amount.IsNegative() {
			return InvalidData, fmt.Errorf("refund amount [%s] must not be negative", incoming.RefundAmount)
		}
	case models.Replacement.String():
		if len(incoming.ReplacementItems) == 0 {
			return InvalidData, errors.New("replacement items are required for a replacement resolution")
		}
		for _, replacementItem := range incoming.ReplacementItems {
			if _, err := decimal.NewFromString(replacementItem.UnitPrice); err != nil {
				return InvalidData, fmt.Errorf("unit price [%s] format incorrect", replacementItem.UnitPrice)
			}
		}
	}

	return Success, nil
}
