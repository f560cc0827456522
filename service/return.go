package service

import (
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/tradepoint/returns.api/config"
	"github.com/tradepoint/returns.api/dao"
	"github.com/tradepoint/returns.api/helpers"
	"github.com/tradepoint/returns.api/models"
	"github.com/tradepoint/returns.api/transformers"
	"github.com/tradepoint/returns.api/utils"
)

// ReturnKind identifies return request resources stored by this service
const ReturnKind = "return-request#return-request"

// ReturnService contains the DAO for db access and the collaborators a return
// request operation may touch
type ReturnService struct {
	DAO           dao.DAO
	Config        config.Config
	Eligibility   EligibilityService
	Access        AccessPolicy
	Notifications NotificationService
}

// CreateReturnRequest validates eligibility against the original order and
// persists the new return request and its items as a single atomic unit
func (service *ReturnService) CreateReturnRequest(req *http.Request, requester models.RequesterDetails, incoming models.IncomingReturnRequest) (*models.ReturnRequestResourceRest, ResponseType, error) {

	order, err := service.DAO.GetOrder(incoming.OrderID)
	if err != nil {
		return nil, Error, fmt.Errorf("error getting order resource: [%v]", err)
	}
	if order == nil {
		return nil, NotFound, fmt.Errorf("order not found. id: %s", incoming.OrderID)
	}

	switch {
	case requester.Role == helpers.CustomerRole:
		if order.CustomerID != requester.ID {
			return nil, Forbidden, fmt.Errorf("customer [%s] does not own order [%s]", requester.ID, order.ID)
		}
	case helpers.IsStaffRole(requester.Role):
		// staff may raise a return on a customer's behalf
	default:
		return nil, Forbidden, fmt.Errorf("role [%s] may not create return requests", requester.Role)
	}

	if !models.IsValidReturnReason(incoming.Reason) {
		return nil, InvalidData, fmt.Errorf("return reason [%s] not recognised", incoming.Reason)
	}
	if incoming.PreferredResolution != "" && !models.IsValidResolutionType(incoming.PreferredResolution) {
		return nil, InvalidData, fmt.Errorf("preferred resolution [%s] not recognised", incoming.PreferredResolution)
	}

	now := time.Now().Truncate(time.Millisecond)

	responseType, err := service.Eligibility.CheckEligibility(order, incoming.Items, now)
	if err != nil {
		return nil, responseType, err
	}

	sequence, err := service.DAO.NextReturnSequence()
	if err != nil {
		return nil, Error, fmt.Errorf("error getting next return reference sequence: [%v]", err)
	}

	etag, err := utils.GenerateEtag()
	if err != nil {
		return nil, Error, fmt.Errorf("error generating etag: [%v]", err)
	}

	returnRequest := models.ReturnRequestResourceDB{
		ID:                  generateID(),
		Reference:           fmt.Sprintf("%s%06d", service.Config.ReturnReferencePrefix, sequence),
		OrderID:             order.ID,
		CustomerID:          order.CustomerID,
		Status:              models.PendingApproval.String(),
		Reason:              incoming.Reason,
		ReasonDetail:        incoming.ReasonDetail,
		ProofImages:         incoming.ProofImages,
		PreferredResolution: incoming.PreferredResolution,
		RequestedAt:         now,
		Etag:                etag,
		Kind:                ReturnKind,
	}

	items := make([]models.ReturnItemResourceDB, len(incoming.Items))
	for i, incomingItem := range incoming.Items {
		line := findOrderLine(order, incomingItem.OrderLineID)
		items[i] = models.ReturnItemResourceDB{
			ID:                generateID(),
			ReturnRequestID:   returnRequest.ID,
			OrderLineID:       line.LineID,
			ProductID:         line.ProductID,
			QuantityRequested: incomingItem.Quantity,
		}
	}

	err = service.DAO.CreateReturnRequest(&returnRequest, items)
	if err != nil {
		return nil, Error, fmt.Errorf("error writing to MongoDB: %v", err)
	}

	notify(req, service.Notifications, returnRequest.CustomerID, NotificationCategoryReturnRequested,
		"Return request received",
		fmt.Sprintf("Your return request %s has been received and is awaiting approval", returnRequest.Reference),
		map[string]string{"return_reference": returnRequest.Reference})

	returnResource := transformers.ReturnTransformer{}.TransformToRest(returnRequest, items)

	return &returnResource, Success, nil
}

// GetReturnRequest retrieves a return request with its items and resolution.
// Visibility is enforced by the caller via AccessPolicy.
func (service *ReturnService) GetReturnRequest(req *http.Request, id string) (*models.ReturnRequestResourceRest, ResponseType, error) {
	returnRequest, err := service.DAO.GetReturnRequest(id)
	if err != nil {
		return nil, Error, fmt.Errorf("error getting return request resource from db: [%v]", err)
	}
	if returnRequest == nil {
		return nil, NotFound, fmt.Errorf("return request not found. id: %s", id)
	}

	items, err := service.DAO.GetReturnItems(id)
	if err != nil {
		return nil, Error, fmt.Errorf("error getting return items from db: [%v]", err)
	}

	returnResource := transformers.ReturnTransformer{}.TransformToRest(*returnRequest, items)

	return &returnResource, Success, nil
}

// ListFilters are the optional query filters accepted by a listing
type ListFilters struct {
	Status  string
	OrderID string
}

// ListReturnRequests lists the return requests visible to the requester,
// optionally narrowed by status and order
func (service *ReturnService) ListReturnRequests(req *http.Request, requester models.RequesterDetails, filters ListFilters) (*models.ReturnRequestListRest, ResponseType, error) {

	if filters.Status != "" && !models.IsValidReturnStatus(filters.Status) {
		return nil, InvalidData, fmt.Errorf("status filter [%s] not recognised", filters.Status)
	}

	filter := models.ReturnRequestFilter{
		Status:  filters.Status,
		OrderID: filters.OrderID,
	}

	// the role-derived visibility rule is applied as a query filter
	switch {
	case helpers.IsStaffRole(requester.Role):
	case requester.Role == helpers.CustomerRole:
		filter.CustomerID = requester.ID
	case requester.Role == helpers.ProductManagerRole:
		if len(requester.Products) == 0 {
			return &models.ReturnRequestListRest{Returns: []models.ReturnRequestResourceRest{}}, Success, nil
		}
		filter.ProductIDs = requester.Products
	default:
		return nil, Forbidden, fmt.Errorf("role [%s] may not list return requests", requester.Role)
	}

	returnRequests, err := service.DAO.ListReturnRequests(filter)
	if err != nil {
		return nil, Error, fmt.Errorf("error listing return requests: [%v]", err)
	}

	list := models.ReturnRequestListRest{
		Total:   len(returnRequests),
		Returns: make([]models.ReturnRequestResourceRest, len(returnRequests)),
	}

	for i, returnRequest := range returnRequests {
		items, err := service.DAO.GetReturnItems(returnRequest.ID)
		if err != nil {
			return nil, Error, fmt.Errorf("error getting return items from db: [%v]", err)
		}
		list.Returns[i] = transformers.ReturnTransformer{}.TransformToRest(returnRequest, items)
	}

	return &list, Success, nil
}

// UpdateReturnRequest applies staff status and comment changes together with
// an atomic batch of item updates. If any single item update is invalid the
// whole update is discarded.
func (service *ReturnService) UpdateReturnRequest(req *http.Request, id string, requester models.RequesterDetails, incoming models.IncomingReturnUpdate) (*models.ReturnRequestResourceRest, ResponseType, error) {

	if !service.Access.CanMutate(requester) {
		return nil, Forbidden, fmt.Errorf("role [%s] may not update return requests", requester.Role)
	}

	returnRequest, err := service.DAO.GetReturnRequest(id)
	if err != nil {
		return nil, Error, fmt.Errorf("error getting return request resource from db: [%v]", err)
	}
	if returnRequest == nil {
		return nil, NotFound, fmt.Errorf("return request not found. id: %s", id)
	}

	if models.IsTerminalReturnStatus(returnRequest.Status) {
		return nil, InvalidState, fmt.Errorf("return request [%s] is %s and can no longer be updated", id, returnRequest.Status)
	}

	effectiveStatus := returnRequest.Status
	if incoming.Status != "" {
		if !models.IsValidReturnStatus(incoming.Status) {
			return nil, InvalidData, fmt.Errorf("status [%s] not recognised", incoming.Status)
		}
		// completed is only ever reached by resolving the request
		if incoming.Status == models.Completed.String() {
			return nil, InvalidData, fmt.Errorf("status [%s] can only be set by resolving the return request", incoming.Status)
		}
		// rejection is the review decision on a newly raised request
		if incoming.Status == models.Rejected.String() && returnRequest.Status != models.PendingApproval.String() {
			return nil, InvalidState, fmt.Errorf("return request [%s] can only be rejected while %s", id, models.PendingApproval.String())
		}
		effectiveStatus = incoming.Status
	}

	now := time.Now().Truncate(time.Millisecond)

	itemPatches, adjustments, anyReceived, responseType, err := service.buildItemBatch(id, requester, incoming.Items, now)
	if err != nil {
		return nil, responseType, err
	}

	// receipt of physical units advances the request unless it has already
	// moved past processing or staff set a terminal status in the same call
	if anyReceived && !models.IsAtOrPastProcessing(effectiveStatus) && !models.IsTerminalReturnStatus(effectiveStatus) {
		effectiveStatus = models.ItemsReceived.String()
	}

	statusChanged := effectiveStatus != returnRequest.Status

	etag, err := utils.GenerateEtag()
	if err != nil {
		return nil, Error, fmt.Errorf("error generating etag: [%v]", err)
	}

	patch := models.ReturnRequestPatchDB{
		StaffComments: incoming.StaffComments,
		Etag:          etag,
	}
	if statusChanged {
		patch.Status = effectiveStatus
		patch.ReviewedBy = requester.ID
		patch.ReviewedAt = &now
	}

	err = service.DAO.UpdateReturnRequest(id, &patch, itemPatches, adjustments)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return nil, NotFound, fmt.Errorf("error updating return request: [%v]", err)
		}
		return nil, Error, fmt.Errorf("error updating return request on database: [%v]", err)
	}

	if statusChanged {
		notify(req, service.Notifications, returnRequest.CustomerID, NotificationCategoryStatusChanged,
			"Return request updated",
			fmt.Sprintf("Your return request %s is now %s", returnRequest.Reference, effectiveStatus),
			map[string]string{"return_reference": returnRequest.Reference, "status": effectiveStatus})
	}

	return service.GetReturnRequest(req, id)
}

// buildItemBatch validates every entry of the item batch against the stored
// items and produces the item patches plus any restock inventory adjustments.
// Any invalid entry fails the whole batch before a single write happens.
func (service *ReturnService) buildItemBatch(id string, requester models.RequesterDetails, batch []models.IncomingReturnItemUpdate, now time.Time) ([]models.ReturnItemPatchDB, []models.InventoryAdjustmentDB, bool, ResponseType, error) {
	if len(batch) == 0 {
		return nil, nil, false, Success, nil
	}

	items, err := service.DAO.GetReturnItems(id)
	if err != nil {
		return nil, nil, false, Error, fmt.Errorf("error getting return items from db: [%v]", err)
	}

	itemsByID := make(map[string]*models.ReturnItemResourceDB, len(items))
	for i := range items {
		itemsByID[items[i].ID] = &items[i]
	}

	var itemPatches []models.ReturnItemPatchDB
	var adjustments []models.InventoryAdjustmentDB
	anyReceived := false

	for _, update := range batch {
		item, ok := itemsByID[update.ItemID]
		if !ok {
			return nil, nil, false, NotFound, fmt.Errorf("return item [%s] does not belong to return request [%s]", update.ItemID, id)
		}

		itemPatch := models.ReturnItemPatchDB{
			ItemID:           item.ID,
			TrackingNumber:   update.TrackingNumber,
			ShippingLabelRef: update.ShippingLabelRef,
		}

		effectiveReceived := 0
		if item.QuantityReceived != nil {
			effectiveReceived = *item.QuantityReceived
		}

		if update.QuantityReceived != nil {
			received := *update.QuantityReceived
			if received < 0 || received > item.QuantityRequested {
				return nil, nil, false, InvalidData, fmt.Errorf("received quantity [%d] for item [%s] must be between 0 and the requested quantity [%d]", received, item.ID, item.QuantityRequested)
			}
			if item.QuantityReceived == nil || *item.QuantityReceived != received {
				anyReceived = true
			}
			itemPatch.QuantityReceived = update.QuantityReceived
			itemPatch.ReceivedAt = &now
			effectiveReceived = received
		}

		effectiveCondition := item.Condition
		if update.Condition != "" {
			if !models.IsValidItemCondition(update.Condition) {
				return nil, nil, false, InvalidData, fmt.Errorf("item condition [%s] not recognised", update.Condition)
			}
			itemPatch.Condition = update.Condition
			itemPatch.ConditionSetBy = requester.ID
			itemPatch.ConditionSetAt = &now
			effectiveCondition = update.Condition
		}

		if update.Disposition != "" {
			if !models.IsValidDisposition(update.Disposition) {
				return nil, nil, false, InvalidData, fmt.Errorf("disposition [%s] not recognised", update.Disposition)
			}

			disposition := update.Disposition
			// restock is only durable for resellable conditions; anything
			// else is silently downgraded to quarantine
			if disposition == models.Restock.String() && !models.IsRestockableCondition(effectiveCondition) {
				disposition = models.Quarantine.String()
			}

			itemPatch.Disposition = disposition
			itemPatch.DispositionSetBy = requester.ID
			itemPatch.DispositionSetAt = &now

			if disposition == models.Restock.String() && item.Disposition != models.Restock.String() && effectiveReceived > 0 {
				inventory, err := service.DAO.GetInventoryResource(item.ProductID)
				if err != nil {
					return nil, nil, false, Error, fmt.Errorf("error getting inventory resource from db: [%v]", err)
				}
				if inventory == nil {
					return nil, nil, false, NotFound, fmt.Errorf("inventory record not found for product [%s]", item.ProductID)
				}
				adjustments = append(adjustments, models.InventoryAdjustmentDB{
					ProductID: item.ProductID,
					Delta:     effectiveReceived,
				})
			}
		}

		itemPatches = append(itemPatches, itemPatch)
	}

	return itemPatches, adjustments, anyReceived, Success, nil
}

// Generates a string of 20 numbers made up of 7 random numbers, followed by 13 numbers derived from the current time
func generateID() (i string) {
	ranNumber := fmt.Sprintf("%07d", rand.Intn(9999999))
	millis := strconv.FormatInt(time.Now().UnixNano()/int64(time.Millisecond), 10)
	return ranNumber + millis
}
