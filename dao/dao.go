package dao

import (
	"errors"

	"github.com/tradepoint/returns.api/models"
)

// ErrNotFound is returned when a targeted document does not exist, aborting
// any enclosing transaction
var ErrNotFound = errors.New("not found")

// ErrResolutionConflict is returned when a resolution write does not match
// because a non-failed resolution is already present on the return request
var ErrResolutionConflict = errors.New("resolution already in progress or completed")

// DAO is an interface for accessing return workflow data from a backend store.
// Methods touching more than one document apply all writes as a single
// transactional unit.
type DAO interface {
	CreateReturnRequest(returnRequest *models.ReturnRequestResourceDB, items []models.ReturnItemResourceDB) error
	GetReturnRequest(id string) (*models.ReturnRequestResourceDB, error)
	GetReturnItems(returnRequestID string) ([]models.ReturnItemResourceDB, error)
	ListReturnRequests(filter models.ReturnRequestFilter) ([]models.ReturnRequestResourceDB, error)
	UpdateReturnRequest(id string, patch *models.ReturnRequestPatchDB, itemPatches []models.ReturnItemPatchDB, adjustments []models.InventoryAdjustmentDB) error
	PatchResolution(returnRequestID string, resolution *models.ReturnResolutionDB) error
	CompleteResolution(returnRequestID string, resolution *models.ReturnResolutionDB, replacementOrder *models.OrderResourceDB, etag string) error
	GetOrder(id string) (*models.OrderResourceDB, error)
	GetInventoryResource(productID string) (*models.InventoryResourceDB, error)
	NextReturnSequence() (int64, error)
}
