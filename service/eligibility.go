package service

import (
	"fmt"
	"time"

	"github.com/tradepoint/returns.api/config"
	"github.com/tradepoint/returns.api/models"
)

// EligibilityService validates a requested return against the original order.
// It is stateless and performs no writes, so it is safe to call repeatedly.
type EligibilityService struct {
	Config config.Config
}

// CheckEligibility checks the return window and the per-line quantity limits
// for every requested item
func (service *EligibilityService) CheckEligibility(order *models.OrderResourceDB, items []models.IncomingReturnItem, now time.Time) (ResponseType, error) {

	expiry := order.CreatedAt.AddDate(0, 0, service.Config.ReturnWindowDays)
	if now.After(expiry) {
		return WindowExpired, fmt.Errorf("return window for order [%s] expired on [%s]", order.ID, expiry.Format(time.RFC3339))
	}

	for _, item := range items {
		line := findOrderLine(order, item.OrderLineID)
		if line == nil {
			return InvalidData, fmt.Errorf("order line [%s] not present on order [%s]", item.OrderLineID, order.ID)
		}

		if item.Quantity <= 0 {
			return InvalidData, fmt.Errorf("requested quantity [%d] for order line [%s] must be positive", item.Quantity, item.OrderLineID)
		}

		if item.Quantity > line.Quantity {
			return QuantityLimitExceeded, fmt.Errorf("requested quantity [%d] for order line [%s] exceeds ordered quantity [%d]", item.Quantity, item.OrderLineID, line.Quantity)
		}
	}

	return Success, nil
}

func findOrderLine(order *models.OrderResourceDB, lineID string) *models.OrderLineDB {
	for i := range order.Lines {
		if order.Lines[i].LineID == lineID {
			return &order.Lines[i]
		}
	}
	return nil
}
