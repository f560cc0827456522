package fixtures

import (
	"time"

	"github.com/tradepoint/returns.api/models"
)

var ReturnRequestKind = "return-request#return-request"

// GetOrder returns an order with two lines owned by the given customer
func GetOrder(customerID string, createdAt time.Time) *models.OrderResourceDB {
	return &models.OrderResourceDB{
		ID:               "order123",
		CreatedAt:        createdAt,
		CustomerID:       customerID,
		Status:           "delivered",
		Prepaid:          true,
		PaymentCaptureID: "capture123",
		TotalAmount:      "150.00",
		Lines: []models.OrderLineDB{
			{
				LineID:    "line1",
				ProductID: "product1",
				Quantity:  2,
				UnitPrice: "50.00",
			},
			{
				LineID:    "line2",
				ProductID: "product2",
				Quantity:  1,
				UnitPrice: "50.00",
			},
		},
		ShippingAddress: models.AddressDB{
			Line1:      "1 High Street",
			City:       "Cardiff",
			PostalCode: "CF14 3UZ",
			Country:    "GB",
		},
	}
}

// GetIncomingReturnRequest returns a create request for the first order line
func GetIncomingReturnRequest() models.IncomingReturnRequest {
	return models.IncomingReturnRequest{
		OrderID: "order123",
		Reason:  "defective",
		Items: []models.IncomingReturnItem{
			{
				OrderLineID: "line1",
				Quantity:    1,
			},
		},
	}
}

// GetReturnRequest returns a stored return request in the given status
func GetReturnRequest(status string) *models.ReturnRequestResourceDB {
	return &models.ReturnRequestResourceDB{
		ID:          "return123",
		Reference:   "RTN000042",
		OrderID:     "order123",
		CustomerID:  "customer123",
		Status:      status,
		Reason:      "defective",
		RequestedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		Etag:        "63174d4d675c75d458fe192ca805e76873eb46611e137e572398f33b",
		Kind:        ReturnRequestKind,
	}
}

// GetReturnItems returns the stored items belonging to GetReturnRequest
func GetReturnItems(returnRequestID string) []models.ReturnItemResourceDB {
	return []models.ReturnItemResourceDB{
		{
			ID:                "item1",
			ReturnRequestID:   returnRequestID,
			OrderLineID:       "line1",
			ProductID:         "product1",
			QuantityRequested: 1,
		},
	}
}

// GetResolvedReturnRequest returns a completed return request carrying a
// completed refund resolution
func GetResolvedReturnRequest() *models.ReturnRequestResourceDB {
	returnRequest := GetReturnRequest(models.Completed.String())
	returnRequest.Resolution = &models.ReturnResolutionDB{
		ID:                  "resolution123",
		Type:                models.Refund.String(),
		Status:              models.ResolutionStatusCompleted.String(),
		ResolvedBy:          "staff123",
		ResolvedAt:          time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC),
		RefundAmount:        "50.00",
		RefundTransactionID: "refund123",
	}
	return returnRequest
}

// GetIncomingResolutionRequest returns a resolve request of the given type
func GetIncomingResolutionRequest(resolutionType string) models.IncomingResolutionRequest {
	incoming := models.IncomingResolutionRequest{
		Type: resolutionType,
	}

	switch resolutionType {
	case models.Refund.String():
		incoming.RefundAmount = "50.00"
	case models.Replacement.String():
		incoming.ReplacementItems = []models.IncomingReplacementItem{
			{
				ProductID: "product1",
				Quantity:  1,
				UnitPrice: "50.00",
			},
		}
	}

	return incoming
}
