package mappers

import (
	"github.com/plutov/paypal/v4"
	"github.com/tradepoint/returns.api/models"
)

// MapPayPalRefundToResult maps a PayPal refund response onto the provider
// neutral refund result. PayPal reports COMPLETED for synchronous refunds and
// PENDING when settlement is deferred; both count as a successful refund.
func MapPayPalRefundToResult(response *paypal.RefundResponse) models.RefundResult {
	result := models.RefundResult{
		TransactionID: response.ID,
	}

	switch response.Status {
	case "COMPLETED", "PENDING":
		result.Status = models.RefundStatusSucceeded
	default:
		result.Status = models.RefundStatusFailed
		result.FailureReason = response.Status
	}

	return result
}
