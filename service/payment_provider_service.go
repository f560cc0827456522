package service

import "github.com/tradepoint/returns.api/models"

// PaymentProviderService is an interface for all the requests to the external
// payment provider
type PaymentProviderService interface {
	RefundPayment(captureID string, amount string) (*models.RefundResult, ResponseType, error)
}
