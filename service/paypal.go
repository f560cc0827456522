package service

import (
	"context"
	"fmt"

	"github.com/plutov/paypal/v4"
	"github.com/tradepoint/returns.api/config"
	"github.com/tradepoint/returns.api/mappers"
	"github.com/tradepoint/returns.api/models"
)

var payPalClient *paypal.Client

// GetPayPalClient returns an authenticated PayPal client for the configured
// environment
func GetPayPalClient(cfg config.Config) (*paypal.Client, error) {
	if payPalClient != nil {
		return payPalClient, nil
	}

	paypalAPIBase := getPayPalAPIBase(cfg.PaypalEnv)
	if paypalAPIBase == "" {
		return nil, fmt.Errorf("invalid paypal env in config: %s", cfg.PaypalEnv)
	}

	c, err := paypal.NewClient(cfg.PaypalClientID, cfg.PaypalSecret, paypalAPIBase)
	if err != nil {
		return nil, fmt.Errorf("error creating paypal client: [%v]", err)
	}
	_, err = c.GetAccessToken(context.Background())
	if err != nil {
		return nil, fmt.Errorf("error getting access token: [%v]", err)
	}

	payPalClient = c
	return payPalClient, nil
}

// PayPalSDK is an interface for all the PayPal client methods that will be used
// in this service
type PayPalSDK interface {
	GetAccessToken(ctx context.Context) (*paypal.TokenResponse, error)
	RefundCapture(ctx context.Context, captureID string, refundCaptureRequest paypal.RefundCaptureRequest) (*paypal.RefundResponse, error)
}

// PayPalService handles refunding captured payments through PayPal
type PayPalService struct {
	Client PayPalSDK
	Config config.Config
}

// RefundPayment refunds the given amount against the capture taken for the
// original order. A refund PayPal reports as anything other than completed or
// pending is surfaced as a failed result, not an error.
func (pp *PayPalService) RefundPayment(captureID string, amount string) (*models.RefundResult, ResponseType, error) {

	res, err := pp.Client.RefundCapture(
		context.Background(),
		captureID,
		paypal.RefundCaptureRequest{
			Amount: &paypal.Money{
				Currency: "GBP",
				Value:    amount,
			},
		},
	)
	if err != nil {
		return nil, Error, fmt.Errorf("error refunding capture with PayPal: [%v]", err)
	}

	refundResult := mappers.MapPayPalRefundToResult(res)

	return &refundResult, Success, nil
}

func getPayPalAPIBase(env string) string {
	switch env {
	case "live":
		return paypal.APIBaseLive
	case "test":
		return paypal.APIBaseSandBox
	default:
		return ""
	}
}
