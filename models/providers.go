package models

// Refund statuses reported by the payment provider service
const (
	RefundStatusSucceeded = "succeeded"
	RefundStatusFailed    = "failed"
)

// RefundResult is the outcome of a refund call to the payment provider
type RefundResult struct {
	Status        string
	TransactionID string
	FailureReason string
}

// OutgoingCreditRequest is the data sent to the credit issuing service
type OutgoingCreditRequest struct {
	CustomerID string `json:"customer_id"`
	Amount     string `json:"amount"`
}

// CreditIssueResponse is the data received from the credit issuing service
type CreditIssueResponse struct {
	Code   string `json:"code"`
	Amount string `json:"amount"`
}

// OutgoingNotificationRequest is the data sent to the notification service
type OutgoingNotificationRequest struct {
	UserID   string            `json:"user_id"`
	Category string            `json:"category"`
	Title    string            `json:"title"`
	Body     string            `json:"body"`
	Metadata map[string]string `json:"metadata,omitempty"`
}
