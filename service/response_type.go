package service

// ResponseType enumerates the outcomes a service call can report to handlers
type ResponseType int

const (
	// InvalidData response
	InvalidData ResponseType = iota

	// Error response
	Error

	// Forbidden response
	Forbidden

	// NotFound response
	NotFound

	// Success response
	Success

	// InvalidState response, the operation is not allowed in the current lifecycle state
	InvalidState

	// AlreadyResolved response, a non-failed resolution already exists
	AlreadyResolved

	// WindowExpired response, the order is outside the return window
	WindowExpired

	// QuantityLimitExceeded response, more units requested than were ordered
	QuantityLimitExceeded

	// ExternalFailure response, a payment or credit provider call failed
	ExternalFailure
)

var vals = [...]string{
	"invalid-data",
	"error",
	"forbidden",
	"not-found",
	"success",
	"invalid-state",
	"already-resolved",
	"return-window-expired",
	"quantity-exceeds-limit",
	"external-failure",
}

// String representation of `ResponseType`
func (a ResponseType) String() string {
	return vals[a]
}
