package helpers

// ContextKey is a type for creating context keys
type ContextKey string

// ContextKeyRequesterDetails is a specific key for identifying "requester_details" contexts added to the http request
var ContextKeyRequesterDetails = ContextKey("requester_details")

// ContextKeyReturnRequest is a specific key for identifying "return_request" contexts added to the http request
var ContextKeyReturnRequest = ContextKey("return_request")
