package models

// RequesterDetails is a representation of the calling identity retrieved from
// the platform gateway headers in a request
type RequesterDetails struct {
	ID       string
	Role     string
	Products []string
}
