package helpers

import (
	"net/http"
	"strings"
)

// Roles recognised by this service. Staff roles may mutate any return
// request; the customer and product manager roles only ever see a subset.
const (
	CustomerRole         = "customer"
	AdminRole            = "admin"
	ReturnsProcessorRole = "returns-processor"
	ProductManagerRole   = "product-manager"

	tpIdentity           = "TP-Identity"
	tpIdentityRole       = "TP-Identity-Role"
	tpAuthorisedProducts = "TP-Authorised-Products"
)

// GetAuthorisedIdentity returns the calling user id set by the platform gateway
func GetAuthorisedIdentity(r *http.Request) string {
	return r.Header.Get(tpIdentity)
}

// GetAuthorisedRole returns the calling user's role set by the platform gateway
func GetAuthorisedRole(r *http.Request) string {
	return r.Header.Get(tpIdentityRole)
}

// GetAuthorisedProducts returns the product ids a product manager identity is
// associated with
func GetAuthorisedProducts(r *http.Request) []string {
	products := r.Header.Get(tpAuthorisedProducts)
	if len(products) == 0 {
		return nil
	}

	return strings.Split(products, " ")
}

// IsStaffRole tells whether role is one of the staff roles
func IsStaffRole(role string) bool {
	return role == AdminRole || role == ReturnsProcessorRole
}

// IsRecognisedRole tells whether role is any role this service understands
func IsRecognisedRole(role string) bool {
	return IsStaffRole(role) || role == CustomerRole || role == ProductManagerRole
}
