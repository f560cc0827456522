package service

import (
	"github.com/tradepoint/returns.api/helpers"
	"github.com/tradepoint/returns.api/models"
)

// AccessPolicy derives visibility and mutation rules from the requester's
// role. It is evaluated once per operation rather than per field.
type AccessPolicy struct{}

// CanView tells whether the requester may see the given return request.
// Staff see every request, a customer only their own, and a product manager
// only requests containing one of their products.
func (policy AccessPolicy) CanView(requester models.RequesterDetails, returnRequest *models.ReturnRequestResourceRest) bool {
	if helpers.IsStaffRole(requester.Role) {
		return true
	}

	if requester.Role == helpers.CustomerRole {
		return returnRequest.CustomerID == requester.ID
	}

	if requester.Role == helpers.ProductManagerRole {
		for _, item := range returnRequest.Items {
			if containsProduct(requester.Products, item.ProductID) {
				return true
			}
		}
	}

	return false
}

// CanMutate tells whether the requester may change return requests at all
func (policy AccessPolicy) CanMutate(requester models.RequesterDetails) bool {
	return helpers.IsStaffRole(requester.Role)
}

func containsProduct(products []string, productID string) bool {
	for _, p := range products {
		if p == productID {
			return true
		}
	}
	return false
}
