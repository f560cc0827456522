package service

import (
	"testing"

	"github.com/tradepoint/returns.api/helpers"
	"github.com/tradepoint/returns.api/models"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitAccessPolicy(t *testing.T) {
	policy := AccessPolicy{}

	returnRequest := &models.ReturnRequestResourceRest{
		CustomerID: "customer123",
		Items: []models.ReturnItemResourceRest{
			{ItemID: "item1", ProductID: "product1"},
		},
	}

	Convey("Staff roles can view any return request", t, func() {
		So(policy.CanView(models.RequesterDetails{ID: "staff123", Role: helpers.AdminRole}, returnRequest), ShouldBeTrue)
		So(policy.CanView(models.RequesterDetails{ID: "staff456", Role: helpers.ReturnsProcessorRole}, returnRequest), ShouldBeTrue)
	})

	Convey("A customer can only view their own return requests", t, func() {
		So(policy.CanView(models.RequesterDetails{ID: "customer123", Role: helpers.CustomerRole}, returnRequest), ShouldBeTrue)
		So(policy.CanView(models.RequesterDetails{ID: "someoneElse", Role: helpers.CustomerRole}, returnRequest), ShouldBeFalse)
	})

	Convey("A product manager can only view return requests containing their products", t, func() {
		manager := models.RequesterDetails{ID: "pm123", Role: helpers.ProductManagerRole, Products: []string{"product1", "product9"}}
		otherManager := models.RequesterDetails{ID: "pm456", Role: helpers.ProductManagerRole, Products: []string{"product9"}}

		So(policy.CanView(manager, returnRequest), ShouldBeTrue)
		So(policy.CanView(otherManager, returnRequest), ShouldBeFalse)
	})

	Convey("An unrecognised role can view nothing", t, func() {
		So(policy.CanView(models.RequesterDetails{ID: "x", Role: "supplier"}, returnRequest), ShouldBeFalse)
	})

	Convey("Only staff roles can mutate", t, func() {
		So(policy.CanMutate(models.RequesterDetails{Role: helpers.AdminRole}), ShouldBeTrue)
		So(policy.CanMutate(models.RequesterDetails{Role: helpers.ReturnsProcessorRole}), ShouldBeTrue)
		So(policy.CanMutate(models.RequesterDetails{Role: helpers.CustomerRole}), ShouldBeFalse)
		So(policy.CanMutate(models.RequesterDetails{Role: helpers.ProductManagerRole}), ShouldBeFalse)
	})
}
