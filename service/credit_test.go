package service

import (
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/tradepoint/returns.api/config"
	"github.com/tradepoint/returns.api/models"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitIssueCredit(t *testing.T) {
	cfg, _ := config.Get()
	cfg.CreditAPIURL = "https://credit-api.tradepoint.dev"

	service := CreditClientService{Config: *cfg}

	Convey("Error sending request to credit service", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()

		credit, status, err := service.IssueCredit("customer123", "20.00")

		So(credit, ShouldBeNil)
		So(status, ShouldEqual, ExternalFailure)
		So(err.Error(), ShouldStartWith, "error sending request to credit service")
	})

	Convey("Error status back from credit service", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()

		responder := httpmock.NewStringResponder(500, "{}")
		httpmock.RegisterResponder("POST", "https://credit-api.tradepoint.dev/credits", responder)

		credit, status, err := service.IssueCredit("customer123", "20.00")

		So(credit, ShouldBeNil)
		So(status, ShouldEqual, ExternalFailure)
		So(err.Error(), ShouldEqual, "error status [500] back from credit service")
	})

	Convey("Successful credit issue", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()

		response := models.CreditIssueResponse{Code: "CREDIT123", Amount: "20.00"}
		responder, _ := httpmock.NewJsonResponder(201, response)
		httpmock.RegisterResponder("POST", "https://credit-api.tradepoint.dev/credits", responder)

		credit, status, err := service.IssueCredit("customer123", "20.00")

		So(err, ShouldBeNil)
		So(status, ShouldEqual, Success)
		So(credit.Code, ShouldEqual, "CREDIT123")
		So(credit.Amount, ShouldEqual, "20.00")
	})
}
