package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/tradepoint/returns.api/config"
	"github.com/tradepoint/returns.api/dao"
	"github.com/tradepoint/returns.api/fixtures"
	"github.com/tradepoint/returns.api/helpers"
	"github.com/tradepoint/returns.api/models"
	"github.com/tradepoint/returns.api/service"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitHandleCreateResolution(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	cfg, _ := config.Get()

	mockDao := dao.NewMockDAO(mockCtrl)
	mockPayments := service.NewMockPaymentProviderService(mockCtrl)
	mockCredit := service.NewMockCreditService(mockCtrl)

	resolutionService = &service.ResolutionService{
		DAO:            mockDao,
		PaymentService: mockPayments,
		CreditService:  mockCredit,
		Access:         service.AccessPolicy{},
		Config:         *cfg,
	}

	staff := models.RequesterDetails{ID: "staff123", Role: helpers.AdminRole}
	storedRest := &models.ReturnRequestResourceRest{
		Reference: "RTN000042",
		Status:    models.Approved.String(),
		MetaData:  models.ReturnMetaDataRest{ID: "return123"},
	}

	Convey("Request body empty", t, func() {
		req, _ := http.NewRequest("POST", "/test", nil)
		w := httptest.NewRecorder()
		HandleCreateResolution(w, req)
		So(w.Code, ShouldEqual, 400)
	})

	Convey("Request body fails validation", t, func() {
		body, _ := json.Marshal(models.IncomingResolutionRequest{})
		req := httptest.NewRequest("POST", "/test", bytes.NewBuffer(body))
		w := httptest.NewRecorder()
		HandleCreateResolution(w, req)
		So(w.Code, ShouldEqual, 400)
	})

	Convey("No return request in context", t, func() {
		body, _ := json.Marshal(fixtures.GetIncomingResolutionRequest(models.Refund.String()))
		req := requestWithRequester(httptest.NewRequest("POST", "/test", bytes.NewBuffer(body)), staff)
		w := httptest.NewRecorder()
		HandleCreateResolution(w, req)
		So(w.Code, ShouldEqual, 500)
	})

	Convey("Already resolved conflicts", t, func() {
		body, _ := json.Marshal(fixtures.GetIncomingResolutionRequest(models.Refund.String()))
		req := requestWithReturn(requestWithRequester(httptest.NewRequest("POST", "/test", bytes.NewBuffer(body)), staff), storedRest)
		w := httptest.NewRecorder()

		mockDao.EXPECT().GetReturnRequest("return123").Return(fixtures.GetResolvedReturnRequest(), nil)

		HandleCreateResolution(w, req)
		So(w.Code, ShouldEqual, 409)
	})

	Convey("Provider failure maps to bad gateway", t, func() {
		body, _ := json.Marshal(fixtures.GetIncomingResolutionRequest(models.Refund.String()))
		req := requestWithReturn(requestWithRequester(httptest.NewRequest("POST", "/test", bytes.NewBuffer(body)), staff), storedRest)
		w := httptest.NewRecorder()

		approved := fixtures.GetReturnRequest(models.Approved.String())
		mockDao.EXPECT().GetReturnRequest("return123").Return(approved, nil)
		mockDao.EXPECT().PatchResolution("return123", gomock.Any()).Return(nil)
		mockDao.EXPECT().GetOrder("order123").Return(fixtures.GetOrder("customer123", approved.RequestedAt), nil)
		mockPayments.EXPECT().
			RefundPayment("capture123", "50.00").
			Return(&models.RefundResult{Status: models.RefundStatusFailed, FailureReason: "DECLINED"}, service.Success, nil)
		mockDao.EXPECT().PatchResolution("return123", gomock.Any()).Return(nil)

		HandleCreateResolution(w, req)
		So(w.Code, ShouldEqual, 502)
	})

	Convey("Successful refund resolution", t, func() {
		body, _ := json.Marshal(fixtures.GetIncomingResolutionRequest(models.Refund.String()))
		req := requestWithReturn(requestWithRequester(httptest.NewRequest("POST", "/test", bytes.NewBuffer(body)), staff), storedRest)
		w := httptest.NewRecorder()

		approved := fixtures.GetReturnRequest(models.Approved.String())
		mockDao.EXPECT().GetReturnRequest("return123").Return(approved, nil)
		mockDao.EXPECT().PatchResolution("return123", gomock.Any()).Return(nil)
		mockDao.EXPECT().GetOrder("order123").Return(fixtures.GetOrder("customer123", approved.RequestedAt), nil)
		mockPayments.EXPECT().
			RefundPayment("capture123", "50.00").
			Return(&models.RefundResult{Status: models.RefundStatusSucceeded, TransactionID: "refund123"}, service.Success, nil)
		mockDao.EXPECT().CompleteResolution("return123", gomock.Any(), gomock.Nil(), gomock.Any()).Return(nil)
		mockDao.EXPECT().GetReturnRequest("return123").Return(fixtures.GetResolvedReturnRequest(), nil)
		mockDao.EXPECT().GetReturnItems("return123").Return(fixtures.GetReturnItems("return123"), nil)

		HandleCreateResolution(w, req)

		So(w.Code, ShouldEqual, 201)

		var decoded models.ReturnRequestResourceRest
		So(json.Unmarshal(w.Body.Bytes(), &decoded), ShouldBeNil)
		So(decoded.Status, ShouldEqual, models.Completed.String())
		So(decoded.Resolution, ShouldNotBeNil)
	})
}
