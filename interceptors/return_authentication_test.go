package interceptors

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/tradepoint/returns.api/config"
	"github.com/tradepoint/returns.api/dao"
	"github.com/tradepoint/returns.api/fixtures"
	"github.com/tradepoint/returns.api/helpers"
	"github.com/tradepoint/returns.api/models"
	"github.com/tradepoint/returns.api/service"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitReturnAuthenticationIntercept(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	cfg, _ := config.Get()

	mockDao := dao.NewMockDAO(mockCtrl)
	interceptor := &ReturnAuthenticationInterceptor{
		Service: service.ReturnService{DAO: mockDao, Config: *cfg},
		Access:  service.AccessPolicy{},
	}

	buildRequest := func(requester *models.RequesterDetails, returnID string) *http.Request {
		req := httptest.NewRequest("GET", "/returns/"+returnID, nil)
		if returnID != "" {
			req = mux.SetURLVars(req, map[string]string{"return_id": returnID})
		}
		if requester != nil {
			req = req.WithContext(context.WithValue(req.Context(), helpers.ContextKeyRequesterDetails, *requester))
		}
		return req
	}

	customer := models.RequesterDetails{ID: "customer123", Role: helpers.CustomerRole}

	Convey("No return id in the URL", t, func() {
		w := httptest.NewRecorder()

		test := interceptor.ReturnAuthenticationIntercept(GetTestHandler())
		test.ServeHTTP(w, buildRequest(&customer, ""))

		So(w.Code, ShouldEqual, http.StatusBadRequest)
	})

	Convey("No requester details in context", t, func() {
		w := httptest.NewRecorder()

		test := interceptor.ReturnAuthenticationIntercept(GetTestHandler())
		test.ServeHTTP(w, buildRequest(nil, "return123"))

		So(w.Code, ShouldEqual, http.StatusInternalServerError)
	})

	Convey("Return request not found", t, func() {
		w := httptest.NewRecorder()

		mockDao.EXPECT().GetReturnRequest("return123").Return(nil, nil)

		test := interceptor.ReturnAuthenticationIntercept(GetTestHandler())
		test.ServeHTTP(w, buildRequest(&customer, "return123"))

		So(w.Code, ShouldEqual, http.StatusNotFound)
	})

	Convey("Requester may not view the return request", t, func() {
		w := httptest.NewRecorder()
		otherCustomer := models.RequesterDetails{ID: "someoneElse", Role: helpers.CustomerRole}

		mockDao.EXPECT().GetReturnRequest("return123").Return(fixtures.GetReturnRequest(models.Approved.String()), nil)
		mockDao.EXPECT().GetReturnItems("return123").Return(fixtures.GetReturnItems("return123"), nil)

		test := interceptor.ReturnAuthenticationIntercept(GetTestHandler())
		test.ServeHTTP(w, buildRequest(&otherCustomer, "return123"))

		So(w.Code, ShouldEqual, http.StatusForbidden)
	})

	Convey("Authorised requester is passed through with the resource in context", t, func() {
		w := httptest.NewRecorder()

		mockDao.EXPECT().GetReturnRequest("return123").Return(fixtures.GetReturnRequest(models.Approved.String()), nil)
		mockDao.EXPECT().GetReturnItems("return123").Return(fixtures.GetReturnItems("return123"), nil)

		var captured *models.ReturnRequestResourceRest
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			captured, _ = r.Context().Value(helpers.ContextKeyReturnRequest).(*models.ReturnRequestResourceRest)
			w.WriteHeader(http.StatusOK)
		})

		test := interceptor.ReturnAuthenticationIntercept(next)
		test.ServeHTTP(w, buildRequest(&customer, "return123"))

		So(w.Code, ShouldEqual, http.StatusOK)
		So(captured, ShouldNotBeNil)
		So(captured.MetaData.ID, ShouldEqual, "return123")
	})
}
