package interceptors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tradepoint/returns.api/helpers"
	"github.com/tradepoint/returns.api/models"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitUserAuthenticationInterceptor(t *testing.T) {

	Convey("No authorised identity", t, func() {
		req := httptest.NewRequest("GET", "/returns", nil)
		w := httptest.NewRecorder()

		test := UserAuthenticationInterceptor(GetTestHandler())
		test.ServeHTTP(w, req)

		So(w.Code, ShouldEqual, http.StatusUnauthorized)
	})

	Convey("No authorised role", t, func() {
		req := httptest.NewRequest("GET", "/returns", nil)
		req.Header.Set("TP-Identity", "customer123")
		w := httptest.NewRecorder()

		test := UserAuthenticationInterceptor(GetTestHandler())
		test.ServeHTTP(w, req)

		So(w.Code, ShouldEqual, http.StatusUnauthorized)
	})

	Convey("Unrecognised role", t, func() {
		req := httptest.NewRequest("GET", "/returns", nil)
		req.Header.Set("TP-Identity", "customer123")
		req.Header.Set("TP-Identity-Role", "supplier")
		w := httptest.NewRecorder()

		test := UserAuthenticationInterceptor(GetTestHandler())
		test.ServeHTTP(w, req)

		So(w.Code, ShouldEqual, http.StatusUnauthorized)
	})

	Convey("Authorised requester is passed through with details in context", t, func() {
		req := httptest.NewRequest("GET", "/returns", nil)
		req.Header.Set("TP-Identity", "pm123")
		req.Header.Set("TP-Identity-Role", helpers.ProductManagerRole)
		req.Header.Set("TP-Authorised-Products", "product1 product2")
		w := httptest.NewRecorder()

		var captured models.RequesterDetails
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			captured, _ = r.Context().Value(helpers.ContextKeyRequesterDetails).(models.RequesterDetails)
			w.WriteHeader(http.StatusOK)
		})

		test := UserAuthenticationInterceptor(next)
		test.ServeHTTP(w, req)

		So(w.Code, ShouldEqual, http.StatusOK)
		So(captured.ID, ShouldEqual, "pm123")
		So(captured.Role, ShouldEqual, helpers.ProductManagerRole)
		So(captured.Products, ShouldResemble, []string{"product1", "product2"})
	})
}

// GetTestHandler returns an http handler used to satisfy interceptor chains
// under test
func GetTestHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}
}
