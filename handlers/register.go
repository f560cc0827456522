package handlers

import (
	"net/http"
	"os"

	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
	"github.com/tradepoint/returns.api/config"
	"github.com/tradepoint/returns.api/dao"
	"github.com/tradepoint/returns.api/interceptors"
	"github.com/tradepoint/returns.api/service"
)

var returnService *service.ReturnService
var resolutionService *service.ResolutionService

// Register defines the route mappings for the main router and it's subrouters
func Register(mainRouter *mux.Router, cfg config.Config) {
	m := dao.NewDAOService(&cfg)

	payPalClient, err := service.GetPayPalClient(cfg)
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}

	paymentService := &service.PayPalService{
		Client: payPalClient,
		Config: cfg,
	}

	creditService := &service.CreditClientService{Config: cfg}
	notificationService := &service.NotificationClientService{Config: cfg}

	accessPolicy := service.AccessPolicy{}

	returnService = &service.ReturnService{
		DAO:           m,
		Config:        cfg,
		Eligibility:   service.EligibilityService{Config: cfg},
		Access:        accessPolicy,
		Notifications: notificationService,
	}

	resolutionService = &service.ResolutionService{
		DAO:            m,
		PaymentService: paymentService,
		CreditService:  creditService,
		Notifications:  notificationService,
		Access:         accessPolicy,
		Config:         cfg,
	}

	ra := &interceptors.ReturnAuthenticationInterceptor{
		Service: *returnService,
		Access:  accessPolicy,
	}

	mainRouter.HandleFunc("/healthcheck", healthCheck).Methods("GET").Name("get-healthcheck")

	// Create subrouters. The create and list endpoints must not be intercepted
	// by the return auth interceptor, so the routers need to be split up. This
	// allows per-subrouter middleware.
	rootReturnsRouter := mainRouter.PathPrefix("/returns").Subrouter()
	rootReturnsRouter.HandleFunc("", HandleCreateReturnRequest).Methods("POST").Name("create-return-request")
	rootReturnsRouter.HandleFunc("", HandleListReturnRequests).Methods("GET").Name("list-return-requests")

	// endpoints addressing a single return request need the return auth
	// interceptor, so need their own subrouter
	returnRouter := rootReturnsRouter.PathPrefix("/{return_id}").Subrouter()
	returnRouter.HandleFunc("", HandleGetReturnRequest).Methods("GET").Name("get-return-request")
	returnRouter.HandleFunc("", HandleUpdateReturnRequest).Methods("PATCH").Name("update-return-request")

	resolutionRouter := returnRouter.PathPrefix("/resolution").Subrouter()
	resolutionRouter.HandleFunc("", HandleCreateResolution).Methods("POST").Name("create-resolution")

	// Set middleware for subrouters
	rootReturnsRouter.Use(log.Handler, interceptors.UserAuthenticationInterceptor)
	returnRouter.Use(ra.ReturnAuthenticationIntercept)
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
