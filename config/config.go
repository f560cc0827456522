// Package config defines the environment variable and command-line flags
// supported by this service and includes default values for particular
// fields.
package config

import (
	"sync"

	"github.com/companieshouse/gofigure"
)

var cfg *Config
var mtx sync.Mutex

// Config defines the configuration options for this service.
type Config struct {
	BindAddr              string `env:"BIND_ADDR"                       flag:"bind-addr"                       flagDesc:"Bind address"`
	MongoDBURL            string `env:"MONGODB_URL"                     flag:"mongodb-url"                     flagDesc:"MongoDB server URL"`
	Database              string `env:"MONGODB_DATABASE"                flag:"mongodb-database"                flagDesc:"MongoDB database for data"`
	ReturnsCollection     string `env:"MONGODB_RETURNS_COLLECTION"      flag:"mongodb-returns-collection"      flagDesc:"MongoDB collection for return requests"`
	ReturnItemsCollection string `env:"MONGODB_RETURN_ITEMS_COLLECTION" flag:"mongodb-return-items-collection" flagDesc:"MongoDB collection for return items"`
	OrdersCollection      string `env:"MONGODB_ORDERS_COLLECTION"       flag:"mongodb-orders-collection"       flagDesc:"MongoDB collection for orders"`
	InventoryCollection   string `env:"MONGODB_INVENTORY_COLLECTION"    flag:"mongodb-inventory-collection"    flagDesc:"MongoDB collection for inventory records"`
	SequencesCollection   string `env:"MONGODB_SEQUENCES_COLLECTION"    flag:"mongodb-sequences-collection"    flagDesc:"MongoDB collection for reference number sequences"`
	ReturnWindowDays      int    `env:"RETURN_WINDOW_DAYS"              flag:"return-window-days"              flagDesc:"Days after order creation during which a return may be requested"`
	ReturnReferencePrefix string `env:"RETURN_REFERENCE_PREFIX"         flag:"return-reference-prefix"         flagDesc:"Prefix for human readable return reference numbers"`
	StoreCreditAmount     string `env:"STORE_CREDIT_AMOUNT"             flag:"store-credit-amount"             flagDesc:"Fixed amount issued for store credit resolutions"`
	PaypalEnv             string `env:"PAYPAL_ENV"                      flag:"paypal-env"                      flagDesc:"PayPal environment (live or test)"`
	PaypalClientID        string `env:"PAYPAL_CLIENT_ID"                flag:"paypal-client-id"                flagDesc:"Client ID used to authenticate API calls with PayPal"`
	PaypalSecret          string `env:"PAYPAL_SECRET"                   flag:"paypal-secret"                   flagDesc:"Secret used to authenticate API calls with PayPal"`
	CreditAPIURL          string `env:"CREDIT_API_URL"                  flag:"credit-api-url"                  flagDesc:"URL used to make calls to the credit issuing service"`
	CreditAPIBearerToken  string `env:"CREDIT_API_BEARER_TOKEN"         flag:"credit-api-bearer-token"         flagDesc:"Bearer Token used to authenticate API calls with the credit issuing service"`
	NotificationAPIURL    string `env:"NOTIFICATION_API_URL"            flag:"notification-api-url"            flagDesc:"URL used to make calls to the notification service"`
	NotificationAPIToken  string `env:"NOTIFICATION_API_BEARER_TOKEN"   flag:"notification-api-bearer-token"   flagDesc:"Bearer Token used to authenticate API calls with the notification service"`
}

// DefaultConfig returns a pointer to a Config instance that has been populated
// with default values.
func DefaultConfig() *Config {
	return &Config{
		Database:              "returns",
		ReturnsCollection:     "returns",
		ReturnItemsCollection: "return_items",
		OrdersCollection:      "orders",
		InventoryCollection:   "inventory",
		SequencesCollection:   "sequences",
		ReturnWindowDays:      30,
		ReturnReferencePrefix: "RTN",
		StoreCreditAmount:     "20.00",
	}
}

// Get returns a pointer to a Config instance that has been populated with
// values provided by the environment or command-line flags, or with default
// values if none are provided.
func Get() (*Config, error) {
	mtx.Lock()
	defer mtx.Unlock()

	if cfg != nil {
		return cfg, nil
	}

	cfg = DefaultConfig()

	err := gofigure.Gofigure(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
