package models

import "time"

// OrderResourceDB is the order document as stored by the order service. This
// service reads orders to validate returns and inserts fresh documents for
// replacement orders; it never mutates an existing order.
type OrderResourceDB struct {
	ID               string        `bson:"_id"`
	CreatedAt        time.Time     `bson:"created_at"`
	CustomerID       string        `bson:"customer_id"`
	Status           string        `bson:"status"`
	Prepaid          bool          `bson:"prepaid"`
	PaymentCaptureID string        `bson:"payment_capture_id,omitempty"`
	TotalAmount      string        `bson:"total_amount"`
	Lines            []OrderLineDB `bson:"lines"`
	ShippingAddress  AddressDB     `bson:"shipping_address"`
}

// OrderLineDB is a single ordered line with a stable line id
type OrderLineDB struct {
	LineID    string `bson:"line_id"`
	ProductID string `bson:"product_id"`
	Quantity  int    `bson:"quantity"`
	UnitPrice string `bson:"unit_price"`
}

// AddressDB is a shipping address subdocument
type AddressDB struct {
	Line1      string `bson:"line_1"`
	Line2      string `bson:"line_2,omitempty"`
	City       string `bson:"city"`
	Region     string `bson:"region,omitempty"`
	PostalCode string `bson:"postal_code"`
	Country    string `bson:"country"`
}
