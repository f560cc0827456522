package models

import "time"

// ReturnRequestResourceDB contains all return request details to be stored in the DB
type ReturnRequestResourceDB struct {
	ID                  string              `bson:"_id"`
	Reference           string              `bson:"reference"`
	OrderID             string              `bson:"order_id"`
	CustomerID          string              `bson:"customer_id"`
	Status              string              `bson:"status"`
	Reason              string              `bson:"reason"`
	ReasonDetail        string              `bson:"reason_detail,omitempty"`
	ProofImages         []string            `bson:"proof_images,omitempty"`
	PreferredResolution string              `bson:"preferred_resolution,omitempty"`
	StaffComments       string              `bson:"staff_comments,omitempty"`
	ReviewedBy          string              `bson:"reviewed_by,omitempty"`
	ReviewedAt          *time.Time          `bson:"reviewed_at,omitempty"`
	RequestedAt         time.Time           `bson:"requested_at"`
	Resolution          *ReturnResolutionDB `bson:"resolution,omitempty"`
	Etag                string              `bson:"etag"`
	Kind                string              `bson:"kind"`
}

// ReturnItemResourceDB is a single returned order line, stored as its own
// document keyed by the parent return request
type ReturnItemResourceDB struct {
	ID                string     `bson:"_id"`
	ReturnRequestID   string     `bson:"return_request_id"`
	OrderLineID       string     `bson:"order_line_id"`
	ProductID         string     `bson:"product_id"`
	QuantityRequested int        `bson:"quantity_requested"`
	QuantityReceived  *int       `bson:"quantity_received,omitempty"`
	ReceivedAt        *time.Time `bson:"received_at,omitempty"`
	Condition         string     `bson:"condition,omitempty"`
	ConditionSetBy    string     `bson:"condition_set_by,omitempty"`
	ConditionSetAt    *time.Time `bson:"condition_set_at,omitempty"`
	Disposition       string     `bson:"disposition,omitempty"`
	DispositionSetBy  string     `bson:"disposition_set_by,omitempty"`
	DispositionSetAt  *time.Time `bson:"disposition_set_at,omitempty"`
	TrackingNumber    string     `bson:"tracking_number,omitempty"`
	ShippingLabelRef  string     `bson:"shipping_label_ref,omitempty"`
}

// ReturnResolutionDB is the single compensating action that closes out a
// return request, embedded in the return request document. A failed resolution
// is retried by updating this subdocument, never by adding a second one.
type ReturnResolutionDB struct {
	ID                  string    `bson:"id"`
	Type                string    `bson:"type"`
	Status              string    `bson:"status"`
	ResolvedBy          string    `bson:"resolved_by"`
	ResolvedAt          time.Time `bson:"resolved_at"`
	Notes               string    `bson:"notes,omitempty"`
	RefundAmount        string    `bson:"refund_amount,omitempty"`
	RefundTransactionID string    `bson:"refund_transaction_id,omitempty"`
	ReplacementOrderID  string    `bson:"replacement_order_id,omitempty"`
	CreditCode          string    `bson:"credit_code,omitempty"`
	CreditAmount        string    `bson:"credit_amount,omitempty"`
	ExchangeNotes       string    `bson:"exchange_notes,omitempty"`
}

// ReturnRequestPatchDB carries the return request fields a single update is
// allowed to change
type ReturnRequestPatchDB struct {
	Status        string
	StaffComments string
	ReviewedBy    string
	ReviewedAt    *time.Time
	Etag          string
}

// ReturnItemPatchDB carries the item fields a single batch entry changes.
// Pointer fields are only written when non-nil.
type ReturnItemPatchDB struct {
	ItemID           string
	QuantityReceived *int
	ReceivedAt       *time.Time
	Condition        string
	ConditionSetBy   string
	ConditionSetAt   *time.Time
	Disposition      string
	DispositionSetBy string
	DispositionSetAt *time.Time
	TrackingNumber   string
	ShippingLabelRef string
}

// InventoryAdjustmentDB is a quantity delta applied to an inventory record in
// the same transaction as the item writes that produced it
type InventoryAdjustmentDB struct {
	ProductID string
	Delta     int
}

// ReturnRequestFilter restricts a return request listing
type ReturnRequestFilter struct {
	CustomerID string
	OrderID    string
	Status     string
	ProductIDs []string
}
