package models

import "time"

// IncomingReturnRequest is the data received in the body of a create return request
type IncomingReturnRequest struct {
	OrderID             string               `json:"order_id" validate:"required"`
	Reason              string               `json:"reason" validate:"required"`
	ReasonDetail        string               `json:"reason_detail"`
	ProofImages         []string             `json:"proof_images"`
	PreferredResolution string               `json:"preferred_resolution"`
	Items               []IncomingReturnItem `json:"items" validate:"required,min=1,dive"`
}

// IncomingReturnItem is a single order line requested for return
type IncomingReturnItem struct {
	OrderLineID string `json:"order_line_id" validate:"required"`
	Quantity    int    `json:"quantity"`
}

// IncomingReturnUpdate is the data received in the body of an update return request
type IncomingReturnUpdate struct {
	Status        string                     `json:"status,omitempty"`
	StaffComments string                     `json:"staff_comments,omitempty"`
	Items         []IncomingReturnItemUpdate `json:"items,omitempty" validate:"omitempty,dive"`
}

// IncomingReturnItemUpdate is a single entry in the item batch of an update request
type IncomingReturnItemUpdate struct {
	ItemID           string `json:"item_id" validate:"required"`
	QuantityReceived *int   `json:"quantity_received,omitempty"`
	Condition        string `json:"condition,omitempty"`
	Disposition      string `json:"disposition,omitempty"`
	TrackingNumber   string `json:"tracking_number,omitempty"`
	ShippingLabelRef string `json:"shipping_label_ref,omitempty"`
}

// IncomingResolutionRequest is the data received in the body of a resolve request
type IncomingResolutionRequest struct {
	Type             string                    `json:"resolution_type" validate:"required"`
	Notes            string                    `json:"notes,omitempty"`
	RefundAmount     string                    `json:"refund_amount,omitempty"`
	ReplacementItems []IncomingReplacementItem `json:"replacement_items,omitempty" validate:"omitempty,dive"`
}

// IncomingReplacementItem is a single line of a replacement order
type IncomingReplacementItem struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
	UnitPrice string `json:"unit_price" validate:"required"`
}

// ReturnRequestResourceRest is the public facing return request, returned in responses
type ReturnRequestResourceRest struct {
	Reference           string                   `json:"reference"`
	OrderID             string                   `json:"order_id"`
	CustomerID          string                   `json:"customer_id"`
	Status              string                   `json:"status"`
	Reason              string                   `json:"reason"`
	ReasonDetail        string                   `json:"reason_detail,omitempty"`
	ProofImages         []string                 `json:"proof_images,omitempty"`
	PreferredResolution string                   `json:"preferred_resolution,omitempty"`
	StaffComments       string                   `json:"staff_comments,omitempty"`
	ReviewedBy          string                   `json:"reviewed_by,omitempty"`
	ReviewedAt          *time.Time               `json:"reviewed_at,omitempty"`
	RequestedAt         time.Time                `json:"requested_at"`
	Items               []ReturnItemResourceRest `json:"items"`
	Resolution          *ReturnResolutionRest    `json:"resolution,omitempty"`
	MetaData            ReturnMetaDataRest       `json:"-"`
}

// ReturnMetaDataRest is internal data not to be returned in responses
type ReturnMetaDataRest struct {
	ID   string `json:"id"`
	Etag string `json:"etag"`
	Kind string `json:"kind"`
}

// ReturnItemResourceRest is the public facing return item
type ReturnItemResourceRest struct {
	ItemID            string     `json:"item_id"`
	OrderLineID       string     `json:"order_line_id"`
	ProductID         string     `json:"product_id"`
	QuantityRequested int        `json:"quantity_requested"`
	QuantityReceived  *int       `json:"quantity_received,omitempty"`
	ReceivedAt        *time.Time `json:"received_at,omitempty"`
	Condition         string     `json:"condition,omitempty"`
	ConditionSetBy    string     `json:"condition_set_by,omitempty"`
	ConditionSetAt    *time.Time `json:"condition_set_at,omitempty"`
	Disposition       string     `json:"disposition,omitempty"`
	DispositionSetBy  string     `json:"disposition_set_by,omitempty"`
	DispositionSetAt  *time.Time `json:"disposition_set_at,omitempty"`
	TrackingNumber    string     `json:"tracking_number,omitempty"`
	ShippingLabelRef  string     `json:"shipping_label_ref,omitempty"`
}

// ReturnResolutionRest is the public facing resolution
type ReturnResolutionRest struct {
	ID                  string    `json:"id"`
	Type                string    `json:"type"`
	Status              string    `json:"status"`
	ResolvedBy          string    `json:"resolved_by"`
	ResolvedAt          time.Time `json:"resolved_at"`
	Notes               string    `json:"notes,omitempty"`
	RefundAmount        string    `json:"refund_amount,omitempty"`
	RefundTransactionID string    `json:"refund_transaction_id,omitempty"`
	ReplacementOrderID  string    `json:"replacement_order_id,omitempty"`
	CreditCode          string    `json:"credit_code,omitempty"`
	CreditAmount        string    `json:"credit_amount,omitempty"`
	ExchangeNotes       string    `json:"exchange_notes,omitempty"`
}

// ReturnRequestListRest is the list response
type ReturnRequestListRest struct {
	Total   int                         `json:"total"`
	Returns []ReturnRequestResourceRest `json:"returns"`
}
