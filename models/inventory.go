package models

import "time"

// InventoryResourceDB is the stock record for a product. The only write this
// service performs against it is the restock quantity increment.
type InventoryResourceDB struct {
	ProductID string    `bson:"_id"`
	Quantity  int       `bson:"quantity"`
	UpdatedAt time.Time `bson:"updated_at,omitempty"`
}
