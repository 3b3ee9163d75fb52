package model

import (
	"time"
)

const (
	TableName  = "availability_cache"
	EntityName = "availability"

	FieldID                  = "id"
	FieldAccommodationTypeID = "accommodation_type_id"
	FieldDate                = "date"
	FieldAvailableQuantity   = "available_quantity"
	FieldUpdatedAt           = "updated_at"
)

// AvailabilityCache rows are maintained by an external feed; this service only
// reads them.
type AvailabilityCache struct {
	ID                  string    `db:"id"`
	AccommodationTypeID string    `db:"accommodation_type_id"`
	Date                time.Time `db:"date"`
	AvailableQuantity   int       `db:"available_quantity"`
	UpdatedAt           time.Time `db:"updated_at"`
}
