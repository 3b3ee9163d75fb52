package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID                  = "id"
	FieldPublicOrderID       = "public_order_id"
	FieldAccommodationTypeID = "accommodation_type_id"
	FieldGuestDataID         = "guest_data_id"
	FieldStartDate           = "start_date"
	FieldEndDate             = "end_date"
	FieldNumberNights        = "number_nights"
	FieldTotalAmount         = "total_amount"
	FieldStatus              = "status"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusFailed    = "failed"
)

const (
	// PublicOrderIDPrefix marks the externally shareable order token. The token
	// is never derived from the internal primary key.
	PublicOrderIDPrefix = "ORDER_"

	publicOrderIDHexLength = 12
)

type Booking struct {
	ID                  string    `db:"id"`
	PublicOrderID       string    `db:"public_order_id"`
	AccommodationTypeID string    `db:"accommodation_type_id"`
	GuestDataID         string    `db:"guest_data_id"`
	StartDate           time.Time `db:"start_date"`
	EndDate             time.Time `db:"end_date"`
	NumberNights        int       `db:"number_nights"`
	TotalAmount         float64   `db:"total_amount"`
	Status              string    `db:"status"`
	CreatedAt           time.Time `db:"created_at"`
	UpdatedAt           time.Time `db:"updated_at"`
}

// NewPublicOrderID generates a fresh public order token: the fixed prefix plus
// the first 12 uppercase hex characters of a random 128-bit identifier.
func NewPublicOrderID() string {
	hexDigits := strings.ReplaceAll(uuid.NewString(), "-", "")

	return PublicOrderIDPrefix + strings.ToUpper(hexDigits[:publicOrderIDHexLength])
}
