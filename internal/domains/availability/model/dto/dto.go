package dto

import (
	"campsite/internal/domains/availability/model"
	"campsite/shared/constant"
	"campsite/shared/timezone"
	"time"
)

const (
	MessageNoData = "No availability data found"
)

type AvailabilityResponse struct {
	AccommodationTypeID string `json:"accommodation_type_id"`
	Date                string `json:"date"`
	AvailableQuantity   int    `json:"available_quantity"`
	UpdatedAt           string `json:"updated_at,omitempty"`
	Message             string `json:"message,omitempty"`
}

func (r *AvailabilityResponse) FromModel(model model.AvailabilityCache) {
	r.AccommodationTypeID = model.AccommodationTypeID
	r.Date = model.Date.Format(constant.DateOnlyFormat)
	r.AvailableQuantity = model.AvailableQuantity
	r.UpdatedAt = timezone.Format(model.UpdatedAt, time.RFC3339)
}

// NoData fills the response for a (type, date) pair without a cache row.
// Absence of cache data is not an error condition.
func (r *AvailabilityResponse) NoData(accommodationTypeID string, date time.Time) {
	r.AccommodationTypeID = accommodationTypeID
	r.Date = date.Format(constant.DateOnlyFormat)
	r.AvailableQuantity = 0
	r.Message = MessageNoData
}
