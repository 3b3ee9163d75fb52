package dto

import (
	"campsite/internal/domains/booking/model"
	"campsite/shared/constant"
	"campsite/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	AccommodationTypeID string  `json:"accommodation_type_id" validate:"required"`
	GuestDataID         string  `json:"guest_data_id"         validate:"required"`
	StartDate           string  `json:"start_date"            validate:"required,dateonly"`
	EndDate             string  `json:"end_date"              validate:"required,dateonly"`
	NumberNights        int     `json:"number_nights"         validate:"required,gt=0"`
	TotalAmount         float64 `json:"total_amount"          validate:"required,gt=0"`
}

func (c *CreateBookingRequest) ToModel() (model.Booking, error) {
	startDate, err := timezone.Parse(constant.DateOnlyFormat, c.StartDate)
	if err != nil {
		return model.Booking{}, err
	}

	endDate, err := timezone.Parse(constant.DateOnlyFormat, c.EndDate)
	if err != nil {
		return model.Booking{}, err
	}

	return model.Booking{
		ID:                  uuid.NewString(),
		PublicOrderID:       model.NewPublicOrderID(),
		AccommodationTypeID: c.AccommodationTypeID,
		GuestDataID:         c.GuestDataID,
		StartDate:           startDate,
		EndDate:             endDate,
		NumberNights:        c.NumberNights,
		TotalAmount:         c.TotalAmount,
		Status:              model.StatusPending,
		CreatedAt:           timezone.Now(),
		UpdatedAt:           timezone.Now(),
	}, nil
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled failed"`
}

type BookingResponse struct {
	ID                  string  `json:"id"`
	PublicOrderID       string  `json:"public_order_id"`
	AccommodationTypeID string  `json:"accommodation_type_id"`
	GuestDataID         string  `json:"guest_data_id"`
	StartDate           string  `json:"start_date"`
	EndDate             string  `json:"end_date"`
	NumberNights        int     `json:"number_nights"`
	TotalAmount         float64 `json:"total_amount"`
	Status              string  `json:"status"`
	CreatedAt           string  `json:"created_at"`
	UpdatedAt           string  `json:"updated_at"`
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.PublicOrderID = model.PublicOrderID
	r.AccommodationTypeID = model.AccommodationTypeID
	r.GuestDataID = model.GuestDataID
	r.StartDate = model.StartDate.Format(constant.DateOnlyFormat)
	r.EndDate = model.EndDate.Format(constant.DateOnlyFormat)
	r.NumberNights = model.NumberNights
	r.TotalAmount = model.TotalAmount
	r.Status = model.Status
	r.CreatedAt = timezone.Format(model.CreatedAt, time.RFC3339)
	r.UpdatedAt = timezone.Format(model.UpdatedAt, time.RFC3339)
}

type GetBookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking) {
	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
