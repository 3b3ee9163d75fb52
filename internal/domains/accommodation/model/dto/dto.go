package dto

import (
	"campsite/internal/domains/accommodation/model"

	"github.com/google/uuid"
)

type CreateAccommodationTypeRequest struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Code        string `json:"code"        validate:"required,max=50"`
	BasePrice   int    `json:"base_price"  validate:"required,gt=0"`
	Capacity    int    `json:"capacity"    validate:"required,gt=0,lte=32767"`
	Description string `json:"description" validate:"omitempty"`
	IsActive    *bool  `json:"is_active"   validate:"omitempty"`
}

func (c *CreateAccommodationTypeRequest) ToModel() model.AccommodationType {
	isActive := true
	if c.IsActive != nil {
		isActive = *c.IsActive
	}

	return model.AccommodationType{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Code:        c.Code,
		BasePrice:   c.BasePrice,
		Capacity:    c.Capacity,
		Description: c.Description,
		IsActive:    isActive,
	}
}

type AccommodationTypeResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code"`
	BasePrice   int    `json:"base_price"`
	Capacity    int    `json:"capacity"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"is_active"`
}

func (r *AccommodationTypeResponse) FromModel(model model.AccommodationType) {
	r.ID = model.ID
	r.Name = model.Name
	r.Code = model.Code
	r.BasePrice = model.BasePrice
	r.Capacity = model.Capacity
	r.Description = model.Description
	r.IsActive = model.IsActive
}

type GetAccommodationTypesResponse struct {
	AccommodationTypes []AccommodationTypeResponse `json:"accommodation_types"`
}

func (r *GetAccommodationTypesResponse) FromModels(models []model.AccommodationType) {
	r.AccommodationTypes = make([]AccommodationTypeResponse, len(models))
	for i, mod := range models {
		r.AccommodationTypes[i].FromModel(mod)
	}
}
