package dto

import (
	"campsite/internal/domains/guest/model"

	"github.com/google/uuid"
)

type CreateGuestRequest struct {
	Name        string `json:"name"         validate:"required,max=255"`
	Surname     string `json:"surname"      validate:"required,max=255"`
	Email       string `json:"email"        validate:"required,email,max=255"`
	NumberPhone string `json:"number_phone" validate:"required,max=20"`
}

func (c *CreateGuestRequest) ToModel() model.GuestData {
	return model.GuestData{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Surname:     c.Surname,
		Email:       c.Email,
		NumberPhone: c.NumberPhone,
	}
}

type GuestResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Surname     string `json:"surname"`
	Email       string `json:"email"`
	NumberPhone string `json:"number_phone"`
}

func (r *GuestResponse) FromModel(model model.GuestData) {
	r.ID = model.ID
	r.Name = model.Name
	r.Surname = model.Surname
	r.Email = model.Email
	r.NumberPhone = model.NumberPhone
}

type GetGuestsResponse struct {
	Guests []GuestResponse `json:"guests"`
}

func (r *GetGuestsResponse) FromModels(models []model.GuestData) {
	r.Guests = make([]GuestResponse, len(models))
	for i, mod := range models {
		r.Guests[i].FromModel(mod)
	}
}
