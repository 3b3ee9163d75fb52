package dto

import (
	"campsite/internal/domains/review/model"
	"campsite/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	ExternalID string `json:"external_id" validate:"required,max=255"`
	AuthorName string `json:"author_name" validate:"required,max=255"`
	AvatarURL  string `json:"avatar_url"  validate:"omitempty,url"`
	Rating     int    `json:"rating"      validate:"required,min=1,max=5"`
	Text       string `json:"text"        validate:"omitempty"`
	CreatedAt  string `json:"created_at"  validate:"required"`
}

func (c *CreateReviewRequest) ToModel() (model.Review, error) {
	createdAt, err := timezone.Parse(time.RFC3339, c.CreatedAt)
	if err != nil {
		return model.Review{}, err
	}

	return model.Review{
		ID:         uuid.NewString(),
		ExternalID: c.ExternalID,
		AuthorName: c.AuthorName,
		AvatarURL:  c.AvatarURL,
		Rating:     c.Rating,
		Text:       c.Text,
		CreatedAt:  createdAt,
		ParsedAt:   timezone.Now(),
		IsApproved: true,
	}, nil
}

type UpdateReviewApprovalRequest struct {
	IsApproved *bool `json:"is_approved" validate:"required"`
}

type ReviewResponse struct {
	ID         string `json:"id"`
	ExternalID string `json:"external_id"`
	AuthorName string `json:"author_name"`
	AvatarURL  string `json:"avatar_url,omitempty"`
	Rating     int    `json:"rating"`
	Text       string `json:"text,omitempty"`
	CreatedAt  string `json:"created_at"`
	ParsedAt   string `json:"parsed_at"`
	IsApproved bool   `json:"is_approved"`
}

func (r *ReviewResponse) FromModel(model model.Review) {
	r.ID = model.ID
	r.ExternalID = model.ExternalID
	r.AuthorName = model.AuthorName
	r.AvatarURL = model.AvatarURL
	r.Rating = model.Rating
	r.Text = model.Text
	r.CreatedAt = timezone.Format(model.CreatedAt, time.RFC3339)
	r.ParsedAt = timezone.Format(model.ParsedAt, time.RFC3339)
	r.IsApproved = model.IsApproved
}

type GetReviewsResponse struct {
	Reviews []ReviewResponse `json:"reviews"`
}

func (r *GetReviewsResponse) FromModels(models []model.Review) {
	r.Reviews = make([]ReviewResponse, len(models))
	for i, mod := range models {
		r.Reviews[i].FromModel(mod)
	}
}
