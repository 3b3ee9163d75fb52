package model

import (
	"time"
)

const (
	TableName  = "reviews"
	EntityName = "review"

	FieldID         = "id"
	FieldExternalID = "external_id"
	FieldAuthorName = "author_name"
	FieldAvatarURL  = "avatar_url"
	FieldRating     = "rating"
	FieldText       = "text"
	FieldCreatedAt  = "created_at"
	FieldParsedAt   = "parsed_at"
	FieldIsApproved = "is_approved"
)

type Review struct {
	ID         string    `db:"id"`
	ExternalID string    `db:"external_id"`
	AuthorName string    `db:"author_name"`
	AvatarURL  string    `db:"avatar_url"`
	Rating     int       `db:"rating"`
	Text       string    `db:"text"`
	CreatedAt  time.Time `db:"created_at"`
	ParsedAt   time.Time `db:"parsed_at"`
	IsApproved bool      `db:"is_approved"`
}
