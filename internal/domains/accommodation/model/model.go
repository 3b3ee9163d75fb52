package model

const (
	TableName  = "accommodation_types"
	EntityName = "accommodation type"

	FieldID          = "id"
	FieldName        = "name"
	FieldCode        = "code"
	FieldBasePrice   = "base_price"
	FieldCapacity    = "capacity"
	FieldDescription = "description"
	FieldIsActive    = "is_active"
)

type AccommodationType struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Code        string `db:"code"`
	BasePrice   int    `db:"base_price"`
	Capacity    int    `db:"capacity"`
	Description string `db:"description"`
	IsActive    bool   `db:"is_active"`
}
