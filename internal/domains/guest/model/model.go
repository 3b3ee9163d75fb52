package model

const (
	TableName  = "guest_data"
	EntityName = "guest"

	FieldID          = "id"
	FieldName        = "name"
	FieldSurname     = "surname"
	FieldEmail       = "email"
	FieldNumberPhone = "number_phone"
)

type GuestData struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Surname     string `db:"surname"`
	Email       string `db:"email"`
	NumberPhone string `db:"number_phone"`
}
