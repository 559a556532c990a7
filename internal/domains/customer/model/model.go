package model

import (
	"time"

	"hotelier/shared/model"
)

const (
	TableName  = "customers"
	EntityName = "customer"

	FieldID           = "id"
	FieldFullName     = "full_name"
	FieldBirthDate    = "birth_date"
	FieldIdentityType = "identity_type"
	FieldIdentityCard = "identity_card"
	FieldPhone        = "phone"
	FieldEmail        = "email"
	FieldAddress      = "address"
	FieldLicensePlate = "license_plate"
	FieldType         = "type"
)

// Customer is a registered guest. IdentityCard is the natural key for
// returning guests; walk-ins without papers get a fresh row every time.
type Customer struct {
	ID           string     `db:"id"`
	FullName     string     `db:"full_name"`
	BirthDate    *time.Time `db:"birth_date"`
	IdentityType string     `db:"identity_type"`
	IdentityCard *string    `db:"identity_card"`
	Phone        string     `db:"phone"`
	Email        string     `db:"email"`
	Address      string     `db:"address"`
	LicensePlate string     `db:"license_plate"`
	Type         string     `db:"type"`
	model.Metadata
}
