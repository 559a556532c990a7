package model

import "hotelier/shared/model"

const (
	CompanionTableName  = "booking_companions"
	CompanionEntityName = "booking_companion"

	FieldCompanionBookingID = "booking_id"
)

// Companion is an extra guest sharing the stay. Companions hang off the
// booking directly, they are never nested under each other.
type Companion struct {
	ID           string  `db:"id"`
	BookingID    string  `db:"booking_id"`
	FullName     string  `db:"full_name"`
	IdentityCard *string `db:"identity_card"`
	model.Metadata
}
