package model

import (
	"time"

	"hotelier/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID               = "id"
	FieldCode             = "code"
	FieldBranchID         = "branch_id"
	FieldCustomerID       = "customer_id"
	FieldBookingType      = "booking_type"
	FieldStatus           = "status"
	FieldCheckInExpected  = "check_in_expected"
	FieldCheckOutExpected = "check_out_expected"
	FieldCheckInActual    = "check_in_actual"
	FieldCheckOutActual   = "check_out_actual"
	FieldNotes            = "notes"
	FieldTotal            = "total"
)

// Booking is one stay: a guest, one or more rooms, and a billing lifecycle.
// Monetary fields are filled at checkout, never before.
type Booking struct {
	ID               string     `db:"id"`
	Code             string     `db:"code"`
	BranchID         string     `db:"branch_id"`
	CustomerID       string     `db:"customer_id"`
	BookingType      string     `db:"booking_type"`
	Status           string     `db:"status"`
	CheckInExpected  *time.Time `db:"check_in_expected"`
	CheckOutExpected *time.Time `db:"check_out_expected"`
	CheckInActual    *time.Time `db:"check_in_actual"`
	CheckOutActual   *time.Time `db:"check_out_actual"`
	Notes            string     `db:"notes"`
	Total            int64      `db:"total"`

	CustomerName string `db:"customer_name" table:"customers" column:"full_name"`
	BranchName   string `db:"branch_name"   table:"branches"  column:"name"`

	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return "JOIN customers ON customers.id = bookings.customer_id JOIN branches ON branches.id = bookings.branch_id"
}
