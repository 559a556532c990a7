package model

import "hotelier/shared/model"

const (
	TableName  = "room_classes"
	EntityName = "room_class"

	FieldID              = "id"
	FieldBranchID        = "branch_id"
	FieldName            = "name"
	FieldHourlyRate      = "hourly_rate"
	FieldDailyRate       = "daily_rate"
	FieldOvernightRate   = "overnight_rate"
	FieldEarlyCheckInFee = "early_checkin_fee"
	FieldLateCheckOutFee = "late_checkout_fee"
	FieldCapacity        = "capacity"
	FieldActive          = "active"
)

// RoomClass is the rate table for a tier of rooms. Rates are stored in the
// smallest currency unit and copied onto stays at check-in time, so later
// edits never reprice an open stay. The early and late fees are informational
// for the front desk; checkout never bills them.
type RoomClass struct {
	ID              string `db:"id"`
	BranchID        string `db:"branch_id"`
	Name            string `db:"name"`
	HourlyRate      int64  `db:"hourly_rate"`
	DailyRate       int64  `db:"daily_rate"`
	OvernightRate   int64  `db:"overnight_rate"`
	EarlyCheckInFee int64  `db:"early_checkin_fee"`
	LateCheckOutFee int64  `db:"late_checkout_fee"`
	Capacity        int    `db:"capacity"`
	Active          bool   `db:"active"`
	model.Metadata
}
