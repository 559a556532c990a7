package model

import (
	"time"

	"hotelier/shared/model"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID          = "id"
	FieldBranchID    = "branch_id"
	FieldAreaID      = "area_id"
	FieldRoomClassID = "room_class_id"
	FieldName        = "name"
	FieldStatus      = "status"
	FieldNotes       = "notes"
	FieldActive      = "active"
)

// Room is one rentable unit. Status tracks the physical state of the room and
// is only moved by the booking lifecycle and housekeeping, never directly by
// rate or class edits. Class and area columns are read through the join below.
type Room struct {
	ID          string  `db:"id"`
	BranchID    string  `db:"branch_id"`
	AreaID      *string `db:"area_id"`
	RoomClassID string  `db:"room_class_id"`
	Name        string  `db:"name"`
	Status      string  `db:"status"`
	Notes       string  `db:"notes"`
	Active      bool    `db:"active"`

	ClassName     string  `db:"class_name"     table:"room_classes" column:"name"`
	HourlyRate    int64   `db:"hourly_rate"    table:"room_classes"`
	DailyRate     int64   `db:"daily_rate"     table:"room_classes"`
	OvernightRate int64   `db:"overnight_rate" table:"room_classes"`
	AreaName      *string `db:"area_name"      table:"areas"        column:"name"`

	model.Metadata
}

func (Room) GetJoinQuery() string {
	return "JOIN room_classes ON room_classes.id = rooms.room_class_id LEFT JOIN areas ON areas.id = rooms.area_id"
}

// BoardRow is one line of the front-desk board: a room plus its open stay, if
// any. Booking columns are nil for rooms without a checked-in guest.
type BoardRow struct {
	RoomID        string     `db:"room_id"`
	RoomName      string     `db:"room_name"`
	Status        string     `db:"status"`
	ClassName     string     `db:"class_name"`
	AreaName      *string    `db:"area_name"`
	BookingID     *string    `db:"booking_id"`
	BookingCode   *string    `db:"booking_code"`
	BookingType   *string    `db:"booking_type"`
	GuestName     *string    `db:"guest_name"`
	CheckInActual *time.Time `db:"check_in_actual"`
}
