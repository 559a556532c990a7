package model

import "hotelier/shared/model"

const (
	RoomTableName  = "booking_rooms"
	RoomEntityName = "booking_room"

	FieldRoomBookingID = "booking_id"
	FieldRoomRoomID    = "room_id"
	FieldRateSnapshot  = "rate_snapshot"
	FieldCharge        = "charge"
)

// BookingRoom ties one room to a stay. RateSnapshot is frozen when the stay is
// opened; Charge and Hours are written once at checkout.
type BookingRoom struct {
	ID           string `db:"id"`
	BookingID    string `db:"booking_id"`
	RoomID       string `db:"room_id"`
	RateSnapshot int64  `db:"rate_snapshot"`
	Charge       int64  `db:"charge"`
	Hours        int    `db:"hours"`

	RoomName  string `db:"room_name"  table:"rooms"        column:"name"`
	ClassName string `db:"class_name" table:"room_classes" column:"name"`

	model.Metadata
}

func (BookingRoom) GetJoinQuery() string {
	return "JOIN rooms ON rooms.id = booking_rooms.room_id JOIN room_classes ON room_classes.id = rooms.room_class_id"
}
