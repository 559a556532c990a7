package model

import (
	"time"

	"hotelier/shared/model"
)

const (
	TableName  = "devices"
	EntityName = "device"

	FieldID                  = "id"
	FieldBranchID            = "branch_id"
	FieldRoomID              = "room_id"
	FieldName                = "name"
	FieldStatus              = "status"
	FieldLastMaintenanceDate = "last_maintenance_date"
)

// Device is a piece of equipment tracked for upkeep, either inside a room or
// in a common area.
type Device struct {
	ID                  string     `db:"id"`
	BranchID            string     `db:"branch_id"`
	RoomID              *string    `db:"room_id"`
	Name                string     `db:"name"`
	Status              string     `db:"status"`
	LastMaintenanceDate *time.Time `db:"last_maintenance_date"`
	Notes               string     `db:"notes"`
	model.Metadata
}
