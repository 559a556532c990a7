package model

import (
	"time"

	"hotelier/shared/model"
)

const (
	LogTableName  = "maintenance_logs"
	LogEntityName = "maintenance_log"

	FieldLogDeviceID = "device_id"
)

// MaintenanceLog records one service visit. A log with a cost produces a
// matching payment in the cash ledger.
type MaintenanceLog struct {
	ID          string    `db:"id"`
	DeviceID    string    `db:"device_id"`
	Description string    `db:"description"`
	Cost        int64     `db:"cost"`
	PerformedAt time.Time `db:"performed_at"`
	model.Metadata
}
