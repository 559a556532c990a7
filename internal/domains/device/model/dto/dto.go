package dto

import (
	"hotelier/internal/domains/device/model"
	"hotelier/shared"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"

	"github.com/google/uuid"
)

type CreateDeviceRequest struct {
	BranchID string  `json:"branch_id" validate:"required"`
	RoomID   *string `json:"room_id"   validate:"omitempty"`
	Name     string  `json:"name"      validate:"required,max=255"`
	Notes    string  `json:"notes"     validate:"omitempty,max=500"`
}

func (c *CreateDeviceRequest) ToModel(user string) model.Device {
	return model.Device{
		ID:       uuid.NewString(),
		BranchID: c.BranchID,
		RoomID:   c.RoomID,
		Name:     c.Name,
		Status:   constant.DeviceStatusGood,
		Notes:    c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateDeviceRequest struct {
	RoomID *string `db:"room_id" json:"room_id" validate:"omitempty"`
	Name   string  `db:"name"    json:"name"    validate:"omitempty,max=255"`
	Status string  `db:"status"  json:"status"  validate:"omitempty,oneof=GOOD BROKEN FIXING"`
	Notes  string  `db:"notes"   json:"notes"   validate:"omitempty,max=500"`
}

type LogMaintenanceRequest struct {
	Description string `json:"description" validate:"required,max=500"`
	Cost        int64  `json:"cost"        validate:"gte=0"`
}

type DeviceResponse struct {
	ID                  string  `json:"id"`
	BranchID            string  `json:"branch_id"`
	RoomID              *string `json:"room_id,omitempty"`
	Name                string  `json:"name"`
	Status              string  `json:"status"`
	LastMaintenanceDate *string `json:"last_maintenance_date,omitempty"`
	Notes               string  `json:"notes,omitempty"`
	gDto.Metadata
}

func (r *DeviceResponse) FromModel(mod model.Device) {
	r.ID = mod.ID
	r.BranchID = mod.BranchID
	r.RoomID = mod.RoomID
	r.Name = mod.Name
	r.Status = mod.Status
	r.Notes = mod.Notes

	if mod.LastMaintenanceDate != nil {
		formatted := timezone.Format(*mod.LastMaintenanceDate, constant.DateOnlyFormat)
		r.LastMaintenanceDate = &formatted
	}

	r.Metadata.FromModel(mod.Metadata)
}

type GetDevicesResponse struct {
	Devices   []DeviceResponse `json:"devices"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetDevicesResponse) FromModels(models []model.Device, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Devices = make([]DeviceResponse, len(models))
	for i, mod := range models {
		r.Devices[i].FromModel(mod)
	}
}

type MaintenanceLogResponse struct {
	ID          string `json:"id"`
	DeviceID    string `json:"device_id"`
	Description string `json:"description"`
	Cost        int64  `json:"cost"`
	PerformedAt string `json:"performed_at"`
}

func (r *MaintenanceLogResponse) FromModel(mod model.MaintenanceLog) {
	r.ID = mod.ID
	r.DeviceID = mod.DeviceID
	r.Description = mod.Description
	r.Cost = mod.Cost
	r.PerformedAt = timezone.Format(mod.PerformedAt, constant.DateFormat)
}

type GetMaintenanceLogsResponse struct {
	Logs []MaintenanceLogResponse `json:"logs"`
}

func (r *GetMaintenanceLogsResponse) FromModels(models []model.MaintenanceLog) {
	r.Logs = make([]MaintenanceLogResponse, len(models))
	for i, mod := range models {
		r.Logs[i].FromModel(mod)
	}
}
