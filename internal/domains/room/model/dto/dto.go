package dto

import (
	"hotelier/internal/domains/room/model"
	"hotelier/shared"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	BranchID    string  `json:"branch_id"     validate:"required"`
	AreaID      *string `json:"area_id"       validate:"omitempty"`
	RoomClassID string  `json:"room_class_id" validate:"required"`
	Name        string  `json:"name"          validate:"required,max=50"`
	Notes       string  `json:"notes"         validate:"omitempty,max=500"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	return model.Room{
		ID:          uuid.NewString(),
		BranchID:    c.BranchID,
		AreaID:      c.AreaID,
		RoomClassID: c.RoomClassID,
		Name:        c.Name,
		Status:      constant.RoomStatusAvailable,
		Notes:       c.Notes,
		Active:      true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	AreaID      *string `db:"area_id"       json:"area_id"       validate:"omitempty"`
	RoomClassID string  `db:"room_class_id" json:"room_class_id" validate:"omitempty"`
	Name        string  `db:"name"          json:"name"          validate:"omitempty,max=50"`
	Notes       string  `db:"notes"         json:"notes"         validate:"omitempty,max=500"`
	Active      *bool   `db:"active"        json:"active"        validate:"omitempty"`
}

type UpdateRoomStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=AVAILABLE DIRTY FIXING"`
}

type RoomResponse struct {
	ID            string  `json:"id"`
	BranchID      string  `json:"branch_id"`
	AreaID        *string `json:"area_id,omitempty"`
	AreaName      *string `json:"area_name,omitempty"`
	RoomClassID   string  `json:"room_class_id"`
	ClassName     string  `json:"class_name"`
	Name          string  `json:"name"`
	Status        string  `json:"status"`
	Notes         string  `json:"notes,omitempty"`
	Active        bool    `json:"active"`
	HourlyRate    int64   `json:"hourly_rate"`
	DailyRate     int64   `json:"daily_rate"`
	OvernightRate int64   `json:"overnight_rate"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(mod model.Room) {
	r.ID = mod.ID
	r.BranchID = mod.BranchID
	r.AreaID = mod.AreaID
	r.AreaName = mod.AreaName
	r.RoomClassID = mod.RoomClassID
	r.ClassName = mod.ClassName
	r.Name = mod.Name
	r.Status = mod.Status
	r.Notes = mod.Notes
	r.Active = mod.Active
	r.HourlyRate = mod.HourlyRate
	r.DailyRate = mod.DailyRate
	r.OvernightRate = mod.OvernightRate
	r.Metadata.FromModel(mod.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

type BoardItemResponse struct {
	RoomID        string     `json:"room_id"`
	RoomName      string     `json:"room_name"`
	Status        string     `json:"status"`
	ClassName     string     `json:"class_name"`
	AreaName      *string    `json:"area_name,omitempty"`
	BookingID     *string    `json:"booking_id,omitempty"`
	BookingCode   *string    `json:"booking_code,omitempty"`
	BookingType   *string    `json:"booking_type,omitempty"`
	GuestName     *string    `json:"guest_name,omitempty"`
	CheckInActual *string    `json:"check_in_actual,omitempty"`
}

func (r *BoardItemResponse) FromModel(mod model.BoardRow) {
	r.RoomID = mod.RoomID
	r.RoomName = mod.RoomName
	r.Status = mod.Status
	r.ClassName = mod.ClassName
	r.AreaName = mod.AreaName
	r.BookingID = mod.BookingID
	r.BookingCode = mod.BookingCode
	r.BookingType = mod.BookingType
	r.GuestName = mod.GuestName

	if mod.CheckInActual != nil {
		formatted := timezone.Format(*mod.CheckInActual, constant.DateFormat)
		r.CheckInActual = &formatted
	}
}

type GetBoardResponse struct {
	Board []BoardItemResponse `json:"board"`
}

func (r *GetBoardResponse) FromModels(models []model.BoardRow) {
	r.Board = make([]BoardItemResponse, len(models))
	for i, mod := range models {
		r.Board[i].FromModel(mod)
	}
}
