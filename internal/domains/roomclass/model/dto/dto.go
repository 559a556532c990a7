package dto

import (
	"hotelier/internal/domains/roomclass/model"
	"hotelier/shared"
	gDto "hotelier/shared/dto"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomClassRequest struct {
	BranchID        string `json:"branch_id"         validate:"required"`
	Name            string `json:"name"              validate:"required,max=255"`
	HourlyRate      int64  `json:"hourly_rate"       validate:"gte=0"`
	DailyRate       int64  `json:"daily_rate"        validate:"gte=0"`
	OvernightRate   int64  `json:"overnight_rate"    validate:"gte=0"`
	EarlyCheckInFee int64  `json:"early_checkin_fee" validate:"gte=0"`
	LateCheckOutFee int64  `json:"late_checkout_fee" validate:"gte=0"`
	Capacity        int    `json:"capacity"          validate:"omitempty,gte=1"`
}

func (c *CreateRoomClassRequest) ToModel(user string) model.RoomClass {
	capacity := c.Capacity
	if capacity == 0 {
		capacity = 2
	}

	return model.RoomClass{
		ID:              uuid.NewString(),
		BranchID:        c.BranchID,
		Name:            c.Name,
		HourlyRate:      c.HourlyRate,
		DailyRate:       c.DailyRate,
		OvernightRate:   c.OvernightRate,
		EarlyCheckInFee: c.EarlyCheckInFee,
		LateCheckOutFee: c.LateCheckOutFee,
		Capacity:        capacity,
		Active:          true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomClassRequest struct {
	Name            string `db:"name"              json:"name"              validate:"omitempty,max=255"`
	HourlyRate      *int64 `db:"hourly_rate"       json:"hourly_rate"       validate:"omitempty,gte=0"`
	DailyRate       *int64 `db:"daily_rate"        json:"daily_rate"        validate:"omitempty,gte=0"`
	OvernightRate   *int64 `db:"overnight_rate"    json:"overnight_rate"    validate:"omitempty,gte=0"`
	EarlyCheckInFee *int64 `db:"early_checkin_fee" json:"early_checkin_fee" validate:"omitempty,gte=0"`
	LateCheckOutFee *int64 `db:"late_checkout_fee" json:"late_checkout_fee" validate:"omitempty,gte=0"`
	Capacity        *int   `db:"capacity"          json:"capacity"          validate:"omitempty,gte=1"`
	Active          *bool  `db:"active"            json:"active"            validate:"omitempty"`
}

type RoomClassResponse struct {
	ID              string `json:"id"`
	BranchID        string `json:"branch_id"`
	Name            string `json:"name"`
	HourlyRate      int64  `json:"hourly_rate"`
	DailyRate       int64  `json:"daily_rate"`
	OvernightRate   int64  `json:"overnight_rate"`
	EarlyCheckInFee int64  `json:"early_checkin_fee"`
	LateCheckOutFee int64  `json:"late_checkout_fee"`
	Capacity        int    `json:"capacity"`
	Active          bool   `json:"active"`
	gDto.Metadata
}

func (r *RoomClassResponse) FromModel(mod model.RoomClass) {
	r.ID = mod.ID
	r.BranchID = mod.BranchID
	r.Name = mod.Name
	r.HourlyRate = mod.HourlyRate
	r.DailyRate = mod.DailyRate
	r.OvernightRate = mod.OvernightRate
	r.EarlyCheckInFee = mod.EarlyCheckInFee
	r.LateCheckOutFee = mod.LateCheckOutFee
	r.Capacity = mod.Capacity
	r.Active = mod.Active
	r.Metadata.FromModel(mod.Metadata)
}

type GetRoomClassesResponse struct {
	RoomClasses []RoomClassResponse `json:"room_classes"`
	TotalPage   int                 `json:"total_page"`
	TotalData   int                 `json:"total_data"`
}

func (r *GetRoomClassesResponse) FromModels(models []model.RoomClass, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.RoomClasses = make([]RoomClassResponse, len(models))
	for i, mod := range models {
		r.RoomClasses[i].FromModel(mod)
	}
}
