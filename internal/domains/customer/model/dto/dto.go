package dto

import (
	"time"

	"hotelier/internal/domains/customer/model"
	"hotelier/shared"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"

	"github.com/google/uuid"
)

type CreateCustomerRequest struct {
	FullName     string `json:"full_name"     validate:"required,max=255"`
	BirthDate    string `json:"birth_date"    validate:"omitempty,datetime=2006-01-02"`
	IdentityType string `json:"identity_type" validate:"omitempty,oneof=CCCD PASSPORT DRIVER_LICENSE"`
	IdentityCard string `json:"identity_card" validate:"omitempty,max=50"`
	Phone        string `json:"phone"         validate:"omitempty,max=20"`
	Email        string `json:"email"         validate:"omitempty,email,max=255"`
	Address      string `json:"address"       validate:"omitempty,max=500"`
	LicensePlate string `json:"license_plate" validate:"omitempty,max=50"`
	Type         string `json:"type"          validate:"omitempty,oneof=INDIVIDUAL COMPANY"`
}

func (c *CreateCustomerRequest) ToModel(user string) model.Customer {
	var identityCard *string
	if c.IdentityCard != "" {
		identityCard = &c.IdentityCard
	}

	return model.Customer{
		ID:           uuid.NewString(),
		FullName:     c.FullName,
		BirthDate:    parseBirthDate(c.BirthDate),
		IdentityType: defaultString(c.IdentityType, constant.IdentityTypeNationalID),
		IdentityCard: identityCard,
		Phone:        c.Phone,
		Email:        c.Email,
		Address:      c.Address,
		LicensePlate: c.LicensePlate,
		Type:         defaultString(c.Type, constant.CustomerTypeIndividual),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateCustomerRequest struct {
	FullName     string `db:"full_name"     json:"full_name"     validate:"omitempty,max=255"`
	BirthDate    string `db:"birth_date"    json:"birth_date"    validate:"omitempty,datetime=2006-01-02"`
	IdentityType string `db:"identity_type" json:"identity_type" validate:"omitempty,oneof=CCCD PASSPORT DRIVER_LICENSE"`
	Phone        string `db:"phone"         json:"phone"         validate:"omitempty,max=20"`
	Email        string `db:"email"         json:"email"         validate:"omitempty,email,max=255"`
	Address      string `db:"address"       json:"address"       validate:"omitempty,max=500"`
	LicensePlate string `db:"license_plate" json:"license_plate" validate:"omitempty,max=50"`
}

type CustomerResponse struct {
	ID           string  `json:"id"`
	FullName     string  `json:"full_name"`
	BirthDate    *string `json:"birth_date,omitempty"`
	IdentityType string  `json:"identity_type"`
	IdentityCard *string `json:"identity_card,omitempty"`
	Phone        string  `json:"phone"`
	Email        string  `json:"email"`
	Address      string  `json:"address"`
	LicensePlate string  `json:"license_plate,omitempty"`
	Type         string  `json:"type"`
	gDto.Metadata
}

func (r *CustomerResponse) FromModel(mod model.Customer) {
	r.ID = mod.ID
	r.FullName = mod.FullName
	r.IdentityType = mod.IdentityType
	r.IdentityCard = mod.IdentityCard
	r.Phone = mod.Phone
	r.Email = mod.Email
	r.Address = mod.Address
	r.LicensePlate = mod.LicensePlate
	r.Type = mod.Type
	r.Metadata.FromModel(mod.Metadata)

	if mod.BirthDate != nil {
		formatted := mod.BirthDate.Format(constant.DateOnlyFormat)
		r.BirthDate = &formatted
	}
}

type GetCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetCustomersResponse) FromModels(models []model.Customer, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Customers = make([]CustomerResponse, len(models))
	for i, mod := range models {
		r.Customers[i].FromModel(mod)
	}
}

func parseBirthDate(value string) *time.Time {
	if value == "" {
		return nil
	}

	parsed, err := timezone.Parse(constant.DateOnlyFormat, value)
	if err != nil {
		return nil
	}

	return &parsed
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}
