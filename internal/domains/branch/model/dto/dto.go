package dto

import (
	"hotelier/internal/domains/branch/model"
	"hotelier/shared"
	gDto "hotelier/shared/dto"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"

	"github.com/google/uuid"
)

type CreateBranchRequest struct {
	Name    string `json:"name"    validate:"required,max=255"`
	Address string `json:"address" validate:"omitempty,max=500"`
	Phone   string `json:"phone"   validate:"omitempty,max=20"`
}

func (c *CreateBranchRequest) ToModel(user string) model.Branch {
	return model.Branch{
		ID:      uuid.NewString(),
		Name:    c.Name,
		Address: c.Address,
		Phone:   c.Phone,
		Active:  true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateBranchRequest struct {
	Name    string `db:"name"    json:"name"    validate:"omitempty,max=255"`
	Address string `db:"address" json:"address" validate:"omitempty,max=500"`
	Phone   string `db:"phone"   json:"phone"   validate:"omitempty,max=20"`
	Active  *bool  `db:"active"  json:"active"  validate:"omitempty"`
}

type BranchResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Active  bool   `json:"active"`
	gDto.Metadata
}

func (r *BranchResponse) FromModel(mod model.Branch) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.Address = mod.Address
	r.Phone = mod.Phone
	r.Active = mod.Active
	r.Metadata.FromModel(mod.Metadata)
}

type GetBranchesResponse struct {
	Branches  []BranchResponse `json:"branches"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetBranchesResponse) FromModels(models []model.Branch, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Branches = make([]BranchResponse, len(models))
	for i, mod := range models {
		r.Branches[i].FromModel(mod)
	}
}

type CreateAreaRequest struct {
	BranchID string `json:"branch_id" validate:"required"`
	Name     string `json:"name"      validate:"required,max=255"`
}

func (c *CreateAreaRequest) ToModel(user string) model.Area {
	return model.Area{
		ID:       uuid.NewString(),
		BranchID: c.BranchID,
		Name:     c.Name,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type AreaResponse struct {
	ID       string `json:"id"`
	BranchID string `json:"branch_id"`
	Name     string `json:"name"`
}

func (r *AreaResponse) FromModel(mod model.Area) {
	r.ID = mod.ID
	r.BranchID = mod.BranchID
	r.Name = mod.Name
}

type GetAreasResponse struct {
	Areas []AreaResponse `json:"areas"`
}

func (r *GetAreasResponse) FromModels(models []model.Area) {
	r.Areas = make([]AreaResponse, len(models))
	for i, mod := range models {
		r.Areas[i].FromModel(mod)
	}
}
