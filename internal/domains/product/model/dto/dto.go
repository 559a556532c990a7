package dto

import (
	"hotelier/internal/domains/product/model"
	"hotelier/shared"
	gDto "hotelier/shared/dto"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"

	"github.com/google/uuid"
)

type CreateProductRequest struct {
	BranchID string `json:"branch_id" validate:"required"`
	Name     string `json:"name"      validate:"required,max=255"`
	Price    int64  `json:"price"     validate:"gte=0"`
	Stock    int    `json:"stock"     validate:"gte=0"`
}

func (c *CreateProductRequest) ToModel(user string) model.Product {
	return model.Product{
		ID:       uuid.NewString(),
		BranchID: c.BranchID,
		Name:     c.Name,
		Price:    c.Price,
		Stock:    c.Stock,
		Active:   true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateProductRequest struct {
	Name   string `db:"name"   json:"name"   validate:"omitempty,max=255"`
	Price  *int64 `db:"price"  json:"price"  validate:"omitempty,gte=0"`
	Stock  *int   `db:"stock"  json:"stock"  validate:"omitempty,gte=0"`
	Active *bool  `db:"active" json:"active" validate:"omitempty"`
}

type ProductResponse struct {
	ID       string `json:"id"`
	BranchID string `json:"branch_id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Stock    int    `json:"stock"`
	Active   bool   `json:"active"`
	gDto.Metadata
}

func (r *ProductResponse) FromModel(mod model.Product) {
	r.ID = mod.ID
	r.BranchID = mod.BranchID
	r.Name = mod.Name
	r.Price = mod.Price
	r.Stock = mod.Stock
	r.Active = mod.Active
	r.Metadata.FromModel(mod.Metadata)
}

type GetProductsResponse struct {
	Products  []ProductResponse `json:"products"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetProductsResponse) FromModels(models []model.Product, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Products = make([]ProductResponse, len(models))
	for i, mod := range models {
		r.Products[i].FromModel(mod)
	}
}
