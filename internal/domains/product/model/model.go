package model

import "hotelier/shared/model"

const (
	TableName  = "products"
	EntityName = "product"

	FieldID       = "id"
	FieldBranchID = "branch_id"
	FieldName     = "name"
	FieldPrice    = "price"
	FieldStock    = "stock"
	FieldActive   = "active"
)

// Product is a sellable item charged onto an open stay. Price is copied onto
// each order line when it is placed.
type Product struct {
	ID       string `db:"id"`
	BranchID string `db:"branch_id"`
	Name     string `db:"name"`
	Price    int64  `db:"price"`
	Stock    int    `db:"stock"`
	Active   bool   `db:"active"`
	model.Metadata
}
