package model

import "hotelier/shared/model"

const (
	TableName  = "branches"
	EntityName = "branch"

	FieldID      = "id"
	FieldName    = "name"
	FieldAddress = "address"
	FieldPhone   = "phone"
	FieldActive  = "active"
)

type Branch struct {
	ID      string `db:"id"`
	Name    string `db:"name"`
	Address string `db:"address"`
	Phone   string `db:"phone"`
	Active  bool   `db:"active"`
	model.Metadata
}
