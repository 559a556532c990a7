package model

import "hotelier/shared/model"

const (
	AreaTableName  = "areas"
	AreaEntityName = "area"

	FieldAreaBranchID = "branch_id"
)

// Area is a floor or wing grouping rooms inside one branch.
type Area struct {
	ID       string `db:"id"`
	BranchID string `db:"branch_id"`
	Name     string `db:"name"`
	model.Metadata
}
