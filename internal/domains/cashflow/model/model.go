package model

import (
	"time"

	"hotelier/shared/model"
)

const (
	TableName  = "cash_flows"
	EntityName = "cash_flow"

	FieldID            = "id"
	FieldBranchID      = "branch_id"
	FieldFlowType      = "flow_type"
	FieldCategory      = "category"
	FieldAmount        = "amount"
	FieldDescription   = "description"
	FieldReferenceCode = "reference_code"
	FieldOccurredAt    = "occurred_at"
)

// CashFlow is one immutable ledger line. Rows are only ever appended; a
// mistake is corrected by writing a compensating entry.
type CashFlow struct {
	ID            string    `db:"id"`
	BranchID      string    `db:"branch_id"`
	FlowType      string    `db:"flow_type"`
	Category      string    `db:"category"`
	Amount        int64     `db:"amount"`
	Description   string    `db:"description"`
	ReferenceCode string    `db:"reference_code"`
	OccurredAt    time.Time `db:"occurred_at"`
	model.Metadata
}
