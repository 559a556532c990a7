package dto

import (
	"hotelier/internal/domains/cashflow/model"
	"hotelier/shared"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"

	"github.com/google/uuid"
)

type CreateCashFlowRequest struct {
	BranchID      string `json:"branch_id"      validate:"required"`
	FlowType      string `json:"flow_type"      validate:"required,oneof=RECEIPT PAYMENT"`
	Category      string `json:"category"       validate:"required,max=100"`
	Amount        int64  `json:"amount"         validate:"required,gt=0"`
	Description   string `json:"description"    validate:"omitempty,max=500"`
	ReferenceCode string `json:"reference_code" validate:"omitempty,max=100"`
}

func (c *CreateCashFlowRequest) ToModel(user string) model.CashFlow {
	return model.CashFlow{
		ID:            uuid.NewString(),
		BranchID:      c.BranchID,
		FlowType:      c.FlowType,
		Category:      c.Category,
		Amount:        c.Amount,
		Description:   c.Description,
		ReferenceCode: c.ReferenceCode,
		OccurredAt:    timezone.Now(),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type CashFlowResponse struct {
	ID            string `json:"id"`
	BranchID      string `json:"branch_id"`
	FlowType      string `json:"flow_type"`
	Category      string `json:"category"`
	Amount        int64  `json:"amount"`
	Description   string `json:"description,omitempty"`
	ReferenceCode string `json:"reference_code,omitempty"`
	OccurredAt    string `json:"occurred_at"`
	gDto.Metadata
}

func (r *CashFlowResponse) FromModel(mod model.CashFlow) {
	r.ID = mod.ID
	r.BranchID = mod.BranchID
	r.FlowType = mod.FlowType
	r.Category = mod.Category
	r.Amount = mod.Amount
	r.Description = mod.Description
	r.ReferenceCode = mod.ReferenceCode
	r.OccurredAt = timezone.Format(mod.OccurredAt, constant.DateFormat)
	r.Metadata.FromModel(mod.Metadata)
}

type GetCashFlowsResponse struct {
	CashFlows []CashFlowResponse `json:"cash_flows"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetCashFlowsResponse) FromModels(models []model.CashFlow, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.CashFlows = make([]CashFlowResponse, len(models))
	for i, mod := range models {
		r.CashFlows[i].FromModel(mod)
	}
}
