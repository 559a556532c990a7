package dto

import (
	"hotelier/internal/domains/report/model"
)

type Period struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type RevenueRowResponse struct {
	Date  string `json:"date"`
	Total int64  `json:"total"`
}

type RevenueSummary struct {
	Total          int64 `json:"total"`
	RoomRevenue    int64 `json:"room_revenue"`
	ServiceRevenue int64 `json:"service_revenue"`
}

type RevenueReportResponse struct {
	Period  Period               `json:"period"`
	Rows    []RevenueRowResponse `json:"rows"`
	Summary RevenueSummary       `json:"summary"`
}

func (r *RevenueReportResponse) FromModels(rows []model.RevenueRow, serviceRevenue int64) {
	r.Rows = make([]RevenueRowResponse, len(rows))

	var total int64
	for i, row := range rows {
		r.Rows[i] = RevenueRowResponse{Date: row.Date, Total: row.Total}
		total += row.Total
	}

	r.Summary = RevenueSummary{
		Total:          total,
		RoomRevenue:    total - serviceRevenue,
		ServiceRevenue: serviceRevenue,
	}
}

type FinanceRowResponse struct {
	Date     string `json:"date"`
	FlowType string `json:"flow_type"`
	Amount   int64  `json:"amount"`
}

type FinanceSummary struct {
	Receipt int64 `json:"receipt"`
	Payment int64 `json:"payment"`
	Profit  int64 `json:"profit"`
}

type FinanceReportResponse struct {
	Period  Period               `json:"period"`
	Rows    []FinanceRowResponse `json:"rows"`
	Summary FinanceSummary       `json:"summary"`
}

func (r *FinanceReportResponse) FromModels(rows []model.FinanceRow, receipt, payment int64) {
	r.Rows = make([]FinanceRowResponse, len(rows))
	for i, row := range rows {
		r.Rows[i] = FinanceRowResponse{Date: row.Date, FlowType: row.FlowType, Amount: row.Amount}
	}

	r.Summary = FinanceSummary{
		Receipt: receipt,
		Payment: payment,
		Profit:  receipt - payment,
	}
}

type GoodsRowResponse struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	Total       int64  `json:"total"`
}

type GoodsReportResponse struct {
	Period Period             `json:"period"`
	Rows   []GoodsRowResponse `json:"rows"`
}

func (r *GoodsReportResponse) FromModels(rows []model.GoodsRow) {
	r.Rows = make([]GoodsRowResponse, len(rows))
	for i, row := range rows {
		r.Rows[i] = GoodsRowResponse{
			ProductID:   row.ProductID,
			ProductName: row.ProductName,
			Quantity:    row.Quantity,
			Total:       row.Total,
		}
	}
}

type RoomPerformanceRowResponse struct {
	RoomID    string `json:"room_id"`
	RoomName  string `json:"room_name"`
	ClassName string `json:"class_name"`
	Stays     int    `json:"stays"`
	Revenue   int64  `json:"revenue"`
}

type RoomPerformanceReportResponse struct {
	Period Period                       `json:"period"`
	Rows   []RoomPerformanceRowResponse `json:"rows"`
}

func (r *RoomPerformanceReportResponse) FromModels(rows []model.RoomPerformanceRow) {
	r.Rows = make([]RoomPerformanceRowResponse, len(rows))
	for i, row := range rows {
		r.Rows[i] = RoomPerformanceRowResponse{
			RoomID:    row.RoomID,
			RoomName:  row.RoomName,
			ClassName: row.ClassName,
			Stays:     row.Stays,
			Revenue:   row.Revenue,
		}
	}
}
