package model

const EntityName = "report"

const (
	KindRevenue         = "revenue"
	KindFinance         = "finance"
	KindGoods           = "goods"
	KindRoomPerformance = "room_performance"
)

const (
	PresetToday     = "today"
	PresetYesterday = "yesterday"
	PresetLast7Days = "last_7_days"
	PresetThisMonth = "this_month"
)

type RevenueRow struct {
	Date  string `db:"date"`
	Total int64  `db:"total"`
}

type FinanceRow struct {
	Date     string `db:"date"`
	FlowType string `db:"flow_type"`
	Amount   int64  `db:"amount"`
}

type GoodsRow struct {
	ProductID   string `db:"product_id"`
	ProductName string `db:"product_name"`
	Quantity    int    `db:"quantity"`
	Total       int64  `db:"total"`
}

type RoomPerformanceRow struct {
	RoomID    string `db:"room_id"`
	RoomName  string `db:"room_name"`
	ClassName string `db:"class_name"`
	Stays     int    `db:"stays"`
	Revenue   int64  `db:"revenue"`
}
