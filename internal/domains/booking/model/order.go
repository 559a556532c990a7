package model

import "hotelier/shared/model"

const (
	OrderTableName  = "service_orders"
	OrderEntityName = "service_order"

	FieldOrderBookingID = "booking_id"
	FieldOrderProductID = "product_id"
)

// ServiceOrder is a product sold onto an open stay. PriceSnapshot freezes the
// product price at order time.
type ServiceOrder struct {
	ID            string `db:"id"`
	BookingID     string `db:"booking_id"`
	ProductID     string `db:"product_id"`
	Quantity      int    `db:"quantity"`
	PriceSnapshot int64  `db:"price_snapshot"`
	Total         int64  `db:"total"`

	ProductName string `db:"product_name" table:"products" column:"name"`

	model.Metadata
}

func (ServiceOrder) GetJoinQuery() string {
	return "JOIN products ON products.id = service_orders.product_id"
}
