package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	"hotelier/internal/domains/report/model"
	"hotelier/shared/constant"
	"hotelier/shared/logger"
)

// Every window is [start, end) on the raw timestamp columns. Grouping is by
// calendar day in the application timezone, which the connection session
// timezone already matches.
const (
	revenueDailyQuery = `
SELECT to_char(bookings.created_at, 'YYYY-MM-DD') AS date,
       COALESCE(SUM(bookings.total), 0)           AS total
FROM bookings
WHERE bookings.status = :completed
  AND bookings.created_at >= :start
  AND bookings.created_at < :end
GROUP BY 1
ORDER BY 1`

	serviceRevenueQuery = `
SELECT COALESCE(SUM(service_orders.total), 0) AS total
FROM service_orders
         JOIN bookings ON bookings.id = service_orders.booking_id
WHERE bookings.status = :completed
  AND bookings.created_at >= :start
  AND bookings.created_at < :end`

	financeDailyQuery = `
SELECT to_char(cash_flows.created_at, 'YYYY-MM-DD') AS date,
       cash_flows.flow_type                         AS flow_type,
       COALESCE(SUM(cash_flows.amount), 0)          AS amount
FROM cash_flows
WHERE cash_flows.created_at >= :start
  AND cash_flows.created_at < :end
GROUP BY 1, 2
ORDER BY 1, 2`

	goodsQuery = `
SELECT service_orders.product_id              AS product_id,
       products.name                          AS product_name,
       COALESCE(SUM(service_orders.quantity), 0) AS quantity,
       COALESCE(SUM(service_orders.total), 0)    AS total
FROM service_orders
         JOIN products ON products.id = service_orders.product_id
WHERE service_orders.created_at >= :start
  AND service_orders.created_at < :end
GROUP BY 1, 2
ORDER BY quantity DESC`

	roomPerformanceQuery = `
SELECT rooms.id                         AS room_id,
       rooms.name                       AS room_name,
       room_classes.name                AS class_name,
       COUNT(booking_rooms.id)          AS stays,
       COALESCE(SUM(bookings.total), 0) AS revenue
FROM booking_rooms
         JOIN bookings ON bookings.id = booking_rooms.booking_id
         JOIN rooms ON rooms.id = booking_rooms.room_id
         JOIN room_classes ON room_classes.id = rooms.room_class_id
WHERE bookings.check_in_actual >= :start
  AND bookings.check_in_actual < :end
GROUP BY 1, 2, 3
ORDER BY revenue DESC`
)

type Report interface {
	GetRevenueDaily(ctx context.Context, start, end time.Time) ([]model.RevenueRow, error)
	GetServiceRevenue(ctx context.Context, start, end time.Time) (int64, error)
	GetFinanceDaily(ctx context.Context, start, end time.Time) ([]model.FinanceRow, error)
	GetGoods(ctx context.Context, start, end time.Time) ([]model.GoodsRow, error)
	GetRoomPerformance(ctx context.Context, start, end time.Time) ([]model.RoomPerformanceRow, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Report {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (repo *repositoryImpl) GetRevenueDaily(ctx context.Context, start, end time.Time) (rows []model.RevenueRow, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.GetRevenueDaily")
	defer scope.End()

	args := map[string]any{
		"completed": constant.BookingStatusCompleted,
		"start":     start,
		"end":       end,
	}

	err = repo.selectNamed(ctx, &rows, revenueDailyQuery, args)

	return rows, err
}

func (repo *repositoryImpl) GetServiceRevenue(ctx context.Context, start, end time.Time) (total int64, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.GetServiceRevenue")
	defer scope.End()

	args := map[string]any{
		"completed": constant.BookingStatusCompleted,
		"start":     start,
		"end":       end,
	}

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, serviceRevenueQuery)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	if err := prepare.GetContext(ctx, &total, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to get service revenue: %w", err)
	}

	return total, nil
}

func (repo *repositoryImpl) GetFinanceDaily(ctx context.Context, start, end time.Time) (rows []model.FinanceRow, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.GetFinanceDaily")
	defer scope.End()

	args := map[string]any{"start": start, "end": end}

	err = repo.selectNamed(ctx, &rows, financeDailyQuery, args)

	return rows, err
}

func (repo *repositoryImpl) GetGoods(ctx context.Context, start, end time.Time) (rows []model.GoodsRow, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.GetGoods")
	defer scope.End()

	args := map[string]any{"start": start, "end": end}

	err = repo.selectNamed(ctx, &rows, goodsQuery, args)

	return rows, err
}

func (repo *repositoryImpl) GetRoomPerformance(ctx context.Context, start, end time.Time) (rows []model.RoomPerformanceRow, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.GetRoomPerformance")
	defer scope.End()

	args := map[string]any{"start": start, "end": end}

	err = repo.selectNamed(ctx, &rows, roomPerformanceQuery, args)

	return rows, err
}

func (repo *repositoryImpl) selectNamed(ctx context.Context, dest any, query string, args map[string]any) error {
	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	if err := prepare.SelectContext(ctx, dest, args); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to run report query: %w", err)
	}

	return nil
}
