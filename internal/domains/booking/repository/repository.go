package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	"hotelier/internal/domains/booking/billing"
	"hotelier/internal/domains/booking/model"
	cashflowModel "hotelier/internal/domains/cashflow/model"
	cashflowRepo "hotelier/internal/domains/cashflow/repository"
	customerModel "hotelier/internal/domains/customer/model"
	customerRepo "hotelier/internal/domains/customer/repository"
	"hotelier/shared"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"
	"hotelier/shared/logger"
	gRepo "hotelier/shared/repository"
	"hotelier/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const (
	lockBookingQuery = `SELECT id, code, branch_id, customer_id, booking_type, status FROM bookings WHERE id = ? FOR UPDATE`
	lockRoomsQuery   = `
SELECT rooms.id, rooms.name, rooms.status,
	room_classes.hourly_rate, room_classes.daily_rate, room_classes.overnight_rate
FROM rooms
JOIN room_classes ON room_classes.id = rooms.room_class_id
WHERE rooms.id IN (?)
FOR UPDATE OF rooms`
	lockProductQuery = `SELECT id, name, price, stock FROM products WHERE id = ? FOR UPDATE`
	roomStateQuery   = `SELECT name, status FROM rooms WHERE id = ?`
	openStayQuery    = `
SELECT bookings.id
FROM bookings
JOIN booking_rooms ON booking_rooms.booking_id = bookings.id
WHERE booking_rooms.room_id = ? AND bookings.status = ?
ORDER BY bookings.created_at DESC
LIMIT 1`
	stayRoomsQuery    = `SELECT id, room_id FROM booking_rooms WHERE booking_id = ?`
	ordersTotalQuery  = `SELECT COALESCE(SUM(total), 0) FROM service_orders WHERE booking_id = ?`
	roomStatusQuery   = `UPDATE rooms SET status = ?, modified_at = ?, modified_by = ? WHERE id IN (?)`
	roomSnapshotQuery = `UPDATE booking_rooms SET rate_snapshot = ?, modified_at = ?, modified_by = ? WHERE id = ?`
	roomChargeQuery   = `UPDATE booking_rooms SET charge = ?, hours = ?, modified_at = ?, modified_by = ? WHERE id = ?`
	decrementStock    = `UPDATE products SET stock = stock - ?, modified_at = ?, modified_by = ? WHERE id = ?`
)

type lockedBooking struct {
	ID          string `db:"id"`
	Code        string `db:"code"`
	BranchID    string `db:"branch_id"`
	CustomerID  string `db:"customer_id"`
	BookingType string `db:"booking_type"`
	Status      string `db:"status"`
}

type lockedRoom struct {
	ID            string `db:"id"`
	Name          string `db:"name"`
	Status        string `db:"status"`
	HourlyRate    int64  `db:"hourly_rate"`
	DailyRate     int64  `db:"daily_rate"`
	OvernightRate int64  `db:"overnight_rate"`
}

func (r lockedRoom) rates() billing.Rates {
	return billing.Rates{Hourly: r.HourlyRate, Daily: r.DailyRate, Overnight: r.OvernightRate}
}

type lockedProduct struct {
	ID    string `db:"id"`
	Name  string `db:"name"`
	Price int64  `db:"price"`
	Stock int    `db:"stock"`
}

// RoomCharge is the priced result for one stay room, written at checkout.
type RoomCharge struct {
	BookingRoomID string
	Charge        int64
	Hours         int
}

type Booking interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	GetRooms(ctx context.Context, bookingID string) ([]model.BookingRoom, error)
	GetCompanions(ctx context.Context, bookingID string) ([]model.Companion, error)
	GetOrders(ctx context.Context, bookingID string) ([]model.ServiceOrder, error)
	GetOpenStay(ctx context.Context, roomID string) (string, error)

	CreateStay(ctx context.Context, booking model.Booking, roomIDs []string, companions []model.Companion, guest customerModel.Customer, occupy bool) (model.Booking, error)
	ConfirmCheckIn(ctx context.Context, bookingID string, fields map[string]any, guestFields map[string]any, companions []model.Companion, bookingType string) error
	CompleteCheckout(ctx context.Context, bookingID string, fields map[string]any, charges []RoomCharge, roomsTotal int64, cashFlow cashflowModel.CashFlow) (int64, error)
	Cancel(ctx context.Context, bookingID string, fields map[string]any) error
	AddServiceOrder(ctx context.Context, order model.ServiceOrder) (model.ServiceOrder, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	rooms      gRepo.Repository[model.BookingRoom]
	companions gRepo.Repository[model.Companion]
	orders     gRepo.Repository[model.ServiceOrder]
	customers  customerRepo.Customer
	cashFlows  cashflowRepo.CashFlow
	db         *postgres.Connection
	otel       otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel, customers customerRepo.Customer, cashFlows cashflowRepo.CashFlow) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		rooms:      gRepo.NewRepository[model.BookingRoom](model.RoomEntityName, model.RoomTableName, model.FieldID, db, otel),
		companions: gRepo.NewRepository[model.Companion](model.CompanionEntityName, model.CompanionTableName, model.FieldID, db, otel),
		orders:     gRepo.NewRepository[model.ServiceOrder](model.OrderEntityName, model.OrderTableName, model.FieldID, db, otel),
		customers:  customers,
		cashFlows:  cashFlows,
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) GetRooms(ctx context.Context, bookingID string) ([]model.BookingRoom, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetRooms")
	defer scope.End()

	params := gDto.QueryParams{SortBy: model.RoomTableName + "." + constant.FieldCreatedAt, SortDir: gDto.SortDirAsc}

	return repo.rooms.GetAll(ctx, params, childFilter(model.FieldRoomBookingID, bookingID, model.RoomTableName)) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetCompanions(ctx context.Context, bookingID string) ([]model.Companion, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetCompanions")
	defer scope.End()

	params := gDto.QueryParams{SortBy: model.CompanionTableName + "." + constant.FieldCreatedAt, SortDir: gDto.SortDirAsc}

	return repo.companions.GetAll(ctx, params, childFilter(model.FieldCompanionBookingID, bookingID, model.CompanionTableName)) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetOrders(ctx context.Context, bookingID string) ([]model.ServiceOrder, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetOrders")
	defer scope.End()

	params := gDto.QueryParams{SortBy: model.OrderTableName + "." + constant.FieldCreatedAt, SortDir: gDto.SortDirAsc}

	return repo.orders.GetAll(ctx, params, childFilter(model.FieldOrderBookingID, bookingID, model.OrderTableName)) //nolint:wrapcheck
}

// GetOpenStay resolves the checked-in booking currently holding a room. The
// front desk works room-first: orders and checkouts arrive keyed by room, not
// by booking code.
func (repo *repositoryImpl) GetOpenStay(ctx context.Context, roomID string) (string, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetOpenStay")
	defer scope.End()

	var room struct {
		Name   string `db:"name"`
		Status string `db:"status"`
	}

	err := repo.db.Read.GetContext(ctx, &room, repo.db.Read.Rebind(roomStateQuery), roomID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", failure.NotFound("room not found") //nolint:wrapcheck
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return "", fmt.Errorf("failed to get room: %w", err)
	}

	if room.Status != constant.RoomStatusOccupied {
		return "", failure.RoomNotOccupied(room.Name) //nolint:wrapcheck
	}

	var bookingID string

	err = repo.db.Read.GetContext(ctx, &bookingID, repo.db.Read.Rebind(openStayQuery), roomID, constant.BookingStatusCheckedIn)
	if errors.Is(err, sql.ErrNoRows) {
		return "", failure.RoomNotOccupied(room.Name) //nolint:wrapcheck
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return "", fmt.Errorf("failed to get open stay: %w", err)
	}

	return bookingID, nil
}

// CreateStay opens a stay in one transaction: the guest is upserted, every
// requested room is locked and checked, and the booking with its child rows is
// inserted. With occupy set the rooms move to OCCUPIED (walk-in check-in);
// reservations leave them available.
func (repo *repositoryImpl) CreateStay(ctx context.Context, booking model.Booking, roomIDs []string, companions []model.Companion, guest customerModel.Customer, occupy bool) (model.Booking, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.CreateStay")
	defer scope.End()

	err := repo.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		customerID, err := repo.customers.UpsertTx(ctx, tx, guest)
		if err != nil {
			return err
		}

		booking.CustomerID = customerID

		rooms, err := repo.lockRooms(ctx, tx, roomIDs)
		if err != nil {
			return err
		}

		for _, room := range rooms {
			if room.Status != constant.RoomStatusAvailable {
				return failure.RoomNotAvailable(room.Name)
			}
		}

		if occupy {
			if err := repo.setRoomStatus(ctx, tx, roomIDs, constant.RoomStatusOccupied, booking.ModifiedBy); err != nil {
				return err
			}
		}

		if err := repo.InsertTx(ctx, tx, booking); err != nil {
			return err
		}

		for _, room := range rooms {
			stayRoom := model.BookingRoom{
				ID:           uuid.NewString(),
				BookingID:    booking.ID,
				RoomID:       room.ID,
				RateSnapshot: billing.ResolveSnapshot(booking.BookingType, room.rates()),
				Metadata:     booking.Metadata,
			}

			if err := repo.rooms.InsertTx(ctx, tx, stayRoom); err != nil {
				return err
			}
		}

		for _, companion := range companions {
			companion.BookingID = booking.ID

			if err := repo.companions.InsertTx(ctx, tx, companion); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		scope.TraceError(err)

		return model.Booking{}, err //nolint:wrapcheck
	}

	return booking, nil
}

// ConfirmCheckIn moves a reservation into an open stay. The reserved rooms
// must still be available; when the booking type changes the rate snapshots
// are resolved again from the current rate card. Companions arriving with the
// guest are registered onto the booking in the same transaction.
func (repo *repositoryImpl) ConfirmCheckIn(ctx context.Context, bookingID string, fields map[string]any, guestFields map[string]any, companions []model.Companion, bookingType string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.ConfirmCheckIn")
	defer scope.End()

	err := repo.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		booking, err := repo.lockBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}

		if booking.Status != constant.BookingStatusReserved {
			return failure.InvalidState("booking is not in reserved state")
		}

		stayRooms, err := repo.stayRooms(ctx, tx, bookingID)
		if err != nil {
			return err
		}

		roomIDs := make([]string, len(stayRooms))
		for i, stayRoom := range stayRooms {
			roomIDs[i] = stayRoom.RoomID
		}

		rooms, err := repo.lockRooms(ctx, tx, roomIDs)
		if err != nil {
			return err
		}

		ratesByRoom := make(map[string]billing.Rates, len(rooms))

		for _, room := range rooms {
			if room.Status != constant.RoomStatusAvailable {
				return failure.RoomNotAvailable(room.Name)
			}

			ratesByRoom[room.ID] = room.rates()
		}

		user, _ := fields[constant.FieldModifiedBy].(string)
		modifiedAt, _ := fields[constant.FieldModifiedAt].(time.Time)

		if err := repo.setRoomStatus(ctx, tx, roomIDs, constant.RoomStatusOccupied, user); err != nil {
			return err
		}

		if bookingType != "" && bookingType != booking.BookingType {
			for _, stayRoom := range stayRooms {
				snapshot := billing.ResolveSnapshot(bookingType, ratesByRoom[stayRoom.RoomID])

				if _, err := tx.ExecContext(ctx, tx.Rebind(roomSnapshotQuery), snapshot, modifiedAt, user, stayRoom.ID); err != nil {
					logger.ErrorWithStack(err)

					return fmt.Errorf("failed to update rate snapshot: %w", err)
				}
			}
		}

		if err := repo.UpdateTx(ctx, tx, fields, shared.FilterByID(bookingID, model.FieldID, model.TableName)); err != nil {
			return err
		}

		for _, companion := range companions {
			companion.BookingID = bookingID

			if err := repo.companions.InsertTx(ctx, tx, companion); err != nil {
				return err
			}
		}

		if len(guestFields) > 0 {
			filter := shared.FilterByID(booking.CustomerID, customerModel.FieldID, customerModel.TableName)
			if err := repo.customers.UpdateTx(ctx, tx, guestFields, filter); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		scope.TraceError(err)

		return err //nolint:wrapcheck
	}

	return nil
}

// CompleteCheckout closes a stay: room charges are written, service orders are
// summed into the final total, rooms are released and one receipt lands in the
// cash ledger.
func (repo *repositoryImpl) CompleteCheckout(ctx context.Context, bookingID string, fields map[string]any, charges []RoomCharge, roomsTotal int64, cashFlow cashflowModel.CashFlow) (int64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.CompleteCheckout")
	defer scope.End()

	var total int64

	err := repo.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		booking, err := repo.lockBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}

		if booking.Status != constant.BookingStatusCheckedIn {
			return failure.InvalidState("booking is not checked in")
		}

		var ordersTotal int64
		if err := tx.GetContext(ctx, &ordersTotal, tx.Rebind(ordersTotalQuery), bookingID); err != nil {
			logger.ErrorWithStack(err)

			return fmt.Errorf("failed to sum service orders: %w", err)
		}

		total = roomsTotal + ordersTotal
		fields[model.FieldTotal] = total

		user, _ := fields[constant.FieldModifiedBy].(string)
		modifiedAt, _ := fields[constant.FieldModifiedAt].(time.Time)

		for _, charge := range charges {
			if _, err := tx.ExecContext(ctx, tx.Rebind(roomChargeQuery), charge.Charge, charge.Hours, modifiedAt, user, charge.BookingRoomID); err != nil {
				logger.ErrorWithStack(err)

				return fmt.Errorf("failed to write room charge: %w", err)
			}
		}

		stayRooms, err := repo.stayRooms(ctx, tx, bookingID)
		if err != nil {
			return err
		}

		roomIDs := make([]string, len(stayRooms))
		for i, stayRoom := range stayRooms {
			roomIDs[i] = stayRoom.RoomID
		}

		if err := repo.setRoomStatus(ctx, tx, roomIDs, constant.RoomStatusAvailable, user); err != nil {
			return err
		}

		if err := repo.UpdateTx(ctx, tx, fields, shared.FilterByID(bookingID, model.FieldID, model.TableName)); err != nil {
			return err
		}

		cashFlow.Amount = total

		return repo.cashFlows.InsertTx(ctx, tx, cashFlow)
	})
	if err != nil {
		scope.TraceError(err)

		return 0, err //nolint:wrapcheck
	}

	return total, nil
}

// Cancel voids a reservation. Checked-in and completed stays are immutable
// here: a guest in the room checks out, they do not cancel.
func (repo *repositoryImpl) Cancel(ctx context.Context, bookingID string, fields map[string]any) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Cancel")
	defer scope.End()

	err := repo.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		booking, err := repo.lockBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}

		if booking.Status != constant.BookingStatusReserved {
			return failure.InvalidState("only reserved bookings can be cancelled")
		}

		return repo.UpdateTx(ctx, tx, fields, shared.FilterByID(bookingID, model.FieldID, model.TableName))
	})
	if err != nil {
		scope.TraceError(err)

		return err //nolint:wrapcheck
	}

	return nil
}

// AddServiceOrder charges a product onto an open stay, locking the product row
// so stock never goes negative under concurrent orders.
func (repo *repositoryImpl) AddServiceOrder(ctx context.Context, order model.ServiceOrder) (model.ServiceOrder, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.AddServiceOrder")
	defer scope.End()

	err := repo.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		booking, err := repo.lockBooking(ctx, tx, order.BookingID)
		if err != nil {
			return err
		}

		if booking.Status != constant.BookingStatusCheckedIn {
			return failure.InvalidState("booking is not checked in")
		}

		var product lockedProduct

		err = tx.GetContext(ctx, &product, tx.Rebind(lockProductQuery), order.ProductID)
		if errors.Is(err, sql.ErrNoRows) {
			return failure.NotFound("product not found")
		}

		if err != nil {
			logger.ErrorWithStack(err)

			return fmt.Errorf("failed to lock product: %w", err)
		}

		if product.Stock < order.Quantity {
			return failure.Conflict("insufficient stock for product: " + product.Name)
		}

		order.PriceSnapshot = product.Price
		order.Total = product.Price * int64(order.Quantity)

		if _, err := tx.ExecContext(ctx, tx.Rebind(decrementStock), order.Quantity, order.ModifiedAt, order.ModifiedBy, order.ProductID); err != nil {
			logger.ErrorWithStack(err)

			return fmt.Errorf("failed to decrement product stock: %w", err)
		}

		return repo.orders.InsertTx(ctx, tx, order)
	})
	if err != nil {
		scope.TraceError(err)

		return model.ServiceOrder{}, err //nolint:wrapcheck
	}

	return order, nil
}

func (repo *repositoryImpl) lockBooking(ctx context.Context, tx *sqlx.Tx, bookingID string) (lockedBooking, error) {
	var booking lockedBooking

	err := tx.GetContext(ctx, &booking, tx.Rebind(lockBookingQuery), bookingID)
	if errors.Is(err, sql.ErrNoRows) {
		return booking, failure.NotFound("booking not found")
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return booking, fmt.Errorf("failed to lock booking: %w", err)
	}

	return booking, nil
}

func (repo *repositoryImpl) lockRooms(ctx context.Context, tx *sqlx.Tx, roomIDs []string) ([]lockedRoom, error) {
	// roomless reservations lock nothing
	if len(roomIDs) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(lockRoomsQuery, roomIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build room lock query: %w", err)
	}

	var rooms []lockedRoom
	if err := tx.SelectContext(ctx, &rooms, tx.Rebind(query), args...); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to lock rooms: %w", err)
	}

	if len(rooms) != len(roomIDs) {
		return nil, failure.NotFound("room not found")
	}

	return rooms, nil
}

func (repo *repositoryImpl) stayRooms(ctx context.Context, tx *sqlx.Tx, bookingID string) ([]model.BookingRoom, error) {
	var stayRooms []model.BookingRoom
	if err := tx.SelectContext(ctx, &stayRooms, tx.Rebind(stayRoomsQuery), bookingID); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get stay rooms: %w", err)
	}

	return stayRooms, nil
}

func (repo *repositoryImpl) setRoomStatus(ctx context.Context, tx *sqlx.Tx, roomIDs []string, status, user string) error {
	if len(roomIDs) == 0 {
		return nil
	}

	query, args, err := sqlx.In(roomStatusQuery, status, timezone.Now(), user, roomIDs)
	if err != nil {
		return fmt.Errorf("failed to build room status query: %w", err)
	}

	if _, err := tx.ExecContext(ctx, tx.Rebind(query), args...); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to update room status: %w", err)
	}

	return nil
}

func childFilter(field, bookingID, table string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    bookingID,
				Table:    table,
			},
		},
	}
}
