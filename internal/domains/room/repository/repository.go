package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	"hotelier/internal/domains/room/model"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/logger"
	gRepo "hotelier/shared/repository"
)

const boardQuery = `
SELECT
	rooms.id AS room_id,
	rooms.name AS room_name,
	rooms.status,
	room_classes.name AS class_name,
	areas.name AS area_name,
	stay.id AS booking_id,
	stay.code AS booking_code,
	stay.booking_type,
	stay.guest_name,
	stay.check_in_actual
FROM rooms
JOIN room_classes ON room_classes.id = rooms.room_class_id
LEFT JOIN areas ON areas.id = rooms.area_id
LEFT JOIN LATERAL (
	SELECT bookings.id, bookings.code, bookings.booking_type, bookings.check_in_actual, customers.full_name AS guest_name
	FROM booking_rooms
	JOIN bookings ON bookings.id = booking_rooms.booking_id
	LEFT JOIN customers ON customers.id = bookings.customer_id
	WHERE booking_rooms.room_id = rooms.id AND bookings.status = :checked_in
	ORDER BY bookings.check_in_actual DESC
	LIMIT 1
) stay ON true
WHERE rooms.branch_id = :branch_id AND rooms.active = true
ORDER BY rooms.name ASC`

type Room interface {
	Insert(ctx context.Context, model model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	GetBoard(ctx context.Context, branchID string) ([]model.BoardRow, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetBoard returns every active room of a branch with its open stay attached.
func (repo *repositoryImpl) GetBoard(ctx context.Context, branchID string) ([]model.BoardRow, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.GetBoard")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, boardQuery)

	args := map[string]any{
		"branch_id":  branchID,
		"checked_in": constant.BookingStatusCheckedIn,
	}

	var rows []model.BoardRow

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, boardQuery)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return rows, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	if err := prepare.SelectContext(ctx, &rows, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return rows, fmt.Errorf("failed to get room board: %w", err)
	}

	return rows, nil
}
