package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	cashflowModel "hotelier/internal/domains/cashflow/model"
	cashflowRepo "hotelier/internal/domains/cashflow/repository"
	"hotelier/internal/domains/device/model"
	"hotelier/shared"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"
	"hotelier/shared/logger"
	gRepo "hotelier/shared/repository"

	"github.com/jmoiron/sqlx"
)

const lockDeviceQuery = `SELECT id, branch_id, name FROM devices WHERE id = ? FOR UPDATE`

type lockedDevice struct {
	ID       string `db:"id"`
	BranchID string `db:"branch_id"`
	Name     string `db:"name"`
}

type Device interface {
	Insert(ctx context.Context, model model.Device) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Device, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Device, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	GetLogs(ctx context.Context, deviceID string) ([]model.MaintenanceLog, error)
	LogMaintenance(ctx context.Context, log model.MaintenanceLog, deviceFields map[string]any, cashFlow *cashflowModel.CashFlow) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Device]
	logs      gRepo.Repository[model.MaintenanceLog]
	cashFlows cashflowRepo.CashFlow
	db        *postgres.Connection
	otel      otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel, cashFlows cashflowRepo.CashFlow) Device {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Device](model.EntityName, model.TableName, model.FieldID, db, otel),
		logs:       gRepo.NewRepository[model.MaintenanceLog](model.LogEntityName, model.LogTableName, model.FieldID, db, otel),
		cashFlows:  cashFlows,
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) GetLogs(ctx context.Context, deviceID string) ([]model.MaintenanceLog, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".device.GetLogs")
	defer scope.End()

	params := gDto.QueryParams{SortBy: "performed_at", SortDir: gDto.SortDirDesc}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldLogDeviceID,
				Operator: gDto.FilterOperatorEq,
				Value:    deviceID,
				Table:    model.LogTableName,
			},
		},
	}

	return repo.logs.GetAll(ctx, params, filter) //nolint:wrapcheck
}

// LogMaintenance records a service visit in one transaction: the log row, the
// device status reset, and, when the visit cost money, the matching ledger
// payment. The cash flow branch is taken from the device row.
func (repo *repositoryImpl) LogMaintenance(ctx context.Context, log model.MaintenanceLog, deviceFields map[string]any, cashFlow *cashflowModel.CashFlow) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".device.LogMaintenance")
	defer scope.End()

	err := repo.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		var device lockedDevice

		err := tx.GetContext(ctx, &device, tx.Rebind(lockDeviceQuery), log.DeviceID)
		if errors.Is(err, sql.ErrNoRows) {
			return failure.NotFound("device not found")
		}

		if err != nil {
			logger.ErrorWithStack(err)

			return fmt.Errorf("failed to lock device: %w", err)
		}

		if err := repo.logs.InsertTx(ctx, tx, log); err != nil {
			return err
		}

		if err := repo.UpdateTx(ctx, tx, deviceFields, shared.FilterByID(device.ID, model.FieldID, model.TableName)); err != nil {
			return err
		}

		if cashFlow != nil {
			cashFlow.BranchID = device.BranchID
			cashFlow.Description = "maintenance for device " + device.Name

			return repo.cashFlows.InsertTx(ctx, tx, *cashFlow)
		}

		return nil
	})
	if err != nil {
		scope.TraceError(err)

		return err //nolint:wrapcheck
	}

	return nil
}
