package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	"hotelier/internal/domains/cashflow/model"
	gDto "hotelier/shared/dto"
	gRepo "hotelier/shared/repository"

	"github.com/jmoiron/sqlx"
)

// CashFlow is append-only: there is no update or delete on ledger rows.
type CashFlow interface {
	Insert(ctx context.Context, model model.CashFlow) error
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.CashFlow) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.CashFlow, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.CashFlow, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.CashFlow]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) CashFlow {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.CashFlow](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
