package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	"hotelier/internal/domains/customer/model"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/logger"
	gRepo "hotelier/shared/repository"

	"github.com/jmoiron/sqlx"
)

const upsertQuery = `
INSERT INTO customers (id, full_name, birth_date, identity_type, identity_card, phone, email, address, license_plate, type, created_at, created_by, modified_at, modified_by)
VALUES (:id, :full_name, :birth_date, :identity_type, :identity_card, :phone, :email, :address, :license_plate, :type, :created_at, :created_by, :modified_at, :modified_by)
ON CONFLICT (identity_card) WHERE identity_card IS NOT NULL
DO UPDATE SET
	full_name = EXCLUDED.full_name,
	birth_date = COALESCE(EXCLUDED.birth_date, customers.birth_date),
	identity_type = EXCLUDED.identity_type,
	phone = EXCLUDED.phone,
	email = EXCLUDED.email,
	address = EXCLUDED.address,
	license_plate = EXCLUDED.license_plate,
	modified_at = EXCLUDED.modified_at,
	modified_by = EXCLUDED.modified_by
RETURNING id`

const insertReturningQuery = `
INSERT INTO customers (id, full_name, birth_date, identity_type, identity_card, phone, email, address, license_plate, type, created_at, created_by, modified_at, modified_by)
VALUES (:id, :full_name, :birth_date, :identity_type, :identity_card, :phone, :email, :address, :license_plate, :type, :created_at, :created_by, :modified_at, :modified_by)
RETURNING id`

type preparer interface {
	PrepareNamedContext(ctx context.Context, query string) (*sqlx.NamedStmt, error)
}

type Customer interface {
	Insert(ctx context.Context, model model.Customer) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Customer, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Customer, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, tx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	Upsert(ctx context.Context, customer model.Customer) (string, error)
	UpsertTx(ctx context.Context, tx *sqlx.Tx, customer model.Customer) (string, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Customer]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Customer {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Customer](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Upsert keys returning guests on their identity card. Customers without one
// are always inserted as new rows.
func (repo *repositoryImpl) Upsert(ctx context.Context, customer model.Customer) (string, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".customer.Upsert")
	defer scope.End()

	return repo.upsert(ctx, repo.db.Write, customer)
}

func (repo *repositoryImpl) UpsertTx(ctx context.Context, tx *sqlx.Tx, customer model.Customer) (string, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".customer.UpsertTx")
	defer scope.End()

	return repo.upsert(ctx, tx, customer)
}

func (repo *repositoryImpl) upsert(ctx context.Context, prep preparer, customer model.Customer) (string, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".customer.upsert")
	defer scope.End()

	query := upsertQuery
	if customer.IdentityCard == nil {
		query = insertReturningQuery
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	stmt, err := prep.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return "", fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer stmt.Close()

	var id string
	if err := stmt.GetContext(ctx, &id, customer); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return "", fmt.Errorf("failed to upsert customer: %w", err)
	}

	return id, nil
}
