package repository

import (
	"context"
	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	"hotelier/internal/domains/branch/model"
	gDto "hotelier/shared/dto"
	gRepo "hotelier/shared/repository"
)

type Branch interface {
	Insert(ctx context.Context, model model.Branch) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Branch, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Branch, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Branch]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Branch {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Branch](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
