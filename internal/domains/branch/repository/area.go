package repository

import (
	"context"
	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	"hotelier/internal/domains/branch/model"
	gDto "hotelier/shared/dto"
	gRepo "hotelier/shared/repository"
)

type Area interface {
	Insert(ctx context.Context, model model.Area) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Area, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type areaRepositoryImpl struct {
	gRepo.Repository[model.Area]
	db   *postgres.Connection
	otel otel.Otel
}

func NewArea(db *postgres.Connection, otel otel.Otel) Area {
	return &areaRepositoryImpl{
		Repository: gRepo.NewRepository[model.Area](model.AreaEntityName, model.AreaTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
