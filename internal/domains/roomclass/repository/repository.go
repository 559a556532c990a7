package repository

import (
	"context"
	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	"hotelier/internal/domains/roomclass/model"
	gDto "hotelier/shared/dto"
	gRepo "hotelier/shared/repository"
)

type RoomClass interface {
	Insert(ctx context.Context, model model.RoomClass) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.RoomClass, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RoomClass, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.RoomClass]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) RoomClass {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.RoomClass](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
