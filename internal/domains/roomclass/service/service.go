package service

import (
	"context"
	"errors"
	"fmt"
	"hotelier/infras/otel"
	"hotelier/internal/domains/roomclass/model"
	"hotelier/internal/domains/roomclass/model/dto"
	"hotelier/internal/domains/roomclass/repository"
	"hotelier/shared"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

type RoomClass interface {
	Create(ctx context.Context, req dto.CreateRoomClassRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomClassesResponse, error)
	Get(ctx context.Context, id string) (dto.RoomClassResponse, error)
	Update(ctx context.Context, req dto.UpdateRoomClassRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.RoomClass
	otel otel.Otel
}

func New(repo repository.RoomClass, otel otel.Otel) RoomClass {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomClassRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeFkViolation {
			return failure.BadRequestFromString("branch does not exist") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create room class")

		return fmt.Errorf("failed to create room class: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRoomClassesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count room classes")

		return res, fmt.Errorf("failed to count room classes: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room classes")

		return res, fmt.Errorf("failed to get room classes: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomClassResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	roomClass, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room class")

		return res, fmt.Errorf("failed to get room class: %w", err)
	}

	if roomClass.ID == constant.Empty {
		return res, failure.NotFound("room class not found") // nolint:wrapcheck
	}

	res.FromModel(roomClass)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRoomClassRequest, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room class exists")

		return fmt.Errorf("failed to check if room class exists: %w", err)
	}

	if !exist {
		return failure.NotFound("room class not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update room class")

		return fmt.Errorf("failed to update room class: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room class exists")

		return fmt.Errorf("failed to check if room class exists: %w", err)
	}

	if !exist {
		return failure.NotFound("room class not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeFkViolation {
			return failure.Conflict("room class is still assigned to rooms") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to delete room class")

		return fmt.Errorf("failed to delete room class: %w", err)
	}

	return nil
}
