package service

import (
	"context"
	"errors"
	"fmt"
	"hotelier/config"
	"hotelier/infras/otel"
	"hotelier/internal/domains/branch/model"
	"hotelier/internal/domains/branch/model/dto"
	"hotelier/internal/domains/branch/repository"
	"hotelier/shared"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

type Branch interface {
	Create(ctx context.Context, req dto.CreateBranchRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBranchesResponse, error)
	Get(ctx context.Context, id string) (dto.BranchResponse, error)
	Update(ctx context.Context, req dto.UpdateBranchRequest, id string) error
	Delete(ctx context.Context, id string) error

	CreateArea(ctx context.Context, req dto.CreateAreaRequest) error
	GetAreas(ctx context.Context, branchID string) (dto.GetAreasResponse, error)
	DeleteArea(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo     repository.Branch
	areaRepo repository.Area
	cfg      *config.Config
	otel     otel.Otel
}

func New(repo repository.Branch, areaRepo repository.Area, cfg *config.Config, otel otel.Otel) Branch {
	return &serviceImpl{
		repo:     repo,
		areaRepo: areaRepo,
		cfg:      cfg,
		otel:     otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBranchRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create branch")

		return fmt.Errorf("failed to create branch: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBranchesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count branches")

		return res, fmt.Errorf("failed to count branches: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get branches")

		return res, fmt.Errorf("failed to get branches: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BranchResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	branch, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get branch")

		return res, fmt.Errorf("failed to get branch: %w", err)
	}

	if branch.ID == constant.Empty {
		return res, failure.NotFound("branch not found") // nolint:wrapcheck
	}

	res.FromModel(branch)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBranchRequest, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if branch exists")

		return fmt.Errorf("failed to check if branch exists: %w", err)
	}

	if !exist {
		return failure.NotFound("branch not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update branch")

		return fmt.Errorf("failed to update branch: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if branch exists")

		return fmt.Errorf("failed to check if branch exists: %w", err)
	}

	if !exist {
		return failure.NotFound("branch not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeFkViolation {
			return failure.Conflict("branch is still referenced by rooms, bookings or staff") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to delete branch")

		return fmt.Errorf("failed to delete branch: %w", err)
	}

	return nil
}

func (s *serviceImpl) CreateArea(ctx context.Context, req dto.CreateAreaRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateArea")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	branchExists, err := s.repo.Exist(ctx, shared.FilterByID(req.BranchID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if branch exists")

		return fmt.Errorf("failed to check if branch exists: %w", err)
	}

	if !branchExists {
		return failure.BadRequestFromString("branch does not exist") // nolint:wrapcheck
	}

	if err = s.areaRepo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create area")

		return fmt.Errorf("failed to create area: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetAreas(ctx context.Context, branchID string) (res dto.GetAreasResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAreas")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}
	if branchID != "" {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldAreaBranchID,
			Operator: gDto.FilterOperatorEq,
			Value:    branchID,
			Table:    model.AreaTableName,
		})
	}

	models, err := s.areaRepo.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldName, SortDir: gDto.SortDirAsc}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get areas")

		return res, fmt.Errorf("failed to get areas: %w", err)
	}

	res.FromModels(models)

	return res, nil
}

func (s *serviceImpl) DeleteArea(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteArea")
	defer scope.End()

	filter := shared.FilterByID(id, model.FieldID, model.AreaTableName)

	exist, err := s.areaRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if area exists")

		return fmt.Errorf("failed to check if area exists: %w", err)
	}

	if !exist {
		return failure.NotFound("area not found") // nolint:wrapcheck
	}

	if err := s.areaRepo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete area")

		return fmt.Errorf("failed to delete area: %w", err)
	}

	return nil
}
