package service

import (
	"context"
	"errors"
	"fmt"
	"hotelier/infras/otel"
	"hotelier/internal/domains/cashflow/model"
	"hotelier/internal/domains/cashflow/model/dto"
	"hotelier/internal/domains/cashflow/repository"
	"hotelier/shared"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

type CashFlow interface {
	Create(ctx context.Context, req dto.CreateCashFlowRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetCashFlowsResponse, error)
	Get(ctx context.Context, id string) (dto.CashFlowResponse, error)
}

type serviceImpl struct {
	repo repository.CashFlow
	otel otel.Otel
}

func New(repo repository.CashFlow, otel otel.Otel) CashFlow {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

// Create appends a manual ledger entry, e.g. a supply purchase paid from the
// drawer. Lifecycle entries (checkouts, maintenance) are written by their own
// flows.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCashFlowRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeFkViolation {
			return failure.BadRequestFromString("branch does not exist") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create cash flow")

		return fmt.Errorf("failed to create cash flow: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetCashFlowsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count cash flows")

		return res, fmt.Errorf("failed to count cash flows: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get cash flows")

		return res, fmt.Errorf("failed to get cash flows: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.CashFlowResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cashFlow, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get cash flow")

		return res, fmt.Errorf("failed to get cash flow: %w", err)
	}

	if cashFlow.ID == constant.Empty {
		return res, failure.NotFound("cash flow not found") // nolint:wrapcheck
	}

	res.FromModel(cashFlow)

	return res, nil
}
