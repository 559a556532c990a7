package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"hotelier/infras/otel"
	"hotelier/internal/domains/report/model/dto"
	"hotelier/internal/domains/report/repository"
	"hotelier/shared/clock"
	"hotelier/shared/constant"

	"github.com/rs/zerolog/log"
)

// Report builds the read-side aggregations. Every report is computed fresh
// against the store on each request.
type Report interface {
	GetRevenue(ctx context.Context, preset string) (dto.RevenueReportResponse, error)
	GetFinance(ctx context.Context, preset string) (dto.FinanceReportResponse, error)
	GetGoods(ctx context.Context, preset string) (dto.GoodsReportResponse, error)
	GetRoomPerformance(ctx context.Context, preset string) (dto.RoomPerformanceReportResponse, error)
}

type serviceImpl struct {
	repo repository.Report
	clk  clock.Clock
	otel otel.Otel
}

func New(repo repository.Report, clk clock.Clock, otel otel.Otel) Report {
	return &serviceImpl{
		repo: repo,
		clk:  clk,
		otel: otel,
	}
}

func (s *serviceImpl) GetRevenue(ctx context.Context, preset string) (res dto.RevenueReportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetRevenue")
	defer scope.End()
	defer scope.TraceIfError(err)

	start, end := ResolveWindow(preset, s.clk.Now())

	rows, err := s.repo.GetRevenueDaily(ctx, start, end)
	if err != nil {
		log.Error().Err(err).Msg("failed to get revenue report")

		return res, fmt.Errorf("failed to get revenue report: %w", err)
	}

	serviceRevenue, err := s.repo.GetServiceRevenue(ctx, start, end)
	if err != nil {
		log.Error().Err(err).Msg("failed to get service revenue")

		return res, fmt.Errorf("failed to get service revenue: %w", err)
	}

	res.Period = period(start, end)
	res.FromModels(rows, serviceRevenue)

	return res, nil
}

func (s *serviceImpl) GetFinance(ctx context.Context, preset string) (res dto.FinanceReportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetFinance")
	defer scope.End()
	defer scope.TraceIfError(err)

	start, end := ResolveWindow(preset, s.clk.Now())

	rows, err := s.repo.GetFinanceDaily(ctx, start, end)
	if err != nil {
		log.Error().Err(err).Msg("failed to get finance report")

		return res, fmt.Errorf("failed to get finance report: %w", err)
	}

	var receipt, payment int64

	for _, row := range rows {
		switch row.FlowType {
		case constant.FlowTypeReceipt:
			receipt += row.Amount
		case constant.FlowTypePayment:
			payment += row.Amount
		}
	}

	res.Period = period(start, end)
	res.FromModels(rows, receipt, payment)

	return res, nil
}

func (s *serviceImpl) GetGoods(ctx context.Context, preset string) (res dto.GoodsReportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetGoods")
	defer scope.End()
	defer scope.TraceIfError(err)

	start, end := ResolveWindow(preset, s.clk.Now())

	rows, err := s.repo.GetGoods(ctx, start, end)
	if err != nil {
		log.Error().Err(err).Msg("failed to get goods report")

		return res, fmt.Errorf("failed to get goods report: %w", err)
	}

	res.Period = period(start, end)
	res.FromModels(rows)

	return res, nil
}

func (s *serviceImpl) GetRoomPerformance(ctx context.Context, preset string) (res dto.RoomPerformanceReportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetRoomPerformance")
	defer scope.End()
	defer scope.TraceIfError(err)

	start, end := ResolveWindow(preset, s.clk.Now())

	rows, err := s.repo.GetRoomPerformance(ctx, start, end)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room performance report")

		return res, fmt.Errorf("failed to get room performance report: %w", err)
	}

	res.Period = period(start, end)
	res.FromModels(rows)

	return res, nil
}

func period(start, end time.Time) dto.Period {
	return dto.Period{
		Start: start.Format(constant.DateOnlyFormat),
		End:   end.AddDate(0, 0, -1).Format(constant.DateOnlyFormat),
	}
}
