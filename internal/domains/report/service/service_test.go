package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotelier/infras/otel/mocks"
	reportMocks "hotelier/internal/domains/report/mocks"
	"hotelier/internal/domains/report/model"
	"hotelier/internal/domains/report/service"
	"hotelier/shared/clock"
	"hotelier/shared/constant"
)

var reportNow = time.Date(2025, 3, 12, 15, 30, 0, 0, time.UTC)

func newReportService(t *testing.T) (service.Report, *reportMocks.MockReport) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := reportMocks.NewMockReport(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, clock.NewFixed(reportNow), mockOtel)

	return svc, mockRepo
}

func TestReportService_GetRevenue(t *testing.T) {
	t.Run("splits room and service revenue", func(t *testing.T) {
		svc, mockRepo := newReportService(t)

		rows := []model.RevenueRow{
			{Date: "2025-03-11", Total: 1200000},
			{Date: "2025-03-12", Total: 800000},
		}

		mockRepo.EXPECT().
			GetRevenueDaily(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, start, end time.Time) ([]model.RevenueRow, error) {
				assert.Equal(t, time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), start)
				assert.Equal(t, time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC), end)

				return rows, nil
			})

		mockRepo.EXPECT().
			GetServiceRevenue(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(300000), nil)

		res, err := svc.GetRevenue(context.Background(), model.PresetToday)

		require.NoError(t, err)
		assert.Equal(t, "2025-03-12", res.Period.Start)
		assert.Equal(t, "2025-03-12", res.Period.End)
		assert.Len(t, res.Rows, 2)
		assert.Equal(t, int64(2000000), res.Summary.Total)
		assert.Equal(t, int64(1700000), res.Summary.RoomRevenue)
		assert.Equal(t, int64(300000), res.Summary.ServiceRevenue)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, mockRepo := newReportService(t)

		mockRepo.EXPECT().
			GetRevenueDaily(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error"))

		_, err := svc.GetRevenue(context.Background(), model.PresetToday)

		assert.Error(t, err)
	})
}

func TestReportService_GetFinance(t *testing.T) {
	svc, mockRepo := newReportService(t)

	rows := []model.FinanceRow{
		{Date: "2025-03-10", FlowType: constant.FlowTypeReceipt, Amount: 2500000},
		{Date: "2025-03-10", FlowType: constant.FlowTypePayment, Amount: 400000},
		{Date: "2025-03-11", FlowType: constant.FlowTypeReceipt, Amount: 1000000},
	}

	mockRepo.EXPECT().
		GetFinanceDaily(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(rows, nil)

	res, err := svc.GetFinance(context.Background(), model.PresetLast7Days)

	require.NoError(t, err)
	assert.Equal(t, "2025-03-05", res.Period.Start)
	assert.Equal(t, "2025-03-12", res.Period.End)
	assert.Equal(t, int64(3500000), res.Summary.Receipt)
	assert.Equal(t, int64(400000), res.Summary.Payment)
	assert.Equal(t, int64(3100000), res.Summary.Profit)
}

func TestReportService_GetGoods(t *testing.T) {
	svc, mockRepo := newReportService(t)

	rows := []model.GoodsRow{
		{ProductID: "product-1", ProductName: "Mineral Water", Quantity: 40, Total: 200000},
		{ProductID: "product-2", ProductName: "Laundry", Quantity: 12, Total: 300000},
	}

	mockRepo.EXPECT().
		GetGoods(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(rows, nil)

	res, err := svc.GetGoods(context.Background(), model.PresetThisMonth)

	require.NoError(t, err)
	assert.Equal(t, "2025-03-01", res.Period.Start)
	require.Len(t, res.Rows, 2)
	assert.Equal(t, "Mineral Water", res.Rows[0].ProductName)
}

func TestReportService_GetRoomPerformance(t *testing.T) {
	svc, mockRepo := newReportService(t)

	rows := []model.RoomPerformanceRow{
		{RoomID: "room-1", RoomName: "101", ClassName: "Deluxe", Stays: 9, Revenue: 4500000},
	}

	mockRepo.EXPECT().
		GetRoomPerformance(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(rows, nil)

	res, err := svc.GetRoomPerformance(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, "2025-03-01", res.Period.Start)
	assert.Equal(t, "2025-03-12", res.Period.End)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, "101", res.Rows[0].RoomName)
	assert.Equal(t, 9, res.Rows[0].Stays)
	assert.Equal(t, int64(4500000), res.Rows[0].Revenue)
}
