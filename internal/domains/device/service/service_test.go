package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotelier/config"
	kafkaMocks "hotelier/infras/kafka/mocks"
	"hotelier/infras/otel/mocks"
	cashflowModel "hotelier/internal/domains/cashflow/model"
	deviceMocks "hotelier/internal/domains/device/mocks"
	"hotelier/internal/domains/device/model"
	"hotelier/internal/domains/device/model/dto"
	"hotelier/internal/domains/device/service"
	"hotelier/shared/constant"
	"hotelier/shared/failure"
)

func newDeviceService(t *testing.T) (service.Device, *deviceMocks.MockDevice) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := deviceMocks.NewMockDevice(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockKafka, mockOtel)

	return svc, mockRepo
}

func TestDeviceService_Create(t *testing.T) {
	req := dto.CreateDeviceRequest{
		BranchID: "branch-1",
		Name:     "AC Unit 2F",
	}

	tests := []struct {
		name      string
		setupMock func(mockRepo *deviceMocks.MockDevice)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation",
			setupMock: func(mockRepo *deviceMocks.MockDevice) {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "unknown branch",
			setupMock: func(mockRepo *deviceMocks.MockDevice) {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: pq.ErrorCode(constant.PqErrorCodeFkViolation)})
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name: "repository error",
			setupMock: func(mockRepo *deviceMocks.MockDevice) {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo := newDeviceService(t)
			tt.setupMock(mockRepo)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Create(ctx, req)

			if tt.wantErr {
				require.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDeviceService_LogMaintenance(t *testing.T) {
	t.Run("repair with cost writes a payment", func(t *testing.T) {
		svc, mockRepo := newDeviceService(t)

		mockRepo.EXPECT().
			LogMaintenance(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, log model.MaintenanceLog, deviceFields map[string]any, cashFlow *cashflowModel.CashFlow) error {
				assert.Equal(t, "device-1", log.DeviceID)
				assert.Equal(t, int64(750000), log.Cost)
				assert.Equal(t, constant.DeviceStatusGood, deviceFields[model.FieldStatus])

				require.NotNil(t, cashFlow)
				assert.Equal(t, constant.FlowTypePayment, cashFlow.FlowType)
				assert.Equal(t, constant.CashCategoryMaintenance, cashFlow.Category)
				assert.Equal(t, int64(750000), cashFlow.Amount)
				assert.Equal(t, log.ID, cashFlow.ReferenceCode)

				return nil
			})

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		err := svc.LogMaintenance(ctx, dto.LogMaintenanceRequest{Description: "compressor replaced", Cost: 750000}, "device-1")

		assert.NoError(t, err)
	})

	t.Run("free repair skips the ledger", func(t *testing.T) {
		svc, mockRepo := newDeviceService(t)

		mockRepo.EXPECT().
			LogMaintenance(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Nil()).
			Return(nil)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		err := svc.LogMaintenance(ctx, dto.LogMaintenanceRequest{Description: "filter cleaned"}, "device-1")

		assert.NoError(t, err)
	})

	t.Run("device not found", func(t *testing.T) {
		svc, mockRepo := newDeviceService(t)

		mockRepo.EXPECT().
			LogMaintenance(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(failure.NotFound("device not found"))

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		err := svc.LogMaintenance(ctx, dto.LogMaintenanceRequest{Description: "no such device"}, "device-404")

		require.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestDeviceService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mockRepo *deviceMocks.MockDevice)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful deletion",
			setupMock: func(mockRepo *deviceMocks.MockDevice) {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "device not found",
			setupMock: func(mockRepo *deviceMocks.MockDevice) {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "maintenance history blocks deletion",
			setupMock: func(mockRepo *deviceMocks.MockDevice) {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: pq.ErrorCode(constant.PqErrorCodeFkViolation)})
			},
			wantErr:  true,
			wantCode: 409,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo := newDeviceService(t)
			tt.setupMock(mockRepo)

			err := svc.Delete(context.Background(), "device-1")

			if tt.wantErr {
				require.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
