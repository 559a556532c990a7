package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotelier/infras/otel/mocks"
	customerMocks "hotelier/internal/domains/customer/mocks"
	"hotelier/internal/domains/customer/model"
	"hotelier/internal/domains/customer/model/dto"
	"hotelier/internal/domains/customer/service"
	"hotelier/shared/constant"
	"hotelier/shared/failure"
)

func newCustomerService(t *testing.T) (service.Customer, *customerMocks.MockCustomer) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := customerMocks.NewMockCustomer(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockOtel)

	return svc, mockRepo
}

func TestCustomerService_Create(t *testing.T) {
	t.Run("returning guest refreshes the existing row", func(t *testing.T) {
		svc, mockRepo := newCustomerService(t)

		req := dto.CreateCustomerRequest{
			FullName:     "Jane Guest",
			BirthDate:    "1990-04-15",
			IdentityCard: "3174xxxxxxxxxxxx",
			Phone:        "+628123456789",
			LicensePlate: "51A-123.45",
		}

		mockRepo.EXPECT().
			Upsert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, customer model.Customer) (string, error) {
				assert.Equal(t, "Jane Guest", customer.FullName)
				require.NotNil(t, customer.IdentityCard)
				assert.Equal(t, req.IdentityCard, *customer.IdentityCard)
				require.NotNil(t, customer.BirthDate)
				assert.Equal(t, "1990-04-15", customer.BirthDate.Format(constant.DateOnlyFormat))
				assert.Equal(t, constant.IdentityTypeNationalID, customer.IdentityType)
				assert.Equal(t, "51A-123.45", customer.LicensePlate)
				assert.Equal(t, constant.CustomerTypeIndividual, customer.Type)

				return "existing-customer-id", nil
			})

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		err := svc.Create(ctx, req)

		assert.NoError(t, err)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, mockRepo := newCustomerService(t)

		mockRepo.EXPECT().
			Upsert(gomock.Any(), gomock.Any()).
			Return("", errors.New("database error"))

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		err := svc.Create(ctx, dto.CreateCustomerRequest{FullName: "Jane Guest"})

		assert.Error(t, err)
	})
}

func TestCustomerService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc, mockRepo := newCustomerService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Customer{ID: "customer-1", FullName: "Jane Guest"}, nil)

		res, err := svc.Get(context.Background(), "customer-1")

		require.NoError(t, err)
		assert.Equal(t, "Jane Guest", res.FullName)
	})

	t.Run("not found", func(t *testing.T) {
		svc, mockRepo := newCustomerService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Customer{}, nil)

		_, err := svc.Get(context.Background(), "customer-404")

		require.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestCustomerService_Update(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.UpdateCustomerRequest
		setupMock func(mockRepo *customerMocks.MockCustomer)
		wantErr   bool
	}{
		{
			name: "successful update",
			req:  dto.UpdateCustomerRequest{Phone: "+628999999999"},
			setupMock: func(mockRepo *customerMocks.MockCustomer) {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "customer not found",
			req:  dto.UpdateCustomerRequest{Phone: "+628999999999"},
			setupMock: func(mockRepo *customerMocks.MockCustomer) {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo := newCustomerService(t)
			tt.setupMock(mockRepo)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Update(ctx, tt.req, "customer-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
