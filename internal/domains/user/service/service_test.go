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
	"hotelier/infras/otel/mocks"
	userMocks "hotelier/internal/domains/user/mocks"
	"hotelier/internal/domains/user/model"
	"hotelier/internal/domains/user/model/dto"
	"hotelier/internal/domains/user/service"
	"hotelier/shared/constant"
	"hotelier/shared/failure"
)

func newUserService(t *testing.T) (service.User, *userMocks.MockUser) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := userMocks.NewMockUser(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockOtel)

	return svc, mockRepo
}

func TestUserService_Create(t *testing.T) {
	req := dto.CreateUserRequest{
		Username: "frontdesk",
		FullName: "Test Receptionist",
		Email:    "frontdesk@example.com",
		Password: "password-123",
		Role:     constant.RoleReceptionist,
	}

	tests := []struct {
		name      string
		setupMock func(mockRepo *userMocks.MockUser)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation",
			setupMock: func(mockRepo *userMocks.MockUser) {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user model.User) error {
						assert.Equal(t, req.Username, user.Username)
						assert.NotEqual(t, req.Password, user.Password)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "username already taken",
			setupMock: func(mockRepo *userMocks.MockUser) {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: pq.ErrorCode(constant.PqErrorCodeUniqueViolation)})
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "unknown branch",
			setupMock: func(mockRepo *userMocks.MockUser) {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: pq.ErrorCode(constant.PqErrorCodeFkViolation)})
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name: "repository error",
			setupMock: func(mockRepo *userMocks.MockUser) {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo := newUserService(t)
			tt.setupMock(mockRepo)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id")
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

func TestUserService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		setupMock func(mockRepo *userMocks.MockUser)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful deletion",
			id:   "other-user-id",
			setupMock: func(mockRepo *userMocks.MockUser) {
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
			name:      "cannot delete own account",
			id:        "admin-id",
			setupMock: func(mockRepo *userMocks.MockUser) {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "user not found",
			id:   "other-user-id",
			setupMock: func(mockRepo *userMocks.MockUser) {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo := newUserService(t)
			tt.setupMock(mockRepo)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id")
			err := svc.Delete(ctx, tt.id)

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
