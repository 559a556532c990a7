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
	roomMocks "hotelier/internal/domains/room/mocks"
	"hotelier/internal/domains/room/model"
	"hotelier/internal/domains/room/model/dto"
	"hotelier/internal/domains/room/service"
	cacheMocks "hotelier/shared/cache/mocks"
	"hotelier/shared/constant"
	"hotelier/shared/failure"
)

func newRoomService(t *testing.T) (service.Room, *roomMocks.MockRoom, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	return svc, mockRepo, mockCache
}

func allowInvalidation(mockCache *cacheMocks.MockRedisCache) {
	mockCache.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
}

func TestRoomService_Create(t *testing.T) {
	req := dto.CreateRoomRequest{
		BranchID:    "branch-1",
		RoomClassID: "class-1",
		Name:        "101",
	}

	tests := []struct {
		name      string
		setupMock func(mockRepo *roomMocks.MockRoom)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation",
			setupMock: func(mockRepo *roomMocks.MockRoom) {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "duplicate name in branch",
			setupMock: func(mockRepo *roomMocks.MockRoom) {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: pq.ErrorCode(constant.PqErrorCodeUniqueViolation)})
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "unknown room class",
			setupMock: func(mockRepo *roomMocks.MockRoom) {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: pq.ErrorCode(constant.PqErrorCodeFkViolation)})
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name: "repository error",
			setupMock: func(mockRepo *roomMocks.MockRoom) {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache := newRoomService(t)
			allowInvalidation(mockCache)
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

func TestRoomService_UpdateStatus(t *testing.T) {
	availableRoom := model.Room{
		ID:       "room-1",
		BranchID: "branch-1",
		Name:     "101",
		Status:   constant.RoomStatusAvailable,
	}

	tests := []struct {
		name      string
		setupMock func(mockRepo *roomMocks.MockRoom)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "housekeeping move",
			setupMock: func(mockRepo *roomMocks.MockRoom) {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableRoom, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Equal(t, constant.RoomStatusDirty, fields["status"])

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "room not found",
			setupMock: func(mockRepo *roomMocks.MockRoom) {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "occupied room is owned by the booking",
			setupMock: func(mockRepo *roomMocks.MockRoom) {
				occupied := availableRoom
				occupied.Status = constant.RoomStatusOccupied

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(occupied, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache := newRoomService(t)
			allowInvalidation(mockCache)
			tt.setupMock(mockRepo)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.UpdateStatus(ctx, dto.UpdateRoomStatusRequest{Status: constant.RoomStatusDirty}, "room-1")

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

func TestRoomService_GetBoard(t *testing.T) {
	svc, mockRepo, _ := newRoomService(t)

	guest := "Jane Guest"
	code := "DP20250310140000"

	rows := []model.BoardRow{
		{RoomID: "room-1", RoomName: "101", Status: constant.RoomStatusOccupied, ClassName: "Deluxe", BookingCode: &code, GuestName: &guest},
		{RoomID: "room-2", RoomName: "102", Status: constant.RoomStatusAvailable, ClassName: "Deluxe"},
	}

	mockRepo.EXPECT().
		GetBoard(gomock.Any(), "branch-1").
		Return(rows, nil)

	res, err := svc.GetBoard(context.Background(), "branch-1")

	require.NoError(t, err)
	require.Len(t, res.Board, 2)
	assert.Equal(t, "101", res.Board[0].RoomName)
	assert.Equal(t, &guest, res.Board[0].GuestName)
	assert.Nil(t, res.Board[1].GuestName)
}
