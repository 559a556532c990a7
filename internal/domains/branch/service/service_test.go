package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelier/config"
	"hotelier/infras/otel/mocks"
	branchMocks "hotelier/internal/domains/branch/mocks"
	"hotelier/internal/domains/branch/model"
	"hotelier/internal/domains/branch/model/dto"
	"hotelier/internal/domains/branch/service"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"
)

func newBranchService(t *testing.T) (service.Branch, *branchMocks.MockBranch, *branchMocks.MockArea) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := branchMocks.NewMockBranch(ctrl)
	mockAreaRepo := branchMocks.NewMockArea(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockAreaRepo, &config.Config{}, mockOtel)

	return svc, mockRepo, mockAreaRepo
}

func branchCtx() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
}

func TestBranchService_Create(t *testing.T) {
	req := dto.CreateBranchRequest{
		Name:    "Harbor Branch",
		Address: "Jl. Pelabuhan No. 1",
		Phone:   "+62215550123",
	}

	tests := []struct {
		name      string
		setupMock func(mockRepo *branchMocks.MockBranch)
		expectErr bool
	}{
		{
			name: "success",
			setupMock: func(mockRepo *branchMocks.MockBranch) {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, branch model.Branch) error {
						assert.Equal(t, "Harbor Branch", branch.Name)
						assert.True(t, branch.Active)
						assert.NotEmpty(t, branch.ID)

						return nil
					})
			},
			expectErr: false,
		},
		{
			name: "repository error",
			setupMock: func(mockRepo *branchMocks.MockBranch) {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("insert failed"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, _ := newBranchService(t)
			tt.setupMock(mockRepo)

			err := svc.Create(branchCtx(), req)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBranchService_Get(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, mockRepo, _ := newBranchService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Branch{ID: "branch-id-123", Name: "Harbor Branch", Active: true}, nil)

		res, err := svc.Get(branchCtx(), "branch-id-123")

		assert.NoError(t, err)
		assert.Equal(t, "branch-id-123", res.ID)
		assert.Equal(t, "Harbor Branch", res.Name)
	})

	t.Run("not found", func(t *testing.T) {
		svc, mockRepo, _ := newBranchService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Branch{}, nil)

		_, err := svc.Get(branchCtx(), "missing-id")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestBranchService_Update(t *testing.T) {
	active := false
	req := dto.UpdateBranchRequest{Name: "Harbor Branch Renamed", Active: &active}

	tests := []struct {
		name         string
		setupMock    func(mockRepo *branchMocks.MockBranch)
		expectErr    bool
		expectedCode int
	}{
		{
			name: "success",
			setupMock: func(mockRepo *branchMocks.MockBranch) {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, "Harbor Branch Renamed", fields[model.FieldName])
						assert.Equal(t, &active, fields[model.FieldActive])

						return nil
					})
			},
			expectErr: false,
		},
		{
			name: "branch not found",
			setupMock: func(mockRepo *branchMocks.MockBranch) {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			expectErr:    true,
			expectedCode: 404,
		},
		{
			name: "update error",
			setupMock: func(mockRepo *branchMocks.MockBranch) {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("update failed"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, _ := newBranchService(t)
			tt.setupMock(mockRepo)

			err := svc.Update(branchCtx(), req, "branch-id-123")

			if tt.expectErr {
				assert.Error(t, err)
				if tt.expectedCode != 0 {
					assert.Equal(t, tt.expectedCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBranchService_Delete(t *testing.T) {
	tests := []struct {
		name         string
		setupMock    func(mockRepo *branchMocks.MockBranch)
		expectErr    bool
		expectedCode int
	}{
		{
			name: "success",
			setupMock: func(mockRepo *branchMocks.MockBranch) {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectErr: false,
		},
		{
			name: "branch not found",
			setupMock: func(mockRepo *branchMocks.MockBranch) {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			expectErr:    true,
			expectedCode: 404,
		},
		{
			name: "referenced rows block deletion",
			setupMock: func(mockRepo *branchMocks.MockBranch) {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: pq.ErrorCode(constant.PqErrorCodeFkViolation)})
			},
			expectErr:    true,
			expectedCode: 409,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, _ := newBranchService(t)
			tt.setupMock(mockRepo)

			err := svc.Delete(branchCtx(), "branch-id-123")

			if tt.expectErr {
				assert.Error(t, err)
				if tt.expectedCode != 0 {
					assert.Equal(t, tt.expectedCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBranchService_CreateArea(t *testing.T) {
	req := dto.CreateAreaRequest{
		BranchID: "branch-id-123",
		Name:     "2nd Floor",
	}

	t.Run("success", func(t *testing.T) {
		svc, mockRepo, mockAreaRepo := newBranchService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockAreaRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, area model.Area) error {
				assert.Equal(t, "branch-id-123", area.BranchID)
				assert.Equal(t, "2nd Floor", area.Name)

				return nil
			})

		err := svc.CreateArea(branchCtx(), req)

		assert.NoError(t, err)
	})

	t.Run("unknown branch", func(t *testing.T) {
		svc, mockRepo, _ := newBranchService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.CreateArea(branchCtx(), req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestBranchService_GetAreas(t *testing.T) {
	t.Run("filters by branch", func(t *testing.T) {
		svc, _, mockAreaRepo := newBranchService(t)

		mockAreaRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Area, error) {
				assert.Len(t, filter.Filters, 1)
				branchFilter, ok := filter.Filters[0].(gDto.Filter)
				assert.True(t, ok)
				assert.Equal(t, "branch-id-123", branchFilter.Value)

				return []model.Area{
					{ID: "area-1", BranchID: "branch-id-123", Name: "1st Floor"},
					{ID: "area-2", BranchID: "branch-id-123", Name: "2nd Floor"},
				}, nil
			})

		res, err := svc.GetAreas(branchCtx(), "branch-id-123")

		assert.NoError(t, err)
		assert.Len(t, res.Areas, 2)
		assert.Equal(t, "1st Floor", res.Areas[0].Name)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, _, mockAreaRepo := newBranchService(t)

		mockAreaRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("query failed"))

		_, err := svc.GetAreas(branchCtx(), "")

		assert.Error(t, err)
	})
}

func TestBranchService_DeleteArea(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, _, mockAreaRepo := newBranchService(t)

		mockAreaRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockAreaRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		err := svc.DeleteArea(branchCtx(), "area-1")

		assert.NoError(t, err)
	})

	t.Run("area not found", func(t *testing.T) {
		svc, _, mockAreaRepo := newBranchService(t)

		mockAreaRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.DeleteArea(branchCtx(), "missing-area")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
