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
	productMocks "hotelier/internal/domains/product/mocks"
	"hotelier/internal/domains/product/model"
	"hotelier/internal/domains/product/model/dto"
	"hotelier/internal/domains/product/service"
	cacheMocks "hotelier/shared/cache/mocks"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"
)

func newProductService(t *testing.T) (service.Product, *productMocks.MockProduct, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := productMocks.NewMockProduct(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	return svc, mockRepo, mockCache
}

func allowCacheWrites(mockCache *cacheMocks.MockRedisCache) {
	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	mockCache.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
}

func productCtx() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
}

func TestProductService_Create(t *testing.T) {
	req := dto.CreateProductRequest{
		BranchID: "branch-1",
		Name:     "Mineral Water 600ml",
		Price:    10000,
		Stock:    48,
	}

	tests := []struct {
		name      string
		setupMock func(mockRepo *productMocks.MockProduct)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation",
			setupMock: func(mockRepo *productMocks.MockProduct) {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, product model.Product) error {
						assert.Equal(t, "Mineral Water 600ml", product.Name)
						assert.Equal(t, int64(10000), product.Price)
						assert.True(t, product.Active)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "unknown branch",
			setupMock: func(mockRepo *productMocks.MockProduct) {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: pq.ErrorCode(constant.PqErrorCodeFkViolation)})
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name: "repository error",
			setupMock: func(mockRepo *productMocks.MockProduct) {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("insert failed"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache := newProductService(t)
			allowCacheWrites(mockCache)
			tt.setupMock(mockRepo)

			err := svc.Create(productCtx(), req)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProductService_Get(t *testing.T) {
	t.Run("cache miss falls through to the repository", func(t *testing.T) {
		svc, mockRepo, mockCache := newProductService(t)
		allowCacheWrites(mockCache)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Product{ID: "product-1", Name: "Mineral Water 600ml", Price: 10000}, nil)

		res, err := svc.Get(productCtx(), "product-1")

		assert.NoError(t, err)
		assert.Equal(t, "product-1", res.ID)
		assert.Equal(t, int64(10000), res.Price)
	})

	t.Run("cache hit skips the repository", func(t *testing.T) {
		svc, _, mockCache := newProductService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				res, ok := value.(*dto.ProductResponse)
				assert.True(t, ok)
				res.ID = "product-1"
				res.Name = "Mineral Water 600ml"

				return nil
			})

		res, err := svc.Get(productCtx(), "product-1")

		assert.NoError(t, err)
		assert.Equal(t, "Mineral Water 600ml", res.Name)
	})

	t.Run("not found", func(t *testing.T) {
		svc, mockRepo, mockCache := newProductService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Product{}, nil)

		_, err := svc.Get(productCtx(), "missing-product")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestProductService_GetAll(t *testing.T) {
	t.Run("cache miss counts and lists", func(t *testing.T) {
		svc, mockRepo, mockCache := newProductService(t)
		allowCacheWrites(mockCache)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss")).
			Times(2)

		mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(12, nil)
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Product{
				{ID: "product-1", Name: "Mineral Water 600ml", Price: 10000},
				{ID: "product-2", Name: "Instant Noodles", Price: 15000},
			}, nil)

		res, err := svc.GetAll(productCtx(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

		assert.NoError(t, err)
		assert.Len(t, res.Products, 2)
		assert.Equal(t, 12, res.TotalData)
		assert.Equal(t, 2, res.TotalPage)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, mockRepo, mockCache := newProductService(t)
		allowCacheWrites(mockCache)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss")).
			Times(2)

		mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil)
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("query failed"))

		_, err := svc.GetAll(productCtx(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

		assert.Error(t, err)
	})
}

func TestProductService_Update(t *testing.T) {
	price := int64(12000)
	req := dto.UpdateProductRequest{Price: &price}

	t.Run("success", func(t *testing.T) {
		svc, mockRepo, mockCache := newProductService(t)
		allowCacheWrites(mockCache)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, &price, fields[model.FieldPrice])

				return nil
			})

		err := svc.Update(productCtx(), req, "product-1")

		assert.NoError(t, err)
	})

	t.Run("product not found", func(t *testing.T) {
		svc, mockRepo, _ := newProductService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.Update(productCtx(), req, "missing-product")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestProductService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mockRepo *productMocks.MockProduct)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "success",
			setupMock: func(mockRepo *productMocks.MockProduct) {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantErr: false,
		},
		{
			name: "product not found",
			setupMock: func(mockRepo *productMocks.MockProduct) {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "order history blocks deletion",
			setupMock: func(mockRepo *productMocks.MockProduct) {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
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
			svc, mockRepo, mockCache := newProductService(t)
			allowCacheWrites(mockCache)
			tt.setupMock(mockRepo)

			err := svc.Delete(productCtx(), "product-1")

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
