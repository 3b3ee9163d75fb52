package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"campsite/config"
	otelMocks "campsite/infras/otel/mocks"
	"campsite/internal/domains/accommodation/mocks"
	"campsite/internal/domains/accommodation/model"
	"campsite/internal/domains/accommodation/model/dto"
	"campsite/internal/domains/accommodation/service"
	"campsite/shared/cache"
	cacheMocks "campsite/shared/cache/mocks"
	gDto "campsite/shared/dto"
	"campsite/shared/failure"
)

func newAccommodationService(ctrl *gomock.Controller) (service.AccommodationType, *mocks.MockAccommodationType, *cacheMocks.MockRedisCache) {
	mockRepo := mocks.NewMockAccommodationType(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	svc := service.New(mockRepo, &config.Config{}, mockCache, otelMocks.NewOtel())

	return svc, mockRepo, mockCache
}

func TestAccommodationService_Create(t *testing.T) {
	inactive := false

	tests := []struct {
		name       string
		req        dto.CreateAccommodationTypeRequest
		setupMock  func(repo *mocks.MockAccommodationType, mockCache *cacheMocks.MockRedisCache)
		wantErr    bool
		wantCode   int
		wantActive bool
	}{
		{
			name: "successful create defaults to active",
			req: dto.CreateAccommodationTypeRequest{
				Name:        "Lakeside Cabin",
				Code:        "cabin",
				BasePrice:   150,
				Capacity:    4,
				Description: "Cozy cabin with a lake view",
			},
			setupMock: func(repo *mocks.MockAccommodationType, mockCache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, accommodationType model.AccommodationType) error {
						assert.True(t, accommodationType.IsActive)
						assert.NotEmpty(t, accommodationType.ID)

						return nil
					})

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantActive: true,
		},
		{
			name: "explicit inactive flag is preserved",
			req: dto.CreateAccommodationTypeRequest{
				Name:      "Winter Tent",
				Code:      "winter-tent",
				BasePrice: 50,
				Capacity:  2,
				IsActive:  &inactive,
			},
			setupMock: func(repo *mocks.MockAccommodationType, mockCache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantActive: false,
		},
		{
			name: "duplicate name or code",
			req: dto.CreateAccommodationTypeRequest{
				Name:      "Lakeside Cabin",
				Code:      "cabin",
				BasePrice: 150,
				Capacity:  4,
			},
			setupMock: func(repo *mocks.MockAccommodationType, mockCache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: "23505"})
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mockRepo, mockCache := newAccommodationService(ctrl)

			tt.setupMock(mockRepo, mockCache)

			res, err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.req.Name, res.Name)
			assert.Equal(t, tt.req.Code, res.Code)
			assert.Equal(t, tt.req.BasePrice, res.BasePrice)
			assert.Equal(t, tt.req.Capacity, res.Capacity)
			assert.Equal(t, tt.wantActive, res.IsActive)
		})
	}
}

func TestAccommodationService_GetAllActive(t *testing.T) {
	storedTypes := []model.AccommodationType{
		{ID: "type-id-1", Name: "Lakeside Cabin", Code: "cabin", BasePrice: 150, Capacity: 4, IsActive: true},
		{ID: "type-id-2", Name: "Forest Tent", Code: "tent", BasePrice: 40, Capacity: 2, IsActive: true},
	}

	t.Run("cache hit skips the repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _, mockCache := newAccommodationService(ctrl)

		mockCache.EXPECT().
			Get(gomock.Any(), "accommodation_type:gets:active", gomock.Any()).
			Return(nil)

		_, err := svc.GetAllActive(context.Background())

		assert.NoError(t, err)
	})

	t.Run("cache miss queries active types only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, mockRepo, mockCache := newAccommodationService(ctrl)

		mockCache.EXPECT().
			Get(gomock.Any(), "accommodation_type:gets:active", gomock.Any()).
			Return(cache.Nil)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.AccommodationType, error) {
				assert.Len(t, filter.Filters, 1)

				return storedTypes, nil
			})

		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.GetAllActive(context.Background())

		assert.NoError(t, err)
		assert.Len(t, res.AccommodationTypes, 2)
	})
}

func TestAccommodationService_Get(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		setupMock func(repo *mocks.MockAccommodationType, mockCache *cacheMocks.MockRedisCache)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "found",
			id:   "type-id-1",
			setupMock: func(repo *mocks.MockAccommodationType, mockCache *cacheMocks.MockRedisCache) {
				mockCache.EXPECT().
					Get(gomock.Any(), "accommodation_type:get:type-id-1", gomock.Any()).
					Return(cache.Nil)

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.AccommodationType{ID: "type-id-1", Name: "Lakeside Cabin", Code: "cabin", BasePrice: 150, Capacity: 4, IsActive: true}, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
		},
		{
			name: "not found",
			id:   "missing-id",
			setupMock: func(repo *mocks.MockAccommodationType, mockCache *cacheMocks.MockRedisCache) {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(cache.Nil)

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.AccommodationType{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "repository failure",
			id:   "type-id-1",
			setupMock: func(repo *mocks.MockAccommodationType, mockCache *cacheMocks.MockRedisCache) {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(cache.Nil)

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.AccommodationType{}, errors.New("query failed"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mockRepo, mockCache := newAccommodationService(ctrl)

			tt.setupMock(mockRepo, mockCache)

			res, err := svc.Get(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.id, res.ID)
		})
	}
}
