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
	"campsite/internal/domains/review/mocks"
	"campsite/internal/domains/review/model"
	"campsite/internal/domains/review/model/dto"
	"campsite/internal/domains/review/service"
	"campsite/shared/cache"
	cacheMocks "campsite/shared/cache/mocks"
	gDto "campsite/shared/dto"
	"campsite/shared/failure"
	"campsite/shared/timezone"
)

func newReviewService(ctrl *gomock.Controller) (service.Review, *mocks.MockReview, *cacheMocks.MockRedisCache) {
	mockRepo := mocks.NewMockReview(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	svc := service.New(mockRepo, &config.Config{}, mockCache, otelMocks.NewOtel())

	return svc, mockRepo, mockCache
}

func TestReviewService_Create(t *testing.T) {
	validReq := dto.CreateReviewRequest{
		ExternalID: "ext-review-1",
		AuthorName: "Anna K.",
		AvatarURL:  "https://cdn.example.com/avatars/anna.png",
		Rating:     5,
		Text:       "Lovely place by the lake.",
		CreatedAt:  "2025-06-15T10:30:00Z",
	}

	tests := []struct {
		name      string
		req       dto.CreateReviewRequest
		setupMock func(repo *mocks.MockReview, mockCache *cacheMocks.MockRedisCache)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful create is approved by default",
			req:  validReq,
			setupMock: func(repo *mocks.MockReview, mockCache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, review model.Review) error {
						assert.True(t, review.IsApproved)
						assert.NotEmpty(t, review.ID)

						return nil
					})

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
		},
		{
			name: "duplicate external_id",
			req:  validReq,
			setupMock: func(repo *mocks.MockReview, mockCache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: "23505"})
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "malformed created_at",
			req: dto.CreateReviewRequest{
				ExternalID: "ext-review-2",
				AuthorName: "Anna K.",
				Rating:     4,
				CreatedAt:  "15.06.2025",
			},
			setupMock: func(repo *mocks.MockReview, mockCache *cacheMocks.MockRedisCache) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mockRepo, mockCache := newReviewService(ctrl)

			tt.setupMock(mockRepo, mockCache)

			res, err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.req.ExternalID, res.ExternalID)
			assert.True(t, res.IsApproved)
		})
	}
}

func TestReviewService_GetAll(t *testing.T) {
	storedReviews := []model.Review{
		{
			ID:         "review-id-2",
			ExternalID: "ext-2",
			AuthorName: "Boris",
			Rating:     4,
			CreatedAt:  timezone.Now(),
			ParsedAt:   timezone.Now(),
			IsApproved: true,
		},
		{
			ID:         "review-id-1",
			ExternalID: "ext-1",
			AuthorName: "Anna",
			Rating:     5,
			CreatedAt:  timezone.Now().AddDate(0, 0, -1),
			ParsedAt:   timezone.Now(),
			IsApproved: true,
		},
	}

	tests := []struct {
		name         string
		approvedOnly bool
		cacheKey     string
		wantFilters  int
	}{
		{
			name:         "approved only filters by is_approved",
			approvedOnly: true,
			cacheKey:     "review:gets:true",
			wantFilters:  1,
		},
		{
			name:         "all reviews applies no filter",
			approvedOnly: false,
			cacheKey:     "review:gets:false",
			wantFilters:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mockRepo, mockCache := newReviewService(ctrl)

			mockCache.EXPECT().
				Get(gomock.Any(), tt.cacheKey, gomock.Any()).
				Return(cache.Nil)

			mockRepo.EXPECT().
				GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Review, error) {
					assert.Len(t, filter.Filters, tt.wantFilters)
					assert.Equal(t, "reviews.created_at", params.SortBy)
					assert.Equal(t, gDto.SortDirDesc, params.SortDir)

					return storedReviews, nil
				})

			mockCache.EXPECT().
				Save(gomock.Any(), tt.cacheKey, gomock.Any(), gomock.Any()).
				Return(nil).
				AnyTimes()

			res, err := svc.GetAll(context.Background(), tt.approvedOnly)

			assert.NoError(t, err)
			assert.Len(t, res.Reviews, 2)
			assert.Equal(t, "review-id-2", res.Reviews[0].ID)
		})
	}
}

func TestReviewService_SetApproval(t *testing.T) {
	rejected := false

	stored := model.Review{
		ID:         "review-id-1",
		ExternalID: "ext-1",
		AuthorName: "Anna",
		Rating:     5,
		CreatedAt:  timezone.Now(),
		ParsedAt:   timezone.Now(),
		IsApproved: false,
	}

	tests := []struct {
		name      string
		setupMock func(repo *mocks.MockReview, mockCache *cacheMocks.MockRedisCache)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful rejection",
			setupMock: func(repo *mocks.MockReview, mockCache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req map[string]any, _ any) error {
						assert.Equal(t, false, req[model.FieldIsApproved])

						return nil
					})

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(stored, nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
		},
		{
			name: "review not found",
			setupMock: func(repo *mocks.MockReview, mockCache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "update failure",
			setupMock: func(repo *mocks.MockReview, mockCache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("write failed"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mockRepo, mockCache := newReviewService(ctrl)

			tt.setupMock(mockRepo, mockCache)

			res, err := svc.SetApproval(context.Background(), dto.UpdateReviewApprovalRequest{IsApproved: &rejected}, "review-id-1")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.False(t, res.IsApproved)
		})
	}
}
