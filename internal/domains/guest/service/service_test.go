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
	"campsite/internal/domains/guest/mocks"
	"campsite/internal/domains/guest/model"
	"campsite/internal/domains/guest/model/dto"
	"campsite/internal/domains/guest/service"
	"campsite/shared/cache"
	cacheMocks "campsite/shared/cache/mocks"
	"campsite/shared/failure"
)

func newGuestService(ctrl *gomock.Controller) (service.Guest, *mocks.MockGuest, *cacheMocks.MockRedisCache) {
	mockRepo := mocks.NewMockGuest(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	svc := service.New(mockRepo, &config.Config{}, mockCache, otelMocks.NewOtel())

	return svc, mockRepo, mockCache
}

func TestGuestService_Create(t *testing.T) {
	validReq := dto.CreateGuestRequest{
		Name:        "Ivan",
		Surname:     "Petrov",
		Email:       "ivan.petrov@example.com",
		NumberPhone: "+79991234567",
	}

	tests := []struct {
		name      string
		req       dto.CreateGuestRequest
		setupMock func(repo *mocks.MockGuest, mockCache *cacheMocks.MockRedisCache)
		wantErr   bool
		wantCode  int
		wantMsg   string
	}{
		{
			name: "successful create",
			req:  validReq,
			setupMock: func(repo *mocks.MockGuest, mockCache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
		},
		{
			name: "duplicate email",
			req:  validReq,
			setupMock: func(repo *mocks.MockGuest, mockCache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: "23505"})
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
			wantMsg:  "Email already exists",
		},
		{
			name: "repository failure",
			req:  validReq,
			setupMock: func(repo *mocks.MockGuest, mockCache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
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

			svc, mockRepo, mockCache := newGuestService(ctrl)

			tt.setupMock(mockRepo, mockCache)

			res, err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				if tt.wantMsg != "" {
					assert.Equal(t, tt.wantMsg, err.Error())
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.req.Name, res.Name)
			assert.Equal(t, tt.req.Surname, res.Surname)
			assert.Equal(t, tt.req.Email, res.Email)
			assert.Equal(t, tt.req.NumberPhone, res.NumberPhone)
			assert.NotEmpty(t, res.ID)
		})
	}
}

func TestGuestService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache := newGuestService(ctrl)

	mockCache.EXPECT().
		Get(gomock.Any(), "guest:gets:all", gomock.Any()).
		Return(cache.Nil)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.GuestData{
			{ID: "guest-id-1", Name: "Ivan", Surname: "Petrov", Email: "ivan.petrov@example.com", NumberPhone: "+79991234567"},
		}, nil)

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := svc.GetAll(context.Background())

	assert.NoError(t, err)
	assert.Len(t, res.Guests, 1)
}

func TestGuestService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache := newGuestService(ctrl)

	mockCache.EXPECT().
		Get(gomock.Any(), "guest:get:missing-id", gomock.Any()).
		Return(cache.Nil)

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.GuestData{}, nil)

	_, err := svc.Get(context.Background(), "missing-id")

	assert.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	assert.Equal(t, "Guest not found", err.Error())
}
