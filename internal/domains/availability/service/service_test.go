package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	otelMocks "campsite/infras/otel/mocks"
	"campsite/internal/domains/availability/mocks"
	"campsite/internal/domains/availability/model"
	"campsite/internal/domains/availability/model/dto"
	"campsite/internal/domains/availability/service"
	gDto "campsite/shared/dto"
	"campsite/shared/failure"
	"campsite/shared/timezone"
)

func newAvailabilityService(ctrl *gomock.Controller) (service.Availability, *mocks.MockAvailability) {
	mockRepo := mocks.NewMockAvailability(ctrl)

	svc := service.New(mockRepo, otelMocks.NewOtel())

	return svc, mockRepo
}

func TestAvailabilityService_Check(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		setupMock func(repo *mocks.MockAvailability)
		wantErr   bool
		wantCode  int
		wantRes   dto.AvailabilityResponse
	}{
		{
			name: "cached quantity returned",
			date: "2025-07-01",
			setupMock: func(repo *mocks.MockAvailability) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.AvailabilityCache{
						ID:                  "availability-id-1",
						AccommodationTypeID: "type-id-1",
						Date:                time.Date(2025, 7, 1, 0, 0, 0, 0, timezone.GetLocation()),
						AvailableQuantity:   3,
						UpdatedAt:           time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC),
					}, nil)
			},
			wantRes: dto.AvailabilityResponse{
				AccommodationTypeID: "type-id-1",
				Date:                "2025-07-01",
				AvailableQuantity:   3,
				UpdatedAt:           timezone.Format(time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC), time.RFC3339),
			},
		},
		{
			name: "missing row reports zero quantity",
			date: "2025-07-02",
			setupMock: func(repo *mocks.MockAvailability) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.AvailabilityCache{}, nil)
			},
			wantRes: dto.AvailabilityResponse{
				AccommodationTypeID: "type-id-1",
				Date:                "2025-07-02",
				AvailableQuantity:   0,
				Message:             dto.MessageNoData,
			},
		},
		{
			name:      "malformed date rejected before store access",
			date:      "07/01/2025",
			setupMock: func(repo *mocks.MockAvailability) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "empty date rejected",
			date:      "",
			setupMock: func(repo *mocks.MockAvailability) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "repository failure",
			date: "2025-07-01",
			setupMock: func(repo *mocks.MockAvailability) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.AvailabilityCache{}, errors.New("query failed"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mockRepo := newAvailabilityService(ctrl)

			tt.setupMock(mockRepo)

			res, err := svc.Check(context.Background(), "type-id-1", tt.date)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantRes, res)
		})
	}
}

func TestAvailabilityService_Check_MalformedDateMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newAvailabilityService(ctrl)

	_, err := svc.Check(context.Background(), "type-id-1", "not-a-date")

	assert.Error(t, err)
	assert.Equal(t, failure.InvalidDateParam, err)
}

func TestAvailabilityService_Check_FilterShape(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newAvailabilityService(ctrl)

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter gDto.FilterGroup, _ ...string) (model.AvailabilityCache, error) {
			assert.Equal(t, gDto.FilterGroupOperatorAnd, filter.Operator)
			assert.Len(t, filter.Filters, 2)

			return model.AvailabilityCache{}, nil
		})

	_, err := svc.Check(context.Background(), "type-id-1", "2025-07-01")

	assert.NoError(t, err)
}
