package validator_test

import (
	"campsite/shared/failure"
	"campsite/shared/validator"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type createBookingBody struct {
	AccommodationTypeID string  `json:"accommodation_type_id" validate:"required"`
	GuestDataID         string  `json:"guest_data_id"         validate:"required"`
	StartDate           string  `json:"start_date"            validate:"required,dateonly"`
	EndDate             string  `json:"end_date"              validate:"required,dateonly"`
	NumberNights        int     `json:"number_nights"         validate:"required,gt=0"`
	TotalAmount         float64 `json:"total_amount"          validate:"required,gt=0"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name:    "valid body",
			body:    `{"accommodation_type_id":"type-id-1","guest_data_id":"guest-id-1","start_date":"2025-07-01","end_date":"2025-07-04","number_nights":3,"total_amount":450}`,
			wantErr: false,
		},
		{
			name:    "malformed json",
			body:    `{"accommodation_type_id":`,
			wantErr: true,
		},
		{
			name:    "missing required field",
			body:    `{"guest_data_id":"guest-id-1","start_date":"2025-07-01","end_date":"2025-07-04","number_nights":3,"total_amount":450}`,
			wantErr: true,
		},
		{
			name:    "bad date format",
			body:    `{"accommodation_type_id":"type-id-1","guest_data_id":"guest-id-1","start_date":"01.07.2025","end_date":"2025-07-04","number_nights":3,"total_amount":450}`,
			wantErr: true,
		},
		{
			name:    "non positive nights",
			body:    `{"accommodation_type_id":"type-id-1","guest_data_id":"guest-id-1","start_date":"2025-07-01","end_date":"2025-07-04","number_nights":0,"total_amount":450}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body createBookingBody

			err := validator.Validate(strings.NewReader(tt.body), &body)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestValidateStruct(t *testing.T) {
	valid := createBookingBody{
		AccommodationTypeID: "type-id-1",
		GuestDataID:         "guest-id-1",
		StartDate:           "2025-07-01",
		EndDate:             "2025-07-04",
		NumberNights:        3,
		TotalAmount:         450,
	}

	assert.NoError(t, validator.ValidateStruct(&valid))

	invalid := valid
	invalid.StartDate = "not-a-date"

	err := validator.ValidateStruct(&invalid)

	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("2025-07-01", "dateonly"))
	assert.Error(t, validator.ValidateVar("tomorrow", "dateonly"))
	assert.Error(t, validator.ValidateVar("not-an-email", "email"))
}
