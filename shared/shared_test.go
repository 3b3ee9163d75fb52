package shared_test

import (
	"campsite/shared"
	"campsite/shared/dto"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool {
	return &b
}

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{
			name:     "empty string returns nil",
			input:    "",
			expected: nil,
		},
		{
			name:     "valid true string",
			input:    "true",
			expected: boolPtr(true),
		},
		{
			name:     "valid false string",
			input:    "false",
			expected: boolPtr(false),
		},
		{
			name:     "valid 1 string",
			input:    "1",
			expected: boolPtr(true),
		},
		{
			name:     "valid 0 string",
			input:    "0",
			expected: boolPtr(false),
		},
		{
			name:     "invalid string returns nil",
			input:    "not-a-bool",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.ConvertStringToBool(tt.input)

			if tt.expected == nil {
				assert.Nil(t, result)

				return
			}

			assert.NotNil(t, result)
			assert.Equal(t, *tt.expected, *result)
		})
	}
}

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		parts    []string
		expected string
	}{
		{
			name:     "prefix only",
			prefix:   "booking:gets",
			parts:    nil,
			expected: "booking:gets",
		},
		{
			name:     "single part",
			prefix:   "booking:get",
			parts:    []string{"booking-id-1"},
			expected: "booking:get:booking-id-1",
		},
		{
			name:     "multiple parts",
			prefix:   "limiter",
			parts:    []string{"10.0.0.1", "curl"},
			expected: "limiter:10.0.0.1:curl",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.BuildCacheKey(tt.prefix, tt.parts...))
		})
	}
}

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "unique violation",
			err:      &pq.Error{Code: "23505"},
			expected: true,
		},
		{
			name:     "fk violation is not a unique violation",
			err:      &pq.Error{Code: "23503"},
			expected: false,
		},
		{
			name:     "plain error",
			err:      errors.New("boom"),
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.IsUniqueViolation(tt.err))
		})
	}
}

func TestIsFkViolation(t *testing.T) {
	assert.True(t, shared.IsFkViolation(&pq.Error{Code: "23503"}))
	assert.False(t, shared.IsFkViolation(&pq.Error{Code: "23505"}))
	assert.False(t, shared.IsFkViolation(errors.New("boom")))
}

func TestFilterByID(t *testing.T) {
	filterGroup := shared.FilterByID("booking-id-1", "id", "bookings")

	assert.Len(t, filterGroup.Filters, 1)

	filter, ok := filterGroup.Filters[0].(dto.Filter)

	assert.True(t, ok)
	assert.Equal(t, "id", filter.Field)
	assert.Equal(t, "booking-id-1", filter.Value)
	assert.Equal(t, dto.FilterOperatorEq, filter.Operator)
	assert.Equal(t, "bookings", filter.Table)
}
