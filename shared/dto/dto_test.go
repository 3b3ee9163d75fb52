package dto_test

import (
	"campsite/shared/dto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name       string
		filter     dto.Filter
		wantClause string
		wantArgs   map[string]any
	}{
		{
			name: "eq with table",
			filter: dto.Filter{
				Field:    "status",
				Operator: dto.FilterOperatorEq,
				Value:    "pending",
				Table:    "bookings",
			},
			wantClause: "bookings.status = :status",
			wantArgs:   map[string]any{"status": "pending"},
		},
		{
			name: "eq without table",
			filter: dto.Filter{
				Field:    "id",
				Operator: dto.FilterOperatorEq,
				Value:    "booking-id-1",
			},
			wantClause: "id = :id",
			wantArgs:   map[string]any{"id": "booking-id-1"},
		},
		{
			name: "custom arg name",
			filter: dto.Filter{
				ArgName:  "start",
				Field:    "date",
				Operator: dto.FilterOperatorGreaterEq,
				Value:    "2025-07-01",
				Table:    "availability_cache",
			},
			wantClause: "availability_cache.date >= :start",
			wantArgs:   map[string]any{"start": "2025-07-01"},
		},
		{
			name: "not eq",
			filter: dto.Filter{
				Field:    "status",
				Operator: dto.FilterOperatorNotEq,
				Value:    "cancelled",
			},
			wantClause: "status != :status",
			wantArgs:   map[string]any{"status": "cancelled"},
		},
		{
			name: "is null",
			filter: dto.Filter{
				Field:    "updated_at",
				Operator: dto.FilterIsNull,
			},
			wantClause: "updated_at IS NULL",
			wantArgs:   map[string]any{},
		},
		{
			name: "unknown operator yields nothing",
			filter: dto.Filter{
				Field:    "status",
				Operator: "between",
			},
			wantClause: "",
			wantArgs:   map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clause, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantClause, strings.TrimSpace(clause))
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilter_GetWhereClause_In(t *testing.T) {
	filter := dto.Filter{
		Field:    "status",
		Operator: dto.FilterOperatorIn,
		Value:    []string{"pending", "confirmed"},
		Table:    "bookings",
	}

	clause, args := filter.GetWhereClause()

	assert.Equal(t, "bookings.status IN (:status_0, :status_1)", strings.TrimSpace(clause))
	assert.Equal(t, map[string]any{"status_0": "pending", "status_1": "confirmed"}, args)
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    "accommodation_type_id",
				Operator: dto.FilterOperatorEq,
				Value:    "type-id-1",
				Table:    "availability_cache",
			},
			dto.Filter{
				Field:    "date",
				Operator: dto.FilterOperatorEq,
				Value:    "2025-07-01",
				Table:    "availability_cache",
			},
		},
	}

	clause, args := group.GetWhereClause()

	assert.Equal(t, "(availability_cache.accommodation_type_id = :accommodation_type_id AND availability_cache.date = :date)", clause)
	assert.Equal(t, map[string]any{
		"accommodation_type_id": "type-id-1",
		"date":                  "2025-07-01",
	}, args)
}

func TestFilterGroup_GetWhereClause_Empty(t *testing.T) {
	group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

	clause, args := group.GetWhereClause()

	assert.Empty(t, clause)
	assert.Empty(t, args)
}

func TestFilterGroup_GetWhereClause_Nested(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorOr,
		Filters: []any{
			dto.Filter{
				Field:    "status",
				Operator: dto.FilterOperatorEq,
				Value:    "pending",
			},
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorAnd,
				Filters: []any{
					dto.Filter{
						Field:    "status",
						Operator: dto.FilterOperatorEq,
						ArgName:  "other_status",
						Value:    "failed",
					},
				},
			},
		},
	}

	clause, args := group.GetWhereClause()

	assert.Equal(t, "(status = :status OR (status = :other_status))", clause)
	assert.Len(t, args, 2)
}
