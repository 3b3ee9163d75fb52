package failure_test

import (
	"campsite/shared/failure"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestPredefinedFailures(t *testing.T) {
	if failure.InvalidDateParam.Code != http.StatusBadRequest {
		t.Errorf("expected code to be %d, got %d", http.StatusBadRequest, failure.InvalidDateParam.Code)
	}

	if failure.InvalidDateParam.Message != "Invalid date format. Use YYYY-MM-DD" {
		t.Errorf("unexpected message: %s", failure.InvalidDateParam.Message)
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{
			name:    "BadRequest",
			err:     failure.BadRequest(errors.New("bad input")),
			code:    http.StatusBadRequest,
			message: "bad input",
		},
		{
			name:    "BadRequestFromString",
			err:     failure.BadRequestFromString("bad input string"),
			code:    http.StatusBadRequest,
			message: "bad input string",
		},
		{
			name:    "InternalError",
			err:     failure.InternalError(errors.New("boom")),
			code:    http.StatusInternalServerError,
			message: "boom",
		},
		{
			name:    "NotFound",
			err:     failure.NotFound("Booking not found"),
			code:    http.StatusNotFound,
			message: "Booking not found",
		},
		{
			name:    "Conflict",
			err:     failure.Conflict("Name or code already exists"),
			code:    http.StatusConflict,
			message: "Name or code already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, got)
			}

			if tt.err.Error() != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, tt.err.Error())
			}
		})
	}
}

func TestNilErrorsProduceNilFailures(t *testing.T) {
	if failure.BadRequest(nil) != nil {
		t.Error("expected BadRequest(nil) to be nil")
	}

	if failure.InternalError(nil) != nil {
		t.Error("expected InternalError(nil) to be nil")
	}
}

func TestGetCode(t *testing.T) {
	if got := failure.GetCode(errors.New("plain error")); got != http.StatusInternalServerError {
		t.Errorf("expected plain errors to map to %d, got %d", http.StatusInternalServerError, got)
	}

	wrapped := fmt.Errorf("wrap: %w", failure.NotFound("Guest not found"))
	if got := failure.GetCode(wrapped); got != http.StatusNotFound {
		t.Errorf("expected wrapped failure to keep its code, got %d", got)
	}
}
