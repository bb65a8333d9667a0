package failure_test

import (
	"bestevents/shared/failure"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "name is required",
	}

	if f.Error() != "name is required" {
		t.Errorf("expected error message to be 'name is required', got %s", f.Error())
	}
}

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    int
		message string
	}{
		{
			name:    "InvalidPageParam",
			failure: failure.InvalidPageParam,
			code:    http.StatusBadRequest,
			message: "invalid page parameter",
		},
		{
			name:    "InvalidIDParam",
			failure: failure.InvalidIDParam,
			code:    http.StatusBadRequest,
			message: "id must be a positive integer",
		},
		{
			name:    "EmptyUpdateRequest",
			failure: failure.EmptyUpdateRequest,
			code:    http.StatusBadRequest,
			message: "update request cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.failure.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, tt.failure.Code)
			}
			if tt.failure.Message != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, tt.failure.Message)
			}
		})
	}
}

func TestBadRequest(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected error
	}{
		{
			name:     "with error",
			input:    errors.New("salary must be a number"),
			expected: &failure.Failure{Code: http.StatusBadRequest, Message: "salary must be a number"},
		},
		{
			name:     "with nil error",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.BadRequest(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", result)
				}

				return
			}

			f, ok := result.(*failure.Failure)
			if !ok {
				t.Fatalf("expected result to be *failure.Failure, got %T", result)
			}

			expectedF := tt.expected.(*failure.Failure)
			if f.Code != expectedF.Code || f.Message != expectedF.Message {
				t.Errorf("expected %+v, got %+v", expectedF, f)
			}
		})
	}
}

func TestNotFoundKey(t *testing.T) {
	err := failure.NotFoundKey("employee", 99)

	if failure.GetCode(err) != http.StatusNotFound {
		t.Errorf("expected code to be %d, got %d", http.StatusNotFound, failure.GetCode(err))
	}

	if err.Error() != "employee with id 99 not found" {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestUnavailable(t *testing.T) {
	if failure.Unavailable(nil) != nil {
		t.Error("expected nil for nil error")
	}

	err := failure.Unavailable(errors.New("disk full"))
	if !failure.IsUnavailable(err) {
		t.Errorf("expected unavailable failure, got %v", err)
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "failure error",
			input:    &failure.Failure{Code: http.StatusBadRequest, Message: "test"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "wrapped failure error",
			input:    fmt.Errorf("failed to update venue: %w", failure.NotFound("venue not found")),
			expected: http.StatusNotFound,
		},
		{
			name:     "regular error",
			input:    errors.New("regular error"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "nil error",
			input:    nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.GetCode(tt.input)
			if result != tt.expected {
				t.Errorf("expected code to be %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestKindHelpers(t *testing.T) {
	wrapped := fmt.Errorf("failed to delete guest: %w", failure.NotFoundKey("guest", 3))

	if !failure.IsNotFound(wrapped) {
		t.Error("expected wrapped not found to be detected")
	}

	if failure.IsValidation(wrapped) {
		t.Error("not found must not be reported as validation failure")
	}

	if !failure.IsValidation(failure.BadRequestFromString("name is required")) {
		t.Error("expected validation failure to be detected")
	}
}
