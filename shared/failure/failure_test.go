package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"hotelier/shared/failure"
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
			name:    "InvalidLimitParam",
			failure: failure.InvalidLimitParam,
			code:    http.StatusBadRequest,
			message: "invalid limit parameter",
		},
		{
			name:    "ForbiddenError",
			failure: failure.ForbiddenError,
			code:    http.StatusForbidden,
			message: "You don't have the required permissions",
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
			err:     failure.BadRequestFromString("bad input"),
			code:    http.StatusBadRequest,
			message: "bad input",
		},
		{
			name:    "Unauthorized",
			err:     failure.Unauthorized("missing token"),
			code:    http.StatusUnauthorized,
			message: "missing token",
		},
		{
			name:    "NotFound",
			err:     failure.NotFound("booking not found"),
			code:    http.StatusNotFound,
			message: "booking not found",
		},
		{
			name:    "Conflict",
			err:     failure.Conflict("already exists"),
			code:    http.StatusConflict,
			message: "already exists",
		},
		{
			name:    "Forbidden",
			err:     failure.Forbidden("not allowed"),
			code:    http.StatusForbidden,
			message: "not allowed",
		},
		{
			name:    "InternalError",
			err:     failure.InternalError(errors.New("boom")),
			code:    http.StatusInternalServerError,
			message: "boom",
		},
		{
			name:    "RoomNotAvailable",
			err:     failure.RoomNotAvailable("101"),
			code:    http.StatusConflict,
			message: "room is not available: 101",
		},
		{
			name:    "RoomNotOccupied",
			err:     failure.RoomNotOccupied("101"),
			code:    http.StatusConflict,
			message: "room is not occupied: 101",
		},
		{
			name:    "InvalidState",
			err:     failure.InvalidState("booking is not checked in"),
			code:    http.StatusConflict,
			message: "booking is not checked in",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fail *failure.Failure
			if !errors.As(tt.err, &fail) {
				t.Fatal("expected error to be a *failure.Failure")
			}

			if fail.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, fail.Code)
			}
			if fail.Message != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, fail.Message)
			}
		})
	}
}

func TestNilErrors(t *testing.T) {
	if failure.BadRequest(nil) != nil {
		t.Error("expected BadRequest(nil) to be nil")
	}
	if failure.InternalError(nil) != nil {
		t.Error("expected InternalError(nil) to be nil")
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "failure error",
			err:      failure.NotFound("missing"),
			expected: http.StatusNotFound,
		},
		{
			name:     "wrapped failure error",
			err:      fmt.Errorf("outer: %w", failure.Conflict("inner")),
			expected: http.StatusConflict,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.expected {
				t.Errorf("expected code %d, got %d", tt.expected, got)
			}
		})
	}
}
