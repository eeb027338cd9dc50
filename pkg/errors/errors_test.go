package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(CodeInvalidInput, "email is required", http.StatusBadRequest)

	if err.Code != CodeInvalidInput {
		t.Errorf("expected code %s, got %s", CodeInvalidInput, err.Code)
	}
	if err.Message != "email is required" {
		t.Errorf("expected message 'email is required', got %s", err.Message)
	}
	if err.HTTPStatus != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, err.HTTPStatus)
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without underlying error",
			appErr:   NotFound("Booking"),
			expected: "NOT_FOUND: Booking not found",
		},
		{
			name:     "with underlying error",
			appErr:   Internal("failed to persist booking", errors.New("connection reset")),
			expected: "INTERNAL_ERROR: failed to persist booking (caused by: connection reset)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.appErr.Error(); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("no reachable servers")
	appErr := Internal("store unreachable", cause)

	if !errors.Is(appErr, cause) {
		t.Error("expected errors.Is to find the wrapped cause")
	}
}

func TestConstructors_StatusCodes(t *testing.T) {
	tests := []struct {
		err    *AppError
		status int
	}{
		{NotFound("User"), http.StatusNotFound},
		{NotFoundWithID("Booking", "TR-123456"), http.StatusNotFound},
		{InvalidInput("email is required"), http.StatusBadRequest},
		{Validation("invalid payload", nil), http.StatusBadRequest},
		{Conflict("User with this email already exists"), http.StatusConflict},
		{Internal("boom", nil), http.StatusInternalServerError},
		{Unavailable("record store"), http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.err.Code, func(t *testing.T) {
			if tt.err.StatusCode() != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, tt.err.StatusCode())
			}
		})
	}
}

func TestAsAppError(t *testing.T) {
	appErr := Conflict("duplicate")
	if got := AsAppError(appErr); got != appErr {
		t.Error("expected AsAppError to pass AppError through unchanged")
	}

	plain := fmt.Errorf("cursor closed")
	wrapped := AsAppError(plain)
	if wrapped.Code != CodeInternal {
		t.Errorf("expected plain errors to wrap as %s, got %s", CodeInternal, wrapped.Code)
	}
	if wrapped.HTTPStatus != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", wrapped.HTTPStatus)
	}
}
