package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"

	apperrors "resortly/pkg/errors"
	"resortly/pkg/logger"
	"resortly/pkg/model"
)

type mockUserService struct {
	registerFunc   func(ctx context.Context, user *model.User) error
	getByEmailFunc func(ctx context.Context, email string) (*model.User, error)
	updateRoleFunc func(ctx context.Context, update *model.UserRoleUpdate) error
}

func (m *mockUserService) Register(ctx context.Context, user *model.User) error {
	if m.registerFunc != nil {
		return m.registerFunc(ctx, user)
	}
	return nil
}

func (m *mockUserService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.getByEmailFunc != nil {
		return m.getByEmailFunc(ctx, email)
	}
	return &model.User{Name: "Dana Levi", Email: email}, nil
}

func (m *mockUserService) GetAll(ctx context.Context) ([]*model.User, error) {
	return []*model.User{}, nil
}

func (m *mockUserService) UpdateRole(ctx context.Context, update *model.UserRoleUpdate) error {
	if m.updateRoleFunc != nil {
		return m.updateRoleFunc(ctx, update)
	}
	return nil
}

func (m *mockUserService) UpdateInfo(ctx context.Context, update *model.UserInfoUpdate) error {
	return nil
}

func newTestRouter(svc *mockUserService) *httprouter.Router {
	h := NewUserHandler(svc, logger.New(logger.Config{Level: "error", Service: "test"}))
	router := httprouter.New()
	h.RegisterRoutes(router)
	return router
}

func TestRegister_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
	}{
		{
			name:       "created",
			body:       `{"name":"Dana Levi","email":"dana@example.com"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "malformed JSON",
			body:       `{"name":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "duplicate email",
			body:       `{"name":"Dana Levi","email":"dana@example.com"}`,
			serviceErr: apperrors.Conflict("User with this email already exists"),
			wantStatus: http.StatusConflict,
		},
		{
			name:       "missing fields",
			body:       `{"email":"dana@example.com"}`,
			serviceErr: apperrors.Validation("Invalid user payload", nil),
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockUserService{
				registerFunc: func(ctx context.Context, user *model.User) error {
					return tt.serviceErr
				},
			}
			router := newTestRouter(svc)

			req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d (body: %s)", tt.wantStatus, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestGetByEmail_NotFound(t *testing.T) {
	svc := &mockUserService{
		getByEmailFunc: func(ctx context.Context, email string) (*model.User, error) {
			return nil, apperrors.NotFound("User")
		},
	}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/users?email=ghost@example.com", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestUpdateRole_NonBooleanIsAdmin(t *testing.T) {
	router := newTestRouter(&mockUserService{})

	req := httptest.NewRequest(http.MethodPatch, "/update-user", strings.NewReader(`{"email":"dana@example.com","isAdmin":"yes"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if body["error"] != "isAdmin must be a boolean" {
		t.Errorf("unexpected error message: %v", body["error"])
	}
}
