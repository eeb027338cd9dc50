package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"resortly/internal/users/service"
	httputil "resortly/pkg/http"
	"resortly/pkg/logger"
	"resortly/pkg/model"
)

type UserHandler struct {
	service service.UserService
	log     *logger.Logger
}

func NewUserHandler(service service.UserService, log *logger.Logger) *UserHandler {
	return &UserHandler{service: service, log: log}
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var user model.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		h.writeJSON(w, "Register", http.StatusBadRequest, httputil.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if err := h.service.Register(r.Context(), &user); err != nil {
		h.writeError(w, "Register", err)
		return
	}

	if err := httputil.WriteCreated(w, user); err != nil {
		h.log.Error("failed to write created response", "handler", "Register", "error", err)
	}
}

func (h *UserHandler) GetByEmail(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	email := r.URL.Query().Get("email")

	user, err := h.service.GetByEmail(r.Context(), email)
	if err != nil {
		h.writeError(w, "GetByEmail", err)
		return
	}

	if err := httputil.WriteSuccess(w, user); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByEmail", "error", err)
	}
}

func (h *UserHandler) GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	users, err := h.service.GetAll(r.Context())
	if err != nil {
		h.writeError(w, "GetAll", err)
		return
	}

	if err := httputil.WriteSuccess(w, users); err != nil {
		h.log.Error("failed to write success response", "handler", "GetAll", "error", err)
	}
}

// UpdateRole requires isAdmin to be a JSON boolean: any other type
// fails the decode and surfaces as a 400 before the service runs.
func (h *UserHandler) UpdateRole(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var update model.UserRoleUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		h.writeJSON(w, "UpdateRole", http.StatusBadRequest, httputil.ErrorResponse{Error: "isAdmin must be a boolean"})
		return
	}

	if err := h.service.UpdateRole(r.Context(), &update); err != nil {
		h.writeError(w, "UpdateRole", err)
		return
	}

	if err := httputil.WriteSuccess(w, map[string]string{"message": "User role updated"}); err != nil {
		h.log.Error("failed to write success response", "handler", "UpdateRole", "error", err)
	}
}

func (h *UserHandler) UpdateInfo(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var update model.UserInfoUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		h.writeJSON(w, "UpdateInfo", http.StatusBadRequest, httputil.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if err := h.service.UpdateInfo(r.Context(), &update); err != nil {
		h.writeError(w, "UpdateInfo", err)
		return
	}

	if err := httputil.WriteSuccess(w, map[string]string{"message": "User info updated"}); err != nil {
		h.log.Error("failed to write success response", "handler", "UpdateInfo", "error", err)
	}
}

func (h *UserHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "error", writeErr)
	}
}

func (h *UserHandler) writeJSON(w http.ResponseWriter, handler string, status int, body any) {
	if err := httputil.WriteJSON(w, status, body); err != nil {
		h.log.Error("failed to write JSON response", "handler", handler, "error", err)
	}
}

func (h *UserHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/users", h.Register)
	router.GET("/users", h.GetByEmail)
	router.GET("/all-users", h.GetAll)
	router.PATCH("/update-user", h.UpdateRole)
	router.PATCH("/update-user-info", h.UpdateInfo)
}
