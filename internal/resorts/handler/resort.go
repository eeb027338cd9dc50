package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"resortly/internal/resorts/service"
	httputil "resortly/pkg/http"
	"resortly/pkg/logger"
	"resortly/pkg/model"
)

type ResortHandler struct {
	service service.ResortService
	log     *logger.Logger
}

func NewResortHandler(service service.ResortService, log *logger.Logger) *ResortHandler {
	return &ResortHandler{service: service, log: log}
}

func (h *ResortHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var resort model.Resort
	if err := json.NewDecoder(r.Body).Decode(&resort); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{Error: "Invalid request body"}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Create", "error", writeErr)
		}
		return
	}

	result, err := h.service.Create(r.Context(), resort)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, result); err != nil {
		h.log.Error("failed to write success response", "handler", "Create", "error", err)
	}
}

func (h *ResortHandler) GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	resorts, err := h.service.GetAll(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetAll", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, resorts); err != nil {
		h.log.Error("failed to write success response", "handler", "GetAll", "error", err)
	}
}

func (h *ResortHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/resorts", h.Create)
	router.GET("/allResorts", h.GetAll)
}
