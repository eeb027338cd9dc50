package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"resortly/internal/bookings/service"
	apperrors "resortly/pkg/errors"
	httputil "resortly/pkg/http"
	"resortly/pkg/logger"
	"resortly/pkg/model"
)

type BookingHandler struct {
	service service.BookingService
	log     *logger.Logger
}

func NewBookingHandler(service service.BookingService, log *logger.Logger) *BookingHandler {
	return &BookingHandler{service: service, log: log}
}

type cancelRequest struct {
	Reason string `json:"reason"`
}

type cancelResponse struct {
	BookingID      string `json:"bookingId"`
	Status         string `json:"status"`
	RefundEligible bool   `json:"refundEligible"`
	Message        string `json:"message"`
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var booking model.Booking
	if err := json.NewDecoder(r.Body).Decode(&booking); err != nil {
		h.writeJSON(w, "Create", http.StatusBadRequest, httputil.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if err := h.service.Create(r.Context(), &booking); err != nil {
		h.writeError(w, "Create", err)
		return
	}

	if err := httputil.WriteCreated(w, booking); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "error", err)
	}
}

func (h *BookingHandler) ListByOwner(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	email := r.URL.Query().Get("email")

	bookings, err := h.service.ListByOwner(r.Context(), email)
	if err != nil {
		h.writeError(w, "ListByOwner", err)
		return
	}

	if err := httputil.WriteList(w, len(bookings), bookings); err != nil {
		h.log.Error("failed to write list response", "handler", "ListByOwner", "error", err)
	}
}

func (h *BookingHandler) AdminSearch(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()

	filter := model.BookingFilter{
		Status:   query.Get("status"),
		ResortID: query.Get("resortId"),
	}

	if s := query.Get("startDate"); s != "" {
		parsed, err := parseDateParam(s)
		if err != nil {
			h.writeError(w, "AdminSearch", apperrors.InvalidInput("invalid startDate, expected YYYY-MM-DD"))
			return
		}
		filter.StartDate = &parsed
	}
	if s := query.Get("endDate"); s != "" {
		parsed, err := parseDateParam(s)
		if err != nil {
			h.writeError(w, "AdminSearch", apperrors.InvalidInput("invalid endDate, expected YYYY-MM-DD"))
			return
		}
		filter.EndDate = &parsed
	}

	bookings, err := h.service.Search(r.Context(), filter)
	if err != nil {
		h.writeError(w, "AdminSearch", err)
		return
	}

	if err := httputil.WriteList(w, len(bookings), bookings); err != nil {
		h.log.Error("failed to write list response", "handler", "AdminSearch", "error", err)
	}
}

// Cancel accepts an optional JSON body carrying the reason; an empty
// body cancels with the default reason.
func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ref := ps.ByName("id")

	var req cancelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.writeJSON(w, "Cancel", http.StatusBadRequest, httputil.ErrorResponse{Error: "Invalid request body"})
		return
	}

	booking, err := h.service.Cancel(r.Context(), ref, req.Reason)
	if err != nil {
		h.writeError(w, "Cancel", err)
		return
	}

	resp := cancelResponse{
		BookingID: booking.BookingID,
		Status:    booking.Status,
		Message:   "Booking cancelled",
	}
	if booking.Cancellation != nil {
		resp.RefundEligible = booking.Cancellation.RefundEligible
	}

	if err := httputil.WriteSuccess(w, resp); err != nil {
		h.log.Error("failed to write success response", "handler", "Cancel", "error", err)
	}
}

func parseDateParam(s string) (time.Time, error) {
	var d model.Date
	if err := d.UnmarshalJSON([]byte(`"` + s + `"`)); err != nil {
		return time.Time{}, err
	}
	return d.Time, nil
}

func (h *BookingHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "error", writeErr)
	}
}

func (h *BookingHandler) writeJSON(w http.ResponseWriter, handler string, status int, body any) {
	if err := httputil.WriteJSON(w, status, body); err != nil {
		h.log.Error("failed to write JSON response", "handler", handler, "error", err)
	}
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/bookings", h.Create)
	router.GET("/bookings", h.ListByOwner)
	router.GET("/admin/bookings", h.AdminSearch)
	router.PUT("/bookings/:id/cancel", h.Cancel)
}
