package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"luxeroyale/internal/entities"
	apperrors "luxeroyale/internal/errors"
	"luxeroyale/internal/service"
)

type BookingHandler struct {
	Service *service.BookingService
}

func NewBookingHandler(svc *service.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// CreateBooking handles POST /api/bookings. Validation problems come back
// as 400 with a fixed message; everything else is logged and collapses to a
// generic 500 so no storage or SMTP detail leaks to the client.
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req entities.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, apperrors.ErrMissingFields.Code, BookingResponse{Success: false, Message: apperrors.ErrMissingFields.Message})
		return
	}

	if err := h.Service.CreateBooking(r.Context(), &req); err != nil {
		var httpErr *apperrors.HTTPError
		if errors.As(err, &httpErr) {
			writeJSON(w, httpErr.Code, BookingResponse{Success: false, Message: httpErr.Message})
			return
		}
		log.Printf("Error in /api/bookings: %v", err)
		writeJSON(w, apperrors.ErrServer.Code, BookingResponse{Success: false, Message: apperrors.ErrServer.Message})
		return
	}

	writeJSON(w, http.StatusOK, BookingResponse{Success: true})
}

// Health is a liveness probe.
func Health(w http.ResponseWriter, r *http.Request) {
	fmt.Fprint(w, "200")
}
