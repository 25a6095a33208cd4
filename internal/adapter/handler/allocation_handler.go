package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/radityo/guestgate/internal/core/domain"
	"github.com/radityo/guestgate/internal/core/services"
	"github.com/radityo/guestgate/internal/platform/metrics"
)

type notifyRequest struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Assign is the admin path for granting amenity units outside an order.
func (h *Handler) Assign(w http.ResponseWriter, r *http.Request) {
	if _, err := h.operatorFromRequest(r); err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": err.Error()})
		return
	}

	var req services.AssignInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json body"})
		return
	}

	assignment, err := h.allocation.Assign(r.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientStock) {
			metrics.StockRejectionsTotal.Inc()
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAssignmentResponse(assignment))
}

func (h *Handler) Notify(w http.ResponseWriter, r *http.Request) {
	if _, err := h.operatorFromRequest(r); err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": err.Error()})
		return
	}

	attendeeID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid attendee id"})
		return
	}

	var req notifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json body"})
		return
	}

	if err := h.notification.Notify(r.Context(), attendeeID, req.Subject, req.Body); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "sent"})
}
