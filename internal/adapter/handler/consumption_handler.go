package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/radityo/guestgate/internal/core/domain"
	"github.com/radityo/guestgate/internal/platform/metrics"
)

type consumeRequest struct {
	Amount int `json:"amount"`
}

type assignmentResponse struct {
	ID          string `json:"id"`
	AttendeeID  string `json:"attendee_id"`
	AmenityID   string `json:"amenity_id"`
	AmenityName string `json:"amenity_name"`
	Reserved    int    `json:"reserved"`
	Remaining   int    `json:"remaining"`
	UpdatedAt   string `json:"updated_at"`
}

// Consume is the manual variable-amount path used by counter stations.
func (h *Handler) Consume(w http.ResponseWriter, r *http.Request) {
	operatorID, err := h.operatorFromRequest(r)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": err.Error()})
		return
	}

	assignmentID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid assignment id"})
		return
	}

	var req consumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json body"})
		return
	}

	result, err := h.consumption.Consume(r.Context(), assignmentID, operatorID, req.Amount)
	if err != nil {
		metrics.ConsumptionsTotal.WithLabelValues(consumeLabel(err)).Inc()
		writeError(w, err)
		return
	}

	metrics.ConsumptionsTotal.WithLabelValues("ok").Inc()
	writeJSON(w, http.StatusOK, consumptionResponse{
		AssignmentID: result.AssignmentID.String(),
		AmenityName:  result.AmenityName,
		Remaining:    result.Remaining,
	})
}

// ListAssignments shows only what the calling operator may decrement.
func (h *Handler) ListAssignments(w http.ResponseWriter, r *http.Request) {
	operatorID, err := h.operatorFromRequest(r)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": err.Error()})
		return
	}

	attendeeID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid attendee id"})
		return
	}

	assignments, err := h.consumption.AuthorizedAssignments(r.Context(), operatorID, attendeeID)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]assignmentResponse, 0, len(assignments))
	for i := range assignments {
		resp = append(resp, toAssignmentResponse(&assignments[i]))
	}

	writeJSON(w, http.StatusOK, resp)
}

func toAssignmentResponse(assignment *domain.AmenityAssignment) assignmentResponse {
	return assignmentResponse{
		ID:          assignment.ID.String(),
		AttendeeID:  assignment.AttendeeID.String(),
		AmenityID:   assignment.AmenityID.String(),
		AmenityName: assignment.AmenityName,
		Reserved:    assignment.Reserved,
		Remaining:   assignment.Remaining,
		UpdatedAt:   assignment.UpdatedAt.Format(time.RFC3339),
	}
}
