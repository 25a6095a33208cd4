package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/radityo/guestgate/internal/core/domain"
	"github.com/radityo/guestgate/internal/core/services"
	"github.com/radityo/guestgate/internal/platform/metrics"
)

type scanRequest struct {
	EventID string `json:"event_id"`
	Payload string `json:"payload"`
	Consume bool   `json:"consume"`
}

type manualRequest struct {
	EventID string `json:"event_id"`
	Code    string `json:"code"`
	Consume bool   `json:"consume"`
}

type attendeeResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Code        string  `json:"code"`
	CheckedIn   bool    `json:"checked_in"`
	CheckedInAt *string `json:"checked_in_at,omitempty"`
}

type consumptionResponse struct {
	AssignmentID string `json:"assignment_id"`
	AmenityName  string `json:"amenity_name"`
	Remaining    int    `json:"remaining"`
}

type checkInResponse struct {
	Attendee         attendeeResponse     `json:"attendee"`
	AlreadyCheckedIn bool                 `json:"already_checked_in"`
	Consumption      *consumptionResponse `json:"consumption,omitempty"`
	ConsumeError     string               `json:"consume_error,omitempty"`
}

func (h *Handler) CheckInScan(w http.ResponseWriter, r *http.Request) {
	operatorID, err := h.operatorFromRequest(r)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": err.Error()})
		return
	}

	var req scanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json body"})
		return
	}

	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid event id"})
		return
	}

	result, err := h.checkin.CheckInScan(r.Context(), eventID, req.Payload)
	if err != nil {
		metrics.CheckInsTotal.WithLabelValues(checkInLabel(err)).Inc()
		writeError(w, err)
		return
	}

	h.respondCheckIn(w, r, result, operatorID, req.Consume)
}

func (h *Handler) CheckInManual(w http.ResponseWriter, r *http.Request) {
	operatorID, err := h.operatorFromRequest(r)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": err.Error()})
		return
	}

	var req manualRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json body"})
		return
	}

	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid event id"})
		return
	}

	if req.Code == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "code is required"})
		return
	}

	result, err := h.checkin.CheckInManual(r.Context(), eventID, req.Code)
	if err != nil {
		metrics.CheckInsTotal.WithLabelValues(checkInLabel(err)).Inc()
		writeError(w, err)
		return
	}

	h.respondCheckIn(w, r, result, operatorID, req.Consume)
}

// respondCheckIn reports the transition and, when the station asked for
// it, attempts the one-unit auto-consumption. A failed consumption never
// undoes the check-in; its reason rides along in the response.
func (h *Handler) respondCheckIn(w http.ResponseWriter, r *http.Request, result *services.ScanResult, operatorID uuid.UUID, consume bool) {
	if result.AlreadyCheckedIn {
		metrics.CheckInsTotal.WithLabelValues("already_checked_in").Inc()
	} else {
		metrics.CheckInsTotal.WithLabelValues("ok").Inc()
	}

	resp := checkInResponse{
		Attendee:         toAttendeeResponse(result.Attendee),
		AlreadyCheckedIn: result.AlreadyCheckedIn,
	}

	if consume {
		consumed, err := h.consumption.AutoConsume(r.Context(), operatorID, result.Attendee.ID)
		if err != nil {
			metrics.ConsumptionsTotal.WithLabelValues(consumeLabel(err)).Inc()
			resp.ConsumeError = err.Error()
		} else {
			metrics.ConsumptionsTotal.WithLabelValues("ok").Inc()
			resp.Consumption = &consumptionResponse{
				AssignmentID: consumed.AssignmentID.String(),
				AmenityName:  consumed.AmenityName,
				Remaining:    consumed.Remaining,
			}
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func toAttendeeResponse(attendee *domain.Attendee) attendeeResponse {
	resp := attendeeResponse{
		ID:        attendee.ID.String(),
		Name:      attendee.Name,
		Code:      attendee.Code,
		CheckedIn: attendee.CheckedIn,
	}

	if attendee.CheckedInAt != nil {
		formatted := attendee.CheckedInAt.Format(time.RFC3339)
		resp.CheckedInAt = &formatted
	}

	return resp
}

func checkInLabel(err error) string {
	switch {
	case errors.Is(err, domain.ErrWrongEvent):
		return "wrong_event"
	case errors.Is(err, domain.ErrMalformedBadge):
		return "malformed"
	case errors.Is(err, domain.ErrAttendeeNotFound):
		return "not_found"
	default:
		return "error"
	}
}

func consumeLabel(err error) string {
	switch {
	case errors.Is(err, domain.ErrNoUnitsLeft), errors.Is(err, domain.ErrExceedsAvailable):
		return "no_units"
	case errors.Is(err, domain.ErrUnauthorized):
		return "unauthorized"
	default:
		return "error"
	}
}
