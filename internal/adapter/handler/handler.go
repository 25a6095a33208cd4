package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/radityo/guestgate/internal/core/domain"
	"github.com/radityo/guestgate/internal/core/services"
	"github.com/radityo/guestgate/internal/platform/metrics"
)

// OperatorClaims identifies the staff member behind a station token. The
// role claim is informational; authorization re-checks the operator row.
type OperatorClaims struct {
	OperatorID string `json:"operator_id"`
	Role       string `json:"role"`
	jwt.RegisteredClaims
}

type Handler struct {
	checkin      *services.CheckInService
	consumption  *services.ConsumptionService
	allocation   *services.AllocationService
	notification *services.NotificationService
	jwtSecret    []byte
}

func New(
	checkin *services.CheckInService,
	consumption *services.ConsumptionService,
	allocation *services.AllocationService,
	notification *services.NotificationService,
	jwtSecret []byte,
) *Handler {
	return &Handler{
		checkin:      checkin,
		consumption:  consumption,
		allocation:   allocation,
		notification: notification,
		jwtSecret:    jwtSecret,
	}
}

func (h *Handler) Router(ws *WSHandler) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/healthz", h.Health).Methods(http.MethodGet)
	router.HandleFunc("/checkin/scan", metrics.Instrument("checkin_scan", h.CheckInScan)).Methods(http.MethodPost)
	router.HandleFunc("/checkin/manual", metrics.Instrument("checkin_manual", h.CheckInManual)).Methods(http.MethodPost)
	router.HandleFunc("/assignments", metrics.Instrument("assign", h.Assign)).Methods(http.MethodPost)
	router.HandleFunc("/assignments/{id}/consume", metrics.Instrument("consume", h.Consume)).Methods(http.MethodPost)
	router.HandleFunc("/attendees/{id}/assignments", metrics.Instrument("list_assignments", h.ListAssignments)).Methods(http.MethodGet)
	router.HandleFunc("/attendees/{id}/notify", metrics.Instrument("notify", h.Notify)).Methods(http.MethodPost)
	router.HandleFunc("/ws", ws.Serve).Methods(http.MethodGet)

	return router
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// operatorFromRequest extracts the explicit operator id from the bearer
// token. Services receive it as a parameter; nothing downstream reads
// ambient session state.
func (h *Handler) operatorFromRequest(r *http.Request) (uuid.UUID, error) {
	authHeader := r.Header.Get("Authorization")
	if len(authHeader) < 8 || authHeader[:7] != "Bearer " {
		return uuid.Nil, errors.New("missing bearer token")
	}

	claims := OperatorClaims{}
	token, err := jwt.ParseWithClaims(authHeader[7:], &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return h.jwtSecret, nil
	})

	if err != nil || token == nil || !token.Valid {
		return uuid.Nil, errors.New("invalid token")
	}

	operatorID, err := uuid.Parse(claims.OperatorID)
	if err != nil {
		return uuid.Nil, errors.New("invalid operator id in token")
	}

	return operatorID, nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError maps the domain taxonomy onto status codes. Every rejection
// carries its reason so the operator can resolve it at the station.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, domain.ErrMalformedBadge),
		errors.Is(err, domain.ErrInvalidQuantity):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, domain.ErrUnauthorized):
		status = http.StatusForbidden
		message = err.Error()
	case errors.Is(err, domain.ErrAttendeeNotFound),
		errors.Is(err, domain.ErrAmenityNotFound),
		errors.Is(err, domain.ErrAssignmentNotFound),
		errors.Is(err, domain.ErrTicketNotFound),
		errors.Is(err, domain.ErrOperatorNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, domain.ErrWrongEvent),
		errors.Is(err, domain.ErrEventMismatch),
		errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrExceedsAvailable),
		errors.Is(err, domain.ErrNoUnitsLeft):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, domain.ErrQuotaExceeded):
		status = http.StatusTooManyRequests
		message = err.Error()
	}

	writeJSON(w, status, map[string]string{"error": message})
}
