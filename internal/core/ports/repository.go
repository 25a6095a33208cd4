package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/radityo/guestgate/internal/core/domain"
)

// LedgerRepository is the authoritative counter of unreserved units.
// Reserve and Release must be atomic relative to all other callers
// touching the same row.
type LedgerRepository interface {
	GetAmenity(ctx context.Context, amenityID uuid.UUID) (*domain.Amenity, error)
	Reserve(ctx context.Context, amenityID uuid.UUID, quantity int) error
	Release(ctx context.Context, amenityID uuid.UUID, quantity int) error
	GetTicket(ctx context.Context, ticketID uuid.UUID) (*domain.Ticket, error)
	ReserveTicket(ctx context.Context, ticketID uuid.UUID, quantity int) error
	ReleaseTicket(ctx context.Context, ticketID uuid.UUID, quantity int) error
	EnqueueReconciliation(ctx context.Context, amenityID uuid.UUID, quantity int, reason string) error
	PendingReconciliations(ctx context.Context) ([]domain.Reconciliation, error)
	// ApplyReconciliation restores the parked units and marks the row
	// resolved in a single transaction. Re-applying an already resolved
	// row is a no-op, so a retried pass cannot restore units twice.
	ApplyReconciliation(ctx context.Context, rec domain.Reconciliation) error
}

type AssignmentRepository interface {
	GetByID(ctx context.Context, assignmentID uuid.UUID) (*domain.AmenityAssignment, error)
	// Upsert inserts the assignment or, when one already exists for the
	// same (attendee, amenity) pair, adds the granted units to it.
	Upsert(ctx context.Context, assignment *domain.AmenityAssignment) (*domain.AmenityAssignment, error)
	ListAuthorized(ctx context.Context, attendeeID, operatorID uuid.UUID, admin bool) ([]domain.AmenityAssignment, error)
	// Consume atomically decrements remaining and records the audit row in
	// one transaction. Returns the new remaining.
	Consume(ctx context.Context, assignmentID, operatorID uuid.UUID, amount int) (int, error)
	EnqueueGrantRetry(ctx context.Context, attendeeID, amenityID uuid.UUID, quantity int, reason string) error
	PendingGrantRetries(ctx context.Context) ([]domain.GrantRetry, error)
	// ClaimGrantRetry marks the row resolved and reports whether this call
	// won the claim. A caller that wins and then fails the grant re-parks
	// it as a fresh row.
	ClaimGrantRetry(ctx context.Context, id uuid.UUID) (bool, error)
}

type AttendeeRepository interface {
	GetByID(ctx context.Context, attendeeID uuid.UUID) (*domain.Attendee, error)
	GetByCode(ctx context.Context, eventID uuid.UUID, code string) (*domain.Attendee, error)
	// CheckIn flips checked_in exactly once. Returns true when this call
	// performed the transition, false when the attendee was already in.
	CheckIn(ctx context.Context, attendeeID uuid.UUID, at time.Time) (bool, error)
	MarkNotified(ctx context.Context, attendeeID uuid.UUID) error
}

type OrderRepository interface {
	// CreateWithAttendees persists the order and its attendees in one
	// transaction.
	CreateWithAttendees(ctx context.Context, order *domain.Order, attendees []domain.Attendee) error
}

type OperatorRepository interface {
	GetByID(ctx context.Context, operatorID uuid.UUID) (*domain.Operator, error)
}
