package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/radityo/guestgate/internal/core/domain"
)

type AttendeeRepository struct {
	db *sql.DB
}

func NewAttendeeRepository(db *sql.DB) *AttendeeRepository {
	return &AttendeeRepository{db: db}
}

const attendeeColumns = `id, event_id, ticket_id, name, email, code, checked_in, checked_in_at, notified, created_at`

func (r *AttendeeRepository) GetByID(ctx context.Context, attendeeID uuid.UUID) (*domain.Attendee, error) {
	query := `SELECT ` + attendeeColumns + ` FROM attendees WHERE id = $1`
	return r.get(ctx, query, attendeeID)
}

func (r *AttendeeRepository) GetByCode(ctx context.Context, eventID uuid.UUID, code string) (*domain.Attendee, error) {
	query := `SELECT ` + attendeeColumns + ` FROM attendees WHERE event_id = $1 AND code = $2`
	return r.get(ctx, query, eventID, code)
}

// CheckIn flips checked_in in a single guarded update. Losing the guard
// means some other station already checked the attendee in; that is
// reported, not treated as an error.
func (r *AttendeeRepository) CheckIn(ctx context.Context, attendeeID uuid.UUID, at time.Time) (bool, error) {
	query := `
	UPDATE attendees
	SET checked_in = TRUE, checked_in_at = $2
	WHERE id = $1 AND checked_in = FALSE
	`

	result, err := r.db.ExecContext(ctx, query, attendeeID, at)
	if err != nil {
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	if rowsAffected == 1 {
		return true, nil
	}

	var one int
	err = r.db.QueryRowContext(ctx, `SELECT 1 FROM attendees WHERE id = $1`, attendeeID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, domain.ErrAttendeeNotFound
	}
	if err != nil {
		return false, err
	}

	return false, nil
}

func (r *AttendeeRepository) MarkNotified(ctx context.Context, attendeeID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `UPDATE attendees SET notified = TRUE WHERE id = $1`, attendeeID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return domain.ErrAttendeeNotFound
	}

	return nil
}

func (r *AttendeeRepository) get(ctx context.Context, query string, args ...any) (*domain.Attendee, error) {
	var attendee domain.Attendee
	var ticketID sql.NullString
	var checkedInAt sql.NullTime

	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&attendee.ID,
		&attendee.EventID,
		&ticketID,
		&attendee.Name,
		&attendee.Email,
		&attendee.Code,
		&attendee.CheckedIn,
		&checkedInAt,
		&attendee.Notified,
		&attendee.CreatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrAttendeeNotFound
		}

		return nil, err
	}

	if ticketID.Valid && ticketID.String != "" {
		uid, err := uuid.Parse(ticketID.String)
		if err == nil {
			attendee.TicketID = &uid
		}
	}

	if checkedInAt.Valid {
		attendee.CheckedInAt = &checkedInAt.Time
	}

	return &attendee, nil
}
