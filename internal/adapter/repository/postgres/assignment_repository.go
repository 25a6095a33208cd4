package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/radityo/guestgate/internal/core/domain"
)

type AssignmentRepository struct {
	db *sql.DB
}

func NewAssignmentRepository(db *sql.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

const assignmentColumns = `
	a.id, a.attendee_id, a.amenity_id, a.reserved, a.remaining, a.created_at, a.updated_at,
	am.event_id, am.name, am.owner_id
`

func (r *AssignmentRepository) GetByID(ctx context.Context, assignmentID uuid.UUID) (*domain.AmenityAssignment, error) {
	query := `
	SELECT ` + assignmentColumns + `
	FROM amenity_assignments a
	JOIN amenities am ON am.id = a.amenity_id
	WHERE a.id = $1
	`

	assignment, err := scanAssignment(r.db.QueryRowContext(ctx, query, assignmentID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrAssignmentNotFound
		}

		return nil, err
	}

	return assignment, nil
}

// Upsert adds the granted units to the single row for this (attendee,
// amenity) pair, creating it on first grant. A repeat grant never
// produces a second row.
func (r *AssignmentRepository) Upsert(ctx context.Context, assignment *domain.AmenityAssignment) (*domain.AmenityAssignment, error) {
	query := `
	INSERT INTO amenity_assignments (id, attendee_id, amenity_id, reserved, remaining, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
	ON CONFLICT (attendee_id, amenity_id) DO UPDATE
	SET reserved = amenity_assignments.reserved + EXCLUDED.reserved,
		remaining = amenity_assignments.remaining + EXCLUDED.remaining,
		updated_at = NOW()
	RETURNING id
	`

	var id uuid.UUID
	err := r.db.QueryRowContext(ctx, query,
		assignment.ID,
		assignment.AttendeeID,
		assignment.AmenityID,
		assignment.Reserved,
		assignment.Remaining,
	).Scan(&id)

	if err != nil {
		return nil, fmt.Errorf("failed to upsert assignment: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *AssignmentRepository) ListAuthorized(ctx context.Context, attendeeID, operatorID uuid.UUID, admin bool) ([]domain.AmenityAssignment, error) {
	query := `
	SELECT ` + assignmentColumns + `
	FROM amenity_assignments a
	JOIN amenities am ON am.id = a.amenity_id
	WHERE a.attendee_id = $1 AND ($3 OR am.owner_id = $2)
	ORDER BY a.created_at
	`

	return r.list(ctx, query, attendeeID, operatorID, admin)
}

// Consume decrements remaining and records the audit row in one
// transaction. The guard on the UPDATE makes the check-then-decrement a
// single atomic step; concurrent callers cannot jointly overdraw.
func (r *AssignmentRepository) Consume(ctx context.Context, assignmentID, operatorID uuid.UUID, amount int) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}

	defer tx.Rollback()

	query := `
	UPDATE amenity_assignments
	SET remaining = remaining - $2, updated_at = NOW()
	WHERE id = $1 AND remaining >= $2
	RETURNING remaining
	`

	var remaining int
	err = tx.QueryRowContext(ctx, query, assignmentID, amount).Scan(&remaining)
	if err != nil {
		if err == sql.ErrNoRows {
			var one int
			checkErr := tx.QueryRowContext(ctx, `SELECT 1 FROM amenity_assignments WHERE id = $1`, assignmentID).Scan(&one)
			if checkErr == sql.ErrNoRows {
				return 0, domain.ErrAssignmentNotFound
			}
			if checkErr != nil {
				return 0, checkErr
			}

			return 0, domain.ErrExceedsAvailable
		}

		return 0, err
	}

	entry := domain.Consumption{
		ID:           uuid.New(),
		AssignmentID: assignmentID,
		OperatorID:   operatorID,
		Amount:       amount,
		ConsumedAt:   time.Now().UTC(),
	}

	auditQuery := `
	INSERT INTO consumptions (id, assignment_id, operator_id, amount, consumed_at)
	VALUES ($1, $2, $3, $4, $5)
	`

	_, err = tx.ExecContext(ctx, auditQuery, entry.ID, entry.AssignmentID, entry.OperatorID, entry.Amount, entry.ConsumedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to record consumption: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit consumption: %w", err)
	}

	return remaining, nil
}

func (r *AssignmentRepository) EnqueueGrantRetry(ctx context.Context, attendeeID, amenityID uuid.UUID, quantity int, reason string) error {
	query := `
	INSERT INTO grant_reconciliation (id, attendee_id, amenity_id, quantity, reason, created_at)
	VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query, uuid.New(), attendeeID, amenityID, quantity, reason, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to park grant retry: %w", err)
	}

	return nil
}

func (r *AssignmentRepository) PendingGrantRetries(ctx context.Context) ([]domain.GrantRetry, error) {
	query := `
	SELECT id, attendee_id, amenity_id, quantity, reason, created_at
	FROM grant_reconciliation
	WHERE resolved_at IS NULL
	LIMIT 100
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var pending []domain.GrantRetry
	for rows.Next() {
		var retry domain.GrantRetry
		if err := rows.Scan(&retry.ID, &retry.AttendeeID, &retry.AmenityID, &retry.Quantity, &retry.Reason, &retry.CreatedAt); err != nil {
			return nil, err
		}

		pending = append(pending, retry)
	}

	return pending, rows.Err()
}

// ClaimGrantRetry resolves the row and reports whether this call won the
// claim, so two workers cannot apply the same parked grant.
func (r *AssignmentRepository) ClaimGrantRetry(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
	UPDATE grant_reconciliation
	SET resolved_at = NOW()
	WHERE id = $1 AND resolved_at IS NULL
	`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}

func (r *AssignmentRepository) list(ctx context.Context, query string, args ...any) ([]domain.AmenityAssignment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var assignments []domain.AmenityAssignment
	for rows.Next() {
		assignment, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}

		assignments = append(assignments, *assignment)
	}

	return assignments, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAssignment(row rowScanner) (*domain.AmenityAssignment, error) {
	var assignment domain.AmenityAssignment
	var ownerID sql.NullString

	err := row.Scan(
		&assignment.ID,
		&assignment.AttendeeID,
		&assignment.AmenityID,
		&assignment.Reserved,
		&assignment.Remaining,
		&assignment.CreatedAt,
		&assignment.UpdatedAt,
		&assignment.EventID,
		&assignment.AmenityName,
		&ownerID,
	)

	if err != nil {
		return nil, err
	}

	if ownerID.Valid && ownerID.String != "" {
		uid, err := uuid.Parse(ownerID.String)
		if err == nil {
			assignment.AmenityOwnerID = &uid
		}
	}

	return &assignment, nil
}
