package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/radityo/guestgate/internal/core/domain"
)

// LedgerRepository owns the unreserved-unit counters for amenities and
// tickets. Every decrement is a single conditional UPDATE guarded by the
// current quantity, so check-and-decrement cannot race.
type LedgerRepository struct {
	db *sql.DB
}

func NewLedgerRepository(db *sql.DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

func (r *LedgerRepository) GetAmenity(ctx context.Context, amenityID uuid.UUID) (*domain.Amenity, error) {
	query := `
	SELECT id, event_id, owner_id, name, price, quantity
	FROM amenities
	WHERE id = $1
	`

	var amenity domain.Amenity
	var ownerID sql.NullString

	err := r.db.QueryRowContext(ctx, query, amenityID).Scan(
		&amenity.ID,
		&amenity.EventID,
		&ownerID,
		&amenity.Name,
		&amenity.Price,
		&amenity.Quantity,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrAmenityNotFound
		}

		return nil, err
	}

	if ownerID.Valid && ownerID.String != "" {
		uid, err := uuid.Parse(ownerID.String)
		if err == nil {
			amenity.OwnerID = &uid
		}
	}

	return &amenity, nil
}

func (r *LedgerRepository) Reserve(ctx context.Context, amenityID uuid.UUID, quantity int) error {
	query := `
	UPDATE amenities
	SET quantity = quantity - $2
	WHERE id = $1 AND quantity >= $2
	`

	result, err := r.db.ExecContext(ctx, query, amenityID, quantity)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		if exists, err := r.amenityExists(ctx, amenityID); err != nil {
			return err
		} else if !exists {
			return domain.ErrAmenityNotFound
		}

		return domain.ErrInsufficientStock
	}

	return nil
}

func (r *LedgerRepository) Release(ctx context.Context, amenityID uuid.UUID, quantity int) error {
	query := `
	UPDATE amenities
	SET quantity = quantity + $2
	WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, amenityID, quantity)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return domain.ErrAmenityNotFound
	}

	return nil
}

func (r *LedgerRepository) GetTicket(ctx context.Context, ticketID uuid.UUID) (*domain.Ticket, error) {
	query := `
	SELECT id, event_id, name, price, quantity
	FROM tickets
	WHERE id = $1
	`

	var ticket domain.Ticket
	var quantity sql.NullInt64

	err := r.db.QueryRowContext(ctx, query, ticketID).Scan(
		&ticket.ID,
		&ticket.EventID,
		&ticket.Name,
		&ticket.Price,
		&quantity,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrTicketNotFound
		}

		return nil, err
	}

	if quantity.Valid {
		q := int(quantity.Int64)
		ticket.Quantity = &q
	}

	return &ticket, nil
}

// ReserveTicket decrements the sellable-unit counter. A NULL quantity
// means unlimited: the arithmetic keeps it NULL and the guard passes.
func (r *LedgerRepository) ReserveTicket(ctx context.Context, ticketID uuid.UUID, quantity int) error {
	query := `
	UPDATE tickets
	SET quantity = quantity - $2
	WHERE id = $1 AND (quantity IS NULL OR quantity >= $2)
	`

	result, err := r.db.ExecContext(ctx, query, ticketID, quantity)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		if exists, err := r.ticketExists(ctx, ticketID); err != nil {
			return err
		} else if !exists {
			return domain.ErrTicketNotFound
		}

		return domain.ErrInsufficientStock
	}

	return nil
}

func (r *LedgerRepository) ReleaseTicket(ctx context.Context, ticketID uuid.UUID, quantity int) error {
	query := `
	UPDATE tickets
	SET quantity = quantity + $2
	WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, ticketID, quantity)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return domain.ErrTicketNotFound
	}

	return nil
}

func (r *LedgerRepository) EnqueueReconciliation(ctx context.Context, amenityID uuid.UUID, quantity int, reason string) error {
	query := `
	INSERT INTO ledger_reconciliation (id, amenity_id, quantity, reason, created_at)
	VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.ExecContext(ctx, query, uuid.New(), amenityID, quantity, reason, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to queue reconciliation: %w", err)
	}

	return nil
}

func (r *LedgerRepository) PendingReconciliations(ctx context.Context) ([]domain.Reconciliation, error) {
	query := `
	SELECT id, amenity_id, quantity, reason, created_at
	FROM ledger_reconciliation
	WHERE resolved_at IS NULL
	LIMIT 100
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var pending []domain.Reconciliation
	for rows.Next() {
		var rec domain.Reconciliation
		if err := rows.Scan(&rec.ID, &rec.AmenityID, &rec.Quantity, &rec.Reason, &rec.CreatedAt); err != nil {
			return nil, err
		}

		pending = append(pending, rec)
	}

	return pending, rows.Err()
}

// ApplyReconciliation restores the parked units and marks the row
// resolved in one transaction. The guard on resolved_at makes a repeat
// application a no-op, so a crashed or re-run pass cannot restore the
// same units twice.
func (r *LedgerRepository) ApplyReconciliation(ctx context.Context, rec domain.Reconciliation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
	UPDATE ledger_reconciliation
	SET resolved_at = NOW()
	WHERE id = $1 AND resolved_at IS NULL
	`, rec.ID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		// Already applied by an earlier pass.
		return nil
	}

	if _, err := tx.ExecContext(ctx, `
	UPDATE amenities
	SET quantity = quantity + $2
	WHERE id = $1
	`, rec.AmenityID, rec.Quantity); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit reconciliation: %w", err)
	}

	return nil
}

func (r *LedgerRepository) amenityExists(ctx context.Context, amenityID uuid.UUID) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, `SELECT 1 FROM amenities WHERE id = $1`, amenityID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}

	return err == nil, err
}

func (r *LedgerRepository) ticketExists(ctx context.Context, ticketID uuid.UUID) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, `SELECT 1 FROM tickets WHERE id = $1`, ticketID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}

	return err == nil, err
}
