package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/radityo/guestgate/internal/core/domain"
)

type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// CreateWithAttendees persists the order header and every attendee row in
// one transaction; either the whole party exists or none of it does.
func (r *OrderRepository) CreateWithAttendees(ctx context.Context, order *domain.Order, attendees []domain.Attendee) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer tx.Rollback()

	queryHeader := `
	INSERT INTO orders (id, event_id, ticket_id, email, quantity, total, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err = tx.ExecContext(ctx, queryHeader, order.ID, order.EventID, order.TicketID, order.Email, order.Quantity, order.Total, order.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert order header: %w", err)
	}

	queryAttendee := `
	INSERT INTO attendees (id, event_id, ticket_id, order_id, name, email, code, checked_in, notified, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, FALSE, FALSE, $8)
	`

	stmt, err := tx.PrepareContext(ctx, queryAttendee)
	if err != nil {
		return fmt.Errorf("failed to prepare attendee statement: %w", err)
	}

	defer stmt.Close()

	for _, attendee := range attendees {
		_, err := stmt.ExecContext(ctx, attendee.ID, attendee.EventID, attendee.TicketID, order.ID, attendee.Name, attendee.Email, attendee.Code, attendee.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert attendee %s: %w", attendee.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit order: %w", err)
	}

	return nil
}
