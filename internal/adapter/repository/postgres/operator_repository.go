package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/radityo/guestgate/internal/core/domain"
)

type OperatorRepository struct {
	db *sql.DB
}

func NewOperatorRepository(db *sql.DB) *OperatorRepository {
	return &OperatorRepository{db: db}
}

func (r *OperatorRepository) GetByID(ctx context.Context, operatorID uuid.UUID) (*domain.Operator, error) {
	query := `
	SELECT id, event_id, name, role
	FROM operators
	WHERE id = $1
	`

	var operator domain.Operator
	err := r.db.QueryRowContext(ctx, query, operatorID).Scan(
		&operator.ID,
		&operator.EventID,
		&operator.Name,
		&operator.Role,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrOperatorNotFound
		}

		return nil, err
	}

	return &operator, nil
}
