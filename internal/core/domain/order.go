package domain

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	ID        uuid.UUID
	EventID   uuid.UUID
	TicketID  uuid.UUID
	Email     string
	Quantity  int
	Total     float64
	CreatedAt time.Time
}
