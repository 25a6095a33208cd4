package domain

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID       uuid.UUID
	Name     string
	StartsAt time.Time
	EndsAt   time.Time
}

// Ticket quantity is the number of units still sellable. A nil quantity
// means the ticket is unlimited and order completion never decrements it.
type Ticket struct {
	ID       uuid.UUID
	EventID  uuid.UUID
	Name     string
	Price    float64
	Quantity *int
}

func (t *Ticket) Unlimited() bool {
	return t.Quantity == nil
}
