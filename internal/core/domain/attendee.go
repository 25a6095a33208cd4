package domain

import (
	"time"

	"github.com/google/uuid"
)

type Attendee struct {
	ID          uuid.UUID
	EventID     uuid.UUID
	TicketID    *uuid.UUID
	Name        string
	Email       string
	Code        string
	CheckedIn   bool
	CheckedInAt *time.Time
	Notified    bool
	CreatedAt   time.Time
}
