package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	TableAmenities   = "amenities"
	TableTickets     = "tickets"
	TableAssignments = "amenity_assignments"
	TableAttendees   = "attendees"
)

// Change describes one committed mutation, published so dashboards and
// other stations can refresh without polling. Subscribers treat Row as a
// hint and re-read the authoritative store.
type Change struct {
	EventID    uuid.UUID       `json:"event_id"`
	Table      string          `json:"table"`
	Row        json.RawMessage `json:"row"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// StockDelta is the change row published for ledger mutations. The delta
// is a hint; subscribers re-read the resource for the authoritative count.
type StockDelta struct {
	ResourceID uuid.UUID `json:"resource_id"`
	Delta      int       `json:"delta"`
}

func NewChange(eventID uuid.UUID, table string, row any) Change {
	raw, _ := json.Marshal(row)
	return Change{
		EventID:    eventID,
		Table:      table,
		Row:        raw,
		OccurredAt: time.Now().UTC(),
	}
}
