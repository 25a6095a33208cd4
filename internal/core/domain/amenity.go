package domain

import (
	"time"

	"github.com/google/uuid"
)

// Amenity is a finite pool of units (lunches, drinks, parking slots) owned
// by at most one operator. Quantity counts the units not yet reserved.
type Amenity struct {
	ID       uuid.UUID
	EventID  uuid.UUID
	OwnerID  *uuid.UUID
	Name     string
	Price    float64
	Quantity int
}

// AmenityAssignment grants an attendee a reserved number of units of one
// amenity. Reserved is the total ever granted, Remaining the units not yet
// consumed. There is exactly one row per (attendee, amenity) pair; a second
// grant adds to the existing row.
type AmenityAssignment struct {
	ID         uuid.UUID
	AttendeeID uuid.UUID
	AmenityID  uuid.UUID
	Reserved   int
	Remaining  int
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined from the amenity row for authorization and display.
	EventID        uuid.UUID
	AmenityName    string
	AmenityOwnerID *uuid.UUID
}

func (a *AmenityAssignment) OwnedBy(operatorID uuid.UUID) bool {
	return a.AmenityOwnerID != nil && *a.AmenityOwnerID == operatorID
}

// Consumption is one immutable audit entry recorded for every successful
// decrement of an assignment's remaining units.
type Consumption struct {
	ID           uuid.UUID
	AssignmentID uuid.UUID
	OperatorID   uuid.UUID
	Amount       int
	ConsumedAt   time.Time
}
